// Package history lists past quiz results, most recent first, and opens
// the read-only review replay for units still on the path.
package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/khanhvo/mathgenius/internal/learner"
	"github.com/khanhvo/mathgenius/internal/router"
	"github.com/khanhvo/mathgenius/internal/screen"
	"github.com/khanhvo/mathgenius/internal/screens/quizscreen"
	"github.com/khanhvo/mathgenius/internal/ui/layout"
	"github.com/khanhvo/mathgenius/internal/ui/theme"
)

// HistoryScreen displays the profile's quiz history.
type HistoryScreen struct {
	profile  *learner.UserProfile
	selected int
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates the history screen.
func New(profile *learner.UserProfile) *HistoryScreen {
	return &HistoryScreen{profile: profile}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "Lịch sử"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Xem lại"},
		{Key: "↑↓", Description: "Di chuyển"},
		{Key: "Esc", Description: "Quay lại"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	history := s.profile.History
	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(history)-1 {
			s.selected++
		}
	case "enter":
		if s.selected >= len(history) {
			return s, nil
		}
		result := history[s.selected]
		unit, _ := s.profile.UnitByID(result.UnitID)
		if unit == nil {
			s.errMsg = "Bài này không còn trong lộ trình, không xem lại được."
			return s, nil
		}
		s.errMsg = ""
		next := quizscreen.NewReview(*unit, result.UserAnswers)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	history := s.profile.History
	if len(history) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Hint.Render("Chưa có bài làm nào. Bắt đầu học thôi!"))
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, r := range history {
		dateStr := r.Timestamp.Local().Format("02/01/2006 15:04")
		mins := r.TimeSpentSeconds / 60
		secs := r.TimeSpentSeconds % 60

		verdict := "Đạt"
		verdictStyle := theme.Correct
		if r.Ratio() < learner.PassThreshold {
			verdict = "Chưa đạt"
			verdictStyle = theme.Incorrect
		}

		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "▸ "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		line := fmt.Sprintf("%s%s  %s  %d/%d câu  %d:%02d  ",
			prefix, dateStr, r.UnitTitle, r.Score, r.TotalQuestions, mins, secs)

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)+verdictStyle.Render(verdict)))
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render(s.errMsg)))
	}
	return b.String()
}
