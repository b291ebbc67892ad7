// Package path renders the learning path: unit list with lifecycle
// status, overall progress, quiz launch, review replay, and the
// challenge upgrade for completed units.
package path

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/khanhvo/mathgenius/internal/contentgen"
	"github.com/khanhvo/mathgenius/internal/learner"
	"github.com/khanhvo/mathgenius/internal/router"
	"github.com/khanhvo/mathgenius/internal/screen"
	"github.com/khanhvo/mathgenius/internal/screens/quizscreen"
	"github.com/khanhvo/mathgenius/internal/screens/topics"
	"github.com/khanhvo/mathgenius/internal/tutor"
	"github.com/khanhvo/mathgenius/internal/ui/components"
	"github.com/khanhvo/mathgenius/internal/ui/layout"
	"github.com/khanhvo/mathgenius/internal/ui/theme"
)

// challengeReadyMsg reports the outcome of a challenge unit generation.
type challengeReadyMsg struct {
	Unit *learner.LearningUnit
	Err  error
}

// PathScreen lists the learning path units.
type PathScreen struct {
	svc        *tutor.Service
	profile    *learner.UserProfile
	cursor     int
	generating bool
	errMsg     string
}

var _ screen.Screen = (*PathScreen)(nil)
var _ screen.KeyHintProvider = (*PathScreen)(nil)

// New creates the learning path screen.
func New(svc *tutor.Service, profile *learner.UserProfile) *PathScreen {
	return &PathScreen{svc: svc, profile: profile}
}

func (p *PathScreen) Init() tea.Cmd {
	return nil
}

func (p *PathScreen) Title() string {
	return "Lộ trình học tập"
}

func (p *PathScreen) KeyHints() []layout.KeyHint {
	if len(p.profile.LearningPath) == 0 {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Thiết lập lộ trình"},
			{Key: "Esc", Description: "Quay lại"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Học / Xem lại"},
		{Key: "C", Description: "Thử thách"},
		{Key: "N", Description: "Lộ trình mới"},
		{Key: "Esc", Description: "Quay lại"},
	}
}

func (p *PathScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case challengeReadyMsg:
		return p.handleChallengeReady(msg)
	case tea.KeyMsg:
		if p.generating {
			return p, nil
		}
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *PathScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	units := p.profile.LearningPath
	if p.cursor >= len(units) {
		p.cursor = 0
	}

	switch msg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(units)-1 {
			p.cursor++
		}
	case "enter":
		if len(units) == 0 {
			next := topics.New(p.svc, p.profile, topics.ModeRevise)
			return p, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
		unit := units[p.cursor]
		switch unit.Status {
		case learner.StatusCompleted:
			if result := p.latestResult(unit.ID); result != nil {
				next := quizscreen.NewReview(unit, result.UserAnswers)
				return p, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
			}
			p.errMsg = "Chưa có bài làm nào cho bài học này."
		default:
			// Locked units are startable too; the learner may skip ahead
			// rather than wait for the active unit.
			next := quizscreen.New(p.svc, p.profile, unit)
			return p, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
	case "c":
		if len(units) == 0 {
			return p, nil
		}
		unit := units[p.cursor]
		if unit.Status != learner.StatusCompleted {
			p.errMsg = "Chỉ tạo được thử thách từ bài học đã hoàn thành."
			return p, nil
		}
		p.errMsg = ""
		p.generating = true
		svc, profile := p.svc, p.profile
		return p, func() tea.Msg {
			upgraded, err := svc.GenerateChallengeUnit(context.Background(), profile, unit)
			return challengeReadyMsg{Unit: upgraded, Err: err}
		}
	case "n":
		next := topics.New(p.svc, p.profile, topics.ModeRevise)
		return p, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}
	return p, nil
}

func (p *PathScreen) handleChallengeReady(msg challengeReadyMsg) (screen.Screen, tea.Cmd) {
	p.generating = false
	if msg.Err != nil {
		if errors.Is(msg.Err, contentgen.ErrMissingCredential) {
			p.errMsg = "Chưa có API key. Vào Cài đặt để nhập key trước."
		} else {
			p.errMsg = msg.Err.Error()
		}
		return p, nil
	}

	if err := p.svc.ApplyChallengeUnit(context.Background(), p.profile, *msg.Unit); err != nil {
		p.errMsg = err.Error()
		return p, nil
	}
	return p, nil
}

// latestResult finds the newest history entry for a unit. History is
// stored most-recent-first.
func (p *PathScreen) latestResult(unitID string) *learner.QuizResult {
	for i := range p.profile.History {
		if p.profile.History[i].UnitID == unitID {
			return &p.profile.History[i]
		}
	}
	return nil
}

func (p *PathScreen) View(width, height int) string {
	units := p.profile.LearningPath

	if len(units) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Hint.Render("Chưa có lộ trình học tập.\nNhấn Enter để chọn chủ đề và tạo lộ trình bằng AI."))
	}

	completed := 0
	for _, u := range units {
		if u.Status == learner.StatusCompleted {
			completed++
		}
	}

	var b strings.Builder
	b.WriteString("\n")

	bar := components.NewProgressBar(
		fmt.Sprintf("Tiến độ %d/%d", completed, len(units)),
		float64(completed)/float64(len(units)),
		true,
		components.CardWidth(width),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	for i, unit := range units {
		var mark string
		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch unit.Status {
		case learner.StatusCompleted:
			mark = "✓"
			style = style.Foreground(theme.Success)
		case learner.StatusActive:
			mark = "▶"
			style = style.Foreground(theme.Primary)
		default:
			mark = "·"
			style = style.Foreground(theme.TextDim)
		}

		line := fmt.Sprintf("%s %s  (Cấp %d · %d câu · %d phút · %d XP)",
			mark, unit.Title, unit.Level, len(unit.Questions), unit.DurationMinutes, unit.TotalXP)
		if i == p.cursor {
			line = "▸ " + line
			style = style.Bold(true)
		} else {
			line = "  " + line
		}

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if i == p.cursor && unit.Description != "" {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Hint.Render("    "+unit.Description)))
			b.WriteString("\n")
		}

		if i == p.cursor && unit.Status == learner.StatusLocked {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Hint.Render("    Bạn có thể chọn học bài này ngay nếu muốn.")))
			b.WriteString("\n")
		}
	}

	if p.generating {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Đang tạo bài thử thách nâng cao...")))
	} else if p.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Incorrect.Render(p.errMsg)))
	}

	return b.String()
}
