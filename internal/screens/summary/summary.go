// Package summary shows the result card after a finished quiz: score,
// pass/fail verdict, elapsed time, and any proficiency level change.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/khanhvo/mathgenius/internal/learner"
	"github.com/khanhvo/mathgenius/internal/router"
	"github.com/khanhvo/mathgenius/internal/screen"
	"github.com/khanhvo/mathgenius/internal/ui/components"
	"github.com/khanhvo/mathgenius/internal/ui/layout"
	"github.com/khanhvo/mathgenius/internal/ui/theme"
)

// SummaryScreen displays one applied quiz result.
type SummaryScreen struct {
	result    learner.QuizResult
	unit      learner.LearningUnit
	prevLevel int
	newLevel  int
	cont      components.Button
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates the summary over an already-persisted result.
func New(result learner.QuizResult, unit learner.LearningUnit, prevLevel, newLevel int) *SummaryScreen {
	return &SummaryScreen{
		result:    result,
		unit:      unit,
		prevLevel: prevLevel,
		newLevel:  newLevel,
		cont: components.NewButton("Tiếp tục", true, func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}),
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Kết quả"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Tiếp tục"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	var cmd tea.Cmd
	s.cont, cmd = s.cont.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result
	cw := components.CardWidth(width)

	var b strings.Builder

	passed := r.Ratio() >= learner.PassThreshold
	if s.unit.IsExam() {
		b.WriteString(theme.Title.Render("Hoàn thành bài kiểm tra tổng hợp!"))
	} else if passed {
		b.WriteString(theme.Title.Render("Hoàn thành bài học!"))
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Cố gắng thêm chút nữa!"))
	}
	b.WriteString("\n\n")

	scoreStyle := theme.Correct
	if !passed {
		scoreStyle = theme.Incorrect
	}
	b.WriteString(scoreStyle.Render(fmt.Sprintf("%d / %d câu đúng  (%.0f%%)",
		r.Score, r.TotalQuestions, r.Ratio()*100)))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", r.Ratio(), false, cw-8)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	mins := r.TimeSpentSeconds / 60
	secs := r.TimeSpentSeconds % 60
	b.WriteString(theme.Body.Render(fmt.Sprintf("Bài: %s", r.UnitTitle)))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Thời gian: %d:%02d", mins, secs)))
	b.WriteString("\n")

	if passed && !s.unit.IsExam() {
		b.WriteString(theme.Correct.Render(fmt.Sprintf("+%d XP", s.unit.TotalXP)))
		b.WriteString("\n")
	}

	if s.newLevel != s.prevLevel {
		b.WriteString("\n")
		direction := "Thăng hạng!"
		style := theme.Correct
		if s.newLevel < s.prevLevel {
			direction = "Cần củng cố lại."
			style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		}
		b.WriteString(style.Render(fmt.Sprintf("%s Trình độ: %s → %s",
			direction, learner.LevelName(s.prevLevel), learner.LevelName(s.newLevel))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.cont.View())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(components.CardBox(b.String(), cw))
}
