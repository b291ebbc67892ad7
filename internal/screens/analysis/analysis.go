// Package analysis renders the numerology learning profile: life path
// number, personality title, learning style, and math approach. During
// onboarding it continues into topic selection; from the home menu it is
// a read-only view.
package analysis

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/khanhvo/mathgenius/internal/learner"
	"github.com/khanhvo/mathgenius/internal/router"
	"github.com/khanhvo/mathgenius/internal/screen"
	"github.com/khanhvo/mathgenius/internal/screens/topics"
	"github.com/khanhvo/mathgenius/internal/tutor"
	"github.com/khanhvo/mathgenius/internal/ui/components"
	"github.com/khanhvo/mathgenius/internal/ui/layout"
	"github.com/khanhvo/mathgenius/internal/ui/theme"
)

// Mode controls what Enter does on this screen.
type Mode int

const (
	// ModeOnboarding continues into topic selection.
	ModeOnboarding Mode = iota
	// ModeView returns to the previous screen.
	ModeView
)

// AnalysisScreen shows the numerology profile card.
type AnalysisScreen struct {
	svc     *tutor.Service
	profile *learner.UserProfile
	mode    Mode
}

var _ screen.Screen = (*AnalysisScreen)(nil)
var _ screen.KeyHintProvider = (*AnalysisScreen)(nil)

// New creates the analysis screen over an existing profile.
func New(svc *tutor.Service, profile *learner.UserProfile, mode Mode) *AnalysisScreen {
	return &AnalysisScreen{svc: svc, profile: profile, mode: mode}
}

func (a *AnalysisScreen) Init() tea.Cmd {
	return nil
}

func (a *AnalysisScreen) Title() string {
	return "Thần số học"
}

func (a *AnalysisScreen) KeyHints() []layout.KeyHint {
	if a.mode == ModeOnboarding {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Chọn chủ đề học"},
		}
	}
	return []layout.KeyHint{
		{Key: "Esc", Description: "Quay lại"},
	}
}

func (a *AnalysisScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	if kmsg.String() == "enter" {
		if a.mode == ModeOnboarding {
			next := topics.New(a.svc, a.profile, topics.ModeOnboarding)
			return a, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}
		return a, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return a, nil
}

func (a *AnalysisScreen) View(width, height int) string {
	p := a.profile
	np := p.NumerologyProfile
	if np == nil {
		prof := a.svc.ComputeNumerologyProfile(p.Name, p.DOB)
		np = &prof
	}
	cw := components.CardWidth(width)

	numberBadge := lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(theme.Secondary).
		Bold(true).
		Padding(0, 2).
		Render(fmt.Sprintf(" %d ", p.NumerologyNumber))

	var card strings.Builder
	card.WriteString(numberBadge)
	card.WriteString("\n\n")
	card.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(np.Title))
	card.WriteString("\n\n")
	card.WriteString(wrap(np.Overview, cw-8))
	card.WriteString("\n\n")
	card.WriteString(section("Phong cách học", np.LearningStyle, cw))
	card.WriteString(section("Tư duy Toán", np.MathApproach, cw))
	card.WriteString(section("Phương pháp hiệu quả", np.EffectiveMethod, cw))

	if len(np.Strengths) > 0 {
		card.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Điểm mạnh"))
		card.WriteString("\n")
		for _, s := range np.Strengths {
			card.WriteString(theme.Body.Render("• " + s))
			card.WriteString("\n")
		}
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("Hồ sơ học tập của %s", p.Name)))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Lớp %d  ·  %s", p.Grade, learner.LevelName(p.ProficiencyLevel))))
	b.WriteString("\n\n")
	b.WriteString(components.CardBox(card.String(), cw))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

func section(title, body string, cw int) string {
	return lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(title) +
		"\n" + wrap(body, cw-8) + "\n\n"
}

// wrap folds text to at most w runes per line on word boundaries.
func wrap(s string, w int) string {
	if w < 10 {
		w = 10
	}
	words := strings.Fields(s)
	var lines []string
	var line string
	for _, word := range words {
		if line == "" {
			line = word
			continue
		}
		if len([]rune(line))+1+len([]rune(word)) > w {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	if line != "" {
		lines = append(lines, line)
	}
	return theme.Body.Render(strings.Join(lines, "\n"))
}
