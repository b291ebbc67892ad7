// Package games is the entertainment corner: AI-generated riddles and
// mini challenges with one gradable answer each, plus the hint and
// fun-fact reveal after answering.
package games

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/khanhvo/mathgenius/internal/contentgen"
	"github.com/khanhvo/mathgenius/internal/learner"
	"github.com/khanhvo/mathgenius/internal/quiz"
	"github.com/khanhvo/mathgenius/internal/screen"
	"github.com/khanhvo/mathgenius/internal/tutor"
	"github.com/khanhvo/mathgenius/internal/ui/components"
	"github.com/khanhvo/mathgenius/internal/ui/layout"
	"github.com/khanhvo/mathgenius/internal/ui/theme"
)

// activitiesReadyMsg delivers a generated activity batch.
type activitiesReadyMsg struct {
	Activities []learner.GameActivity
	Err        error
}

// GamesScreen lists activities and plays one at a time.
type GamesScreen struct {
	svc     *tutor.Service
	profile *learner.UserProfile

	cursor     int
	generating bool
	errMsg     string

	// play state
	playing  bool
	activity learner.GameActivity
	input    components.TextInput
	showHint bool
	answered bool
	correct  bool
}

var _ screen.Screen = (*GamesScreen)(nil)
var _ screen.KeyHintProvider = (*GamesScreen)(nil)

// New creates the game corner screen.
func New(svc *tutor.Service, profile *learner.UserProfile) *GamesScreen {
	return &GamesScreen{svc: svc, profile: profile}
}

func (g *GamesScreen) Init() tea.Cmd {
	if len(g.profile.CurrentGames) > 0 {
		return nil
	}
	return g.regenerate()
}

func (g *GamesScreen) Title() string {
	return "Góc giải trí"
}

func (g *GamesScreen) KeyHints() []layout.KeyHint {
	if g.playing {
		if g.answered {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Danh sách"},
			}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Trả lời"},
			{Key: "H", Description: "Gợi ý"},
			{Key: "Esc", Description: "Danh sách"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Chơi"},
		{Key: "R", Description: "Trò mới"},
		{Key: "Esc", Description: "Quay lại"},
	}
}

// OwnsEsc claims Esc while playing so leaving an activity does not pop
// the whole screen.
func (g *GamesScreen) OwnsEsc() bool {
	return g.playing
}

func (g *GamesScreen) regenerate() tea.Cmd {
	g.generating = true
	g.errMsg = ""
	svc, profile := g.svc, g.profile
	return func() tea.Msg {
		activities, err := svc.GenerateGames(context.Background(), profile)
		return activitiesReadyMsg{Activities: activities, Err: err}
	}
}

func (g *GamesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case activitiesReadyMsg:
		g.generating = false
		if msg.Err != nil {
			if errors.Is(msg.Err, contentgen.ErrMissingCredential) {
				g.errMsg = "Chưa có API key. Vào Cài đặt để nhập key trước."
			} else {
				g.errMsg = msg.Err.Error()
			}
			return g, nil
		}
		if err := g.svc.ApplyGames(context.Background(), g.profile, msg.Activities); err != nil {
			g.errMsg = err.Error()
		}
		g.cursor = 0
		return g, nil

	case tea.KeyMsg:
		if g.generating {
			return g, nil
		}
		if g.playing {
			return g.handlePlayKey(msg)
		}
		return g.handleListKey(msg)
	}

	if g.playing && !g.answered {
		var cmd tea.Cmd
		g.input, cmd = g.input.Update(msg)
		return g, cmd
	}
	return g, nil
}

func (g *GamesScreen) handleListKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	activities := g.profile.CurrentGames
	switch msg.String() {
	case "up", "k":
		if g.cursor > 0 {
			g.cursor--
		}
	case "down", "j":
		if g.cursor < len(activities)-1 {
			g.cursor++
		}
	case "r":
		return g, g.regenerate()
	case "enter":
		if g.cursor >= len(activities) {
			return g, nil
		}
		g.playing = true
		g.activity = activities[g.cursor]
		g.showHint = false
		g.answered = false
		g.input = components.NewTextInput("Câu trả lời của bạn...", false, 40)
		return g, g.input.Init()
	}
	return g, nil
}

func (g *GamesScreen) handlePlayKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if g.answered {
		if msg.String() == "enter" || msg.String() == "esc" {
			g.playing = false
		}
		return g, nil
	}

	switch msg.String() {
	case "esc":
		g.playing = false
		return g, nil
	case "h":
		if g.activity.Hint != "" {
			g.showHint = true
			return g, nil
		}
	case "enter":
		value := strings.TrimSpace(g.input.Value())
		if value == "" {
			return g, nil
		}
		g.correct = quiz.IsCorrect(value, g.activity.Answer)
		g.answered = true
		g.input.Submit(g.correct)
		if err := g.svc.CompleteGame(context.Background(), g.profile, g.activity, g.correct, value); err != nil {
			g.errMsg = err.Error()
		}
		return g, nil
	}

	var cmd tea.Cmd
	g.input, cmd = g.input.Update(msg)
	return g, cmd
}

func (g *GamesScreen) View(width, height int) string {
	if g.generating {
		return centered(width, height,
			theme.Hint.Render("Đang nghĩ ra trò chơi mới cho bạn..."))
	}
	if g.playing {
		return g.playView(width, height)
	}
	return g.listView(width, height)
}

func (g *GamesScreen) listView(width, height int) string {
	activities := g.profile.CurrentGames
	if len(activities) == 0 {
		msg := "Chưa có trò chơi nào. Nhấn R để tạo."
		if g.errMsg != "" {
			msg = g.errMsg
		}
		return centered(width, height, theme.Hint.Render(msg))
	}

	completed := make(map[string]bool, len(g.profile.CompletedGameIDs))
	for _, id := range g.profile.CompletedGameIDs {
		completed[id] = true
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Góc giải trí"))
	b.WriteString("\n\n")

	for i, a := range activities {
		mark := typeIcon(a.Type)
		if completed[a.ID] {
			mark = "✓"
		}
		line := fmt.Sprintf("%s %s  (%s · %s · %d XP)", mark, a.Title, a.Difficulty, a.Duration, a.XPReward)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if completed[a.ID] {
			style = style.Foreground(theme.TextDim)
		}
		if i == g.cursor {
			style = style.Foreground(theme.Primary).Bold(true)
			line = "▸ " + line
		} else {
			line = "  " + line
		}

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
		if i == g.cursor && a.Description != "" {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Hint.Render("    "+a.Description)))
			b.WriteString("\n")
		}
	}

	if g.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Incorrect.Render(g.errMsg)))
	}
	return b.String()
}

func (g *GamesScreen) playView(width, height int) string {
	a := g.activity
	cw := components.CardWidth(width)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(a.Title))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(a.InteractiveContent))
	b.WriteString("\n\n")

	if g.showHint && !g.answered {
		b.WriteString(theme.Hint.Render("Gợi ý: " + a.Hint))
		b.WriteString("\n\n")
	}

	b.WriteString(g.input.View())

	if g.answered {
		b.WriteString("\n\n")
		if g.correct {
			b.WriteString(theme.Correct.Render(fmt.Sprintf("✓ Tuyệt vời! +%d XP", a.XPReward)))
		} else {
			b.WriteString(theme.Incorrect.Render("✗ Chưa đúng. Đáp án: " + a.Answer))
		}
		if a.FunFact != "" {
			b.WriteString("\n")
			b.WriteString(theme.Hint.Render("Bạn có biết? " + a.FunFact))
		}
	}

	return centered(width, height, components.CardBox(b.String(), cw))
}

func typeIcon(activityType string) string {
	switch activityType {
	case "puzzle":
		return "◆"
	case "challenge":
		return "★"
	default:
		return "▶"
	}
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
