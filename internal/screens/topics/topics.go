// Package topics is the path setup screen: the student toggles syllabus
// topics for their grade, optionally adds custom ones, and triggers
// learning path generation.
package topics

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/khanhvo/mathgenius/internal/contentgen"
	"github.com/khanhvo/mathgenius/internal/curriculum"
	"github.com/khanhvo/mathgenius/internal/learner"
	"github.com/khanhvo/mathgenius/internal/router"
	"github.com/khanhvo/mathgenius/internal/screen"
	"github.com/khanhvo/mathgenius/internal/tutor"
	"github.com/khanhvo/mathgenius/internal/ui/components"
	"github.com/khanhvo/mathgenius/internal/ui/layout"
	"github.com/khanhvo/mathgenius/internal/ui/theme"
)

// Mode controls where the screen goes after a path is generated.
type Mode int

const (
	// ModeOnboarding signals setup completion to the root model.
	ModeOnboarding Mode = iota
	// ModeRevise pops back to the screen that pushed this one.
	ModeRevise
)

// pathReadyMsg reports the outcome of path generation.
type pathReadyMsg struct {
	Units  []learner.LearningUnit
	Topics []string
	Err    error
}

// TopicsScreen is the interactive topic picker.
type TopicsScreen struct {
	svc        *tutor.Service
	profile    *learner.UserProfile
	mode       Mode
	topics     []curriculum.Topic
	selected   map[string]bool
	cursor     int
	custom     components.TextInput
	customMode bool
	generating bool
	errMsg     string
}

var _ screen.Screen = (*TopicsScreen)(nil)
var _ screen.KeyHintProvider = (*TopicsScreen)(nil)

// New creates the topic picker preloaded with the grade's syllabus and
// the default selection.
func New(svc *tutor.Service, profile *learner.UserProfile, mode Mode) *TopicsScreen {
	t := &TopicsScreen{
		svc:      svc,
		profile:  profile,
		mode:     mode,
		topics:   curriculum.TopicsForGrade(profile.Grade),
		selected: make(map[string]bool),
		custom:   components.NewTextInput("Chủ đề bạn muốn học thêm...", false, 60),
	}
	for _, id := range curriculum.DefaultSelection(profile.Grade) {
		t.selected[id] = true
	}
	t.custom.Model.Blur()
	return t
}

func (t *TopicsScreen) Init() tea.Cmd {
	return nil
}

func (t *TopicsScreen) Title() string {
	return "Chọn chủ đề"
}

func (t *TopicsScreen) KeyHints() []layout.KeyHint {
	if t.customMode {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Thêm chủ đề"},
			{Key: "Esc", Description: "Hủy"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Chọn"},
		{Key: "A", Description: "Tất cả"},
		{Key: "C", Description: "Chủ đề khác"},
		{Key: "Enter", Description: "Tạo lộ trình"},
	}
}

// OwnsEsc claims Esc while the custom topic input is open.
func (t *TopicsScreen) OwnsEsc() bool {
	return t.customMode
}

func (t *TopicsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case pathReadyMsg:
		return t.handleReady(msg)
	case tea.KeyMsg:
		if t.generating {
			return t, nil
		}
		if t.customMode {
			return t.handleCustomKey(msg)
		}
		return t.handleKey(msg)
	}
	return t, nil
}

func (t *TopicsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if t.cursor > 0 {
			t.cursor--
		}
	case "down", "j":
		if t.cursor < len(t.topics)-1 {
			t.cursor++
		}
	case " ", "space":
		id := t.topics[t.cursor].ID
		t.selected[id] = !t.selected[id]
	case "a":
		all := len(t.selectedLabels()) == len(t.topics)
		for _, topic := range t.topics {
			t.selected[topic.ID] = !all
		}
	case "c":
		t.customMode = true
		return t, t.custom.Model.Focus()
	case "enter":
		return t.generate()
	}
	return t, nil
}

func (t *TopicsScreen) handleCustomKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		t.customMode = false
		t.custom.Model.Blur()
		return t, nil
	case "enter":
		label := strings.TrimSpace(t.custom.Value())
		if label != "" {
			id := fmt.Sprintf("custom-%d", len(t.topics))
			t.topics = append(t.topics, curriculum.Topic{
				ID:       id,
				Label:    label,
				SubLabel: "Chủ đề tự chọn",
			})
			t.selected[id] = true
		}
		t.custom = components.NewTextInput("Chủ đề bạn muốn học thêm...", false, 60)
		t.custom.Model.Blur()
		t.customMode = false
		return t, nil
	}
	var cmd tea.Cmd
	t.custom, cmd = t.custom.Update(msg)
	return t, cmd
}

func (t *TopicsScreen) generate() (screen.Screen, tea.Cmd) {
	labels := t.selectedLabels()
	if len(labels) == 0 {
		t.errMsg = "Chọn ít nhất một chủ đề."
		return t, nil
	}

	t.errMsg = ""
	t.generating = true
	svc, profile := t.svc, t.profile
	return t, func() tea.Msg {
		units, err := svc.GenerateLearningPath(context.Background(), profile, labels)
		return pathReadyMsg{Units: units, Topics: labels, Err: err}
	}
}

func (t *TopicsScreen) handleReady(msg pathReadyMsg) (screen.Screen, tea.Cmd) {
	t.generating = false
	if msg.Err != nil {
		if errors.Is(msg.Err, contentgen.ErrMissingCredential) {
			t.errMsg = "Chưa có API key. Vào Cài đặt để nhập key trước."
		} else {
			t.errMsg = msg.Err.Error()
		}
		return t, nil
	}

	if err := t.svc.ApplyLearningPath(context.Background(), t.profile, msg.Units, msg.Topics); err != nil {
		t.errMsg = err.Error()
		return t, nil
	}

	if t.mode == ModeOnboarding {
		return t, func() tea.Msg { return screen.SetupCompleteMsg{} }
	}
	return t, func() tea.Msg { return router.PopScreenMsg{} }
}

func (t *TopicsScreen) selectedLabels() []string {
	var labels []string
	for _, topic := range t.topics {
		if t.selected[topic.ID] {
			labels = append(labels, topic.Label)
		}
	}
	return labels
}

func (t *TopicsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(fmt.Sprintf("Chủ đề & Ôn thi — Lớp %d", t.profile.Grade)))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("AI sẽ phân tích lịch sử học tập để điều chỉnh độ khó bài học."))
	b.WriteString("\n\n")

	for i, topic := range t.topics {
		mark := "[ ]"
		if t.selected[topic.ID] {
			mark = "[✓]"
		}
		line := fmt.Sprintf("%s %s — %s", mark, topic.Label, topic.SubLabel)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if topic.Review {
			style = style.Foreground(theme.Accent)
		}
		if i == t.cursor && !t.customMode {
			style = style.Bold(true)
			if !topic.Review {
				style = style.Foreground(theme.Primary)
			}
			line = "▸ " + line
		} else {
			line = "  " + line
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if t.customMode {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, t.custom.View()))
		b.WriteString("\n")
	}

	if t.generating {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Đang tạo lộ trình tối ưu (AI)... có thể mất đến một phút.")))
	} else if t.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Incorrect.Render(t.errMsg)))
	}

	return b.String()
}
