// Package assessment is the onboarding self-assessment: the student
// picks a starting proficiency tier, study-habit tags, and optional
// notes. The answers seed the baseline level and flavor every generated
// learning path.
package assessment

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/khanhvo/mathgenius/internal/learner"
	"github.com/khanhvo/mathgenius/internal/router"
	"github.com/khanhvo/mathgenius/internal/screen"
	"github.com/khanhvo/mathgenius/internal/screens/analysis"
	"github.com/khanhvo/mathgenius/internal/tutor"
	"github.com/khanhvo/mathgenius/internal/ui/components"
	"github.com/khanhvo/mathgenius/internal/ui/layout"
	"github.com/khanhvo/mathgenius/internal/ui/theme"
)

// Assessment stages, walked in order.
const (
	stepLevel = iota
	stepTags
	stepNotes
)

// habitTags are the selectable study-habit observations.
var habitTags = []string{
	"Tính toán còn chậm",
	"Thích câu đố và trò chơi",
	"Dễ mất tập trung",
	"Học tốt qua hình ảnh",
	"Ngại bài toán có lời văn",
	"Thích thử thách khó",
}

// savedMsg reports persistence of the assessment.
type savedMsg struct {
	Err error
}

// AssessmentScreen walks the three self-assessment steps.
type AssessmentScreen struct {
	svc     *tutor.Service
	profile *learner.UserProfile

	step     int
	cursor   int
	level    int
	selected map[int]bool
	notes    components.TextInput
	saving   bool
	errMsg   string
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)
var _ screen.EscOwner = (*AssessmentScreen)(nil)

// New creates the self-assessment screen.
func New(svc *tutor.Service, profile *learner.UserProfile) *AssessmentScreen {
	return &AssessmentScreen{
		svc:      svc,
		profile:  profile,
		cursor:   learner.LevelAverage - 1,
		selected: make(map[int]bool),
	}
}

func (a *AssessmentScreen) Init() tea.Cmd {
	return nil
}

func (a *AssessmentScreen) Title() string {
	return "Tự đánh giá"
}

func (a *AssessmentScreen) KeyHints() []layout.KeyHint {
	switch a.step {
	case stepTags:
		return []layout.KeyHint{
			{Key: "Space", Description: "Chọn / Bỏ chọn"},
			{Key: "Enter", Description: "Tiếp tục"},
			{Key: "Esc", Description: "Bước trước"},
		}
	case stepNotes:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Hoàn tất"},
			{Key: "Esc", Description: "Bước trước"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Tiếp tục"},
		}
	}
}

// OwnsEsc claims Esc past the first step so it walks back a step
// instead of popping the screen.
func (a *AssessmentScreen) OwnsEsc() bool {
	return a.step > stepLevel
}

func (a *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		a.saving = false
		if msg.Err != nil {
			a.errMsg = msg.Err.Error()
			return a, nil
		}
		next := analysis.New(a.svc, a.profile, analysis.ModeOnboarding)
		return a, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }

	case tea.KeyMsg:
		if a.saving {
			return a, nil
		}
		switch a.step {
		case stepLevel:
			return a.handleLevelKey(msg)
		case stepTags:
			return a.handleTagsKey(msg)
		default:
			return a.handleNotesKey(msg)
		}
	}
	return a, nil
}

func (a *AssessmentScreen) handleLevelKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < learner.LevelExcellent-1 {
			a.cursor++
		}
	case "enter":
		a.level = a.cursor + 1
		a.step = stepTags
		a.cursor = 0
	}
	return a, nil
}

func (a *AssessmentScreen) handleTagsKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(habitTags)-1 {
			a.cursor++
		}
	case " ", "space":
		a.selected[a.cursor] = !a.selected[a.cursor]
	case "enter":
		a.step = stepNotes
		a.notes = components.NewTextInput("Ví dụ: con hay nhầm dấu khi chuyển vế...", false, 120)
		return a, a.notes.Init()
	case "esc":
		a.step = stepLevel
		a.cursor = a.level - 1
	}
	return a, nil
}

func (a *AssessmentScreen) handleNotesKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.step = stepTags
		a.cursor = 0
		return a, nil
	case "enter":
		a.saving = true
		a.errMsg = ""
		svc, profile := a.svc, a.profile
		level, tags := a.level, a.tags()
		notes := strings.TrimSpace(a.notes.Value())
		return a, func() tea.Msg {
			return savedMsg{Err: svc.ApplySelfAssessment(context.Background(), profile, level, tags, notes)}
		}
	}
	var cmd tea.Cmd
	a.notes, cmd = a.notes.Update(msg)
	return a, cmd
}

// tags collects the chosen habit tags in display order.
func (a *AssessmentScreen) tags() []string {
	var out []string
	for i, tag := range habitTags {
		if a.selected[i] {
			out = append(out, tag)
		}
	}
	return out
}

func (a *AssessmentScreen) View(width, height int) string {
	cw := components.CardWidth(width)

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("Giúp thầy hiểu con hơn nhé!"))
	b.WriteString("\n\n")

	switch a.step {
	case stepLevel:
		b.WriteString(theme.Body.Render("Con tự thấy sức học Toán của mình thế nào?"))
		b.WriteString("\n\n")
		var list strings.Builder
		for i := 0; i < learner.LevelExcellent; i++ {
			line := "  " + learner.LevelName(i+1)
			style := theme.Unselected
			if i == a.cursor {
				line = "▸ " + learner.LevelName(i+1)
				style = theme.Selected
			}
			list.WriteString(style.Render(line))
			list.WriteString("\n")
		}
		b.WriteString(components.CardBox(list.String(), cw))

	case stepTags:
		b.WriteString(theme.Body.Render("Chọn những điều đúng với con (có thể chọn nhiều):"))
		b.WriteString("\n\n")
		var list strings.Builder
		for i, tag := range habitTags {
			mark := "☐"
			if a.selected[i] {
				mark = "☑"
			}
			line := "  " + mark + " " + tag
			style := theme.Unselected
			if i == a.cursor {
				line = "▸ " + mark + " " + tag
				style = theme.Selected
			}
			list.WriteString(style.Render(line))
			list.WriteString("\n")
		}
		b.WriteString(components.CardBox(list.String(), cw))

	default:
		b.WriteString(theme.Body.Render("Có điều gì con muốn thầy lưu ý không? (bỏ trống cũng được)"))
		b.WriteString("\n\n")
		b.WriteString(components.CardBox(a.notes.View(), cw))
	}

	if a.saving {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Đang lưu..."))
	} else if a.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render(a.errMsg))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}
