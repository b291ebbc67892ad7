// Package welcome is the onboarding screen: it collects the student's
// name, birth date, and grade, creates the profile, and hands off to the
// self-assessment screen.
package welcome

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/khanhvo/mathgenius/internal/curriculum"
	"github.com/khanhvo/mathgenius/internal/learner"
	"github.com/khanhvo/mathgenius/internal/router"
	"github.com/khanhvo/mathgenius/internal/screen"
	"github.com/khanhvo/mathgenius/internal/screens/assessment"
	"github.com/khanhvo/mathgenius/internal/tutor"
	"github.com/khanhvo/mathgenius/internal/ui/components"
	"github.com/khanhvo/mathgenius/internal/ui/layout"
	"github.com/khanhvo/mathgenius/internal/ui/theme"
)

const banner = ` __  __       _   _     ____            _
|  \/  | __ _| |_| |__ / ___| ___ _ __ (_)_   _ ___
| |\/| |/ _' | __| '_ \ |  _ / _ \ '_ \| | | | / __|
| |  | | (_| | |_| | | | |_| |  __/ | | | | |_| \__ \
|_|  |_|\__,_|\__|_| |_|\____|\___|_| |_|_|\__,_|___/`

const (
	fieldName = iota
	fieldDOB
	fieldGrade
	fieldCount
)

// profileCreatedMsg reports the result of profile creation.
type profileCreatedMsg struct {
	Profile *learner.UserProfile
	Err     error
}

// WelcomeScreen collects the student info form.
type WelcomeScreen struct {
	svc    *tutor.Service
	inputs [fieldCount]components.TextInput
	focus  int
	errMsg string
	saving bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates the onboarding screen.
func New(svc *tutor.Service) *WelcomeScreen {
	w := &WelcomeScreen{svc: svc}
	w.inputs[fieldName] = components.NewTextInput("Tên của bạn...", false, 40)
	w.inputs[fieldDOB] = components.NewTextInput("dd/mm/yyyy", false, 10)
	w.inputs[fieldGrade] = components.NewTextInput("1-12", true, 2)
	w.inputs[fieldDOB].Model.Blur()
	w.inputs[fieldGrade].Model.Blur()
	return w
}

func (w *WelcomeScreen) Title() string {
	return "Bắt đầu"
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.inputs[fieldName].Init()
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab/Enter", Description: "Tiếp tục"},
		{Key: "Ctrl+C", Description: "Thoát"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileCreatedMsg:
		w.saving = false
		if msg.Err != nil {
			w.errMsg = msg.Err.Error()
			return w, nil
		}
		next := assessment.New(w.svc, msg.Profile)
		return w, tea.Batch(
			func() tea.Msg { return screen.ProfileChangedMsg{Profile: msg.Profile} },
			func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} },
		)

	case tea.KeyMsg:
		if w.saving {
			return w, nil
		}
		switch msg.String() {
		case "tab", "down":
			return w, w.setFocus((w.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return w, w.setFocus((w.focus + fieldCount - 1) % fieldCount)
		case "enter":
			if w.focus < fieldCount-1 {
				return w, w.setFocus(w.focus + 1)
			}
			return w.submit()
		}
	}

	var cmd tea.Cmd
	w.inputs[w.focus], cmd = w.inputs[w.focus].Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) setFocus(i int) tea.Cmd {
	w.inputs[w.focus].Model.Blur()
	w.focus = i
	return w.inputs[i].Model.Focus()
}

func (w *WelcomeScreen) submit() (screen.Screen, tea.Cmd) {
	name := strings.TrimSpace(w.inputs[fieldName].Value())
	dob := strings.TrimSpace(w.inputs[fieldDOB].Value())
	grade, gradeErr := w.inputs[fieldGrade].NumericValue()

	switch {
	case name == "":
		w.errMsg = "Hãy nhập tên của bạn."
		return w, w.setFocus(fieldName)
	case dob == "":
		w.errMsg = "Hãy nhập ngày sinh (dd/mm/yyyy)."
		return w, w.setFocus(fieldDOB)
	case gradeErr != nil || !curriculum.ValidGrade(grade):
		w.errMsg = "Lớp phải từ 1 đến 12."
		return w, w.setFocus(fieldGrade)
	}

	w.errMsg = ""
	w.saving = true
	svc := w.svc
	return w, func() tea.Msg {
		p, err := svc.CreateProfile(context.Background(), name, dob, grade)
		return profileCreatedMsg{Profile: p, Err: err}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	cw := components.CardWidth(width)

	var b strings.Builder
	if !layout.IsCompactWidth(width) && !layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(banner))
		b.WriteString("\n\n")
	}
	b.WriteString(theme.Subtitle.Render("Gia sư Toán cá nhân hóa bằng AI"))
	b.WriteString("\n\n")

	labels := [fieldCount]string{"Họ tên", "Ngày sinh", "Lớp"}
	var form strings.Builder
	for i := range w.inputs {
		label := labels[i]
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i == w.focus {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		form.WriteString(style.Render(label))
		form.WriteString("\n")
		form.WriteString(w.inputs[i].View())
		form.WriteString("\n\n")
	}
	b.WriteString(components.CardBox(form.String(), cw))

	if w.saving {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Đang tạo hồ sơ..."))
	} else if w.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render(w.errMsg))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}
