// Package settings manages the provider credential and the profile
// reset. The entered API key is persisted in the durable store and
// survives a profile reset.
package settings

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/khanhvo/mathgenius/internal/learner"
	"github.com/khanhvo/mathgenius/internal/screen"
	"github.com/khanhvo/mathgenius/internal/tutor"
	"github.com/khanhvo/mathgenius/internal/ui/components"
	"github.com/khanhvo/mathgenius/internal/ui/layout"
	"github.com/khanhvo/mathgenius/internal/ui/theme"
)

const (
	rowCredential = iota
	rowReset
	rowCount
)

// credentialSavedMsg reports persistence of a new API key.
type credentialSavedMsg struct {
	Err error
}

// profileResetMsg reports the outcome of a profile reset.
type profileResetMsg struct {
	Err error
}

// SettingsScreen is the credential and reset menu.
type SettingsScreen struct {
	svc     *tutor.Service
	profile *learner.UserProfile

	cursor     int
	editing    bool
	confirming bool
	input      components.TextInput
	status     string
	errMsg     string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates the settings screen.
func New(svc *tutor.Service, profile *learner.UserProfile) *SettingsScreen {
	return &SettingsScreen{svc: svc, profile: profile}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Cài đặt"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.editing:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Lưu"},
			{Key: "Esc", Description: "Hủy"},
		}
	case s.confirming:
		return []layout.KeyHint{
			{Key: "Y", Description: "Xóa hồ sơ"},
			{Key: "N", Description: "Giữ lại"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Chọn"},
			{Key: "Esc", Description: "Quay lại"},
		}
	}
}

// OwnsEsc claims Esc while editing the key or confirming the reset.
func (s *SettingsScreen) OwnsEsc() bool {
	return s.editing || s.confirming
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case credentialSavedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.status = "Đã lưu API key."
			s.errMsg = ""
		}
		return s, nil

	case profileResetMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, func() tea.Msg { return screen.ProfileChangedMsg{Profile: nil} }

	case tea.KeyMsg:
		if s.editing {
			return s.handleEditKey(msg)
		}
		if s.confirming {
			return s.handleConfirmKey(msg)
		}
		return s.handleMenuKey(msg)
	}
	return s, nil
}

func (s *SettingsScreen) handleMenuKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < rowCount-1 {
			s.cursor++
		}
	case "enter":
		switch s.cursor {
		case rowCredential:
			s.editing = true
			s.status = ""
			s.input = components.NewTextInput("API key...", false, 128)
			return s, s.input.Init()
		case rowReset:
			s.confirming = true
		}
	}
	return s, nil
}

func (s *SettingsScreen) handleEditKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.editing = false
		return s, nil
	case "enter":
		key := strings.TrimSpace(s.input.Value())
		if key == "" {
			return s, nil
		}
		s.editing = false
		svc := s.svc
		return s, func() tea.Msg {
			return credentialSavedMsg{Err: svc.SetCredential(context.Background(), key)}
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SettingsScreen) handleConfirmKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		s.confirming = false
		svc := s.svc
		return s, func() tea.Msg {
			return profileResetMsg{Err: svc.ResetProfile(context.Background())}
		}
	case "n", "N", "esc":
		s.confirming = false
	}
	return s, nil
}

func (s *SettingsScreen) View(width, height int) string {
	cw := components.CardWidth(width)

	credState := theme.Incorrect.Render("chưa có")
	if s.svc.HasCredential() {
		credState = theme.Correct.Render("đã cấu hình")
	}

	rows := []string{
		fmt.Sprintf("API key (%s): %s", s.svc.ProviderName(), credState),
		"Xóa hồ sơ và bắt đầu lại",
	}

	var b strings.Builder
	for i, row := range rows {
		style := lipgloss.NewStyle().Foreground(theme.Text)
		prefix := "  "
		if i == s.cursor {
			style = style.Foreground(theme.Primary).Bold(true)
			prefix = "▸ "
		}
		b.WriteString(style.Render(prefix + row))
		b.WriteString("\n")
	}

	if s.editing {
		b.WriteString("\n")
		b.WriteString(s.input.View())
		b.WriteString("\n")
	}
	if s.confirming {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render("Xóa toàn bộ hồ sơ, lộ trình và lịch sử? (y/n)"))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Một bản sao lưu sẽ được giữ lại trong cơ sở dữ liệu."))
		b.WriteString("\n")
	}

	if s.status != "" {
		b.WriteString("\n")
		b.WriteString(theme.Correct.Render(s.status))
	}
	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render(s.errMsg))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(components.CardBox(b.String(), cw))
}
