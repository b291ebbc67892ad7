// Package home is the main menu shown once a learner profile exists.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/khanhvo/mathgenius/internal/learner"
	"github.com/khanhvo/mathgenius/internal/router"
	"github.com/khanhvo/mathgenius/internal/screen"
	"github.com/khanhvo/mathgenius/internal/screens/analysis"
	"github.com/khanhvo/mathgenius/internal/screens/games"
	"github.com/khanhvo/mathgenius/internal/screens/history"
	"github.com/khanhvo/mathgenius/internal/screens/path"
	"github.com/khanhvo/mathgenius/internal/screens/quizscreen"
	"github.com/khanhvo/mathgenius/internal/screens/settings"
	"github.com/khanhvo/mathgenius/internal/tutor"
	"github.com/khanhvo/mathgenius/internal/ui/components"
	"github.com/khanhvo/mathgenius/internal/ui/layout"
	"github.com/khanhvo/mathgenius/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	svc     *tutor.Service
	profile *learner.UserProfile
	menu    components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home menu for the given learner.
func New(svc *tutor.Service, profile *learner.UserProfile) *HomeScreen {
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: build()}
			}
		}
	}

	items := []components.MenuItem{
		{Label: "LỘ TRÌNH HỌC TẬP", Action: push(func() screen.Screen {
			return path.New(svc, profile)
		})},
		{Label: "KIỂM TRA TỔNG HỢP", Action: push(func() screen.Screen {
			return quizscreen.NewExam(svc, profile)
		})},
		{Label: "GÓC GIẢI TRÍ", Action: push(func() screen.Screen {
			return games.New(svc, profile)
		})},
		{Label: "LỊCH SỬ HỌC TẬP", Action: push(func() screen.Screen {
			return history.New(profile)
		})},
		{Label: "HỒ SƠ THẦN SỐ HỌC", Action: push(func() screen.Screen {
			return analysis.New(svc, profile, analysis.ModeView)
		})},
		{Label: "CÀI ĐẶT", Action: push(func() screen.Screen {
			return settings.New(svc, profile)
		})},
		{Label: "THOÁT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		svc:     svc,
		profile: profile,
		menu:    components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Trang chủ"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Di chuyển"},
		{Key: "Enter", Description: "Chọn"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.CardWidth(width)

	greeting := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Chào %s!", h.profile.Name))

	completed := 0
	for _, u := range h.profile.LearningPath {
		if u.Status == learner.StatusCompleted {
			completed++
		}
	}
	stats := theme.Hint.Render(fmt.Sprintf(
		"Số chủ đạo %d · %s · %d/%d bài hoàn thành · %d lượt kiểm tra",
		h.profile.NumerologyNumber,
		learner.LevelName(h.profile.ProficiencyLevel),
		completed, len(h.profile.LearningPath),
		len(h.profile.History),
	))

	content := strings.Join([]string{greeting, stats, "", h.menu.View()}, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(components.CardBox(content, cw))
}
