package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/khanhvo/mathgenius/internal/learner"
	"github.com/khanhvo/mathgenius/internal/router"
	"github.com/khanhvo/mathgenius/internal/screen"
	"github.com/khanhvo/mathgenius/internal/screens/home"
	"github.com/khanhvo/mathgenius/internal/screens/welcome"
	"github.com/khanhvo/mathgenius/internal/tutor"
	"github.com/khanhvo/mathgenius/internal/ui/layout"
)

// AppModel is the root Bubble Tea model. It owns the current learner
// profile and swaps the navigation stack when onboarding completes or
// the profile is reset.
type AppModel struct {
	svc     *tutor.Service
	profile *learner.UserProfile
	router  *router.Router
	width   int
	height  int
}

// newAppModel builds the root model. A missing profile starts the
// onboarding flow, otherwise the home menu.
func newAppModel(svc *tutor.Service, profile *learner.UserProfile) AppModel {
	var root screen.Screen
	if profile == nil {
		root = welcome.New(svc)
	} else {
		root = home.New(svc, profile)
	}
	return AppModel{
		svc:     svc,
		profile: profile,
		router:  router.New(root),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.ProfileChangedMsg:
		m.profile = msg.Profile
		if m.profile == nil {
			m.router = router.New(welcome.New(m.svc))
		}
		return m, nil

	case screen.SetupCompleteMsg:
		m.router = router.New(home.New(m.svc, m.profile))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if owner, ok := m.router.Active().(screen.EscOwner); ok && owner.OwnsEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	student, levelName := "", ""
	if m.profile != nil {
		student = m.profile.Name
		levelName = learner.LevelName(m.profile.ProficiencyLevel)
	}
	header := layout.RenderHeader(title, student, levelName, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if m.router.Depth() > 1 {
		footerHints = append(footerHints, layout.KeyHint{Key: "Esc", Description: "Quay lại"})
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Thoát"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run loads the stored profile and starts the Bubble Tea program.
func Run(ctx context.Context, svc *tutor.Service) error {
	profile, err := svc.LoadProfile(ctx)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	p := tea.NewProgram(newAppModel(svc, profile))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
