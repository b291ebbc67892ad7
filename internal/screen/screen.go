package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/khanhvo/mathgenius/internal/learner"
	"github.com/khanhvo/mathgenius/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// EscOwner is an optional interface for screens that claim the Esc key
// while in a transient input state. The root model forwards Esc to them
// instead of popping the stack.
type EscOwner interface {
	OwnsEsc() bool
}

// ProfileChangedMsg announces that the student profile was created,
// replaced, or cleared (nil after a reset). The root model refreshes the
// header from it before the message reaches the screens.
type ProfileChangedMsg struct {
	Profile *learner.UserProfile
}

// SetupCompleteMsg signals that onboarding finished: the profile exists
// and a first learning path was generated. The root model swaps its stack
// to the home screen.
type SetupCompleteMsg struct{}
