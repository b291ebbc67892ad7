package assessment

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/khanhvo/mathgenius/internal/learner"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testScreen() *AssessmentScreen {
	return New(nil, learner.New("Sơn", "02/12/2009", 7))
}

func TestAssessment_StartsAtAverage(t *testing.T) {
	a := testScreen()
	if a.cursor != learner.LevelAverage-1 {
		t.Errorf("cursor = %d, want %d", a.cursor, learner.LevelAverage-1)
	}
	if a.OwnsEsc() {
		t.Error("first step must not claim Esc")
	}
}

func TestAssessment_LevelPickAdvancesToTags(t *testing.T) {
	a := testScreen()

	a.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	a.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if a.step != stepTags {
		t.Errorf("step = %d, want %d", a.step, stepTags)
	}
	if a.level != learner.LevelGood {
		t.Errorf("level = %d, want %d", a.level, learner.LevelGood)
	}
	if !a.OwnsEsc() {
		t.Error("later steps must claim Esc")
	}
}

func TestAssessment_TagToggleAndCollect(t *testing.T) {
	a := testScreen()
	a.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	a.Update(keyPress(' '))
	a.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	a.Update(keyPress(' '))

	got := a.tags()
	want := []string{habitTags[0], habitTags[1]}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("tags = %v, want %v", got, want)
	}

	// A second press deselects.
	a.Update(keyPress(' '))
	if len(a.tags()) != 1 {
		t.Errorf("tags after deselect = %v, want one entry", a.tags())
	}
}

func TestAssessment_EscWalksBackAStep(t *testing.T) {
	a := testScreen()
	a.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	a.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if a.step != stepNotes {
		t.Fatalf("step = %d, want %d", a.step, stepNotes)
	}

	a.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if a.step != stepTags {
		t.Errorf("step = %d, want %d", a.step, stepTags)
	}
	a.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if a.step != stepLevel {
		t.Errorf("step = %d, want %d", a.step, stepLevel)
	}
}

func TestAssessment_NotesEnterEmitsSave(t *testing.T) {
	a := testScreen()
	a.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	a.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	_, cmd := a.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a save command on Enter")
	}
	if !a.saving {
		t.Error("expected the screen to enter the saving state")
	}
}

func TestAssessment_Display(t *testing.T) {
	a := testScreen()
	if a.View(80, 24) == "" {
		t.Error("expected non-empty view")
	}
}
