package path

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/khanhvo/mathgenius/internal/learner"
	"github.com/khanhvo/mathgenius/internal/router"
)

func questions() []learner.Question {
	return []learner.Question{{
		ID:            "q1",
		Type:          learner.MultipleChoice,
		Content:       "2 + 5 = ?",
		Options:       []string{"6", "7", "8", "9"},
		CorrectAnswer: "7",
		Difficulty:    learner.Easy,
	}}
}

func testProfile() *learner.UserProfile {
	p := learner.New("Sơn", "02/12/2009", 7)
	p.LearningPath = []learner.LearningUnit{
		{ID: "u1", Title: "Phân số", Status: learner.StatusActive, Level: 2, Questions: questions()},
		{ID: "u2", Title: "Số thập phân", Status: learner.StatusLocked, Level: 2, Questions: questions()},
		{ID: "u3", Title: "Tỉ lệ", Status: learner.StatusLocked, Level: 2, Questions: questions()},
	}
	return p
}

func pushedScreen(t *testing.T, cmd tea.Cmd) router.PushScreenMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected a push message")
	}
	return push
}

func TestPathScreen_EnterStartsActiveUnit(t *testing.T) {
	s := New(nil, testProfile())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if pushedScreen(t, cmd).Screen == nil {
		t.Error("expected a quiz screen for the active unit")
	}
}

func TestPathScreen_EnterStartsLockedUnit(t *testing.T) {
	s := New(nil, testProfile())

	// Skip past the active unit to the locked one.
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if pushedScreen(t, cmd).Screen == nil {
		t.Error("expected a quiz screen for the locked unit")
	}
}

func TestPathScreen_CompletedUnitWithoutHistoryShowsError(t *testing.T) {
	p := testProfile()
	p.LearningPath[0].Status = learner.StatusCompleted
	s := New(nil, p)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if cmd != nil {
		t.Error("expected no command when no result exists to review")
	}
	if s.errMsg == "" {
		t.Error("expected an error message")
	}
}

func TestPathScreen_CompletedUnitOpensReview(t *testing.T) {
	p := testProfile()
	p.ApplyResult(p.LearningPath[0], learner.QuizResult{
		UnitID: "u1", Score: 4, TotalQuestions: 5,
		UserAnswers: map[string]string{"q1": "7"},
	})
	s := New(nil, p)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if pushedScreen(t, cmd).Screen == nil {
		t.Error("expected a review screen for the completed unit")
	}
}
