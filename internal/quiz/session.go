package quiz

import (
	"time"

	"github.com/khanhvo/mathgenius/internal/learner"
)

// Session is the state machine over one unit's ordered question list.
// Each question moves Unanswered → Checked the moment an answer is
// submitted; there is no separate submit-all step and no revising a
// checked answer. Review sessions start with every question checked and
// accept no mutation.
//
// Precondition: the unit has at least one question. Callers guard this
// before starting a session; the machine itself does not.
type Session struct {
	unit    learner.LearningUnit
	answers map[string]string
	checked map[string]bool
	index   int
	review  bool
	started time.Time
}

// Start begins a fresh session on the unit.
func Start(unit learner.LearningUnit) *Session {
	return &Session{
		unit:    unit,
		answers: make(map[string]string),
		checked: make(map[string]bool),
		started: time.Now(),
	}
}

// StartReview begins a read-only replay pre-populated from a stored
// result. Every question starts checked; Answer is a no-op.
func StartReview(unit learner.LearningUnit, storedAnswers map[string]string) *Session {
	s := &Session{
		unit:    unit,
		answers: make(map[string]string, len(storedAnswers)),
		checked: make(map[string]bool, len(unit.Questions)),
		review:  true,
		started: time.Now(),
	}
	for id, ans := range storedAnswers {
		s.answers[id] = ans
	}
	for _, q := range unit.Questions {
		s.checked[q.ID] = true
	}
	return s
}

// Review reports whether this is a read-only replay.
func (s *Session) Review() bool { return s.review }

// Unit returns the unit under assessment.
func (s *Session) Unit() learner.LearningUnit { return s.unit }

// Current returns the question at the cursor.
func (s *Session) Current() learner.Question {
	return s.unit.Questions[s.index]
}

// Index returns the zero-based cursor position.
func (s *Session) Index() int { return s.index }

// Total returns the question count.
func (s *Session) Total() int { return len(s.unit.Questions) }

// Answer submits a value for the given question, moving it to Checked,
// and reports whether it was correct. Returns (false, false) when the
// submission is rejected: review mode, unknown id, or already checked.
func (s *Session) Answer(questionID, value string) (accepted, correct bool) {
	if s.review || s.checked[questionID] {
		return false, false
	}
	var q *learner.Question
	for i := range s.unit.Questions {
		if s.unit.Questions[i].ID == questionID {
			q = &s.unit.Questions[i]
			break
		}
	}
	if q == nil {
		return false, false
	}
	s.answers[questionID] = value
	s.checked[questionID] = true
	return true, IsCorrect(value, q.CorrectAnswer)
}

// Checked reports whether the question has reached its terminal state.
func (s *Session) Checked(questionID string) bool { return s.checked[questionID] }

// AnswerFor returns the stored answer for a question, empty if none.
func (s *Session) AnswerFor(questionID string) string { return s.answers[questionID] }

// CanContinue reports whether the continue control is enabled: the
// current question must be checked, except in review mode where it
// always is.
func (s *Session) CanContinue() bool {
	if s.review {
		return true
	}
	return s.checked[s.Current().ID]
}

// Next advances the cursor. Returns false when already on the last
// question, in which case the caller finishes the session.
func (s *Session) Next() bool {
	if s.index >= len(s.unit.Questions)-1 {
		return false
	}
	s.index++
	return true
}

// Finish scores the session and emits the result. Unanswered questions
// count against the score as empty answers. Elapsed time is wall clock
// from session start; navigation never pauses it.
func (s *Session) Finish() learner.QuizResult {
	score := 0
	for _, q := range s.unit.Questions {
		if IsCorrect(s.answers[q.ID], q.CorrectAnswer) {
			score++
		}
	}
	answers := make(map[string]string, len(s.answers))
	for id, a := range s.answers {
		answers[id] = a
	}
	return learner.QuizResult{
		UnitID:           s.unit.ID,
		UnitTitle:        s.unit.Title,
		Score:            score,
		TotalQuestions:   len(s.unit.Questions),
		UserAnswers:      answers,
		TimeSpentSeconds: int(time.Since(s.started).Seconds()),
	}
}
