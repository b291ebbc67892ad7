package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanhvo/mathgenius/internal/learner"
)

func threeQuestionUnit() learner.LearningUnit {
	return learner.LearningUnit{
		ID:    "u1",
		Title: "Phân số",
		Questions: []learner.Question{
			{ID: "q1", Type: learner.MultipleChoice, Content: "1/2 + 1/4 = ?", Options: []string{"3/4", "2/6", "1/4", "1"}, CorrectAnswer: "3/4", Difficulty: learner.Easy},
			{ID: "q2", Type: learner.TrueFalse, Content: "1/2 > 1/3", CorrectAnswer: "True", Difficulty: learner.Medium},
			{ID: "q3", Type: learner.FillInBlank, Content: "2/4 rút gọn = ?", CorrectAnswer: "1/2", Difficulty: learner.Medium},
		},
	}
}

func TestSessionHappyPath(t *testing.T) {
	s := Start(threeQuestionUnit())

	assert.False(t, s.CanContinue(), "continue must be disabled before checking")

	accepted, correct := s.Answer("q1", "3/4")
	assert.True(t, accepted)
	assert.True(t, correct)
	assert.True(t, s.CanContinue())
	require.True(t, s.Next())

	accepted, correct = s.Answer("q2", "Đúng")
	assert.True(t, accepted)
	assert.True(t, correct, "Vietnamese token should match canonical True")
	require.True(t, s.Next())

	accepted, correct = s.Answer("q3", "2/4")
	assert.True(t, accepted)
	assert.False(t, correct)
	assert.False(t, s.Next(), "last question reached")

	r := s.Finish()
	assert.Equal(t, "u1", r.UnitID)
	assert.Equal(t, 2, r.Score)
	assert.Equal(t, 3, r.TotalQuestions)
	assert.Equal(t, "2/4", r.UserAnswers["q3"])
}

func TestAnswerIsTerminalPerQuestion(t *testing.T) {
	s := Start(threeQuestionUnit())

	accepted, _ := s.Answer("q1", "2/6")
	require.True(t, accepted)

	// A checked question accepts no second answer.
	accepted, _ = s.Answer("q1", "3/4")
	assert.False(t, accepted)
	assert.Equal(t, "2/6", s.AnswerFor("q1"))
}

func TestAnswerUnknownQuestionRejected(t *testing.T) {
	s := Start(threeQuestionUnit())
	accepted, _ := s.Answer("ghost", "42")
	assert.False(t, accepted)
}

func TestUnansweredCountAgainstScore(t *testing.T) {
	s := Start(threeQuestionUnit())
	s.Answer("q1", "3/4")
	// q2 and q3 never answered.

	r := s.Finish()
	assert.Equal(t, 1, r.Score)
	assert.Equal(t, 3, r.TotalQuestions)
}

func TestResultInvariants(t *testing.T) {
	unit := threeQuestionUnit()
	s := Start(unit)
	s.Answer("q1", "1")
	s.Answer("q2", "Sai")
	s.Answer("q3", "1/2")

	r := s.Finish()
	assert.GreaterOrEqual(t, r.Score, 0)
	assert.LessOrEqual(t, r.Score, r.TotalQuestions)

	ids := map[string]bool{}
	for _, q := range unit.Questions {
		ids[q.ID] = true
	}
	for id := range r.UserAnswers {
		assert.True(t, ids[id], "answer key %q is not a question id", id)
	}
}

func TestReviewMode(t *testing.T) {
	unit := threeQuestionUnit()
	stored := map[string]string{"q1": "3/4", "q2": "Sai", "q3": "1/2"}
	s := StartReview(unit, stored)

	assert.True(t, s.Review())
	assert.True(t, s.CanContinue(), "continue always enabled in review")
	for _, q := range unit.Questions {
		assert.True(t, s.Checked(q.ID), "question %s should start checked", q.ID)
	}

	// Mutation is disabled.
	accepted, _ := s.Answer("q1", "1")
	assert.False(t, accepted)
	assert.Equal(t, "3/4", s.AnswerFor("q1"))
}

func TestElapsedTimeNonNegative(t *testing.T) {
	s := Start(threeQuestionUnit())
	r := s.Finish()
	assert.GreaterOrEqual(t, r.TimeSpentSeconds, 0)
}
