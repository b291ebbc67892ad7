package learner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pathProfile() *UserProfile {
	p := New("Sơn", "02/12/2009", 7)
	p.LearningPath = []LearningUnit{
		{ID: "u1", Title: "Phân số", Status: StatusActive, Level: 2},
		{ID: "u2", Title: "Số thập phân", Status: StatusLocked, Level: 2},
	}
	return p
}

func TestApplyResultPass(t *testing.T) {
	p := pathProfile()
	unit := p.LearningPath[0]

	r := p.ApplyResult(unit, QuizResult{UnitID: "u1", Score: 3, TotalQuestions: 5})

	assert.Equal(t, StatusCompleted, p.LearningPath[0].Status)
	assert.Equal(t, "Phân số", r.UnitTitle)
	assert.False(t, r.Timestamp.IsZero())
	require.Len(t, p.History, 1)
	assert.Equal(t, r, p.History[0])
}

func TestApplyResultFailStaysActive(t *testing.T) {
	p := pathProfile()
	unit := p.LearningPath[0]

	p.ApplyResult(unit, QuizResult{UnitID: "u1", Score: 2, TotalQuestions: 5})

	assert.Equal(t, StatusActive, p.LearningPath[0].Status)
	assert.Len(t, p.History, 1)
}

func TestApplyResultExactBoundaryPasses(t *testing.T) {
	p := pathProfile()
	unit := p.LearningPath[0]

	p.ApplyResult(unit, QuizResult{UnitID: "u1", Score: 5, TotalQuestions: 10})

	assert.Equal(t, StatusCompleted, p.LearningPath[0].Status)
}

func TestApplyResultLockedUnitAttemptedDirectly(t *testing.T) {
	p := pathProfile()

	// u1 passes, then the learner skips ahead to the still-locked u2.
	p.ApplyResult(p.LearningPath[0], QuizResult{UnitID: "u1", Score: 4, TotalQuestions: 5})
	p.ApplyResult(p.LearningPath[1], QuizResult{UnitID: "u2", Score: 4, TotalQuestions: 5})

	assert.Equal(t, StatusCompleted, p.LearningPath[0].Status)
	assert.Equal(t, StatusCompleted, p.LearningPath[1].Status)
}

func TestApplyResultLockedUnitFailBecomesActive(t *testing.T) {
	p := pathProfile()

	p.ApplyResult(p.LearningPath[1], QuizResult{UnitID: "u2", Score: 1, TotalQuestions: 5})

	assert.Equal(t, StatusActive, p.LearningPath[1].Status)
}

func TestApplyResultExamLeavesPathAlone(t *testing.T) {
	p := pathProfile()
	exam := LearningUnit{ID: "exam-1", Title: "Kiểm tra Tổng hợp", Level: ExamLevel}

	p.ApplyResult(exam, QuizResult{UnitID: "exam-1", Score: 20, TotalQuestions: 20})

	assert.Equal(t, StatusActive, p.LearningPath[0].Status)
	assert.Equal(t, StatusLocked, p.LearningPath[1].Status)
	assert.Len(t, p.History, 1)
}

func TestApplyResultPrependsHistory(t *testing.T) {
	p := pathProfile()
	unit := p.LearningPath[0]

	p.ApplyResult(unit, QuizResult{UnitID: "u1", Score: 1, TotalQuestions: 5})
	p.ApplyResult(unit, QuizResult{UnitID: "u1", Score: 4, TotalQuestions: 5})

	require.Len(t, p.History, 2)
	assert.Equal(t, 4, p.History[0].Score) // most recent first
	assert.Equal(t, 1, p.History[1].Score)
}

func TestSetAssessment(t *testing.T) {
	p := pathProfile()

	p.SetAssessment(LevelGood, []string{"Thích câu đố và trò chơi"}, "hay nhầm dấu")

	assert.Equal(t, LevelGood, p.ProficiencyLevel)
	assert.Equal(t, []string{"Thích câu đố và trò chơi"}, p.AssessmentTags)
	assert.Equal(t, "hay nhầm dấu", p.AssessmentNotes)
}

func TestSetAssessmentClampsLevel(t *testing.T) {
	p := pathProfile()

	p.SetAssessment(9, nil, "")
	assert.Equal(t, LevelExcellent, p.ProficiencyLevel)

	p.SetAssessment(0, nil, "")
	assert.Equal(t, LevelWeak, p.ProficiencyLevel)
}

func TestReplacePathUnit(t *testing.T) {
	p := pathProfile()
	ok := p.ReplacePathUnit(LearningUnit{ID: "u1", Title: "Phân số - Thử thách", Status: StatusActive, Level: 3})

	assert.True(t, ok)
	assert.Equal(t, "Phân số - Thử thách", p.LearningPath[0].Title)
	assert.Equal(t, 3, p.LearningPath[0].Level)

	assert.False(t, p.ReplacePathUnit(LearningUnit{ID: "nope"}))
}

func TestCompleteGameIsIdempotent(t *testing.T) {
	p := pathProfile()
	g := GameActivity{ID: "g1", Title: "Bí mật con số 0", Answer: "Hình tròn"}

	p.CompleteGame(g, true, "hình tròn")
	p.CompleteGame(g, true, "hình tròn")

	assert.Equal(t, []string{"g1"}, p.CompletedGameIDs)
	require.Len(t, p.History, 1)
	assert.Equal(t, 1, p.History[0].Score)
	assert.Equal(t, 1, p.History[0].TotalQuestions)
	// Game pseudo-results never touch path status.
	assert.Equal(t, StatusActive, p.LearningPath[0].Status)
}

// fakeKV is an in-memory KV for persistence tests.
type fakeKV map[string]string

func (f fakeKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := f[key]
	return v, ok, nil
}
func (f fakeKV) Set(_ context.Context, key, value string) error { f[key] = value; return nil }
func (f fakeKV) Remove(_ context.Context, key string) error     { delete(f, key); return nil }

func TestSaveLoadRoundTrip(t *testing.T) {
	kv := fakeKV{}
	ctx := context.Background()

	p := pathProfile()
	p.ApplyResult(p.LearningPath[0], QuizResult{UnitID: "u1", Score: 3, TotalQuestions: 5, UserAnswers: map[string]string{"q1": "7"}})
	require.NoError(t, Save(ctx, kv, p))

	loaded, err := Load(ctx, kv)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, p.Name, loaded.Name)
	assert.Equal(t, p.NumerologyNumber, loaded.NumerologyNumber)
	require.Len(t, loaded.History, 1)
	assert.Equal(t, "7", loaded.History[0].UserAnswers["q1"])
	assert.Equal(t, StatusCompleted, loaded.LearningPath[0].Status)
}

func TestLoadMissingReturnsNil(t *testing.T) {
	loaded, err := Load(context.Background(), fakeKV{})
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestLevelName(t *testing.T) {
	assert.Equal(t, "Trung bình", LevelName(LevelAverage))
	assert.Equal(t, "Trung bình", LevelName(0)) // out of range falls back
	assert.Equal(t, "Xuất sắc (Chuyên sâu)", LevelName(LevelExcellent))
}
