package tutor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanhvo/mathgenius/internal/contentgen"
	"github.com/khanhvo/mathgenius/internal/learner"
	"github.com/khanhvo/mathgenius/internal/store"
)

// clearProviderEnv makes credential resolution deterministic regardless
// of the host environment.
func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"MATHGENIUS_LLM_PROVIDER", "MATHGENIUS_LLM_MODELS",
		"MATHGENIUS_GEMINI_API_KEY", "MATHGENIUS_OPENAI_API_KEY",
		"MATHGENIUS_ANTHROPIC_API_KEY", "MATHGENIUS_OPENROUTER_API_KEY",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	clearProviderEnv(t)

	st, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	svc, err := New(context.Background(), st)
	require.NoError(t, err)
	return svc, st
}

func TestProfileLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Nothing stored yet.
	p, err := svc.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = svc.CreateProfile(ctx, "Tí", "02/12/2009", 3)
	require.NoError(t, err)
	assert.Equal(t, 7, p.NumerologyNumber)

	loaded, err := svc.LoadProfile(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Tí", loaded.Name)
	assert.Equal(t, learner.LevelAverage, loaded.ProficiencyLevel)

	require.NoError(t, svc.ResetProfile(ctx))
	p, err = svc.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestApplySelfAssessment(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	p, err := svc.CreateProfile(ctx, "Tí", "02/12/2009", 3)
	require.NoError(t, err)

	err = svc.ApplySelfAssessment(ctx, p, learner.LevelGood, []string{"Thích câu đố và trò chơi"}, "hay nhầm dấu khi chuyển vế")
	require.NoError(t, err)

	loaded, err := svc.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, learner.LevelGood, loaded.ProficiencyLevel)
	assert.Equal(t, []string{"Thích câu đố và trò chơi"}, loaded.AssessmentTags)
	assert.Equal(t, "hay nhầm dấu khi chuyển vế", loaded.AssessmentNotes)
}

func TestApplyResultMovesLevelStepwise(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	p, err := svc.CreateProfile(ctx, "Tí", "02/12/2009", 3)
	require.NoError(t, err)
	p.LearningPath = []learner.LearningUnit{
		{ID: "u1", Title: "Phân số", Status: learner.StatusActive, Level: 2},
	}

	// A near-perfect recent average promotes one step.
	_, err = svc.ApplyResult(ctx, p, p.LearningPath[0], learner.QuizResult{UnitID: "u1", Score: 9, TotalQuestions: 10})
	require.NoError(t, err)
	assert.Equal(t, learner.LevelGood, p.ProficiencyLevel)

	// Two weak results drag the recent average under the floor and
	// demote one step.
	_, err = svc.ApplyResult(ctx, p, p.LearningPath[0], learner.QuizResult{UnitID: "u1", Score: 1, TotalQuestions: 10})
	require.NoError(t, err)
	_, err = svc.ApplyResult(ctx, p, p.LearningPath[0], learner.QuizResult{UnitID: "u1", Score: 0, TotalQuestions: 10})
	require.NoError(t, err)
	assert.Equal(t, learner.LevelAverage, p.ProficiencyLevel)

	// The moved level is persisted, not just in memory.
	loaded, err := svc.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, learner.LevelAverage, loaded.ProficiencyLevel)
}

func TestResetSnapshotsProfile(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateProfile(ctx, "Tí", "02/12/2009", 3)
	require.NoError(t, err)
	require.NoError(t, svc.ResetProfile(ctx))

	snap, err := st.SnapshotRepo().Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap, "reset must back up the profile first")
	assert.Contains(t, snap.Profile, "Tí")
}

func TestGenerateWithoutCredential(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	assert.False(t, svc.HasCredential())

	p := learner.New("Tí", "02/12/2009", 3)
	_, err := svc.GenerateLearningPath(ctx, p, []string{"Số học"})
	assert.ErrorIs(t, err, contentgen.ErrMissingCredential)

	_, err = svc.GenerateComprehensiveTest(ctx, p)
	assert.ErrorIs(t, err, contentgen.ErrMissingCredential)

	_, err = svc.GenerateGames(ctx, p)
	assert.ErrorIs(t, err, contentgen.ErrMissingCredential)
}

func TestSetCredentialPersistsAndEnables(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetCredential(ctx, "stored-key"))
	assert.True(t, svc.HasCredential())

	// A fresh service over the same store picks the credential up.
	again, err := New(ctx, st)
	require.NoError(t, err)
	assert.True(t, again.HasCredential())
}

func TestApplyResultPersistsAndLogs(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	p, err := svc.CreateProfile(ctx, "Tí", "02/12/2009", 3)
	require.NoError(t, err)

	unit := learner.LearningUnit{
		ID:     "unit-1",
		Title:  "Phép cộng",
		Status: learner.StatusActive,
		Level:  2,
		Questions: []learner.Question{
			{ID: "q1", Type: learner.FillInBlank, CorrectAnswer: "8"},
		},
	}
	p.LearningPath = []learner.LearningUnit{unit}
	require.NoError(t, svc.SaveProfile(ctx, p))

	stamped, err := svc.ApplyResult(ctx, p, unit, learner.QuizResult{
		UnitID:         "unit-1",
		Score:          1,
		TotalQuestions: 1,
		UserAnswers:    map[string]string{"q1": "8"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Phép cộng", stamped.UnitTitle)

	loaded, err := svc.LoadProfile(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.History, 1)
	assert.Equal(t, learner.StatusCompleted, loaded.LearningPath[0].Status)

	count, err := st.Client().QuizResultEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestApplyChallengeUnit(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	p, err := svc.CreateProfile(ctx, "Tí", "02/12/2009", 3)
	require.NoError(t, err)
	p.LearningPath = []learner.LearningUnit{
		{ID: "unit-1", Title: "Phép cộng", Status: learner.StatusCompleted, Level: 2},
	}
	require.NoError(t, svc.SaveProfile(ctx, p))

	upgraded := learner.LearningUnit{
		ID: "unit-1", Title: "Phép cộng - Nâng cao",
		Status: learner.StatusActive, Level: 3,
	}
	require.NoError(t, svc.ApplyChallengeUnit(ctx, p, upgraded))

	loaded, err := svc.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Phép cộng - Nâng cao", loaded.LearningPath[0].Title)
	assert.Equal(t, 3, loaded.LearningPath[0].Level)

	missing := learner.LearningUnit{ID: "unit-ghost"}
	assert.Error(t, svc.ApplyChallengeUnit(ctx, p, missing))
}

func TestComputeNumerologyProfile(t *testing.T) {
	svc, _ := newTestService(t)

	prof := svc.ComputeNumerologyProfile("Tí", "30/08/2009")
	assert.Equal(t, 22, prof.LifePathNumber)

	// Malformed dates degrade to the default profile.
	prof = svc.ComputeNumerologyProfile("Tí", "1/1/99")
	assert.NotEmpty(t, prof.Title)
}
