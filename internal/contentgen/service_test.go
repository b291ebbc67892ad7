package contentgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanhvo/mathgenius/internal/learner"
	"github.com/khanhvo/mathgenius/internal/llm"
)

func sampleQuestions(n int) []map[string]any {
	out := make([]map[string]any, n)
	for i := range out {
		q := map[string]any{
			"id":            fmt.Sprintf("q%d", i+1),
			"type":          "fill-in-blank",
			"content":       "5 + 3 = ?",
			"correctAnswer": "8",
			"explanation":   "5 cộng 3 bằng 8.",
			"difficulty":    "easy",
		}
		if i == 0 {
			q["type"] = "multiple-choice"
			q["options"] = []string{"6", "7", "8", "9"}
		}
		if i == 1 {
			q["type"] = "true-false"
			q["content"] = "5 + 3 = 8. Đúng hay sai?"
			q["correctAnswer"] = "true"
		}
		out[i] = q
	}
	return out
}

func sampleUnitJSON(t *testing.T, title string, questions int) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(map[string]any{
		"topicId":         "topic-1",
		"title":           title,
		"description":     "Luyện tập " + title,
		"totalXp":         100,
		"durationMinutes": 15,
		"questions":       sampleQuestions(questions),
	})
	require.NoError(t, err)
	return b
}

func samplePathJSON(t *testing.T, titles ...string) json.RawMessage {
	t.Helper()
	units := make([]json.RawMessage, len(titles))
	for i, title := range titles {
		units[i] = sampleUnitJSON(t, title, 5)
	}
	b, err := json.Marshal(map[string]any{"units": units})
	require.NoError(t, err)
	return b
}

func testProfile() *learner.UserProfile {
	return learner.New("Tí", "02/12/2009", 3)
}

func TestGenerateLearningPath_PostProcessing(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: samplePathJSON(t, "Phép cộng", "Phép trừ", "Phép nhân"),
	})
	svc := NewService([]llm.Provider{mock}, true)

	units, err := svc.GenerateLearningPath(context.Background(), testProfile(), []string{"Số học"})
	require.NoError(t, err)
	require.Len(t, units, 3)

	assert.Equal(t, learner.StatusActive, units[0].Status)
	assert.Equal(t, learner.StatusLocked, units[1].Status)
	assert.Equal(t, learner.StatusLocked, units[2].Status)

	seen := map[string]bool{}
	for _, u := range units {
		assert.True(t, strings.HasPrefix(u.ID, "unit-"))
		assert.False(t, seen[u.ID], "ids must be unique")
		seen[u.ID] = true
		assert.Equal(t, learner.LevelAverage, u.Level)
	}
}

func TestGenerateLearningPath_MissingCredential(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: samplePathJSON(t, "Phép cộng")})
	svc := NewService([]llm.Provider{mock}, false)

	_, err := svc.GenerateLearningPath(context.Background(), testProfile(), []string{"Số học"})
	require.ErrorIs(t, err, ErrMissingCredential)
	assert.Zero(t, mock.CallCount(), "no provider call without a credential")
}

func TestInvoke_FallbackOrdering(t *testing.T) {
	payload := samplePathJSON(t, "Phân số")
	first := llm.NewNamedMockProvider("variant-a",
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	second := llm.NewNamedMockProvider("variant-b",
		llm.MockResponse{Err: &llm.ErrRateLimit{}})
	third := llm.NewNamedMockProvider("variant-c",
		llm.MockResponse{Content: payload})
	fourth := llm.NewNamedMockProvider("variant-d",
		llm.MockResponse{Content: payload})

	svc := NewService([]llm.Provider{first, second, third, fourth}, true)
	units, err := svc.GenerateLearningPath(context.Background(), testProfile(), []string{"Phân số"})
	require.NoError(t, err)
	require.Len(t, units, 1)

	assert.Equal(t, 1, first.CallCount())
	assert.Equal(t, 1, second.CallCount())
	assert.Equal(t, 1, third.CallCount())
	assert.Zero(t, fourth.CallCount(), "variants after the first success must not run")
}

func TestInvoke_AllVariantsFail(t *testing.T) {
	lastCause := &llm.ErrProviderUnavailable{Err: errors.New("boom")}
	variants := []llm.Provider{
		llm.NewNamedMockProvider("variant-a", llm.MockResponse{Err: &llm.ErrRateLimit{}}),
		llm.NewNamedMockProvider("variant-b", llm.MockResponse{Err: lastCause}),
	}
	svc := NewService(variants, true)

	_, err := svc.GenerateLearningPath(context.Background(), testProfile(), []string{"Số học"})
	require.Error(t, err)

	var exhausted *ErrGenerationExhausted
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 2, exhausted.Attempts)
	assert.ErrorIs(t, err, lastCause, "terminal error carries the last cause")
}

func TestInvoke_BadPayloadFallsThrough(t *testing.T) {
	variants := []llm.Provider{
		llm.NewNamedMockProvider("variant-a", llm.MockResponse{Content: json.RawMessage(`{"units":[]}`)}),
		llm.NewNamedMockProvider("variant-b", llm.MockResponse{Content: samplePathJSON(t, "Hình học")}),
	}
	svc := NewService(variants, true)

	units, err := svc.GenerateLearningPath(context.Background(), testProfile(), []string{"Hình học"})
	require.NoError(t, err)
	assert.Equal(t, "Hình học", units[0].Title)
}

func TestGenerateChallengeUnit_ReusesIDAndBumpsLevel(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: sampleUnitJSON(t, "Phép cộng - Thử thách", 10),
	})
	svc := NewService([]llm.Provider{mock}, true)

	source := learner.LearningUnit{
		ID:     "unit-original",
		Title:  "Phép cộng",
		Status: learner.StatusCompleted,
		Level:  2,
	}
	got, err := svc.GenerateChallengeUnit(context.Background(), testProfile(), source)
	require.NoError(t, err)

	assert.Equal(t, "unit-original", got.ID)
	assert.Equal(t, learner.StatusActive, got.Status)
	assert.Equal(t, 3, got.Level)
	assert.Len(t, got.Questions, 10)
}

func TestGenerateComprehensiveTest_StampsExamLevel(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: sampleUnitJSON(t, "Kiểm tra Tổng hợp Kiến thức", 20),
	})
	svc := NewService([]llm.Provider{mock}, true)

	got, err := svc.GenerateComprehensiveTest(context.Background(), testProfile())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got.ID, "exam-"))
	assert.Equal(t, learner.ExamLevel, got.Level)
	assert.True(t, got.IsExam())
	assert.Equal(t, learner.StatusActive, got.Status)
}

func TestCheckDraft_MultipleChoiceNeedsOptions(t *testing.T) {
	d := unitDraft{
		Title: "Phép chia",
		Questions: []learner.Question{{
			ID:            "q1",
			Type:          learner.MultipleChoice,
			Content:       "10 ÷ 2 = ?",
			Options:       []string{"5"},
			CorrectAnswer: "5",
		}},
	}
	assert.Error(t, checkDraft(d))

	d.Questions[0].Options = []string{"4", "5"}
	assert.NoError(t, checkDraft(d))
}

func TestToUnit_StripsStrayOptions(t *testing.T) {
	d := unitDraft{
		Questions: []learner.Question{{
			ID:      "q1",
			Type:    learner.TrueFalse,
			Options: []string{"Đúng", "Sai"},
		}},
	}
	u := d.toUnit()
	assert.Nil(t, u.Questions[0].Options)
}
