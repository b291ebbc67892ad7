package games

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanhvo/mathgenius/internal/contentgen"
	"github.com/khanhvo/mathgenius/internal/learner"
	"github.com/khanhvo/mathgenius/internal/llm"
)

func activitiesJSON(t *testing.T, n int) json.RawMessage {
	t.Helper()
	acts := make([]learner.GameActivity, n)
	for i := range acts {
		acts[i] = learner.GameActivity{
			ID:                 "game-" + string(rune('a'+i)),
			Type:               "puzzle",
			Title:              "Đố vui số học",
			Description:        "Một câu đố nhỏ",
			Difficulty:         "Dễ",
			Duration:           "3 phút",
			XPReward:           30,
			InteractiveContent: "2 × 3 + 4 = ?",
			Answer:             "10",
			FunFact:            "Phép nhân có trước phép cộng trong thứ tự tính.",
		}
	}
	b, err := json.Marshal(map[string]any{"activities": acts})
	require.NoError(t, err)
	return b
}

func TestGenerate_ReturnsActivities(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: activitiesJSON(t, 4)})
	svc := NewService([]llm.Provider{mock}, true)

	got, err := svc.Generate(context.Background(), learner.New("Tí", "02/12/2009", 3))
	require.NoError(t, err)
	assert.Len(t, got, 4)
	assert.Equal(t, "10", got[0].Answer)
}

func TestGenerate_StaticFallbackOnExhaustion(t *testing.T) {
	variants := []llm.Provider{
		llm.NewNamedMockProvider("variant-a", llm.MockResponse{Err: &llm.ErrProviderUnavailable{}}),
		llm.NewNamedMockProvider("variant-b", llm.MockResponse{Err: &llm.ErrRateLimit{}}),
	}
	svc := NewService(variants, true)

	got, err := svc.Generate(context.Background(), learner.New("Tí", "02/12/2009", 3))
	require.NoError(t, err, "exhaustion must degrade, not error")
	require.Len(t, got, 1)
	assert.Equal(t, FallbackActivity.ID, got[0].ID)
	assert.NotEmpty(t, got[0].Answer, "fallback stays gradable")
}

func TestGenerate_MissingCredential(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: activitiesJSON(t, 4)})
	svc := NewService([]llm.Provider{mock}, false)

	_, err := svc.Generate(context.Background(), learner.New("Tí", "02/12/2009", 3))
	require.ErrorIs(t, err, contentgen.ErrMissingCredential)
	assert.Zero(t, mock.CallCount())
}

func TestGenerate_RejectsUngradableActivity(t *testing.T) {
	bad, err := json.Marshal(map[string]any{
		"activities": []map[string]any{{
			"id": "game-x", "type": "puzzle", "title": "t", "description": "d",
			"difficulty": "Dễ", "duration": "1 phút", "xpReward": 10,
			"interactiveContent": "câu hỏi?", "answer": "", "funFact": "f",
		}},
	})
	require.NoError(t, err)

	variants := []llm.Provider{
		llm.NewNamedMockProvider("variant-a", llm.MockResponse{Content: bad}),
		llm.NewNamedMockProvider("variant-b", llm.MockResponse{Content: activitiesJSON(t, 5)}),
	}
	svc := NewService(variants, true)

	got, err := svc.Generate(context.Background(), learner.New("Tí", "02/12/2009", 3))
	require.NoError(t, err)
	assert.Len(t, got, 5, "empty answer falls through to the next variant")
}

func TestBuildRequest_UsesProfileContext(t *testing.T) {
	p := learner.New("Tí", "02/12/2009", 4)
	p.LearningPath = []learner.LearningUnit{
		{Title: "Phân số"}, {Title: "Hình học"}, {Title: "Đại số"}, {Title: "Xác suất"},
	}

	req := buildRequest(p)
	assert.Contains(t, req.Prompt, "Phân số, Hình học, Đại số")
	assert.NotContains(t, req.Prompt, "Xác suất", "only the first three path topics feed the prompt")
	assert.Contains(t, req.Prompt, "Lớp: 4")
	assert.Equal(t, 0.85, req.Temperature)
}
