package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khanhvo/mathgenius/internal/learner"
)

func result(title string, score, total int) learner.QuizResult {
	return learner.QuizResult{UnitTitle: title, Score: score, TotalQuestions: total}
}

func TestAnalyzeEmptyHistory(t *testing.T) {
	a := Analyze(nil, learner.LevelGood)

	assert.False(t, a.HasData)
	assert.Equal(t, learner.LevelGood, a.AdjustedLevel)
	assert.Empty(t, a.WeakTopics)
	assert.Empty(t, a.StrongTopics)
}

func TestAnalyzeClassification(t *testing.T) {
	history := []learner.QuizResult{
		result("Phân số", 2, 5),       // 0.4 → weak
		result("Hình học", 9, 10),     // 0.9 → strong
		result("Số thập phân", 4, 8),  // exactly 0.5 → neither
		result("Phân số", 1, 5),       // weak again, de-duplicated
		result("Đại số", 8, 10),       // exactly 0.8 → strong (inclusive)
	}

	a := Analyze(history, learner.LevelAverage)

	assert.Equal(t, []string{"Phân số"}, a.WeakTopics)
	assert.Equal(t, []string{"Hình học", "Đại số"}, a.StrongTopics)
}

func TestAnalyzeBoundaryHalfIsNeither(t *testing.T) {
	a := Analyze([]learner.QuizResult{result("Biên", 5, 10)}, learner.LevelAverage)

	assert.Empty(t, a.WeakTopics)
	assert.Empty(t, a.StrongTopics)
}

func TestRecentAverageWindow(t *testing.T) {
	// Five perfect recent results, then ancient zeros beyond the window.
	history := []learner.QuizResult{
		result("a", 5, 5), result("b", 5, 5), result("c", 5, 5),
		result("d", 5, 5), result("e", 5, 5),
		result("old1", 0, 5), result("old2", 0, 5), result("old3", 0, 5),
	}

	a := Analyze(history, learner.LevelAverage)

	assert.InDelta(t, 1.0, a.RecentAverage, 1e-9)
	assert.Equal(t, learner.LevelGood, a.AdjustedLevel) // promoted one step
}

func TestLevelAdjustment(t *testing.T) {
	weak := []learner.QuizResult{result("x", 1, 5)}   // 0.2
	strong := []learner.QuizResult{result("x", 5, 5)} // 1.0
	mid := []learner.QuizResult{result("x", 3, 5)}    // 0.6

	tests := []struct {
		name     string
		history  []learner.QuizResult
		baseline int
		want     int
	}{
		{"demote one step", weak, learner.LevelGood, learner.LevelAverage},
		{"demote clamps at floor", weak, learner.LevelWeak, learner.LevelWeak},
		{"promote one step", strong, learner.LevelAverage, learner.LevelGood},
		{"promote clamps at ceiling", strong, learner.LevelExcellent, learner.LevelExcellent},
		{"middling form unchanged", mid, learner.LevelAverage, learner.LevelAverage},
		{"out-of-range baseline clamped", mid, 9, learner.LevelExcellent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Analyze(tt.history, tt.baseline)
			assert.Equal(t, tt.want, a.AdjustedLevel)
		})
	}
}

func TestAverageExactlyHalfKeepsLevel(t *testing.T) {
	a := Analyze([]learner.QuizResult{result("x", 5, 10)}, learner.LevelAverage)
	assert.Equal(t, learner.LevelAverage, a.AdjustedLevel)
}
