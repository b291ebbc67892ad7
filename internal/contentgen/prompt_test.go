package contentgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khanhvo/mathgenius/internal/analytics"
	"github.com/khanhvo/mathgenius/internal/learner"
)

func TestBuildPathRequest_EmbedsAnalysis(t *testing.T) {
	p := testProfile()
	a := analytics.Analysis{
		AdjustedLevel: 2,
		WeakTopics:    []string{"Phân số"},
		StrongTopics:  []string{"Phép cộng"},
		RecentAverage: 0.6,
		HasData:       true,
	}

	req := BuildPathRequest(p, a, []string{"Hình học", "Số học"})

	assert.Contains(t, req.Prompt, "Phân số")
	assert.Contains(t, req.Prompt, "Phép cộng")
	assert.Contains(t, req.Prompt, "6.0/10")
	assert.Contains(t, req.Prompt, "Hình học, Số học")
	assert.Contains(t, req.Prompt, "KHÔNG dùng LaTeX")
	assert.Contains(t, req.Prompt, p.NumerologyProfile.MathApproach)
	assert.Equal(t, 0.7, req.Temperature)
	assert.Equal(t, "learning-path", req.Schema.Name)
}

func TestBuildPathRequest_EmbedsStudyHabits(t *testing.T) {
	p := testProfile()
	p.SetAssessment(learner.LevelGood, []string{"Tính toán còn chậm", "Thích thử thách khó"}, "hay nhầm dấu khi chuyển vế")

	req := BuildPathRequest(p, analytics.Analysis{AdjustedLevel: 3}, []string{"Số học"})

	assert.Contains(t, req.Prompt, "Tính toán còn chậm, Thích thử thách khó")
	assert.Contains(t, req.Prompt, "hay nhầm dấu khi chuyển vế")
}

func TestBuildPathRequest_NoHabitsLeavesPromptBare(t *testing.T) {
	req := BuildPathRequest(testProfile(), analytics.Analysis{AdjustedLevel: 2}, []string{"Số học"})
	assert.NotContains(t, req.Prompt, "Thói quen học tập")
	assert.NotContains(t, req.Prompt, "Ghi chú thêm")
}

func TestBuildPathRequest_NewStudent(t *testing.T) {
	req := BuildPathRequest(testProfile(), analytics.Analysis{AdjustedLevel: 2}, []string{"Số học"})
	assert.Contains(t, req.Prompt, "chưa có dữ liệu lịch sử")
	assert.NotContains(t, req.Prompt, "PHÂN TÍCH DỮ LIỆU HỌC TẬP")
}

func TestBuildChallengeRequest(t *testing.T) {
	unit := learner.LearningUnit{ID: "unit-1", Title: "Phép nhân", Level: 2}
	req := BuildChallengeRequest(testProfile(), unit)

	assert.Contains(t, req.Prompt, "Phép nhân")
	assert.Contains(t, req.Prompt, "Level 3")
	assert.Contains(t, req.Prompt, "Từ 10 đến 15 câu")
	assert.Equal(t, 0.8, req.Temperature)
	assert.Equal(t, "challenge-unit", req.Schema.Name)
}

func TestBuildExamRequest_CoversPathTopics(t *testing.T) {
	p := testProfile()
	p.LearningPath = []learner.LearningUnit{
		{Title: "Phép cộng"},
		{Title: "Phân số"},
	}
	a := analytics.Analysis{WeakTopics: []string{"Phân số"}, HasData: true}

	req := BuildExamRequest(p, a)

	assert.Contains(t, req.Prompt, "Phép cộng, Phân số")
	assert.Contains(t, req.Prompt, "Đúng 20 câu hỏi")
	assert.Contains(t, req.Prompt, "5 câu đầu: Dễ")
	assert.Equal(t, "comprehensive-exam", req.Schema.Name)
}

func TestBuildRequest_IsPure(t *testing.T) {
	p := testProfile()
	a := analytics.Analysis{AdjustedLevel: 3, HasData: true, RecentAverage: 0.9}

	r1 := BuildPathRequest(p, a, []string{"Số học"})
	r2 := BuildPathRequest(p, a, []string{"Số học"})
	assert.Equal(t, r1.Prompt, r2.Prompt)
	assert.Equal(t, r1.System, r2.System)
}

func TestMathFormattingRules_NoLaTeX(t *testing.T) {
	assert.False(t, strings.Contains(mathFormattingRules, "\\frac"))
	assert.Contains(t, mathFormattingRules, "√x")
}
