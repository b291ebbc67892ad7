// Package learner holds the persisted user aggregate: the numerology
// profile, the generated learning path, quiz history, and game state.
// All mutation flows through ApplyResult and the path-replacement helpers;
// the durable store owns the serialized form.
package learner

import (
	"time"

	"github.com/khanhvo/mathgenius/internal/numerology"
)

// QuestionType enumerates the three generated question forms.
type QuestionType string

const (
	MultipleChoice QuestionType = "multiple-choice"
	TrueFalse      QuestionType = "true-false"
	FillInBlank    QuestionType = "fill-in-blank"
)

// Difficulty is the per-question difficulty band.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// UnitStatus is the lifecycle state of a learning path unit.
type UnitStatus string

const (
	StatusLocked    UnitStatus = "locked"
	StatusActive    UnitStatus = "active"
	StatusCompleted UnitStatus = "completed"
)

// ExamLevel is the reserved level marking a comprehensive exam unit.
// Exam results never touch path unit status.
const ExamLevel = 99

// Proficiency levels are an ordinal 1..4 tier independent of per-question
// difficulty.
const (
	LevelWeak      = 1
	LevelAverage   = 2
	LevelGood      = 3
	LevelExcellent = 4
)

// levelNames maps proficiency levels to their Vietnamese display names.
var levelNames = map[int]string{
	LevelWeak:      "Yếu (Cần củng cố căn bản)",
	LevelAverage:   "Trung bình",
	LevelGood:      "Khá",
	LevelExcellent: "Xuất sắc (Chuyên sâu)",
}

// LevelName returns the display name for a proficiency level, defaulting
// to the average tier for out-of-range values.
func LevelName(level int) string {
	if name, ok := levelNames[level]; ok {
		return name
	}
	return levelNames[LevelAverage]
}

// Question is a single generated quiz question. Immutable once generated.
// Options is present with at least two entries only for multiple choice.
type Question struct {
	ID            string       `json:"id"`
	Type          QuestionType `json:"type"`
	Content       string       `json:"content"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correctAnswer"`
	Explanation   string       `json:"explanation"`
	Difficulty    Difficulty   `json:"difficulty"`
}

// LearningUnit is a generated lesson: an ordered question list plus
// metadata and lifecycle status.
type LearningUnit struct {
	ID              string     `json:"id"`
	TopicID         string     `json:"topicId"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Status          UnitStatus `json:"status"`
	Questions       []Question `json:"questions"`
	TotalXP         int        `json:"totalXp"`
	DurationMinutes int        `json:"durationMinutes"`
	Level           int        `json:"level"`
}

// IsExam reports whether this unit carries the reserved exam level.
func (u LearningUnit) IsExam() bool {
	return u.Level == ExamLevel
}

// QuizResult records one completed quiz session. Appended to history
// most-recent-first, never mutated.
type QuizResult struct {
	UnitID           string            `json:"unitId"`
	UnitTitle        string            `json:"unitTitle"`
	Score            int               `json:"score"`
	TotalQuestions   int               `json:"totalQuestions"`
	UserAnswers      map[string]string `json:"userAnswers"`
	TimeSpentSeconds int               `json:"timeSpentSeconds"`
	Timestamp        time.Time         `json:"timestamp"`
}

// Ratio returns score over total questions, 0 for an empty result.
func (r QuizResult) Ratio() float64 {
	if r.TotalQuestions == 0 {
		return 0
	}
	return float64(r.Score) / float64(r.TotalQuestions)
}

// GameActivity is a generated entertainment item: a riddle, mini game,
// or real-world challenge ending in one gradable question.
type GameActivity struct {
	ID                 string `json:"id"`
	Type               string `json:"type"` // "game", "puzzle", "challenge"
	Title              string `json:"title"`
	Description        string `json:"description"`
	Difficulty         string `json:"difficulty"` // "Dễ", "Vừa", "Khó"
	Duration           string `json:"duration"`
	XPReward           int    `json:"xpReward"`
	InteractiveContent string `json:"interactiveContent"`
	Answer             string `json:"answer"`
	Hint               string `json:"hint,omitempty"`
	FunFact            string `json:"funFact,omitempty"`
}

// UserProfile is the aggregate root persisted as one JSON document in the
// key-value store.
type UserProfile struct {
	Name              string              `json:"name"`
	DOB               string              `json:"dob"`
	Grade             int                 `json:"grade"`
	NumerologyNumber  int                 `json:"numerologyNumber"`
	NumerologyProfile *numerology.Profile `json:"numerologyProfile,omitempty"`
	ProficiencyLevel  int                 `json:"proficiencyLevel"`
	AssessmentTags    []string            `json:"assessmentTags,omitempty"`
	AssessmentNotes   string              `json:"assessmentNotes,omitempty"`
	SelectedTopics    []string            `json:"selectedTopics,omitempty"`
	LearningPath      []LearningUnit      `json:"learningPath,omitempty"`
	History           []QuizResult        `json:"history,omitempty"`
	CurrentGames      []GameActivity      `json:"currentGames,omitempty"`
	CompletedGameIDs  []string            `json:"completedGameIds,omitempty"`
}

// New creates a profile for the given student, computing the numerology
// profile from the date of birth.
func New(name, dob string, grade int) *UserProfile {
	p := numerology.Analyze(dob)
	return &UserProfile{
		Name:              name,
		DOB:               dob,
		Grade:             grade,
		NumerologyNumber:  p.LifePathNumber,
		NumerologyProfile: &p,
		ProficiencyLevel:  LevelAverage,
	}
}

// SetAssessment records the onboarding self-assessment: the baseline
// proficiency level, clamped to the 1..4 range, plus habit tags and
// free-form notes.
func (p *UserProfile) SetAssessment(level int, tags []string, notes string) {
	if level < LevelWeak {
		level = LevelWeak
	}
	if level > LevelExcellent {
		level = LevelExcellent
	}
	p.ProficiencyLevel = level
	p.AssessmentTags = tags
	p.AssessmentNotes = notes
}

// UnitByID returns the path unit with the given id and its index, or
// (nil, -1) when absent.
func (p *UserProfile) UnitByID(id string) (*LearningUnit, int) {
	for i := range p.LearningPath {
		if p.LearningPath[i].ID == id {
			return &p.LearningPath[i], i
		}
	}
	return nil, -1
}
