package contentgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/khanhvo/mathgenius/internal/analytics"
	"github.com/khanhvo/mathgenius/internal/learner"
	"github.com/khanhvo/mathgenius/internal/llm"
)

// ErrMissingCredential is returned before any provider call when no API
// key is configured.
var ErrMissingCredential = errors.New("no provider credential configured")

// ErrGenerationExhausted means every model variant failed. It carries
// the last underlying cause.
type ErrGenerationExhausted struct {
	Attempts int
	Err      error
}

func (e *ErrGenerationExhausted) Error() string {
	return fmt.Sprintf("all %d model variants failed: %v", e.Attempts, e.Err)
}

func (e *ErrGenerationExhausted) Unwrap() error { return e.Err }

// Invoke walks the ordered variants, returning the first response whose
// payload both arrives and decodes. decode inspects the raw payload and
// returns an error to reject it; a rejected payload moves on to the next
// variant like any provider failure. All-fail returns
// *ErrGenerationExhausted wrapping the last cause.
func Invoke(ctx context.Context, variants []llm.Provider, req Request, decode func(json.RawMessage) error) error {
	var lastErr error
	for _, p := range variants {
		resp, err := p.Generate(ctx, llm.Request{
			System:      req.System,
			Messages:    []llm.Message{{Role: llm.RoleUser, Content: req.Prompt}},
			Schema:      req.Schema,
			MaxTokens:   req.MaxTokens,
			Temperature: req.Temperature,
		})
		if err != nil {
			lastErr = err
			continue
		}
		if len(resp.Content) == 0 {
			lastErr = fmt.Errorf("empty response from %s", p.ModelID())
			continue
		}
		if err := decode(resp.Content); err != nil {
			lastErr = fmt.Errorf("decode response from %s: %w", p.ModelID(), err)
			continue
		}
		return nil
	}
	return &ErrGenerationExhausted{Attempts: len(variants), Err: lastErr}
}

// Service generates learning content through the variant fallback chain.
type Service struct {
	variants      []llm.Provider
	hasCredential bool
}

// NewService creates a Service over the ordered provider variants.
// hasCredential gates every generate call; when false the service fails
// fast with ErrMissingCredential instead of dialing out.
func NewService(variants []llm.Provider, hasCredential bool) *Service {
	return &Service{variants: variants, hasCredential: hasCredential}
}

// unitDraft is the provider-side unit shape, before ids, status and
// level are stamped.
type unitDraft struct {
	TopicID         string             `json:"topicId"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	TotalXP         int                `json:"totalXp"`
	DurationMinutes int                `json:"durationMinutes"`
	Questions       []learner.Question `json:"questions"`
}

// checkDraft enforces what the output schema cannot: a non-empty
// question list, and at least two options on every multiple-choice
// question.
func checkDraft(d unitDraft) error {
	if len(d.Questions) == 0 {
		return fmt.Errorf("unit %q has no questions", d.Title)
	}
	for _, q := range d.Questions {
		if q.Type == learner.MultipleChoice && len(q.Options) < 2 {
			return fmt.Errorf("multiple-choice question %q has %d options", q.ID, len(q.Options))
		}
	}
	return nil
}

// toUnit converts the draft, stripping stray options from questions
// that are not multiple choice. Options belong to multiple choice only.
func (d unitDraft) toUnit() learner.LearningUnit {
	questions := make([]learner.Question, len(d.Questions))
	for i, q := range d.Questions {
		if q.Type != learner.MultipleChoice {
			q.Options = nil
		}
		questions[i] = q
	}
	return learner.LearningUnit{
		TopicID:         d.TopicID,
		Title:           d.Title,
		Description:     d.Description,
		TotalXP:         d.TotalXP,
		DurationMinutes: d.DurationMinutes,
		Questions:       questions,
	}
}

// GenerateLearningPath runs the analyzer over the profile's history,
// requests a path biased by its output, and returns the ready units:
// fresh ids, first unit active and the rest locked, level stamped from
// the adjusted proficiency.
func (s *Service) GenerateLearningPath(ctx context.Context, p *learner.UserProfile, topics []string) ([]learner.LearningUnit, error) {
	if !s.hasCredential {
		return nil, ErrMissingCredential
	}

	analysis := analytics.Analyze(p.History, p.ProficiencyLevel)
	req := BuildPathRequest(p, analysis, topics)

	var payload struct {
		Units []unitDraft `json:"units"`
	}
	err := Invoke(llm.WithPurpose(ctx, llm.PurposePathGen), s.variants, req, func(raw json.RawMessage) error {
		payload.Units = nil
		if err := json.Unmarshal(raw, &payload); err != nil {
			return err
		}
		if len(payload.Units) == 0 {
			return errors.New("no units in payload")
		}
		for _, d := range payload.Units {
			if err := checkDraft(d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	units := make([]learner.LearningUnit, len(payload.Units))
	for i, d := range payload.Units {
		u := d.toUnit()
		u.ID = "unit-" + uuid.NewString()
		u.Level = analysis.AdjustedLevel
		if i == 0 {
			u.Status = learner.StatusActive
		} else {
			u.Status = learner.StatusLocked
		}
		units[i] = u
	}
	return units, nil
}

// GenerateChallengeUnit requests an upgraded version of a completed
// unit. The result reuses the source unit's id, becomes active, and
// carries the next level.
func (s *Service) GenerateChallengeUnit(ctx context.Context, p *learner.UserProfile, unit learner.LearningUnit) (*learner.LearningUnit, error) {
	if !s.hasCredential {
		return nil, ErrMissingCredential
	}

	req := BuildChallengeRequest(p, unit)

	var draft unitDraft
	err := Invoke(llm.WithPurpose(ctx, llm.PurposeChallengeGen), s.variants, req, func(raw json.RawMessage) error {
		draft = unitDraft{}
		if err := json.Unmarshal(raw, &draft); err != nil {
			return err
		}
		return checkDraft(draft)
	})
	if err != nil {
		return nil, err
	}

	out := draft.toUnit()
	out.ID = unit.ID
	out.Status = learner.StatusActive
	out.Level = unit.Level + 1
	if unit.Level == 0 {
		out.Level = 2
	}
	return &out, nil
}

// GenerateComprehensiveTest requests the 20-question final exam. The
// result gets a fresh exam id and the reserved exam level.
func (s *Service) GenerateComprehensiveTest(ctx context.Context, p *learner.UserProfile) (*learner.LearningUnit, error) {
	if !s.hasCredential {
		return nil, ErrMissingCredential
	}

	analysis := analytics.Analyze(p.History, p.ProficiencyLevel)
	req := BuildExamRequest(p, analysis)

	var draft unitDraft
	err := Invoke(llm.WithPurpose(ctx, llm.PurposeExamGen), s.variants, req, func(raw json.RawMessage) error {
		draft = unitDraft{}
		if err := json.Unmarshal(raw, &draft); err != nil {
			return err
		}
		return checkDraft(draft)
	})
	if err != nil {
		return nil, err
	}

	out := draft.toUnit()
	out.ID = "exam-" + uuid.NewString()
	out.Status = learner.StatusActive
	out.Level = learner.ExamLevel
	return &out, nil
}
