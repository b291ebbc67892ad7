// Package tutor is the facade the UI and CLI work through: profile
// lifecycle, credential handling, and the generation entry points, all
// bound to the durable store.
package tutor

import (
	"context"
	"fmt"
	"os"

	"github.com/khanhvo/mathgenius/internal/analytics"
	"github.com/khanhvo/mathgenius/internal/contentgen"
	"github.com/khanhvo/mathgenius/internal/games"
	"github.com/khanhvo/mathgenius/internal/learner"
	"github.com/khanhvo/mathgenius/internal/llm"
	"github.com/khanhvo/mathgenius/internal/numerology"
	"github.com/khanhvo/mathgenius/internal/store"
)

// snapshotKeep bounds how many profile backups survive pruning.
const snapshotKeep = 5

// Service wires the pipeline to the store and the configured provider
// variants. Generation methods return content without touching the
// profile; callers decide what to apply, so a result that arrives after
// the user navigated away is discarded by simply not applying it.
type Service struct {
	kv        store.KVRepo
	events    store.EventRepo
	snapshots store.SnapshotRepo

	cfg      llm.Config
	variants []llm.Provider
	content  *contentgen.Service
	games    *games.Service
}

// New builds a Service over the store. Provider credentials resolve in
// order: stored credential, MATHGENIUS_ env config, standard vendor env
// vars. Without any credential the service still works for everything
// but generation.
func New(ctx context.Context, st *store.Store) (*Service, error) {
	s := &Service{
		kv:        st.KVRepo(),
		events:    st.EventRepo(),
		snapshots: st.SnapshotRepo(),
	}

	cfg := llm.ConfigFromEnv()
	if !cfg.HasCredential() {
		if discovered, ok := llm.DiscoverConfig(); ok {
			cfg = discovered
		}
	}
	if stored, ok, err := s.kv.Get(ctx, store.KeyCredential); err != nil {
		return nil, fmt.Errorf("read stored credential: %w", err)
	} else if ok && stored != "" {
		cfg = cfg.WithCredential(stored)
	}
	s.cfg = cfg

	if err := s.rebuildProviders(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// rebuildProviders constructs the variant chain for the current config.
// Without a credential the chain stays empty and the generator services
// fail fast with ErrMissingCredential.
func (s *Service) rebuildProviders(ctx context.Context) error {
	hasCred := s.cfg.HasCredential()
	s.variants = nil
	if hasCred {
		variants, err := llm.NewVariants(ctx, s.cfg, s.events)
		if err != nil {
			return fmt.Errorf("init providers: %w", err)
		}
		s.variants = variants
	}
	s.content = contentgen.NewService(s.variants, hasCred)
	s.games = games.NewService(s.variants, hasCred)
	return nil
}

// HasCredential reports whether generation is possible.
func (s *Service) HasCredential() bool { return s.cfg.HasCredential() }

// ProviderName returns the configured provider.
func (s *Service) ProviderName() string { return s.cfg.Provider }

// SetCredential stores the API key and rebuilds the provider chain.
func (s *Service) SetCredential(ctx context.Context, key string) error {
	if err := s.kv.Set(ctx, store.KeyCredential, key); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}
	s.cfg = s.cfg.WithCredential(key)
	return s.rebuildProviders(ctx)
}

// ComputeNumerologyProfile derives the numerology profile from a date
// of birth. Pure; malformed dates degrade to the default profile.
func (s *Service) ComputeNumerologyProfile(name, dob string) numerology.Profile {
	_ = name // the reduction uses only the date digits
	return numerology.Analyze(dob)
}

// CreateProfile builds and persists a fresh learner profile.
func (s *Service) CreateProfile(ctx context.Context, name, dob string, grade int) (*learner.UserProfile, error) {
	p := learner.New(name, dob, grade)
	if err := learner.Save(ctx, s.kv, p); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadProfile returns the stored profile, or (nil, nil) when none exists.
func (s *Service) LoadProfile(ctx context.Context) (*learner.UserProfile, error) {
	return learner.Load(ctx, s.kv)
}

// SaveProfile persists the profile.
func (s *Service) SaveProfile(ctx context.Context, p *learner.UserProfile) error {
	return learner.Save(ctx, s.kv, p)
}

// ApplySelfAssessment records the onboarding self-assessment onto the
// profile and persists it.
func (s *Service) ApplySelfAssessment(ctx context.Context, p *learner.UserProfile, level int, tags []string, notes string) error {
	p.SetAssessment(level, tags, notes)
	return learner.Save(ctx, s.kv, p)
}

// ResetProfile snapshots the current profile, then removes it. The
// credential survives a reset.
func (s *Service) ResetProfile(ctx context.Context) error {
	if raw, ok, err := s.kv.Get(ctx, store.KeyUserProfile); err == nil && ok {
		if err := s.snapshots.Save(ctx, raw); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to snapshot profile before reset: %v\n", err)
		} else if err := s.snapshots.Prune(ctx, snapshotKeep); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to prune snapshots: %v\n", err)
		}
	}
	return learner.Reset(ctx, s.kv)
}

// Analyze folds the profile's history into the analyzer output.
func (s *Service) Analyze(p *learner.UserProfile) analytics.Analysis {
	return analytics.Analyze(p.History, p.ProficiencyLevel)
}

// GenerateLearningPath produces a personalized path. Returns content
// only; call ApplyLearningPath to adopt it.
func (s *Service) GenerateLearningPath(ctx context.Context, p *learner.UserProfile, topics []string) ([]learner.LearningUnit, error) {
	return s.content.GenerateLearningPath(ctx, p, topics)
}

// GenerateChallengeUnit produces an upgraded version of a completed unit.
func (s *Service) GenerateChallengeUnit(ctx context.Context, p *learner.UserProfile, unit learner.LearningUnit) (*learner.LearningUnit, error) {
	return s.content.GenerateChallengeUnit(ctx, p, unit)
}

// GenerateComprehensiveTest produces the 20-question final exam unit.
func (s *Service) GenerateComprehensiveTest(ctx context.Context, p *learner.UserProfile) (*learner.LearningUnit, error) {
	return s.content.GenerateComprehensiveTest(ctx, p)
}

// GenerateGames produces fresh game activities, degrading to the static
// fallback on exhaustion.
func (s *Service) GenerateGames(ctx context.Context, p *learner.UserProfile) ([]learner.GameActivity, error) {
	return s.games.Generate(ctx, p)
}

// ApplyLearningPath adopts a generated path onto the profile and persists it.
func (s *Service) ApplyLearningPath(ctx context.Context, p *learner.UserProfile, units []learner.LearningUnit, topics []string) error {
	p.SetLearningPath(units, topics)
	return learner.Save(ctx, s.kv, p)
}

// ApplyChallengeUnit replaces the completed unit with its upgraded
// version in place and persists the profile.
func (s *Service) ApplyChallengeUnit(ctx context.Context, p *learner.UserProfile, upgraded learner.LearningUnit) error {
	if !p.ReplacePathUnit(upgraded) {
		return fmt.Errorf("unit %q not in learning path", upgraded.ID)
	}
	return learner.Save(ctx, s.kv, p)
}

// ApplyResult folds a finished quiz into the profile, moves the
// proficiency level against recent form, persists the profile, and
// appends the result to the event log. The event append is best-effort.
func (s *Service) ApplyResult(ctx context.Context, p *learner.UserProfile, unit learner.LearningUnit, r learner.QuizResult) (learner.QuizResult, error) {
	stamped := p.ApplyResult(unit, r)
	p.ProficiencyLevel = analytics.Analyze(p.History, p.ProficiencyLevel).AdjustedLevel
	if err := learner.Save(ctx, s.kv, p); err != nil {
		return stamped, err
	}

	err := s.events.AppendQuizResult(ctx, store.QuizResultEventData{
		UnitID:           stamped.UnitID,
		UnitTitle:        stamped.UnitTitle,
		Level:            unit.Level,
		Score:            stamped.Score,
		Total:            stamped.TotalQuestions,
		TimeSpentSeconds: stamped.TimeSpentSeconds,
		Passed:           stamped.Ratio() >= learner.PassThreshold,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log quiz result event: %v\n", err)
	}
	return stamped, nil
}

// ApplyGames adopts generated activities onto the profile and persists it.
func (s *Service) ApplyGames(ctx context.Context, p *learner.UserProfile, activities []learner.GameActivity) error {
	p.CurrentGames = activities
	return learner.Save(ctx, s.kv, p)
}

// CompleteGame records a finished game activity and persists the profile.
func (s *Service) CompleteGame(ctx context.Context, p *learner.UserProfile, g learner.GameActivity, correct bool, answer string) error {
	p.CompleteGame(g, correct, answer)
	return learner.Save(ctx, s.kv, p)
}

// RecentLLMRequests exposes the request event log for inspection.
func (s *Service) RecentLLMRequests(ctx context.Context, limit int) ([]store.LLMRequestRecord, error) {
	return s.events.RecentLLMRequests(ctx, limit)
}
