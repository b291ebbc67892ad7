// Package analytics folds quiz history into an adjusted proficiency
// level and weak/strong topic sets for the request builder. Pure; never
// returns an error.
package analytics

import "github.com/khanhvo/mathgenius/internal/learner"

// Classification thresholds over a result's score ratio. Exactly 0.5 is
// neither weak nor strong.
const (
	WeakBelow     = 0.5
	StrongAtLeast = 0.8
)

// Level adjustment bounds on the recent average.
const (
	demoteBelow  = 0.5
	promoteAbove = 0.85
)

// RecentWindow is how many of the newest results feed the recent average.
const RecentWindow = 5

// Analysis is the analyzer output consumed by the content request builder.
type Analysis struct {
	// AdjustedLevel is the baseline proficiency level moved at most one
	// step by recent form, clamped to [1, 4].
	AdjustedLevel int

	// WeakTopics and StrongTopics are de-duplicated unit titles over the
	// full history, in first-seen order.
	WeakTopics   []string
	StrongTopics []string

	// RecentAverage is the mean score ratio over the recent window.
	// Meaningful only when HasData is true.
	RecentAverage float64

	// HasData is false for an empty history; the caller then uses the
	// baseline level unmodified.
	HasData bool
}

// Analyze classifies history (most-recent-first) against the baseline
// proficiency level. An empty history yields {AdjustedLevel: baseline}.
func Analyze(history []learner.QuizResult, baselineLevel int) Analysis {
	a := Analysis{AdjustedLevel: clampLevel(baselineLevel)}
	if len(history) == 0 {
		return a
	}
	a.HasData = true

	// Weak/strong sets scan the full history, not just the window.
	seenWeak := map[string]bool{}
	seenStrong := map[string]bool{}
	for _, r := range history {
		ratio := r.Ratio()
		switch {
		case ratio < WeakBelow:
			if !seenWeak[r.UnitTitle] {
				seenWeak[r.UnitTitle] = true
				a.WeakTopics = append(a.WeakTopics, r.UnitTitle)
			}
		case ratio >= StrongAtLeast:
			if !seenStrong[r.UnitTitle] {
				seenStrong[r.UnitTitle] = true
				a.StrongTopics = append(a.StrongTopics, r.UnitTitle)
			}
		}
	}

	recent := history
	if len(recent) > RecentWindow {
		recent = recent[:RecentWindow]
	}
	sum := 0.0
	for _, r := range recent {
		sum += r.Ratio()
	}
	a.RecentAverage = sum / float64(len(recent))

	switch {
	case a.RecentAverage < demoteBelow:
		a.AdjustedLevel = clampLevel(a.AdjustedLevel - 1)
	case a.RecentAverage > promoteAbove:
		a.AdjustedLevel = clampLevel(a.AdjustedLevel + 1)
	}

	return a
}

func clampLevel(level int) int {
	if level < learner.LevelWeak {
		return learner.LevelWeak
	}
	if level > learner.LevelExcellent {
		return learner.LevelExcellent
	}
	return level
}
