package learner

import "time"

// PassThreshold is the score ratio at or above which a unit counts as
// passed. The boundary is inclusive: exactly half right completes the
// unit. The same convention applies everywhere a ratio is compared.
const PassThreshold = 0.5

// ApplyResult folds a finished quiz result into the profile: the result
// is stamped with the unit title and completion time and prepended to
// history, and the matching path unit's status is updated against the
// pass threshold. Exam units (level 99) and results for units no longer
// on the path update history only.
//
// Returns the stamped result as stored.
func (p *UserProfile) ApplyResult(unit LearningUnit, r QuizResult) QuizResult {
	r.UnitTitle = unit.Title
	r.Timestamp = time.Now()

	if !unit.IsExam() {
		if u, _ := p.UnitByID(r.UnitID); u != nil {
			if r.Ratio() >= PassThreshold {
				u.Status = StatusCompleted
			} else {
				u.Status = StatusActive
			}
		}
	}

	p.History = append([]QuizResult{r}, p.History...)
	return r
}

// ReplacePathUnit swaps in a challenge upgrade for the unit with the same
// id, keeping its array position. No-op when the id is not on the path.
func (p *UserProfile) ReplacePathUnit(upgraded LearningUnit) bool {
	_, i := p.UnitByID(upgraded.ID)
	if i < 0 {
		return false
	}
	p.LearningPath[i] = upgraded
	return true
}

// SetLearningPath installs a freshly generated path, resetting topic
// selection bookkeeping on the profile.
func (p *UserProfile) SetLearningPath(units []LearningUnit, topics []string) {
	p.LearningPath = units
	p.SelectedTopics = topics
}

// CompleteGame records a finished game activity: the game id is added to
// the completed set and a single-question pseudo-result lands in history.
// Path status is never touched.
func (p *UserProfile) CompleteGame(g GameActivity, correct bool, answer string) {
	for _, id := range p.CompletedGameIDs {
		if id == g.ID {
			return
		}
	}
	p.CompletedGameIDs = append(p.CompletedGameIDs, g.ID)

	score := 0
	if correct {
		score = 1
	}
	p.History = append([]QuizResult{{
		UnitID:         g.ID,
		UnitTitle:      g.Title,
		Score:          score,
		TotalQuestions: 1,
		UserAnswers:    map[string]string{g.ID: answer},
		Timestamp:      time.Now(),
	}}, p.History...)
}
