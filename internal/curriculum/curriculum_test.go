package curriculum

import "testing"

func TestTopicsForGradeAppendsReviews(t *testing.T) {
	topics := TopicsForGrade(5)
	if len(topics) != 8 {
		t.Fatalf("expected 8 topics for grade 5, got %d", len(topics))
	}

	reviews := 0
	for _, topic := range topics {
		if topic.Review {
			reviews++
		}
	}
	if reviews != 4 {
		t.Errorf("expected 4 review entries, got %d", reviews)
	}
	if topics[0].Review {
		t.Error("syllabus topics should come before reviews")
	}
	if topics[0].Label != "Số thập phân" {
		t.Errorf("unexpected first topic %q", topics[0].Label)
	}
}

func TestTopicsForGradeUnknownGrade(t *testing.T) {
	topics := TopicsForGrade(42)
	if len(topics) != 4 {
		t.Fatalf("expected only review entries, got %d topics", len(topics))
	}
	for _, topic := range topics {
		if !topic.Review {
			t.Errorf("topic %q is not a review entry", topic.ID)
		}
	}
}

func TestDefaultSelection(t *testing.T) {
	ids := DefaultSelection(11)
	if len(ids) != 3 {
		t.Fatalf("expected 3 preselected topics, got %d", len(ids))
	}
	if ids[0] != "g11-trig" {
		t.Errorf("unexpected first selection %q", ids[0])
	}

	if got := DefaultSelection(99); len(got) != 0 {
		t.Errorf("unknown grade should preselect nothing, got %v", got)
	}
}

func TestAllGradesCovered(t *testing.T) {
	for _, level := range Levels {
		for _, grade := range level.Grades {
			if !ValidGrade(grade) {
				t.Errorf("grade %d rejected by ValidGrade", grade)
			}
			topics := TopicsForGrade(grade)
			if len(topics) <= 4 {
				t.Errorf("grade %d has no syllabus topics", grade)
			}
			seen := make(map[string]bool)
			for _, topic := range topics {
				if seen[topic.ID] {
					t.Errorf("grade %d has duplicate topic id %s", grade, topic.ID)
				}
				seen[topic.ID] = true
			}
		}
	}
}
