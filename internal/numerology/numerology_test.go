package numerology

import "testing"

func TestLifePath(t *testing.T) {
	tests := []struct {
		name string
		dob  string
		want int
	}{
		{"day first with slashes", "02/12/2009", 7}, // 0+2+1+2+2+0+0+9 = 16 → 7
		{"year first with dashes", "2009-12-02", 7},
		{"master number 22", "30/08/2009", 22},      // digit sum 22, no further reduction
		{"master number via 29", "09/09/2009", 11},  // sum 29 → 11, stops at 11
		{"single digit sum", "01/01/2000", 4},
		{"too few digits", "1/1/99", 0},
		{"empty", "", 0},
		{"no digits", "abc/def", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LifePath(tt.dob); got != tt.want {
				t.Errorf("LifePath(%q) = %d, want %d", tt.dob, got, tt.want)
			}
		})
	}
}

func TestReduceStopsAtMasters(t *testing.T) {
	// 29 → 2+9 = 11 → stop, not reduced further to 2.
	if got := reduce(29); got != 11 {
		t.Errorf("reduce(29) = %d, want 11", got)
	}
	if got := reduce(22); got != 22 {
		t.Errorf("reduce(22) = %d, want 22", got)
	}
	if got := reduce(33); got != 33 {
		t.Errorf("reduce(33) = %d, want 33", got)
	}
	// 39 → 12 → 3.
	if got := reduce(39); got != 3 {
		t.Errorf("reduce(39) = %d, want 3", got)
	}
}

func TestLookupFallsBackToOne(t *testing.T) {
	p := Lookup(0)
	if p.Title != profiles[1].Title {
		t.Errorf("expected fallback to profile 1, got %q", p.Title)
	}
	if p.LifePathNumber != 0 {
		t.Errorf("fallback should preserve the sentinel number, got %d", p.LifePathNumber)
	}
}

func TestLookupAllKnownNumbers(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 11, 22, 33} {
		p := Lookup(n)
		if p.LifePathNumber != n {
			t.Errorf("Lookup(%d).LifePathNumber = %d", n, p.LifePathNumber)
		}
		if p.Title == "" || p.Overview == "" || p.Conclusion == "" {
			t.Errorf("Lookup(%d) has empty descriptive fields", n)
		}
		if len(p.Strengths) == 0 || len(p.Challenges) == 0 {
			t.Errorf("Lookup(%d) missing strengths/challenges", n)
		}
	}
}

func TestAnalyze(t *testing.T) {
	p := Analyze("02/12/2009")
	if p.LifePathNumber != 7 {
		t.Errorf("Analyze life path = %d, want 7", p.LifePathNumber)
	}
	if p.Title != profiles[7].Title {
		t.Errorf("Analyze returned wrong profile: %q", p.Title)
	}
}
