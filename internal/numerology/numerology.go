// Package numerology derives a fixed learner personality profile from a
// birth date using life path number reduction. The profile is a key into
// a static table; nothing here touches the network or the store.
package numerology

// Master numbers short-circuit digit reduction.
const (
	MasterIntuition = 11
	MasterBuilder   = 22
	MasterHealer    = 33
)

// minDigits is the minimum digit count for a date string to be considered
// a valid birth date (d/m/yyyy without separators).
const minDigits = 6

// Profile describes a learner personality keyed by life path number.
// Looked up from the static table, never mutated.
type Profile struct {
	LifePathNumber  int
	Title           string
	Overview        string
	LearningStyle   string
	Aptitude        string
	Motivation      string
	MathApproach    string
	Strengths       []string
	Challenges      []string
	EffectiveMethod string
	Environment     string
	Conclusion      string
}

// LifePath computes the life path number from a date-of-birth string.
// Both day-first ("02/12/2009") and year-first ("2009-12-02") formats work
// because only the digits matter. Returns 0 when the string carries fewer
// than six digits; callers fall back to the default profile via Lookup.
func LifePath(dob string) int {
	sum := 0
	digits := 0
	for _, r := range dob {
		if r >= '0' && r <= '9' {
			sum += int(r - '0')
			digits++
		}
	}
	if digits < minDigits {
		return 0
	}
	return reduce(sum)
}

// reduce repeatedly sums the digits of n until it is a single digit or a
// master number. 29 → 11 (stop), not 2.
func reduce(n int) int {
	for n >= 10 {
		if isMaster(n) {
			return n
		}
		s := 0
		for n > 0 {
			s += n % 10
			n /= 10
		}
		n = s
	}
	return n
}

func isMaster(n int) bool {
	return n == MasterIntuition || n == MasterBuilder || n == MasterHealer
}

// Lookup returns the profile for the given life path number. Unknown
// numbers (including the 0 sentinel from an invalid date) fall back to
// profile 1 with the original number preserved on the result.
func Lookup(lifePath int) Profile {
	p, ok := profiles[lifePath]
	if !ok {
		p = profiles[1]
	}
	p.LifePathNumber = lifePath
	return p
}

// Analyze computes the life path number for the given date of birth and
// returns the matching profile in one step.
func Analyze(dob string) Profile {
	return Lookup(LifePath(dob))
}
