// Package match implements the tolerant answer comparison used by the lesson
// engine for pre- and post-test scoring.
package match

import "strings"

// Matches reports whether the learner's input counts as the target answer.
// Callers resolve index-style answers to literal option text first (see
// content.PreTestItem.Target).
//
// Comparison policy, in order:
//
//  1. Both sides are trimmed and case-folded.
//  2. Exact equality matches.
//  3. Containment in either direction matches, so a partial typed answer
//     like "b" matches "B. Rent". Short targets can over-match ("a" is in
//     almost everything); that looseness is deliberate and kept for
//     compatibility with existing lesson content.
//  4. Failing that, an option that overlaps both the input and the target
//     matches — this covers a learner typing a full option label that
//     carries extra text around the answer itself.
//
// The function is pure and total: anything unmatched is simply false.
func Matches(userText, target string, options []string) bool {
	user := normalize(userText)
	want := normalize(target)
	if user == "" || want == "" {
		return false
	}

	if user == want {
		return true
	}
	if overlaps(user, want) {
		return true
	}

	for _, opt := range options {
		o := normalize(opt)
		if o == "" {
			continue
		}
		if overlaps(o, user) && overlaps(o, want) {
			return true
		}
	}

	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// overlaps reports containment in either direction.
func overlaps(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}
