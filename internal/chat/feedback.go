package chat

import "fmt"

// passThreshold is the post-test passing percentage. The boundary is
// inclusive: exactly 80% passes.
const passThreshold = 80

// percent returns the integer percentage of correct answers. Tier boundaries
// are inclusive at the lower bound, which integer division preserves.
func percent(correct, total int) int {
	if total == 0 {
		return 0
	}
	return correct * 100 / total
}

// preTestFeedback builds the encouragement message shown when the pre-test
// finishes. Four tiers; the denominator is every pre-test item, including
// acknowledgment-only ones.
func preTestFeedback(correct, total int) string {
	p := percent(correct, total)
	switch {
	case p >= 80:
		return fmt.Sprintf("You got %d out of %d — outstanding! You're starting with a strong foundation.", correct, total)
	case p >= 60:
		return fmt.Sprintf("You got %d out of %d — nice work! You already know a good chunk of this.", correct, total)
	case p >= 40:
		return fmt.Sprintf("You got %d out of %d — good effort! You know some of this already, and we'll fill in the rest together.", correct, total)
	default:
		return fmt.Sprintf("You got %d out of %d — thanks for giving it a shot! This lesson is exactly where those answers will change.", correct, total)
	}
}

// postTestFeedback builds the final score message. Five tiers plus a
// pass/fail note at the 80% threshold.
func postTestFeedback(correct, total int) string {
	p := percent(correct, total)

	var tier string
	switch {
	case p >= 90:
		tier = "Phenomenal work — you've truly mastered this material!"
	case p >= 80:
		tier = "Excellent work — you clearly understood the big ideas!"
	case p >= 70:
		tier = "Good work — most of this stuck, with just a little left to polish."
	case p >= 60:
		tier = "Not bad — you picked up a fair amount, and a quick review would lock it in."
	default:
		tier = "This one was tough — don't sweat it. A second pass through the topics will make a big difference."
	}

	var note string
	if p >= passThreshold {
		note = "That's a passing score — lesson mastered!"
	} else {
		note = fmt.Sprintf("That's just under the %d%% passing bar. You can revisit the topics and retake this lesson anytime.", passThreshold)
	}

	return fmt.Sprintf("Final score: %d out of %d (%d%%). %s %s", correct, total, p, tier, note)
}
