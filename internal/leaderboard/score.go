package leaderboard

import "math"

// DeriveScore converts a base rep count into the score shown for the given
// window. The month window scales up (a month of activity), the short
// windows scale down but never below 1 so active users always show on the
// board. An unrecognized window leaves the base count untouched.
func DeriveScore(baseReps int, window Window) int {
	switch window {
	case WindowMonth:
		return baseReps * 4
	case WindowMinute:
		return atLeastOne(math.Round(float64(baseReps) / 200))
	case WindowHalfMin:
		return atLeastOne(math.Round(float64(baseReps) / 400))
	default:
		return baseReps
	}
}

func atLeastOne(v float64) int {
	if v < 1 {
		return 1
	}
	return int(v)
}
