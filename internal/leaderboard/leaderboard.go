// Package leaderboard holds the pure scoring and ranking core: deriving a
// displayed score from a participant's base rep count under a time window,
// filtering by scope, and assigning ranks.
package leaderboard

// Scope selects which participants are visible.
type Scope string

const (
	ScopeGlobal  Scope = "global"
	ScopeFriends Scope = "friends"
)

// Window is the time bucket used to convert base reps into a displayed score.
type Window string

const (
	WindowMonth   Window = "month"
	WindowMinute  Window = "minute"
	WindowHalfMin Window = "30s"
)

// Participant is a raw entry as the data source knows it.
type Participant struct {
	Username string
	BaseReps int
	Friend   bool
}

// ScoredRow is one leaderboard row on the wire and in memory. The JSON tags
// match the backend's /api/leaderboard payload.
type ScoredRow struct {
	Username  string `json:"username"`
	TotalReps int    `json:"totalReps"`
}

// RankedRow is a ScoredRow with its 1-based position after sorting.
type RankedRow struct {
	Rank      int
	Username  string
	TotalReps int
}
