package leaderboard

// Assemble produces one scored row per participant visible under scope,
// with scores derived for the given window. Callers rank the result; the
// order here is whatever FilterScope preserved.
func Assemble(participants []Participant, scope Scope, window Window) []ScoredRow {
	visible := FilterScope(participants, scope)

	rows := make([]ScoredRow, 0, len(visible))
	for _, p := range visible {
		rows = append(rows, ScoredRow{
			Username:  p.Username,
			TotalReps: DeriveScore(p.BaseReps, window),
		})
	}
	return rows
}
