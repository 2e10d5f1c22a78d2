package leaderboard

import "sort"

// Rank sorts rows by score descending and assigns contiguous 1-based
// ranks. The sort is stable, so rows with equal scores keep their arrival
// order. The input slice is not modified.
func Rank(rows []ScoredRow) []RankedRow {
	sorted := make([]ScoredRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalReps > sorted[j].TotalReps
	})

	ranked := make([]RankedRow, len(sorted))
	for i, row := range sorted {
		ranked[i] = RankedRow{
			Rank:      i + 1,
			Username:  row.Username,
			TotalReps: row.TotalReps,
		}
	}
	return ranked
}
