package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KenW28/Push-Up-Analyzer/internal/leaderboard"
)

func TestLocal_DerivesAndFilters(t *testing.T) {
	local := NewLocal([]leaderboard.Participant{
		{Username: "kendrick", BaseReps: 210, Friend: true},
		{Username: "jordan", BaseReps: 145, Friend: false},
	})

	rows, err := local.FetchRows(context.Background(), leaderboard.ScopeGlobal, leaderboard.WindowMonth)
	require.NoError(t, err)
	require.Equal(t, []leaderboard.ScoredRow{
		{Username: "kendrick", TotalReps: 840},
		{Username: "jordan", TotalReps: 580},
	}, rows)

	rows, err = local.FetchRows(context.Background(), leaderboard.ScopeFriends, leaderboard.WindowMonth)
	require.NoError(t, err)
	require.Equal(t, []leaderboard.ScoredRow{
		{Username: "kendrick", TotalReps: 840},
	}, rows)
}

func TestLocal_EmptySet(t *testing.T) {
	local := NewLocal(nil)
	rows, err := local.FetchRows(context.Background(), leaderboard.ScopeGlobal, leaderboard.WindowMinute)
	require.NoError(t, err)
	require.Empty(t, rows)
}
