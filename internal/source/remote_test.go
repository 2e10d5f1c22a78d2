package source

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/KenW28/Push-Up-Analyzer/internal/leaderboard"
)

func newBackend(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/api/leaderboard", handler)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestRemote_FetchRows(t *testing.T) {
	srv := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "friends", r.URL.Query().Get("scope"))
		require.Equal(t, "30s", r.URL.Query().Get("window"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"scope":  "friends",
			"window": "30s",
			"rows": []map[string]any{
				{"username": "kendrick", "totalReps": 840},
				{"username": "jordan", "totalReps": 580},
			},
		})
	})

	remote := NewRemote(srv.URL, srv.Client())
	rows, err := remote.FetchRows(context.Background(), leaderboard.ScopeFriends, leaderboard.WindowHalfMin)
	require.NoError(t, err)
	require.Equal(t, []leaderboard.ScoredRow{
		{Username: "kendrick", TotalReps: 840},
		{Username: "jordan", TotalReps: 580},
	}, rows)
}

func TestRemote_EncodesQueryParams(t *testing.T) {
	var rawQuery string
	srv := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"rows":[]}`))
	})

	remote := NewRemote(srv.URL, srv.Client())
	_, err := remote.FetchRows(context.Background(), leaderboard.Scope("a b"), leaderboard.WindowMonth)
	require.NoError(t, err)
	require.Contains(t, rawQuery, "scope=a+b")
}

func TestRemote_Unauthorized(t *testing.T) {
	srv := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not logged in", http.StatusUnauthorized)
	})

	remote := NewRemote(srv.URL, srv.Client())
	_, err := remote.FetchRows(context.Background(), leaderboard.ScopeGlobal, leaderboard.WindowMonth)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestRemote_ServerError(t *testing.T) {
	srv := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	remote := NewRemote(srv.URL, srv.Client())
	_, err := remote.FetchRows(context.Background(), leaderboard.ScopeGlobal, leaderboard.WindowMonth)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusInternalServerError, statusErr.Code)
}

func TestRemote_MissingRowsIsEmpty(t *testing.T) {
	srv := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"scope":"global","window":"month"}`))
	})

	remote := NewRemote(srv.URL, srv.Client())
	rows, err := remote.FetchRows(context.Background(), leaderboard.ScopeGlobal, leaderboard.WindowMonth)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestRemote_WrongShapeRowsIsEmpty(t *testing.T) {
	srv := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"rows":"not-an-array"}`))
	})

	remote := NewRemote(srv.URL, srv.Client())
	rows, err := remote.FetchRows(context.Background(), leaderboard.ScopeGlobal, leaderboard.WindowMonth)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestRemote_UnparseableBodyFails(t *testing.T) {
	srv := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>definitely not json</html>`))
	})

	remote := NewRemote(srv.URL, srv.Client())
	_, err := remote.FetchRows(context.Background(), leaderboard.ScopeGlobal, leaderboard.WindowMonth)
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrUnauthorized))
}

func TestRemote_TransportError(t *testing.T) {
	srv := newBackend(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	remote := NewRemote(srv.URL, nil)
	_, err := remote.FetchRows(context.Background(), leaderboard.ScopeGlobal, leaderboard.WindowMonth)
	require.Error(t, err)
}
