package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newAuthBackend(t *testing.T, me, logout http.HandlerFunc) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	if me != nil {
		r.Get("/api/auth/me", me)
	}
	if logout != nil {
		r.Post("/api/auth/logout", logout)
	}
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestRemote_ResolveLoggedIn(t *testing.T) {
	srv := newAuthBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"loggedIn":true,"username":"kendrick"}`))
	}, nil)

	gate := NewRemote(srv.URL, srv.Client())
	v, err := gate.Resolve(context.Background())
	require.NoError(t, err)
	require.True(t, v.LoggedIn)
	require.Equal(t, "kendrick", v.Username)
}

func TestRemote_ResolveLoggedOut(t *testing.T) {
	srv := newAuthBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"loggedIn":false}`))
	}, nil)

	gate := NewRemote(srv.URL, srv.Client())
	v, err := gate.Resolve(context.Background())
	require.NoError(t, err)
	require.False(t, v.LoggedIn)
	require.Empty(t, v.Username)
}

func TestRemote_ResolveNonSuccessStatus(t *testing.T) {
	srv := newAuthBackend(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}, nil)

	gate := NewRemote(srv.URL, srv.Client())
	_, err := gate.Resolve(context.Background())
	require.Error(t, err)
}

func TestRemote_ResolveTransportFailure(t *testing.T) {
	srv := newAuthBackend(t, nil, nil)
	url := srv.URL
	srv.Close()

	gate := NewRemote(url, nil)
	_, err := gate.Resolve(context.Background())
	require.Error(t, err)
}

func TestRemote_Logout(t *testing.T) {
	var called bool
	srv := newAuthBackend(t, nil, func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, _ = w.Write([]byte("ok"))
	})

	gate := NewRemote(srv.URL, srv.Client())
	require.NoError(t, gate.Logout(context.Background()))
	require.True(t, called)
}

func TestRemote_LogoutFailure(t *testing.T) {
	srv := newAuthBackend(t, nil, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	gate := NewRemote(srv.URL, srv.Client())
	require.Error(t, gate.Logout(context.Background()))
}

func TestStatic(t *testing.T) {
	gate := Static{Username: "kendrick"}
	v, err := gate.Resolve(context.Background())
	require.NoError(t, err)
	require.True(t, v.LoggedIn)
	require.Equal(t, "kendrick", v.Username)
	require.NoError(t, gate.Logout(context.Background()))
}
