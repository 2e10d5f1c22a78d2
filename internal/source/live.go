package source

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tmaxmax/go-sse"
)

// Watcher subscribes to the backend's leaderboard event stream and calls
// notify whenever the board changes, so the view can refresh without
// polling. Payloads are ignored; an event only means "fetch again".
type Watcher struct {
	url    string
	client *http.Client
}

func NewWatcher(url string, client *http.Client) *Watcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Watcher{url: url, client: client}
}

// Watch blocks until ctx is cancelled or the stream fails.
func (w *Watcher) Watch(ctx context.Context, notify func()) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.url, nil)
	if err != nil {
		return fmt.Errorf("build events request: %w", err)
	}

	sseClient := &sse.Client{HTTPClient: w.client}
	conn := sseClient.NewConnection(req)
	conn.SubscribeToAll(func(sse.Event) {
		notify()
	})
	return conn.Connect()
}
