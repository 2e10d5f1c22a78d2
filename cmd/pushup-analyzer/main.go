package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/http/cookiejar"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	"github.com/KenW28/Push-Up-Analyzer/internal/leaderboard"
	"github.com/KenW28/Push-Up-Analyzer/internal/session"
	"github.com/KenW28/Push-Up-Analyzer/internal/source"
	"github.com/KenW28/Push-Up-Analyzer/internal/storage"
	"github.com/KenW28/Push-Up-Analyzer/internal/tui"
)

type Config struct {
	Mode         string
	APIURL       string
	LoginURL     string
	EventsURL    string
	DBPath       string
	Username     string
	RefreshEvery time.Duration
	SSHAddr      string
	HostKeyPath  string
}

func loadConfig() Config {
	cfg := Config{
		Mode:        getEnv("PUSHUP_MODE", "remote"),
		APIURL:      getEnv("PUSHUP_API_URL", "http://localhost:3000"),
		LoginURL:    getEnv("PUSHUP_LOGIN_URL", "http://localhost:3000/login.html"),
		EventsURL:   getEnv("PUSHUP_EVENTS_URL", ""),
		DBPath:      getEnv("PUSHUP_DB", "./pushup.db"),
		Username:    getEnv("PUSHUP_USER", "local"),
		SSHAddr:     getEnv("PUSHUP_SSH_ADDR", ""),
		HostKeyPath: getEnv("PUSHUP_HOSTKEY", ".ssh/pushup_analyzer"),
	}
	if raw := getEnv("PUSHUP_REFRESH", ""); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("invalid PUSHUP_REFRESH: %v", err)
		}
		cfg.RefreshEvery = d
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// demoParticipants seeds a fresh local database so the board isn't empty
// on first run.
var demoParticipants = []leaderboard.Participant{
	{Username: "kendrick", BaseReps: 210, Friend: true},
	{Username: "jordan", BaseReps: 145, Friend: false},
	{Username: "alex", BaseReps: 90, Friend: true},
	{Username: "sam", BaseReps: 305, Friend: false},
}

func main() {
	cfg := loadConfig()

	gate, src, err := buildPipeline(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var updates chan struct{}
	if cfg.Mode == "remote" && cfg.EventsURL != "" {
		updates = make(chan struct{}, 1)
		go watchUpdates(ctx, cfg.EventsURL, updates)
	}

	if cfg.SSHAddr != "" {
		runSSH(ctx, cfg, src, updates)
		return
	}
	runLocal(cfg, gate, src, updates)
}

// buildPipeline picks the data source and auth gate for this deployment.
// The choice is configuration, never a per-request decision.
func buildPipeline(cfg Config) (session.Gate, source.DataSource, error) {
	switch cfg.Mode {
	case "local":
		db, err := storage.InitDB(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		storage.DB = db

		if err := storage.SeedIfEmpty(demoParticipants); err != nil {
			return nil, nil, err
		}
		participants, err := storage.ListParticipants()
		if err != nil {
			return nil, nil, err
		}

		return session.Static{Username: cfg.Username}, source.NewLocal(participants), nil

	case "remote":
		// One client with a cookie jar so the session cookie set at login
		// travels with both the auth check and the leaderboard fetches.
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, nil, err
		}
		client := &http.Client{Timeout: 10 * time.Second, Jar: jar}

		return session.NewRemote(cfg.APIURL, client), source.NewRemote(cfg.APIURL, client), nil

	default:
		return nil, nil, fmt.Errorf("unknown PUSHUP_MODE %q (want remote or local)", cfg.Mode)
	}
}

// watchUpdates keeps a subscription to the backend's event stream alive,
// nudging the board to refresh whenever the backend says it changed.
func watchUpdates(ctx context.Context, url string, updates chan<- struct{}) {
	w := source.NewWatcher(url, nil)
	for {
		err := w.Watch(ctx, func() {
			select {
			case updates <- struct{}{}:
			default:
			}
		})
		if ctx.Err() != nil {
			return
		}
		log.Printf("event stream disconnected: %v (reconnecting)", err)

		select {
		case <-ctx.Done():
			return
		case <-time.After(5 * time.Second):
		}
	}
}

func runLocal(cfg Config, gate session.Gate, src source.DataSource, updates chan struct{}) {
	m := tui.InitialModel(tui.Config{
		Gate:         gate,
		Source:       src,
		LoginURL:     cfg.LoginURL,
		RefreshEvery: cfg.RefreshEvery,
		Updates:      updates,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		log.Fatal(err)
	}

	if fm, ok := final.(tui.Model); ok && fm.Redirected() {
		fmt.Println("Not logged in. Visit " + cfg.LoginURL + " to sign in.")
	}
}

func runSSH(ctx context.Context, cfg Config, src source.DataSource, updates chan struct{}) {
	teaHandler := func(s ssh.Session) (tea.Model, []tea.ProgramOption) {
		if len(s.Command()) > 0 {
			return nil, nil
		}

		pty, _, active := s.Pty()
		if !active {
			wish.Fatalln(s, "no active terminal")
			return nil, nil
		}

		// SSH already authenticated the user; their key name is the
		// session identity.
		m := tui.InitialModel(tui.Config{
			Gate:         session.Static{Username: s.User()},
			Source:       src,
			LoginURL:     cfg.LoginURL,
			RefreshEvery: cfg.RefreshEvery,
			Updates:      updates,
			Width:        pty.Window.Width,
			Height:       pty.Window.Height,
		})
		return m, bubbletea.MakeOptions(s)
	}

	sshServer, err := wish.NewServer(
		wish.WithAddress(cfg.SSHAddr),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithPublicKeyAuth(func(ctx ssh.Context, key ssh.PublicKey) bool {
			// Any key is welcome on a read-only board.
			return true
		}),
		wish.WithMiddleware(
			bubbletea.Middleware(teaHandler),
			logging.Middleware(),
		),
	)
	if err != nil {
		log.Fatal(err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	log.Printf("SSH leaderboard listening on %s", cfg.SSHAddr)

	go func() {
		if err := sshServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-done
	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := sshServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		log.Fatal(err)
	}
}
