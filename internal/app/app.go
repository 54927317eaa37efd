// Package app provides the orchestration layer for StreamBox: the
// synchronization workflows between the remote catalog, the local durable
// store and the in-memory state containers, plus the composition root
// that wires them to the terminal UI.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ThilinikaEvanthi1221/StreamBox/internal/auth"
	"github.com/ThilinikaEvanthi1221/StreamBox/internal/config"
	"github.com/ThilinikaEvanthi1221/StreamBox/internal/storage"
	"github.com/ThilinikaEvanthi1221/StreamBox/internal/tmdb"
	"github.com/ThilinikaEvanthi1221/StreamBox/internal/ui"
)

// Options configure the StreamBox application.
type Options struct {
	ConfigPath string       // empty uses the default ~/.config/streambox/config.toml
	DataDir    string       // overrides the configured data directory
	Logger     *slog.Logger // nil logs to a file under the data dir
}

// Run boots StreamBox until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.DataDir != "" {
		cfg.DataDir = opts.DataDir
	}

	logger := opts.Logger
	if logger == nil {
		// The terminal is owned by the UI, so logs go to a file.
		logFile, err := openLogFile(cfg.LogPath())
		if err != nil {
			logger = slog.New(slog.DiscardHandler)
		} else {
			defer func() { _ = logFile.Close() }()
			logger = slog.New(slog.NewTextHandler(logFile, nil))
		}
	}

	db, err := storage.Open(cfg.DatabasePath())
	if err != nil {
		return fmt.Errorf("open local store: %w", err)
	}
	defer func() { _ = db.Close() }()

	store, err := storage.NewStore(db, logger)
	if err != nil {
		return fmt.Errorf("init local store: %w", err)
	}

	users, err := auth.NewSQLiteStore(db)
	if err != nil {
		return fmt.Errorf("init account store: %w", err)
	}

	var remote *auth.RemoteProvider
	if cfg.RemoteAuthURL != "" {
		remote = auth.NewRemoteProvider(cfg.RemoteAuthURL, logger)
	}
	authSvc := auth.NewService(users, remote, logger)

	client, err := tmdb.NewClient(cfg.APIBaseURL, cfg.AccessToken, logger)
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}

	sync := NewSync(client, authSvc, store, logger)
	defer sync.Close()

	sync.Hydrate(ctx)

	return ui.Run(ui.Options{
		Context:      ctx,
		Control:      sync,
		Auth:         sync.Auth,
		Movies:       sync.Movies,
		Favourites:   sync.Favourites,
		Theme:        sync.Theme,
		ImageBaseURL: cfg.ImageBaseURL,
	})
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}
