package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/octoview/octoview-cli/internal/adapters/driven/config/file"
	"github.com/octoview/octoview-cli/internal/adapters/driven/storage/memory"
	"github.com/octoview/octoview-cli/internal/adapters/driven/storage/sqlite"
	"github.com/octoview/octoview-cli/internal/connectors/github"
	"github.com/octoview/octoview-cli/internal/core/ports/driven"
	"github.com/octoview/octoview-cli/internal/core/services"
	"github.com/octoview/octoview-cli/internal/logger"
	"github.com/octoview/octoview-cli/internal/netmon"
)

// networkFeed is the connectivity surface the commands and the TUI
// consume. The netmon monitor implements it.
type networkFeed interface {
	Online() bool
	Subscribe(fn func(online bool)) (unsubscribe func())
	Probe(ctx context.Context)
}

var (
	network networkFeed

	// sessionCloser holds the SQLite handle when the session is
	// file-backed, so Execute can close it on exit.
	sessionCloser io.Closer
)

// bootstrap wires the real services from configuration and flags.
func bootstrap(ctx context.Context) error {
	cfg, err := file.NewConfigStore(flagConfigDir)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	logger.Debug("config loaded from %s", cfg.Path())

	token := resolveToken(cfg)
	perPage := cfg.GetInt(file.KeyPerPage)

	blobs, err := openSession(cfg)
	if err != nil {
		return err
	}
	cache := services.NewSessionCache(blobs)

	monitor := netmon.NewMonitor()
	monitor.Probe(ctx)
	network = monitor

	gateway := github.NewGateway(github.NewClient(token), monitor)

	searchService = services.NewUserSearchService(gateway, cache, perPage)
	pagerFactory = services.NewPagerService(gateway, cache, perPage)
	detailsService = services.NewRepoDetailsService(gateway, cache)

	return nil
}

// resolveToken picks the GitHub token: flag, then environment, then
// the config file. Empty means anonymous access.
func resolveToken(cfg *file.ConfigStore) string {
	if flagToken != "" {
		return flagToken
	}
	if env := os.Getenv("GITHUB_TOKEN"); env != "" {
		return env
	}
	return cfg.GetString(file.KeyToken)
}

// openSession picks the session backend. The default in-memory store
// matches a browser session: closing the program drops the cache. A
// configured data directory switches to the SQLite store instead.
func openSession(cfg *file.ConfigStore) (driven.BlobStore, error) {
	dataDir := cfg.GetString(file.KeySessionDir)
	if dataDir == "" {
		logger.Debug("session backend: memory")
		return memory.NewBlobStore(), nil
	}

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}
	logger.Debug("session backend: sqlite at %s", store.Path())
	sessionCloser = store
	return store, nil
}

// closeSession releases the file-backed session store, if any.
func closeSession() {
	if sessionCloser != nil {
		if err := sessionCloser.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "closing session store: %v\n", err)
		}
		sessionCloser = nil
	}
}
