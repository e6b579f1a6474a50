package cellar

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aretw0/cellar/internal/platform"
	"github.com/aretw0/cellar/pkg/adapters/feed"
	"github.com/aretw0/cellar/pkg/core"
)

// --- Types ---

// Wine is a public alias for the normalized record.
type Wine = core.Wine

// Query is a public alias for a filter plus sort request.
type Query = core.Query

// Result is a public alias for a computed catalog view.
type Result = core.Result

// Config is a public alias for the application configuration.
type Config = platform.Config

// --- Configuration ---

// Option defines a functional option for configuring Cellar.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStorage allows injecting a custom storage adapter.
func WithStorage(s core.Storage) Option {
	return platform.WithStorage(s)
}

// WithFeed allows injecting a custom feed source.
func WithFeed(f core.FeedSource) Option {
	return platform.WithFeed(f)
}

// WithFeedURI reads the collection from uri: an http(s) URL, a CSV path or
// a glob of CSV paths.
func WithFeedURI(uri string) Option {
	return platform.WithFeed(feed.Open(uri))
}

// WithHTTPClient sets the client used for remote feeds.
func WithHTTPClient(c *http.Client) Option {
	return platform.WithHTTPClient(c)
}

// WithEphemeral keeps notes and preferences in memory only.
func WithEphemeral(enabled bool) Option {
	return platform.WithEphemeral(enabled)
}

// WithReadOnly refuses note and theme writes.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// --- Factory ---

// LoadConfig reads configuration from the working directory, the
// environment and the nearest config file.
func LoadConfig() (Config, error) {
	return platform.LoadConfig(platform.LoadConfigInput{DotEnv: true})
}

// New creates a new Cellar Service. A zero cfg is filled with defaults.
// The catalog is not fetched until Service.Load.
func New(ctx context.Context, cfg Config, opts ...Option) (*core.Service, error) {
	if cfg.Feed.URI == "" && cfg.Storage.Dir == "" {
		loaded, err := platform.LoadConfig(platform.LoadConfigInput{})
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	return platform.New(ctx, cfg, opts...)
}

// Open creates a service and loads the catalog.
func Open(ctx context.Context, cfg Config, opts ...Option) (*core.Service, *core.Catalog, error) {
	svc, err := New(ctx, cfg, opts...)
	if err != nil {
		return nil, nil, err
	}
	catalog, err := svc.Load(ctx)
	if err != nil {
		return svc, nil, err
	}
	return svc, catalog, nil
}
