package platform

import (
	"log/slog"
	"net/http"

	"github.com/aretw0/cellar/pkg/core"
)

// options holds the internal configuration for the cellar service.
type options struct {
	storage    core.Storage
	feed       core.FeedSource
	logger     *slog.Logger
	httpClient *http.Client
	ephemeral  bool
	readOnly   bool
	mustExist  bool
}

// Option defines a functional option for configuring cellar.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStorage allows injecting a custom storage adapter (e.g. memory).
// If provided, the filesystem store at Config.Storage.Dir is skipped.
func WithStorage(s core.Storage) Option {
	return func(o *options) {
		o.storage = s
	}
}

// WithFeed allows injecting a custom feed source.
// If provided, Config.Feed.URI is ignored.
func WithFeed(f core.FeedSource) Option {
	return func(o *options) {
		o.feed = f
	}
}

// WithHTTPClient sets the client used for remote feeds.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithEphemeral keeps notes and preferences in memory only.
func WithEphemeral(enabled bool) Option {
	return func(o *options) {
		o.ephemeral = enabled
	}
}

// WithReadOnly enables read-only mode.
// In this mode note and theme writes fail (and are logged), and the storage
// directory is never created.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithMustExist requires the storage directory to already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}
