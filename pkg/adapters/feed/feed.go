// Package feed is the collection's input adapter. It turns a published
// spreadsheet (an HTTP(S) CSV export or local CSV files) into raw rows for
// core.Normalize.
package feed

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/cellar/pkg/core"
)

// Option configures a source built by Open.
type Option func(*options)

type options struct {
	timeout time.Duration
	client  *http.Client
	logger  *slog.Logger
}

// WithTimeout bounds a single HTTP fetch. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.client = c
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// IsRemote reports whether uri names an HTTP(S) feed.
func IsRemote(uri string) bool {
	lower := strings.ToLower(uri)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Open returns an HTTPSource for http(s) URIs and a FileSource otherwise.
func Open(uri string, opts ...Option) core.FeedSource {
	o := &options{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}

	if !IsRemote(uri) {
		return &FileSource{Pattern: uri, Logger: o.logger}
	}

	client := o.client
	if client == nil {
		client = &http.Client{Timeout: o.timeout}
	}
	return &HTTPSource{URL: uri, Client: client, Logger: o.logger}
}
