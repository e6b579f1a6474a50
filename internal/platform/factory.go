package platform

import (
	"context"
	"log/slog"

	"github.com/aretw0/cellar/pkg/adapters/feed"
	"github.com/aretw0/cellar/pkg/adapters/fs"
	"github.com/aretw0/cellar/pkg/adapters/memory"
	"github.com/aretw0/cellar/pkg/core"
)

// New wires a core.Service from cfg:
//
//	svc, err := platform.New(ctx, cfg, platform.WithLogger(logger))
//
// The catalog is not loaded; call Service.Load.
func New(ctx context.Context, cfg Config, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	storage, err := openStorage(ctx, cfg, o)
	if err != nil {
		return nil, err
	}

	source := o.feed
	if source == nil && cfg.Feed.URI != "" {
		feedOpts := []feed.Option{
			feed.WithTimeout(cfg.FeedTimeout()),
			feed.WithLogger(o.logger),
		}
		if o.httpClient != nil {
			feedOpts = append(feedOpts, feed.WithHTTPClient(o.httpClient))
		}
		source = feed.Open(cfg.Feed.URI, feedOpts...)
	}

	return core.NewService(ctx, storage, source, o.logger)
}

func openStorage(ctx context.Context, cfg Config, o *options) (core.Storage, error) {
	if o.storage != nil {
		return o.storage, nil
	}
	if o.ephemeral {
		return memory.NewStore(nil), nil
	}

	store := fs.NewStore(fs.Config{
		Path:      cfg.Storage.Dir,
		MustExist: o.mustExist,
		ReadOnly:  o.readOnly,
		Logger:    o.logger,
	})
	if err := store.Initialize(ctx); err != nil {
		return nil, err
	}
	return store, nil
}
