package main

import (
	"context"

	"github.com/aretw0/cellar/pkg/core"
	"github.com/aretw0/cellar/pkg/view"
)

// newRenderer builds a renderer from the view config and the stored theme.
func newRenderer(ctx context.Context, svc *core.Service, layout string) (*view.Renderer, error) {
	l, err := view.ParseLayout(layout)
	if err != nil {
		return nil, err
	}
	return view.NewRenderer(view.Config{
		Theme:   svc.Theme(ctx),
		Layout:  l,
		Width:   cfg.View.Width,
		Columns: cfg.View.Columns,
	}), nil
}
