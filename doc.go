// Package cellar is the Composition Root for the Cellar application.
//
// It connects the core browsing logic (record normalization, filtering,
// sorting and personal notes) with the infrastructure adapters (CSV feeds and
// key/value storage) using the Hexagonal Architecture pattern.
//
// The collection lives in a published spreadsheet. Cellar fetches it as CSV,
// normalizes every row into a Wine, and answers queries against the loaded
// catalog entirely in memory. Personal notes and the theme preference are the
// only state Cellar writes, and it writes them through core.Storage.
//
// Usage:
//
//	svc, err := cellar.New(ctx, cellar.Config{},
//		cellar.WithFeedURI("./collection.csv"),
//		cellar.WithEphemeral(true),
//	)
//	if err != nil {
//		return err
//	}
//	catalog, err := svc.Load(ctx)
//	if err != nil {
//		return err
//	}
//	res := catalog.Apply(cellar.Query{SortBy: core.SortRating, Direction: core.Desc})
package cellar
