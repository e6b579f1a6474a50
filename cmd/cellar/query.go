package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/cellar/pkg/core"
)

// queryFlags are the filter and sort flags shared by list, export and browse.
type queryFlags struct {
	search     string
	types      []string
	regions    []string
	grapes     []string
	minRating  float64
	buyYes     bool
	buyNo      bool
	vintageMin int
	vintageMax int
	sortBy     string
	dir        string
}

func (f *queryFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.search, "search", "s", "", "Free-text search over all fields")
	fl.StringSliceVar(&f.types, "type", nil, "Keep these wine types (repeatable)")
	fl.StringSliceVar(&f.regions, "region", nil, "Keep these regions (repeatable)")
	fl.StringSliceVar(&f.grapes, "grape", nil, "Keep these grapes (repeatable)")
	fl.Float64Var(&f.minRating, "min-rating", 0, "Minimum rating, 0 for any")
	fl.BoolVar(&f.buyYes, "buy-yes", false, "Only wines I would buy again")
	fl.BoolVar(&f.buyNo, "buy-no", false, "Only wines I would not buy again")
	fl.IntVar(&f.vintageMin, "vintage-min", 0, "Oldest vintage, 0 for open")
	fl.IntVar(&f.vintageMax, "vintage-max", 0, "Newest vintage, 0 for open")
	fl.StringVar(&f.sortBy, "sort", "", "Sort field: name, vintage, type, grape, price, region, rating, buy")
	fl.StringVar(&f.dir, "dir", "asc", "Sort direction: asc or desc")
}

func (f *queryFlags) query() (core.Query, error) {
	field, err := core.ParseSortField(f.sortBy)
	if err != nil {
		return core.Query{}, err
	}
	dir, err := core.ParseDirection(f.dir)
	if err != nil {
		return core.Query{}, err
	}
	return core.Query{
		Filter: core.FilterState{
			Search:     f.search,
			Types:      f.types,
			Regions:    f.regions,
			Grapes:     f.grapes,
			MinRating:  f.minRating,
			Buy:        core.BuyFromToggles(f.buyYes, f.buyNo),
			VintageMin: f.vintageMin,
			VintageMax: f.vintageMax,
		},
		SortBy:    field,
		Direction: dir,
	}, nil
}
