package core

import (
	"slices"
	"strings"
)

// Source column headers of the published sheet.
const (
	ColumnName    = "Wine Name"
	ColumnVintage = "Vintage (Year)"
	ColumnType    = "Wine Type"
	ColumnGrape   = "Grape Type (Riesling, Baco Noir, Etc.)"
	ColumnPrice   = "Price"
	ColumnRegion  = "Region"
	ColumnTaste   = "Taste Description"
	ColumnPairing = "Paring Notes"
	ColumnRating  = "What do you Rate the Wine?"
	ColumnBuy     = "Would you Buy this Again?"
	ColumnImage   = "Please enter a photo of the Label"
	ColumnExtra   = "Additional Information"
)

// Normalize maps raw rows into wines, one per row, in input order.
// No row is rejected.
func Normalize(rows []Row) []Wine {
	wines := make([]Wine, 0, len(rows))
	for _, row := range rows {
		wines = append(wines, NormalizeRow(row))
	}
	return wines
}

// NormalizeRow trims the header keys of row and extracts the known columns.
// Missing columns become "", unknown columns are dropped.
func NormalizeRow(row Row) Wine {
	clean := make(map[string]string, len(row))

	// Keys are visited in sorted order so that headers colliding after
	// trimming resolve the same way on every run.
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		clean[strings.TrimSpace(k)] = row[k]
	}

	return Wine{
		Name:    clean[ColumnName],
		Vintage: clean[ColumnVintage],
		Type:    clean[ColumnType],
		Grape:   clean[ColumnGrape],
		Price:   clean[ColumnPrice],
		Region:  clean[ColumnRegion],
		Taste:   clean[ColumnTaste],
		Pairing: clean[ColumnPairing],
		Rating:  clean[ColumnRating],
		Buy:     clean[ColumnBuy],
		Image:   clean[ColumnImage],
		Extra:   clean[ColumnExtra],
	}
}
