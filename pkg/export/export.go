// Package export serializes a catalog view to CSV.
//
// The format is fixed: a ten-column header and one line per wine, every
// field wrapped in double quotes with embedded quotes doubled, lines joined
// by "\n" without a trailing newline.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/natefinch/atomic"

	"github.com/aretw0/cellar/pkg/core"
)

// ErrNothingToExport is returned for an empty wine set.
var ErrNothingToExport = errors.New("no wines to export")

// Header is the exported column row.
var Header = []string{
	"Wine Name", "Vintage", "Type", "Grape", "Region",
	"Rating", "Buy Again", "Tasting Notes", "Pairing", "Personal Notes",
}

// NoteLookup returns the personal note for a wine name, or "".
// *core.Notes satisfies it.
type NoteLookup interface {
	Lookup(name string) string
}

// Write serializes wines to w. notes may be nil.
func Write(w io.Writer, wines []core.Wine, notes NoteLookup) error {
	if len(wines) == 0 {
		return ErrNothingToExport
	}

	lines := make([]string, 0, len(wines)+1)
	lines = append(lines, line(Header))
	for _, wine := range wines {
		note := ""
		if notes != nil {
			note = notes.Lookup(wine.Name)
		}
		lines = append(lines, line([]string{
			wine.Name, wine.Vintage, wine.Type, wine.Grape, wine.Region,
			wine.Rating, wine.Buy, wine.Taste, wine.Pairing, note,
		}))
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}

func line(cells []string) string {
	quoted := make([]string, len(cells))
	for i, c := range cells {
		quoted[i] = `"` + strings.ReplaceAll(c, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

// FileName returns the download name for an export taken at t.
func FileName(t time.Time) string {
	return fmt.Sprintf("wine-collection-%s.csv", t.UTC().Format(time.DateOnly))
}

// ToFile writes the export atomically into dir and returns the file path.
func ToFile(dir string, t time.Time, wines []core.Wine, notes NoteLookup) (string, error) {
	var buf bytes.Buffer
	if err := Write(&buf, wines, notes); err != nil {
		return "", err
	}

	path := filepath.Join(dir, FileName(t))
	if err := atomic.WriteFile(path, &buf); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}
