package feed

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/cellar/pkg/core"
)

// FileSource reads the collection from local CSV files.
// Pattern is a path or a doublestar glob ("exports/**/*.csv"); matching files
// are read in sorted path order and their rows concatenated.
type FileSource struct {
	Pattern string
	Logger  *slog.Logger
}

// Files resolves Pattern to the files it currently names.
func (s *FileSource) Files() ([]string, error) {
	matches, err := doublestar.FilepathGlob(s.Pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("invalid feed pattern %q: %w", s.Pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no feed files match %q", s.Pattern)
	}
	slices.Sort(matches)
	return matches, nil
}

// Fetch reads every matching file.
func (s *FileSource) Fetch(ctx context.Context) ([]core.Row, error) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	files, err := s.Files()
	if err != nil {
		return nil, err
	}

	var rows []core.Row
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		part, err := readFile(name)
		if err != nil {
			return nil, err
		}
		logger.Debug("feed file read", "path", name, "rows", len(part))
		rows = append(rows, part...)
	}
	return rows, nil
}

func readFile(name string) ([]core.Row, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	rows, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return rows, nil
}

// ComponentType implements introspection.Component.
func (s *FileSource) ComponentType() string {
	return "file"
}
