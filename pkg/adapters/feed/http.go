package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/cellar/pkg/core"
)

// ErrUnsupportedStatus is returned when the feed answers with a non-2xx status.
var ErrUnsupportedStatus = errors.New("unexpected status")

// maxFeedBytes bounds how much of a response is read.
const maxFeedBytes = 32 << 20

// HTTPSource fetches the published sheet over HTTP(S).
type HTTPSource struct {
	URL    string
	Client *http.Client
	Logger *slog.Logger
}

// Fetch issues one GET and parses the body. There is no retry.
func (s *HTTPSource) Fetch(ctx context.Context) ([]core.Row, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "text/csv")

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w %d from %s", ErrUnsupportedStatus, resp.StatusCode, s.URL)
	}

	rows, err := ParseCSV(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, err
	}
	logger.Debug("feed fetched", "url", s.URL, "rows", len(rows), "elapsed", time.Since(start))
	return rows, nil
}

// ComponentType implements introspection.Component.
func (s *HTTPSource) ComponentType() string {
	return "http"
}
