package feed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/cellar/pkg/core"
)

const bom = "\ufeff"

// ParseCSV reads a CSV document with a header row into raw rows.
//
// Rows may be ragged: missing trailing cells are left out of the row and
// extra cells beyond the header are dropped. A row of empty cells such as
// ",," is kept; only truly empty lines are skipped. Header names are kept as
// written; trimming is the normalizer's job.
func ParseCSV(r io.Reader) ([]core.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], bom)
	}

	var rows []core.Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		row := make(core.Row, len(headers))
		for i, h := range headers {
			if i >= len(record) {
				break
			}
			row[h] = record[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}
