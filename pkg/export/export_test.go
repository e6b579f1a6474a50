package export_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cellar/pkg/core"
	"github.com/aretw0/cellar/pkg/export"
)

type notes map[string]string

func (n notes) Lookup(name string) string { return n[name] }

func TestWrite(t *testing.T) {
	wines := []core.Wine{
		{Name: `The "Big" Red`, Vintage: "2018", Type: "Red", Taste: "Bold,\nlong"},
		{Name: "Plain"},
	}

	var b strings.Builder
	require.NoError(t, export.Write(&b, wines, notes{"Plain": "birthday"}))
	out := b.String()

	lines := strings.Split(out, "\n")
	// The embedded newline in the taste of the first wine adds one line.
	require.Len(t, lines, 4)
	assert.Equal(t, `"Wine Name","Vintage","Type","Grape","Region","Rating","Buy Again","Tasting Notes","Pairing","Personal Notes"`, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], `"The ""Big"" Red","2018","Red"`))
	assert.Equal(t, `"Plain","","","","","","","","","birthday"`, lines[3])
	assert.False(t, strings.HasSuffix(out, "\n"), "no trailing newline")
}

func TestWriteNilNotes(t *testing.T) {
	var b strings.Builder
	require.NoError(t, export.Write(&b, []core.Wine{{Name: "A"}}, nil))
	assert.Equal(t, 2, strings.Count(b.String(), "\n")+1)
}

func TestWriteEmpty(t *testing.T) {
	var b strings.Builder
	err := export.Write(&b, nil, nil)
	assert.True(t, errors.Is(err, export.ErrNothingToExport))
	assert.Empty(t, b.String())
}

func TestFileName(t *testing.T) {
	at := time.Date(2024, 3, 9, 23, 30, 0, 0, time.FixedZone("X", -5*3600))
	assert.Equal(t, "wine-collection-2024-03-10.csv", export.FileName(at))
}

func TestToFile(t *testing.T) {
	dir := t.TempDir()
	at := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)

	path, err := export.ToFile(dir, at, []core.Wine{{Name: "A"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "wine-collection-2024-01-02.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), `"Wine Name"`))

	_, err = export.ToFile(dir, at, nil, nil)
	assert.True(t, errors.Is(err, export.ErrNothingToExport))
}
