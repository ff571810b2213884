package provider

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestProvider builds a FileProvider over fresh temp directories and
// returns the provider with its directories for fixture setup.
func newTestProvider(t *testing.T) (*FileProvider, string, string) {
	t.Helper()

	boardsDir := t.TempDir()
	docsDir := t.TempDir()
	return NewFileProvider(boardsDir, docsDir), boardsDir, docsDir
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}
}

func TestFileProvider_ReadNamedDataset(t *testing.T) {
	t.Parallel()

	t.Run("dataset found", func(t *testing.T) {
		t.Parallel()

		p, boardsDir, _ := newTestProvider(t)
		writeFile(t, boardsDir, "SMMSMasterList.csv", "Name,Status\nAlice,Active\nBob,Pending\n")

		text, found, err := p.ReadNamedDataset("SMMSMasterList")
		require.NoError(t, err)
		require.True(t, found)

		var rows []map[string]string
		require.NoError(t, json.Unmarshal([]byte(text), &rows))
		require.Len(t, rows, 2)
		assert.Equal(t, "Alice", rows[0]["Name"])
		assert.Equal(t, "Active", rows[0]["Status"])
		assert.Equal(t, "Bob", rows[1]["Name"])
	})

	t.Run("dataset absent", func(t *testing.T) {
		t.Parallel()

		p, _, _ := newTestProvider(t)

		text, found, err := p.ReadNamedDataset("nonexistent")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, text)
	})

	t.Run("path-like identifier treated as absent", func(t *testing.T) {
		t.Parallel()

		p, boardsDir, _ := newTestProvider(t)
		writeFile(t, boardsDir, "secret.csv", "a\n1\n")

		for _, id := range []string{"", ".", "..", "../secret", "sub/secret"} {
			_, found, err := p.ReadNamedDataset(id)
			require.NoError(t, err, "id %q", id)
			assert.False(t, found, "id %q should be treated as absent", id)
		}
	})

	t.Run("empty file is an error", func(t *testing.T) {
		t.Parallel()

		p, boardsDir, _ := newTestProvider(t)
		writeFile(t, boardsDir, "empty.csv", "")

		_, _, err := p.ReadNamedDataset("empty")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no header row")
	})

	t.Run("malformed csv is an error", func(t *testing.T) {
		t.Parallel()

		p, boardsDir, _ := newTestProvider(t)
		writeFile(t, boardsDir, "broken.csv", "a,b\n\"unclosed,1\n")

		_, _, err := p.ReadNamedDataset("broken")
		require.Error(t, err)
	})

	t.Run("short rows padded with empty strings", func(t *testing.T) {
		t.Parallel()

		p, boardsDir, _ := newTestProvider(t)
		writeFile(t, boardsDir, "ragged.csv", "a,b,c\n1\n")

		text, found, err := p.ReadNamedDataset("ragged")
		require.NoError(t, err)
		require.True(t, found)

		var rows []map[string]string
		require.NoError(t, json.Unmarshal([]byte(text), &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "1", rows[0]["a"])
		assert.Equal(t, "", rows[0]["b"])
		assert.Equal(t, "", rows[0]["c"])
	})

	t.Run("header only yields empty array", func(t *testing.T) {
		t.Parallel()

		p, boardsDir, _ := newTestProvider(t)
		writeFile(t, boardsDir, "headeronly.csv", "a,b\n")

		text, found, err := p.ReadNamedDataset("headeronly")
		require.NoError(t, err)
		require.True(t, found)
		assert.JSONEq(t, `[]`, text)
	})
}

func TestFileProvider_ReadNamedDocument(t *testing.T) {
	t.Parallel()

	t.Run("txt document", func(t *testing.T) {
		t.Parallel()

		p, _, docsDir := newTestProvider(t)
		writeFile(t, docsDir, "welcome.txt", "hello from txt")

		text, found, err := p.ReadNamedDocument("welcome")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "hello from txt", text)
	})

	t.Run("md fallback", func(t *testing.T) {
		t.Parallel()

		p, _, docsDir := newTestProvider(t)
		writeFile(t, docsDir, "notes.md", "# notes")

		text, found, err := p.ReadNamedDocument("notes")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "# notes", text)
	})

	t.Run("txt preferred over md", func(t *testing.T) {
		t.Parallel()

		p, _, docsDir := newTestProvider(t)
		writeFile(t, docsDir, "both.txt", "txt wins")
		writeFile(t, docsDir, "both.md", "md loses")

		text, found, err := p.ReadNamedDocument("both")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "txt wins", text)
	})

	t.Run("document absent", func(t *testing.T) {
		t.Parallel()

		p, _, _ := newTestProvider(t)

		_, found, err := p.ReadNamedDocument("missing")
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestFileProvider_ListDatasets(t *testing.T) {
	t.Parallel()

	t.Run("sorted names, csv only", func(t *testing.T) {
		t.Parallel()

		p, boardsDir, _ := newTestProvider(t)
		writeFile(t, boardsDir, "webinarAttendees.csv", "a\n")
		writeFile(t, boardsDir, "SMMSMasterList.csv", "a\n")
		writeFile(t, boardsDir, "notes.txt", "not a dataset")

		names, err := p.ListDatasets()
		require.NoError(t, err)
		assert.Equal(t, []string{"SMMSMasterList", "webinarAttendees"}, names)
	})

	t.Run("missing directory is empty listing", func(t *testing.T) {
		t.Parallel()

		p := NewFileProvider(filepath.Join(t.TempDir(), "does-not-exist"), t.TempDir())

		names, err := p.ListDatasets()
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("subdirectories skipped", func(t *testing.T) {
		t.Parallel()

		p, boardsDir, _ := newTestProvider(t)
		require.NoError(t, os.Mkdir(filepath.Join(boardsDir, "archive.csv"), 0o755))
		writeFile(t, boardsDir, "real.csv", "a\n")

		names, err := p.ListDatasets()
		require.NoError(t, err)
		assert.Equal(t, []string{"real"}, names)
	})
}
