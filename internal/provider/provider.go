// Package provider implements the Data Provider backing the data-driven
// tools: named CSV board datasets and named text documents read from the
// local filesystem.
//
// Absence and failure are kept apart deliberately. A missing file is not an
// error: lookups return found=false and callers surface a human-readable
// message as a successful result. A returned error means the file exists
// but could not be read or parsed, and the dispatcher reports it as an
// internal error.
package provider

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	internalerrors "monday-boards-mcp/internal/errors"
)

// DataProvider supplies tabular and document content backing certain tools.
type DataProvider interface {
	// ReadNamedDataset reads the dataset with the given identifier and
	// returns its rows serialized as a JSON array of row objects.
	ReadNamedDataset(id string) (text string, found bool, err error)

	// ReadNamedDocument reads the document with the given identifier and
	// returns its text.
	ReadNamedDocument(id string) (text string, found bool, err error)

	// ListDatasets enumerates the identifiers of all readable-looking
	// datasets, sorted by name.
	ListDatasets() ([]string, error)
}

// FileProvider implements DataProvider over two directories: one holding
// board exports as <id>.csv, one holding documents as <id>.txt or <id>.md.
type FileProvider struct {
	boardsDir string
	docsDir   string
	log       *logrus.Entry
}

// NewFileProvider creates a provider rooted at the given directories.
// The directories are not required to exist; reads from a missing directory
// report absence, matching the missing-file behavior.
func NewFileProvider(boardsDir, docsDir string) *FileProvider {
	return &FileProvider{
		boardsDir: boardsDir,
		docsDir:   docsDir,
		log:       logrus.WithField("component", "provider"),
	}
}

// ReadNamedDataset reads <boardsDir>/<id>.csv and serializes its records.
func (p *FileProvider) ReadNamedDataset(id string) (string, bool, error) {
	if !validIdentifier(id) {
		return "", false, nil
	}

	path := filepath.Join(p.boardsDir, id+".csv")
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			p.log.WithField("dataset", id).Debug("dataset not found")
			return "", false, nil
		}
		return "", false, internalerrors.New("provider", "ReadNamedDataset", internalerrors.ErrInternal, err).
			WithContext("dataset", id)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return "", false, internalerrors.New("provider", "ReadNamedDataset", internalerrors.ErrInternal, err).
			WithContext("dataset", id)
	}
	if len(records) == 0 {
		return "", false, internalerrors.New("provider", "ReadNamedDataset", internalerrors.ErrInternal,
			fmt.Errorf("dataset %s has no header row", id))
	}

	text, err := recordsToJSON(records)
	if err != nil {
		return "", false, internalerrors.New("provider", "ReadNamedDataset", internalerrors.ErrInternal, err).
			WithContext("dataset", id)
	}

	p.log.WithFields(logrus.Fields{"dataset": id, "rows": len(records) - 1}).Debug("dataset read")
	return text, true, nil
}

// ReadNamedDocument reads <docsDir>/<id>.txt, falling back to <id>.md.
func (p *FileProvider) ReadNamedDocument(id string) (string, bool, error) {
	if !validIdentifier(id) {
		return "", false, nil
	}

	for _, ext := range []string{".txt", ".md"} {
		path := filepath.Join(p.docsDir, id+ext)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", false, internalerrors.New("provider", "ReadNamedDocument", internalerrors.ErrInternal, err).
				WithContext("document", id)
		}
		return string(data), true, nil
	}

	p.log.WithField("document", id).Debug("document not found")
	return "", false, nil
}

// ListDatasets enumerates the *.csv files in the boards directory.
// A missing directory is an empty listing, not an error.
func (p *FileProvider) ListDatasets() ([]string, error) {
	entries, err := os.ReadDir(p.boardsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, internalerrors.New("provider", "ListDatasets", internalerrors.ErrInternal, err).
			WithContext("dir", p.boardsDir)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".csv") {
			names = append(names, strings.TrimSuffix(name, ".csv"))
		}
	}
	sort.Strings(names)
	return names, nil
}

// recordsToJSON maps CSV records (header row first) to a JSON array of
// objects keyed by column name. Short rows leave trailing columns empty;
// extra cells beyond the header are dropped.
func recordsToJSON(records [][]string) (string, error) {
	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, column := range header {
			if i < len(record) {
				row[column] = record[i]
			} else {
				row[column] = ""
			}
		}
		rows = append(rows, row)
	}

	data, err := json.Marshal(rows)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// validIdentifier rejects identifiers that would escape the data
// directories. Anything path-like is treated as absent.
func validIdentifier(id string) bool {
	return id != "" && id == filepath.Base(id) && id != "." && id != ".."
}
