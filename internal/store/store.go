// Package store handles the on-disk side of the tool: listing and loading
// CSV files from the data directory, saving transformed datasets, and
// appending to the sort-performance log. The processing engine never does
// I/O; everything file-shaped lives here.
package store

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pygoscelis/penguin-cli/internal/dataset"
)

// LogFileName is the CSV file sort runs are appended to.
const LogFileName = "sorting_log.csv"

var logHeader = []string{
	"run_id", "date_of_run", "time_of_run", "number_of_rows",
	"sorting_algorithm", "execution_time_in_seconds",
}

// Store reads and writes CSV files under a single data directory.
type Store struct {
	dataDir string
}

// New creates a store rooted at dataDir, creating the directory if needed.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir data dir: %w", err)
	}
	return &Store{dataDir: dataDir}, nil
}

// DataDir returns the store's root directory.
func (s *Store) DataDir() string { return s.dataDir }

// Path resolves a filename inside the data directory.
func (s *Store) Path(filename string) string {
	return filepath.Join(s.dataDir, filename)
}

// ListCSV returns the CSV filenames in the data directory, sorted.
func (s *Store) ListCSV() ([]string, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("read data dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".csv") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// ResolveLoad redirects a request for the raw penguins file to the cleaned
// variant when one exists alongside it.
func (s *Store) ResolveLoad(filename string) string {
	if filename != "penguins.csv" {
		return filename
	}
	clean := "penguins_data.csv"
	if _, err := os.Stat(s.Path(clean)); err == nil {
		return clean
	}
	return filename
}

// Load reads a CSV file into a dataset, assigning record identities, and
// returns the header so callers can preserve column order on save.
func (s *Store) Load(filename string) (dataset.Dataset, []string, error) {
	f, err := os.Open(s.Path(filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("file %q not found in %s", filename, s.dataDir)
		}
		return nil, nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	var rows []map[string]string
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return dataset.New(rows), header, nil
}

// Save writes a dataset to a CSV file atomically (temp file + rename).
// columns fixes the header order; when nil, the first record's keys are
// used in sorted order.
func (s *Store) Save(filename string, columns []string, ds dataset.Dataset) error {
	if len(ds) == 0 {
		return nil
	}
	if columns == nil {
		columns = ds.Columns()
		sort.Strings(columns)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	row := make([]string, len(columns))
	for _, r := range ds {
		for i, col := range columns {
			row[i] = r.Get(col)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return atomicWrite(s.Path(filename), buf.Bytes())
}

// LogSort appends one sort run to the log file, creating it with a header
// on first use. Each run carries a UUID so log rows stay traceable after
// the file is sorted or filtered elsewhere.
func (s *Store) LogSort(rows int, algorithm string, elapsed time.Duration) error {
	path := s.Path(LogFileName)
	_, statErr := os.Stat(path)
	exists := statErr == nil

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open sort log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if !exists {
		if err := w.Write(logHeader); err != nil {
			return fmt.Errorf("write log header: %w", err)
		}
	}
	now := time.Now()
	entry := []string{
		uuid.NewString(),
		now.Format("2006-01-02"),
		now.Format("15:04:05"),
		fmt.Sprintf("%d", rows),
		algorithm,
		fmt.Sprintf("%.6f", elapsed.Seconds()),
	}
	if err := w.Write(entry); err != nil {
		return fmt.Errorf("write log entry: %w", err)
	}
	w.Flush()
	return w.Error()
}

// atomicWrite writes data to a temp file and renames it into place.
func atomicWrite(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("atomic rename: %w", err)
	}
	return nil
}
