// Package store persists analysis reports under a data directory, one
// subdirectory per analysis with JSON metadata and a CSV sample dump.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/funcscope/internal/analysis"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Entry is the persisted metadata of one analysis.
type Entry struct {
	ID        string           `json:"id"`
	Timestamp time.Time        `json:"timestamp"`
	Report    *analysis.Report `json:"report"`
}

// Save writes the report plus its sweep samples and returns the new entry
// ID.
func (s *Store) Save(report *analysis.Report, samples []analysis.SamplePoint) (string, error) {
	id := fmt.Sprintf("analysis_%d", time.Now().UnixNano())
	dir := filepath.Join(s.baseDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	entry := Entry{ID: id, Timestamp: time.Now(), Report: report}
	f, err := os.Create(filepath.Join(dir, "report.json"))
	if err != nil {
		return "", err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entry); err != nil {
		return "", err
	}

	if len(samples) == 0 {
		return id, nil
	}
	cf, err := os.Create(filepath.Join(dir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer cf.Close()
	w := csv.NewWriter(cf)
	defer w.Flush()
	if err := w.Write([]string{"x", "y"}); err != nil {
		return "", err
	}
	for _, pt := range samples {
		row := []string{
			strconv.FormatFloat(pt.X, 'f', 6, 64),
			strconv.FormatFloat(pt.Y, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	return id, nil
}

// List returns all saved entries, oldest first. Unreadable entries are
// skipped.
func (s *Store) List() ([]Entry, error) {
	dirs, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	for _, d := range dirs {
		if !d.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, d.Name(), "report.json"))
		if err != nil {
			continue
		}
		var e Entry
		if err := json.Unmarshal(data, &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})
	return entries, nil
}

// Get loads one entry by ID.
func (s *Store) Get(id string) (*Entry, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "report.json"))
	if err != nil {
		return nil, err
	}
	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
