// Package importer reads workout entries in bulk from JSON or YAML files.
package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/harunkazanli9/beontrack/internal/workout"
)

// ErrNoFiles is returned when a pattern matches nothing
var ErrNoFiles = errors.New("no files match pattern")

// dateLayouts are tried in order when parsing an entry date
var dateLayouts = []string{
	time.RFC3339,
	time.DateTime,
	time.DateOnly,
}

// record is an entry as written by hand in an import file. Dates are kept as
// strings so both "2026-10-01" and full timestamps are accepted.
type record struct {
	ID              string `json:"id" yaml:"id"`
	Date            string `json:"date" yaml:"date"`
	Type            string `json:"type" yaml:"type"`
	DurationMinutes int    `json:"durationMinutes" yaml:"durationMinutes"`
	Notes           string `json:"notes" yaml:"notes"`
}

// document is the snapshot shaped variant: {"workouts": [...]}
type document struct {
	Workouts []record `json:"workouts" yaml:"workouts"`
}

// Result is the outcome of an import
type Result struct {
	Files      []string
	Entries    []workout.Entry
	Duplicates int
	Invalid    int
}

// Importer resolves glob patterns and parses the matched files
type Importer struct {
	workDir string
	seen    map[string]struct{}
}

// New creates an importer resolving relative patterns against workDir.
// Entries whose id is already in existing are skipped.
func New(workDir string, existing []workout.Entry) *Importer {
	seen := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		if e.ID != "" {
			seen[e.ID] = struct{}{}
		}
	}
	return &Importer{workDir: workDir, seen: seen}
}

// Import reads every file matching pattern. Files are read in lexical order
// and entries keep their order within a file. A bad file or entry does not
// stop the import: the returned error combines every problem while Result
// still carries all valid entries.
func (i *Importer) Import(pattern string) (Result, error) {
	files, err := i.resolve(pattern)
	if err != nil {
		return Result{}, err
	}

	res := Result{Files: files}
	var errs error
	for _, file := range files {
		records, err := readFile(file)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", file, err))
			continue
		}

		for n, r := range records {
			e, err := r.entry()
			if err == nil {
				err = workout.Validate(e)
			}
			if err != nil {
				res.Invalid++
				errs = multierr.Append(errs, fmt.Errorf("%s: entry %d: %w", file, n+1, err))
				continue
			}
			if e.ID != "" {
				if _, dup := i.seen[e.ID]; dup {
					res.Duplicates++
					continue
				}
				i.seen[e.ID] = struct{}{}
			}
			res.Entries = append(res.Entries, e)
		}
	}

	return res, errs
}

func (i *Importer) resolve(pattern string) ([]string, error) {
	fullPattern := pattern
	if !filepath.IsAbs(pattern) {
		fullPattern = filepath.Join(i.workDir, pattern)
	}

	matches, err := doublestar.FilepathGlob(fullPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	var files []string
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, match)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFiles, pattern)
	}

	slices.Sort(files)
	return files, nil
}

func readFile(path string) ([]record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return parseJSON(data)
	case ".yaml", ".yml":
		return parseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported file type %q", filepath.Ext(path))
	}
}

func parseJSON(data []byte) ([]record, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var records []record
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		return records, nil
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return doc.Workouts, nil
}

func parseYAML(data []byte) ([]record, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		var records []record
		if err := root.Decode(&records); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		return records, nil
	}

	var doc document
	if err := root.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return doc.Workouts, nil
}

func (r record) entry() (workout.Entry, error) {
	e := workout.Entry{
		ID:              r.ID,
		Type:            strings.TrimSpace(r.Type),
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
	}
	if r.Date == "" {
		return e, nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, r.Date, time.Local); err == nil {
			e.Date = t
			return e, nil
		}
	}
	return e, workout.ValidationError{Field: "date", Message: fmt.Sprintf("unrecognized date %q", r.Date)}
}
