package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/saadjs/fitlife-cli/internal/model"
)

const (
	MealsFile = "meals.txt"
	StepsFile = "steps.txt"
	WaterFile = "water.txt"
	FoodsFile = "foods.txt"
)

// Store is a directory of append-only, one-line-per-record text files.
type Store struct {
	dir string
}

// LoadResult separates "nothing logged yet" from "could not read" even though
// callers usually treat both as an empty log.
type LoadResult struct {
	Kind    model.Kind
	Path    string
	Records []model.Record
	Skipped int
	Missing bool
	Err     error
}

func Open(dir string) (*Store, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, fmt.Errorf("data directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) Path(kind model.Kind) string {
	switch kind {
	case model.KindMeal:
		return filepath.Join(s.dir, MealsFile)
	case model.KindSteps:
		return filepath.Join(s.dir, StepsFile)
	case model.KindWater:
		return filepath.Join(s.dir, WaterFile)
	}
	return ""
}

func (s *Store) FoodsPath() string {
	return filepath.Join(s.dir, FoodsFile)
}

func (s *Store) Append(rec model.Record) error {
	path := s.Path(rec.Kind)
	if path == "" {
		return fmt.Errorf("unknown record kind %q", rec.Kind)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s log: %w", rec.Kind, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString(FormatLine(rec) + "\n"); err != nil {
		return fmt.Errorf("append %s record: %w", rec.Kind, err)
	}
	return nil
}

// Load reads every decodable record of one kind in file order. It never
// returns an error directly; failures land in LoadResult.Err with no records.
func (s *Store) Load(kind model.Kind) LoadResult {
	out := LoadResult{Kind: kind, Path: s.Path(kind)}
	if out.Path == "" {
		out.Err = fmt.Errorf("unknown record kind %q", kind)
		return out
	}

	var records []model.Record
	skipped, err := scanLines(out.Path, func(line string) bool {
		rec, err := ParseLine(kind, line)
		if err != nil {
			return false
		}
		records = append(records, rec)
		return true
	})
	switch {
	case errors.Is(err, fs.ErrNotExist):
		out.Missing = true
	case err != nil:
		out.Err = err
	default:
		out.Records = records
		out.Skipped = skipped
	}
	return out
}

// MaxLineBytes bounds a single log line. Longer lines are counted as skipped
// without being decoded.
const MaxLineBytes = 64 * 1024

// scanLines feeds each non-blank line to accept and counts the rejected ones.
func scanLines(path string, accept func(string) bool) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()

	rejected := 0
	r := bufio.NewReader(f)
	for {
		raw, readErr := r.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return 0, fmt.Errorf("read %s: %w", filepath.Base(path), readErr)
		}
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
		case len(line) > MaxLineBytes:
			rejected++
		case !accept(line):
			rejected++
		}
		if readErr != nil {
			return rejected, nil
		}
	}
}
