package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/saadjs/fitlife-cli/internal/model"
)

type FoodsResult struct {
	Path    string
	Rates   []model.FoodRate
	Skipped int
	Missing bool
	Err     error
}

// LoadFoods reads the calorie-per-gram table. Names are normalized on the way
// in; non-positive rates are rejected like any other malformed line.
func (s *Store) LoadFoods() FoodsResult {
	out := FoodsResult{Path: s.FoodsPath()}
	var rates []model.FoodRate
	skipped, err := scanLines(out.Path, func(line string) bool {
		parts := strings.Split(line, fieldSep)
		if len(parts) < 2 {
			return false
		}
		name := NormalizeFood(parts[0])
		cpg, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if name == "" || err != nil || !(cpg > 0) || cpg > maxRate {
			return false
		}
		rates = append(rates, model.FoodRate{Name: name, CaloriesPerGram: cpg})
		return true
	})
	switch {
	case errors.Is(err, fs.ErrNotExist):
		out.Missing = true
	case err != nil:
		out.Err = err
	default:
		out.Rates = rates
		out.Skipped = skipped
	}
	return out
}

// SaveFoods replaces the whole table file with rates, one per line.
func (s *Store) SaveFoods(rates []model.FoodRate) error {
	var b strings.Builder
	for _, r := range rates {
		b.WriteString(r.Name)
		b.WriteString(fieldSep)
		b.WriteString(strconv.FormatFloat(r.CaloriesPerGram, 'f', -1, 64))
		b.WriteByte('\n')
	}
	if err := os.WriteFile(s.FoodsPath(), []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write food table: %w", err)
	}
	return nil
}

func NormalizeFood(name string) string {
	return strings.TrimSpace(strings.ToLower(name))
}

// maxRate rejects +Inf and hand-edited outliers.
const maxRate = 1e6
