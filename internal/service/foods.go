package service

import (
	"math"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/saadjs/fitlife-cli/internal/model"
	"github.com/saadjs/fitlife-cli/internal/store"
)

type FoodSaver interface {
	SaveFoods(rates []model.FoodRate) error
}

// FoodTable maps normalized food names to calories per gram. It is built once
// per process and passed to whatever logs meals; every learned rate rewrites
// the whole backing file.
type FoodTable struct {
	rates map[string]float64
	saver FoodSaver
}

// NewFoodTable seeds a table from rates. A nil saver keeps the table in memory.
func NewFoodTable(saver FoodSaver, rates []model.FoodRate) *FoodTable {
	t := &FoodTable{rates: make(map[string]float64, len(rates)), saver: saver}
	for _, r := range rates {
		name := store.NormalizeFood(r.Name)
		if name == "" || !(r.CaloriesPerGram > 0) {
			continue
		}
		t.rates[name] = r.CaloriesPerGram
	}
	return t
}

// LoadFoodTable reads the store's food file. Read problems leave an empty
// table rather than failing the command.
func LoadFoodTable(st *store.Store) *FoodTable {
	res := st.LoadFoods()
	switch {
	case res.Err != nil:
		log.Warn().Err(res.Err).Str("path", res.Path).Msg("Failed to load food table, starting empty")
	case res.Skipped > 0:
		log.Debug().Int("skipped", res.Skipped).Str("path", res.Path).Msg("Ignored malformed food table lines")
	}
	return NewFoodTable(st, res.Rates)
}

func (t *FoodTable) Lookup(name string) (float64, bool) {
	cpg, ok := t.rates[store.NormalizeFood(name)]
	return cpg, ok
}

// Record learns calories/grams for name and persists the table. It reports
// whether the observation was usable; a failed write is logged, not returned.
func (t *FoodTable) Record(name string, calories int, grams float64) bool {
	key := store.NormalizeFood(name)
	if key == "" || calories <= 0 || !(grams > 0) || math.IsInf(grams, 0) {
		return false
	}
	t.rates[key] = float64(calories) / grams
	if t.saver != nil {
		if err := t.saver.SaveFoods(t.Entries()); err != nil {
			log.Warn().Err(err).Str("food", key).Msg("Failed to persist food table")
		}
	}
	return true
}

// Infer returns round(cpg*grams) for a known food and 0 otherwise.
func (t *FoodTable) Infer(name string, grams float64) int {
	cpg, ok := t.Lookup(name)
	if !ok || !(grams > 0) {
		return 0
	}
	return int(math.Round(cpg * grams))
}

func (t *FoodTable) Len() int {
	return len(t.rates)
}

// Entries lists the table sorted by name.
func (t *FoodTable) Entries() []model.FoodRate {
	out := make([]model.FoodRate, 0, len(t.rates))
	for name, cpg := range t.rates {
		out = append(out, model.FoodRate{Name: name, CaloriesPerGram: cpg})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
