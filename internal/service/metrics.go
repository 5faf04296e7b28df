package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/saadjs/fitlife-cli/internal/model"
	"github.com/saadjs/fitlife-cli/internal/store"
)

const (
	TopFoodsLimit         = 5
	UncategorizedCategory = "uncategorized"
)

type CategoryCalories struct {
	Category string `json:"category"`
	Calories int    `json:"calories"`
	Meals    int    `json:"meals"`
}

// Snapshot is the result of one range query. It has no identity of its own
// and is never stored.
type Snapshot struct {
	Start      time.Time `json:"-"`
	End        time.Time `json:"-"`
	StartDate  string    `json:"analysis_start_date"`
	EndDate    string    `json:"analysis_end_date"`
	PeriodDays int       `json:"analysis_period_days"`

	TotalCalories        int                `json:"total_calories_logged"`
	TotalMeals           int                `json:"total_meals_logged"`
	AverageDailyCalories float64            `json:"average_daily_calories"`
	TopFoods             []string           `json:"top_foods"`
	CaloriesByCategory   []CategoryCalories `json:"calories_by_category"`

	TotalSteps        int     `json:"total_steps_logged"`
	StepDays          int     `json:"step_days_logged"`
	AverageDailySteps float64 `json:"average_daily_steps"`
	MinDailySteps     int     `json:"min_daily_steps"`
	MaxDailySteps     int     `json:"max_daily_steps"`

	TotalLiters        float64 `json:"total_water_logged_liters"`
	WaterDays          int     `json:"water_days_logged"`
	AverageDailyLiters float64 `json:"average_daily_water_liters"`
	MinDailyLiters     float64 `json:"min_daily_water_liters"`
	MaxDailyLiters     float64 `json:"max_daily_water_liters"`
}

// LastDays returns the inclusive n-day range ending on end.
func LastDays(end time.Time, n int) (time.Time, time.Time) {
	end = model.Day(end)
	if n < 1 {
		n = 1
	}
	return end.AddDate(0, 0, -(n - 1)), end
}

// Extract computes range statistics over [start, end]. Calories average over
// every day in the range; steps and water average over the days that have at
// least one entry.
func Extract(set RecordSet, start, end time.Time) (Snapshot, error) {
	start, end = model.Day(start), model.Day(end)
	if end.Before(start) {
		return Snapshot{}, fmt.Errorf("end date %s is before start date %s", model.FormatDate(end), model.FormatDate(start))
	}
	in := set.Between(start, end)

	snap := Snapshot{
		Start:      start,
		End:        end,
		StartDate:  model.FormatDate(start),
		EndDate:    model.FormatDate(end),
		PeriodDays: model.DaysBetween(start, end) + 1,
		TopFoods:   []string{},
	}

	snap.extractMeals(in.Meals)

	steps := newDayBuckets()
	for _, r := range in.Steps {
		steps.add(r.Date, float64(r.Steps))
	}
	snap.StepDays = steps.days()
	if snap.StepDays > 0 {
		lo, hi := steps.bounds()
		snap.TotalSteps = int(steps.total)
		snap.AverageDailySteps = steps.total / float64(snap.StepDays)
		snap.MinDailySteps = int(lo)
		snap.MaxDailySteps = int(hi)
	}

	water := newDayBuckets()
	for _, r := range in.Water {
		water.add(r.Date, r.Liters)
	}
	snap.WaterDays = water.days()
	if snap.WaterDays > 0 {
		snap.TotalLiters = water.total
		snap.AverageDailyLiters = water.total / float64(snap.WaterDays)
		snap.MinDailyLiters, snap.MaxDailyLiters = water.bounds()
	}
	return snap, nil
}

func (s *Snapshot) extractMeals(meals []model.Record) {
	foods := newRanking()
	categories := newRanking()
	categoryMeals := map[string]int{}
	for _, r := range meals {
		s.TotalCalories += r.Meal.Calories
		s.TotalMeals++
		foods.add(store.NormalizeFood(r.Meal.Food), 1)

		category := strings.ToLower(strings.TrimSpace(r.Meal.Category))
		if category == "" {
			category = UncategorizedCategory
		}
		categories.add(category, r.Meal.Calories)
		categoryMeals[category]++
	}
	if s.TotalMeals > 0 {
		s.AverageDailyCalories = float64(s.TotalCalories) / float64(s.PeriodDays)
	}

	for _, e := range foods.top(TopFoodsLimit) {
		s.TopFoods = append(s.TopFoods, e.key)
	}
	s.CaloriesByCategory = make([]CategoryCalories, 0, len(categories.order))
	for _, e := range categories.top(0) {
		s.CaloriesByCategory = append(s.CaloriesByCategory, CategoryCalories{
			Category: e.key,
			Calories: e.value,
			Meals:    categoryMeals[e.key],
		})
	}
}

type rankEntry struct {
	key   string
	value int
}

// ranking accumulates per-key values and remembers first-seen order, which
// breaks ties when ranking.
type ranking struct {
	index map[string]int
	order []rankEntry
}

func newRanking() *ranking {
	return &ranking{index: map[string]int{}}
}

func (r *ranking) add(key string, value int) {
	i, ok := r.index[key]
	if !ok {
		i = len(r.order)
		r.index[key] = i
		r.order = append(r.order, rankEntry{key: key})
	}
	r.order[i].value += value
}

// top returns up to n entries by value descending; n <= 0 returns all.
func (r *ranking) top(n int) []rankEntry {
	out := make([]rankEntry, len(r.order))
	copy(out, r.order)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].value > out[j].value
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

type dayBuckets struct {
	byDay map[time.Time]float64
	total float64
}

func newDayBuckets() *dayBuckets {
	return &dayBuckets{byDay: map[time.Time]float64{}}
}

func (b *dayBuckets) add(date time.Time, v float64) {
	b.byDay[model.Day(date)] += v
	b.total += v
}

func (b *dayBuckets) days() int {
	return len(b.byDay)
}

func (b *dayBuckets) bounds() (float64, float64) {
	first := true
	var lo, hi float64
	for _, v := range b.byDay {
		if first || v < lo {
			lo = v
		}
		if first || v > hi {
			hi = v
		}
		first = false
	}
	return lo, hi
}
