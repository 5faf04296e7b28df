package service

import (
	"strings"
	"time"

	"github.com/saadjs/fitlife-cli/internal/model"
)

const WeekDays = 7

// DayTotals holds one slot's sums. Day is the weekday label of the first
// record logged for the slot, or the computed name when none carries one.
type DayTotals struct {
	Date     time.Time
	Day      string
	Calories int
	Steps    int
	Liters   float64
}

// WeeklyTotals is a fixed seven-slot window; slot i is Start plus i days.
type WeeklyTotals struct {
	Start time.Time
	Days  [WeekDays]DayTotals
}

// Aggregate sums every record dated within [start, start+6] into its slot.
// Records outside the window are ignored.
func Aggregate(set RecordSet, start time.Time) WeeklyTotals {
	start = model.Day(start)
	w := WeeklyTotals{Start: start}
	for i := range w.Days {
		w.Days[i].Date = start.AddDate(0, 0, i)
	}

	for _, r := range set.Meals {
		if i, ok := w.slot(r.Date); ok {
			w.Days[i].Calories += r.Meal.Calories
			w.label(i, r)
		}
	}
	for _, r := range set.Steps {
		if i, ok := w.slot(r.Date); ok {
			w.Days[i].Steps += r.Steps
			w.label(i, r)
		}
	}
	for _, r := range set.Water {
		if i, ok := w.slot(r.Date); ok {
			w.Days[i].Liters += r.Liters
			w.label(i, r)
		}
	}
	for i := range w.Days {
		if w.Days[i].Day == "" {
			w.Days[i].Day = model.DayName(w.Days[i].Date)
		}
	}
	return w
}

func (w *WeeklyTotals) label(i int, r model.Record) {
	if w.Days[i].Day == "" {
		w.Days[i].Day = strings.TrimSpace(r.Day)
	}
}

func (w WeeklyTotals) slot(date time.Time) (int, bool) {
	i := model.DaysBetween(w.Start, date)
	return i, i >= 0 && i < WeekDays
}

func (w WeeklyTotals) End() time.Time {
	return w.Start.AddDate(0, 0, WeekDays-1)
}

func (w WeeklyTotals) TotalCalories() int {
	total := 0
	for _, d := range w.Days {
		total += d.Calories
	}
	return total
}

func (w WeeklyTotals) TotalSteps() int {
	total := 0
	for _, d := range w.Days {
		total += d.Steps
	}
	return total
}

func (w WeeklyTotals) TotalLiters() float64 {
	total := 0.0
	for _, d := range w.Days {
		total += d.Liters
	}
	return total
}

// Averages divide by the full week; days with nothing logged count as zero.

func (w WeeklyTotals) AverageCalories() float64 {
	return float64(w.TotalCalories()) / WeekDays
}

func (w WeeklyTotals) AverageSteps() float64 {
	return float64(w.TotalSteps()) / WeekDays
}

func (w WeeklyTotals) AverageLiters() float64 {
	return w.TotalLiters() / WeekDays
}
