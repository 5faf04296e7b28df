package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/saadjs/fitlife-cli/internal/model"
)

const (
	DashboardMealLimit  = 5
	RecentActivityLimit = 2
)

// Dashboard is the one-day view shown by `today`.
type Dashboard struct {
	Date        time.Time
	Meals       []model.Record
	MealCount   int
	Calories    int
	Steps       []model.Record
	TotalSteps  int
	Water       []model.Record
	TotalLiters float64
	RecentMeals []model.Record
	RecentSteps []model.Record
}

func BuildDashboard(set RecordSet, date time.Time) Dashboard {
	date = model.Day(date)
	day := set.Between(date, date)

	d := Dashboard{
		Date:        date,
		MealCount:   len(day.Meals),
		Steps:       day.Steps,
		Water:       day.Water,
		RecentMeals: tail(set.Meals, RecentActivityLimit),
		RecentSteps: tail(set.Steps, RecentActivityLimit),
	}
	d.Meals = day.Meals
	if len(d.Meals) > DashboardMealLimit {
		d.Meals = d.Meals[:DashboardMealLimit]
	}
	for _, r := range day.Meals {
		d.Calories += r.Meal.Calories
	}
	for _, r := range day.Steps {
		d.TotalSteps += r.Steps
	}
	for _, r := range day.Water {
		d.TotalLiters += r.Liters
	}
	return d
}

func tail(records []model.Record, n int) []model.Record {
	if len(records) <= n {
		return records
	}
	return records[len(records)-n:]
}

func FormatDashboard(d Dashboard) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("%s, %s", model.DayName(d.Date), model.FormatDate(d.Date)), "")

	lines = append(lines, "Meals Today")
	if d.MealCount == 0 {
		lines = append(lines, "No meals logged yet.", "Tip: Log a meal to start tracking!")
	} else {
		for _, r := range d.Meals {
			lines = append(lines, "  "+describeMeal(r))
		}
		if more := d.MealCount - len(d.Meals); more > 0 {
			lines = append(lines, fmt.Sprintf("  ... and %d more", more))
		}
		lines = append(lines, fmt.Sprintf("Total: %d kcal", d.Calories))
	}

	lines = append(lines, "", "Steps Today")
	if len(d.Steps) == 0 {
		lines = append(lines, "No steps logged yet.", fmt.Sprintf("Daily goal: %.0f steps", StepsTarget))
	} else {
		lines = append(lines, fmt.Sprintf("Total: %d steps", d.TotalSteps))
	}

	lines = append(lines, "", "Water Today")
	if len(d.Water) == 0 {
		lines = append(lines, "No water logged yet.", fmt.Sprintf("Daily goal: %.1f L", WaterTargetLiters))
	} else {
		lines = append(lines, fmt.Sprintf("Total: %.2f L", d.TotalLiters))
	}

	lines = append(lines, "", "Recent Activity")
	if len(d.RecentMeals) == 0 && len(d.RecentSteps) == 0 {
		lines = append(lines, "No recent activity")
	}
	if len(d.RecentMeals) > 0 {
		lines = append(lines, "Recent meals:")
		for _, r := range d.RecentMeals {
			lines = append(lines, fmt.Sprintf("  * %s %s", model.FormatDate(r.Date), describeMeal(r)))
		}
	}
	if len(d.RecentSteps) > 0 {
		lines = append(lines, "Recent steps:")
		for _, r := range d.RecentSteps {
			lines = append(lines, fmt.Sprintf("  * %s %d steps", model.FormatDate(r.Date), r.Steps))
		}
	}
	return strings.Join(lines, "\n")
}

func describeMeal(r model.Record) string {
	s := fmt.Sprintf("%s %dg, %d kcal", r.Meal.Food, int(math.Round(r.Meal.Grams)), r.Meal.Calories)
	if r.Meal.Category != "" {
		s += " (" + r.Meal.Category + ")"
	}
	return s
}
