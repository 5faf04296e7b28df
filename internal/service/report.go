package service

import (
	"fmt"
	"strings"

	"github.com/saadjs/fitlife-cli/internal/model"
)

// Advisory thresholds, shared by every report.
const (
	StepsTarget       = 7500.0
	WaterTargetLiters = 4.0
	CalorieCeiling    = 2500.0
)

func CalorieAdvice(avg float64, period string) string {
	switch {
	case avg > CalorieCeiling:
		return "Note: Your average calories are quite high. Consider dietary adjustments."
	case avg > 0:
		return "Calorie intake looks reasonable."
	default:
		return fmt.Sprintf("No calorie data for %s.", period)
	}
}

func StepsAdvice(avg float64) string {
	if avg < StepsTarget {
		return "Steps: Move a bit more and be healthy."
	}
	return "Steps: Good job, keep it up!"
}

func WaterAdvice(avg float64) string {
	if avg < WaterTargetLiters {
		return fmt.Sprintf("Water: Try to drink more water daily (target ~%.1f L/day).", WaterTargetLiters)
	}
	return "Water: Good hydration levels."
}

// WeeklySummary renders the combined seven-day report starting at start, or
// InvalidStartMessage when start is not a YYYY-MM-DD date.
func WeeklySummary(set RecordSet, start string) string {
	d, err := ParseDate(start)
	if err != nil {
		return InvalidStartMessage
	}
	return FormatWeekly(Aggregate(set, d))
}

func StepsWeeklyReport(set RecordSet, start string) string {
	d, err := ParseDate(start)
	if err != nil {
		return InvalidStartMessage
	}
	return FormatStepsWeekly(Aggregate(set, d))
}

func WaterWeeklyReport(set RecordSet, start string) string {
	d, err := ParseDate(start)
	if err != nil {
		return InvalidStartMessage
	}
	return FormatWaterWeekly(Aggregate(set, d))
}

func FormatWeekly(w WeeklyTotals) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Weekly Summary %s to %s", model.FormatDate(w.Start), model.FormatDate(w.End())))
	for _, d := range w.Days {
		lines = append(lines, fmt.Sprintf("%s (%s): calories=%d, steps=%d, water_liters=%.2f",
			model.FormatDate(d.Date), d.Day, d.Calories, d.Steps, d.Liters))
	}
	lines = append(lines,
		fmt.Sprintf("Averages (per day over %d days):", WeekDays),
		fmt.Sprintf("Calories: %.2f kcal/day", w.AverageCalories()),
		fmt.Sprintf("Steps: %.2f steps/day", w.AverageSteps()),
		fmt.Sprintf("Water: %.2f L/day", w.AverageLiters()),
		CalorieAdvice(w.AverageCalories(), "the week"),
		StepsAdvice(w.AverageSteps()),
		WaterAdvice(w.AverageLiters()),
	)
	return strings.Join(lines, "\n")
}

func FormatStepsWeekly(w WeeklyTotals) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Weekly Steps Report: %s to %s", model.FormatDate(w.Start), model.FormatDate(w.End())))
	for _, d := range w.Days {
		lines = append(lines, fmt.Sprintf("%s (%s): %d steps", model.FormatDate(d.Date), d.Day, d.Steps))
	}
	lines = append(lines,
		fmt.Sprintf("Total steps: %d", w.TotalSteps()),
		fmt.Sprintf("Average daily steps (over %d days): %.2f", WeekDays, w.AverageSteps()),
		StepsAdvice(w.AverageSteps()),
	)
	return strings.Join(lines, "\n")
}

func FormatWaterWeekly(w WeeklyTotals) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Weekly Water Report: %s to %s", model.FormatDate(w.Start), model.FormatDate(w.End())))
	for _, d := range w.Days {
		lines = append(lines, fmt.Sprintf("%s (%s): %.2f L", model.FormatDate(d.Date), d.Day, d.Liters))
	}
	lines = append(lines,
		fmt.Sprintf("Total water: %.2f L", w.TotalLiters()),
		fmt.Sprintf("Average daily water intake (over %d days): %.2f L", WeekDays, w.AverageLiters()),
		WaterAdvice(w.AverageLiters()),
	)
	return strings.Join(lines, "\n")
}

// FormatRangeSummary renders a snapshot with the same advisories as the
// weekly summary, applied to the snapshot's averages.
func FormatRangeSummary(s Snapshot) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Summary %s to %s (%d days)", s.StartDate, s.EndDate, s.PeriodDays))
	if s.TotalMeals == 0 && s.StepDays == 0 && s.WaterDays == 0 {
		lines = append(lines, "No entries logged in this period.")
	}

	lines = append(lines, "", "Nutrition")
	lines = append(lines,
		fmt.Sprintf("Meals logged: %d", s.TotalMeals),
		fmt.Sprintf("Total calories: %d kcal", s.TotalCalories),
		fmt.Sprintf("Average: %.2f kcal/day (over %d days)", s.AverageDailyCalories, s.PeriodDays),
		"Top foods: "+joinOr(s.TopFoods, "None logged yet"),
	)
	if len(s.CaloriesByCategory) > 0 {
		parts := make([]string, 0, len(s.CaloriesByCategory))
		for _, c := range s.CaloriesByCategory {
			parts = append(parts, fmt.Sprintf("%s %d kcal (%d meals)", c.Category, c.Calories, c.Meals))
		}
		lines = append(lines, "By category: "+strings.Join(parts, ", "))
	}

	lines = append(lines, "", "Activity")
	if s.StepDays == 0 {
		lines = append(lines, "No steps logged.")
	} else {
		lines = append(lines,
			fmt.Sprintf("Days with steps: %d of %d", s.StepDays, s.PeriodDays),
			fmt.Sprintf("Total steps: %d", s.TotalSteps),
			fmt.Sprintf("Average: %.2f steps/day (over days logged)", s.AverageDailySteps),
			fmt.Sprintf("Range: %d - %d steps/day", s.MinDailySteps, s.MaxDailySteps),
		)
	}

	lines = append(lines, "", "Hydration")
	if s.WaterDays == 0 {
		lines = append(lines, "No water logged.")
	} else {
		lines = append(lines,
			fmt.Sprintf("Days with water: %d of %d", s.WaterDays, s.PeriodDays),
			fmt.Sprintf("Total water: %.2f L", s.TotalLiters),
			fmt.Sprintf("Average: %.2f L/day (over days logged)", s.AverageDailyLiters),
			fmt.Sprintf("Range: %.2f - %.2f L/day", s.MinDailyLiters, s.MaxDailyLiters),
		)
	}

	lines = append(lines, "",
		CalorieAdvice(s.AverageDailyCalories, "this period"),
		StepsAdvice(s.AverageDailySteps),
		WaterAdvice(s.AverageDailyLiters),
	)
	return strings.Join(lines, "\n")
}

func FormatAnalysis(question string, a Analysis) string {
	rule := strings.Repeat("-", 56)
	var lines []string
	lines = append(lines, strings.Repeat("=", 56), "AI HEALTH ANALYSIS", strings.Repeat("=", 56), "")
	lines = append(lines, "YOUR QUESTION:", rule, fmt.Sprintf("%q", question), "")
	lines = append(lines, "ANSWER:", rule, a.Answer, "")
	lines = append(lines, "KEY INSIGHTS:", rule)
	lines = append(lines, bullets(a.Insights, "No additional insights")...)
	lines = append(lines, "", "RECOMMENDATIONS:", rule)
	lines = append(lines, bullets(a.Recommendations, "No specific recommendations")...)
	lines = append(lines, "", rule, fmt.Sprintf("Analysis Confidence: %.0f%%", a.Confidence*100))
	return strings.Join(lines, "\n")
}

func bullets(items []string, empty string) []string {
	if len(items) == 0 {
		return []string{"* " + empty}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, "* "+it)
	}
	return out
}

func joinOr(items []string, empty string) string {
	if len(items) == 0 {
		return empty
	}
	return strings.Join(items, ", ")
}
