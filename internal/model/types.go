package model

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

type Kind string

const (
	KindMeal  Kind = "meal"
	KindSteps Kind = "steps"
	KindWater Kind = "water"
)

func Kinds() []Kind {
	return []Kind{KindMeal, KindSteps, KindWater}
}

// Record is one logged event. Date and Day are shared by every kind; the
// remaining fields are meaningful only for the matching Kind.
type Record struct {
	Kind Kind
	Date time.Time
	Day  string

	Meal   Meal
	Steps  int
	Liters float64
}

type Meal struct {
	Food     string
	Grams    float64
	Calories int
	Category string
}

type FoodRate struct {
	Name            string
	CaloriesPerGram float64
}

func NewMealRecord(date time.Time, meal Meal) Record {
	d := Day(date)
	return Record{Kind: KindMeal, Date: d, Day: DayName(d), Meal: meal}
}

func NewStepsRecord(date time.Time, steps int) Record {
	d := Day(date)
	return Record{Kind: KindSteps, Date: d, Day: DayName(d), Steps: steps}
}

func NewWaterRecord(date time.Time, liters float64) Record {
	d := Day(date)
	return Record{Kind: KindWater, Date: d, Day: DayName(d), Liters: liters}
}

// Day truncates t to its calendar date, expressed at UTC midnight so that
// date arithmetic never crosses a DST boundary.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func DayName(t time.Time) string {
	return t.Weekday().String()
}

// DaysBetween counts whole calendar days from a to b; negative when b is
// before a.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}
