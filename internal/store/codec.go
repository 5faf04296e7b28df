package store

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/saadjs/fitlife-cli/internal/model"
)

const fieldSep = ","

var minFields = map[model.Kind]int{
	model.KindMeal:  5,
	model.KindSteps: 3,
	model.KindWater: 2,
}

// ParseLine decodes one store line of the given kind. Fields are positional;
// extra trailing fields are ignored.
func ParseLine(kind model.Kind, line string) (model.Record, error) {
	parts := strings.Split(line, fieldSep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	need, ok := minFields[kind]
	if !ok {
		return model.Record{}, fmt.Errorf("unknown record kind %q", kind)
	}
	if len(parts) < need {
		return model.Record{}, fmt.Errorf("%s line has %d fields, need at least %d", kind, len(parts), need)
	}

	date, err := model.ParseDate(parts[0])
	if err != nil {
		return model.Record{}, err
	}
	rec := model.Record{Kind: kind, Date: date}

	switch kind {
	case model.KindMeal:
		rec.Day = parts[1]
		grams, err := parseNonNegativeFloat("quantity", parts[3])
		if err != nil {
			return model.Record{}, err
		}
		calories, err := parseNonNegativeInt("calories", parts[4])
		if err != nil {
			return model.Record{}, err
		}
		rec.Meal = model.Meal{Food: parts[2], Grams: grams, Calories: calories}
		if len(parts) > 5 {
			rec.Meal.Category = parts[5]
		}
	case model.KindSteps:
		rec.Day = parts[1]
		steps, err := parseNonNegativeInt("steps", parts[2])
		if err != nil {
			return model.Record{}, err
		}
		rec.Steps = steps
	case model.KindWater:
		raw := parts[1]
		if len(parts) >= 3 {
			rec.Day = parts[1]
			raw = parts[2]
		}
		liters, err := parseNonNegativeFloat("liters", raw)
		if err != nil {
			return model.Record{}, err
		}
		rec.Liters = liters
	}

	if rec.Day == "" {
		rec.Day = model.DayName(date)
	}
	return rec, nil
}

// FormatLine encodes a record in its store's canonical line form, without
// the trailing newline.
func FormatLine(rec model.Record) string {
	date := model.FormatDate(rec.Date)
	day := rec.Day
	if day == "" {
		day = model.DayName(rec.Date)
	}
	switch rec.Kind {
	case model.KindMeal:
		return strings.Join([]string{
			date,
			day,
			rec.Meal.Food,
			strconv.Itoa(int(math.Round(rec.Meal.Grams))),
			strconv.Itoa(rec.Meal.Calories),
			rec.Meal.Category,
		}, fieldSep)
	case model.KindSteps:
		return strings.Join([]string{date, day, strconv.Itoa(rec.Steps)}, fieldSep)
	case model.KindWater:
		return strings.Join([]string{date, day, strconv.FormatFloat(rec.Liters, 'f', 2, 64)}, fieldSep)
	}
	return ""
}

func parseNonNegativeInt(name, value string) (int, error) {
	v, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s must be >= 0", name)
	}
	return v, nil
}

func parseNonNegativeFloat(name, value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s must be >= 0", name)
	}
	return v, nil
}
