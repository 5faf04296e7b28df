package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/saadjs/fitlife-cli/internal/model"
)

type Appender interface {
	Append(rec model.Record) error
}

type MealInput struct {
	Date     time.Time
	Name     string
	Grams    float64
	Calories int
	Category string
}

// BuildMeal validates in and resolves its calories. An explicit positive
// calorie count teaches the table; otherwise the table fills it in, or 0 when
// the food is unknown.
func BuildMeal(table *FoodTable, in MealInput) (model.Record, error) {
	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)
	if name == "" {
		return model.Record{}, fmt.Errorf("meal name is required")
	}
	if err := validateField("meal name", name); err != nil {
		return model.Record{}, err
	}
	if err := validateField("category", category); err != nil {
		return model.Record{}, err
	}
	if math.IsNaN(in.Grams) || math.IsInf(in.Grams, 0) || in.Grams <= 0 {
		return model.Record{}, fmt.Errorf("quantity must be > 0 grams")
	}
	if err := validateNonNegativeInt("calories", in.Calories); err != nil {
		return model.Record{}, err
	}

	calories := in.Calories
	if !table.Record(name, calories, in.Grams) {
		calories = table.Infer(name, in.Grams)
	}
	return model.NewMealRecord(in.Date, model.Meal{
		Food:     name,
		Grams:    in.Grams,
		Calories: calories,
		Category: category,
	}), nil
}

func LogMeal(app Appender, table *FoodTable, in MealInput) (model.Record, error) {
	rec, err := BuildMeal(table, in)
	if err != nil {
		return model.Record{}, err
	}
	if err := app.Append(rec); err != nil {
		return model.Record{}, err
	}
	return rec, nil
}
