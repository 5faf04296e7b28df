package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saadjs/fitlife-cli/internal/model"
	"github.com/saadjs/fitlife-cli/internal/service"
)

func meal(t *testing.T, date, food string, calories int, category string) model.Record {
	t.Helper()
	return model.NewMealRecord(mustDate(t, date), model.Meal{Food: food, Grams: 100, Calories: calories, Category: category})
}

func TestExtractAveragesStepsOverLoggedDaysAndCaloriesOverRange(t *testing.T) {
	t.Parallel()

	set := service.RecordSet{
		Meals: []model.Record{
			meal(t, "2025-11-01", "oats", 300, "breakfast"),
			meal(t, "2025-11-05", "pasta", 700, "dinner"),
		},
		Steps: []model.Record{
			model.NewStepsRecord(mustDate(t, "2025-11-01"), 4000),
			model.NewStepsRecord(mustDate(t, "2025-11-03"), 6000),
			model.NewStepsRecord(mustDate(t, "2025-11-03"), 2000),
			model.NewStepsRecord(mustDate(t, "2025-11-07"), 10000),
			model.NewStepsRecord(mustDate(t, "2025-11-10"), 2000),
			model.NewStepsRecord(mustDate(t, "2025-11-11"), 99999),
		},
	}

	snap, err := service.Extract(set, mustDate(t, "2025-11-01"), mustDate(t, "2025-11-10"))
	require.NoError(t, err)
	assert.Equal(t, 10, snap.PeriodDays)
	assert.Equal(t, "2025-11-01", snap.StartDate)
	assert.Equal(t, "2025-11-10", snap.EndDate)

	assert.Equal(t, 1000, snap.TotalCalories)
	assert.Equal(t, 2, snap.TotalMeals)
	assert.InDelta(t, 100.0, snap.AverageDailyCalories, 1e-9)

	assert.Equal(t, 4, snap.StepDays)
	assert.Equal(t, 24000, snap.TotalSteps)
	assert.InDelta(t, 6000.0, snap.AverageDailySteps, 1e-9)
	assert.Equal(t, 2000, snap.MinDailySteps)
	assert.Equal(t, 10000, snap.MaxDailySteps)

	assert.Zero(t, snap.WaterDays)
	assert.Zero(t, snap.AverageDailyLiters)
}

func TestExtractTopFoodsBreakTiesByFirstSeen(t *testing.T) {
	t.Parallel()

	set := service.RecordSet{Meals: []model.Record{
		meal(t, "2025-11-01", "Kiwi", 40, ""),
		meal(t, "2025-11-01", "apple", 52, "fruit"),
		meal(t, "2025-11-02", "egg", 70, "breakfast"),
		meal(t, "2025-11-02", "Apple", 52, "fruit"),
		meal(t, "2025-11-03", "bread", 80, "breakfast"),
		meal(t, "2025-11-03", "fig", 30, "fruit"),
		meal(t, "2025-11-03", "date", 20, "fruit"),
	}}

	snap, err := service.Extract(set, mustDate(t, "2025-11-01"), mustDate(t, "2025-11-03"))
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "kiwi", "egg", "bread", "fig"}, snap.TopFoods)
	assert.Equal(t, []service.CategoryCalories{
		{Category: "fruit", Calories: 154, Meals: 4},
		{Category: "breakfast", Calories: 150, Meals: 2},
		{Category: "uncategorized", Calories: 40, Meals: 1},
	}, snap.CaloriesByCategory)
}

func TestExtractWaterBucketsPerDay(t *testing.T) {
	t.Parallel()

	d := mustDate(t, "2025-11-01")
	set := service.RecordSet{Water: []model.Record{
		model.NewWaterRecord(d, 1),
		model.NewWaterRecord(d, 1.5),
		model.NewWaterRecord(d.AddDate(0, 0, 1), 0.5),
	}}

	snap, err := service.Extract(set, d, d.AddDate(0, 0, 4))
	require.NoError(t, err)
	assert.Equal(t, 2, snap.WaterDays)
	assert.InDelta(t, 3.0, snap.TotalLiters, 1e-9)
	assert.InDelta(t, 1.5, snap.AverageDailyLiters, 1e-9)
	assert.InDelta(t, 0.5, snap.MinDailyLiters, 1e-9)
	assert.InDelta(t, 2.5, snap.MaxDailyLiters, 1e-9)
}

func TestExtractRejectsEndBeforeStart(t *testing.T) {
	t.Parallel()

	_, err := service.Extract(service.RecordSet{}, mustDate(t, "2025-11-10"), mustDate(t, "2025-11-01"))
	assert.Error(t, err)
}

func TestLastDaysIsInclusive(t *testing.T) {
	t.Parallel()

	start, end := service.LastDays(mustDate(t, "2025-11-30"), 30)
	assert.Equal(t, "2025-11-01", model.FormatDate(start))
	assert.Equal(t, "2025-11-30", model.FormatDate(end))
}
