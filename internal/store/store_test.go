package store_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saadjs/fitlife-cli/internal/model"
	"github.com/saadjs/fitlife-cli/internal/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)
	return st
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestOpenRequiresDirectory(t *testing.T) {
	t.Parallel()

	_, err := store.Open("  ")
	assert.Error(t, err)
}

func TestMissingStoreLoadsAsEmpty(t *testing.T) {
	t.Parallel()
	st := openStore(t)

	for _, kind := range model.Kinds() {
		res := st.Load(kind)
		assert.True(t, res.Missing, kind)
		assert.NoError(t, res.Err)
		assert.Empty(t, res.Records)
		assert.Zero(t, res.Skipped)
	}
}

func TestAppendThenLoadPreservesOrder(t *testing.T) {
	t.Parallel()
	st := openStore(t)

	d1, _ := model.ParseDate("2025-11-10")
	d2, _ := model.ParseDate("2025-11-11")
	require.NoError(t, st.Append(model.NewStepsRecord(d2, 4000)))
	require.NoError(t, st.Append(model.NewStepsRecord(d1, 8000)))
	require.NoError(t, st.Append(model.NewStepsRecord(d2, 1000)))

	res := st.Load(model.KindSteps)
	require.NoError(t, res.Err)
	require.Len(t, res.Records, 3)
	assert.Equal(t, 4000, res.Records[0].Steps)
	assert.Equal(t, 8000, res.Records[1].Steps)
	assert.Equal(t, 1000, res.Records[2].Steps)

	b, err := os.ReadFile(st.Path(model.KindSteps))
	require.NoError(t, err)
	assert.Equal(t, "2025-11-11,Tuesday,4000\n2025-11-10,Monday,8000\n2025-11-11,Tuesday,1000\n", string(b))
}

func TestLoadSkipsMalformedLinesAndIgnoresBlankOnes(t *testing.T) {
	t.Parallel()
	st := openStore(t)

	writeFile(t, st.Path(model.KindSteps), "2025-11-10,Monday,8000\r\n\n"+
		"garbage\n"+
		"2025-11-11,Tuesday,-1\n"+
		"   \n"+
		"2025-11-12,Wednesday,3000\n")

	res := st.Load(model.KindSteps)
	require.NoError(t, res.Err)
	assert.False(t, res.Missing)
	assert.Equal(t, 2, res.Skipped)
	require.Len(t, res.Records, 2)
	assert.Equal(t, 8000, res.Records[0].Steps)
	assert.Equal(t, 3000, res.Records[1].Steps)
}

func TestLoadSkipsOverlongLineAndKeepsItsNeighbours(t *testing.T) {
	t.Parallel()
	st := openStore(t)

	day, _ := model.ParseDate("2025-11-10")
	huge := strings.Repeat("x", 70000)
	require.NoError(t, st.Append(model.NewMealRecord(day, model.Meal{Food: "apple", Grams: 100, Calories: 52})))
	require.NoError(t, st.Append(model.NewMealRecord(day, model.Meal{Food: huge, Grams: 100, Calories: 10})))
	require.NoError(t, st.Append(model.NewMealRecord(day, model.Meal{Food: "banana", Grams: 120, Calories: 107})))

	res := st.Load(model.KindMeal)
	require.NoError(t, res.Err)
	assert.Equal(t, 1, res.Skipped)
	require.Len(t, res.Records, 2)
	assert.Equal(t, "apple", res.Records[0].Meal.Food)
	assert.Equal(t, "banana", res.Records[1].Meal.Food)
}

func TestLoadAcceptsFinalLineWithoutNewline(t *testing.T) {
	t.Parallel()
	st := openStore(t)

	writeFile(t, st.Path(model.KindSteps), "2025-11-10,Monday,8000\n2025-11-11,Tuesday,500")

	res := st.Load(model.KindSteps)
	require.NoError(t, res.Err)
	require.Len(t, res.Records, 2)
	assert.Equal(t, 500, res.Records[1].Steps)
}

func TestLoadReportsReadFailureWithoutRecords(t *testing.T) {
	t.Parallel()
	st := openStore(t)

	// A directory where the file should be cannot be read as lines.
	require.NoError(t, os.Mkdir(st.Path(model.KindWater), 0o755))

	res := st.Load(model.KindWater)
	assert.Error(t, res.Err)
	assert.False(t, res.Missing)
	assert.Empty(t, res.Records)
}
