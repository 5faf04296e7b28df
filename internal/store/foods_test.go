package store_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saadjs/fitlife-cli/internal/model"
	"github.com/saadjs/fitlife-cli/internal/store"
)

func TestSaveFoodsThenLoadFoods(t *testing.T) {
	t.Parallel()
	st := openStore(t)

	rates := []model.FoodRate{{Name: "apple", CaloriesPerGram: 0.52}, {Name: "rice", CaloriesPerGram: 1.3}}
	require.NoError(t, st.SaveFoods(rates))

	b, err := os.ReadFile(st.FoodsPath())
	require.NoError(t, err)
	assert.Equal(t, "apple,0.52\nrice,1.3\n", string(b))

	res := st.LoadFoods()
	require.NoError(t, res.Err)
	assert.Equal(t, rates, res.Rates)
}

func TestLoadFoodsNormalizesNamesAndSkipsBadRates(t *testing.T) {
	t.Parallel()
	st := openStore(t)

	writeFile(t, st.FoodsPath(), " Apple ,0.52\nbanana,zero\ncake,0\ndust,-1\n,2.0\nnoval\n")

	res := st.LoadFoods()
	require.NoError(t, res.Err)
	assert.Equal(t, 5, res.Skipped)
	assert.Equal(t, []model.FoodRate{{Name: "apple", CaloriesPerGram: 0.52}}, res.Rates)
}

func TestLoadFoodsMissingFile(t *testing.T) {
	t.Parallel()
	st := openStore(t)

	res := st.LoadFoods()
	assert.True(t, res.Missing)
	assert.NoError(t, res.Err)
	assert.Empty(t, res.Rates)
}

func TestNormalizeFood(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "greek yogurt", store.NormalizeFood("  Greek Yogurt "))
}
