package state

import (
	"testing"

	"github.com/franciscosanchezn/truckplate-api/internal/models"
	"github.com/franciscosanchezn/truckplate-api/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(recipes []models.Recipe) []string {
	out := make([]string, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	recipes := seed.Recipes()

	t.Run("all returns every search match", func(t *testing.T) {
		assert.Len(t, Filter(recipes, "", models.StationAll), len(recipes))
		assert.Len(t, Filter(recipes, "", ""), len(recipes))
	})

	t.Run("specific station is an exact match", func(t *testing.T) {
		got := Filter(recipes, "", models.StationFryer)
		assert.Equal(t, []string{"4", "6", "9"}, ids(got))
		for _, r := range got {
			assert.Equal(t, models.StationFryer, r.PrepStation)
		}
		assert.Empty(t, Filter(recipes, "", "fryer"))
	})

	t.Run("search is case insensitive over name and description", func(t *testing.T) {
		assert.Equal(t, []string{"2", "9"}, ids(Filter(recipes, "TACOS", models.StationAll)))
		// only in a description
		assert.Equal(t, []string{"3"}, ids(Filter(recipes, "ricotta", models.StationAll)))
	})

	t.Run("search and station combine", func(t *testing.T) {
		assert.Equal(t, []string{"9"}, ids(Filter(recipes, "tacos", models.StationFryer)))
	})
}

func TestSortByCostIsStable(t *testing.T) {
	recipes := []models.Recipe{costRecipe("a", 5), costRecipe("b", 5), costRecipe("c", 3)}

	got := Sort(recipes, SortByCost)
	assert.Equal(t, []string{"c", "a", "b"}, ids(got))
	// input untouched
	assert.Equal(t, []string{"a", "b", "c"}, ids(recipes))
}

func TestSortByName(t *testing.T) {
	recipes := []models.Recipe{
		{ID: "1", Name: "banana bowl"},
		{ID: "2", Name: "Apple tart"},
		{ID: "3", Name: "Élote"},
		{ID: "4", Name: "apple tart"},
	}

	got := Sort(recipes, SortByName)
	require.Len(t, got, 4)
	assert.Equal(t, "banana bowl", got[2].Name)
	assert.Equal(t, "Élote", got[3].Name)
}

func TestSortUnknownCriterionKeepsOrder(t *testing.T) {
	recipes := seed.Recipes()
	assert.Equal(t, ids(recipes), ids(Sort(recipes, "popularity")))
	assert.Equal(t, ids(recipes), ids(Sort(recipes, "")))
}

func TestStations(t *testing.T) {
	assert.Equal(t, []string{"all"}, Stations(nil))
	assert.Equal(t,
		[]string{"all", "Grill", "Smoker", "Oven", "Fryer", "Cold Prep", "Steam"},
		Stations(seed.Recipes()))
}
