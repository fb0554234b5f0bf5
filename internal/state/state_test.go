package state

import (
	"fmt"
	"sync"
	"testing"

	"github.com/franciscosanchezn/truckplate-api/internal/models"
	"github.com/franciscosanchezn/truckplate-api/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func costRecipe(id string, cost float64) models.Recipe {
	return models.Recipe{
		ID:          id,
		Name:        "Recipe " + id,
		PrepStation: models.StationGrill,
		Servings:    1,
		Ingredients: []models.Ingredient{{ID: id + "-i", Name: "x", Cost: cost, Amount: 1}},
	}
}

func sequentialIDs() IDFunc {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := Reduce(Initial(), Hydrate{Recipes: seed.Recipes(), Invoices: seed.Invoices()})
	require.True(t, s.Loaded)
	require.Len(t, s.Recipes, 12)

	next := Reduce(s, RemoveRecipe{ID: "1"})
	assert.Len(t, next.Recipes, 11)
	assert.Len(t, s.Recipes, 12)
	assert.Equal(t, "1", s.Recipes[0].ID)

	added := Reduce(s, AddRecipe{Recipe: costRecipe("new", 1)})
	assert.Equal(t, "new", added.Recipes[0].ID)
	assert.Len(t, s.Recipes, 12)
}

func TestReduceSettings(t *testing.T) {
	s := Initial()
	assert.Equal(t, models.DefaultDisplayName, s.DisplayName)
	assert.True(t, s.DarkMode)

	s = Reduce(s, SetDisplayName{Name: "Chef Ana"})
	assert.Equal(t, "Chef Ana", s.DisplayName)

	s = Reduce(s, ToggleDarkMode{})
	assert.False(t, s.DarkMode)

	// setting is idempotent where toggling is not
	s = Reduce(Reduce(s, SetDarkMode{On: true}), SetDarkMode{On: true})
	assert.True(t, s.DarkMode)
	s = Reduce(s, SetDarkMode{On: false})
	assert.False(t, s.DarkMode)

	// hydrating without a saved name keeps the current one
	s = Reduce(s, Hydrate{})
	assert.Equal(t, "Chef Ana", s.DisplayName)
	assert.NotNil(t, s.Recipes)
}

func TestStoreAddAndRemove(t *testing.T) {
	store := NewStore(WithIDFunc(sequentialIDs()))
	store.Dispatch(Hydrate{Recipes: seed.Recipes(), Invoices: seed.Invoices()})

	r := costRecipe("ignored", 2)
	r.Ingredients = append(r.Ingredients, models.Ingredient{Name: "no id", Cost: 1, Amount: 1})
	id := store.AddRecipe(r)
	assert.Equal(t, "id-1", id)

	snap := store.Snapshot()
	require.Len(t, snap.Recipes, 13)
	assert.Equal(t, id, snap.Recipes[0].ID)
	assert.Equal(t, "ignored-i", snap.Recipes[0].Ingredients[0].ID)
	assert.Equal(t, "id-2", snap.Recipes[0].Ingredients[1].ID)

	assert.True(t, store.RemoveRecipe(id))
	assert.False(t, store.RemoveRecipe(id), "second delete is a no-op")
	assert.Len(t, store.Snapshot().Recipes, 12)

	invID := store.AddInvoice(models.Invoice{Supplier: "US Foods", Date: "2024-04-01", Total: 10})
	inv := store.Snapshot().Invoices[0]
	assert.Equal(t, invID, inv.ID)
	assert.Equal(t, models.InvoicePending, inv.Status)
	assert.NotNil(t, inv.Items)
}

func TestStoreDeleteSeedInvoice(t *testing.T) {
	store := NewStore()
	store.Dispatch(Hydrate{Recipes: seed.Recipes(), Invoices: seed.Invoices()})

	assert.True(t, store.RemoveInvoice("inv3"))

	invoices := store.Snapshot().Invoices
	assert.Len(t, invoices, 4)
	for _, inv := range invoices {
		assert.NotEqual(t, "inv3", inv.ID)
	}

	assert.False(t, store.RemoveInvoice("missing"))
	assert.Len(t, store.Snapshot().Invoices, 4)
}

func TestStoreListeners(t *testing.T) {
	store := NewStore()
	var transitions []string
	store.Subscribe(func(prev, next State) {
		transitions = append(transitions, fmt.Sprintf("%d->%d", len(prev.Recipes), len(next.Recipes)))
	})

	store.Dispatch(Hydrate{Recipes: []models.Recipe{costRecipe("a", 1)}})
	store.AddRecipe(costRecipe("b", 1))
	store.RemoveRecipe("nope")

	assert.Equal(t, []string{"0->1", "1->2", "2->2"}, transitions)
}

func TestNewTimeOrderedIDIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewTimeOrderedID()
		require.False(t, seen[id])
		seen[id] = true
	}
}
