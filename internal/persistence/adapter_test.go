package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/franciscosanchezn/truckplate-api/internal/models"
	"github.com/franciscosanchezn/truckplate-api/internal/seed"
	"github.com/franciscosanchezn/truckplate-api/internal/state"
	"github.com/franciscosanchezn/truckplate-api/internal/storage"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingKV simulates an unavailable or full backend
type failingKV struct{}

func (failingKV) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("storage unavailable")
}
func (failingKV) Set(context.Context, string, string) error { return errors.New("quota exceeded") }
func (failingKV) Delete(context.Context, string) error      { return nil }
func (failingKV) Ping(context.Context) error                { return errors.New("down") }

// hangingKV never completes a write until the caller gives up
type hangingKV struct {
	storage.KV
}

func (h hangingKV) Set(ctx context.Context, _, _ string) error {
	<-ctx.Done()
	return ctx.Err()
}

func newTestAdapter(kv storage.KV) *Adapter {
	return NewAdapter(kv, WithLoadDelay(0))
}

func TestLoadMissingKeysUsesSeed(t *testing.T) {
	snap, err := newTestAdapter(storage.NewMemoryStore()).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, seed.Recipes(), snap.Recipes)
	assert.Equal(t, seed.Invoices(), snap.Invoices)
	assert.Equal(t, models.DefaultDisplayName, snap.DisplayName)
	assert.Empty(t, snap.Warnings)
}

func TestLoadDefaultDisplayNameOption(t *testing.T) {
	a := NewAdapter(storage.NewMemoryStore(), WithLoadDelay(0), WithDefaultDisplayName("Chef Sam"))
	snap, err := a.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Chef Sam", snap.DisplayName)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	a := newTestAdapter(storage.NewMemoryStore())

	first, err := a.Load(ctx)
	require.NoError(t, err)

	a.MarkLoaded()
	require.NoError(t, a.Save(ctx, KeyRecipes, first.Recipes))
	require.NoError(t, a.Save(ctx, KeyInvoices, first.Invoices))
	require.NoError(t, a.Save(ctx, KeyUser, "Chef Ana"))

	second, err := a.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.Recipes, second.Recipes)
	assert.Equal(t, first.Invoices, second.Invoices)
	assert.Equal(t, "Chef Ana", second.DisplayName)
	assert.Empty(t, second.Warnings)
}

func TestRoundTripThroughRedis(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	kv := storage.WithPrefix(storage.NewRedisStore(client), "truckplate_")
	a := newTestAdapter(kv)
	a.MarkLoaded()

	invoices := seed.Invoices()[:2]
	require.NoError(t, a.Save(ctx, KeyInvoices, invoices))
	require.NoError(t, a.Save(ctx, KeyUser, "Chef Ana"))

	// the display name is a plain string, not JSON
	user, err := mr.Get("truckplate_user")
	require.NoError(t, err)
	assert.Equal(t, "Chef Ana", user)

	snap, err := a.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, invoices, snap.Invoices)
	assert.Len(t, snap.Recipes, 12)
}

func TestSaveSkippedBeforeLoad(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	a := newTestAdapter(kv)

	require.NoError(t, a.Save(ctx, KeyRecipes, []models.Recipe{}))
	_, found, err := kv.Get(ctx, KeyRecipes)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLoadMalformedDataFallsBack(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, KeyRecipes, "{not json"))
	require.NoError(t, kv.Set(ctx, KeyInvoices, "null"))

	snap, err := newTestAdapter(kv).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed.Recipes(), snap.Recipes)
	assert.Equal(t, seed.Invoices(), snap.Invoices)
	assert.Len(t, snap.Warnings, 2)
}

func TestLoadRepairsAndDropsRecords(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, KeyRecipes, `[
		{"id":"ok","name":"Tacos","prepStation":"Grill","servings":4,"dietaryTags":["Vegan","Vegan",""],
		 "ingredients":[{"name":"Tortilla","cost":1,"unit":"pack","amount":1}]},
		{"id":"bad-servings","name":"Zero","prepStation":"Grill","servings":0},
		{"id":"bad-station","name":"Wok","prepStation":"Wok","servings":2},
		{"id":"bad-type","name":"Typo","prepStation":"Grill","servings":"four"},
		{"name":"No Id","prepStation":"Oven","servings":1}
	]`))
	require.NoError(t, kv.Set(ctx, KeyInvoices, `[
		{"id":"a","supplier":"US Foods","date":"2024-03-12","total":10,"status":"lost"},
		{"id":"b","supplier":"","date":"2024-03-12","total":10,"status":"processed"},
		{"id":"c","supplier":"Sysco","date":"12/03/2024","total":10,"status":"processed"},
		{"id":"d","supplier":"Sysco","date":"2024-03-01","total":-5,"status":"processed"}
	]`))
	require.NoError(t, kv.Set(ctx, KeyUser, ""))

	snap, err := newTestAdapter(kv).Load(ctx)
	require.NoError(t, err)

	require.Len(t, snap.Recipes, 2)
	assert.Equal(t, "ok", snap.Recipes[0].ID)
	assert.Equal(t, []string{"Vegan"}, snap.Recipes[0].DietaryTags)
	assert.NotEmpty(t, snap.Recipes[0].Ingredients[0].ID)
	assert.Equal(t, "No Id", snap.Recipes[1].Name)
	assert.NotEmpty(t, snap.Recipes[1].ID)
	assert.NotNil(t, snap.Recipes[1].Ingredients)

	require.Len(t, snap.Invoices, 1)
	assert.Equal(t, "a", snap.Invoices[0].ID)
	assert.Equal(t, models.InvoicePending, snap.Invoices[0].Status)
	assert.NotNil(t, snap.Invoices[0].Items)

	assert.Equal(t, models.DefaultDisplayName, snap.DisplayName)
	assert.NotEmpty(t, snap.Warnings)
}

func TestLoadStorageFailureIsNotFatal(t *testing.T) {
	a := newTestAdapter(failingKV{})
	snap, err := a.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Recipes, 12)
	assert.Len(t, snap.Warnings, 3)

	a.MarkLoaded()
	assert.ErrorContains(t, a.Save(context.Background(), KeyRecipes, snap.Recipes), "quota exceeded")
}

func TestLoadHonoursCancellation(t *testing.T) {
	a := NewAdapter(storage.NewMemoryStore(), WithLoadDelay(time.Hour))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, a.Loaded())
}

func TestLoadWaitsForDelay(t *testing.T) {
	a := NewAdapter(storage.NewMemoryStore(), WithLoadDelay(20*time.Millisecond))
	start := time.Now()
	_, err := a.Load(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestHydrateAndPersistOnChange(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	a := newTestAdapter(kv)
	store := state.NewStore()

	_, err := a.Hydrate(ctx, store)
	require.NoError(t, err)
	require.True(t, a.Loaded())
	assert.Len(t, store.Snapshot().Recipes, 12)

	// hydration alone writes nothing
	_, found, _ := kv.Get(ctx, KeyRecipes)
	assert.False(t, found)

	store.RemoveInvoice("inv3")
	_, found, _ = kv.Get(ctx, KeyInvoices)
	assert.True(t, found)
	_, found, _ = kv.Get(ctx, KeyRecipes)
	assert.False(t, found, "recipes unchanged so not rewritten")

	store.Dispatch(state.SetDisplayName{Name: "Chef Ana"})
	user, _, _ := kv.Get(ctx, KeyUser)
	assert.Equal(t, "Chef Ana", user)

	// a fresh adapter sees the persisted state
	snap, err := newTestAdapter(kv).Load(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Invoices, 4)
	assert.Equal(t, "Chef Ana", snap.DisplayName)
}

func TestChangesSavedOnceLoaded(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	a := NewAdapter(kv, WithLoadDelay(5*time.Millisecond))
	store := state.NewStore()

	done := make(chan error, 1)
	go func() {
		_, err := a.Hydrate(ctx, store)
		done <- err
	}()

	require.Eventually(t, a.Loaded, time.Second, time.Millisecond)
	// the first change after the adapter reports loaded must reach storage
	store.Dispatch(state.SetDisplayName{Name: "Chef Ana"})
	require.NoError(t, <-done)

	user, found, err := kv.Get(ctx, KeyUser)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Chef Ana", user)
}

func TestSaveOnChangeTimesOut(t *testing.T) {
	ctx := context.Background()
	a := NewAdapter(hangingKV{KV: storage.NewMemoryStore()},
		WithLoadDelay(0), WithSaveTimeout(20*time.Millisecond))
	store := state.NewStore()
	_, err := a.Hydrate(ctx, store)
	require.NoError(t, err)

	start := time.Now()
	store.Dispatch(state.SetDisplayName{Name: "Chef Ana"})
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, "Chef Ana", store.Snapshot().DisplayName)
}
