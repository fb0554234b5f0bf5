package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/franciscosanchezn/truckplate-api/internal/media"
	"github.com/franciscosanchezn/truckplate-api/internal/models"
	"github.com/franciscosanchezn/truckplate-api/internal/notify"
	"github.com/franciscosanchezn/truckplate-api/internal/seed"
	"github.com/franciscosanchezn/truckplate-api/internal/state"
	"github.com/franciscosanchezn/truckplate-api/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store    *state.Store
	notice   *notify.Center
	recipes  RecipeService
	invoices InvoiceService
	settings SettingsService
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store := state.NewStore()
	store.Dispatch(state.Hydrate{
		Recipes:     seed.Recipes(),
		Invoices:    seed.Invoices(),
		DisplayName: models.DefaultDisplayName,
	})
	notice := notify.NewCenter(time.Hour)
	t.Cleanup(notice.Close)
	return fixture{
		store:    store,
		notice:   notice,
		recipes:  NewRecipeService(store, notice),
		invoices: NewInvoiceService(store, media.NewInlineStore(0), notice),
		settings: NewSettingsService(store, notice),
	}
}

func messages(c *notify.Center) []string {
	var out []string
	for _, t := range c.Active() {
		out = append(out, t.Message)
	}
	return out
}

func TestCreateRecipe(t *testing.T) {
	f := newFixture(t)

	view, err := f.recipes.CreateRecipe(validation.RecipeForm{
		Name:        "Elote Cups",
		Description: "Street corn with cotija",
		Servings:    "6",
		Ingredients: []validation.IngredientForm{{Name: "Corn", Cost: "0.5", Unit: "ear", Amount: "12"}},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, view.ID)
	assert.Equal(t, models.StationGrill, view.PrepStation)
	assert.InDelta(t, 1.0, view.CostPerServing, 1e-9)
	assert.InDelta(t, 3.5, view.SuggestedPrice, 1e-9)

	recipes := f.store.Snapshot().Recipes
	require.Len(t, recipes, 13)
	assert.Equal(t, view.ID, recipes[0].ID)
	assert.Equal(t, []string{notify.MsgRecipeAdded}, messages(f.notice))
}

func TestCreateRecipeRejectsInvalidForm(t *testing.T) {
	f := newFixture(t)
	before := f.store.Snapshot()

	_, err := f.recipes.CreateRecipe(validation.RecipeForm{Name: "", Description: "x", Servings: "abc"})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, validation.MsgRecipeName, verr.Fields["name"])
	assert.Equal(t, validation.MsgValidNumber, verr.Fields["servings"])
	assert.Equal(t, before, f.store.Snapshot())
	assert.Empty(t, f.notice.Active())
}

func TestListAndGetRecipe(t *testing.T) {
	f := newFixture(t)

	views := f.recipes.ListRecipes("tacos", models.StationAll, state.SortByName)
	require.Len(t, views, 2)
	assert.Equal(t, "Fish Tacos", views[0].Name)

	view, err := f.recipes.GetRecipe("1")
	require.NoError(t, err)
	assert.Equal(t, "Korean BBQ Beef Bowl", view.Name)

	_, err = f.recipes.GetRecipe("nope")
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.Equal(t, "all", f.recipes.Stations()[0])
}

func TestDeleteRecipe(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.recipes.DeleteRecipe("1"))
	assert.Len(t, f.store.Snapshot().Recipes, 11)
	require.NoError(t, f.recipes.DeleteRecipe("1"))
	assert.Len(t, f.store.Snapshot().Recipes, 11)
	assert.Equal(t, []string{notify.MsgRecipeDeleted}, messages(f.notice))
}

func TestCreateInvoiceWithImage(t *testing.T) {
	f := newFixture(t)
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	inv, err := f.invoices.CreateInvoice(context.Background(), validation.InvoiceForm{
		Supplier: "Sysco",
		Amount:   "99.90",
		Date:     "2024-03-20",
		Items:    "Beef, Rice",
	}, &InvoiceImage{Name: "r.png", ContentType: "image/png", Body: bytes.NewReader(png)})
	require.NoError(t, err)

	assert.NotEmpty(t, inv.ID)
	assert.Equal(t, models.InvoicePending, inv.Status)
	assert.True(t, strings.HasPrefix(inv.ImageURL, "data:image/png;base64,"))
	assert.Len(t, inv.Items, 2)

	list := f.invoices.ListInvoices()
	require.Len(t, list, 6)
	assert.Equal(t, inv.ID, list[0].ID)
	assert.Equal(t, inv.ID, f.invoices.RecentInvoices(1)[0].ID)
	assert.Equal(t, []string{notify.MsgInvoiceUploaded}, messages(f.notice))
}

func TestCreateInvoiceRejectsBadImage(t *testing.T) {
	f := newFixture(t)

	_, err := f.invoices.CreateInvoice(context.Background(), validation.InvoiceForm{
		Supplier: "Sysco", Amount: "10", Date: "2024-03-20", Items: "Beef",
	}, &InvoiceImage{Name: "notes.txt", Body: strings.NewReader("plain text")})

	assert.ErrorIs(t, err, media.ErrUnsupportedType)
	assert.Len(t, f.store.Snapshot().Invoices, 5)

	active := f.notice.Active()
	require.Len(t, active, 1)
	assert.Equal(t, notify.KindError, active[0].Kind)
	assert.Equal(t, notify.MsgInvoiceImageBad, active[0].Message)
}

func TestDeleteInvoice(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.invoices.DeleteInvoice("inv3"))
	assert.Len(t, f.invoices.ListInvoices(), 4)
	assert.Equal(t, []string{notify.MsgInvoiceRemoved}, messages(f.notice))
}

func TestDashboardService(t *testing.T) {
	f := newFixture(t)
	stats := NewDashboardService(f.store).GetStats()
	assert.Equal(t, 12, stats.TotalRecipes)
	assert.Equal(t, 5, stats.TotalInvoices)
	assert.Len(t, stats.RecentInvoices, 3)
}

func TestSettings(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, models.Settings{DisplayName: "Chef Maria", DarkMode: true}, f.settings.GetSettings())

	name := "  Chef Ana "
	dark := false
	got, err := f.settings.UpdateSettings(models.SettingsUpdate{DisplayName: &name, DarkMode: &dark})
	require.NoError(t, err)
	assert.Equal(t, models.Settings{DisplayName: "Chef Ana", DarkMode: false}, got)

	assert.True(t, f.settings.ToggleDarkMode().DarkMode)

	blank := " "
	_, err = f.settings.UpdateSettings(models.SettingsUpdate{DisplayName: &blank})
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, "Chef Ana", f.settings.GetSettings().DisplayName)
}

func TestUpdateSettingsConcurrentDarkMode(t *testing.T) {
	f := newFixture(t)

	off := false
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.settings.UpdateSettings(models.SettingsUpdate{DarkMode: &off})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.False(t, f.settings.GetSettings().DarkMode)
}

func TestExport(t *testing.T) {
	f := newFixture(t)
	svc := f.settings.(*settingsService)
	svc.now = func() time.Time { return time.Date(2024, 3, 20, 9, 0, 0, 0, time.FixedZone("PDT", -7*3600)) }

	export := f.settings.Export()
	assert.Len(t, export.Recipes, 12)
	assert.Len(t, export.Invoices, 5)
	assert.Equal(t, time.UTC, export.ExportedAt.Location())
	assert.Equal(t, 16, export.ExportedAt.Hour())
	assert.Equal(t, []string{notify.MsgDataCopied}, messages(f.notice))
}

func TestNotificationService(t *testing.T) {
	f := newFixture(t)
	svc := NewNotificationService(f.notice)

	toast := f.notice.Success(notify.MsgInvoiceRemoved)
	require.Len(t, svc.ListNotifications(), 1)
	require.NoError(t, svc.DismissNotification(toast.ID))
	assert.ErrorIs(t, svc.DismissNotification(toast.ID), models.ErrNotFound)
}
