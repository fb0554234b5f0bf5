// Package persistence mirrors the application state to a key-value store
// and hydrates it back at startup.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/franciscosanchezn/truckplate-api/internal/models"
	"github.com/franciscosanchezn/truckplate-api/internal/seed"
	"github.com/franciscosanchezn/truckplate-api/internal/state"
	"github.com/franciscosanchezn/truckplate-api/internal/storage"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// Storage keys, before the backend prefix is applied
const (
	KeyRecipes  = "recipes"
	KeyInvoices = "invoices"
	KeyUser     = "user"
)

// DefaultLoadDelay mimics the latency of the first load
const DefaultLoadDelay = 800 * time.Millisecond

// DefaultSaveTimeout bounds each write made on a state change
const DefaultSaveTimeout = 5 * time.Second

// Snapshot is what Load read back from storage
type Snapshot struct {
	Recipes     []models.Recipe
	Invoices    []models.Invoice
	DisplayName string
	// Warnings lists every fallback, repair or dropped record
	Warnings []string
}

// Option configures an Adapter
type Option func(*Adapter)

// WithLoadDelay sets the simulated load latency
func WithLoadDelay(d time.Duration) Option {
	return func(a *Adapter) {
		a.loadDelay = d
	}
}

// WithSaveTimeout bounds each save triggered by a state change
func WithSaveTimeout(d time.Duration) Option {
	return func(a *Adapter) {
		a.saveTimeout = d
	}
}

// WithDefaultDisplayName sets the name used when none is stored
func WithDefaultDisplayName(name string) Option {
	return func(a *Adapter) {
		a.defaultName = name
	}
}

// Adapter reads and writes the recipes, invoices and user keys
type Adapter struct {
	kv          storage.KV
	loadDelay   time.Duration
	saveTimeout time.Duration
	defaultName string
	validate    *validator.Validate
	newID       state.IDFunc
	loaded      atomic.Bool
}

// NewAdapter creates an adapter over kv
func NewAdapter(kv storage.KV, opts ...Option) *Adapter {
	a := &Adapter{
		kv:          kv,
		loadDelay:   DefaultLoadDelay,
		saveTimeout: DefaultSaveTimeout,
		defaultName: models.DefaultDisplayName,
		validate:    newValidator(),
		newID:       state.NewTimeOrderedID,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Load waits for the load delay then reads the three keys. Missing or
// unreadable collections fall back to the seed data and a missing name to
// the default one. The only error is ctx being cancelled.
func (a *Adapter) Load(ctx context.Context) (Snapshot, error) {
	if a.loadDelay > 0 {
		select {
		case <-ctx.Done():
			return Snapshot{}, fmt.Errorf("load cancelled: %w", ctx.Err())
		case <-time.After(a.loadDelay):
		}
	}

	var snap Snapshot
	warn := func(format string, args ...any) {
		msg := fmt.Sprintf(format, args...)
		snap.Warnings = append(snap.Warnings, msg)
		log.Warn(msg)
	}

	raw, found := a.read(ctx, KeyRecipes, warn)
	if found {
		recipes, err := a.decodeRecipes(raw, warn)
		if err != nil {
			warn("stored recipes unreadable, using seed data: %v", err)
			recipes = seed.Recipes()
		}
		snap.Recipes = recipes
	} else {
		snap.Recipes = seed.Recipes()
	}

	raw, found = a.read(ctx, KeyInvoices, warn)
	if found {
		invoices, err := a.decodeInvoices(raw, warn)
		if err != nil {
			warn("stored invoices unreadable, using seed data: %v", err)
			invoices = seed.Invoices()
		}
		snap.Invoices = invoices
	} else {
		snap.Invoices = seed.Invoices()
	}

	raw, found = a.read(ctx, KeyUser, warn)
	if found && raw != "" {
		snap.DisplayName = raw
	} else {
		snap.DisplayName = a.defaultName
	}

	log.WithFields(logrus.Fields{
		"recipes":  len(snap.Recipes),
		"invoices": len(snap.Invoices),
		"warnings": len(snap.Warnings),
	}).Info("State loaded from storage")
	return snap, nil
}

// read fetches a key, reporting backend failures as warnings
func (a *Adapter) read(ctx context.Context, key string, warn func(string, ...any)) (string, bool) {
	raw, found, err := a.kv.Get(ctx, key)
	if err != nil {
		warn("storage read of %s failed, using defaults: %v", key, err)
		return "", false
	}
	return raw, found
}

// MarkLoaded enables Save. Until then saves are skipped so empty startup
// state never overwrites stored data.
func (a *Adapter) MarkLoaded() {
	a.loaded.Store(true)
}

// Loaded reports whether hydration has completed
func (a *Adapter) Loaded() bool {
	return a.loaded.Load()
}

// Save writes value under key. The display name is stored as a plain string,
// everything else as JSON. Saves before MarkLoaded are skipped.
func (a *Adapter) Save(ctx context.Context, key string, value any) error {
	if !a.Loaded() {
		log.WithField("key", key).Debug("Skipping save before load completed")
		return nil
	}

	var payload string
	if s, ok := value.(string); ok && key == KeyUser {
		payload = s
	} else {
		b, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", key, err)
		}
		payload = string(b)
	}

	if err := a.kv.Set(ctx, key, payload); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	log.WithFields(logrus.Fields{"key": key, "bytes": len(payload)}).Debug("Saved to storage")
	return nil
}

// Hydrate loads the stored state into store, subscribes the adapter so later
// changes are saved, then marks it loaded.
func (a *Adapter) Hydrate(ctx context.Context, store *state.Store) (Snapshot, error) {
	snap, err := a.Load(ctx)
	if err != nil {
		return snap, err
	}
	store.Dispatch(state.Hydrate{
		Recipes:     snap.Recipes,
		Invoices:    snap.Invoices,
		DisplayName: snap.DisplayName,
	})
	a.Attach(store)
	a.MarkLoaded()
	return snap, nil
}

// Attach subscribes the adapter to store: whichever of recipes, invoices or
// display name a transition changed is saved. Each save is bounded by the
// save timeout. Failures are logged as warnings and never interrupt the caller.
func (a *Adapter) Attach(store *state.Store) {
	store.Subscribe(func(prev, next state.State) {
		if !sameSlice(prev.Recipes, next.Recipes) {
			a.saveOrWarn(KeyRecipes, next.Recipes)
		}
		if !sameSlice(prev.Invoices, next.Invoices) {
			a.saveOrWarn(KeyInvoices, next.Invoices)
		}
		if prev.DisplayName != next.DisplayName {
			a.saveOrWarn(KeyUser, next.DisplayName)
		}
	})
}

func (a *Adapter) saveOrWarn(key string, value any) {
	ctx := context.Background()
	if a.saveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.saveTimeout)
		defer cancel()
	}
	if err := a.Save(ctx, key, value); err != nil {
		log.WithError(err).WithField("key", key).Warn("Could not persist state change")
	}
}

// sameSlice reports whether two slices share backing storage and length.
// Reduce rebuilds every slice it changes, so this detects a change.
func sameSlice[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}
