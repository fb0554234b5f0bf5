package state

import (
	"sync"

	"github.com/franciscosanchezn/truckplate-api/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// Listener is called after every state transition with the previous and next state
type Listener func(prev, next State)

// IDFunc generates entity ids
type IDFunc func() string

// Option configures a Store
type Option func(*Store)

// WithIDFunc overrides the id generator
func WithIDFunc(fn IDFunc) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// Store owns the current State and applies actions to it through Reduce.
// Safe for concurrent use; listeners run outside the lock, in dispatch order.
type Store struct {
	mu        sync.RWMutex
	dispatch  sync.Mutex
	state     State
	listeners []Listener
	newID     IDFunc
}

// NewStore creates a store holding the initial, not yet hydrated state
func NewStore(opts ...Option) *Store {
	s := &Store{
		state: Initial(),
		newID: NewTimeOrderedID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewTimeOrderedID returns a UUIDv7, whose leading bits are the wall clock
func NewTimeOrderedID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Subscribe registers a listener for future transitions
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Snapshot returns the current state
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies an action and notifies listeners. Returns the next state.
func (s *Store) Dispatch(action Action) State {
	_, next := s.apply(action)
	return next
}

func (s *Store) apply(action Action) (State, State) {
	// serialize whole transitions so listeners observe them in order
	s.dispatch.Lock()
	defer s.dispatch.Unlock()

	s.mu.Lock()
	prev := s.state
	next := Reduce(prev, action)
	s.state = next
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	log.WithField("action", actionName(action)).Debug("State transition applied")
	for _, l := range listeners {
		l(prev, next)
	}
	return prev, next
}

// AddRecipe assigns fresh ids to the recipe and any ingredient without one,
// prepends it and returns the new recipe id.
func (s *Store) AddRecipe(r models.Recipe) string {
	r.ID = s.newID()
	ingredients := make([]models.Ingredient, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		if ing.ID == "" {
			ing.ID = s.newID()
		}
		ingredients[i] = ing
	}
	r.Ingredients = ingredients
	s.Dispatch(AddRecipe{Recipe: r})
	return r.ID
}

// RemoveRecipe deletes a recipe. Returns false when id was not present.
func (s *Store) RemoveRecipe(id string) bool {
	prev, next := s.apply(RemoveRecipe{ID: id})
	return len(next.Recipes) < len(prev.Recipes)
}

// AddInvoice assigns a fresh id, defaults the status to pending and
// prepends the invoice. Returns the new id.
func (s *Store) AddInvoice(inv models.Invoice) string {
	inv.ID = s.newID()
	if inv.Status == "" {
		inv.Status = models.InvoicePending
	}
	if inv.Items == nil {
		inv.Items = []models.LineItem{}
	}
	s.Dispatch(AddInvoice{Invoice: inv})
	return inv.ID
}

// RemoveInvoice deletes an invoice. Returns false when id was not present.
func (s *Store) RemoveInvoice(id string) bool {
	prev, next := s.apply(RemoveInvoice{ID: id})
	return len(next.Invoices) < len(prev.Invoices)
}

// FindRecipe looks up a recipe by id
func (s *Store) FindRecipe(id string) (models.Recipe, bool) {
	for _, r := range s.Snapshot().Recipes {
		if r.ID == id {
			return r, true
		}
	}
	return models.Recipe{}, false
}

func actionName(a Action) string {
	switch a.(type) {
	case Hydrate:
		return "hydrate"
	case AddRecipe:
		return "add_recipe"
	case RemoveRecipe:
		return "remove_recipe"
	case AddInvoice:
		return "add_invoice"
	case RemoveInvoice:
		return "remove_invoice"
	case SetDisplayName:
		return "set_display_name"
	case ToggleDarkMode:
		return "toggle_dark_mode"
	case SetDarkMode:
		return "set_dark_mode"
	}
	return "unknown"
}
