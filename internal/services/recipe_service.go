package services

import (
	"fmt"

	"github.com/franciscosanchezn/truckplate-api/internal/costing"
	"github.com/franciscosanchezn/truckplate-api/internal/models"
	"github.com/franciscosanchezn/truckplate-api/internal/notify"
	"github.com/franciscosanchezn/truckplate-api/internal/state"
	"github.com/franciscosanchezn/truckplate-api/internal/validation"
)

// RecipeService provides methods to browse and edit the recipe book
type RecipeService interface {
	// ListRecipes filters by search text and station, then sorts
	ListRecipes(query, station, sortBy string) []models.RecipeView
	// GetRecipe retrieves a recipe with its derived costs
	GetRecipe(id string) (models.RecipeView, error)
	// CreateRecipe validates the form and prepends the new recipe
	CreateRecipe(form validation.RecipeForm) (models.RecipeView, error)
	// DeleteRecipe removes a recipe; an unknown id is not an error
	DeleteRecipe(id string) error
	// Stations lists the station filter options
	Stations() []string
}

// recipeService is the implementation of the RecipeService interface
type recipeService struct {
	store  *state.Store
	notice *notify.Center
}

// NewRecipeService creates a new instance of RecipeService
func NewRecipeService(store *state.Store, notice *notify.Center) RecipeService {
	return &recipeService{store: store, notice: notice}
}

func (s *recipeService) ListRecipes(query, station, sortBy string) []models.RecipeView {
	recipes := state.Filter(s.store.Snapshot().Recipes, query, station)
	return costing.Views(state.Sort(recipes, sortBy))
}

func (s *recipeService) GetRecipe(id string) (models.RecipeView, error) {
	r, ok := s.store.FindRecipe(id)
	if !ok {
		return models.RecipeView{}, fmt.Errorf("recipe %s: %w", id, models.ErrNotFound)
	}
	return costing.View(r), nil
}

func (s *recipeService) CreateRecipe(form validation.RecipeForm) (models.RecipeView, error) {
	if err := validationError(validation.ValidateRecipe(form)); err != nil {
		return models.RecipeView{}, err
	}
	id := s.store.AddRecipe(form.ToRecipe())
	s.notice.Success(notify.MsgRecipeAdded)
	return s.GetRecipe(id)
}

func (s *recipeService) DeleteRecipe(id string) error {
	if s.store.RemoveRecipe(id) {
		s.notice.Success(notify.MsgRecipeDeleted)
	}
	return nil
}

func (s *recipeService) Stations() []string {
	return state.Stations(s.store.Snapshot().Recipes)
}
