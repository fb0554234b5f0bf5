package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/truckplate-api/internal/models"
	"github.com/franciscosanchezn/truckplate-api/internal/services"
	"github.com/franciscosanchezn/truckplate-api/internal/validation"
	"github.com/gin-gonic/gin"
)

// RecipeController handles HTTP requests related to recipes
type RecipeController interface {
	// ListRecipes retrieves the filtered and sorted recipe book
	ListRecipes(c *gin.Context)
	// ListStations retrieves the station filter options
	ListStations(c *gin.Context)
	// GetRecipe retrieves a recipe by its ID
	GetRecipe(c *gin.Context)
	// CreateRecipe adds a recipe
	CreateRecipe(c *gin.Context)
	// DeleteRecipe deletes a recipe by its ID
	DeleteRecipe(c *gin.Context)
}

type recipeController struct {
	service services.RecipeService
}

// NewRecipeController creates a new instance of RecipeController
func NewRecipeController(service services.RecipeService) RecipeController {
	return &recipeController{service: service}
}

// ListRecipes godoc
// @Summary List recipes
// @Description List recipes with their cost per serving, suggested price and margin
// @Tags recipes
// @Produce json
// @Param q query string false "Case-insensitive search over name and description"
// @Param station query string false "Prep station, or all"
// @Param sort query string false "Sort by name or cost"
// @Success 200 {array} models.RecipeView
// @Failure 503 {object} models.APIError
// @Router /api/v1/recipes [get]
func (c *recipeController) ListRecipes(ctx *gin.Context) {
	views := c.service.ListRecipes(ctx.Query("q"), ctx.DefaultQuery("station", models.StationAll), ctx.Query("sort"))
	ctx.JSON(http.StatusOK, views)
}

// ListStations godoc
// @Summary List station filters
// @Description "all" followed by each station used by a recipe
// @Tags recipes
// @Produce json
// @Success 200 {array} string
// @Router /api/v1/recipes/stations [get]
func (c *recipeController) ListStations(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.service.Stations())
}

// GetRecipe godoc
// @Summary Get recipe by ID
// @Description Get a single recipe with its derived costs
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} models.RecipeView
// @Failure 404 {object} models.APIError
// @Router /api/v1/recipes/{id} [get]
func (c *recipeController) GetRecipe(ctx *gin.Context) {
	view, err := c.service.GetRecipe(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err, models.ErrRecipeNotFound)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// CreateRecipe godoc
// @Summary Create a recipe
// @Description Validate the recipe form and add it to the top of the book
// @Tags recipes
// @Accept json
// @Produce json
// @Param recipe body validation.RecipeForm true "Recipe form"
// @Success 201 {object} models.RecipeView
// @Failure 400 {object} models.APIError
// @Failure 429 {object} models.APIError
// @Router /api/v1/recipes [post]
func (c *recipeController) CreateRecipe(ctx *gin.Context) {
	var form validation.RecipeForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}

	view, err := c.service.CreateRecipe(form)
	if err != nil {
		respondError(ctx, err, models.ErrRecipeNotFound)
		return
	}
	ctx.JSON(http.StatusCreated, view)
}

// DeleteRecipe godoc
// @Summary Delete a recipe
// @Description Delete a recipe by its ID. Deleting an unknown ID is a no-op.
// @Tags recipes
// @Param id path string true "Recipe ID"
// @Success 204
// @Failure 429 {object} models.APIError
// @Router /api/v1/recipes/{id} [delete]
func (c *recipeController) DeleteRecipe(ctx *gin.Context) {
	if err := c.service.DeleteRecipe(ctx.Param("id")); err != nil {
		respondError(ctx, err, models.ErrRecipeNotFound)
		return
	}
	ctx.Status(http.StatusNoContent)
}
