package service

import (
	"context"
	"fmt"

	"github.com/mkarev/recipebox/internal/logger"
	"github.com/mkarev/recipebox/internal/store"
	"github.com/mkarev/recipebox/models"
)

// recipeService is the concrete implementation of RecipeService.
//
// Besides straight CRUD delegation it owns the association workflow: recipe
// write payloads name tags and ingredients by value, and the service resolves
// each name to an owner-scoped row (creating missing ones) before swapping
// the recipe's association sets.
type recipeService struct {
	recipeRepository     store.RecipeRepository
	tagRepository        store.TagRepository
	ingredientRepository store.IngredientRepository
	logger               *logger.Logger
}

// NewRecipeService constructs a RecipeService over the given repositories.
func NewRecipeService(
	recipeRepository store.RecipeRepository,
	tagRepository store.TagRepository,
	ingredientRepository store.IngredientRepository,
	logger *logger.Logger,
) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		tagRepository:        tagRepository,
		ingredientRepository: ingredientRepository,
		logger:               logger,
	}
}

// ListRecipes returns the caller's recipes in summary form, newest first,
// optionally narrowed by the tag/ingredient name filters.
func (r *recipeService) ListRecipes(ctx context.Context, userID int64, filter store.RecipeFilter) ([]models.RecipeSummary, error) {
	log := logger.FromContext(ctx)

	recipes, err := r.recipeRepository.ListRecipes(ctx, userID, filter)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("recipe listing ended with error")
		return nil, fmt.Errorf("recipe listing ended with error: %w", err)
	}

	summaries := make([]models.RecipeSummary, 0, len(recipes))
	for _, recipe := range recipes {
		summaries = append(summaries, recipe.Summary())
	}

	return summaries, nil
}

// GetRecipe returns the full detail representation of one owned recipe.
func (r *recipeService) GetRecipe(ctx context.Context, userID, recipeID int64) (models.Recipe, error) {
	recipe, err := r.recipeRepository.GetRecipe(ctx, userID, recipeID)
	if err != nil {
		return models.Recipe{}, err
	}

	return recipe, nil
}

// CreateRecipe persists a new recipe owned by userID and attaches the tag
// and ingredient sets named in the payload. Named associations that do not
// exist yet for this owner are created on the fly.
//
// Returns ErrInvalidDataProvided when the title is empty, a numeric field
// is negative, or the price is missing or not a decimal literal.
func (r *recipeService) CreateRecipe(ctx context.Context, userID int64, request models.CreateRecipeRequest) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	if request.Title == "" || request.TimeMinutes < 0 || !request.Price.Valid() {
		return models.Recipe{}, ErrInvalidDataProvided
	}

	created, err := r.recipeRepository.CreateRecipe(ctx, models.Recipe{
		UserID:      userID,
		Title:       request.Title,
		TimeMinutes: request.TimeMinutes,
		Price:       request.Price,
		Description: request.Description,
		Link:        request.Link,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("recipe creation ended with error")
		return models.Recipe{}, fmt.Errorf("recipe creation ended with error: %w", err)
	}

	if err := r.applyTagRefs(ctx, userID, created.ID, request.Tags); err != nil {
		return models.Recipe{}, err
	}
	if err := r.applyIngredientRefs(ctx, userID, created.ID, request.Ingredients); err != nil {
		return models.Recipe{}, err
	}

	return r.recipeRepository.GetRecipe(ctx, userID, created.ID)
}

// UpdateRecipe applies a presence-aware update to one owned recipe.
//
// Scalar fields update only when their pointer is non-nil. For Tags and
// Ingredients a nil pointer leaves the current set untouched, while a
// pointer to an empty slice clears it: the payload value always replaces
// the whole set when present.
func (r *recipeService) UpdateRecipe(ctx context.Context, userID, recipeID int64, request models.UpdateRecipeRequest) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	recipe, err := r.recipeRepository.GetRecipe(ctx, userID, recipeID)
	if err != nil {
		return models.Recipe{}, err
	}

	if request.Title != nil {
		if *request.Title == "" {
			return models.Recipe{}, ErrInvalidDataProvided
		}
		recipe.Title = *request.Title
	}
	if request.TimeMinutes != nil {
		if *request.TimeMinutes < 0 {
			return models.Recipe{}, ErrInvalidDataProvided
		}
		recipe.TimeMinutes = *request.TimeMinutes
	}
	if request.Price != nil {
		if !request.Price.Valid() {
			return models.Recipe{}, ErrInvalidDataProvided
		}
		recipe.Price = *request.Price
	}
	if request.Description != nil {
		recipe.Description = *request.Description
	}
	if request.Link != nil {
		recipe.Link = *request.Link
	}

	if _, err := r.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		log.Err(err).Int64("user_id", userID).Int64("recipe_id", recipeID).Msg("recipe update ended with error")
		return models.Recipe{}, err
	}

	if request.Tags != nil {
		if err := r.applyTagRefs(ctx, userID, recipeID, *request.Tags); err != nil {
			return models.Recipe{}, err
		}
	}
	if request.Ingredients != nil {
		if err := r.applyIngredientRefs(ctx, userID, recipeID, *request.Ingredients); err != nil {
			return models.Recipe{}, err
		}
	}

	return r.recipeRepository.GetRecipe(ctx, userID, recipeID)
}

// DeleteRecipe removes one owned recipe. Attached tags and ingredients are
// detached but survive for reuse by other recipes.
func (r *recipeService) DeleteRecipe(ctx context.Context, userID, recipeID int64) error {
	return r.recipeRepository.DeleteRecipe(ctx, userID, recipeID)
}
