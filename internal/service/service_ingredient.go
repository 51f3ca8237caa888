package service

import (
	"context"
	"fmt"

	"github.com/mkarev/recipebox/internal/logger"
	"github.com/mkarev/recipebox/internal/store"
	"github.com/mkarev/recipebox/models"
)

// ingredientService is the concrete implementation of IngredientService.
type ingredientService struct {
	ingredientRepository store.IngredientRepository
	logger               *logger.Logger
}

// NewIngredientService constructs an IngredientService over the given
// repository.
func NewIngredientService(ingredientRepository store.IngredientRepository, logger *logger.Logger) IngredientService {
	return &ingredientService{
		ingredientRepository: ingredientRepository,
		logger:               logger,
	}
}

// ListIngredients returns the caller's ingredients ordered by name.
func (i *ingredientService) ListIngredients(ctx context.Context, userID int64) ([]models.Ingredient, error) {
	log := logger.FromContext(ctx)

	ingredients, err := i.ingredientRepository.ListIngredients(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("ingredient listing ended with error")
		return nil, fmt.Errorf("ingredient listing ended with error: %w", err)
	}

	return ingredients, nil
}

// RenameIngredient changes the name of one owned ingredient.
//
// Returns ErrInvalidDataProvided for an empty name and
// store.ErrIngredientNotFound when (ingredientID, userID) matches no row.
func (i *ingredientService) RenameIngredient(ctx context.Context, userID, ingredientID int64, name string) (models.Ingredient, error) {
	if name == "" {
		return models.Ingredient{}, ErrInvalidDataProvided
	}

	return i.ingredientRepository.UpdateIngredient(ctx, models.Ingredient{
		ID:     ingredientID,
		UserID: userID,
		Name:   name,
	})
}

// DeleteIngredient removes one owned ingredient; join rows referencing it
// are detached by the storage layer.
func (i *ingredientService) DeleteIngredient(ctx context.Context, userID, ingredientID int64) error {
	return i.ingredientRepository.DeleteIngredient(ctx, userID, ingredientID)
}
