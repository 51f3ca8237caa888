package service

import (
	"context"
	"fmt"

	"github.com/mkarev/recipebox/internal/logger"
	"github.com/mkarev/recipebox/models"
)

// applyTagRefs resolves each named tag to an owner-scoped row (creating
// missing ones) and swaps the recipe's attached tag set for the resolved
// ids. Duplicate names in the payload collapse to one attachment.
func (r *recipeService) applyTagRefs(ctx context.Context, userID, recipeID int64, refs []models.NameRef) error {
	log := logger.FromContext(ctx)

	tagIDs := make([]int64, 0, len(refs))
	seen := make(map[int64]struct{}, len(refs))

	for _, ref := range refs {
		if ref.Name == "" {
			return ErrInvalidDataProvided
		}

		tag, err := r.tagRepository.GetOrCreateTag(ctx, userID, ref.Name)
		if err != nil {
			log.Err(err).Int64("user_id", userID).Str("name", ref.Name).Msg("tag resolution ended with error")
			return fmt.Errorf("tag resolution ended with error: %w", err)
		}

		if _, ok := seen[tag.ID]; ok {
			continue
		}
		seen[tag.ID] = struct{}{}
		tagIDs = append(tagIDs, tag.ID)
	}

	return r.recipeRepository.ReplaceTags(ctx, userID, recipeID, tagIDs)
}

// applyIngredientRefs is the ingredient analogue of applyTagRefs.
func (r *recipeService) applyIngredientRefs(ctx context.Context, userID, recipeID int64, refs []models.NameRef) error {
	log := logger.FromContext(ctx)

	ingredientIDs := make([]int64, 0, len(refs))
	seen := make(map[int64]struct{}, len(refs))

	for _, ref := range refs {
		if ref.Name == "" {
			return ErrInvalidDataProvided
		}

		ingredient, err := r.ingredientRepository.GetOrCreateIngredient(ctx, userID, ref.Name)
		if err != nil {
			log.Err(err).Int64("user_id", userID).Str("name", ref.Name).Msg("ingredient resolution ended with error")
			return fmt.Errorf("ingredient resolution ended with error: %w", err)
		}

		if _, ok := seen[ingredient.ID]; ok {
			continue
		}
		seen[ingredient.ID] = struct{}{}
		ingredientIDs = append(ingredientIDs, ingredient.ID)
	}

	return r.recipeRepository.ReplaceIngredients(ctx, userID, recipeID, ingredientIDs)
}
