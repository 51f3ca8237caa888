package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mkarev/recipebox/internal/logger"
	"github.com/mkarev/recipebox/models"
)

// ingredientRepository is the PostgreSQL-backed implementation of
// [IngredientRepository]. It mirrors the tag repository: same ownership
// scoping, same atomic get-or-create contract.
type ingredientRepository struct {
	*DB
	logger *logger.Logger
}

// NewIngredientRepository constructs an [IngredientRepository] backed by
// the provided database connection and logger.
func NewIngredientRepository(db *DB, logger *logger.Logger) IngredientRepository {
	return &ingredientRepository{
		DB:     db,
		logger: logger,
	}
}

// ListIngredients retrieves all ingredients owned by userID, ordered by name.
func (r *ingredientRepository) ListIngredients(ctx context.Context, userID int64) ([]models.Ingredient, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listIngredients, userID)
	if err != nil {
		log.Err(err).
			Str("func", "ingredientRepository.ListIngredients").
			Int64("user_id", userID).
			Msg("failed to execute query for listing ingredients")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ingredients := make([]models.Ingredient, 0, 20)
	for rows.Next() {
		var ingredient models.Ingredient
		if err := rows.Scan(&ingredient.ID, &ingredient.UserID, &ingredient.Name); err != nil {
			log.Err(err).
				Str("func", "ingredientRepository.ListIngredients").
				Int64("user_id", userID).
				Msg("failed to scan ingredient row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ingredients = append(ingredients, ingredient)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ingredients, nil
}

// GetOrCreateIngredient atomically finds or inserts the (userID, name)
// ingredient row. See [tagRepository.GetOrCreateTag] for the race contract.
func (r *ingredientRepository) GetOrCreateIngredient(ctx context.Context, userID int64, name string) (models.Ingredient, error) {
	log := logger.FromContext(ctx)

	var ingredient models.Ingredient
	err := r.DB.QueryRowContext(ctx, insertIngredientIfAbsent, userID, name).
		Scan(&ingredient.ID, &ingredient.UserID, &ingredient.Name)
	if err == nil {
		return ingredient, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).
			Str("func", "ingredientRepository.GetOrCreateIngredient").
			Int64("user_id", userID).
			Str("name", name).
			Msg("failed conditional ingredient insert")
		return models.Ingredient{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	err = r.DB.QueryRowContext(ctx, findIngredientByName, userID, name).
		Scan(&ingredient.ID, &ingredient.UserID, &ingredient.Name)
	if err != nil {
		log.Err(err).
			Str("func", "ingredientRepository.GetOrCreateIngredient").
			Int64("user_id", userID).
			Str("name", name).
			Msg("failed to re-read existing ingredient")
		return models.Ingredient{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return ingredient, nil
}

// UpdateIngredient renames the ingredient keyed by (ingredient.ID,
// ingredient.UserID).
//
// Returns [ErrIngredientNotFound] when the keyed row does not exist.
func (r *ingredientRepository) UpdateIngredient(ctx context.Context, ingredient models.Ingredient) (models.Ingredient, error) {
	log := logger.FromContext(ctx)

	var updated models.Ingredient
	err := r.DB.QueryRowContext(ctx, updateIngredient, ingredient.Name, ingredient.ID, ingredient.UserID).
		Scan(&updated.ID, &updated.UserID, &updated.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Ingredient{}, ErrIngredientNotFound
		}
		log.Err(err).
			Str("func", "ingredientRepository.UpdateIngredient").
			Int64("user_id", ingredient.UserID).
			Int64("ingredient_id", ingredient.ID).
			Msg("failed to update ingredient")
		return models.Ingredient{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteIngredient removes the ingredient keyed by (ingredientID, userID).
//
// Returns [ErrIngredientNotFound] when no row was deleted.
func (r *ingredientRepository) DeleteIngredient(ctx context.Context, userID, ingredientID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteIngredient, ingredientID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "ingredientRepository.DeleteIngredient").
			Int64("user_id", userID).
			Int64("ingredient_id", ingredientID).
			Msg("failed to delete ingredient")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrIngredientNotFound
	}

	return nil
}
