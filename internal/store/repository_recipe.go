package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mkarev/recipebox/internal/logger"
	"github.com/mkarev/recipebox/models"
)

// recipeRepository is the PostgreSQL-backed implementation of
// [RecipeRepository]. It executes all recipe CRUD and association
// operations against the "recipes", "recipe_tags" and "recipe_ingredients"
// tables using the embedded [*DB] connection.
//
// Every method filters by user_id; a missing row and a row owned by a
// different user are both reported as [ErrRecipeNotFound].
type recipeRepository struct {
	*DB
	logger *logger.Logger
}

// NewRecipeRepository constructs a [RecipeRepository] backed by the
// provided database connection and logger.
func NewRecipeRepository(db *DB, logger *logger.Logger) RecipeRepository {
	return &recipeRepository{
		DB:     db,
		logger: logger,
	}
}

// ListRecipes retrieves all recipes owned by userID, newest first, with the
// optional tag/ingredient substring filters applied.
//
// Associations are not loaded: listing serves the summary representation.
func (r *recipeRepository) ListRecipes(ctx context.Context, userID int64, filter RecipeFilter) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecipesQuery(userID, filter)
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.ListRecipes").
			Int64("user_id", userID).
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.ListRecipes").
			Int64("user_id", userID).
			Msg("failed to execute query for listing recipes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	recipes := make([]models.Recipe, 0, 20)

	for rows.Next() {
		var recipe models.Recipe

		scanErr := rows.Scan(
			&recipe.ID,
			&recipe.UserID,
			&recipe.Title,
			&recipe.TimeMinutes,
			&recipe.Price,
			&recipe.Description,
			&recipe.Link,
			&recipe.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "recipeRepository.ListRecipes").
				Int64("user_id", userID).
				Msg("failed to scan recipe row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		recipes = append(recipes, recipe)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "recipeRepository.ListRecipes").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return recipes, nil
}

// GetRecipe retrieves a single recipe owned by userID together with its
// attached tags and ingredients (the detail representation).
//
// Returns [ErrRecipeNotFound] when (recipeID, userID) matches no row.
func (r *recipeRepository) GetRecipe(ctx context.Context, userID, recipeID int64) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	var recipe models.Recipe
	row := r.DB.QueryRowContext(ctx, getRecipe, recipeID, userID)

	err := row.Scan(
		&recipe.ID,
		&recipe.UserID,
		&recipe.Title,
		&recipe.TimeMinutes,
		&recipe.Price,
		&recipe.Description,
		&recipe.Link,
		&recipe.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Recipe{}, ErrRecipeNotFound
		}
		log.Err(err).
			Str("func", "recipeRepository.GetRecipe").
			Int64("user_id", userID).
			Int64("recipe_id", recipeID).
			Msg("failed to scan recipe row")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if recipe.Tags, err = r.loadTags(ctx, recipe.ID); err != nil {
		return models.Recipe{}, err
	}
	if recipe.Ingredients, err = r.loadIngredients(ctx, recipe.ID); err != nil {
		return models.Recipe{}, err
	}

	return recipe, nil
}

// CreateRecipe persists a bare recipe row (no associations) and returns it
// with server-assigned fields populated. Association attachment is a
// separate step via [recipeRepository.ReplaceTags] and
// [recipeRepository.ReplaceIngredients] because it needs the recipe id.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createRecipe,
		recipe.UserID, recipe.Title, recipe.TimeMinutes, recipe.Price, recipe.Description, recipe.Link)

	err := row.Scan(
		&recipe.ID,
		&recipe.UserID,
		&recipe.Title,
		&recipe.TimeMinutes,
		&recipe.Price,
		&recipe.Description,
		&recipe.Link,
		&recipe.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.CreateRecipe").
			Int64("user_id", recipe.UserID).
			Msg("failed to insert recipe")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return recipe, nil
}

// UpdateRecipe persists the full set of mutable recipe fields for the row
// keyed by (recipe.ID, recipe.UserID). The owner can never change: user_id
// is a predicate, not an assignment.
//
// Returns [ErrRecipeNotFound] when the keyed row does not exist.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, updateRecipe,
		recipe.Title, recipe.TimeMinutes, recipe.Price, recipe.Description, recipe.Link,
		recipe.ID, recipe.UserID)

	var updated models.Recipe
	err := row.Scan(
		&updated.ID,
		&updated.UserID,
		&updated.Title,
		&updated.TimeMinutes,
		&updated.Price,
		&updated.Description,
		&updated.Link,
		&updated.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Recipe{}, ErrRecipeNotFound
		}
		log.Err(err).
			Str("func", "recipeRepository.UpdateRecipe").
			Int64("user_id", recipe.UserID).
			Int64("recipe_id", recipe.ID).
			Msg("failed to update recipe")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteRecipe removes the recipe keyed by (recipeID, userID). Join rows
// are detached by the ON DELETE CASCADE constraint; tag and ingredient rows
// remain untouched.
//
// Returns [ErrRecipeNotFound] when no row was deleted.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, userID, recipeID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteRecipe, recipeID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.DeleteRecipe").
			Int64("user_id", userID).
			Int64("recipe_id", recipeID).
			Msg("failed to delete recipe")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecipeNotFound
	}

	return nil
}

// ReplaceTags swaps the recipe's attached tag set for tagIDs inside one
// transaction: verify ownership, detach everything, attach the new set.
// All-or-nothing: a failure at any step leaves the previous set visible.
func (r *recipeRepository) ReplaceTags(ctx context.Context, userID, recipeID int64, tagIDs []int64) error {
	return r.replaceAssociations(ctx, userID, recipeID, tagIDs, detachAllRecipeTags, attachRecipeTag)
}

// ReplaceIngredients is the ingredient analogue of [recipeRepository.ReplaceTags].
func (r *recipeRepository) ReplaceIngredients(ctx context.Context, userID, recipeID int64, ingredientIDs []int64) error {
	return r.replaceAssociations(ctx, userID, recipeID, ingredientIDs, detachAllRecipeIngredients, attachRecipeIngredient)
}

func (r *recipeRepository) replaceAssociations(ctx context.Context, userID, recipeID int64, ids []int64, detachQuery, attachQuery string) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.replaceAssociations").
			Int64("user_id", userID).
			Int64("recipe_id", recipeID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// ownership check inside the transaction so the replacement cannot be
	// applied to another user's recipe
	var ownedID int64
	if err := tx.QueryRowContext(ctx, checkRecipeOwned, recipeID, userID).Scan(&ownedID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRecipeNotFound
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if _, err := tx.ExecContext(ctx, detachQuery, recipeID); err != nil {
		log.Err(err).
			Str("func", "recipeRepository.replaceAssociations").
			Int64("recipe_id", recipeID).
			Msg("failed to detach existing associations")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for _, id := range ids {
		if _, err := tx.ExecContext(ctx, attachQuery, recipeID, id); err != nil {
			log.Err(err).
				Str("func", "recipeRepository.replaceAssociations").
				Int64("recipe_id", recipeID).
				Int64("attached_id", id).
				Msg("failed to attach association")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *recipeRepository) loadTags(ctx context.Context, recipeID int64) ([]models.Tag, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getRecipeTags, recipeID)
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.loadTags").
			Int64("recipe_id", recipeID).
			Msg("failed to query recipe tags")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tags := make([]models.Tag, 0, 8)
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.UserID, &tag.Name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tags, nil
}

func (r *recipeRepository) loadIngredients(ctx context.Context, recipeID int64) ([]models.Ingredient, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getRecipeIngredients, recipeID)
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.loadIngredients").
			Int64("recipe_id", recipeID).
			Msg("failed to query recipe ingredients")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ingredients := make([]models.Ingredient, 0, 8)
	for rows.Next() {
		var ingredient models.Ingredient
		if err := rows.Scan(&ingredient.ID, &ingredient.UserID, &ingredient.Name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ingredients = append(ingredients, ingredient)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ingredients, nil
}
