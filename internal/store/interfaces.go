package store

import (
	"context"

	"github.com/mkarev/recipebox/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store.go -package=mock

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
}

// RecipeFilter narrows recipe listings by associated tag or ingredient
// name. Both filters are case-insensitive substring matches; empty strings
// disable the corresponding filter.
type RecipeFilter struct {
	TagName        string
	IngredientName string
}

// RecipeRepository persists recipes and their tag/ingredient associations.
// Every method is scoped to the owning user.
type RecipeRepository interface {
	ListRecipes(ctx context.Context, userID int64, filter RecipeFilter) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, userID, recipeID int64) (models.Recipe, error)
	CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	UpdateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, userID, recipeID int64) error

	// ReplaceTags and ReplaceIngredients atomically swap the recipe's
	// association set of the given category for the provided row ids.
	// Previously attached rows absent from ids are detached, never deleted.
	ReplaceTags(ctx context.Context, userID, recipeID int64, tagIDs []int64) error
	ReplaceIngredients(ctx context.Context, userID, recipeID int64, ingredientIDs []int64) error
}

// TagRepository persists user-owned tags.
//
// GetOrCreateTag is the atomic find-or-insert keyed by the storage-level
// UNIQUE (user_id, name) constraint: under concurrent identical calls
// exactly one row is created and all callers observe it.
type TagRepository interface {
	ListTags(ctx context.Context, userID int64) ([]models.Tag, error)
	GetOrCreateTag(ctx context.Context, userID int64, name string) (models.Tag, error)
	UpdateTag(ctx context.Context, tag models.Tag) (models.Tag, error)
	DeleteTag(ctx context.Context, userID, tagID int64) error
}

// IngredientRepository persists user-owned ingredients with the same
// contract as [TagRepository].
type IngredientRepository interface {
	ListIngredients(ctx context.Context, userID int64) ([]models.Ingredient, error)
	GetOrCreateIngredient(ctx context.Context, userID int64, name string) (models.Ingredient, error)
	UpdateIngredient(ctx context.Context, ingredient models.Ingredient) (models.Ingredient, error)
	DeleteIngredient(ctx context.Context, userID, ingredientID int64) error
}
