package service

import (
	"context"

	"github.com/mkarev/recipebox/internal/store"
	"github.com/mkarev/recipebox/models"
)

// AuthService covers the account lifecycle: registration, credential
// verification, token issuance and parsing, and profile management.
type AuthService interface {
	Register(ctx context.Context, request models.CreateUserRequest) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	GetProfile(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, request models.UpdateProfileRequest) (models.User, error)
}

// RecipeService covers recipe CRUD for the authenticated owner, including
// resolution of tag and ingredient references named in write payloads.
type RecipeService interface {
	ListRecipes(ctx context.Context, userID int64, filter store.RecipeFilter) ([]models.RecipeSummary, error)
	GetRecipe(ctx context.Context, userID, recipeID int64) (models.Recipe, error)
	CreateRecipe(ctx context.Context, userID int64, request models.CreateRecipeRequest) (models.Recipe, error)
	UpdateRecipe(ctx context.Context, userID, recipeID int64, request models.UpdateRecipeRequest) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, userID, recipeID int64) error
}

// TagService covers the owner-scoped tag collection. Tags come into being
// through recipe payloads; this service only lists, renames and deletes them.
type TagService interface {
	ListTags(ctx context.Context, userID int64) ([]models.Tag, error)
	RenameTag(ctx context.Context, userID, tagID int64, name string) (models.Tag, error)
	DeleteTag(ctx context.Context, userID, tagID int64) error
}

// IngredientService is the ingredient analogue of [TagService].
type IngredientService interface {
	ListIngredients(ctx context.Context, userID int64) ([]models.Ingredient, error)
	RenameIngredient(ctx context.Context, userID, ingredientID int64, name string) (models.Ingredient, error)
	DeleteIngredient(ctx context.Context, userID, ingredientID int64) error
}
