package store

import "github.com/mkarev/recipebox/internal/logger"

// Repositories bundles all entity repositories behind one constructor so
// that wiring code deals with a single value.
type Repositories struct {
	UserRepository       UserRepository
	RecipeRepository     RecipeRepository
	TagRepository        TagRepository
	IngredientRepository IngredientRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db, logger),
		RecipeRepository:     NewRecipeRepository(db, logger),
		TagRepository:        NewTagRepository(db, logger),
		IngredientRepository: NewIngredientRepository(db, logger),
	}
}
