package service

import (
	"github.com/mkarev/recipebox/internal/config"
	"github.com/mkarev/recipebox/internal/logger"
	"github.com/mkarev/recipebox/internal/store"
)

type Services struct {
	AuthService       AuthService
	RecipeService     RecipeService
	TagService        TagService
	IngredientService IngredientService
}

func NewServices(repositories *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(repositories.UserRepository, cfg.Auth, logger),
		RecipeService:     NewRecipeService(repositories.RecipeRepository, repositories.TagRepository, repositories.IngredientRepository, logger),
		TagService:        NewTagService(repositories.TagRepository, logger),
		IngredientService: NewIngredientService(repositories.IngredientRepository, logger),
	}
}
