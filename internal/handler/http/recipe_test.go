package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/mkarev/recipebox/internal/service"
	"github.com/mkarev/recipebox/internal/store"
	"github.com/mkarev/recipebox/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRecipeServices wires an always-authenticated auth mock next to the
// given recipe mock.
func newRecipeServices(recipes *mockRecipeService) *service.Services {
	return &service.Services{
		AuthService:   &mockAuthService{parseTokenFn: authedParseToken(42)},
		RecipeService: recipes,
	}
}

func TestListRecipes_Success(t *testing.T) {
	recipes := &mockRecipeService{
		listFn: func(_ context.Context, userID int64, filter store.RecipeFilter) ([]models.RecipeSummary, error) {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, store.RecipeFilter{}, filter)
			return []models.RecipeSummary{
				{ID: 2, Title: "second", TimeMinutes: 10, Price: "3.50"},
				{ID: 1, Title: "first", TimeMinutes: 7, Price: "7.90"},
			}, nil
		},
	}
	h := newTestHandler(t, newRecipeServices(recipes))

	rec := doRequest(h, authedRequest(http.MethodGet, "/api/recipe/recipes", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var summaries []models.RecipeSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	require.Len(t, summaries, 2)
	// the summary form carries no description or link keys at all
	assert.NotContains(t, rec.Body.String(), "description")
	assert.NotContains(t, rec.Body.String(), "link")
}

func TestListRecipes_FilterParamsForwarded(t *testing.T) {
	recipes := &mockRecipeService{
		listFn: func(_ context.Context, _ int64, filter store.RecipeFilter) ([]models.RecipeSummary, error) {
			assert.Equal(t, "curry", filter.TagName)
			assert.Equal(t, "prawns", filter.IngredientName)
			return []models.RecipeSummary{}, nil
		},
	}
	h := newTestHandler(t, newRecipeServices(recipes))

	rec := doRequest(h, authedRequest(http.MethodGet, "/api/recipe/recipes?tags=curry&ingredients=prawns", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetRecipe_Success(t *testing.T) {
	recipes := &mockRecipeService{
		getFn: func(_ context.Context, userID, recipeID int64) (models.Recipe, error) {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, int64(7), recipeID)
			return models.Recipe{
				ID: 7, UserID: 42, Title: "Thai Prawn Curry", TimeMinutes: 30, Price: "2.50",
				Tags:        []models.Tag{{ID: 10, Name: "Thai"}},
				Ingredients: []models.Ingredient{{ID: 20, Name: "prawns"}},
			}, nil
		},
	}
	h := newTestHandler(t, newRecipeServices(recipes))

	rec := doRequest(h, authedRequest(http.MethodGet, "/api/recipe/recipes/7", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var recipe models.Recipe
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recipe))
	assert.Equal(t, int64(7), recipe.ID)
	assert.Len(t, recipe.Tags, 1)
	assert.Len(t, recipe.Ingredients, 1)
}

func TestGetRecipe_NotOwnedLooksAbsent(t *testing.T) {
	recipes := &mockRecipeService{
		getFn: func(_ context.Context, _, _ int64) (models.Recipe, error) {
			return models.Recipe{}, store.ErrRecipeNotFound
		},
	}
	h := newTestHandler(t, newRecipeServices(recipes))

	rec := doRequest(h, authedRequest(http.MethodGet, "/api/recipe/recipes/7", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetRecipe_NonNumericID(t *testing.T) {
	h := newTestHandler(t, newRecipeServices(&mockRecipeService{}))

	rec := doRequest(h, authedRequest(http.MethodGet, "/api/recipe/recipes/not-a-number", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateRecipe_Success(t *testing.T) {
	recipes := &mockRecipeService{
		createFn: func(_ context.Context, userID int64, request models.CreateRecipeRequest) (models.Recipe, error) {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, "Thai Prawn Curry", request.Title)
			assert.Equal(t, models.Price("2.50"), request.Price)
			require.Len(t, request.Tags, 2)
			return models.Recipe{ID: 7, UserID: 42, Title: request.Title, TimeMinutes: request.TimeMinutes, Price: request.Price}, nil
		},
	}
	h := newTestHandler(t, newRecipeServices(recipes))

	body := `{"title":"Thai Prawn Curry","time_minutes":30,"price":2.50,"tags":[{"name":"Thai"},{"name":"Dinner"}]}`
	rec := doRequest(h, authedRequest(http.MethodPost, "/api/recipe/recipes", body))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"price":2.50`)
}

func TestCreateRecipe_RequiresAuth(t *testing.T) {
	h := newTestHandler(t, newRecipeServices(&mockRecipeService{}))

	rec := doRequest(h, authedRequestWithoutToken(http.MethodPost, "/api/recipe/recipes", `{"title":"x"}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateRecipe_PatchAndPutShareSemantics(t *testing.T) {
	for _, method := range []string{http.MethodPatch, http.MethodPut} {
		recipes := &mockRecipeService{
			updateFn: func(_ context.Context, userID, recipeID int64, request models.UpdateRecipeRequest) (models.Recipe, error) {
				require.NotNil(t, request.Title)
				assert.Nil(t, request.TimeMinutes)
				assert.Nil(t, request.Tags)
				return models.Recipe{ID: recipeID, UserID: userID, Title: *request.Title}, nil
			},
		}
		h := newTestHandler(t, newRecipeServices(recipes))

		rec := doRequest(h, authedRequest(method, "/api/recipe/recipes/7", `{"title":"renamed"}`))

		assert.Equal(t, http.StatusOK, rec.Code, method)
	}
}

func TestUpdateRecipe_OwnerFieldsInPayloadIgnored(t *testing.T) {
	recipes := &mockRecipeService{
		updateFn: func(_ context.Context, userID, recipeID int64, request models.UpdateRecipeRequest) (models.Recipe, error) {
			// the acting user comes from the token, never from the body
			assert.Equal(t, int64(42), userID)
			require.NotNil(t, request.Title)
			return models.Recipe{ID: recipeID, UserID: userID, Title: *request.Title, Price: "2.50"}, nil
		},
	}
	h := newTestHandler(t, newRecipeServices(recipes))

	body := `{"title":"renamed","user":999,"user_id":999}`
	rec := doRequest(h, authedRequest(http.MethodPatch, "/api/recipe/recipes/7", body))

	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Recipe
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "renamed", updated.Title)
	assert.NotContains(t, rec.Body.String(), "999")
}

func TestUpdateRecipe_EmptyTagsListReachesService(t *testing.T) {
	recipes := &mockRecipeService{
		updateFn: func(_ context.Context, _, _ int64, request models.UpdateRecipeRequest) (models.Recipe, error) {
			require.NotNil(t, request.Tags)
			assert.Empty(t, *request.Tags)
			return models.Recipe{ID: 7, Tags: []models.Tag{}}, nil
		},
	}
	h := newTestHandler(t, newRecipeServices(recipes))

	rec := doRequest(h, authedRequest(http.MethodPatch, "/api/recipe/recipes/7", `{"tags":[]}`))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteRecipe_Success(t *testing.T) {
	recipes := &mockRecipeService{
		deleteFn: func(_ context.Context, userID, recipeID int64) error {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, int64(7), recipeID)
			return nil
		},
	}
	h := newTestHandler(t, newRecipeServices(recipes))

	rec := doRequest(h, authedRequest(http.MethodDelete, "/api/recipe/recipes/7", ""))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteRecipe_NotOwned(t *testing.T) {
	recipes := &mockRecipeService{
		deleteFn: func(_ context.Context, _, _ int64) error {
			return store.ErrRecipeNotFound
		},
	}
	h := newTestHandler(t, newRecipeServices(recipes))

	rec := doRequest(h, authedRequest(http.MethodDelete, "/api/recipe/recipes/7", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
