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

func TestListTags_Success(t *testing.T) {
	tags := &mockTagService{
		listFn: func(_ context.Context, userID int64) ([]models.Tag, error) {
			assert.Equal(t, int64(42), userID)
			return []models.Tag{{ID: 10, UserID: 42, Name: "Dessert"}, {ID: 11, UserID: 42, Name: "Vegan"}}, nil
		},
	}
	h := newTestHandler(t, &service.Services{
		AuthService: &mockAuthService{parseTokenFn: authedParseToken(42)},
		TagService:  tags,
	})

	rec := doRequest(h, authedRequest(http.MethodGet, "/api/recipe/tags", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var listed []models.Tag
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Len(t, listed, 2)
}

func TestRenameTag_Success(t *testing.T) {
	tags := &mockTagService{
		renameFn: func(_ context.Context, userID, tagID int64, name string) (models.Tag, error) {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, int64(10), tagID)
			assert.Equal(t, "Comfort Food", name)
			return models.Tag{ID: tagID, UserID: userID, Name: name}, nil
		},
	}
	h := newTestHandler(t, &service.Services{
		AuthService: &mockAuthService{parseTokenFn: authedParseToken(42)},
		TagService:  tags,
	})

	rec := doRequest(h, authedRequest(http.MethodPatch, "/api/recipe/tags/10", `{"name":"Comfort Food"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Comfort Food")
}

func TestRenameTag_NotOwned(t *testing.T) {
	tags := &mockTagService{
		renameFn: func(_ context.Context, _, _ int64, _ string) (models.Tag, error) {
			return models.Tag{}, store.ErrTagNotFound
		},
	}
	h := newTestHandler(t, &service.Services{
		AuthService: &mockAuthService{parseTokenFn: authedParseToken(43)},
		TagService:  tags,
	})

	rec := doRequest(h, authedRequest(http.MethodPatch, "/api/recipe/tags/10", `{"name":"stolen"}`))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteTag_Success(t *testing.T) {
	tags := &mockTagService{
		deleteFn: func(_ context.Context, userID, tagID int64) error {
			assert.Equal(t, int64(10), tagID)
			return nil
		},
	}
	h := newTestHandler(t, &service.Services{
		AuthService: &mockAuthService{parseTokenFn: authedParseToken(42)},
		TagService:  tags,
	})

	rec := doRequest(h, authedRequest(http.MethodDelete, "/api/recipe/tags/10", ""))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRenameIngredient_Success(t *testing.T) {
	ingredients := &mockIngredientService{
		renameFn: func(_ context.Context, userID, ingredientID int64, name string) (models.Ingredient, error) {
			assert.Equal(t, int64(20), ingredientID)
			assert.Equal(t, "coriander", name)
			return models.Ingredient{ID: ingredientID, UserID: userID, Name: name}, nil
		},
	}
	h := newTestHandler(t, &service.Services{
		AuthService:       &mockAuthService{parseTokenFn: authedParseToken(42)},
		IngredientService: ingredients,
	})

	rec := doRequest(h, authedRequest(http.MethodPatch, "/api/recipe/ingredients/20", `{"name":"coriander"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "coriander")
}

func TestDeleteIngredient_NotOwned(t *testing.T) {
	ingredients := &mockIngredientService{
		deleteFn: func(_ context.Context, _, _ int64) error {
			return store.ErrIngredientNotFound
		},
	}
	h := newTestHandler(t, &service.Services{
		AuthService:       &mockAuthService{parseTokenFn: authedParseToken(43)},
		IngredientService: ingredients,
	})

	rec := doRequest(h, authedRequest(http.MethodDelete, "/api/recipe/ingredients/20", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
