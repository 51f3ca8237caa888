// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Karev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mkarev/recipebox/internal/logger"
	"github.com/mkarev/recipebox/internal/service"
	"github.com/mkarev/recipebox/internal/store"
	"github.com/mkarev/recipebox/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn      func(ctx context.Context, request models.CreateUserRequest) (models.User, error)
	loginFn         func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn   func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn    func(ctx context.Context, tokenString string) (models.Token, error)
	getProfileFn    func(ctx context.Context, userID int64) (models.User, error)
	updateProfileFn func(ctx context.Context, userID int64, request models.UpdateProfileRequest) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	return m.registerFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	return m.getProfileFn(ctx, userID)
}

func (m *mockAuthService) UpdateProfile(ctx context.Context, userID int64, request models.UpdateProfileRequest) (models.User, error) {
	return m.updateProfileFn(ctx, userID, request)
}

// mockRecipeService implements service.RecipeService for unit tests.
type mockRecipeService struct {
	listFn   func(ctx context.Context, userID int64, filter store.RecipeFilter) ([]models.RecipeSummary, error)
	getFn    func(ctx context.Context, userID, recipeID int64) (models.Recipe, error)
	createFn func(ctx context.Context, userID int64, request models.CreateRecipeRequest) (models.Recipe, error)
	updateFn func(ctx context.Context, userID, recipeID int64, request models.UpdateRecipeRequest) (models.Recipe, error)
	deleteFn func(ctx context.Context, userID, recipeID int64) error
}

func (m *mockRecipeService) ListRecipes(ctx context.Context, userID int64, filter store.RecipeFilter) ([]models.RecipeSummary, error) {
	return m.listFn(ctx, userID, filter)
}

func (m *mockRecipeService) GetRecipe(ctx context.Context, userID, recipeID int64) (models.Recipe, error) {
	return m.getFn(ctx, userID, recipeID)
}

func (m *mockRecipeService) CreateRecipe(ctx context.Context, userID int64, request models.CreateRecipeRequest) (models.Recipe, error) {
	return m.createFn(ctx, userID, request)
}

func (m *mockRecipeService) UpdateRecipe(ctx context.Context, userID, recipeID int64, request models.UpdateRecipeRequest) (models.Recipe, error) {
	return m.updateFn(ctx, userID, recipeID, request)
}

func (m *mockRecipeService) DeleteRecipe(ctx context.Context, userID, recipeID int64) error {
	return m.deleteFn(ctx, userID, recipeID)
}

// mockTagService implements service.TagService for unit tests.
type mockTagService struct {
	listFn   func(ctx context.Context, userID int64) ([]models.Tag, error)
	renameFn func(ctx context.Context, userID, tagID int64, name string) (models.Tag, error)
	deleteFn func(ctx context.Context, userID, tagID int64) error
}

func (m *mockTagService) ListTags(ctx context.Context, userID int64) ([]models.Tag, error) {
	return m.listFn(ctx, userID)
}

func (m *mockTagService) RenameTag(ctx context.Context, userID, tagID int64, name string) (models.Tag, error) {
	return m.renameFn(ctx, userID, tagID, name)
}

func (m *mockTagService) DeleteTag(ctx context.Context, userID, tagID int64) error {
	return m.deleteFn(ctx, userID, tagID)
}

// mockIngredientService implements service.IngredientService for unit tests.
type mockIngredientService struct {
	listFn   func(ctx context.Context, userID int64) ([]models.Ingredient, error)
	renameFn func(ctx context.Context, userID, ingredientID int64, name string) (models.Ingredient, error)
	deleteFn func(ctx context.Context, userID, ingredientID int64) error
}

func (m *mockIngredientService) ListIngredients(ctx context.Context, userID int64) ([]models.Ingredient, error) {
	return m.listFn(ctx, userID)
}

func (m *mockIngredientService) RenameIngredient(ctx context.Context, userID, ingredientID int64, name string) (models.Ingredient, error) {
	return m.renameFn(ctx, userID, ingredientID, name)
}

func (m *mockIngredientService) DeleteIngredient(ctx context.Context, userID, ingredientID int64) error {
	return m.deleteFn(ctx, userID, ingredientID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// authedParseToken makes every bearer token resolve to the given user id.
func authedParseToken(userID int64) func(context.Context, string) (models.Token, error) {
	return func(_ context.Context, _ string) (models.Token, error) {
		return models.Token{UserID: userID}, nil
	}
}

// newTestHandler builds a Handler wired to the given service mocks; nil
// mocks stay nil so a test touching an unwired route panics loudly.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// doRequest routes req through the full router (middleware included) and
// returns the recorded response.
func doRequest(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// authedRequest builds a request carrying a bearer token accepted by
// authedParseToken.
func authedRequest(method, target, body string) *http.Request {
	req := authedRequestWithoutToken(method, target, body)
	req.Header.Set("Authorization", "Bearer test.jwt.token")
	return req
}

// authedRequestWithoutToken builds a request for a protected route with no
// Authorization header at all.
func authedRequestWithoutToken(method, target, body string) *http.Request {
	if body == "" {
		return httptest.NewRequest(method, target, nil)
	}
	return httptest.NewRequest(method, target, strings.NewReader(body))
}
