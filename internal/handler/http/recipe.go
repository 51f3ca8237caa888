package http

import (
	"encoding/json"
	"net/http"

	"github.com/mkarev/recipebox/internal/app"
	"github.com/mkarev/recipebox/internal/logger"
	"github.com/mkarev/recipebox/internal/store"
	"github.com/mkarev/recipebox/internal/utils"
	"github.com/mkarev/recipebox/models"
)

func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	filter := store.RecipeFilter{
		TagName:        r.URL.Query().Get("tags"),
		IngredientName: r.URL.Query().Get("ingredients"),
	}

	summaries, err := h.services.RecipeService.ListRecipes(r.Context(), userID, filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, summaries, http.StatusOK)
}

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	recipeID, ok := idFromRequest(w, r)
	if !ok {
		return
	}

	recipe, err := h.services.RecipeService.GetRecipe(r.Context(), userID, recipeID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, recipe, http.StatusOK)
}

func (h *Handler) createRecipe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var request models.CreateRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	recipe, err := h.services.RecipeService.CreateRecipe(r.Context(), userID, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("recipe_id", recipe.ID).Int64("user_id", userID).Msg("recipe created")

	utils.WriteJSON(w, recipe, http.StatusCreated)
}

func (h *Handler) updateRecipe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	recipeID, ok := idFromRequest(w, r)
	if !ok {
		return
	}

	var request models.UpdateRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	recipe, err := h.services.RecipeService.UpdateRecipe(r.Context(), userID, recipeID, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, recipe, http.StatusOK)
}

func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	recipeID, ok := idFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.RecipeService.DeleteRecipe(r.Context(), userID, recipeID); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
