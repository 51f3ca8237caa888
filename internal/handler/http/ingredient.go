package http

import (
	"encoding/json"
	"net/http"

	"github.com/mkarev/recipebox/internal/app"
	"github.com/mkarev/recipebox/internal/logger"
	"github.com/mkarev/recipebox/internal/utils"
	"github.com/mkarev/recipebox/models"
)

func (h *Handler) listIngredients(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	ingredients, err := h.services.IngredientService.ListIngredients(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, ingredients, http.StatusOK)
}

func (h *Handler) renameIngredient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	ingredientID, ok := idFromRequest(w, r)
	if !ok {
		return
	}

	var request models.RenameRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	ingredient, err := h.services.IngredientService.RenameIngredient(r.Context(), userID, ingredientID, request.Name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, ingredient, http.StatusOK)
}

func (h *Handler) deleteIngredient(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	ingredientID, ok := idFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.IngredientService.DeleteIngredient(r.Context(), userID, ingredientID); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
