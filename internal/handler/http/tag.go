package http

import (
	"encoding/json"
	"net/http"

	"github.com/mkarev/recipebox/internal/app"
	"github.com/mkarev/recipebox/internal/logger"
	"github.com/mkarev/recipebox/internal/utils"
	"github.com/mkarev/recipebox/models"
)

func (h *Handler) listTags(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	tags, err := h.services.TagService.ListTags(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tags, http.StatusOK)
}

func (h *Handler) renameTag(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	tagID, ok := idFromRequest(w, r)
	if !ok {
		return
	}

	var request models.RenameRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	tag, err := h.services.TagService.RenameTag(r.Context(), userID, tagID, request.Name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tag, http.StatusOK)
}

func (h *Handler) deleteTag(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	tagID, ok := idFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.TagService.DeleteTag(r.Context(), userID, tagID); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
