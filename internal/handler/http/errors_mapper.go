package http

import (
	"errors"
	"net/http"

	"github.com/mkarev/recipebox/internal/app"
	"github.com/mkarev/recipebox/internal/logger"
	"github.com/mkarev/recipebox/internal/service"
	"github.com/mkarev/recipebox/internal/store"
	"github.com/mkarev/recipebox/internal/utils"
	"github.com/mkarev/recipebox/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrShortPassword:       http.StatusBadRequest,
	service.ErrWrongCredentials:    http.StatusBadRequest,
	service.ErrInactiveUser:        http.StatusBadRequest,

	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	models.ErrInvalidPrice: http.StatusBadRequest,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrRecipeNotFound:     http.StatusNotFound,
	store.ErrTagNotFound:        http.StatusNotFound,
	store.ErrIngredientNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err onto an HTTP status and writes a JSON error body.
// Server-side failures (5xx) are logged with the error; the response body
// never leaks internal details for them.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed with server error")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInternalServerError}, status)
		return
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, status)
}
