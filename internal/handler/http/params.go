package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mkarev/recipebox/internal/utils"
)

var errUserIDMissingFromContext = errors.New("authenticated user id missing from request context")

// userIDFromRequest retrieves the authenticated caller's id placed in the
// request context by the auth middleware. A missing id means the handler
// was reached without passing through auth, which is a wiring bug; the
// request is rejected with 401 and ok is false.
func userIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

// idFromRequest parses the {id} URL parameter. A non-numeric value cannot
// reference any stored row, so the request is answered with 404 and ok is
// false.
func idFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return 0, false
	}
	return id, true
}
