package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mkarev/recipebox/internal/service"
	"github.com/mkarev/recipebox/models"
	"github.com/stretchr/testify/assert"
)

func TestRouter_UnknownPath(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}})

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rec := doRequest(h, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}})

	// /api/user/create only accepts POST
	req := httptest.NewRequest(http.MethodGet, "/api/user/create", nil)
	rec := doRequest(h, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_TraceIDHeaderSet(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{ID: 1}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{SignedString: "signed"}, nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodPost, "/api/user/token", nil)
	rec := doRequest(h, req)

	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestRouter_TraceIDHeaderEchoed(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}})

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	req.Header.Set("X-Trace-ID", "client-supplied-trace")
	rec := doRequest(h, req)

	assert.Equal(t, "client-supplied-trace", rec.Header().Get("X-Trace-ID"))
}
