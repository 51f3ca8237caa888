package logger

import (
	"context"
	"net/http/httptest"
	"testing"
)

func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	// must not panic even with no writer attached
	l.Info().Str("k", "v").Msg("discarded")
}

func TestGetChildLogger_Independent(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()

	if child == parent {
		t.Fatal("expected child to be a distinct logger instance")
	}
}

func TestFromContext_NoLoggerAttached(t *testing.T) {
	l := FromContext(context.Background())
	if l == nil {
		t.Fatal("expected fallback logger, got nil")
	}
}

func TestFromContext_RoundTrip(t *testing.T) {
	base := Nop()
	ctx := base.WithContext(context.Background())

	got := FromContext(ctx)
	if got == nil {
		t.Fatal("expected logger from context, got nil")
	}
}

func TestFromRequest_RoundTrip(t *testing.T) {
	base := Nop()
	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(base.WithContext(req.Context()))

	got := FromRequest(req)
	if got == nil {
		t.Fatal("expected logger from request, got nil")
	}
}
