package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/learnhub/course-catalog/internal/core/domain"
)

func TestResolveError_DomainMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrInvalidToken, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrEmailTaken, http.StatusConflict},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrResetTokenInvalid, http.StatusBadRequest},
		{domain.ErrStoreUnavailable, http.StatusServiceUnavailable},
		{domain.ErrCorruptCredential, http.StatusInternalServerError},
		{errors.New("something else"), http.StatusInternalServerError},
		// Wrapped sentinels map the same as bare ones.
		{fmt.Errorf("insert user: %w: connection refused", domain.ErrStoreUnavailable), http.StatusServiceUnavailable},
	}

	e := echo.New()
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())

		code, _ := resolveError(tc.err, zerolog.Nop(), c)
		if code != tc.code {
			t.Errorf("resolveError(%v) = %d, want %d", tc.err, code, tc.code)
		}
	}
}

// Corrupt stored hashes must surface as a server error with a generic
// message, never as a credential hint.
func TestResolveError_CorruptHashMessage(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	_, msg := resolveError(domain.ErrCorruptCredential, zerolog.Nop(), c)
	if msg != "internal server error" {
		t.Fatalf("message leaks detail: %q", msg)
	}
}
