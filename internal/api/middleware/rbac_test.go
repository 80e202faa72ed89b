package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/learnhub/course-catalog/internal/core/auth"
	"github.com/learnhub/course-catalog/internal/core/domain"
)

func runGate(t *testing.T, min domain.Role, held domain.Role) (int, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyAuth, domain.AuthContext{UserID: "u1", Role: held})

	called := false
	handler := RequireRole(min)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec.Code, called
}

func TestRequireRole_Hierarchy(t *testing.T) {
	cases := []struct {
		min    domain.Role
		held   domain.Role
		passes bool
	}{
		{domain.RoleStudent, domain.RoleStudent, true},
		{domain.RoleStudent, domain.RoleTutor, true},
		{domain.RoleStudent, domain.RoleAdmin, true},
		{domain.RoleTutor, domain.RoleStudent, false},
		{domain.RoleTutor, domain.RoleTutor, true},
		{domain.RoleTutor, domain.RoleAdmin, true},
		{domain.RoleAdmin, domain.RoleStudent, false},
		{domain.RoleAdmin, domain.RoleTutor, false},
		{domain.RoleAdmin, domain.RoleAdmin, true},
	}

	for _, tc := range cases {
		code, called := runGate(t, tc.min, tc.held)
		if tc.passes {
			if !called || code != http.StatusOK {
				t.Errorf("min=%s held=%s: expected pass, got code %d", tc.min, tc.held, code)
			}
		} else {
			if called || code != http.StatusForbidden {
				t.Errorf("min=%s held=%s: expected 403, got code %d (called=%v)", tc.min, tc.held, code, called)
			}
		}
	}
}

func TestRequireRole_MissingContext(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireRole(domain.RoleStudent)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	// No identity at all is unauthenticated, not forbidden.
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

// A token issued before a promotion keeps its old role until expiry: the
// gate reads only the claim snapshot, never the store.
func TestRequireRole_StalePrivilege(t *testing.T) {
	e := echo.New()
	codec := auth.NewTokenCodec("test-secret", time.Hour)

	// Token issued while the account was still a student.
	token, err := codec.Issue("user_1", domain.RoleStudent)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	// The account is later promoted to tutor in the store; the guard has
	// no way to see that and must keep treating the caller as a student.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	chain := Authenticate(codec)(RequireRole(domain.RoleTutor)(func(c echo.Context) error {
		t.Fatalf("stale student token passed a tutor gate")
		return nil
	}))

	if err := chain(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
