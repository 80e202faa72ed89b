package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/learnhub/course-catalog/internal/core/domain"
)

// RequireRole enforces the role hierarchy: the caller's role claim must
// satisfy min (student < tutor < admin). It assumes Authenticate already
// ran; an absent context means the route was miswired and is treated as
// unauthenticated, not forbidden.
//
// The check reads only the token snapshot. An account promoted after its
// token was issued keeps its old privilege until the token expires.
func RequireRole(min domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authCtx, ok := c.Get(ContextKeyAuth).(domain.AuthContext)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication context")
			}
			if !authCtx.Role.Satisfies(min) {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient privilege")
			}
			return next(c)
		}
	}
}
