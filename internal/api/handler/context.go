package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/learnhub/course-catalog/internal/api/middleware"
	"github.com/learnhub/course-catalog/internal/core/domain"
)

// callerContext extracts the AuthContext injected by the Authenticate
// middleware. Its presence proves the middleware ran; a miswired route
// without it is treated as unauthenticated, never as a server error.
func callerContext(c echo.Context) (domain.AuthContext, error) {
	authCtx, ok := c.Get(middleware.ContextKeyAuth).(domain.AuthContext)
	if !ok {
		return domain.AuthContext{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return authCtx, nil
}
