package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/learnhub/course-catalog/internal/api/metrics"
	"github.com/learnhub/course-catalog/internal/core/auth"
)

// ContextKeyAuth is the echo context key under which Authenticate stores
// the caller's domain.AuthContext.
const ContextKeyAuth = "auth_context"

// Authenticate validates the bearer token and injects the caller's
// identity into the request context. A missing header, a wrong scheme,
// and a failed verification are all the same outcome: 401. The privilege
// check lives in RequireRole and is only ever reached after this
// middleware has accepted the token.
func Authenticate(codec *auth.TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.WithLabelValues("scheme").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := codec.Verify(parts[1])
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			authCtx, err := claims.Context()
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(ContextKeyAuth, authCtx)
			return next(c)
		}
	}
}
