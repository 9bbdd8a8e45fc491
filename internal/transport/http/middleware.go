package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tripverse/travel-api/internal/util"
)

const contextClaimsKey = "auth.claims"

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get("Authorization")
	if strings.TrimSpace(header) == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

func RequireAuth(tokens *util.JWTManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, util.Fail("missing or invalid authorization header"))
			}
			claims, err := tokens.Parse(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, util.Fail("invalid or expired token"))
			}
			c.Set(contextClaimsKey, claims)
			return next(c)
		}
	}
}

// OptionalAuth attaches claims when a valid token is present but lets the
// request through anonymously otherwise.
func OptionalAuth(tokens *util.JWTManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token, ok := bearerToken(c); ok {
				if claims, err := tokens.Parse(token); err == nil {
					c.Set(contextClaimsKey, claims)
				}
			}
			return next(c)
		}
	}
}

func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := CurrentClaims(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, util.Fail("authentication required"))
			}
			if !claims.IsAdmin {
				return c.JSON(http.StatusForbidden, util.Fail("admin privileges required"))
			}
			return next(c)
		}
	}
}

func CurrentClaims(c echo.Context) (*util.Claims, bool) {
	claims, ok := c.Get(contextClaimsKey).(*util.Claims)
	return claims, ok && claims != nil
}
