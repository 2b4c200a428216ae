package middleware

import (
	"net/http"
	"os"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/wordrush/WordRush/internal/user"
)

func SetupJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(user.JwtCustomClaims)
		},
		SigningKey: []byte(os.Getenv("JWT_SECRET")),
	})
}

// CurrentClaims extracts the verified claims set by the JWT middleware.
func CurrentClaims(c echo.Context) *user.JwtCustomClaims {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil
	}
	claims, ok := token.Claims.(*user.JwtCustomClaims)
	if !ok {
		return nil
	}
	return claims
}

// CurrentUsername returns the authenticated username, or "" when the
// request carries no valid token.
func CurrentUsername(c echo.Context) string {
	claims := CurrentClaims(c)
	if claims == nil {
		return ""
	}
	return claims.Username
}

// AdminOnly rejects requests whose token does not carry the ADMIN role.
func AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := CurrentClaims(c)
		if claims == nil || claims.Role != user.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "admin access required")
		}
		return next(c)
	}
}
