package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/99minutos/dpd-compiler/internal/core/domain"
	"github.com/99minutos/dpd-compiler/internal/core/ports"
)

const operatorKey = "operator"

// Auth validates an HS256 operator token and stores its claims in the echo
// context. Tokens naming a role outside domain.Roles are rejected.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	keyFunc := func(*jwt.Token) (any, error) { return []byte(jwtSecret), nil }

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			scheme, raw, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := &ports.OperatorClaims{}
			tkn, err := parser.ParseWithClaims(raw, claims, keyFunc)
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if claims.Username == "" || !domain.Roles.Contains(claims.Role) {
				return echo.NewHTTPError(http.StatusUnauthorized, "token does not name an operator")
			}

			c.Set(operatorKey, claims)
			return next(c)
		}
	}
}

// OperatorFrom returns the claims Auth stored for the current request.
func OperatorFrom(c echo.Context) (*ports.OperatorClaims, bool) {
	claims, ok := c.Get(operatorKey).(*ports.OperatorClaims)
	return claims, ok && claims != nil
}
