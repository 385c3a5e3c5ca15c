package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/dpd-compiler/internal/core/domain"
)

// Operator roles accepted by RBAC.
const (
	RoleAdmin    = domain.RoleAdmin
	RoleOperator = domain.RoleOperator
)

// RBAC lets the request through only when the operator stored by Auth holds
// one of allowedRoles. Requests without operator claims are forbidden.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		if domain.Roles.Contains(r) {
			allowed[r] = struct{}{}
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			op, ok := OperatorFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			if _, ok := allowed[op.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "role "+op.Role+" may not call this endpoint")
			}
			return next(c)
		}
	}
}
