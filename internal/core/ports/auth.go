package ports

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"github.com/99minutos/dpd-compiler/internal/core/domain"
)

// OperatorRepository persists API operator accounts.
type OperatorRepository interface {
	Create(ctx context.Context, op *domain.Operator) (*domain.Operator, error)
	FindByUsername(ctx context.Context, username string) (*domain.Operator, error)
}

// AuthService registers operators and issues bearer tokens.
type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*domain.Operator, error)
	Login(ctx context.Context, username, password string) (string, *domain.Operator, error)
}

// OperatorClaims is the payload of an operator bearer token. Subject holds the
// operator id.
type OperatorClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// IsAdmin reports whether the token grants the admin role.
func (c *OperatorClaims) IsAdmin() bool {
	return c.Role == domain.RoleAdmin
}
