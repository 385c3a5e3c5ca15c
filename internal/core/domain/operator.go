package domain

import (
	"errors"
	"time"
)

// Roles carried in the bearer token's "role" claim.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// Roles lists the roles an operator account may hold.
var Roles = NewValueSet("role", RoleAdmin, RoleOperator)

var (
	ErrOperatorExists     = errors.New("operator already exists")
	ErrOperatorNotFound   = errors.New("operator not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Operator is an account allowed to call the compiler API. Admins may also
// change compiler defaults and confirm event pages.
type Operator struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
