package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/99minutos/dpd-compiler/internal/core/domain"
	"github.com/99minutos/dpd-compiler/internal/core/ports"
)

type stubOperatorRepo struct {
	operators map[string]*domain.Operator
}

func newStubOperatorRepo() *stubOperatorRepo {
	return &stubOperatorRepo{operators: make(map[string]*domain.Operator)}
}

func (r *stubOperatorRepo) Create(_ context.Context, op *domain.Operator) (*domain.Operator, error) {
	if _, exists := r.operators[op.Username]; exists {
		return nil, domain.ErrOperatorExists
	}
	stored := *op
	stored.ID = op.Username
	r.operators[op.Username] = &stored
	out := stored
	return &out, nil
}

func (r *stubOperatorRepo) FindByUsername(_ context.Context, username string) (*domain.Operator, error) {
	op, ok := r.operators[username]
	if !ok {
		return nil, domain.ErrOperatorNotFound
	}
	out := *op
	return &out, nil
}

func newTestAuthService() *AuthService {
	return NewAuthService(newStubOperatorRepo(), "secret", time.Hour, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	svc := newTestAuthService()

	op, err := svc.Register(context.Background(), "label-printer", "pass123", domain.RoleOperator)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if op.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if op.Role != domain.RoleOperator {
		t.Fatalf("unexpected role: %s", op.Role)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newTestAuthService()

	if _, err := svc.Register(context.Background(), "", "pass", domain.RoleOperator); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	_, err := svc.Register(context.Background(), "bob", "pass", "client")
	if !errors.Is(err, domain.ErrInvalidEnumValue) {
		t.Fatalf("expected invalid role, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newTestAuthService()

	_, _ = svc.Register(context.Background(), "bob", "pass", domain.RoleOperator)
	if _, err := svc.Register(context.Background(), "bob", "pass2", domain.RoleOperator); err != domain.ErrOperatorExists {
		t.Fatalf("expected ErrOperatorExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := newTestAuthService()

	if _, err := svc.Register(context.Background(), "carol", "s3cret", domain.RoleAdmin); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, op, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if op == nil || op.Username != "carol" {
		t.Fatalf("unexpected operator: %+v", op)
	}

	claims := &ports.OperatorClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Role != domain.RoleAdmin || !claims.IsAdmin() {
		t.Fatalf("expected role %s, got %v", domain.RoleAdmin, claims.Role)
	}
	if claims.Username != "carol" {
		t.Fatalf("expected username claim, got %v", claims.Username)
	}
	if claims.Subject != op.ID {
		t.Fatalf("expected subject %q, got %q", op.ID, claims.Subject)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		t.Fatalf("expected a future expiry, got %v", claims.ExpiresAt)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc := newTestAuthService()

	_, _ = svc.Register(context.Background(), "dave", "goodpass", domain.RoleOperator)
	if _, _, err := svc.Login(context.Background(), "dave", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownOperator(t *testing.T) {
	svc := newTestAuthService()

	if _, _, err := svc.Login(context.Background(), "ghost", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
