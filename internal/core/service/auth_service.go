package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/99minutos/dpd-compiler/internal/core/domain"
	"github.com/99minutos/dpd-compiler/internal/core/ports"
)

const defaultTokenTTL = 24 * time.Hour

// AuthService registers API operators and signs the HS256 tokens the API
// middleware accepts.
type AuthService struct {
	repo      ports.OperatorRepository
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.OperatorRepository, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Register creates an operator with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, username, password, role string) (*domain.Operator, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if _, err := domain.Roles.Validate(role); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register operator: %w", err)
	}

	created, err := s.repo.Create(ctx, &domain.Operator{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", username).Str("role", role).Msg("operator registered")
	return created, nil
}

// Login checks the password and returns a signed token. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Operator, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	op, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, domain.ErrOperatorNotFound) {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(password)) != nil {
		s.log.Warn().Str("username", username).Msg("login rejected")
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.signToken(op)
	if err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}
	return token, op, nil
}

func (s *AuthService) signToken(op *domain.Operator) (string, error) {
	now := time.Now()
	claims := ports.OperatorClaims{
		Username: op.Username,
		Role:     op.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   op.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
