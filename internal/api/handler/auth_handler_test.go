package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/dpd-compiler/internal/core/domain"
	"github.com/99minutos/dpd-compiler/internal/core/validation"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, username, password, role string) (*domain.Operator, error)
	loginFn    func(ctx context.Context, username, password string) (string, *domain.Operator, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, password, role string) (*domain.Operator, error) {
	return s.registerFn(ctx, username, password, role)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.Operator, error) {
	return s.loginFn(ctx, username, password)
}

func newAuthEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validation.NewStructValidator()
	return e
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newAuthEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password, role string) (*domain.Operator, error) {
			if username != "label-printer" || role != domain.RoleOperator {
				t.Fatalf("unexpected args: %s %s", username, role)
			}
			return &domain.Operator{ID: "1", Username: username, Role: role, PasswordHash: "hash"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := `{"username":"label-printer","password":"long-enough","role":"operator"}`
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/v1/operators", body), rec)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "hash") {
		t.Fatalf("password hash leaked: %s", rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	op, ok := resp["operator"].(map[string]any)
	if !ok || op["username"] != "label-printer" || op["role"] != "operator" {
		t.Fatalf("unexpected operator payload: %+v", resp)
	}
}

func TestAuthHandler_Register_Rejected(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "not-json"},
		{"short password", `{"username":"bob","password":"short","role":"operator"}`},
		{"unknown role", `{"username":"bob","password":"long-enough","role":"client"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newAuthEcho()
			handler := NewAuthHandler(&stubAuthService{
				registerFn: func(context.Context, string, string, string) (*domain.Operator, error) {
					t.Fatalf("should not be called")
					return nil, nil
				},
			})

			rec := httptest.NewRecorder()
			c := e.NewContext(jsonRequest(http.MethodPost, "/v1/operators", tt.body), rec)

			err := handler.Register(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %v", err)
			}
		})
	}
}

func TestAuthHandler_Register_Exists(t *testing.T) {
	e := newAuthEcho()
	handler := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, string, string, string) (*domain.Operator, error) {
			return nil, domain.ErrOperatorExists
		},
	})

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/v1/operators",
		`{"username":"bob","password":"long-enough","role":"admin"}`), rec)

	if err := handler.Register(c); !errors.Is(err, domain.ErrOperatorExists) {
		t.Fatalf("expected ErrOperatorExists, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newAuthEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, *domain.Operator, error) {
			if username != "carol" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return "token123", &domain.Operator{Username: "carol", Role: domain.RoleAdmin}, nil
		},
	}
	handler := NewAuthHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/auth/login", `{"username":"carol","password":"secret"}`), rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newAuthEcho()
	handler := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.Operator, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	})

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/auth/login", `{"username":"carol","password":"bad"}`), rec)

	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	e := newAuthEcho()
	handler := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.Operator, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	})

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/auth/login", `{"username":"carol"}`), rec)

	err := handler.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
