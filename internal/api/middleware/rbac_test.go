package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/dpd-compiler/internal/core/ports"
)

func contextWithOperator(role string) echo.Context {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPut, "/v1/config/generation-policy", nil), httptest.NewRecorder())
	if role != "" {
		c.Set(operatorKey, &ports.OperatorClaims{Username: "dispatch-desk", Role: role})
	}
	return c
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestRBAC_AdminReachesAdminEndpoint(t *testing.T) {
	c := contextWithOperator(RoleAdmin)

	called := false
	handler := RBAC(RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusNoContent)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestRBAC_Forbids(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		allowed []string
	}{
		{"operator on admin endpoint", RoleOperator, []string{RoleAdmin}},
		{"no operator claims", "", []string{RoleAdmin, RoleOperator}},
		{"unknown role is never allowed", "auditor", []string{"auditor"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := RBAC(tc.allowed...)(func(c echo.Context) error {
				t.Fatalf("should not reach next handler")
				return nil
			})

			if got := statusOf(t, handler(contextWithOperator(tc.role))); got != http.StatusForbidden {
				t.Fatalf("expected 403, got %d", got)
			}
		})
	}
}

func TestOperatorFrom_Missing(t *testing.T) {
	if _, ok := OperatorFrom(contextWithOperator("")); ok {
		t.Fatalf("expected no operator claims")
	}
}
