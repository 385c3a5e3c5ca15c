package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"

	"github.com/99minutos/dpd-compiler/internal/core/domain"
	"github.com/99minutos/dpd-compiler/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type invocation struct {
	op   ports.Operation
	docs []any
}

type stubInvoker struct {
	calls []invocation
	body  string // JSON body returned on success
	err   error
}

func (s *stubInvoker) Invoke(_ context.Context, op ports.Operation, docs ...any) (*ports.Response, error) {
	s.calls = append(s.calls, invocation{op: op, docs: docs})
	if s.err != nil {
		return nil, s.err
	}
	body := s.body
	if body == "" {
		body = `{"status":"OK"}`
	}
	return &ports.Response{Operation: op, Body: json.RawMessage(body)}, nil
}

type stubJournal struct {
	recorded []ports.Submission
	err      error
}

func (j *stubJournal) Record(_ context.Context, s ports.Submission) error {
	j.recorded = append(j.recorded, s)
	return j.err
}

type stubDedup struct {
	dupResult bool
	dupErr    error
	markErr   error
	marked    []string
}

func (d *stubDedup) IsDuplicate(_ context.Context, confirmID string) (bool, error) {
	return d.dupResult, d.dupErr
}

func (d *stubDedup) Mark(_ context.Context, confirmID string) error {
	if d.markErr != nil {
		return d.markErr
	}
	d.marked = append(d.marked, confirmID)
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func testSettings() Settings {
	return Settings{
		Production: Credentials{Username: "prod-login", Password: "prod-pass", FID: "1495"},
		Sandbox:    Credentials{Username: "test", Password: "thetu4Ee", FID: "1495"},
	}
}

func newTestContext(t *testing.T) *RequestContext {
	t.Helper()
	rc, err := NewRequestContext(testSettings())
	if err != nil {
		t.Fatalf("request context: %v", err)
	}
	return rc
}

func newTestCompiler(t *testing.T, inv ports.RemoteInvoker, journal ports.SubmissionJournal) *Compiler {
	t.Helper()
	return NewCompiler(newTestContext(t), inv, journal, zerolog.Nop())
}

func pickupFields() map[string]any {
	return map[string]any{
		"name":        "Magazyn Centralny",
		"company":     "ACME Sp. z o.o.",
		"address":     "ul. Mineralna 15",
		"city":        "Warszawa",
		"postalCode":  "02-274",
		"countryCode": "PL",
		"phone":       "+48 22 577 55 55",
	}
}

func assertKind(t *testing.T, err, kind error) *domain.Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v, got nil", kind)
	}
	de, ok := domain.AsError(err)
	if !ok || de.Kind != kind {
		t.Fatalf("expected %v, got %v", kind, err)
	}
	return de
}
