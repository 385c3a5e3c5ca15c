package invoker

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/dpd-compiler/internal/core/ports"
)

func TestHTTPInvoker_Success(t *testing.T) {
	var got envelope
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		var raw struct {
			Operation ports.Operation   `json:"operation"`
			Documents []json.RawMessage `json:"documents"`
		}
		_ = json.NewDecoder(r.Body).Decode(&raw)
		got.Operation = raw.Operation
		for _, d := range raw.Documents {
			got.Documents = append(got.Documents, d)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	}))
	defer srv.Close()

	inv := NewHTTPInvoker(srv.URL+"/dpd/", time.Second, zerolog.Nop())
	resp, err := inv.Invoke(context.Background(), ports.OpFindPostalCode, map[string]string{"zipCode": "00950"}, "auth")
	require.NoError(t, err)

	assert.Equal(t, "/dpd/findPostalCodeV1", path)
	assert.Equal(t, ports.OpFindPostalCode, got.Operation)
	assert.Len(t, got.Documents, 2)
	assert.Equal(t, ports.OpFindPostalCode, resp.Operation)
	assert.JSONEq(t, `{"status":"OK"}`, string(resp.Body))
}

func TestHTTPInvoker_Fault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"fault":{"code":"INCORRECT_LOGIN","message":"login failed"}}`))
	}))
	defer srv.Close()

	inv := NewHTTPInvoker(srv.URL, time.Second, zerolog.Nop())
	_, err := inv.Invoke(context.Background(), ports.OpGeneratePackagesNumbers)

	var fault *ports.RemoteFault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, "INCORRECT_LOGIN", fault.Code)
	assert.Equal(t, "login failed", fault.Message)
	assert.Equal(t, ports.OpGeneratePackagesNumbers, fault.Operation)
	assert.False(t, errors.Is(err, ErrTransport))
}

func TestHTTPInvoker_ServerErrorWithoutFault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	inv := NewHTTPInvoker(srv.URL, time.Second, zerolog.Nop())
	_, err := inv.Invoke(context.Background(), ports.OpGenerateSpedLabels)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestHTTPInvoker_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	inv := NewHTTPInvoker(url, time.Second, zerolog.Nop())
	_, err := inv.Invoke(context.Background(), ports.OpFindPostalCode)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestHTTPInvoker_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inv := NewHTTPInvoker(srv.URL, time.Second, zerolog.Nop())
	_, err := inv.Invoke(ctx, ports.OpFindPostalCode)
	assert.ErrorIs(t, err, ErrTransport)
}
