// Package invoker implements ports.RemoteInvoker against a DPD gateway that
// owns the SOAP wire encoding.
package invoker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/dpd-compiler/internal/core/ports"
)

const (
	defaultTimeout  = 30 * time.Second
	maxResponseSize = 16 << 20
)

// ErrTransport wraps every failure to reach the gateway or read its reply.
var ErrTransport = errors.New("transport error")

// envelope is the request body POSTed to the gateway.
type envelope struct {
	Operation ports.Operation `json:"operation"`
	Documents []any           `json:"documents"`
}

type faultBody struct {
	Fault struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"fault"`
}

// HTTPInvoker POSTs one JSON envelope per operation.
type HTTPInvoker struct {
	url    string
	client *http.Client
	log    zerolog.Logger
}

// NewHTTPInvoker returns an invoker posting to url. A non-positive timeout uses
// the default.
func NewHTTPInvoker(url string, timeout time.Duration, log zerolog.Logger) *HTTPInvoker {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPInvoker{
		url:    strings.TrimRight(url, "/"),
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

// Invoke sends op with its documents. A non-2xx reply carrying a fault body is
// returned as *ports.RemoteFault; anything else that goes wrong is ErrTransport.
func (h *HTTPInvoker) Invoke(ctx context.Context, op ports.Operation, docs ...any) (*ports.Response, error) {
	payload, err := json.Marshal(envelope{Operation: op, Documents: docs})
	if err != nil {
		return nil, fmt.Errorf("invoke %s: encode: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url+"/"+string(op), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("invoke %s: %w: %v", op, ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("invoke %s: %w: %v", op, ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("invoke %s: %w: read body: %v", op, ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var fb faultBody
		if json.Unmarshal(body, &fb) == nil && (fb.Fault.Code != "" || fb.Fault.Message != "") {
			return nil, &ports.RemoteFault{Operation: op, Code: fb.Fault.Code, Message: fb.Fault.Message}
		}
		h.log.Debug().Str("operation", string(op)).Int("status", resp.StatusCode).Msg("gateway returned no fault body")
		return nil, fmt.Errorf("invoke %s: %w: status %d", op, ErrTransport, resp.StatusCode)
	}

	return &ports.Response{Operation: op, Body: json.RawMessage(body)}, nil
}
