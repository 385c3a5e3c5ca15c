package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/99minutos/dpd-compiler/internal/core/domain"
	"github.com/99minutos/dpd-compiler/internal/core/ports"
	"github.com/99minutos/dpd-compiler/internal/core/validation"
	"github.com/99minutos/dpd-compiler/internal/metrics"
)

// ErrNoInvoker is returned by submit methods of a compile-only Compiler.
var ErrNoInvoker = errors.New("no remote invoker configured")

const (
	kindShipment   = "shipment"
	kindLabel      = "label"
	kindPostalCode = "postal_code"
	kindConfig     = "config"
)

// Compiler turns caller input into carrier documents and, on request, submits
// them through the remote invoker.
type Compiler struct {
	rc      *RequestContext
	invoker ports.RemoteInvoker
	journal ports.SubmissionJournal
	log     zerolog.Logger
}

// NewCompiler returns a Compiler. invoker may be nil for compile-only use;
// journal may be nil when submissions need not be recorded.
func NewCompiler(rc *RequestContext, invoker ports.RemoteInvoker, journal ports.SubmissionJournal, log zerolog.Logger) *Compiler {
	return &Compiler{rc: rc, invoker: invoker, journal: journal, log: log}
}

// Context exposes the request context the compiler reads from.
func (c *Compiler) Context() *RequestContext {
	return c.rc
}

func (c *Compiler) BuildAddress(fields validation.Fields) (domain.AddressDocument, error) {
	return BuildAddress(fields)
}

func (c *Compiler) BuildPackage(fields validation.Fields) (domain.PackageDocument, error) {
	return BuildPackage(fields)
}

func (c *Compiler) BuildServices(toggles validation.Fields) (domain.ServiceOptions, error) {
	return BuildServices(toggles)
}

// SetGenerationPolicy accepts a policy name or its numeric code.
func (c *Compiler) SetGenerationPolicy(policy string) error {
	p, err := domain.ParseGenerationPolicy(policy)
	if err != nil {
		c.rejected(kindConfig, err)
		return err
	}
	c.rc.SetGenerationPolicy(p)
	c.log.Info().Str("generation_policy", string(p)).Msg("generation policy updated")
	return nil
}

// SetPickupAddress builds fields as an address and makes it the default sender.
func (c *Compiler) SetPickupAddress(fields validation.Fields) error {
	addr, err := BuildAddress(fields)
	if err != nil {
		c.rejected(kindConfig, err)
		return err
	}
	if addr.IsZero() {
		err := domain.NewError(domain.ErrMissingSenderAddress, "pickupAddress",
			"pickup address has no fields")
		c.rejected(kindConfig, err)
		return err
	}
	c.rc.SetPickupAddress(addr)
	c.log.Info().Str("city", addr.City).Str("postal_code", addr.PostalCode).Msg("pickup address updated")
	return nil
}

// resolveSender builds explicit sender fields, or falls back to the configured
// pickup address when the sender carries no values.
func (c *Compiler) resolveSender(fields validation.Fields) (domain.AddressDocument, error) {
	if len(fields) > 0 {
		addr, err := BuildAddress(fields)
		if err != nil {
			return domain.AddressDocument{}, err
		}
		if !addr.IsZero() {
			return addr, nil
		}
	}
	if addr, ok := c.rc.PickupAddress(); ok {
		return addr, nil
	}
	return domain.AddressDocument{}, domain.NewError(domain.ErrMissingSenderAddress, "senderData",
		"no sender given and no pickup address configured")
}

// submit invokes op, records the call, and returns the invoker's result unchanged.
func (c *Compiler) submit(ctx context.Context, op ports.Operation, document any, docs ...any) (*ports.Response, error) {
	if c.invoker == nil {
		return nil, ErrNoInvoker
	}

	start := time.Now()
	resp, err := c.invoker.Invoke(ctx, op, docs...)
	elapsed := time.Since(start)

	metrics.RemoteCallDuration.WithLabelValues(string(op)).Observe(elapsed.Seconds())
	metrics.RemoteCallsTotal.WithLabelValues(string(op), callResult(err)).Inc()

	if err != nil {
		c.log.Error().Err(err).Str("operation", string(op)).Dur("elapsed", elapsed).Msg("remote call failed")
	} else {
		c.log.Info().Str("operation", string(op)).Dur("elapsed", elapsed).Msg("remote call completed")
	}

	if c.journal != nil {
		entry := ports.Submission{
			ID:        uuid.NewString(),
			Operation: op,
			Document:  document,
			Response:  resp,
			Err:       err,
			Duration:  elapsed,
			CreatedAt: start.UTC(),
		}
		if jerr := c.journal.Record(ctx, entry); jerr != nil {
			c.log.Warn().Err(jerr).Str("operation", string(op)).Msg("failed to record submission")
		}
	}

	return resp, err
}

// rejected counts a local validation failure.
func (c *Compiler) rejected(kind string, err error) {
	metrics.ValidationFailuresTotal.WithLabelValues(kind, reason(err)).Inc()
	c.log.Debug().Err(err).Str("kind", kind).Msg("input rejected")
}

func callResult(err error) string {
	if err == nil {
		return "ok"
	}
	var fault *ports.RemoteFault
	if errors.As(err, &fault) {
		return "fault"
	}
	return "error"
}

func reason(err error) string {
	switch {
	case errors.Is(err, domain.ErrConfiguration):
		return "configuration"
	case errors.Is(err, domain.ErrUnknownField):
		return "unknown_field"
	case errors.Is(err, domain.ErrWrongFieldType):
		return "wrong_field_type"
	case errors.Is(err, domain.ErrInvalidEnumValue):
		return "invalid_enum_value"
	case errors.Is(err, domain.ErrInvalidPostalCode):
		return "invalid_postal_code"
	case errors.Is(err, domain.ErrMissingDependentField):
		return "missing_dependent_field"
	case errors.Is(err, domain.ErrMissingSenderAddress):
		return "missing_sender_address"
	case errors.Is(err, domain.ErrMissingSelector):
		return "missing_selector"
	case errors.Is(err, domain.ErrConflictingSelectors):
		return "conflicting_selectors"
	}
	return "other"
}
