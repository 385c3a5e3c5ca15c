package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/99minutos/dpd-compiler/internal/core/domain"
	"github.com/99minutos/dpd-compiler/internal/core/ports"
	"github.com/99minutos/dpd-compiler/internal/metrics"
)

const (
	defaultEventsLimit = 100
	defaultEventsLang  = "PL"
)

// DedupChecker abstracts the confirmation idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, confirmID string) (bool, error)
	Mark(ctx context.Context, confirmID string) error
}

type eventService struct {
	rc      *RequestContext
	invoker ports.RemoteInvoker
	dedup   DedupChecker
	log     zerolog.Logger
}

// NewEventService returns an EventService reading from the carrier's tracking
// service. dedup may be nil, in which case every confirmation is sent.
func NewEventService(
	rc *RequestContext,
	invoker ports.RemoteInvoker,
	dedup DedupChecker,
	log zerolog.Logger,
) ports.EventService {
	return &eventService{
		rc:      rc,
		invoker: invoker,
		dedup:   dedup,
		log:     log,
	}
}

// CustomerEvents fetches the next page of unconfirmed events for the account.
func (s *eventService) CustomerEvents(ctx context.Context, limit int, lang string) (*domain.EventBatch, error) {
	if limit <= 0 {
		limit = defaultEventsLimit
	}
	if lang == "" {
		lang = defaultEventsLang
	}

	resp, err := s.invoker.Invoke(ctx, ports.OpGetEventsForCustomer, limit, lang, s.rc.InfoAuth())
	if err != nil {
		metrics.EventsErrorsTotal.WithLabelValues("fetch_failed").Inc()
		return nil, fmt.Errorf("customer events: %w", err)
	}

	var batch domain.EventBatch
	if err := resp.Decode(&batch); err != nil {
		metrics.EventsErrorsTotal.WithLabelValues("fetch_failed").Inc()
		return nil, fmt.Errorf("customer events: %w", err)
	}

	s.log.Debug().
		Str("confirm_id", batch.ConfirmID).
		Int("events", len(batch.Events)).
		Msg("customer events fetched")
	return &batch, nil
}

// WaybillEvents returns the history of one parcel, or only its latest event
// when all is false.
func (s *eventService) WaybillEvents(ctx context.Context, waybill string, all bool, lang string) ([]domain.TrackingEvent, error) {
	if waybill == "" {
		return nil, domain.NewError(domain.ErrMissingSelector, "waybill", "waybill is required")
	}
	if lang == "" {
		lang = defaultEventsLang
	}
	selectType := domain.EventsSelectOnlyLast
	if all {
		selectType = domain.EventsSelectAll
	}

	resp, err := s.invoker.Invoke(ctx, ports.OpGetEventsForWaybill, waybill, selectType, lang, s.rc.InfoAuth())
	if err != nil {
		metrics.EventsErrorsTotal.WithLabelValues("fetch_failed").Inc()
		return nil, fmt.Errorf("waybill events: %w", err)
	}

	var batch domain.EventBatch
	if err := resp.Decode(&batch); err != nil {
		return nil, fmt.Errorf("waybill events: %w", err)
	}
	return batch.Events, nil
}

// ConfirmEvents acknowledges a page of customer events. A page already
// confirmed is skipped.
func (s *eventService) ConfirmEvents(ctx context.Context, confirmID string) error {
	if confirmID == "" {
		return domain.NewError(domain.ErrMissingSelector, "confirmId", "confirm id is required")
	}

	if s.dedup != nil {
		isDup, err := s.dedup.IsDuplicate(ctx, confirmID)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Str("confirm_id", confirmID).Msg("dedup check failed, confirming anyway")
		case isDup:
			metrics.EventsDedupTotal.WithLabelValues("hit").Inc()
			s.log.Debug().Str("confirm_id", confirmID).Msg("batch already confirmed")
			return nil
		default:
			metrics.EventsDedupTotal.WithLabelValues("miss").Inc()
		}
	}

	if _, err := s.invoker.Invoke(ctx, ports.OpMarkEventsAsProcessed, confirmID, s.rc.InfoAuth()); err != nil {
		metrics.EventsErrorsTotal.WithLabelValues("confirm_failed").Inc()
		return fmt.Errorf("confirm events: %w", err)
	}

	if s.dedup != nil {
		if err := s.dedup.Mark(ctx, confirmID); err != nil {
			s.log.Warn().Err(err).Str("confirm_id", confirmID).Msg("failed to set dedup key")
		}
	}

	s.log.Info().Str("confirm_id", confirmID).Msg("events confirmed")
	return nil
}
