package ports

import (
	"context"

	"github.com/99minutos/dpd-compiler/internal/core/domain"
)

// EventService reads tracking events from the carrier's info service.
type EventService interface {
	CustomerEvents(ctx context.Context, limit int, lang string) (*domain.EventBatch, error)
	WaybillEvents(ctx context.Context, waybill string, all bool, lang string) ([]domain.TrackingEvent, error)
	ConfirmEvents(ctx context.Context, confirmID string) error
}
