package ports

import (
	"context"

	"github.com/99minutos/dpd-compiler/internal/core/domain"
)

// EventSink receives tracking events pulled from the carrier.
type EventSink interface {
	// InsertEvent persists an event to the audit trail. Inserting the same
	// event id twice is not an error.
	InsertEvent(ctx context.Context, event *domain.TrackingEvent) error
}
