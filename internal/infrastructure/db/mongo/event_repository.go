package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/dpd-compiler/internal/core/domain"
	"github.com/99minutos/dpd-compiler/internal/core/ports"
)

const eventsCollection = "status_events"

var _ ports.EventSink = (*EventRepository)(nil)

// EventRepository implements ports.EventSink using MongoDB.
type EventRepository struct {
	db *mongo.Database
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{db: db}
}

// InsertEvent persists a tracking event to the status_events audit collection.
// Events are keyed by the carrier event id, so a redelivered page does not
// produce duplicates.
func (r *EventRepository) InsertEvent(ctx context.Context, event *domain.TrackingEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"event_id":     event.EventID,
		"waybill":      event.Waybill,
		"code":         event.Code,
		"description":  event.Description,
		"timestamp":    event.Timestamp.UTC(),
		"processed_at": time.Now().UTC(),
	}
	if event.Depot != "" {
		doc["depot"] = event.Depot
	}
	if event.Country != "" {
		doc["country"] = event.Country
	}

	filter := bson.M{"event_id": event.EventID, "waybill": event.Waybill}
	update := bson.M{"$setOnInsert": doc}
	opts := options.Update().SetUpsert(true)

	if _, err := r.db.Collection(eventsCollection).UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// EnsureIndexes creates the lookup indexes used by the event audit trail.
func (r *EventRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.db.Collection(eventsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "event_id", Value: 1}, {Key: "waybill", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "waybill", Value: 1}, {Key: "timestamp", Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("event indexes: %w", err)
	}
	return nil
}
