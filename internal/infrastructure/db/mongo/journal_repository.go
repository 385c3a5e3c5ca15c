package mongo

import (
	"context"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/99minutos/dpd-compiler/internal/core/ports"
)

const submissionsCollection = "submissions"

// JournalRepository implements ports.SubmissionJournal using MongoDB.
type JournalRepository struct {
	db *mongo.Database
}

// NewJournalRepository creates a new JournalRepository.
func NewJournalRepository(db *mongo.Database) *JournalRepository {
	return &JournalRepository{db: db}
}

// Record stores one submission. Documents are stored in their JSON form so the
// journal shows exactly what was sent, with auth stripped.
func (r *JournalRepository) Record(ctx context.Context, s ports.Submission) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"_id":         s.ID,
		"operation":   string(s.Operation),
		"duration_ms": s.Duration.Milliseconds(),
		"created_at":  s.CreatedAt,
	}

	document, err := toBSON(s.Document)
	if err != nil {
		return fmt.Errorf("record submission: %w", err)
	}
	doc["document"] = document

	if s.Response != nil && len(s.Response.Body) > 0 {
		var body any
		if err := bson.UnmarshalExtJSON(s.Response.Body, false, &body); err == nil {
			doc["response"] = body
		} else {
			doc["response_raw"] = string(s.Response.Body)
		}
	}
	if s.Err != nil {
		doc["error"] = s.Err.Error()
	}

	if _, err := r.db.Collection(submissionsCollection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("record submission: %w", err)
	}
	return nil
}

// toBSON converts a value to a BSON document through its JSON encoding.
func toBSON(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out bson.M
	if err := bson.UnmarshalExtJSON(raw, false, &out); err != nil {
		return nil, err
	}
	return out, nil
}
