package domain

import "time"

// TrackingEvent is a parcel status event reported by the carrier's tracking service.
type TrackingEvent struct {
	EventID     string    `json:"eventId" bson:"event_id"`
	Waybill     string    `json:"waybill" bson:"waybill"`
	Code        string    `json:"businessCode" bson:"code"`
	Description string    `json:"description" bson:"description"`
	Depot       string    `json:"depot,omitempty" bson:"depot,omitempty"`
	Country     string    `json:"country,omitempty" bson:"country,omitempty"`
	Timestamp   time.Time `json:"eventTime" bson:"timestamp"`
}

// EventBatch is one page of customer events. ConfirmID acknowledges the whole
// page once it has been processed.
type EventBatch struct {
	ConfirmID string          `json:"confirmId"`
	Events    []TrackingEvent `json:"events"`
}
