package handler

import (
	"encoding/json"

	"github.com/99minutos/dpd-compiler/internal/core/domain"
	"github.com/99minutos/dpd-compiler/internal/core/validation"
)

// ErrorResponse is the error envelope of every 4xx/5xx response. The API error
// handler fills Kind, Field and Allowed from domain validation errors.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Kind    string   `json:"kind,omitempty"`
	Field   string   `json:"field,omitempty"`
	Allowed []string `json:"allowed,omitempty"`
}

// --- Request / Response types ---

// labelRequest is the flat HTTP form of ports.LabelInput.
type labelRequest struct {
	PackageID       string            `json:"packageId"`
	Reference       string            `json:"reference"`
	Waybill         string            `json:"waybill"`
	SessionType     string            `json:"sessionType"`
	Sender          validation.Fields `json:"sender"`
	OutputDocFormat string            `json:"outputDocFormat"`
	DocPageFormat   string            `json:"docPageFormat"`
	OutputLabelType string            `json:"outputLabelType"`
	LabelVariant    string            `json:"labelVariant"`
}

type generationPolicyRequest struct {
	Policy string `json:"policy" validate:"required"`
}

type remoteResponse struct {
	Operation string          `json:"operation"`
	Result    json.RawMessage `json:"result"`
}

type compiledShipmentResponse struct {
	Request *domain.ShipmentRequest `json:"request"`
}

type compiledLabelResponse struct {
	Request *domain.LabelRequest `json:"request"`
}

type settingsResponse struct {
	Environment      string                  `json:"environment"`
	GenerationPolicy string                  `json:"generationPolicy"`
	PickupAddress    *domain.AddressDocument `json:"pickupAddress,omitempty"`
}

type eventBatchResponse struct {
	ConfirmID string                 `json:"confirmId"`
	Events    []domain.TrackingEvent `json:"events"`
	Count     int                    `json:"count"`
}

type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}
