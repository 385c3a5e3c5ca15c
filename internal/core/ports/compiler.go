package ports

import (
	"context"

	"github.com/99minutos/dpd-compiler/internal/core/domain"
	"github.com/99minutos/dpd-compiler/internal/core/validation"
)

// ShipmentInput is the caller's description of a single-parcel shipment.
// Sender may be nil or empty, in which case the configured pickup address is used.
type ShipmentInput struct {
	Package       validation.Fields `json:"package"`
	Receiver      validation.Fields `json:"receiver"`
	Services      validation.Fields `json:"services"`
	Sender        validation.Fields `json:"sender"`
	PayerType     string            `json:"payerType"`
	Ref1          string            `json:"ref1"`
	Ref2          string            `json:"ref2"`
	Ref3          string            `json:"ref3"`
	Reference     string            `json:"reference"`
	ThirdPartyFID string            `json:"thirdPartyFID"`
	LangCode      string            `json:"langCode"`
}

// LabelSelector identifies the target shipment. Exactly one field must be set.
type LabelSelector struct {
	PackageID string `json:"packageId"`
	Reference string `json:"reference"`
	Waybill   string `json:"waybill"`
}

// LabelInput is the caller's description of a label job. Empty enum fields
// take their defaults.
type LabelInput struct {
	Selector        LabelSelector     `json:"selector"`
	SessionType     string            `json:"sessionType"`
	Sender          validation.Fields `json:"sender"`
	OutputDocFormat string            `json:"outputDocFormat"`
	DocPageFormat   string            `json:"docPageFormat"`
	OutputLabelType string            `json:"outputLabelType"`
	LabelVariant    string            `json:"labelVariant"`
}

// Compiler is the public surface of the request compiler.
type Compiler interface {
	BuildAddress(fields validation.Fields) (domain.AddressDocument, error)
	BuildPackage(fields validation.Fields) (domain.PackageDocument, error)
	BuildServices(toggles validation.Fields) (domain.ServiceOptions, error)

	CompileShipment(in ShipmentInput) (*domain.ShipmentRequest, error)
	SubmitShipment(ctx context.Context, in ShipmentInput) (*Response, error)
	CompileLabel(in LabelInput) (*domain.LabelRequest, error)
	SubmitLabel(ctx context.Context, in LabelInput) (*Response, error)

	FindPostalCode(ctx context.Context, zipCode, countryCode string) (*Response, error)
	CourierOrderAvailability(ctx context.Context, zipCode, countryCode string) (*Response, error)

	SetGenerationPolicy(policy string) error
	SetPickupAddress(fields validation.Fields) error
}
