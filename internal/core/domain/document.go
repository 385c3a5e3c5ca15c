package domain

import "github.com/shopspring/decimal"

// AddressDocument is the carrier's address sub-structure. Every field is
// optional; empty fields are omitted from the encoded document.
type AddressDocument struct {
	Address     string `json:"address,omitempty" xml:"address,omitempty"`
	City        string `json:"city,omitempty" xml:"city,omitempty"`
	Company     string `json:"company,omitempty" xml:"company,omitempty"`
	CountryCode string `json:"countryCode,omitempty" xml:"countryCode,omitempty"`
	Email       string `json:"email,omitempty" xml:"email,omitempty"`
	FID         string `json:"fid,omitempty" xml:"fid,omitempty"`
	Name        string `json:"name,omitempty" xml:"name,omitempty"`
	Phone       string `json:"phone,omitempty" xml:"phone,omitempty"`
	PostalCode  string `json:"postalCode,omitempty" xml:"postalCode,omitempty"`
}

// IsZero reports whether no field is set.
func (a AddressDocument) IsZero() bool {
	return a == AddressDocument{}
}

// PackageDocument describes parcel content and dimensions. It may be empty.
type PackageDocument struct {
	Content       string           `json:"content,omitempty" xml:"content,omitempty"`
	CustomerData1 string           `json:"customerData1,omitempty" xml:"customerData1,omitempty"`
	CustomerData2 string           `json:"customerData2,omitempty" xml:"customerData2,omitempty"`
	CustomerData3 string           `json:"customerData3,omitempty" xml:"customerData3,omitempty"`
	Reference     string           `json:"reference,omitempty" xml:"reference,omitempty"`
	SizeX         *int             `json:"sizeX,omitempty" xml:"sizeX,omitempty"`
	SizeY         *int             `json:"sizeY,omitempty" xml:"sizeY,omitempty"`
	SizeZ         *int             `json:"sizeZ,omitempty" xml:"sizeZ,omitempty"`
	Weight        *decimal.Decimal `json:"weight,omitempty" xml:"weight,omitempty"`
}

// ShipmentDocument is the top-level shipment. Packages always holds exactly one
// entry today; it is a slice so multi-package batches fit the same shape.
type ShipmentDocument struct {
	Packages      []PackageDocument `json:"packages" xml:"parcels"`
	Receiver      AddressDocument   `json:"receiver" xml:"receiver"`
	Sender        AddressDocument   `json:"sender" xml:"sender"`
	Services      ServiceOptions    `json:"services" xml:"services"`
	PayerType     PayerType         `json:"payerType" xml:"payerType"`
	Ref1          string            `json:"ref1,omitempty" xml:"ref1,omitempty"`
	Ref2          string            `json:"ref2,omitempty" xml:"ref2,omitempty"`
	Ref3          string            `json:"ref3,omitempty" xml:"ref3,omitempty"`
	Reference     string            `json:"reference,omitempty" xml:"reference,omitempty"`
	ThirdPartyFID string            `json:"thirdPartyFID,omitempty" xml:"thirdPartyFID,omitempty"`
}

// Package returns the single package of the document.
func (d ShipmentDocument) Package() PackageDocument {
	if len(d.Packages) == 0 {
		return PackageDocument{}
	}
	return d.Packages[0]
}

// AuthDocument carries the credentials attached to every remote call. The
// package service authenticates with MasterFID, the tracking service with Channel.
type AuthDocument struct {
	Login     string `json:"login" xml:"login"`
	Password  string `json:"password" xml:"password"`
	MasterFID string `json:"masterFid,omitempty" xml:"masterFid,omitempty"`
	Channel   string `json:"channel,omitempty" xml:"channel,omitempty"`
}

// ShipmentRequest is a compiled shipment together with the context the carrier
// expects next to it. It can be inspected or batched without being submitted.
type ShipmentRequest struct {
	Document         ShipmentDocument `json:"document"`
	GenerationPolicy GenerationPolicy `json:"generationPolicy"`
	LangCode         string           `json:"langCode"`
	Auth             AuthDocument     `json:"-"`
}

// ParcelRef identifies a parcel by waybill number.
type ParcelRef struct {
	Waybill string `json:"waybill" xml:"waybill"`
}

// PackageDescriptor points at one shipment by exactly one of its selectors.
type PackageDescriptor struct {
	PackageID string      `json:"packageId,omitempty" xml:"packageId,omitempty"`
	Reference string      `json:"reference,omitempty" xml:"reference,omitempty"`
	Parcels   []ParcelRef `json:"parcels,omitempty" xml:"parcels,omitempty"`
}

// SessionDescriptor groups the packages a label job covers.
type SessionDescriptor struct {
	Type     SessionType         `json:"sessionType" xml:"sessionType"`
	Packages []PackageDescriptor `json:"packages" xml:"packages"`
}

// LabelRequestDocument asks the carrier for printable labels.
type LabelRequestDocument struct {
	GenerationPolicy GenerationPolicy  `json:"generationPolicy" xml:"generationPolicy"`
	PickupAddress    AddressDocument   `json:"pickupAddress" xml:"pickupAddress"`
	Session          SessionDescriptor `json:"session" xml:"session"`
	OutputDocFormat  OutputDocFormat   `json:"outputDocFormat" xml:"outputDocFormat"`
	DocPageFormat    DocPageFormat     `json:"format" xml:"format"`
	OutputLabelType  OutputLabelType   `json:"outputLabelType" xml:"outputLabelType"`
	LabelVariant     LabelVariant      `json:"labelVariant,omitempty" xml:"labelVariant,omitempty"`
}

// LabelRequest is a compiled label request plus its auth context.
type LabelRequest struct {
	Document LabelRequestDocument `json:"document"`
	Auth     AuthDocument         `json:"-"`
}

// PostalCodeDocument is used by the postal-code lookup and courier availability calls.
type PostalCodeDocument struct {
	CountryCode string `json:"countryCode" xml:"countryCode"`
	ZipCode     string `json:"zipCode" xml:"zipCode"`
}
