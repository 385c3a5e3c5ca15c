package domain

import "github.com/shopspring/decimal"

// ServiceName is the input key that toggles one optional service.
type ServiceName string

const (
	ServiceCarryIn                ServiceName = "carryIn"
	ServiceCOD                    ServiceName = "cod"
	ServiceCUD                    ServiceName = "cud"
	ServiceDeclaredValue          ServiceName = "declaredValue"
	ServiceDedicatedDelivery      ServiceName = "dedicatedDelivery"
	ServiceDocumentsInternational ServiceName = "documentsInternational"
	ServiceDox                    ServiceName = "dox"
	ServiceDPDExpress             ServiceName = "dpdExpress"
	ServiceDPDPickup              ServiceName = "dpdPickup"
	ServiceDuty                   ServiceName = "duty"
	ServiceGuarantee              ServiceName = "guarantee"
	ServiceInPers                 ServiceName = "inPers"
	ServicePallet                 ServiceName = "pallet"
	ServicePrivPers               ServiceName = "privPers"
	ServiceROD                    ServiceName = "rod"
	ServiceSelfCol                ServiceName = "selfCol"
	ServiceTires                  ServiceName = "tires"
	ServiceTiresExport            ServiceName = "tiresExport"
)

// FlagServices carry no parameters; enabling one produces an empty marker.
var FlagServices = []ServiceName{
	ServiceCarryIn, ServiceCUD, ServiceDedicatedDelivery, ServiceDocumentsInternational,
	ServiceDox, ServiceDPDExpress, ServiceInPers, ServicePallet, ServicePrivPers,
	ServiceROD, ServiceTires, ServiceTiresExport,
}

// AllServices lists every toggle in output order.
var AllServices = []ServiceName{
	ServiceCarryIn, ServiceCOD, ServiceCUD, ServiceDeclaredValue, ServiceDedicatedDelivery,
	ServiceDocumentsInternational, ServiceDox, ServiceDPDExpress, ServiceDPDPickup,
	ServiceDuty, ServiceGuarantee, ServiceInPers, ServicePallet, ServicePrivPers,
	ServiceROD, ServiceSelfCol, ServiceTires, ServiceTiresExport,
}

// FlagService is the empty marker for parameterless services.
type FlagService struct{}

// MoneyService is a currency-denominated amount (cod, declaredValue, duty).
type MoneyService struct {
	Amount   decimal.Decimal `json:"amount" xml:"amount"`
	Currency string          `json:"currency" xml:"currency"`
}

type PickupPointService struct {
	Pudo string `json:"pudo" xml:"pudo"`
}

type GuaranteeService struct {
	Type  GuaranteeType `json:"type" xml:"type"`
	Value string        `json:"value,omitempty" xml:"value,omitempty"`
}

type SelfColService struct {
	Receiver SelfColReceiver `json:"receiver" xml:"receiver"`
}

// ServiceOptions holds the optional service sub-documents of a shipment.
// A nil pointer means the service is absent and is not encoded.
type ServiceOptions struct {
	CarryIn                *FlagService        `json:"carryIn,omitempty" xml:"carryIn,omitempty"`
	COD                    *MoneyService       `json:"cod,omitempty" xml:"cod,omitempty"`
	CUD                    *FlagService        `json:"cud,omitempty" xml:"cud,omitempty"`
	DeclaredValue          *MoneyService       `json:"declaredValue,omitempty" xml:"declaredValue,omitempty"`
	DedicatedDelivery      *FlagService        `json:"dedicatedDelivery,omitempty" xml:"dedicatedDelivery,omitempty"`
	DocumentsInternational *FlagService        `json:"documentsInternational,omitempty" xml:"documentsInternational,omitempty"`
	Dox                    *FlagService        `json:"dox,omitempty" xml:"dox,omitempty"`
	DPDExpress             *FlagService        `json:"dpdExpress,omitempty" xml:"dpdExpress,omitempty"`
	DPDPickup              *PickupPointService `json:"dpdPickup,omitempty" xml:"dpdPickup,omitempty"`
	Duty                   *MoneyService       `json:"duty,omitempty" xml:"duty,omitempty"`
	Guarantee              *GuaranteeService   `json:"guarantee,omitempty" xml:"guarantee,omitempty"`
	InPers                 *FlagService        `json:"inPers,omitempty" xml:"inPers,omitempty"`
	Pallet                 *FlagService        `json:"pallet,omitempty" xml:"pallet,omitempty"`
	PrivPers               *FlagService        `json:"privPers,omitempty" xml:"privPers,omitempty"`
	ROD                    *FlagService        `json:"rod,omitempty" xml:"rod,omitempty"`
	SelfCol                *SelfColService     `json:"selfCol,omitempty" xml:"selfCol,omitempty"`
	Tires                  *FlagService        `json:"tires,omitempty" xml:"tires,omitempty"`
	TiresExport            *FlagService        `json:"tiresExport,omitempty" xml:"tiresExport,omitempty"`
}

// Flag returns the slot of a parameterless service, or nil for any other name.
func (s *ServiceOptions) Flag(name ServiceName) **FlagService {
	switch name {
	case ServiceCarryIn:
		return &s.CarryIn
	case ServiceCUD:
		return &s.CUD
	case ServiceDedicatedDelivery:
		return &s.DedicatedDelivery
	case ServiceDocumentsInternational:
		return &s.DocumentsInternational
	case ServiceDox:
		return &s.Dox
	case ServiceDPDExpress:
		return &s.DPDExpress
	case ServiceInPers:
		return &s.InPers
	case ServicePallet:
		return &s.Pallet
	case ServicePrivPers:
		return &s.PrivPers
	case ServiceROD:
		return &s.ROD
	case ServiceTires:
		return &s.Tires
	case ServiceTiresExport:
		return &s.TiresExport
	}
	return nil
}

// Has reports whether the sub-document for name is present.
func (s ServiceOptions) Has(name ServiceName) bool {
	switch name {
	case ServiceCOD:
		return s.COD != nil
	case ServiceDeclaredValue:
		return s.DeclaredValue != nil
	case ServiceDPDPickup:
		return s.DPDPickup != nil
	case ServiceDuty:
		return s.Duty != nil
	case ServiceGuarantee:
		return s.Guarantee != nil
	case ServiceSelfCol:
		return s.SelfCol != nil
	}
	if slot := s.Flag(name); slot != nil {
		return *slot != nil
	}
	return false
}

// Enabled lists the present services in output order.
func (s ServiceOptions) Enabled() []ServiceName {
	var out []ServiceName
	for _, name := range AllServices {
		if s.Has(name) {
			out = append(out, name)
		}
	}
	return out
}
