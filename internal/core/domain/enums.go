package domain

// PayerType selects who is billed for a shipment.
type PayerType string

const (
	PayerSender     PayerType = "SENDER"
	PayerReceiver   PayerType = "RECEIVER"
	PayerThirdParty PayerType = "THIRD_PARTY"
)

var PayerTypes = NewValueSet("payerType", PayerSender, PayerReceiver, PayerThirdParty)

// GenerationPolicy tells the carrier how to treat partial failure across a
// batch of packages.
type GenerationPolicy string

const (
	PolicyStopOnFirstError GenerationPolicy = "STOP_ON_FIRST_ERROR"
	PolicyIgnoreErrors     GenerationPolicy = "IGNORE_ERRORS"
	PolicyAllOrNothing     GenerationPolicy = "ALL_OR_NOTHING"
)

var GenerationPolicies = NewValueSet("generationPolicy",
	PolicyStopOnFirstError, PolicyIgnoreErrors, PolicyAllOrNothing)

// policyAliases keeps the numeric codes older integrations send.
var policyAliases = map[string]GenerationPolicy{
	"1": PolicyStopOnFirstError,
	"2": PolicyIgnoreErrors,
	"3": PolicyAllOrNothing,
}

// ParseGenerationPolicy accepts either the policy name or its numeric code (1-3).
func ParseGenerationPolicy(s string) (GenerationPolicy, error) {
	if p, ok := policyAliases[s]; ok {
		return p, nil
	}
	return GenerationPolicies.Validate(s)
}

// GuaranteeType is the timed-delivery variant of the guarantee service.
type GuaranteeType string

const (
	GuaranteeTime0930   GuaranteeType = "TIME0930"
	GuaranteeTime1200   GuaranteeType = "TIME1200"
	GuaranteeB2C        GuaranteeType = "B2C"
	GuaranteeTimeFixed  GuaranteeType = "TIMEFIXED"
	GuaranteeSaturday   GuaranteeType = "SATURDAY"
	GuaranteeInter      GuaranteeType = "INTER"
	GuaranteeDPDNextDay GuaranteeType = "DPDNEXTDAY"
)

var GuaranteeTypes = NewValueSet("guarantee",
	GuaranteeTime0930, GuaranteeTime1200, GuaranteeB2C, GuaranteeTimeFixed,
	GuaranteeSaturday, GuaranteeInter, GuaranteeDPDNextDay)

// SelfColReceiver says whether a self-collected parcel goes to a private person or a company.
type SelfColReceiver string

const (
	SelfColPrivate SelfColReceiver = "PRIV"
	SelfColCompany SelfColReceiver = "COMP"
)

var SelfColReceivers = NewValueSet("selfCol", SelfColPrivate, SelfColCompany)

type SessionType string

const (
	SessionDomestic      SessionType = "DOMESTIC"
	SessionInternational SessionType = "INTERNATIONAL"
)

var SessionTypes = NewValueSet("sessionType", SessionDomestic, SessionInternational)

type OutputDocFormat string

const (
	DocFormatPDF  OutputDocFormat = "PDF"
	DocFormatTIFF OutputDocFormat = "TIFF"
	DocFormatPS   OutputDocFormat = "PS"
	DocFormatEPL  OutputDocFormat = "EPL"
	DocFormatZPL  OutputDocFormat = "ZPL"
)

var OutputDocFormats = NewValueSet("outputDocFormat",
	DocFormatPDF, DocFormatTIFF, DocFormatPS, DocFormatEPL, DocFormatZPL)

type DocPageFormat string

const (
	PageFormatA4         DocPageFormat = "A4"
	PageFormatLblPrinter DocPageFormat = "LBL_PRINTER"
)

var DocPageFormats = NewValueSet("docPageFormat", PageFormatA4, PageFormatLblPrinter)

type OutputLabelType string

const (
	LabelTypeBIC3     OutputLabelType = "BIC3"
	LabelTypeExtended OutputLabelType = "EXTENDED"
)

var OutputLabelTypes = NewValueSet("outputLabelType", LabelTypeBIC3, LabelTypeExtended)

// LabelVariant is optional; the empty value means "no variant".
type LabelVariant string

const (
	LabelVariantNone   LabelVariant = ""
	LabelVariantApollo LabelVariant = "APOLLO"
	LabelVariantRuch   LabelVariant = "RUCH"
)

var LabelVariants = NewValueSet("labelVariant", LabelVariantApollo, LabelVariantRuch)

// EventsSelectType controls how much history the tracking service returns per waybill.
type EventsSelectType string

const (
	EventsSelectAll      EventsSelectType = "ALL"
	EventsSelectOnlyLast EventsSelectType = "ONLY_LAST"
)

// Environment selects which credential set and endpoint are active.
type Environment string

const (
	EnvProduction Environment = "production"
	EnvSandbox    Environment = "sandbox"
)
