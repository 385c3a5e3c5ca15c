package validation

var (
	str     = []SemanticType{TypeString}
	integer = []SemanticType{TypeInteger}
)

// AddressSchema mirrors the carrier's address type. fid is an integer on the
// wire but callers commonly hold it as text, so both are accepted.
var AddressSchema = Schema{
	{Name: "address", Types: str},
	{Name: "city", Types: str},
	{Name: "company", Types: str},
	{Name: "countryCode", Types: str},
	{Name: "email", Types: str},
	{Name: "fid", Types: []SemanticType{TypeString, TypeInteger}},
	{Name: "name", Types: str},
	{Name: "phone", Types: str},
	{Name: "postalCode", Types: str},
}

var PackageSchema = Schema{
	{Name: "content", Types: str},
	{Name: "customerData1", Types: str},
	{Name: "customerData2", Types: str},
	{Name: "customerData3", Types: str},
	{Name: "reference", Types: str},
	{Name: "sizeX", Types: integer},
	{Name: "sizeY", Types: integer},
	{Name: "sizeZ", Types: integer},
	{Name: "weight", Types: Numeric},
}

var (
	flag   = []SemanticType{TypeBool}
	amount = []SemanticType{TypeInteger, TypeFloat, TypeDecimal, TypeBool}
)

// ServicesSchema covers every service toggle and its companion parameters.
// Amount toggles also accept false, meaning "off".
var ServicesSchema = Schema{
	{Name: "carryIn", Types: flag},
	{Name: "cod", Types: amount},
	{Name: "codCurrency", Types: str},
	{Name: "cud", Types: flag},
	{Name: "declaredValue", Types: amount},
	{Name: "declaredValueCurrency", Types: str},
	{Name: "dedicatedDelivery", Types: flag},
	{Name: "documentsInternational", Types: flag},
	{Name: "dox", Types: flag},
	{Name: "dpdExpress", Types: flag},
	{Name: "dpdPickup", Types: []SemanticType{TypeString, TypeInteger, TypeBool}},
	{Name: "duty", Types: amount},
	{Name: "dutyCurrency", Types: str},
	{Name: "guarantee", Types: []SemanticType{TypeString, TypeBool}},
	{Name: "guaranteeValue", Types: []SemanticType{TypeString, TypeInteger}},
	{Name: "inPers", Types: flag},
	{Name: "pallet", Types: flag},
	{Name: "privPers", Types: flag},
	{Name: "rod", Types: flag},
	{Name: "selfCol", Types: []SemanticType{TypeString, TypeBool}},
	{Name: "tires", Types: flag},
	{Name: "tiresExport", Types: flag},
}
