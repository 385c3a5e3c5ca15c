package validation

import (
	"regexp"
	"strings"

	"github.com/99minutos/dpd-compiler/internal/core/domain"
)

// DefaultCountry is assumed when a lookup omits the country code.
const DefaultCountry = "PL"

// PostalRule normalizes and validates the postal codes of one country.
type PostalRule func(code string) (string, error)

var plPostalCode = regexp.MustCompile(`^\d{5}$`)

// postalRules is the per-country registry. Countries without a rule pass
// through unchanged; add entries here to validate more countries.
var postalRules = map[string]PostalRule{
	"PL": polishPostalCode,
}

// NormalizePostalCode applies the country's postal rule, if one is registered.
func NormalizePostalCode(code, countryCode string) (string, error) {
	rule, ok := postalRules[countryCode]
	if !ok {
		return code, nil
	}
	return rule(code)
}

// StripHyphens removes every hyphen; used for address documents, which are not
// held to the strict per-country shape.
func StripHyphens(code string) string {
	return strings.ReplaceAll(code, "-", "")
}

// polishPostalCode accepts XX-XXX or XXXXX and returns XXXXX.
func polishPostalCode(code string) (string, error) {
	normalized := strings.Replace(code, "-", "", 1)
	if !plPostalCode.MatchString(normalized) {
		return "", &domain.Error{
			Kind:   domain.ErrInvalidPostalCode,
			Field:  "postalCode",
			Value:  code,
			Detail: "post code should be in XX-XXX or XXXXX format",
		}
	}
	return normalized, nil
}
