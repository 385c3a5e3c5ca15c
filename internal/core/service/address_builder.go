package service

import (
	"github.com/99minutos/dpd-compiler/internal/core/domain"
	"github.com/99minutos/dpd-compiler/internal/core/validation"
)

// BuildAddress validates fields against the address schema and copies them onto
// a fresh document. Hyphens are stripped from the postal code; the stricter
// per-country shape is only enforced by the postal-code lookups.
func BuildAddress(fields validation.Fields) (domain.AddressDocument, error) {
	var doc domain.AddressDocument
	if err := validation.ValidateFields(fields, validation.AddressSchema); err != nil {
		return doc, err
	}

	for k, v := range fields {
		if v == nil {
			continue
		}
		s, err := validation.ToString(k, v)
		if err != nil {
			return domain.AddressDocument{}, err
		}
		switch k {
		case "address":
			doc.Address = s
		case "city":
			doc.City = s
		case "company":
			doc.Company = s
		case "countryCode":
			doc.CountryCode = s
		case "email":
			doc.Email = s
		case "fid":
			doc.FID = s
		case "name":
			doc.Name = s
		case "phone":
			doc.Phone = s
		case "postalCode":
			doc.PostalCode = validation.StripHyphens(s)
		}
	}
	return doc, nil
}
