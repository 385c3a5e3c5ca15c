package service

import (
	"github.com/99minutos/dpd-compiler/internal/core/domain"
	"github.com/99minutos/dpd-compiler/internal/core/validation"
)

// BuildPackage validates fields against the package schema and copies them
// verbatim. No field is required.
func BuildPackage(fields validation.Fields) (domain.PackageDocument, error) {
	var doc domain.PackageDocument
	if err := validation.ValidateFields(fields, validation.PackageSchema); err != nil {
		return doc, err
	}

	for k, v := range fields {
		if v == nil {
			continue
		}
		var err error
		switch k {
		case "content":
			doc.Content, err = validation.ToString(k, v)
		case "customerData1":
			doc.CustomerData1, err = validation.ToString(k, v)
		case "customerData2":
			doc.CustomerData2, err = validation.ToString(k, v)
		case "customerData3":
			doc.CustomerData3, err = validation.ToString(k, v)
		case "reference":
			doc.Reference, err = validation.ToString(k, v)
		case "sizeX":
			doc.SizeX, err = intPtr(k, v)
		case "sizeY":
			doc.SizeY, err = intPtr(k, v)
		case "sizeZ":
			doc.SizeZ, err = intPtr(k, v)
		case "weight":
			w, werr := validation.ToDecimal(k, v)
			doc.Weight, err = &w, werr
		}
		if err != nil {
			return domain.PackageDocument{}, err
		}
	}
	return doc, nil
}

func intPtr(field string, v any) (*int, error) {
	n, err := validation.ToInt(field, v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
