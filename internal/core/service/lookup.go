package service

import (
	"context"
	"strings"

	"github.com/99minutos/dpd-compiler/internal/core/domain"
	"github.com/99minutos/dpd-compiler/internal/core/ports"
	"github.com/99minutos/dpd-compiler/internal/core/validation"
	"github.com/99minutos/dpd-compiler/internal/metrics"
)

// PostalCodeDocument normalizes zipCode for countryCode (default PL) and
// returns the lookup document.
func (c *Compiler) PostalCodeDocument(zipCode, countryCode string) (domain.PostalCodeDocument, error) {
	country := strings.ToUpper(strings.TrimSpace(countryCode))
	if country == "" {
		country = validation.DefaultCountry
	}
	zip, err := validation.NormalizePostalCode(zipCode, country)
	if err != nil {
		c.rejected(kindPostalCode, err)
		return domain.PostalCodeDocument{}, err
	}
	metrics.DocumentsCompiledTotal.WithLabelValues(kindPostalCode).Inc()
	return domain.PostalCodeDocument{CountryCode: country, ZipCode: zip}, nil
}

// FindPostalCode asks the carrier whether it serves the postal code.
func (c *Compiler) FindPostalCode(ctx context.Context, zipCode, countryCode string) (*ports.Response, error) {
	doc, err := c.PostalCodeDocument(zipCode, countryCode)
	if err != nil {
		return nil, err
	}
	return c.submit(ctx, ports.OpFindPostalCode, doc, doc, c.rc.Auth())
}

// CourierOrderAvailability asks the carrier for courier pickup windows at the
// postal code.
func (c *Compiler) CourierOrderAvailability(ctx context.Context, zipCode, countryCode string) (*ports.Response, error) {
	doc, err := c.PostalCodeDocument(zipCode, countryCode)
	if err != nil {
		return nil, err
	}
	return c.submit(ctx, ports.OpGetCourierOrderAvailability, doc, doc, c.rc.Auth())
}
