package service

import (
	"context"

	"github.com/99minutos/dpd-compiler/internal/core/domain"
	"github.com/99minutos/dpd-compiler/internal/core/ports"
	"github.com/99minutos/dpd-compiler/internal/metrics"
)

const defaultLangCode = "PL"

// CompileShipment validates in and returns the shipment request without
// submitting it. Validation stops at the first failure.
func (c *Compiler) CompileShipment(in ports.ShipmentInput) (*domain.ShipmentRequest, error) {
	req, err := c.compileShipment(in)
	if err != nil {
		c.rejected(kindShipment, err)
		return nil, err
	}
	metrics.DocumentsCompiledTotal.WithLabelValues(kindShipment).Inc()
	return req, nil
}

func (c *Compiler) compileShipment(in ports.ShipmentInput) (*domain.ShipmentRequest, error) {
	payer := domain.PayerSender
	if in.PayerType != "" {
		p, err := domain.PayerTypes.Validate(in.PayerType)
		if err != nil {
			return nil, err
		}
		payer = p
	}

	sender, err := c.resolveSender(in.Sender)
	if err != nil {
		return nil, err
	}
	pkg, err := BuildPackage(in.Package)
	if err != nil {
		return nil, err
	}
	receiver, err := BuildAddress(in.Receiver)
	if err != nil {
		return nil, err
	}
	services, err := BuildServices(in.Services)
	if err != nil {
		return nil, err
	}

	lang := in.LangCode
	if lang == "" {
		lang = defaultLangCode
	}

	return &domain.ShipmentRequest{
		Document: domain.ShipmentDocument{
			Packages:      []domain.PackageDocument{pkg},
			Receiver:      receiver,
			Sender:        sender,
			Services:      services,
			PayerType:     payer,
			Ref1:          in.Ref1,
			Ref2:          in.Ref2,
			Ref3:          in.Ref3,
			Reference:     in.Reference,
			ThirdPartyFID: in.ThirdPartyFID,
		},
		GenerationPolicy: c.rc.GenerationPolicy(),
		LangCode:         lang,
		Auth:             c.rc.Auth(),
	}, nil
}

// SubmitShipment compiles in and asks the carrier to generate package numbers.
// Remote errors are returned unchanged.
func (c *Compiler) SubmitShipment(ctx context.Context, in ports.ShipmentInput) (*ports.Response, error) {
	req, err := c.CompileShipment(in)
	if err != nil {
		return nil, err
	}
	return c.submit(ctx, ports.OpGeneratePackagesNumbers, req,
		req.Document, req.GenerationPolicy, req.LangCode, req.Auth)
}
