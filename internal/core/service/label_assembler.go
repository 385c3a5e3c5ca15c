package service

import (
	"context"
	"strings"

	"github.com/99minutos/dpd-compiler/internal/core/domain"
	"github.com/99minutos/dpd-compiler/internal/core/ports"
	"github.com/99minutos/dpd-compiler/internal/metrics"
)

// CompileLabel validates in and returns the label request without submitting
// it. Checks run in argument order and stop at the first failure.
func (c *Compiler) CompileLabel(in ports.LabelInput) (*domain.LabelRequest, error) {
	req, err := c.compileLabel(in)
	if err != nil {
		c.rejected(kindLabel, err)
		return nil, err
	}
	metrics.DocumentsCompiledTotal.WithLabelValues(kindLabel).Inc()
	return req, nil
}

func (c *Compiler) compileLabel(in ports.LabelInput) (*domain.LabelRequest, error) {
	pkg, err := packageDescriptor(in.Selector)
	if err != nil {
		return nil, err
	}

	session := domain.SessionDomestic
	if in.SessionType != "" {
		if session, err = domain.SessionTypes.Validate(in.SessionType); err != nil {
			return nil, err
		}
	}

	sender, err := c.resolveSender(in.Sender)
	if err != nil {
		return nil, err
	}

	docFormat := domain.DocFormatPDF
	if in.OutputDocFormat != "" {
		if docFormat, err = domain.OutputDocFormats.Validate(in.OutputDocFormat); err != nil {
			return nil, err
		}
	}

	pageFormat := domain.PageFormatLblPrinter
	if in.DocPageFormat != "" {
		if pageFormat, err = domain.DocPageFormats.Validate(in.DocPageFormat); err != nil {
			return nil, err
		}
	}

	labelType := domain.LabelTypeBIC3
	if in.OutputLabelType != "" {
		if labelType, err = domain.OutputLabelTypes.Validate(in.OutputLabelType); err != nil {
			return nil, err
		}
	}

	variant := domain.LabelVariantNone
	if in.LabelVariant != "" {
		if variant, err = domain.LabelVariants.Validate(in.LabelVariant); err != nil {
			return nil, err
		}
	}

	return &domain.LabelRequest{
		Document: domain.LabelRequestDocument{
			GenerationPolicy: c.rc.GenerationPolicy(),
			PickupAddress:    sender,
			Session: domain.SessionDescriptor{
				Type:     session,
				Packages: []domain.PackageDescriptor{pkg},
			},
			OutputDocFormat: docFormat,
			DocPageFormat:   pageFormat,
			OutputLabelType: labelType,
			LabelVariant:    variant,
		},
		Auth: c.rc.Auth(),
	}, nil
}

// SubmitLabel compiles in and asks the carrier for the label file.
func (c *Compiler) SubmitLabel(ctx context.Context, in ports.LabelInput) (*ports.Response, error) {
	req, err := c.CompileLabel(in)
	if err != nil {
		return nil, err
	}
	return c.submit(ctx, ports.OpGenerateSpedLabels, req, req.Document, req.Auth)
}

// packageDescriptor turns a selector into a descriptor. Exactly one selector
// must be set.
func packageDescriptor(sel ports.LabelSelector) (domain.PackageDescriptor, error) {
	var given []string
	if sel.PackageID != "" {
		given = append(given, "packageId")
	}
	if sel.Reference != "" {
		given = append(given, "reference")
	}
	if sel.Waybill != "" {
		given = append(given, "waybill")
	}

	switch len(given) {
	case 0:
		return domain.PackageDescriptor{}, &domain.Error{
			Kind:    domain.ErrMissingSelector,
			Field:   "selector",
			Allowed: []string{"packageId", "reference", "waybill"},
			Detail:  "one of packageId, reference or waybill is required",
		}
	case 1:
	default:
		return domain.PackageDescriptor{}, &domain.Error{
			Kind:   domain.ErrConflictingSelectors,
			Field:  "selector",
			Value:  given,
			Detail: "only one selector may be given, got " + strings.Join(given, " and "),
		}
	}

	switch {
	case sel.PackageID != "":
		return domain.PackageDescriptor{PackageID: sel.PackageID}, nil
	case sel.Reference != "":
		return domain.PackageDescriptor{Reference: sel.Reference}, nil
	default:
		return domain.PackageDescriptor{Parcels: []domain.ParcelRef{{Waybill: sel.Waybill}}}, nil
	}
}
