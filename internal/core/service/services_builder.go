package service

import (
	"github.com/99minutos/dpd-compiler/internal/core/domain"
	"github.com/99minutos/dpd-compiler/internal/core/validation"
)

const defaultCurrency = "PLN"

// BuildServices assembles the optional service sub-documents. Each toggle is
// handled independently: a falsy or missing toggle leaves its sub-document out,
// a truthy one adds it after validating the toggle's parameters. Toggles are
// processed in output order and the first failure is returned.
func BuildServices(toggles validation.Fields) (domain.ServiceOptions, error) {
	var opts domain.ServiceOptions
	if err := validation.ValidateFields(toggles, validation.ServicesSchema); err != nil {
		return opts, err
	}

	for _, name := range domain.AllServices {
		v := toggles[string(name)]
		if !validation.Truthy(v) {
			continue
		}

		if slot := opts.Flag(name); slot != nil {
			*slot = &domain.FlagService{}
			continue
		}

		var err error
		switch name {
		case domain.ServiceCOD:
			opts.COD, err = moneyService(toggles, name, v)
		case domain.ServiceDeclaredValue:
			opts.DeclaredValue, err = moneyService(toggles, name, v)
		case domain.ServiceDuty:
			opts.Duty, err = moneyService(toggles, name, v)
		case domain.ServiceDPDPickup:
			opts.DPDPickup, err = pickupService(v)
		case domain.ServiceGuarantee:
			opts.Guarantee, err = guaranteeService(toggles, v)
		case domain.ServiceSelfCol:
			opts.SelfCol, err = selfColService(v)
		}
		if err != nil {
			return domain.ServiceOptions{}, err
		}
	}
	return opts, nil
}

// moneyService treats the toggle value as the amount; "<name>Currency" supplies
// the currency.
func moneyService(toggles validation.Fields, name domain.ServiceName, v any) (*domain.MoneyService, error) {
	amount, err := validation.ToDecimal(string(name), v)
	if err != nil {
		return nil, err
	}
	currency := defaultCurrency
	if c, ok := toggles[string(name)+"Currency"].(string); ok && c != "" {
		currency = c
	}
	return &domain.MoneyService{Amount: amount, Currency: currency}, nil
}

func pickupService(v any) (*domain.PickupPointService, error) {
	pudo, err := validation.ToString(string(domain.ServiceDPDPickup), v)
	if err != nil {
		return nil, err
	}
	return &domain.PickupPointService{Pudo: pudo}, nil
}

func guaranteeService(toggles validation.Fields, v any) (*domain.GuaranteeService, error) {
	raw, ok := v.(string)
	if !ok {
		return nil, &domain.Error{
			Kind:    domain.ErrWrongFieldType,
			Field:   string(domain.ServiceGuarantee),
			Value:   v,
			Allowed: domain.GuaranteeTypes.Strings(),
			Detail:  "guarantee takes a guarantee type, not a flag",
		}
	}
	gt, err := domain.GuaranteeTypes.Validate(raw)
	if err != nil {
		return nil, err
	}

	svc := &domain.GuaranteeService{Type: gt}
	companion := toggles["guaranteeValue"]
	if gt == domain.GuaranteeTimeFixed && !validation.Truthy(companion) {
		return nil, domain.NewError(domain.ErrMissingDependentField, "guaranteeValue",
			"%s guarantee also requires guaranteeValue", domain.GuaranteeTimeFixed)
	}
	if validation.Truthy(companion) {
		svc.Value, err = validation.ToString("guaranteeValue", companion)
		if err != nil {
			return nil, err
		}
	}
	return svc, nil
}

func selfColService(v any) (*domain.SelfColService, error) {
	raw, ok := v.(string)
	if !ok {
		return nil, &domain.Error{
			Kind:    domain.ErrWrongFieldType,
			Field:   string(domain.ServiceSelfCol),
			Value:   v,
			Allowed: domain.SelfColReceivers.Strings(),
			Detail:  "selfCol takes a receiver type, not a flag",
		}
	}
	receiver, err := domain.SelfColReceivers.Validate(raw)
	if err != nil {
		return nil, err
	}
	return &domain.SelfColService{Receiver: receiver}, nil
}
