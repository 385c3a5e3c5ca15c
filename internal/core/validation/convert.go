package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/99minutos/dpd-compiler/internal/core/domain"
)

// Truthy reports whether a toggle value switches its feature on. Nil, false,
// zero numbers and empty strings are all "off". NaN and infinities count as
// "on", so the toggle's builder rejects them as non-numeric.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			return t != ""
		}
		return !d.IsZero()
	case decimal.Decimal:
		return !t.IsZero()
	case *decimal.Decimal:
		return t != nil && !t.IsZero()
	}
	if d, err := ToDecimal("", v); err == nil {
		return !d.IsZero()
	}
	return true
}

// ToDecimal converts an Integer, Float or Decimal value without losing precision
// for decimals and json numbers.
func ToDecimal(field string, v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case decimal.Decimal:
		return t, nil
	case *decimal.Decimal:
		if t != nil {
			return *t, nil
		}
	case json.Number:
		if d, err := decimal.NewFromString(t.String()); err == nil {
			return d, nil
		}
	case float32:
		if finite(float64(t)) {
			return decimal.NewFromFloat32(t), nil
		}
	case float64:
		if finite(t) {
			return decimal.NewFromFloat(t), nil
		}
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		d, err := decimal.NewFromString(fmt.Sprint(t))
		if err == nil {
			return d, nil
		}
	}
	return decimal.Decimal{}, wrongType(field, v, Numeric)
}

// finite reports whether f can become a decimal. NaN and the infinities cannot.
func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ToInt converts an Integer value.
func ToInt(field string, v any) (int, error) {
	switch t := v.(type) {
	case int:
		return t, nil
	case int8:
		return int(t), nil
	case int16:
		return int(t), nil
	case int32:
		return int(t), nil
	case int64:
		return int(t), nil
	case uint8:
		return int(t), nil
	case uint16:
		return int(t), nil
	case uint32:
		return int(t), nil
	case uint, uint64:
		n, err := strconv.Atoi(fmt.Sprint(t))
		if err == nil {
			return n, nil
		}
	case json.Number:
		n, err := strconv.Atoi(t.String())
		if err == nil {
			return n, nil
		}
	}
	return 0, wrongType(field, v, []SemanticType{TypeInteger})
}

// ToString renders a String or Integer value as text.
func ToString(field string, v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(t), nil
	}
	return "", wrongType(field, v, []SemanticType{TypeString, TypeInteger})
}

func wrongType(field string, v any, want []SemanticType) error {
	return &domain.Error{
		Kind:    domain.ErrWrongFieldType,
		Field:   field,
		Value:   v,
		Allowed: typeNames(want),
		Detail:  "found " + string(TypeOf(v)),
	}
}
