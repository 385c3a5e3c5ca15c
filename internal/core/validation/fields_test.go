package validation

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/dpd-compiler/internal/core/domain"
)

func TestValidateFields_UnknownKeyListsSchemaInOrder(t *testing.T) {
	err := ValidateFields(Fields{"name": "Jan", "colour": "red"}, AddressSchema)
	require.Error(t, err)

	de, ok := domain.AsError(err)
	require.True(t, ok)
	assert.ErrorIs(t, err, domain.ErrUnknownField)
	assert.Equal(t, "colour", de.Field)
	assert.Equal(t, []string{
		"address", "city", "company", "countryCode", "email", "fid", "name", "phone", "postalCode",
	}, de.Allowed)
}

func TestValidateFields_UnknownKeyBeatsWrongType(t *testing.T) {
	// "city" sorts before "zzz" and carries a wrong type, but the unknown key
	// must still be the reported failure.
	err := ValidateFields(Fields{"city": 12, "zzz": "x"}, AddressSchema)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownField)
}

func TestValidateFields_FirstUnknownInSortedOrder(t *testing.T) {
	err := ValidateFields(Fields{"b_extra": 1, "a_extra": 1}, PackageSchema)
	de, ok := domain.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "a_extra", de.Field)
}

func TestValidateFields_WrongType(t *testing.T) {
	err := ValidateFields(Fields{"sizeX": "10"}, PackageSchema)
	require.Error(t, err)

	de, _ := domain.AsError(err)
	assert.ErrorIs(t, err, domain.ErrWrongFieldType)
	assert.Equal(t, "sizeX", de.Field)
	assert.Equal(t, []string{"integer"}, de.Allowed)
}

func TestValidateFields_NilMeansNotSupplied(t *testing.T) {
	assert.NoError(t, ValidateFields(Fields{"sizeX": nil}, PackageSchema))
}

func TestValidateFields_EmptyInputIsValid(t *testing.T) {
	assert.NoError(t, ValidateFields(nil, PackageSchema))
	assert.NoError(t, ValidateFields(Fields{}, ServicesSchema))
}

func TestValidateFields_FidAcceptsStringOrInteger(t *testing.T) {
	assert.NoError(t, ValidateFields(Fields{"fid": "1495"}, AddressSchema))
	assert.NoError(t, ValidateFields(Fields{"fid": 1495}, AddressSchema))
	assert.ErrorIs(t, ValidateFields(Fields{"fid": 14.95}, AddressSchema), domain.ErrWrongFieldType)
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		in   any
		want SemanticType
	}{
		{"x", TypeString},
		{true, TypeBool},
		{42, TypeInteger},
		{int64(42), TypeInteger},
		{2.5, TypeFloat},
		{decimal.RequireFromString("2.5"), TypeDecimal},
		{json.Number("10"), TypeInteger},
		{json.Number("2.5"), TypeFloat},
		{json.Number("1e3"), TypeFloat},
		{[]string{"x"}, TypeUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TypeOf(tt.in), "TypeOf(%#v)", tt.in)
	}
}

func TestDecodeJSON_KeepsIntegersAndFloatsApart(t *testing.T) {
	var f Fields
	require.NoError(t, DecodeJSON(strings.NewReader(`{"sizeX": 10, "weight": 2.5}`), &f))

	assert.Equal(t, TypeInteger, TypeOf(f["sizeX"]))
	assert.Equal(t, TypeFloat, TypeOf(f["weight"]))
	assert.NoError(t, ValidateFields(f, PackageSchema))
}

func TestTruthy(t *testing.T) {
	falsy := []any{nil, false, "", 0, 0.0, json.Number("0"), decimal.Zero}
	for _, v := range falsy {
		assert.False(t, Truthy(v), "Truthy(%#v)", v)
	}
	truthy := []any{true, "PRIV", 1, 0.5, json.Number("120"), decimal.NewFromInt(3)}
	for _, v := range truthy {
		assert.True(t, Truthy(v), "Truthy(%#v)", v)
	}
}

func TestToDecimal(t *testing.T) {
	d, err := ToDecimal("cod", json.Number("120.50"))
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("120.5")))

	_, err = ToDecimal("cod", true)
	assert.True(t, errors.Is(err, domain.ErrWrongFieldType))
}

func TestToDecimal_NonFiniteFloats(t *testing.T) {
	tests := []struct {
		name string
		v    any
	}{
		{"NaN", math.NaN()},
		{"+Inf", math.Inf(1)},
		{"-Inf", math.Inf(-1)},
		{"float32 NaN", float32(math.NaN())},
		{"float32 +Inf", float32(math.Inf(1))},
		{"json NaN", json.Number("NaN")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ToDecimal("weight", tc.v)
			assert.ErrorIs(t, err, domain.ErrWrongFieldType)
			assert.True(t, Truthy(tc.v))
		})
	}
}

func TestToString(t *testing.T) {
	s, err := ToString("fid", 1495)
	require.NoError(t, err)
	assert.Equal(t, "1495", s)

	_, err = ToString("fid", false)
	assert.ErrorIs(t, err, domain.ErrWrongFieldType)
}
