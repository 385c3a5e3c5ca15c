package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueSet_ValidateAccepts(t *testing.T) {
	got, err := SelfColReceivers.Validate("COMP")
	require.NoError(t, err)
	assert.Equal(t, SelfColCompany, got)
}

func TestValueSet_ValidateIsCaseSensitive(t *testing.T) {
	_, err := PayerTypes.Validate("sender")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidEnumValue))
}

func TestValueSet_AllowedListKeepsDeclaredOrder(t *testing.T) {
	_, err := SelfColReceivers.Validate("X")
	require.Error(t, err)

	de, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "selfCol", de.Field)
	assert.Equal(t, []string{"PRIV", "COMP"}, de.Allowed)
	assert.Contains(t, err.Error(), "(allowed: PRIV, COMP)")
}

func TestValueSet_GuaranteeOrder(t *testing.T) {
	assert.Equal(t,
		[]string{"TIME0930", "TIME1200", "B2C", "TIMEFIXED", "SATURDAY", "INTER", "DPDNEXTDAY"},
		GuaranteeTypes.Strings())
}

func TestValueSet_ValuesReturnsCopy(t *testing.T) {
	vals := OutputDocFormats.Values()
	vals[0] = "BROKEN"
	assert.Equal(t, DocFormatPDF, OutputDocFormats.Values()[0])
}

func TestLabelVariants_ExcludeNone(t *testing.T) {
	assert.False(t, LabelVariants.Contains(LabelVariantNone))
	assert.True(t, LabelVariants.Contains(LabelVariantRuch))
}

func TestParseGenerationPolicy(t *testing.T) {
	tests := []struct {
		in   string
		want GenerationPolicy
	}{
		{"STOP_ON_FIRST_ERROR", PolicyStopOnFirstError},
		{"IGNORE_ERRORS", PolicyIgnoreErrors},
		{"ALL_OR_NOTHING", PolicyAllOrNothing},
		{"1", PolicyStopOnFirstError},
		{"2", PolicyIgnoreErrors},
		{"3", PolicyAllOrNothing},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGenerationPolicy(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseGenerationPolicy("4")
	assert.ErrorIs(t, err, ErrInvalidEnumValue)
}
