// Package validation gates loosely-typed caller input before any document is built.
package validation

import (
	"encoding/json"
	"io"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/99minutos/dpd-compiler/internal/core/domain"
)

// Fields is keyword-style caller input: field name to value.
type Fields map[string]any

// SemanticType is the runtime category of an input value.
type SemanticType string

const (
	TypeString  SemanticType = "string"
	TypeInteger SemanticType = "integer"
	TypeFloat   SemanticType = "float"
	TypeDecimal SemanticType = "decimal"
	TypeBool    SemanticType = "bool"
	TypeUnknown SemanticType = "unknown"
)

// Numeric is the allowed-type set of amount-like fields.
var Numeric = []SemanticType{TypeInteger, TypeFloat, TypeDecimal}

// FieldSpec declares one accepted key and its allowed semantic types.
type FieldSpec struct {
	Name  string
	Types []SemanticType
}

// Schema is the ordered list of keys an operation accepts.
type Schema []FieldSpec

// Names returns the valid keys in declaration order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

func (s Schema) lookup(name string) (FieldSpec, bool) {
	for _, f := range s {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// ValidateFields rejects keys the schema does not define and values whose
// semantic type is not allowed for their key. Every key is screened for
// unknown-ness before any type is checked, so an unknown key always wins.
// Nil values count as "not supplied" and are not type-checked.
func ValidateFields(fields Fields, schema Schema) error {
	keys := sortedKeys(fields)

	for _, k := range keys {
		if _, ok := schema.lookup(k); !ok {
			return &domain.Error{
				Kind:    domain.ErrUnknownField,
				Field:   k,
				Allowed: schema.Names(),
				Detail:  "not a valid argument",
			}
		}
	}

	for _, k := range keys {
		v := fields[k]
		if v == nil {
			continue
		}
		fs, _ := schema.lookup(k)
		got := TypeOf(v)
		if !containsType(fs.Types, got) {
			return &domain.Error{
				Kind:    domain.ErrWrongFieldType,
				Field:   k,
				Value:   v,
				Allowed: typeNames(fs.Types),
				Detail:  "found " + string(got),
			}
		}
	}
	return nil
}

// TypeOf classifies v. json.Number is an integer when it has no fraction or exponent.
func TypeOf(v any) SemanticType {
	switch t := v.(type) {
	case string:
		return TypeString
	case bool:
		return TypeBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return TypeInteger
	case float32, float64:
		return TypeFloat
	case decimal.Decimal, *decimal.Decimal:
		return TypeDecimal
	case json.Number:
		if strings.ContainsAny(t.String(), ".eE") {
			return TypeFloat
		}
		return TypeInteger
	}
	return TypeUnknown
}

// DecodeJSON decodes r into v keeping numbers as json.Number, so integers and
// floats stay distinguishable for ValidateFields.
func DecodeJSON(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return dec.Decode(v)
}

func sortedKeys(fields Fields) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func containsType(types []SemanticType, t SemanticType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

func typeNames(types []SemanticType) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}
