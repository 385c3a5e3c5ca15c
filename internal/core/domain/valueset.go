package domain

// ValueSet is a fixed, ordered list of legal string values for one field.
// The order is observable: it is reproduced verbatim in error messages.
type ValueSet[T ~string] struct {
	field  string
	values []T
}

// NewValueSet declares the legal values of field in the given order.
func NewValueSet[T ~string](field string, values ...T) ValueSet[T] {
	return ValueSet[T]{field: field, values: values}
}

// Validate returns candidate as T when it matches one of the values exactly
// (case-sensitive), or an ErrInvalidEnumValue error listing the legal values.
func (s ValueSet[T]) Validate(candidate string) (T, error) {
	for _, v := range s.values {
		if string(v) == candidate {
			return v, nil
		}
	}
	var zero T
	return zero, &Error{
		Kind:    ErrInvalidEnumValue,
		Field:   s.field,
		Value:   candidate,
		Allowed: s.Strings(),
		Detail:  "unsupported value " + quote(candidate),
	}
}

// Contains reports whether candidate is a member of the set.
func (s ValueSet[T]) Contains(candidate T) bool {
	for _, v := range s.values {
		if v == candidate {
			return true
		}
	}
	return false
}

// Values returns a copy of the members in declared order.
func (s ValueSet[T]) Values() []T {
	out := make([]T, len(s.values))
	copy(out, s.values)
	return out
}

// Strings returns the members as plain strings in declared order.
func (s ValueSet[T]) Strings() []string {
	out := make([]string, len(s.values))
	for i, v := range s.values {
		out[i] = string(v)
	}
	return out
}

// Field is the input name the set validates.
func (s ValueSet[T]) Field() string {
	return s.field
}

func quote(s string) string {
	return `"` + s + `"`
}
