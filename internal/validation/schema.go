package validation

import (
	"strconv"
	"strings"

	"github.com/phrazzld/taskbook-api/internal/domain"
)

// Schema validates an input of type T and returns the sanitized value.
// Failures are returned as *domain.ValidationError.
type Schema[T any] interface {
	Validate(input T) (T, error)
}

// SchemaFunc adapts a function to the Schema interface.
type SchemaFunc[T any] func(input T) (T, error)

// Validate implements Schema.
func (f SchemaFunc[T]) Validate(input T) (T, error) {
	return f(input)
}

// Defaulter is implemented by request types that fill in omitted optional
// fields before their constraints are checked.
type Defaulter interface {
	ApplyDefaults()
}

// Object returns a schema for a struct type whose constraints are declared
// with `validate` tags. Defaults are applied first when *T implements Defaulter.
func Object[T any](v *Validator) Schema[T] {
	return SchemaFunc[T](func(input T) (T, error) {
		if d, ok := any(&input).(Defaulter); ok {
			d.ApplyDefaults()
		}
		if err := v.Struct(input); err != nil {
			var zero T
			return zero, err
		}
		return input, nil
	})
}

// Scalar returns a schema for a bare value checked against a validator tag
// such as "required,gt=0". Failures are reported under field.
func Scalar[T any](v *Validator, field, tag string) Schema[T] {
	return SchemaFunc[T](func(input T) (T, error) {
		if err := v.Var(field, input, tag); err != nil {
			var zero T
			return zero, err
		}
		return input, nil
	})
}

// PositiveID is the schema for generated resource identifiers.
func PositiveID(v *Validator, field string) Schema[int64] {
	return Scalar[int64](v, field, "required,gt=0")
}

// ParseID converts a raw path or query segment to an integer id.
// Range checks are left to PositiveID.
func ParseID(field, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(field, "must be a number")
	}
	return id, nil
}

// ParseOptionalInt converts an optional raw query value. An empty string
// yields nil.
func ParseOptionalInt(field, raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domain.NewValidationError(field, "must be a number")
	}
	return &n, nil
}
