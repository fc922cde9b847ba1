// Package schema is the validation pass applied to every inbound payload
// before it reaches the store. Check runs the struct tag rules and Decode
// turns JSON type mismatches into the same field level errors.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"agency-campaigns/internal/core/domain"
)

// ErrMalformedJSON is returned by Decode when the body is not exactly one
// JSON document.
var ErrMalformedJSON = errors.New("invalid JSON")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Result is the outcome of a validation pass: either a valid value or the
// list of field errors explaining why it is not.
type Result[T any] struct {
	value  T
	fields []domain.FieldError
}

// Check validates v against its struct tags.
func Check[T any](v T) Result[T] {
	res := Result[T]{value: v}
	err := validate.Struct(v)
	if err == nil {
		return res
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		res.fields = []domain.FieldError{{Field: "", Message: err.Error()}}
		return res
	}
	for _, fe := range verrs {
		res.fields = append(res.fields, domain.FieldError{
			Field:   fieldPath(fe),
			Message: message(fe),
		})
	}
	return res
}

// Valid returns the value and true when validation passed.
func (r Result[T]) Valid() (T, bool) {
	return r.value, len(r.fields) == 0
}

// Err returns a *domain.ValidationError when validation failed and nil
// otherwise.
func (r Result[T]) Err() error {
	if len(r.fields) == 0 {
		return nil
	}
	return &domain.ValidationError{Fields: r.fields}
}

// Decode reads a single JSON document from r into a T. Syntax errors and
// anything but whitespace after the document yield ErrMalformedJSON; a value of the wrong type for a field yields a
// *domain.ValidationError naming that field.
func Decode[T any](r io.Reader) (T, error) {
	var v T
	dec := json.NewDecoder(r)
	err := dec.Decode(&v)
	if err == nil {
		if _, err = dec.Token(); err != io.EOF {
			return v, fmt.Errorf("%w: unexpected data after the document", ErrMalformedJSON)
		}
		return v, nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return v, &domain.ValidationError{Fields: []domain.FieldError{{
			Field:   typeErr.Field,
			Message: typeMessage(typeErr.Type),
		}}}
	}
	return v, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
}

// fieldPath drops the top level struct name from the namespace, leaving
// the JSON path of the field.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}

func typeMessage(t reflect.Type) string {
	if t == reflect.TypeOf(domain.Date{}) {
		return "must be a date in YYYY-MM-DD format"
	}
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return "must be a number"
	case reflect.String:
		return "must be a string"
	default:
		return "must be of type " + t.String()
	}
}
