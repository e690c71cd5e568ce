package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoMessage is returned when an error is built with neither a message code
// nor a default message, which would leave it impossible to render.
var ErrNoMessage = errors.New("validation: at least one message code or a default message is required")

// Resolvable is the part of a validation error a MessageSource renders:
// candidate codes tried in order, positional arguments substituted into the
// resolved template, and a literal fallback.
type Resolvable struct {
	Codes          []string
	Arguments      []any
	DefaultMessage string
}

// Code returns the least specific code (the bare error code), or "" when the
// error only has a default message.
func (r Resolvable) Code() string {
	if len(r.Codes) == 0 {
		return ""
	}
	return r.Codes[len(r.Codes)-1]
}

func (r Resolvable) valid() error {
	if len(r.Codes) == 0 && r.DefaultMessage == "" {
		return ErrNoMessage
	}
	return nil
}

// Error is a single rejected condition. It is implemented only by
// *FieldError and *ObjectError.
type Error interface {
	error
	// ObjectName returns the name of the validated object (e.g. "item").
	ObjectName() string
	// Message returns the codes, arguments and default message.
	Message() Resolvable

	sealed()
}

// ObjectError reports a violation that is not tied to a single field, such
// as a cross-field minimum.
type ObjectError struct {
	Object string
	Resolvable
}

// NewObjectError builds an ObjectError. It fails with ErrNoMessage when both
// codes and defaultMessage are empty.
func NewObjectError(object string, codes []string, args []any, defaultMessage string) (*ObjectError, error) {
	res := Resolvable{Codes: codes, Arguments: args, DefaultMessage: defaultMessage}
	if err := res.valid(); err != nil {
		return nil, err
	}
	return &ObjectError{Object: object, Resolvable: res}, nil
}

func (e *ObjectError) Error() string {
	return fmt.Sprintf("error in object '%s': codes [%s]; arguments %v; default message [%s]",
		e.Object, strings.Join(e.Codes, ","), e.Arguments, e.DefaultMessage)
}

// ObjectName implements Error.
func (e *ObjectError) ObjectName() string { return e.Object }

// Message implements Error.
func (e *ObjectError) Message() Resolvable { return e.Resolvable }

func (*ObjectError) sealed() {}

// FieldError reports a rejected field value. RejectedValue holds the value as
// submitted; when BindingFailure is set it could not be converted to the
// field's type and is usually the raw text.
type FieldError struct {
	Object         string
	Field          string
	RejectedValue  any
	BindingFailure bool
	Resolvable
}

// NewFieldError builds a FieldError. It fails with ErrNoMessage when both
// codes and defaultMessage are empty.
func NewFieldError(object, field string, rejected any, bindingFailure bool,
	codes []string, args []any, defaultMessage string,
) (*FieldError, error) {
	res := Resolvable{Codes: codes, Arguments: args, DefaultMessage: defaultMessage}
	if err := res.valid(); err != nil {
		return nil, err
	}
	return &FieldError{
		Object:         object,
		Field:          field,
		RejectedValue:  rejected,
		BindingFailure: bindingFailure,
		Resolvable:     res,
	}, nil
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field error in object '%s' on field '%s': rejected value [%v]; codes [%s]; arguments %v; default message [%s]",
		e.Object, e.Field, e.RejectedValue, strings.Join(e.Codes, ","), e.Arguments, e.DefaultMessage)
}

// ObjectName implements Error.
func (e *FieldError) ObjectName() string { return e.Object }

// Message implements Error.
func (e *FieldError) Message() Resolvable { return e.Resolvable }

func (*FieldError) sealed() {}
