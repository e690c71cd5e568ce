package validation

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/go-item-service/internal/domain"
)

// FieldAccessor exposes the bound values of a validated object so that a
// Report can record rejected values and field type names.
type FieldAccessor interface {
	// FieldValue returns the current value of field and whether it is set.
	FieldValue(field string) (any, bool)
	// FieldType returns the canonical type name of field, or "" if unknown.
	FieldType(field string) string
}

// Report collects the validation errors of one submission in detection
// order. It is not safe for concurrent use; a report belongs to a single
// request.
type Report struct {
	object   string
	target   FieldAccessor
	resolver *CodesResolver
	errors   []Error
}

// ReportOption configures a Report.
type ReportOption func(*Report)

// WithCodesResolver replaces the default CodesResolver.
func WithCodesResolver(resolver *CodesResolver) ReportOption {
	return func(r *Report) {
		r.resolver = resolver
	}
}

// NewReport creates an empty report for the object named object. target may
// be nil, in which case rejected values and type names are unknown.
func NewReport(object string, target FieldAccessor, opts ...ReportOption) *Report {
	r := &Report{
		object:   object,
		target:   target,
		resolver: NewCodesResolver(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ObjectName returns the name of the validated object.
func (r *Report) ObjectName() string {
	return r.object
}

// Target returns the validated object, or nil.
func (r *Report) Target() FieldAccessor {
	return r.target
}

// Add appends err to the report.
func (r *Report) Add(err Error) {
	r.errors = append(r.errors, err)
}

// Reject records an object error for code, resolving its message codes.
func (r *Report) Reject(code string, args []any, defaultMessage string) {
	r.Add(&ObjectError{
		Object: r.object,
		Resolvable: Resolvable{
			Codes:          r.resolver.ResolveObjectCodes(code, r.object),
			Arguments:      args,
			DefaultMessage: defaultMessage,
		},
	})
}

// RejectValue records a field error for code. An empty field is treated as
// Reject. The rejected value is the raw value of an earlier binding failure
// on the same field, otherwise the field's current value.
func (r *Report) RejectValue(field, code string, args []any, defaultMessage string) {
	if field == "" {
		r.Reject(code, args, defaultMessage)
		return
	}

	r.Add(&FieldError{
		Object:        r.object,
		Field:         field,
		RejectedValue: r.FieldValue(field),
		Resolvable: Resolvable{
			Codes:          r.resolver.ResolveFieldCodes(code, r.object, field, r.fieldType(field)),
			Arguments:      args,
			DefaultMessage: defaultMessage,
		},
	})
}

// RejectBinding records a binding failure: raw could not be converted to
// the type of field. The codes are resolved for the "typeMismatch" code.
func (r *Report) RejectBinding(field, raw string) {
	fieldType := r.fieldType(field)
	r.Add(&FieldError{
		Object:         r.object,
		Field:          field,
		RejectedValue:  raw,
		BindingFailure: true,
		Resolvable: Resolvable{
			Codes:     r.resolver.ResolveFieldCodes(CodeTypeMismatch, r.object, field, fieldType),
			Arguments: []any{field},
			DefaultMessage: fmt.Sprintf("Failed to convert property value of type 'string' to required type '%s' for property '%s'",
				fieldType, field),
		},
	})
}

// HasErrors reports whether any error was recorded.
func (r *Report) HasErrors() bool {
	return len(r.errors) > 0
}

// ErrorCount returns the number of recorded errors.
func (r *Report) ErrorCount() int {
	return len(r.errors)
}

// Errors returns all errors in insertion order. The slice is a copy.
func (r *Report) Errors() []Error {
	out := make([]Error, len(r.errors))
	copy(out, r.errors)
	return out
}

// AllFieldErrors returns every field error in insertion order.
func (r *Report) AllFieldErrors() []*FieldError {
	var out []*FieldError
	for _, e := range r.errors {
		if fe, ok := e.(*FieldError); ok {
			out = append(out, fe)
		}
	}
	return out
}

// FieldErrors returns the errors recorded for field in insertion order.
func (r *Report) FieldErrors(field string) []*FieldError {
	var out []*FieldError
	for _, e := range r.errors {
		if fe, ok := e.(*FieldError); ok && fe.Field == field {
			out = append(out, fe)
		}
	}
	return out
}

// FieldError returns the first error recorded for field, or nil.
func (r *Report) FieldError(field string) *FieldError {
	for _, e := range r.errors {
		if fe, ok := e.(*FieldError); ok && fe.Field == field {
			return fe
		}
	}
	return nil
}

// HasFieldErrors reports whether field has at least one error.
func (r *Report) HasFieldErrors(field string) bool {
	return r.FieldError(field) != nil
}

// GlobalErrors returns the object errors in insertion order.
func (r *Report) GlobalErrors() []*ObjectError {
	var out []*ObjectError
	for _, e := range r.errors {
		if oe, ok := e.(*ObjectError); ok {
			out = append(out, oe)
		}
	}
	return out
}

// HasGlobalErrors reports whether any object error was recorded.
func (r *Report) HasGlobalErrors() bool {
	return len(r.GlobalErrors()) > 0
}

// FieldValue returns the value to display for field: the rejected value of
// its first error if it has one, otherwise the bound value.
func (r *Report) FieldValue(field string) any {
	if fe := r.FieldError(field); fe != nil {
		return fe.RejectedValue
	}
	if r.target == nil {
		return nil
	}
	v, ok := r.target.FieldValue(field)
	if !ok {
		return nil
	}
	return v
}

// Err returns nil when the report is empty, otherwise an *Errors wrapping
// domain.ErrValidation.
func (r *Report) Err() error {
	if !r.HasErrors() {
		return nil
	}
	return &Errors{Report: r}
}

// String summarises the report for logs.
func (r *Report) String() string {
	if !r.HasErrors() {
		return fmt.Sprintf("%s: no errors", r.object)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d errors", r.object, len(r.errors))
	for _, e := range r.errors {
		b.WriteString("\n")
		b.WriteString(e.Error())
	}
	return b.String()
}

// LogValue implements slog.LogValuer.
func (r *Report) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("object", r.object),
		slog.Int("error_count", len(r.errors)),
	}

	var fields, globals []string
	for _, e := range r.errors {
		switch v := e.(type) {
		case *FieldError:
			fields = append(fields, v.Field+":"+v.Code())
		case *ObjectError:
			globals = append(globals, v.Code())
		}
	}
	if len(fields) > 0 {
		attrs = append(attrs, slog.Any("field_errors", fields))
	}
	if len(globals) > 0 {
		attrs = append(attrs, slog.Any("global_errors", globals))
	}
	return slog.GroupValue(attrs...)
}

func (r *Report) fieldType(field string) string {
	if r.target == nil {
		return ""
	}
	return r.target.FieldType(field)
}

// Errors adapts a non-empty Report to the error interface so that callers
// outside the form flow can use errors.Is(err, domain.ErrValidation).
type Errors struct {
	Report *Report
}

func (e *Errors) Error() string {
	return fmt.Sprintf("%s: %s", domain.ErrValidation.Error(), e.Report.String())
}

func (e *Errors) Unwrap() error {
	return domain.ErrValidation
}
