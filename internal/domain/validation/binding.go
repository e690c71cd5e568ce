package validation

import (
	"strconv"
	"strings"
)

// CodeTypeMismatch is the error code recorded for binding failures.
const CodeTypeMismatch = "typeMismatch"

// Binder converts raw submitted text into typed field values, recording a
// binding failure in its report when a value cannot be converted. A failed
// field binds as absent so that later rules treat it as missing.
type Binder struct {
	report *Report
}

// NewBinder creates a Binder that records failures in report.
func NewBinder(report *Report) *Binder {
	return &Binder{report: report}
}

// Report returns the report binding failures are recorded in.
func (b *Binder) Report() *Report {
	return b.report
}

// String binds a text field. Text is kept as submitted, including blank
// values; only a missing value binds as nil.
func (b *Binder) String(raw string, present bool) *string {
	if !present {
		return nil
	}
	return &raw
}

// Int64 binds an integer field. Missing or blank input binds as nil;
// anything that is not a base-10 integer is a binding failure.
func (b *Binder) Int64(field, raw string, present bool) *int64 {
	if !present {
		return nil
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	v, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		b.report.RejectBinding(field, raw)
		return nil
	}
	return &v
}
