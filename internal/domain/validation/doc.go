// Package validation implements the error reporting protocol used when a
// submitted form is bound to a domain object and checked against business
// rules.
//
// A rejected condition is either a [FieldError] (one field of the object) or
// an [ObjectError] (a rule spanning several fields). Both carry an ordered
// list of message codes, most specific first, computed by a [CodesResolver]
// so that a [MessageSource] can look up a human readable message:
//
//	report := validation.NewReport("item", it)
//	report.RejectValue("price", "range", []any{1000, 1000000}, "")
//	// codes: range.item.price, range.price, range.int64, range
//
// A [Report] keeps errors in detection order and never deduplicates them.
package validation
