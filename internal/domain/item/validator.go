package item

import (
	"math"
	"strings"

	"github.com/jsamuelsen11/go-item-service/internal/domain/validation"
)

// Limits enforced by Validator.
const (
	MinPrice      int64 = 1_000
	MaxPrice      int64 = 1_000_000
	MaxQuantity   int64 = 9_999
	MinTotalPrice int64 = 10_000
)

// Error codes recorded by Validator.
const (
	CodeRequired      = "required"
	CodeRange         = "range"
	CodeMax           = "max"
	CodeTotalPriceMin = "totalPriceMin"
)

// Validator checks a candidate item. It has no state and no side effects.
type Validator struct{}

// Supports reports whether target is an item this validator can check.
func (Validator) Supports(target any) bool {
	switch target.(type) {
	case *Item, Item:
		return true
	default:
		return false
	}
}

// Validate checks candidate and returns a new report.
func (v Validator) Validate(candidate *Item) *validation.Report {
	report := validation.NewReport(ObjectName, candidate)
	v.ValidateInto(candidate, report)
	return report
}

// ValidateInto checks candidate and appends any errors to report, in rule
// order: name, price, quantity, then the price × quantity minimum. The
// cross-field rule runs whenever both numbers are present, even if either
// already failed its own rule.
func (Validator) ValidateInto(candidate *Item, report *validation.Report) {
	if candidate == nil {
		candidate = &Item{}
	}

	if candidate.ItemName == nil || strings.TrimSpace(*candidate.ItemName) == "" {
		report.RejectValue(FieldItemName, CodeRequired, nil, "")
	}

	if p := candidate.Price; p == nil || *p < MinPrice || *p > MaxPrice {
		report.RejectValue(FieldPrice, CodeRange, []any{MinPrice, MaxPrice}, "")
	}

	if q := candidate.Quantity; q == nil || *q >= MaxQuantity {
		report.RejectValue(FieldQuantity, CodeMax, []any{MaxQuantity}, "")
	}

	if candidate.Price != nil && candidate.Quantity != nil {
		total := totalPrice(*candidate.Price, *candidate.Quantity)
		if total < MinTotalPrice {
			report.Reject(CodeTotalPriceMin, []any{MinTotalPrice, total}, "")
		}
	}
}

// totalPrice returns price × quantity, saturating at the int64 bounds.
func totalPrice(price, quantity int64) int64 {
	if price == 0 || quantity == 0 {
		return 0
	}
	total := price * quantity
	overflow := total/quantity != price ||
		(price == -1 && quantity == math.MinInt64) ||
		(quantity == -1 && price == math.MinInt64)
	if !overflow {
		return total
	}
	if (price > 0) == (quantity > 0) {
		return math.MaxInt64
	}
	return math.MinInt64
}
