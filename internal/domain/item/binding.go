package item

import "github.com/jsamuelsen11/go-item-service/internal/domain/validation"

// Bind converts submitted form values into a candidate item. Values that
// cannot be converted are recorded as binding failures in the returned
// report and left absent on the item; the validator appends to the same
// report.
func Bind(raw map[string]string, opts ...validation.ReportOption) (*Item, *validation.Report) {
	it := &Item{}
	report := validation.NewReport(ObjectName, it, opts...)
	b := validation.NewBinder(report)

	name, ok := raw[FieldItemName]
	it.ItemName = b.String(name, ok)

	price, ok := raw[FieldPrice]
	it.Price = b.Int64(FieldPrice, price, ok)

	quantity, ok := raw[FieldQuantity]
	it.Quantity = b.Int64(FieldQuantity, quantity, ok)

	return it, report
}
