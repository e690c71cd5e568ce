// Package item defines the catalog Item and the rules a submitted item must
// satisfy before it is stored.
package item

import "strconv"

// ObjectName is the name items are reported under in validation errors and
// message codes.
const ObjectName = "item"

// Field names as they appear in forms and message codes.
const (
	FieldItemName = "itemName"
	FieldPrice    = "price"
	FieldQuantity = "quantity"
)

// Canonical type names used for the "{code}.{type}" message code.
const (
	TypeString = "string"
	TypeInt64  = "int64"
)

// Item is a catalog entry. Every field other than ID may be absent: a
// candidate item decoded from a form is not known to be valid until it has
// been through a Validator. ID is zero until the item is stored.
type Item struct {
	ID       int64
	ItemName *string
	Price    *int64
	Quantity *int64
}

// New returns a fully populated item without an ID.
func New(name string, price, quantity int64) *Item {
	return &Item{
		ItemName: &name,
		Price:    &price,
		Quantity: &quantity,
	}
}

// Clone returns a deep copy of the item.
func (it *Item) Clone() *Item {
	if it == nil {
		return nil
	}
	out := &Item{ID: it.ID}
	if it.ItemName != nil {
		v := *it.ItemName
		out.ItemName = &v
	}
	if it.Price != nil {
		v := *it.Price
		out.Price = &v
	}
	if it.Quantity != nil {
		v := *it.Quantity
		out.Quantity = &v
	}
	return out
}

// FieldValue implements validation.FieldAccessor.
func (it *Item) FieldValue(field string) (any, bool) {
	if it == nil {
		return nil, false
	}
	switch field {
	case FieldItemName:
		if it.ItemName != nil {
			return *it.ItemName, true
		}
	case FieldPrice:
		if it.Price != nil {
			return *it.Price, true
		}
	case FieldQuantity:
		if it.Quantity != nil {
			return *it.Quantity, true
		}
	}
	return nil, false
}

// FieldType implements validation.FieldAccessor.
func (*Item) FieldType(field string) string {
	switch field {
	case FieldItemName:
		return TypeString
	case FieldPrice, FieldQuantity:
		return TypeInt64
	default:
		return ""
	}
}

// FormValues renders the bound fields as form text; absent fields are empty.
func (it *Item) FormValues() map[string]string {
	values := map[string]string{
		FieldItemName: "",
		FieldPrice:    "",
		FieldQuantity: "",
	}
	if it == nil {
		return values
	}
	if it.ItemName != nil {
		values[FieldItemName] = *it.ItemName
	}
	if it.Price != nil {
		values[FieldPrice] = strconv.FormatInt(*it.Price, 10)
	}
	if it.Quantity != nil {
		values[FieldQuantity] = strconv.FormatInt(*it.Quantity, 10)
	}
	return values
}
