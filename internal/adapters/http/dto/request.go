package dto

import (
	"bytes"
	"encoding/json"
	"net/url"

	"github.com/jsamuelsen11/go-item-service/internal/domain"
)

const msgScalar = "must be a string or a number"

// ItemForm is a submitted form keyed by field name. Values keep the text as
// submitted so binding failures can echo it back. A field that is missing or
// null is absent from the map.
type ItemForm map[string]string

// FormFromValues converts urlencoded form values, keeping the first value
// of each field.
func FormFromValues(values url.Values) ItemForm {
	form := make(ItemForm, len(values))
	for field, vals := range values {
		if len(vals) > 0 {
			form[field] = vals[0]
		}
	}
	return form
}

// UnmarshalJSON accepts an object whose values are strings, numbers,
// booleans or null. Numbers keep their literal text.
// Returns a *domain.ValidationError for nested objects and arrays.
func (f *ItemForm) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	form := make(ItemForm, len(raw))
	fields := make(map[string]string)
	for field, value := range raw {
		value = bytes.TrimSpace(value)
		switch {
		case len(value) == 0, bytes.Equal(value, []byte("null")):
		case value[0] == '"':
			var s string
			if err := json.Unmarshal(value, &s); err != nil {
				return err
			}
			form[field] = s
		case value[0] == '{', value[0] == '[':
			fields["body."+field] = msgScalar
		default:
			form[field] = string(value)
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	*f = form
	return nil
}
