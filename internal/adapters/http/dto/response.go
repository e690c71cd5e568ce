// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/go-item-service/internal/domain/item"
	"github.com/jsamuelsen11/go-item-service/internal/domain/validation"
)

// ItemResponse represents a single stored item. Absent fields are null.
type ItemResponse struct {
	ID       int64   `json:"id"`
	ItemName *string `json:"itemName"`
	Price    *int64  `json:"price"`
	Quantity *int64  `json:"quantity"`
}

// ItemListResponse represents the item list view.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Count int            `json:"count"`
}

// ItemDetailResponse represents the item detail view. Status is true right
// after a successful add.
type ItemDetailResponse struct {
	Item   ItemResponse `json:"item"`
	Status bool         `json:"status"`
}

// ToItemResponse converts a domain Item to an HTTP response DTO.
func ToItemResponse(it *item.Item) ItemResponse {
	return ItemResponse{
		ID:       it.ID,
		ItemName: it.ItemName,
		Price:    it.Price,
		Quantity: it.Quantity,
	}
}

// ToItemListResponse converts a slice of domain Items to the list view.
func ToItemListResponse(items []item.Item) ItemListResponse {
	out := make([]ItemResponse, len(items))
	for i := range items {
		out[i] = ToItemResponse(&items[i])
	}
	return ItemListResponse{Items: out, Count: len(out)}
}

// FormResponse is the add and edit form view: the field text to show in
// each input plus any errors to render next to it.
type FormResponse struct {
	ID           int64                 `json:"id,omitempty"`
	Item         map[string]string     `json:"item"`
	FieldErrors  []FieldErrorResponse  `json:"fieldErrors"`
	GlobalErrors []GlobalErrorResponse `json:"globalErrors"`
}

// FieldErrorResponse is one rejected field.
type FieldErrorResponse struct {
	Field          string   `json:"field"`
	Codes          []string `json:"codes"`
	Arguments      []any    `json:"arguments"`
	RejectedValue  any      `json:"rejectedValue"`
	BindingFailure bool     `json:"bindingFailure"`
	Message        string   `json:"message"`
}

// GlobalErrorResponse is one object level error.
type GlobalErrorResponse struct {
	Codes     []string `json:"codes"`
	Arguments []any    `json:"arguments"`
	Message   string   `json:"message"`
}

// NewFormResponse builds a form view from the field text and report. Messages
// are resolved with src. A nil report renders a form without errors.
func NewFormResponse(values map[string]string, report *validation.Report, src validation.MessageSource) FormResponse {
	resp := FormResponse{
		Item:         values,
		FieldErrors:  []FieldErrorResponse{},
		GlobalErrors: []GlobalErrorResponse{},
	}
	if resp.Item == nil {
		resp.Item = map[string]string{}
	}
	if report == nil {
		return resp
	}

	for _, fe := range report.AllFieldErrors() {
		resp.FieldErrors = append(resp.FieldErrors, FieldErrorResponse{
			Field:          fe.Field,
			Codes:          fe.Codes,
			Arguments:      nonNilArgs(fe.Arguments),
			RejectedValue:  fe.RejectedValue,
			BindingFailure: fe.BindingFailure,
			Message:        validation.ResolveMessage(src, fe.Resolvable),
		})
	}
	for _, oe := range report.GlobalErrors() {
		resp.GlobalErrors = append(resp.GlobalErrors, GlobalErrorResponse{
			Codes:     oe.Codes,
			Arguments: nonNilArgs(oe.Arguments),
			Message:   validation.ResolveMessage(src, oe.Resolvable),
		})
	}
	return resp
}

func nonNilArgs(args []any) []any {
	if args == nil {
		return []any{}
	}
	return args
}
