package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/go-item-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-item-service/internal/domain/item"
	"github.com/jsamuelsen11/go-item-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-item-service/internal/platform/messages"
	"github.com/jsamuelsen11/go-item-service/internal/ports"
)

// BasePath is the mount point of the item routes.
const BasePath = "/validation/v2/items"

// ParamItemID is the chi URL parameter holding an item ID.
const ParamItemID = "itemId"

// ItemHandler serves the item views and the add and edit forms.
type ItemHandler struct {
	service      ports.ItemService
	catalog      *messages.Catalog
	maxFormBytes int64
}

// NewItemHandler creates an ItemHandler. Error messages are rendered from
// catalog in the locale picked from Accept-Language. maxFormBytes limits
// submitted bodies; zero selects DefaultMaxFormBytes.
func NewItemHandler(service ports.ItemService, catalog *messages.Catalog, maxFormBytes int64) *ItemHandler {
	return &ItemHandler{
		service:      service,
		catalog:      catalog,
		maxFormBytes: maxFormBytes,
	}
}

// ListItems handles GET /validation/v2/items.
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListItems(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToItemListResponse(items))
}

// GetItem handles GET /validation/v2/items/{itemId}. The status query flag is
// echoed so the view can confirm a save.
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, ParamItemID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	it, err := h.service.GetItem(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	status, _ := strconv.ParseBool(r.URL.Query().Get("status"))
	writeJSON(w, r, http.StatusOK, dto.ItemDetailResponse{
		Item:   dto.ToItemResponse(it),
		Status: status,
	})
}

// AddForm handles GET /validation/v2/items/add.
func (h *ItemHandler) AddForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.NewFormResponse(h.service.NewItemForm().FormValues(), nil, nil))
}

// AddItem handles POST /validation/v2/items/add. A rejected submission is
// answered with 422 and the form view; an accepted one redirects to the
// detail view with 303 See Other.
func (h *ItemHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	form, ok := decodeForm(w, r, h.maxFormBytes)
	if !ok {
		return
	}

	candidate, binding := item.Bind(form)
	outcome, err := h.service.HandleAdd(r.Context(), ports.Submission{
		Item:    candidate,
		Raw:     formText(form),
		Binding: binding,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	switch o := outcome.(type) {
	case *ports.Redisplay:
		src := h.catalog.For(r.Header.Get("Accept-Language"))
		writeJSON(w, r, http.StatusUnprocessableEntity, dto.NewFormResponse(o.Raw, o.Report, src))
	case *ports.Committed:
		location := fmt.Sprintf("%s/%d?status=%t", BasePath, o.ID, o.Status)
		http.Redirect(w, r, location, http.StatusSeeOther)
	default:
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "unexpected submission outcome",
			slog.String("type", fmt.Sprintf("%T", outcome)))
		dto.WriteErrorResponse(w, r, errors.New("unexpected submission outcome"))
	}
}

// EditForm handles GET /validation/v2/items/{itemId}/edit.
func (h *ItemHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, ParamItemID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	it, err := h.service.GetItem(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	resp := dto.NewFormResponse(it.FormValues(), nil, nil)
	resp.ID = it.ID
	writeJSON(w, r, http.StatusOK, resp)
}

// EditItem handles POST /validation/v2/items/{itemId}/edit. The form is
// bound but not validated; values that fail to bind are stored as absent.
func (h *ItemHandler) EditItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, ParamItemID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	form, ok := decodeForm(w, r, h.maxFormBytes)
	if !ok {
		return
	}

	candidate, _ := item.Bind(form)
	if err := h.service.HandleEdit(r.Context(), id, candidate); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("%s/%d", BasePath, id), http.StatusSeeOther)
}

// formText returns the text to redisplay for each item field. Fields that
// were not submitted render empty.
func formText(form dto.ItemForm) map[string]string {
	values := (&item.Item{}).FormValues()
	for field := range values {
		if v, ok := form[field]; ok {
			values[field] = v
		}
	}
	return values
}
