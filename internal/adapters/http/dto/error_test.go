package dto_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-item-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-item-service/internal/domain"
)

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTitle  string
	}{
		{
			name:       "ErrNotFound maps to 404",
			err:        domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantTitle:  "Not Found",
		},
		{
			name:       "ErrValidation maps to 400",
			err:        &domain.ValidationError{Fields: map[string]string{"path.itemId": "must be a valid integer"}},
			wantStatus: http.StatusBadRequest,
			wantTitle:  "Bad Request",
		},
		{
			name:       "ErrConflict maps to 409",
			err:        domain.ErrConflict,
			wantStatus: http.StatusConflict,
			wantTitle:  "Conflict",
		},
		{
			name:       "ErrUnavailable maps to 502",
			err:        domain.ErrUnavailable,
			wantStatus: http.StatusBadGateway,
			wantTitle:  "Bad Gateway",
		},
		{
			name:       "unknown error maps to 500",
			err:        errors.New("oops"),
			wantStatus: http.StatusInternalServerError,
			wantTitle:  "Internal Server Error",
		},
		{
			name:       "wrapped ErrNotFound preserves mapping",
			err:        fmt.Errorf("item 42: %w", domain.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantTitle:  "Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/validation/v2/items/42", nil)
			got := dto.NewErrorResponse(r, tt.err)

			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantTitle, got.Title)
		})
	}
}

func TestNewErrorResponse_Fields(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/validation/v2/items/9?status=true", nil)
	err := fmt.Errorf("item 9: %w", domain.ErrNotFound)

	got := dto.NewErrorResponse(r, err)

	assert.Equal(t, "about:blank", got.Type)
	assert.Equal(t, "/validation/v2/items/9?status=true", got.Instance)
	assert.Equal(t, "item 9: not found", got.Detail)
	assert.Nil(t, got.Errors)
}

func TestNewErrorResponse_ValidationErrorsSorted(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"path.itemId": "must be a valid integer",
		"body":        "invalid JSON",
	}}

	r := httptest.NewRequest(http.MethodPost, "/validation/v2/items/x/edit", nil)
	got := dto.NewErrorResponse(r, verr)

	require.Len(t, got.Errors, 2)
	assert.Equal(t, "body", got.Errors[0].Location)
	assert.Equal(t, "path.itemId", got.Errors[1].Location)
	assert.Equal(t, "must be a valid integer", got.Errors[1].Message)
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/validation/v2/items/42", nil)

	dto.WriteErrorResponse(w, r, domain.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Equal(t, "Not Found", resp.Title)
}

func TestWriteStatusResponse(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/validation/v2/items/add", nil)

	dto.WriteStatusResponse(w, r, http.StatusUnsupportedMediaType, errors.New(`content type "text/plain" is not supported`))

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Unsupported Media Type", resp.Title)
	assert.Contains(t, resp.Detail, "text/plain")
}
