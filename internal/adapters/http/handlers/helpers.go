package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-item-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-item-service/internal/domain"
	"github.com/jsamuelsen11/go-item-service/internal/platform/logging"
)

// DefaultMaxFormBytes limits a submitted form body when no limit is
// configured (1 MB).
const DefaultMaxFormBytes = 1 << 20

// errUnsupportedMediaType is returned for bodies that are neither
// urlencoded forms nor JSON.
var errUnsupportedMediaType = errors.New("unsupported media type")

// parseID extracts an int64 path parameter from the chi URL params.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &domain.ValidationError{
			Fields: map[string]string{"path." + param: "must be a valid integer"},
		}
	}
	return id, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err))
	}
}

// decodeForm reads a submitted item form. Urlencoded bodies and JSON objects
// are accepted; a missing Content-Type is treated as urlencoded. The body is
// limited to maxBytes. On failure it writes an error response and returns
// false.
func decodeForm(w http.ResponseWriter, r *http.Request, maxBytes int64) (dto.ItemForm, bool) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxFormBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	form, err := readForm(r)
	if err == nil {
		return form, true
	}

	var (
		tooLarge *http.MaxBytesError
		verr     *domain.ValidationError
	)
	switch {
	case errors.As(err, &tooLarge):
		dto.WriteStatusResponse(w, r, http.StatusRequestEntityTooLarge, err)
	case errors.Is(err, errUnsupportedMediaType):
		dto.WriteStatusResponse(w, r, http.StatusUnsupportedMediaType, err)
	case errors.As(err, &verr):
		dto.WriteErrorResponse(w, r, verr)
	default:
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "malformed form body"},
		})
	}
	return nil, false
}

func readForm(r *http.Request) (dto.ItemForm, error) {
	mediaType := "application/x-www-form-urlencoded"
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errUnsupportedMediaType, ct)
		}
		mediaType = mt
	}

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if r.Header.Get("Content-Type") == "" {
			r.Header.Set("Content-Type", mediaType)
		}
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		return dto.FormFromValues(r.PostForm), nil
	case "application/json":
		var form dto.ItemForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			return nil, err
		}
		if form == nil {
			form = dto.ItemForm{}
		}
		return form, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnsupportedMediaType, mediaType)
	}
}
