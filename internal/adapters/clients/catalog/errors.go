package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/go-item-service/internal/domain"
)

const maxErrorBody = 64 << 10

type problem struct {
	Detail string `json:"detail"`
}

// translateStatus maps a catalog API error response onto domain sentinels.
// The RFC 9457 detail is kept as context when the body carries one.
func translateStatus(resp *http.Response) error {
	detail := problemDetail(resp)
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch code := resp.StatusCode; {
	case code == http.StatusNotFound:
		return fmt.Errorf("catalog: %s: %w", detail, domain.ErrNotFound)
	case code == http.StatusConflict:
		return fmt.Errorf("catalog: %s: %w", detail, domain.ErrConflict)
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		return fmt.Errorf("catalog: %s: %w", detail, domain.ErrValidation)
	case code == http.StatusUnauthorized || code == http.StatusForbidden,
		code == http.StatusTooManyRequests,
		code >= http.StatusInternalServerError:
		return fmt.Errorf("catalog: %s: %w", detail, domain.ErrUnavailable)
	default:
		return fmt.Errorf("catalog: unexpected status %d: %s", code, detail)
	}
}

func problemDetail(resp *http.Response) string {
	if resp.Body == nil || !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/problem+json") {
		return ""
	}
	var p problem
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&p); err != nil {
		return ""
	}
	return p.Detail
}
