package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-item-service/internal/domain"
	"github.com/jsamuelsen11/go-item-service/internal/platform/httpclient"
)

// requester runs one JSON exchange with the catalog API: encode, send,
// check status, decode, and always close the body.
type requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

func (r *requester) do(ctx context.Context, method, path string, want int, in, out any) error {
	var body io.Reader = http.NoBody
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.client.BaseURL()+path, body)
	if err != nil {
		return fmt.Errorf("building %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(req)
	if resp != nil {
		defer func() {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}()
	}

	switch {
	case resp != nil && resp.StatusCode != want:
		// Also covers retries that ran out on a 5xx, where err is set too.
		r.logger.ErrorContext(ctx, "catalog request rejected",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", want),
		)
		return translateStatus(resp)
	case err != nil:
		r.logger.ErrorContext(ctx, "catalog request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return fmt.Errorf("catalog %s %s: %w: %w", method, path, domain.ErrUnavailable, err)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s: %w", method, path, err)
	}
	return nil
}
