package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-empanadas/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx response into a sentinel error carrying the
// server's "detail" message. It returns nil for 2xx responses.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	detail := detailFromBody(resp.Body())
	if detail == "" {
		detail = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	case http.StatusMethodNotAllowed:
		return fmt.Errorf("%w: %s", ErrMethodNotAllowed, detail)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrValidation, detail)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, detail)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), detail)
	}
}

// detailFromBody extracts "detail" from a JSON error body, falling back to
// the raw text.
func detailFromBody(body []byte) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail != "" {
		return errResp.Detail
	}
	return strings.TrimSpace(string(body))
}
