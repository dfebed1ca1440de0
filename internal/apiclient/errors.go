package apiclient

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// HTTPError is returned for any response outside the 2xx range.
type HTTPError struct {
	StatusCode int
	StatusText string
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.StatusText)
}

func newHTTPError(resp *http.Response, body []byte) *HTTPError {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}

	return &HTTPError{
		StatusCode: resp.StatusCode,
		StatusText: text,
		Body:       body,
	}
}

// StatusCode reports the HTTP status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode, true
	}
	return 0, false
}
