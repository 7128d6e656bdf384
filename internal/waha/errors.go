package waha

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// APIError is a gateway response with status >= 400. Detail holds the error
// body the gateway returned: compacted JSON when the body parses, raw text
// otherwise.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Detail)
}

func newAPIError(status int, body []byte) *APIError {
	detail := strings.TrimSpace(string(body))
	if json.Valid(body) {
		buf := new(bytes.Buffer)
		if err := json.Compact(buf, body); err == nil {
			detail = buf.String()
		}
	}
	return &APIError{Status: status, Detail: detail}
}
