package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel kinds for gateway errors.
var (
	ErrRequest      = errors.New("request failed")
	ErrUnauthorized = errors.New("authentication required")
	ErrDecode       = errors.New("decode response failed")
)

// genericErrorMessage is shown when the server body carries nothing usable.
const genericErrorMessage = "request failed, try again later"

// APIError is a non-2xx server response with whatever the body yielded.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return strings.Join(parts, "; ")
}

// NotFound reports whether the error is a 404; views render those as empty
// states rather than error banners.
func (e *APIError) NotFound() bool {
	return e.StatusCode == 404
}

// apiErrorFrom extracts a user-facing message from an error body: the
// "error" or "detail" field when present, field-keyed validation maps
// otherwise, a generic message as the last resort.
func apiErrorFrom(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status, Message: genericErrorMessage}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return apiErr
	}

	for _, key := range []string{"error", "detail", "message"} {
		var msg string
		if raw, ok := payload[key]; ok && json.Unmarshal(raw, &msg) == nil && msg != "" {
			apiErr.Message = msg
			return apiErr
		}
	}

	// Field-keyed validation bodies: {"title": ["This field is required."]}.
	fields := make(map[string]string)
	for key, raw := range payload {
		var list []string
		if json.Unmarshal(raw, &list) == nil && len(list) > 0 {
			fields[key] = strings.Join(list, " ")
			continue
		}
		var single string
		if json.Unmarshal(raw, &single) == nil && single != "" {
			fields[key] = single
		}
	}
	if len(fields) > 0 {
		apiErr.Fields = fields
		apiErr.Message = fmt.Sprintf("validation failed (%d fields)", len(fields))
	}
	return apiErr
}
