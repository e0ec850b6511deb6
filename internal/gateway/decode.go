package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/beksultan/talentlink/internal/domain/model"
)

// DecodeList normalizes the two collection shapes the backend produces, a
// bare JSON array and a {count,next,previous,results} page envelope, into a
// plain slice, so no caller has to care which shape an endpoint produces.
func DecodeList[T any](resp *Response) ([]T, error) {
	body := bytes.TrimSpace(resp.Body)
	if len(body) == 0 {
		return nil, nil
	}
	if body[0] == '[' {
		var out []T
		if err := json.Unmarshal(body, &out); err != nil {
			return nil, fmt.Errorf("%w: list: %w", ErrDecode, err)
		}
		return out, nil
	}
	var page model.Page[T]
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("%w: page envelope: %w", ErrDecode, err)
	}
	return page.Results, nil
}

// DecodeOne unmarshals a single-object response.
func DecodeOne[T any](resp *Response) (T, error) {
	var out T
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return out, fmt.Errorf("%w: object: %w", ErrDecode, err)
	}
	return out, nil
}
