// ABOUTME: Response envelope tagged by "result" ("data" or "error") wrapping a typed payload.
// ABOUTME: Custom JSON marshal/unmarshal branches on the tag before decoding the payload.
package wire

import (
	"encoding/json"
	"fmt"
)

// Result tags for the envelope.
const (
	ResultData  = "data"
	ResultError = "error"
)

// Response is the envelope every endpoint replies with. Exactly one of Data
// or Err is meaningful: Err is non-nil for error responses.
type Response[T any] struct {
	Data T
	Err  *Error
}

// DataResponse wraps a successful payload.
func DataResponse[T any](data T) Response[T] {
	return Response[T]{Data: data}
}

// ErrorResponse wraps an error payload.
func ErrorResponse[T any](err Error) Response[T] {
	return Response[T]{Err: &err}
}

type responseJSON struct {
	Result  string          `json:"result"`
	Payload json.RawMessage `json:"payload"`
}

// MarshalJSON writes the tagged envelope.
func (r Response[T]) MarshalJSON() ([]byte, error) {
	var (
		payload []byte
		err     error
		result  = ResultData
	)
	if r.Err != nil {
		result = ResultError
		payload, err = json.Marshal(r.Err)
	} else {
		payload, err = json.Marshal(r.Data)
	}
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", result, err)
	}
	return json.Marshal(responseJSON{Result: result, Payload: payload})
}

// UnmarshalJSON decodes the envelope, rejecting unknown result tags.
func (r *Response[T]) UnmarshalJSON(data []byte) error {
	var j responseJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	switch j.Result {
	case ResultData:
		var payload T
		if err := json.Unmarshal(j.Payload, &payload); err != nil {
			return fmt.Errorf("unmarshal data payload: %w", err)
		}
		r.Data = payload
		r.Err = nil
	case ResultError:
		var e Error
		if err := json.Unmarshal(j.Payload, &e); err != nil {
			return fmt.Errorf("unmarshal error payload: %w", err)
		}
		var zero T
		r.Data = zero
		r.Err = &e
	default:
		return fmt.Errorf("unknown response result %q", j.Result)
	}
	return nil
}

// Unwrap returns the payload, or the envelope's Error as a Go error.
func (r Response[T]) Unwrap() (T, error) {
	if r.Err != nil {
		var zero T
		return zero, *r.Err
	}
	return r.Data, nil
}
