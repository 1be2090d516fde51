package lifecycle

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/dmitrijs2005/marketadmin/internal/client/api"
)

const defaultFallback = "Something went wrong"

// ErrorPayload is the single error shape reducers receive.
type ErrorPayload struct {
	Message string `json:"message"`
}

// PreconditionError short-circuits an operation before any network call.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string { return e.Message }

func Precondition(msg string) error {
	return &PreconditionError{Message: msg}
}

// Rejection is returned by Run when an operation fails. The slice state has
// already recorded Payload by the time the caller sees it.
type Rejection struct {
	Key     string
	Payload ErrorPayload
	cause   error
}

func (r *Rejection) Error() string { return r.Key + ": " + r.Payload.Message }

func (r *Rejection) Unwrap() error { return r.cause }

// Normalize turns any operation error into an ErrorPayload. A server body is
// preferred ("error" field, then "message", then a bare JSON string); with
// no usable body the fallback text is used.
func Normalize(err error, fallback string) ErrorPayload {
	if fallback == "" {
		fallback = defaultFallback
	}

	var pre *PreconditionError
	if errors.As(err, &pre) {
		return ErrorPayload{Message: pre.Message}
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		if msg := messageFromBody(apiErr.Body); msg != "" {
			return ErrorPayload{Message: msg}
		}
	}
	return ErrorPayload{Message: fallback}
}

func messageFromBody(body []byte) string {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(body, &s); err == nil {
		return s
	}

	var obj struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &obj); err != nil {
		return ""
	}
	if len(obj.Error) > 0 {
		if err := json.Unmarshal(obj.Error, &s); err == nil && s != "" {
			return s
		}
		var nested struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(obj.Error, &nested); err == nil && nested.Message != "" {
			return nested.Message
		}
	}
	return obj.Message
}
