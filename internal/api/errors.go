// Package api provides the authenticated HTTP client for the GigMate backend REST API.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind classifies a transport failure so callers can react without inspecting
// status codes or raw transport errors.
type Kind string

const (
	// KindNetwork covers connectivity failures and request timeouts. Retryable.
	KindNetwork Kind = "network"
	// KindAuth means the session has expired; the host must re-authenticate.
	KindAuth Kind = "auth"
	// KindValidation means the backend rejected the payload, possibly with
	// field-level messages.
	KindValidation Kind = "validation"
	// KindServer covers 5xx responses. Retryable.
	KindServer Kind = "server"
	// KindDecode means the response body could not be decoded.
	KindDecode Kind = "decode"
)

// Error is the only error type returned by Client methods. No raw transport
// error escapes the client.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Fields     map[string]string
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsKind reports whether err is an *api.Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// IsRetryable reports whether err is worth retrying (network or server failure).
func IsRetryable(err error) bool {
	return IsKind(err, KindNetwork) || IsKind(err, KindServer)
}

// decodeErrorBody turns a non-2xx response body into a validation Error.
// The backend emits either a plain string, a {"detail": "..."} object, or a
// field-keyed map of messages. For field maps the headline message is reduced
// via first-key-wins (keys sorted for determinism).
func decodeErrorBody(statusCode int, body []byte) *Error {
	trimmed := strings.TrimSpace(string(body))

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || len(raw) == 0 {
		msg := trimmed
		if msg == "" {
			msg = fmt.Sprintf("request rejected with status %d", statusCode)
		}
		return &Error{Kind: KindValidation, StatusCode: statusCode, Message: msg}
	}

	if detail, ok := raw["detail"]; ok {
		var msg string
		if json.Unmarshal(detail, &msg) == nil && msg != "" {
			return &Error{Kind: KindValidation, StatusCode: statusCode, Message: msg}
		}
	}

	fields := make(map[string]string, len(raw))
	for key, val := range raw {
		if msg := firstMessage(val); msg != "" {
			fields[key] = msg
		}
	}
	if len(fields) == 0 {
		return &Error{Kind: KindValidation, StatusCode: statusCode, Message: trimmed}
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	first := keys[0]

	return &Error{
		Kind:       KindValidation,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("%s: %s", first, fields[first]),
		Fields:     fields,
	}
}

// firstMessage extracts a human-readable message from a field value that is
// either a string or a list of strings.
func firstMessage(val json.RawMessage) string {
	var s string
	if json.Unmarshal(val, &s) == nil {
		return s
	}
	var list []string
	if json.Unmarshal(val, &list) == nil && len(list) > 0 {
		return list[0]
	}
	return ""
}
