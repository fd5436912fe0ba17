package rpcclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidEndpoint is returned by New when the endpoint value can't be
// parsed as an HTTP URL.
var ErrInvalidEndpoint = errors.New("invalid endpoint")

// TransportKind classifies transport-level call failures.
type TransportKind int

const (
	// TransportSend means the request couldn't be serialized or sent.
	TransportSend TransportKind = iota
	// TransportReceive means a network-level failure while performing the
	// exchange (connection refused, timeout, TLS failure).
	TransportReceive
	// TransportBadRequest is an HTTP 400 response.
	TransportBadRequest
	// TransportRequestTimeout is an HTTP 408 response.
	TransportRequestTimeout
	// TransportInternalError is an HTTP 500 response.
	TransportInternalError
	// TransportServiceUnavailable is an HTTP 503 response.
	TransportServiceUnavailable
	// TransportHTTPStatus is any other non-200 HTTP response.
	TransportHTTPStatus
)

// String implements the stringer interface.
func (k TransportKind) String() string {
	switch k {
	case TransportSend:
		return "send"
	case TransportReceive:
		return "receive"
	case TransportBadRequest:
		return "bad request"
	case TransportRequestTimeout:
		return "request timeout"
	case TransportInternalError:
		return "internal server error"
	case TransportServiceUnavailable:
		return "service unavailable"
	default:
		return "http status"
	}
}

func transportKindForStatus(status int) TransportKind {
	switch status {
	case http.StatusBadRequest:
		return TransportBadRequest
	case http.StatusRequestTimeout:
		return TransportRequestTimeout
	case http.StatusInternalServerError:
		return TransportInternalError
	case http.StatusServiceUnavailable:
		return TransportServiceUnavailable
	default:
		return TransportHTTPStatus
	}
}

type (
	// TransportError means the HTTP exchange itself failed, either on the
	// network or with a non-200 status. The server never saw or never
	// answered the call, no JSON-RPC error payload is available.
	TransportError struct {
		Kind TransportKind
		// StatusCode is set for the HTTP status kinds, zero otherwise.
		StatusCode int
		Err        error
	}

	// ProtocolError means the HTTP exchange succeeded but the body is not
	// a well-formed JSON-RPC response envelope.
	ProtocolError struct {
		Err error
	}

	// DecodeError means the response envelope carried a result that
	// doesn't match the method's declared result type. Distinct from
	// server-reported errors; the raw value is retained.
	DecodeError struct {
		Type string
		Raw  json.RawMessage
		Err  error
	}

	// PollTimeoutError is returned by FastForward when the node fails to
	// reach the target height within the poll attempt budget.
	PollTimeoutError struct {
		Target   uint64
		Attempts uint64
	}
)

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error (%s): %s", e.Kind, e.Err)
}

// Unwrap supports errors.Is/As inspection of the underlying failure.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Error implements the error interface.
func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol error: %s", e.Err)
}

// Unwrap supports errors.Is/As inspection of the underlying failure.
func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("can't decode result into %s: %s", e.Type, e.Err)
}

// Unwrap supports errors.Is/As inspection of the underlying failure.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Error implements the error interface.
func (e *PollTimeoutError) Error() string {
	return fmt.Sprintf("height %d not reached after %d polls", e.Target, e.Attempts)
}
