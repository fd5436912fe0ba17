package rpcclient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nspcc-dev/near-go/pkg/nearrpc"
)

// Method describes a typed remote procedure: a wire method name, a parameter
// encoding and decoders for the result and for the method-specific error
// shape. Implementations are stateless values, safe to reuse across
// concurrent calls and across clients. Every catalog request type in this
// package implements it; see AnyRequest for calling methods outside the
// catalog.
type Method[T any] interface {
	// MethodName returns the wire method identifier.
	MethodName() string
	// EncodeParams produces the value marshalled into the request params
	// field, exactly the shape the server expects (object, array or nil
	// for zero-argument methods).
	EncodeParams() (any, error)
	// DecodeResult parses the response result field.
	DecodeResult(raw json.RawMessage) (T, error)
	// DecodeHandlerError is a best-effort parser for the method-specific
	// error payload, reporting false on shape mismatch so that error
	// resolution can fall back to the generic classification.
	DecodeHandlerError(data json.RawMessage) (error, bool)
}

// Call executes the given method on the client, returning the typed result or
// one of the errors described in this package: a *TransportError or
// *ProtocolError if no well-formed response was obtained, a *DecodeError if
// the result doesn't match the method's result type, or a resolved server
// error (*nearrpc.HandlerError, *nearrpc.Error or *nearrpc.OpaqueError) if
// the node reported one.
func Call[T any](ctx context.Context, c *Client, m Method[T]) (T, error) {
	var zero T

	params, err := m.EncodeParams()
	if err != nil {
		return zero, &TransportError{Kind: TransportSend, Err: err}
	}
	resp, err := c.performRequest(ctx, m.MethodName(), params)
	if err != nil {
		return zero, err
	}
	if len(resp.Error) > 0 {
		return zero, nearrpc.ResolveError(resp.Error, m.DecodeHandlerError)
	}
	v, err := m.DecodeResult(resp.Result)
	if err != nil {
		return zero, &DecodeError{
			Type: fmt.Sprintf("%T", zero),
			Raw:  resp.Result,
			Err:  err,
		}
	}
	return v, nil
}

// CallOn is the symmetric form of Call with the method driving the exchange,
// convenient when one request value is replayed against several clients.
func CallOn[T any](ctx context.Context, m Method[T], c *Client) (T, error) {
	return Call(ctx, c, m)
}

// AnyRequest is a generic escape hatch for methods absent from the catalog or
// too fresh to have typed bindings: the caller supplies the method name, the
// params value and the result type, and assumes responsibility for the
// name/shape pairing. Instantiated with T = json.RawMessage it never fails to
// decode, which is the escape hatch for entirely unknown result shapes.
type AnyRequest[T any] struct {
	Method string
	Params any
	// KnownErrors lists the handler error cause names to decode into
	// *nearrpc.CauseError; leave empty to classify all server errors
	// generically.
	KnownErrors []string
}

// MethodName implements the Method interface.
func (r AnyRequest[T]) MethodName() string {
	return r.Method
}

// EncodeParams implements the Method interface.
func (r AnyRequest[T]) EncodeParams() (any, error) {
	return r.Params, nil
}

// DecodeResult implements the Method interface.
func (r AnyRequest[T]) DecodeResult(raw json.RawMessage) (T, error) {
	return decodeInto[T](raw)
}

// DecodeHandlerError implements the Method interface.
func (r AnyRequest[T]) DecodeHandlerError(data json.RawMessage) (error, bool) {
	if len(r.KnownErrors) == 0 {
		return nil, false
	}
	return nearrpc.CauseDecoder(r.KnownErrors...)(data)
}

// decodeInto is the shared strict result decoder behind every catalog entry.
func decodeInto[T any](raw json.RawMessage) (T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, err
	}
	return v, nil
}
