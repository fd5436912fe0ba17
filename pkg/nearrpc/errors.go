package nearrpc

import (
	"encoding/json"
	"fmt"
)

type (
	// Error is the standard JSON-RPC 2.0 error object ({code, message,
	// data}) extended with the name/cause discriminants newer NEAR nodes
	// add. It's the generic classification of a server-reported error,
	// used when no method-specific typed error matches the payload.
	Error struct {
		Code    int64           `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data,omitempty"`
		Name    string          `json:"name,omitempty"`
		Cause   *ErrorCause     `json:"cause,omitempty"`

		raw json.RawMessage
	}

	// ErrorCause is the structured {name, info} form NEAR nodes wrap
	// handler errors into, nested either in the error object itself or in
	// its data field.
	ErrorCause struct {
		Name string          `json:"name"`
		Info json.RawMessage `json:"info,omitempty"`
	}

	// CauseError is a method-specific handler error decoded from an
	// ErrorCause payload. Method descriptors declare the set of cause
	// names their handler can produce, see CauseDecoder.
	CauseError struct {
		Name string          `json:"name"`
		Info json.RawMessage `json:"info,omitempty"`
	}

	// HandlerError wraps a successfully decoded method-specific error,
	// retaining the complete original error payload for diagnostics.
	HandlerError struct {
		Err error

		raw json.RawMessage
	}

	// OpaqueError retains an error payload that couldn't be parsed as any
	// known error structure. It's the universal fallback of the resolver,
	// a malformed server response never surfaces as anything worse.
	OpaqueError struct {
		Raw json.RawMessage
	}
)

// HandlerErrorDecoder is a best-effort parser for a method-specific error
// payload. It reports false when the payload doesn't match the method's error
// shape, letting the resolver fall back to the generic classification.
type HandlerErrorDecoder func(data json.RawMessage) (error, bool)

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s (code: %d)", e.Message, e.Code)
}

// Raw returns the error payload exactly as the server sent it.
func (e *Error) Raw() json.RawMessage {
	return e.raw
}

// Error implements the error interface.
func (e *CauseError) Error() string {
	if len(e.Info) > 0 {
		return fmt.Sprintf("%s: %s", e.Name, e.Info)
	}
	return e.Name
}

// Error implements the error interface.
func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler error: %s", e.Err)
}

// Unwrap makes the typed handler error reachable via errors.As.
func (e *HandlerError) Unwrap() error {
	return e.Err
}

// Raw returns the error payload exactly as the server sent it.
func (e *HandlerError) Raw() json.RawMessage {
	return e.raw
}

// Error implements the error interface.
func (e *OpaqueError) Error() string {
	return fmt.Sprintf("unrecognized error payload: %s", e.Raw)
}

// CauseDecoder returns a HandlerErrorDecoder recognizing the given cause
// names. The resulting decoder matches {name, info} payloads whose name is in
// the set and produces a *CauseError.
func CauseDecoder(names ...string) HandlerErrorDecoder {
	return func(data json.RawMessage) (error, bool) {
		var c CauseError
		if err := json.Unmarshal(data, &c); err != nil || c.Name == "" {
			return nil, false
		}
		for _, n := range names {
			if c.Name == n {
				return &c, true
			}
		}
		return nil, false
	}
}

// Resolver classifies raw error payloads. The zero value tries the
// cause-wrapped form before the flat data field, which matches the behavior
// of current NEAR nodes.
type Resolver struct {
	// FlatDataFirst makes the resolver try the method-specific decoder
	// against the flat data field before the cause-wrapped form.
	FlatDataFirst bool
}

// Resolve classifies a raw error payload, attempting in order: the
// method-specific typed error via decode, the generic JSON-RPC error shape,
// and finally an opaque wrapper around the payload as-is. It never fails,
// whatever the server sent comes back inside some error.
func (r Resolver) Resolve(raw json.RawMessage, decode HandlerErrorDecoder) error {
	var env Error
	if err := json.Unmarshal(raw, &env); err == nil {
		if decode != nil {
			for _, candidate := range r.candidates(&env) {
				if len(candidate) == 0 {
					continue
				}
				if herr, ok := decode(candidate); ok {
					return &HandlerError{Err: herr, raw: raw}
				}
			}
		}
		if env.Code != 0 || env.Message != "" || len(env.Data) > 0 {
			env.raw = raw
			return &env
		}
	}
	return &OpaqueError{Raw: raw}
}

// candidates lists the payloads a method-specific decoder is tried against,
// in resolution order.
func (r Resolver) candidates(env *Error) []json.RawMessage {
	var wrapped []json.RawMessage
	if env.Cause != nil {
		if c, err := json.Marshal(env.Cause); err == nil {
			wrapped = append(wrapped, c)
		}
	}
	// Legacy nodes nest the cause inside data instead.
	if len(env.Data) > 0 {
		var inner struct {
			Cause *ErrorCause `json:"cause"`
		}
		if err := json.Unmarshal(env.Data, &inner); err == nil && inner.Cause != nil {
			if c, err := json.Marshal(inner.Cause); err == nil {
				wrapped = append(wrapped, c)
			}
		}
	}
	if r.FlatDataFirst {
		return append([]json.RawMessage{env.Data}, wrapped...)
	}
	return append(wrapped, env.Data)
}

// ResolveError classifies a raw error payload using the default Resolver.
func ResolveError(raw json.RawMessage, decode HandlerErrorDecoder) error {
	return Resolver{}.Resolve(raw, decode)
}
