/*
Package nearrpc contains a set of types used for JSON-RPC 2.0 communication
with NEAR nodes. It defines the basic request/response envelope types as well
as the layered error model used to classify whatever error payload a node
manages to produce.
*/
package nearrpc

import (
	"encoding/json"
)

const (
	// JSONRPCVersion is the only JSON-RPC protocol version supported.
	JSONRPCVersion = "2.0"
)

type (
	// Request represents a JSON-RPC request sent to a NEAR node. NEAR
	// methods take either an object, an array or null as params, so Params
	// is kept as an arbitrary marshallable value.
	Request struct {
		// JSONRPC is the protocol version, only valid when it contains JSONRPCVersion.
		JSONRPC string `json:"jsonrpc"`
		// Method is the method being called.
		Method string `json:"method"`
		// Params is a set of method-specific parameters. Methods taking no
		// parameters are sent with null params, never an empty array.
		Params any `json:"params"`
		// ID is an identifier associated with this request. JSON-RPC allows
		// any string for it, this client uses numeric identifiers.
		ID uint64 `json:"id"`
	}

	// Header is a generic JSON-RPC 2.0 response header (ID and JSON-RPC version).
	Header struct {
		ID      json.RawMessage `json:"id"`
		JSONRPC string          `json:"jsonrpc"`
	}

	// Response represents a standard raw JSON-RPC 2.0 response, see
	// http://www.jsonrpc.org/specification#response_object. Exactly one of
	// Result/Error is set in a well-formed response. Error is kept raw
	// because nodes have been observed to emit error payloads that don't
	// match the documented schema; see ResolveError.
	Response struct {
		Header
		Result json.RawMessage `json:"result,omitempty"`
		Error  json.RawMessage `json:"error,omitempty"`
	}
)
