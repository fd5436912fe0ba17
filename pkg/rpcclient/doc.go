/*
Package rpcclient implements a typed NEAR JSON-RPC 2.0 client.

Clients are created with New and are safe for concurrent use. Every remote
procedure is described by a Method descriptor pairing the wire method name
with its parameter and result types; descriptors are built by the catalog
constructors (BlockRequest, ViewAccountRequest, TxStatusRequest and friends)
and executed with Call, or through the per-method convenience wrappers on
Client. Methods without a typed binding can be called via AnyRequest.

Supported method groups:

	node       status, health, network_info, validators
	chain      block, chunk, gas_price
	query      view_account, view_code, view_state, call_function,
	           view_access_key, view_access_key_list
	tx         tx, broadcast_tx_async, broadcast_tx_commit, send_tx
	light      next_light_client_block, light_client_proof
	extra      EXPERIMENTAL_genesis_config, EXPERIMENTAL_protocol_config,
	           EXPERIMENTAL_tx_status, EXPERIMENTAL_receipt,
	           EXPERIMENTAL_changes
	sandbox    sandbox_patch_state, sandbox_fast_forward

Failed calls return errors of four distinct layers that callers can tell
apart with errors.As: *TransportError (the HTTP exchange failed),
*ProtocolError (the response is not a well-formed JSON-RPC envelope),
*DecodeError (the result doesn't match the expected type) and
server-reported errors classified by the nearrpc package (*HandlerError for
method-specific errors, *Error for the generic JSON-RPC shape, *OpaqueError
for anything else).

Endpoints requiring credentials are used via WithAuth, which attaches an
AuthScheme (APIKey or BearerToken) and returns an AuthorizedClient.
*/
package rpcclient
