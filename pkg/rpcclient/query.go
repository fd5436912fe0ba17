package rpcclient

import (
	"context"
	"encoding/base64"

	"github.com/nspcc-dev/near-go/pkg/nearrpc"
	"github.com/nspcc-dev/near-go/pkg/nearrpc/result"
	"github.com/nspcc-dev/near-go/pkg/util"
)

// queryErrs covers the handler errors the "query" method reports across its
// request types.
var queryErrs = nearrpc.CauseDecoder(
	"UNKNOWN_ACCOUNT",
	"INVALID_ACCOUNT",
	"UNKNOWN_ACCESS_KEY",
	"NO_CONTRACT_CODE",
	"CONTRACT_EXECUTION_ERROR",
	"TOO_LARGE_CONTRACT_STATE",
	"UNKNOWN_BLOCK",
	"GARBAGE_COLLECTED_BLOCK",
	"UNAVAILABLE_SHARD",
	"NO_SYNCED_BLOCKS",
)

type (
	viewAccountParams struct {
		RequestType string         `json:"request_type"`
		AccountID   util.AccountID `json:"account_id"`
		util.BlockReference
	}

	viewCodeParams struct {
		RequestType string         `json:"request_type"`
		AccountID   util.AccountID `json:"account_id"`
		util.BlockReference
	}

	viewStateParams struct {
		RequestType  string         `json:"request_type"`
		AccountID    util.AccountID `json:"account_id"`
		PrefixBase64 string         `json:"prefix_base64"`
		IncludeProof bool           `json:"include_proof,omitempty"`
		util.BlockReference
	}

	callFunctionParams struct {
		RequestType string         `json:"request_type"`
		AccountID   util.AccountID `json:"account_id"`
		MethodName  string         `json:"method_name"`
		ArgsBase64  string         `json:"args_base64"`
		util.BlockReference
	}

	viewAccessKeyParams struct {
		RequestType string         `json:"request_type"`
		AccountID   util.AccountID `json:"account_id"`
		PublicKey   string         `json:"public_key"`
		util.BlockReference
	}

	viewAccessKeyListParams struct {
		RequestType string         `json:"request_type"`
		AccountID   util.AccountID `json:"account_id"`
		util.BlockReference
	}
)

// ViewAccountRequest describes the "query" method with the "view_account"
// request type, returning basic account information.
func ViewAccountRequest(account util.AccountID, ref util.BlockReference) Method[result.Account] {
	return request[result.Account]{name: "query", params: viewAccountParams{
		RequestType:    "view_account",
		AccountID:      account,
		BlockReference: ref,
	}, errs: queryErrs}
}

// ViewCodeRequest describes the "query" method with the "view_code" request
// type, returning the WASM code deployed to the account.
func ViewCodeRequest(account util.AccountID, ref util.BlockReference) Method[result.ContractCode] {
	return request[result.ContractCode]{name: "query", params: viewCodeParams{
		RequestType:    "view_code",
		AccountID:      account,
		BlockReference: ref,
	}, errs: queryErrs}
}

// ViewStateRequest describes the "query" method with the "view_state" request
// type, returning the contract storage entries under the given key prefix.
// An empty prefix returns the whole state (nodes refuse this for contracts
// with large state).
func ViewStateRequest(account util.AccountID, prefix []byte, ref util.BlockReference) Method[result.ContractState] {
	return request[result.ContractState]{name: "query", params: viewStateParams{
		RequestType:    "view_state",
		AccountID:      account,
		PrefixBase64:   base64.StdEncoding.EncodeToString(prefix),
		BlockReference: ref,
	}, errs: queryErrs}
}

// CallFunctionRequest describes the "query" method with the "call_function"
// request type, executing a view call of the named contract method with the
// given raw argument bytes.
func CallFunctionRequest(account util.AccountID, method string, args []byte, ref util.BlockReference) Method[result.CallResult] {
	return request[result.CallResult]{name: "query", params: callFunctionParams{
		RequestType:    "call_function",
		AccountID:      account,
		MethodName:     method,
		ArgsBase64:     base64.StdEncoding.EncodeToString(args),
		BlockReference: ref,
	}, errs: queryErrs}
}

// ViewAccessKeyRequest describes the "query" method with the
// "view_access_key" request type for a single public key. The key is given in
// its string form, like "ed25519:...".
func ViewAccessKeyRequest(account util.AccountID, publicKey string, ref util.BlockReference) Method[result.AccessKey] {
	return request[result.AccessKey]{name: "query", params: viewAccessKeyParams{
		RequestType:    "view_access_key",
		AccountID:      account,
		PublicKey:      publicKey,
		BlockReference: ref,
	}, errs: queryErrs}
}

// ViewAccessKeyListRequest describes the "query" method with the
// "view_access_key_list" request type, returning all keys of an account.
func ViewAccessKeyListRequest(account util.AccountID, ref util.BlockReference) Method[result.AccessKeyList] {
	return request[result.AccessKeyList]{name: "query", params: viewAccessKeyListParams{
		RequestType:    "view_access_key_list",
		AccountID:      account,
		BlockReference: ref,
	}, errs: queryErrs}
}

// ViewAccount returns basic information about the given account.
func (c *Client) ViewAccount(ctx context.Context, account util.AccountID, ref util.BlockReference) (result.Account, error) {
	return Call(ctx, c, ViewAccountRequest(account, ref))
}

// ViewCode returns the contract code deployed to the given account.
func (c *Client) ViewCode(ctx context.Context, account util.AccountID, ref util.BlockReference) (result.ContractCode, error) {
	return Call(ctx, c, ViewCodeRequest(account, ref))
}

// ViewState returns the contract storage entries of the given account under
// the given key prefix.
func (c *Client) ViewState(ctx context.Context, account util.AccountID, prefix []byte, ref util.BlockReference) (result.ContractState, error) {
	return Call(ctx, c, ViewStateRequest(account, prefix, ref))
}

// CallFunction executes a view call of a contract method and returns its raw
// result.
func (c *Client) CallFunction(ctx context.Context, account util.AccountID, method string, args []byte, ref util.BlockReference) (result.CallResult, error) {
	return Call(ctx, c, CallFunctionRequest(account, method, args, ref))
}

// ViewAccessKey returns the access key of the given account with the given
// public key.
func (c *Client) ViewAccessKey(ctx context.Context, account util.AccountID, publicKey string, ref util.BlockReference) (result.AccessKey, error) {
	return Call(ctx, c, ViewAccessKeyRequest(account, publicKey, ref))
}

// ViewAccessKeyList returns all access keys of the given account.
func (c *Client) ViewAccessKeyList(ctx context.Context, account util.AccountID, ref util.BlockReference) (result.AccessKeyList, error) {
	return Call(ctx, c, ViewAccessKeyListRequest(account, ref))
}
