package rpcclient

import (
	"context"
	"encoding/base64"

	"github.com/nspcc-dev/near-go/pkg/nearrpc"
	"github.com/nspcc-dev/near-go/pkg/nearrpc/result"
	"github.com/nspcc-dev/near-go/pkg/util"
)

// WaitUntil is the execution level a transaction submission waits for before
// the node answers.
type WaitUntil string

const (
	// WaitNone returns immediately after routing the transaction.
	WaitNone WaitUntil = "NONE"
	// WaitIncluded waits for inclusion into a block.
	WaitIncluded WaitUntil = "INCLUDED"
	// WaitExecutedOptimistic waits for execution on the optimistic chain.
	WaitExecutedOptimistic WaitUntil = "EXECUTED_OPTIMISTIC"
	// WaitIncludedFinal waits for the including block to become final.
	WaitIncludedFinal WaitUntil = "INCLUDED_FINAL"
	// WaitExecuted waits for execution of the transaction and its receipts.
	WaitExecuted WaitUntil = "EXECUTED"
	// WaitFinal waits for the execution results to become final.
	WaitFinal WaitUntil = "FINAL"
)

var txErrs = nearrpc.CauseDecoder("UNKNOWN_TRANSACTION", "INVALID_TRANSACTION", "TIMEOUT_ERROR")

type sendTxParams struct {
	SignedTxBase64 string    `json:"signed_tx_base64"`
	WaitUntil      WaitUntil `json:"wait_until,omitempty"`
}

// TxStatusRequest describes the "tx" method returning the final execution
// outcome of a transaction. The sender account id routes the lookup to the
// right shard.
func TxStatusRequest(txHash util.CryptoHash, sender util.AccountID) Method[result.FinalExecutionOutcome] {
	return request[result.FinalExecutionOutcome]{
		name:   "tx",
		params: []any{txHash, sender},
		errs:   txErrs,
	}
}

// BroadcastTxAsyncRequest describes the "broadcast_tx_async" method
// submitting a signed transaction without waiting, returning its hash.
func BroadcastTxAsyncRequest(signedTx []byte) Method[util.CryptoHash] {
	return request[util.CryptoHash]{
		name:   "broadcast_tx_async",
		params: []string{base64.StdEncoding.EncodeToString(signedTx)},
		errs:   txErrs,
	}
}

// BroadcastTxCommitRequest describes the "broadcast_tx_commit" method
// submitting a signed transaction and waiting for its execution outcome.
func BroadcastTxCommitRequest(signedTx []byte) Method[result.FinalExecutionOutcome] {
	return request[result.FinalExecutionOutcome]{
		name:   "broadcast_tx_commit",
		params: []string{base64.StdEncoding.EncodeToString(signedTx)},
		errs:   txErrs,
	}
}

// SendTxRequest describes the "send_tx" method submitting a signed
// transaction and waiting for the given execution level. An empty WaitUntil
// uses the node default.
func SendTxRequest(signedTx []byte, wait WaitUntil) Method[result.FinalExecutionOutcome] {
	return request[result.FinalExecutionOutcome]{
		name: "send_tx",
		params: sendTxParams{
			SignedTxBase64: base64.StdEncoding.EncodeToString(signedTx),
			WaitUntil:      wait,
		},
		errs: txErrs,
	}
}

// GetTransactionStatus returns the final execution outcome of the given
// transaction.
func (c *Client) GetTransactionStatus(ctx context.Context, txHash util.CryptoHash, sender util.AccountID) (result.FinalExecutionOutcome, error) {
	return Call(ctx, c, TxStatusRequest(txHash, sender))
}

// SendTransactionAsync submits a signed transaction without waiting for it to
// execute and returns the transaction hash.
func (c *Client) SendTransactionAsync(ctx context.Context, signedTx []byte) (util.CryptoHash, error) {
	return Call(ctx, c, BroadcastTxAsyncRequest(signedTx))
}

// SendTransactionCommit submits a signed transaction and waits for its
// execution outcome.
func (c *Client) SendTransactionCommit(ctx context.Context, signedTx []byte) (result.FinalExecutionOutcome, error) {
	return Call(ctx, c, BroadcastTxCommitRequest(signedTx))
}

// SendTransaction submits a signed transaction and waits for the given
// execution level.
func (c *Client) SendTransaction(ctx context.Context, signedTx []byte, wait WaitUntil) (result.FinalExecutionOutcome, error) {
	return Call(ctx, c, SendTxRequest(signedTx, wait))
}
