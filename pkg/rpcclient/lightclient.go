package rpcclient

import (
	"context"

	"github.com/nspcc-dev/near-go/pkg/nearrpc"
	"github.com/nspcc-dev/near-go/pkg/nearrpc/result"
	"github.com/nspcc-dev/near-go/pkg/util"
)

var lightClientErrs = nearrpc.CauseDecoder("UNKNOWN_BLOCK", "INVALID_TRANSACTION", "NOT_CONFIRMED", "UNAVAILABLE_SHARD")

type (
	txProofParams struct {
		Type            string          `json:"type"`
		TransactionHash util.CryptoHash `json:"transaction_hash"`
		SenderID        util.AccountID  `json:"sender_id"`
		LightClientHead util.CryptoHash `json:"light_client_head"`
	}

	receiptProofParams struct {
		Type            string          `json:"type"`
		ReceiptID       util.CryptoHash `json:"receipt_id"`
		ReceiverID      util.AccountID  `json:"receiver_id"`
		LightClientHead util.CryptoHash `json:"light_client_head"`
	}
)

// NextLightClientBlockRequest describes the "next_light_client_block" method
// returning the next block a light client at the given head should advance
// to. The result is nil when no newer block is available.
func NextLightClientBlockRequest(lastBlockHash util.CryptoHash) Method[*result.LightClientBlock] {
	return request[*result.LightClientBlock]{
		name:   "next_light_client_block",
		params: []util.CryptoHash{lastBlockHash},
		errs:   lightClientErrs,
	}
}

// TxProofRequest describes the "light_client_proof" method proving a
// transaction outcome against the given light client head.
func TxProofRequest(txHash util.CryptoHash, sender util.AccountID, head util.CryptoHash) Method[result.LightClientExecutionProof] {
	return request[result.LightClientExecutionProof]{
		name: "light_client_proof",
		params: txProofParams{
			Type:            "transaction",
			TransactionHash: txHash,
			SenderID:        sender,
			LightClientHead: head,
		},
		errs: lightClientErrs,
	}
}

// ReceiptProofRequest describes the "light_client_proof" method proving a
// receipt outcome against the given light client head.
func ReceiptProofRequest(receiptID util.CryptoHash, receiver util.AccountID, head util.CryptoHash) Method[result.LightClientExecutionProof] {
	return request[result.LightClientExecutionProof]{
		name: "light_client_proof",
		params: receiptProofParams{
			Type:            "receipt",
			ReceiptID:       receiptID,
			ReceiverID:      receiver,
			LightClientHead: head,
		},
		errs: lightClientErrs,
	}
}

// GetNextLightClientBlock returns the next light client block after the given
// one, nil if the chain hasn't advanced past it yet.
func (c *Client) GetNextLightClientBlock(ctx context.Context, lastBlockHash util.CryptoHash) (*result.LightClientBlock, error) {
	return Call(ctx, c, NextLightClientBlockRequest(lastBlockHash))
}

// GetTxProof returns a light client execution proof for the given
// transaction.
func (c *Client) GetTxProof(ctx context.Context, txHash util.CryptoHash, sender util.AccountID, head util.CryptoHash) (result.LightClientExecutionProof, error) {
	return Call(ctx, c, TxProofRequest(txHash, sender, head))
}

// GetReceiptProof returns a light client execution proof for the given
// receipt.
func (c *Client) GetReceiptProof(ctx context.Context, receiptID util.CryptoHash, receiver util.AccountID, head util.CryptoHash) (result.LightClientExecutionProof, error) {
	return Call(ctx, c, ReceiptProofRequest(receiptID, receiver, head))
}
