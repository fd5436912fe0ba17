package rpcclient

import (
	"context"
	"encoding/json"

	"github.com/nspcc-dev/near-go/pkg/nearrpc"
	"github.com/nspcc-dev/near-go/pkg/nearrpc/result"
	"github.com/nspcc-dev/near-go/pkg/util"
)

// Methods with the EXPERIMENTAL_ prefix are not covered by the node's
// stability guarantees, their wire shapes can change between protocol
// versions. Config results in particular are kept raw for that reason.

var (
	receiptErrs = nearrpc.CauseDecoder("UNKNOWN_RECEIPT")
	changesErrs = nearrpc.CauseDecoder("UNKNOWN_BLOCK", "NOT_SYNCED_YET")
)

type (
	receiptParams struct {
		ReceiptID util.CryptoHash `json:"receipt_id"`
	}

	accountChangesParams struct {
		ChangesType string           `json:"changes_type"`
		AccountIDs  []util.AccountID `json:"account_ids"`
		util.BlockReference
	}
)

// GenesisConfigRequest describes the "EXPERIMENTAL_genesis_config" method. It
// takes no parameters.
func GenesisConfigRequest() Method[json.RawMessage] {
	return request[json.RawMessage]{name: "EXPERIMENTAL_genesis_config", params: nil}
}

// ProtocolConfigRequest describes the "EXPERIMENTAL_protocol_config" method
// returning the protocol configuration effective at the given block.
func ProtocolConfigRequest(ref util.BlockReference) Method[json.RawMessage] {
	return request[json.RawMessage]{name: "EXPERIMENTAL_protocol_config", params: ref, errs: blockErrs}
}

// TxStatusWithReceiptsRequest describes the "EXPERIMENTAL_tx_status" method,
// the "tx" method variant that also returns the generated receipts.
func TxStatusWithReceiptsRequest(txHash util.CryptoHash, sender util.AccountID) Method[result.FinalExecutionOutcomeWithReceipts] {
	return request[result.FinalExecutionOutcomeWithReceipts]{
		name:   "EXPERIMENTAL_tx_status",
		params: []any{txHash, sender},
		errs:   txErrs,
	}
}

// ReceiptRequest describes the "EXPERIMENTAL_receipt" method fetching a
// receipt by its id.
func ReceiptRequest(receiptID util.CryptoHash) Method[result.ReceiptView] {
	return request[result.ReceiptView]{
		name:   "EXPERIMENTAL_receipt",
		params: receiptParams{ReceiptID: receiptID},
		errs:   receiptErrs,
	}
}

// AccountChangesRequest describes the "EXPERIMENTAL_changes" method with the
// "account_changes" type, listing changes to the given accounts in the
// referenced block.
func AccountChangesRequest(accounts []util.AccountID, ref util.BlockReference) Method[result.StateChanges] {
	return request[result.StateChanges]{
		name: "EXPERIMENTAL_changes",
		params: accountChangesParams{
			ChangesType:    "account_changes",
			AccountIDs:     accounts,
			BlockReference: ref,
		},
		errs: changesErrs,
	}
}

// GetGenesisConfig returns the raw genesis configuration of the chain.
func (c *Client) GetGenesisConfig(ctx context.Context) (json.RawMessage, error) {
	return Call(ctx, c, GenesisConfigRequest())
}

// GetProtocolConfig returns the raw protocol configuration effective at the
// given block.
func (c *Client) GetProtocolConfig(ctx context.Context, ref util.BlockReference) (json.RawMessage, error) {
	return Call(ctx, c, ProtocolConfigRequest(ref))
}

// GetTransactionStatusWithReceipts returns the final execution outcome of the
// given transaction along with all generated receipts.
func (c *Client) GetTransactionStatusWithReceipts(ctx context.Context, txHash util.CryptoHash, sender util.AccountID) (result.FinalExecutionOutcomeWithReceipts, error) {
	return Call(ctx, c, TxStatusWithReceiptsRequest(txHash, sender))
}

// GetReceipt returns the receipt with the given id.
func (c *Client) GetReceipt(ctx context.Context, receiptID util.CryptoHash) (result.ReceiptView, error) {
	return Call(ctx, c, ReceiptRequest(receiptID))
}

// GetAccountChanges returns changes to the given accounts in the referenced
// block.
func (c *Client) GetAccountChanges(ctx context.Context, accounts []util.AccountID, ref util.BlockReference) (result.StateChanges, error) {
	return Call(ctx, c, AccountChangesRequest(accounts, ref))
}
