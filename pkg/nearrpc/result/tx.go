package result

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/nspcc-dev/near-go/pkg/util"
)

type (
	// FinalExecutionOutcome is the response of the "tx",
	// "broadcast_tx_commit" and "send_tx" methods, the transaction itself
	// plus the outcomes of its execution across all affected shards.
	FinalExecutionOutcome struct {
		Status             FinalExecutionStatus     `json:"status"`
		Transaction        SignedTransactionView    `json:"transaction"`
		TransactionOutcome ExecutionOutcomeWithID   `json:"transaction_outcome"`
		ReceiptsOutcome    []ExecutionOutcomeWithID `json:"receipts_outcome"`
	}

	// FinalExecutionOutcomeWithReceipts extends FinalExecutionOutcome with
	// the generated receipts, returned by "EXPERIMENTAL_tx_status".
	FinalExecutionOutcomeWithReceipts struct {
		FinalExecutionOutcome
		Receipts []ReceiptView `json:"receipts"`
	}

	// FinalExecutionStatus is a union over the states a transaction can be
	// in: not started, started, failed or succeeded with a value.
	FinalExecutionStatus struct {
		// Enum is one of the Execution* constants.
		Enum ExecutionEnum
		// SuccessValue is the base64-decoded return value, set for
		// ExecutionSuccess.
		SuccessValue []byte
		// Failure holds the raw failure description, set for ExecutionFailure.
		Failure json.RawMessage
	}

	// ExecutionEnum discriminates FinalExecutionStatus values.
	ExecutionEnum byte

	// SignedTransactionView is the node's JSON rendering of a signed
	// transaction. Actions are method-specific structures kept raw.
	SignedTransactionView struct {
		SignerID   util.AccountID    `json:"signer_id"`
		PublicKey  string            `json:"public_key"`
		Nonce      util.Nonce        `json:"nonce"`
		ReceiverID util.AccountID    `json:"receiver_id"`
		Actions    []json.RawMessage `json:"actions"`
		Signature  string            `json:"signature"`
		Hash       util.CryptoHash   `json:"hash"`
	}

	// ExecutionOutcomeWithID pairs an execution outcome with the hash of
	// the transaction or receipt it belongs to.
	ExecutionOutcomeWithID struct {
		Proof     []MerklePathItem `json:"proof"`
		BlockHash util.CryptoHash  `json:"block_hash"`
		ID        util.CryptoHash  `json:"id"`
		Outcome   ExecutionOutcome `json:"outcome"`
	}

	// ExecutionOutcome describes the execution of a single transaction or
	// receipt.
	ExecutionOutcome struct {
		Logs        []string          `json:"logs"`
		ReceiptIDs  []util.CryptoHash `json:"receipt_ids"`
		GasBurnt    util.Gas          `json:"gas_burnt"`
		TokensBurnt util.Balance      `json:"tokens_burnt"`
		ExecutorID  util.AccountID    `json:"executor_id"`
		Status      json.RawMessage   `json:"status"`
	}

	// MerklePathItem is a single hop of a merkle proof.
	MerklePathItem struct {
		Hash      util.CryptoHash `json:"hash"`
		Direction string          `json:"direction"`
	}

	// ReceiptView is the node's JSON rendering of a receipt. The receipt
	// body is version-dependent and kept raw.
	ReceiptView struct {
		PredecessorID util.AccountID  `json:"predecessor_id"`
		ReceiverID    util.AccountID  `json:"receiver_id"`
		ReceiptID     util.CryptoHash `json:"receipt_id"`
		Receipt       json.RawMessage `json:"receipt"`
	}
)

const (
	// ExecutionNotStarted means the transaction hasn't been processed yet.
	ExecutionNotStarted ExecutionEnum = iota
	// ExecutionStarted means the transaction is being processed.
	ExecutionStarted
	// ExecutionFailure means the transaction or one of its receipts failed.
	ExecutionFailure
	// ExecutionSuccess means every receipt succeeded.
	ExecutionSuccess
)

// IsSuccess returns true when the transaction fully succeeded.
func (s FinalExecutionStatus) IsSuccess() bool {
	return s.Enum == ExecutionSuccess
}

// UnmarshalJSON implements the json unmarshaller interface. The wire form is
// either a bare string ("NotStarted", "Started") or a single-key object
// ({"Failure": ...}, {"SuccessValue": "<base64>"}).
func (s *FinalExecutionStatus) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		switch plain {
		case "NotStarted":
			s.Enum = ExecutionNotStarted
		case "Started":
			s.Enum = ExecutionStarted
		default:
			return fmt.Errorf("unknown execution status %q", plain)
		}
		return nil
	}
	var tagged struct {
		SuccessValue *string         `json:"SuccessValue"`
		Failure      json.RawMessage `json:"Failure"`
	}
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("invalid execution status: %w", err)
	}
	switch {
	case tagged.SuccessValue != nil:
		v, err := base64.StdEncoding.DecodeString(*tagged.SuccessValue)
		if err != nil {
			return fmt.Errorf("invalid success value: %w", err)
		}
		s.Enum = ExecutionSuccess
		s.SuccessValue = v
	case len(tagged.Failure) > 0:
		s.Enum = ExecutionFailure
		s.Failure = tagged.Failure
	default:
		return fmt.Errorf("unknown execution status: %s", data)
	}
	return nil
}

// MarshalJSON implements the json marshaller interface.
func (s FinalExecutionStatus) MarshalJSON() ([]byte, error) {
	switch s.Enum {
	case ExecutionNotStarted:
		return json.Marshal("NotStarted")
	case ExecutionStarted:
		return json.Marshal("Started")
	case ExecutionFailure:
		return json.Marshal(map[string]json.RawMessage{"Failure": s.Failure})
	case ExecutionSuccess:
		return json.Marshal(map[string]string{
			"SuccessValue": base64.StdEncoding.EncodeToString(s.SuccessValue),
		})
	}
	return nil, fmt.Errorf("unknown execution status enum %d", s.Enum)
}
