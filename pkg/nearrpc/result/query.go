package result

import (
	"encoding/json"
	"fmt"

	"github.com/nspcc-dev/near-go/pkg/util"
)

type (
	// QueryHeader carries the block context every "query" response is
	// resolved against.
	QueryHeader struct {
		BlockHeight util.BlockHeight `json:"block_height"`
		BlockHash   util.CryptoHash  `json:"block_hash"`
	}

	// Account is the "query" response for the view_account request type.
	Account struct {
		QueryHeader
		Amount        util.Balance     `json:"amount"`
		Locked        util.Balance     `json:"locked"`
		CodeHash      util.CryptoHash  `json:"code_hash"`
		StorageUsage  uint64           `json:"storage_usage"`
		StoragePaidAt util.BlockHeight `json:"storage_paid_at"`
	}

	// ContractCode is the "query" response for the view_code request type.
	ContractCode struct {
		QueryHeader
		CodeBase64 string          `json:"code_base64"`
		Hash       util.CryptoHash `json:"hash"`
	}

	// ContractState is the "query" response for the view_state request type.
	ContractState struct {
		QueryHeader
		Values []StateItem       `json:"values"`
		Proof  []json.RawMessage `json:"proof,omitempty"`
	}

	// StateItem is a single key-value entry of contract state, base64 on
	// the wire.
	StateItem struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}

	// CallResult is the "query" response for the call_function request type.
	CallResult struct {
		QueryHeader
		Result Bytes    `json:"result"`
		Logs   []string `json:"logs"`
	}

	// AccessKeyView is an access key as stored on chain, a nonce plus a
	// permission.
	AccessKeyView struct {
		Nonce      util.Nonce          `json:"nonce"`
		Permission AccessKeyPermission `json:"permission"`
	}

	// AccessKey is the "query" response for the view_access_key request type.
	AccessKey struct {
		QueryHeader
		AccessKeyView
	}

	// AccessKeyList is the "query" response for the view_access_key_list
	// request type.
	AccessKeyList struct {
		QueryHeader
		Keys []AccessKeyInfo `json:"keys"`
	}

	// AccessKeyInfo pairs a public key with its access key.
	AccessKeyInfo struct {
		PublicKey string        `json:"public_key"`
		AccessKey AccessKeyView `json:"access_key"`
	}

	// AccessKeyPermission is a union over full-access and function-call
	// permissions. FunctionCall is nil for full-access keys.
	AccessKeyPermission struct {
		FunctionCall *FunctionCallPermission
	}

	// FunctionCallPermission restricts a key to calling the given methods
	// on the given receiver, with an optional allowance.
	FunctionCallPermission struct {
		Allowance   *util.Balance  `json:"allowance"`
		ReceiverID  util.AccountID `json:"receiver_id"`
		MethodNames []string       `json:"method_names"`
	}

	// Bytes is a byte slice that unmarshals from the JSON array-of-numbers
	// form NEAR uses for function call results.
	Bytes []byte
)

// FullAccess returns true for keys allowed to sign any transaction.
func (p AccessKeyPermission) FullAccess() bool {
	return p.FunctionCall == nil
}

// UnmarshalJSON implements the json unmarshaller interface. The wire form is
// either the string "FullAccess" or {"FunctionCall": {...}}.
func (p *AccessKeyPermission) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		if plain != "FullAccess" {
			return fmt.Errorf("unknown access key permission %q", plain)
		}
		p.FunctionCall = nil
		return nil
	}
	var tagged struct {
		FunctionCall *FunctionCallPermission `json:"FunctionCall"`
	}
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("invalid access key permission: %w", err)
	}
	if tagged.FunctionCall == nil {
		return fmt.Errorf("unknown access key permission: %s", data)
	}
	p.FunctionCall = tagged.FunctionCall
	return nil
}

// MarshalJSON implements the json marshaller interface.
func (p AccessKeyPermission) MarshalJSON() ([]byte, error) {
	if p.FunctionCall == nil {
		return json.Marshal("FullAccess")
	}
	return json.Marshal(map[string]*FunctionCallPermission{"FunctionCall": p.FunctionCall})
}

// UnmarshalJSON implements the json unmarshaller interface.
func (b *Bytes) UnmarshalJSON(data []byte) error {
	var nums []uint16
	if err := json.Unmarshal(data, &nums); err != nil {
		return err
	}
	out := make([]byte, len(nums))
	for i, n := range nums {
		if n > 0xff {
			return fmt.Errorf("byte value out of range: %d", n)
		}
		out[i] = byte(n)
	}
	*b = out
	return nil
}

// MarshalJSON implements the json marshaller interface.
func (b Bytes) MarshalJSON() ([]byte, error) {
	nums := make([]uint16, len(b))
	for i, c := range b {
		nums[i] = uint16(c)
	}
	return json.Marshal(nums)
}
