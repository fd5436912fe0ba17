// Package result contains typed views of the values NEAR nodes return for
// JSON-RPC method calls.
package result

import (
	"github.com/nspcc-dev/near-go/pkg/util"
)

type (
	// Status is the "status" method response describing the queried node
	// and its view of the chain.
	Status struct {
		Version               Version          `json:"version"`
		ChainID               string           `json:"chain_id"`
		ProtocolVersion       uint32           `json:"protocol_version"`
		LatestProtocolVersion uint32           `json:"latest_protocol_version"`
		RPCAddr               string           `json:"rpc_addr,omitempty"`
		Validators            []ValidatorInfo  `json:"validators"`
		SyncInfo              StatusSyncInfo   `json:"sync_info"`
		ValidatorAccountID    *util.AccountID  `json:"validator_account_id,omitempty"`
		UptimeSec             int64            `json:"uptime_sec"`
	}

	// Version identifies the node software build.
	Version struct {
		Version string `json:"version"`
		Build   string `json:"build"`
		RustcVersion string `json:"rustc_version,omitempty"`
	}

	// ValidatorInfo is a short validator descriptor used in status responses.
	ValidatorInfo struct {
		AccountID util.AccountID `json:"account_id"`
		Slashed   bool           `json:"is_slashed"`
	}

	// StatusSyncInfo describes the node's synchronisation state.
	StatusSyncInfo struct {
		LatestBlockHash   util.CryptoHash  `json:"latest_block_hash"`
		LatestBlockHeight util.BlockHeight `json:"latest_block_height"`
		LatestStateRoot   util.CryptoHash  `json:"latest_state_root"`
		LatestBlockTime   string           `json:"latest_block_time"`
		Syncing           bool             `json:"syncing"`
		EarliestBlockHash   *util.CryptoHash  `json:"earliest_block_hash,omitempty"`
		EarliestBlockHeight *util.BlockHeight `json:"earliest_block_height,omitempty"`
		EarliestBlockTime   string            `json:"earliest_block_time,omitempty"`
	}

	// GasPrice is the "gas_price" method response.
	GasPrice struct {
		GasPrice util.Balance `json:"gas_price"`
	}
)
