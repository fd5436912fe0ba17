package result

import (
	"encoding/json"

	"github.com/nspcc-dev/near-go/pkg/util"
)

type (
	// EpochValidatorInfo is the "validators" method response.
	EpochValidatorInfo struct {
		CurrentValidators []CurrentEpochValidatorInfo `json:"current_validators"`
		NextValidators    []NextEpochValidatorInfo    `json:"next_validators"`
		CurrentProposals  []json.RawMessage           `json:"current_proposals"`
		EpochStartHeight  util.BlockHeight            `json:"epoch_start_height"`
		EpochHeight       uint64                      `json:"epoch_height"`
		PrevEpochKickout  []ValidatorKickout          `json:"prev_epoch_kickout"`
	}

	// CurrentEpochValidatorInfo describes a validator of the current epoch
	// and its performance so far.
	CurrentEpochValidatorInfo struct {
		AccountID         util.AccountID `json:"account_id"`
		PublicKey         string         `json:"public_key"`
		Stake             util.Balance   `json:"stake"`
		Slashed           bool           `json:"is_slashed"`
		Shards            []util.ShardID `json:"shards"`
		NumProducedBlocks uint64         `json:"num_produced_blocks"`
		NumExpectedBlocks uint64         `json:"num_expected_blocks"`
		NumProducedChunks uint64         `json:"num_produced_chunks,omitempty"`
		NumExpectedChunks uint64         `json:"num_expected_chunks,omitempty"`
	}

	// NextEpochValidatorInfo describes a validator selected for the next
	// epoch.
	NextEpochValidatorInfo struct {
		AccountID util.AccountID `json:"account_id"`
		PublicKey string         `json:"public_key"`
		Stake     util.Balance   `json:"stake"`
		Shards    []util.ShardID `json:"shards"`
	}

	// ValidatorKickout explains why a validator was removed in the
	// previous epoch. The reason shape varies, it's kept raw.
	ValidatorKickout struct {
		AccountID util.AccountID  `json:"account_id"`
		Reason    json.RawMessage `json:"reason"`
	}
)
