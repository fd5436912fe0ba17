package result

import (
	"encoding/json"

	"github.com/nspcc-dev/near-go/pkg/util"
)

type (
	// LightClientBlock is the "next_light_client_block" method response.
	// The node returns null when no newer light client block is available,
	// in which case the whole pointer is nil.
	LightClientBlock struct {
		PrevBlockHash      util.CryptoHash   `json:"prev_block_hash"`
		NextBlockInnerHash util.CryptoHash   `json:"next_block_inner_hash"`
		InnerLite          BlockHeaderInnerLite `json:"inner_lite"`
		InnerRestHash      util.CryptoHash   `json:"inner_rest_hash"`
		NextBps            []json.RawMessage `json:"next_bps,omitempty"`
		ApprovalsAfterNext []*string         `json:"approvals_after_next"`
	}

	// BlockHeaderInnerLite is the light client subset of a block header.
	BlockHeaderInnerLite struct {
		Height          util.BlockHeight `json:"height"`
		EpochID         util.CryptoHash  `json:"epoch_id"`
		NextEpochID     util.CryptoHash  `json:"next_epoch_id"`
		PrevStateRoot   util.CryptoHash  `json:"prev_state_root"`
		OutcomeRoot     util.CryptoHash  `json:"outcome_root"`
		Timestamp       uint64           `json:"timestamp"`
		TimestampNanosec string          `json:"timestamp_nanosec"`
		NextBpHash      util.CryptoHash  `json:"next_bp_hash"`
		BlockMerkleRoot util.CryptoHash  `json:"block_merkle_root"`
	}

	// LightClientExecutionProof is the "light_client_proof" method
	// response proving an execution outcome against a light client head.
	LightClientExecutionProof struct {
		OutcomeProof     ExecutionOutcomeWithID `json:"outcome_proof"`
		OutcomeRootProof []MerklePathItem       `json:"outcome_root_proof"`
		BlockHeaderLite  json.RawMessage        `json:"block_header_lite"`
		BlockProof       []MerklePathItem       `json:"block_proof"`
	}
)
