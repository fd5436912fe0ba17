package util

import (
	"encoding/json"
	"errors"
	"fmt"
)

type (
	// AccountID is a human-readable NEAR account identifier, like
	// "miraclx.near" or "nspcc.testnet".
	AccountID string

	// BlockHeight is the ordinal number of a block in the chain.
	BlockHeight uint64

	// ShardID identifies a shard within a block.
	ShardID uint64

	// Gas is an amount of computational resource attached to or burnt by
	// an action.
	Gas uint64

	// Nonce is an access key nonce.
	Nonce uint64

	// Finality is the level of block finality a request is resolved
	// against.
	Finality string

	// SyncCheckpoint is a named synchronisation point in chain history.
	SyncCheckpoint string
)

const (
	// FinalityOptimistic uses the latest block recorded on the queried node.
	FinalityOptimistic Finality = "optimistic"
	// FinalityNearFinal uses the block validated on at least half of the nodes.
	FinalityNearFinal Finality = "near-final"
	// FinalityFinal uses a block validated on at least 66% of the nodes.
	FinalityFinal Finality = "final"

	// CheckpointGenesis references the genesis block.
	CheckpointGenesis SyncCheckpoint = "genesis"
	// CheckpointEarliestAvailable references the earliest block the node holds.
	CheckpointEarliestAvailable SyncCheckpoint = "earliest_available"
)

// BlockID identifies a block either by its height or by its hash. Exactly one
// of the fields is set. On the wire it's either a JSON number or a base58
// string.
type BlockID struct {
	Height *BlockHeight
	Hash   *CryptoHash
}

// BlockIDFromHeight creates a height-based BlockID.
func BlockIDFromHeight(height BlockHeight) BlockID {
	return BlockID{Height: &height}
}

// BlockIDFromHash creates a hash-based BlockID.
func BlockIDFromHash(hash CryptoHash) BlockID {
	return BlockID{Hash: &hash}
}

// String implements the stringer interface.
func (b BlockID) String() string {
	if b.Height != nil {
		return fmt.Sprintf("%d", *b.Height)
	}
	if b.Hash != nil {
		return b.Hash.String()
	}
	return "<empty>"
}

// MarshalJSON implements the json marshaller interface.
func (b BlockID) MarshalJSON() ([]byte, error) {
	if b.Height != nil {
		return json.Marshal(*b.Height)
	}
	if b.Hash != nil {
		return json.Marshal(*b.Hash)
	}
	return nil, errors.New("empty block id")
}

// UnmarshalJSON implements the json unmarshaller interface.
func (b *BlockID) UnmarshalJSON(data []byte) error {
	var height BlockHeight
	if err := json.Unmarshal(data, &height); err == nil {
		b.Height, b.Hash = &height, nil
		return nil
	}
	var hash CryptoHash
	if err := json.Unmarshal(data, &hash); err != nil {
		return fmt.Errorf("block id is neither a height nor a hash: %w", err)
	}
	b.Height, b.Hash = nil, &hash
	return nil
}

// BlockReference points a request at a specific block, a finality level or a
// sync checkpoint. A zero BlockReference is invalid, use one of the
// constructors.
type BlockReference struct {
	BlockID        *BlockID        `json:"block_id,omitempty"`
	Finality       *Finality       `json:"finality,omitempty"`
	SyncCheckpoint *SyncCheckpoint `json:"sync_checkpoint,omitempty"`
}

// AtBlock creates a BlockReference for the given block.
func AtBlock(id BlockID) BlockReference {
	return BlockReference{BlockID: &id}
}

// AtFinality creates a BlockReference for the given finality level.
func AtFinality(f Finality) BlockReference {
	return BlockReference{Finality: &f}
}

// AtCheckpoint creates a BlockReference for the given sync checkpoint.
func AtCheckpoint(c SyncCheckpoint) BlockReference {
	return BlockReference{SyncCheckpoint: &c}
}

// FinalBlock references the latest final block, the default for most queries.
func FinalBlock() BlockReference {
	return AtFinality(FinalityFinal)
}
