package result

import (
	"github.com/nspcc-dev/near-go/pkg/util"
)

type (
	// Block is the "block" method response.
	Block struct {
		Author util.AccountID `json:"author"`
		Header BlockHeader    `json:"header"`
		Chunks []ChunkHeader  `json:"chunks"`
	}

	// BlockHeader holds the commonly used subset of NEAR block header
	// fields. Hashes and signatures of the consensus machinery are kept,
	// prover-only fields are omitted.
	BlockHeader struct {
		Height            util.BlockHeight `json:"height"`
		PrevHeight        util.BlockHeight `json:"prev_height,omitempty"`
		Hash              util.CryptoHash  `json:"hash"`
		PrevHash          util.CryptoHash  `json:"prev_hash"`
		EpochID           util.CryptoHash  `json:"epoch_id"`
		NextEpochID       util.CryptoHash  `json:"next_epoch_id"`
		PrevStateRoot     util.CryptoHash  `json:"prev_state_root"`
		ChunkReceiptsRoot util.CryptoHash  `json:"chunk_receipts_root"`
		ChunkHeadersRoot  util.CryptoHash  `json:"chunk_headers_root"`
		ChunkTxRoot       util.CryptoHash  `json:"chunk_tx_root"`
		OutcomeRoot       util.CryptoHash  `json:"outcome_root"`
		ChunksIncluded    uint64           `json:"chunks_included"`
		Timestamp         uint64           `json:"timestamp"`
		TimestampNanosec  string           `json:"timestamp_nanosec"`
		GasPrice          util.Balance     `json:"gas_price"`
		TotalSupply       util.Balance     `json:"total_supply"`
		LatestProtocolVersion uint32       `json:"latest_protocol_version"`
		Signature         string           `json:"signature"`
	}

	// ChunkHeader describes a chunk within a block.
	ChunkHeader struct {
		ChunkHash     util.CryptoHash  `json:"chunk_hash"`
		PrevBlockHash util.CryptoHash  `json:"prev_block_hash"`
		HeightCreated  util.BlockHeight `json:"height_created"`
		HeightIncluded util.BlockHeight `json:"height_included"`
		ShardID       util.ShardID     `json:"shard_id"`
		GasUsed       util.Gas         `json:"gas_used"`
		GasLimit      util.Gas         `json:"gas_limit"`
		BalanceBurnt  util.Balance     `json:"balance_burnt"`
		OutcomeRoot   util.CryptoHash  `json:"outcome_root"`
		TxRoot        util.CryptoHash  `json:"tx_root"`
		Signature     string           `json:"signature"`
	}

	// Chunk is the "chunk" method response.
	Chunk struct {
		Author       util.AccountID          `json:"author"`
		Header       ChunkHeader             `json:"header"`
		Transactions []SignedTransactionView `json:"transactions"`
		Receipts     []ReceiptView           `json:"receipts"`
	}
)
