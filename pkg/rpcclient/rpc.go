package rpcclient

import (
	"context"
	"encoding/json"

	"github.com/nspcc-dev/near-go/pkg/nearrpc"
	"github.com/nspcc-dev/near-go/pkg/nearrpc/result"
	"github.com/nspcc-dev/near-go/pkg/util"
)

// request is the common Method implementation behind the catalog
// constructors. Its error decoder only recognises the handler error names
// documented for that method, everything else falls through to the generic
// classification.
type request[T any] struct {
	name   string
	params any
	errs   nearrpc.HandlerErrorDecoder
}

// MethodName implements the Method interface.
func (r request[T]) MethodName() string {
	return r.name
}

// EncodeParams implements the Method interface.
func (r request[T]) EncodeParams() (any, error) {
	return r.params, nil
}

// DecodeResult implements the Method interface.
func (r request[T]) DecodeResult(raw json.RawMessage) (T, error) {
	return decodeInto[T](raw)
}

// DecodeHandlerError implements the Method interface.
func (r request[T]) DecodeHandlerError(data json.RawMessage) (error, bool) {
	if r.errs == nil {
		return nil, false
	}
	return r.errs(data)
}

// Handler error names as nodes report them in the error cause.
var (
	blockErrs      = nearrpc.CauseDecoder("UNKNOWN_BLOCK", "NOT_SYNCED_YET")
	chunkErrs      = nearrpc.CauseDecoder("UNKNOWN_BLOCK", "UNKNOWN_CHUNK", "INVALID_SHARD_ID", "NOT_SYNCED_YET")
	gasPriceErrs   = nearrpc.CauseDecoder("UNKNOWN_BLOCK")
	validatorsErrs = nearrpc.CauseDecoder("UNKNOWN_EPOCH")
)

// StatusRequest describes the "status" method returning general node and
// chain information. It takes no parameters.
func StatusRequest() Method[result.Status] {
	return request[result.Status]{name: "status", params: nil}
}

// HealthRequest describes the "health" method. A healthy node answers with a
// null result, an unhealthy one with an error.
func HealthRequest() Method[struct{}] {
	return request[struct{}]{name: "health", params: nil}
}

// NetworkInfoRequest describes the "network_info" method listing the node's
// active peers and known block producers.
func NetworkInfoRequest() Method[result.NetworkInfo] {
	return request[result.NetworkInfo]{name: "network_info", params: nil}
}

// BlockRequest describes the "block" method resolving the given block
// reference to a full block view.
func BlockRequest(ref util.BlockReference) Method[result.Block] {
	return request[result.Block]{name: "block", params: ref, errs: blockErrs}
}

type chunkByIDParams struct {
	ChunkID util.CryptoHash `json:"chunk_id"`
}

type chunkInBlockParams struct {
	BlockID util.BlockID `json:"block_id"`
	ShardID util.ShardID `json:"shard_id"`
}

// ChunkRequest describes the "chunk" method looking a chunk up by its own
// hash.
func ChunkRequest(chunkHash util.CryptoHash) Method[result.Chunk] {
	return request[result.Chunk]{name: "chunk", params: chunkByIDParams{ChunkID: chunkHash}, errs: chunkErrs}
}

// ChunkInBlockRequest describes the "chunk" method looking a chunk up by
// block and shard.
func ChunkInBlockRequest(block util.BlockID, shard util.ShardID) Method[result.Chunk] {
	return request[result.Chunk]{name: "chunk", params: chunkInBlockParams{BlockID: block, ShardID: shard}, errs: chunkErrs}
}

// GasPriceRequest describes the "gas_price" method for the given block. A nil
// block id queries the latest block.
func GasPriceRequest(block *util.BlockID) Method[result.GasPrice] {
	return request[result.GasPrice]{name: "gas_price", params: []*util.BlockID{block}, errs: gasPriceErrs}
}

// ValidatorsRequest describes the "validators" method for the epoch the given
// block belongs to. A nil block id queries the current epoch.
func ValidatorsRequest(block *util.BlockID) Method[result.EpochValidatorInfo] {
	return request[result.EpochValidatorInfo]{name: "validators", params: []*util.BlockID{block}, errs: validatorsErrs}
}

// GetStatus returns general information about the node and the chain it
// follows.
func (c *Client) GetStatus(ctx context.Context) (result.Status, error) {
	return Call(ctx, c, StatusRequest())
}

// Health checks the node's own health report, returning nil for a healthy
// node.
func (c *Client) Health(ctx context.Context) error {
	_, err := Call(ctx, c, HealthRequest())
	return err
}

// GetNetworkInfo returns the node's current view of the network.
func (c *Client) GetNetworkInfo(ctx context.Context) (result.NetworkInfo, error) {
	return Call(ctx, c, NetworkInfoRequest())
}

// GetBlock returns the block the given reference resolves to.
func (c *Client) GetBlock(ctx context.Context, ref util.BlockReference) (result.Block, error) {
	return Call(ctx, c, BlockRequest(ref))
}

// GetChunk returns the chunk with the given hash.
func (c *Client) GetChunk(ctx context.Context, chunkHash util.CryptoHash) (result.Chunk, error) {
	return Call(ctx, c, ChunkRequest(chunkHash))
}

// GetChunkInBlock returns the chunk of the given shard in the given block.
func (c *Client) GetChunkInBlock(ctx context.Context, block util.BlockID, shard util.ShardID) (result.Chunk, error) {
	return Call(ctx, c, ChunkInBlockRequest(block, shard))
}

// GetGasPrice returns the gas price as of the given block, or of the latest
// block if nil is given.
func (c *Client) GetGasPrice(ctx context.Context, block *util.BlockID) (result.GasPrice, error) {
	return Call(ctx, c, GasPriceRequest(block))
}

// GetValidators returns validator information for the epoch of the given
// block, or for the current epoch if nil is given.
func (c *Client) GetValidators(ctx context.Context, block *util.BlockID) (result.EpochValidatorInfo, error) {
	return Call(ctx, c, ValidatorsRequest(block))
}
