package util

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlockIDJSON(t *testing.T) {
	id := BlockIDFromHeight(12345)
	data, err := json.Marshal(id)
	require.NoError(t, err)
	require.Equal(t, `12345`, string(data))

	h, err := CryptoHashFromBytes(make([]byte, 32))
	require.NoError(t, err)
	id = BlockIDFromHash(h)
	data, err = json.Marshal(id)
	require.NoError(t, err)
	require.Equal(t, `"`+h.String()+`"`, string(data))

	var decoded BlockID
	require.NoError(t, json.Unmarshal([]byte(`67890`), &decoded))
	require.NotNil(t, decoded.Height)
	require.Equal(t, BlockHeight(67890), *decoded.Height)

	require.NoError(t, json.Unmarshal(data, &decoded))
	require.NotNil(t, decoded.Hash)
	require.True(t, h.Equals(*decoded.Hash))

	require.Error(t, json.Unmarshal([]byte(`{}`), &decoded))

	_, err = json.Marshal(BlockID{})
	require.Error(t, err)
}

func TestBlockReferenceJSON(t *testing.T) {
	data, err := json.Marshal(FinalBlock())
	require.NoError(t, err)
	require.JSONEq(t, `{"finality":"final"}`, string(data))

	data, err = json.Marshal(AtBlock(BlockIDFromHeight(100)))
	require.NoError(t, err)
	require.JSONEq(t, `{"block_id":100}`, string(data))

	data, err = json.Marshal(AtCheckpoint(CheckpointGenesis))
	require.NoError(t, err)
	require.JSONEq(t, `{"sync_checkpoint":"genesis"}`, string(data))
}
