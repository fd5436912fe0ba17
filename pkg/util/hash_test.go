package util

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCryptoHashFromString(t *testing.T) {
	h, err := CryptoHashFromBytes(make([]byte, 32))
	require.NoError(t, err)

	decoded, err := CryptoHashFromString(h.String())
	require.NoError(t, err)
	require.True(t, h.Equals(decoded))

	_, err = CryptoHashFromString("not+base58")
	require.Error(t, err)

	_, err = CryptoHashFromString("abc") // valid base58, wrong length
	require.Error(t, err)
}

func TestCryptoHashFromBytes(t *testing.T) {
	_, err := CryptoHashFromBytes([]byte{1, 2, 3})
	require.Error(t, err)

	b := make([]byte, 32)
	b[0] = 0xff
	h, err := CryptoHashFromBytes(b)
	require.NoError(t, err)
	require.Equal(t, b, h.Bytes())
}

func TestCryptoHashJSON(t *testing.T) {
	b := make([]byte, 32)
	for i := range b {
		b[i] = byte(i)
	}
	h, err := CryptoHashFromBytes(b)
	require.NoError(t, err)

	data, err := json.Marshal(h)
	require.NoError(t, err)
	require.Equal(t, `"`+h.String()+`"`, string(data))

	var decoded CryptoHash
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, h, decoded)

	require.Error(t, json.Unmarshal([]byte(`42`), &decoded))
	require.Error(t, json.Unmarshal([]byte(`"###"`), &decoded))
}
