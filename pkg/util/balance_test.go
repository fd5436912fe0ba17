package util

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBalanceFromString(t *testing.T) {
	// More than 64 bits, a realistic total supply value.
	b, err := BalanceFromString("1085072239391481744303918997788181")
	require.NoError(t, err)
	require.Equal(t, "1085072239391481744303918997788181", b.String())

	_, err = BalanceFromString("12.5")
	require.Error(t, err)
	_, err = BalanceFromString("-1")
	require.Error(t, err)
	_, err = BalanceFromString("")
	require.Error(t, err)
}

func TestBalanceJSON(t *testing.T) {
	b := NewBalance(1_000_000)
	data, err := json.Marshal(b)
	require.NoError(t, err)
	require.Equal(t, `"1000000"`, string(data))

	var decoded Balance
	require.NoError(t, json.Unmarshal([]byte(`"340282366920938463463374607431768211455"`), &decoded))
	require.Equal(t, "340282366920938463463374607431768211455", decoded.String())

	// Wire format is a string, not a number.
	require.Error(t, json.Unmarshal([]byte(`1000000`), &decoded))
}

func TestBalanceCmp(t *testing.T) {
	require.Equal(t, 0, NewBalance(5).Cmp(NewBalance(5)))
	require.Equal(t, -1, NewBalance(4).Cmp(NewBalance(5)))
	require.Equal(t, 1, NewBalance(6).Cmp(NewBalance(5)))
}
