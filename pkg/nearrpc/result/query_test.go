package result

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAccountUnmarshal(t *testing.T) {
	payload := `{
		"amount": "199999959035075000000000000",
		"locked": "0",
		"code_hash": "11111111111111111111111111111111",
		"storage_usage": 264,
		"storage_paid_at": 0,
		"block_height": 17795474,
		"block_hash": "9MzuZrRPW1BGpFnZJUJg6SzCrixPpJDfjsNeUobRXsLe"
	}`
	var acc Account
	require.NoError(t, json.Unmarshal([]byte(payload), &acc))
	require.Equal(t, "199999959035075000000000000", acc.Amount.String())
	require.EqualValues(t, 264, acc.StorageUsage)
	require.EqualValues(t, 17795474, acc.BlockHeight)
}

func TestAccessKeyPermission(t *testing.T) {
	var p AccessKeyPermission

	require.NoError(t, json.Unmarshal([]byte(`"FullAccess"`), &p))
	require.True(t, p.FullAccess())

	data, err := json.Marshal(p)
	require.NoError(t, err)
	require.Equal(t, `"FullAccess"`, string(data))

	payload := `{"FunctionCall":{"allowance":"250000000000000000000000","receiver_id":"dev.testnet","method_names":["set_status"]}}`
	require.NoError(t, json.Unmarshal([]byte(payload), &p))
	require.False(t, p.FullAccess())
	require.EqualValues(t, "dev.testnet", p.FunctionCall.ReceiverID)
	require.Equal(t, []string{"set_status"}, p.FunctionCall.MethodNames)
	require.Equal(t, "250000000000000000000000", p.FunctionCall.Allowance.String())

	require.Error(t, json.Unmarshal([]byte(`"ReadOnly"`), &p))
	require.Error(t, json.Unmarshal([]byte(`{}`), &p))
}

func TestBytes(t *testing.T) {
	var b Bytes
	require.NoError(t, json.Unmarshal([]byte(`[104,105]`), &b))
	require.Equal(t, Bytes("hi"), b)

	data, err := json.Marshal(b)
	require.NoError(t, err)
	require.Equal(t, `[104,105]`, string(data))

	require.Error(t, json.Unmarshal([]byte(`[300]`), &b))
	require.Error(t, json.Unmarshal([]byte(`"aGk="`), &b))
}

func TestAccessKeyListUnmarshal(t *testing.T) {
	payload := `{
		"block_height": 17798231,
		"block_hash": "Gm7YSdx22wPuciW1jTTeRGP9mFqmon69ErFQvgcFyEEB",
		"keys": [
			{
				"public_key": "ed25519:DcA2MzgpJbrUATQLLceocVckhhAqrkingax4oJ9kZ847",
				"access_key": {"nonce": 17, "permission": "FullAccess"}
			}
		]
	}`
	var list AccessKeyList
	require.NoError(t, json.Unmarshal([]byte(payload), &list))
	require.Len(t, list.Keys, 1)
	require.EqualValues(t, 17, list.Keys[0].AccessKey.Nonce)
	require.True(t, list.Keys[0].AccessKey.Permission.FullAccess())
}
