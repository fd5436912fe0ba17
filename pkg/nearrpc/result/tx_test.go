package result

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFinalExecutionStatusUnmarshal(t *testing.T) {
	var s FinalExecutionStatus

	require.NoError(t, json.Unmarshal([]byte(`"NotStarted"`), &s))
	require.Equal(t, ExecutionNotStarted, s.Enum)
	require.False(t, s.IsSuccess())

	require.NoError(t, json.Unmarshal([]byte(`"Started"`), &s))
	require.Equal(t, ExecutionStarted, s.Enum)

	require.NoError(t, json.Unmarshal([]byte(`{"SuccessValue":"cmVzdWx0"}`), &s))
	require.True(t, s.IsSuccess())
	require.Equal(t, []byte("result"), s.SuccessValue)

	require.NoError(t, json.Unmarshal([]byte(`{"Failure":{"error_type":"ActionError"}}`), &s))
	require.Equal(t, ExecutionFailure, s.Enum)
	require.JSONEq(t, `{"error_type":"ActionError"}`, string(s.Failure))

	require.Error(t, json.Unmarshal([]byte(`"Pending"`), &s))
	require.Error(t, json.Unmarshal([]byte(`{}`), &s))
	require.Error(t, json.Unmarshal([]byte(`{"SuccessValue":"###"}`), &s))
}

func TestFinalExecutionStatusMarshal(t *testing.T) {
	data, err := json.Marshal(FinalExecutionStatus{Enum: ExecutionSuccess, SuccessValue: []byte("ok")})
	require.NoError(t, err)
	require.JSONEq(t, `{"SuccessValue":"b2s="}`, string(data))

	data, err = json.Marshal(FinalExecutionStatus{Enum: ExecutionNotStarted})
	require.NoError(t, err)
	require.Equal(t, `"NotStarted"`, string(data))
}

func TestFinalExecutionOutcomeUnmarshal(t *testing.T) {
	payload := `{
		"status": {"SuccessValue": ""},
		"transaction": {
			"signer_id": "miraclx.near",
			"public_key": "ed25519:DcA2MzgpJbrUATQLLceocVckhhAqrkingax4oJ9kZ847",
			"nonce": 32,
			"receiver_id": "nosedive.testnet",
			"actions": [{"Transfer": {"deposit": "1000000000000000000000000"}}],
			"signature": "ed25519:37rcwcjDBWWAaaRYCazHY72sfDbmudYvtmEBHMFmhYEfWD3mVQXqyyAdRQEVGtIqCOIBiVsfUbJ0Vt7zqByqBYTJ",
			"hash": "6zgh2u9DqHHiXzdy9ouTP7oGky2T4nugqzqt9wJZwNFm"
		},
		"transaction_outcome": {
			"proof": [],
			"block_hash": "9MzuZrRPW1BGpFnZJUJg6SzCrixPpJDfjsNeUobRXsLe",
			"id": "6zgh2u9DqHHiXzdy9ouTP7oGky2T4nugqzqt9wJZwNFm",
			"outcome": {
				"logs": [],
				"receipt_ids": ["3sawynPNP8UkeCviGqJGwiwEacfPyxDKRxsEWPpaUqtR"],
				"gas_burnt": 223182562500,
				"tokens_burnt": "22318256250000000000",
				"executor_id": "miraclx.near",
				"status": {"SuccessReceiptId": "3sawynPNP8UkeCviGqJGwiwEacfPyxDKRxsEWPpaUqtR"}
			}
		},
		"receipts_outcome": []
	}`
	var outcome FinalExecutionOutcome
	require.NoError(t, json.Unmarshal([]byte(payload), &outcome))
	require.True(t, outcome.Status.IsSuccess())
	require.EqualValues(t, "miraclx.near", outcome.Transaction.SignerID)
	require.EqualValues(t, 32, outcome.Transaction.Nonce)
	require.EqualValues(t, 223182562500, outcome.TransactionOutcome.Outcome.GasBurnt)
	require.Equal(t, "22318256250000000000", outcome.TransactionOutcome.Outcome.TokensBurnt.String())
	require.Len(t, outcome.TransactionOutcome.Outcome.ReceiptIDs, 1)
}
