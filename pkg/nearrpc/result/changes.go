package result

import (
	"encoding/json"

	"github.com/nspcc-dev/near-go/pkg/util"
)

type (
	// StateChanges is the "EXPERIMENTAL_changes" method response. Change
	// payloads are type-dependent and kept raw.
	StateChanges struct {
		BlockHash util.CryptoHash `json:"block_hash"`
		Changes   []StateChange   `json:"changes"`
	}

	// StateChange is a single state change with its cause.
	StateChange struct {
		Cause  json.RawMessage `json:"cause"`
		Type   string          `json:"type"`
		Change json.RawMessage `json:"change"`
	}
)
