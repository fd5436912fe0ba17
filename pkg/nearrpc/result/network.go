package result

import (
	"github.com/nspcc-dev/near-go/pkg/util"
)

type (
	// NetworkInfo is the "network_info" method response.
	NetworkInfo struct {
		ActivePeers         []PeerInfo      `json:"active_peers"`
		NumActivePeers      int             `json:"num_active_peers"`
		PeerMaxCount        uint32          `json:"peer_max_count"`
		SentBytesPerSec     uint64          `json:"sent_bytes_per_sec"`
		ReceivedBytesPerSec uint64          `json:"received_bytes_per_sec"`
		KnownProducers      []KnownProducer `json:"known_producers"`
	}

	// PeerInfo describes a connected peer.
	PeerInfo struct {
		ID        string          `json:"id"`
		Addr      string          `json:"addr,omitempty"`
		AccountID *util.AccountID `json:"account_id,omitempty"`
	}

	// KnownProducer is a block producer the node knows a route to.
	KnownProducer struct {
		AccountID util.AccountID `json:"account_id"`
		Addr      string         `json:"addr,omitempty"`
		PeerID    string         `json:"peer_id"`
	}
)
