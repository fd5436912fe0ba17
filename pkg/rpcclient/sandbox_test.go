package rpcclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nspcc-dev/near-go/pkg/nearrpc"
	"github.com/stretchr/testify/require"
)

// sandboxServer fakes a sandbox node whose chain height only moves when a
// fast forward request lands.
type sandboxServer struct {
	height      uint64
	perPoll     uint64
	statusCalls int
}

func (s *sandboxServer) handle(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req nearrpc.Request
		require.NoError(t, json.Unmarshal(body, &req))
		var result string
		switch req.Method {
		case "status":
			s.statusCalls++
			if s.statusCalls > 1 { // the first call samples the base height
				s.height += s.perPoll
			}
			result = fmt.Sprintf(`{"version":{"version":"2.3.0","build":"sandbox"},"chain_id":"localnet","protocol_version":73,"latest_protocol_version":73,"validators":[],"uptime_sec":1,"sync_info":{"latest_block_hash":"9MzuZrRPW1BGpFnZJUJg6SzCrixPpJDfjsNeUobRXsLe","latest_block_height":%d,"latest_state_root":"9MzuZrRPW1BGpFnZJUJg6SzCrixPpJDfjsNeUobRXsLe","latest_block_time":"2026-08-30T00:00:00Z","syncing":false}}`, s.height)
		case "sandbox_fast_forward", "sandbox_patch_state":
			result = `null`
		default:
			t.Fatalf("unexpected method %q", req.Method)
		}
		_, err = fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%d,"result":%s}`, req.ID, result)
		require.NoError(t, err)
	}
}

func startSandbox(t *testing.T, srv *sandboxServer, opts Options) *Client {
	s := httptest.NewServer(srv.handle(t))
	t.Cleanup(s.Close)
	c, err := New(s.URL, opts)
	require.NoError(t, err)
	return c
}

func TestFastForward(t *testing.T) {
	srv := &sandboxServer{height: 100, perPoll: 7}
	c := startSandbox(t, srv, Options{PollInterval: time.Millisecond, PollAttempts: 10})

	require.NoError(t, c.FastForward(context.Background(), 20))
	require.GreaterOrEqual(t, srv.height, uint64(120))
}

func TestFastForwardTimeout(t *testing.T) {
	srv := &sandboxServer{height: 100, perPoll: 0}
	c := startSandbox(t, srv, Options{PollInterval: time.Millisecond, PollAttempts: 3})

	err := c.FastForward(context.Background(), 50)
	var perr *PollTimeoutError
	require.ErrorAs(t, err, &perr)
	require.EqualValues(t, 150, perr.Target)
	require.EqualValues(t, 3, perr.Attempts)
	// One status call samples the base height, the rest are polls.
	require.Equal(t, 4, srv.statusCalls)
}

func TestFastForwardCancel(t *testing.T) {
	srv := &sandboxServer{height: 100, perPoll: 0}
	c := startSandbox(t, srv, Options{PollInterval: 50 * time.Millisecond, PollAttempts: 1000})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := c.FastForward(ctx, 50)
	require.Error(t, err)
	var perr *PollTimeoutError
	require.False(t, errors.As(err, &perr))
}

func TestPatchState(t *testing.T) {
	srv := &sandboxServer{height: 100}
	c := startSandbox(t, srv, Options{})

	records := []json.RawMessage{json.RawMessage(`{"Account":{"account_id":"sandbox"}}`)}
	require.NoError(t, c.PatchState(context.Background(), records))
}
