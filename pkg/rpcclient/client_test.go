package rpcclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewInvalidEndpoint(t *testing.T) {
	for _, endpoint := range []string{
		"",
		"not an url",
		"nearrpc.mainnet.near.org",
		"ftp://rpc.mainnet.near.org",
		"http://",
		"://rpc.mainnet.near.org",
	} {
		_, err := New(endpoint, Options{})
		require.ErrorIs(t, err, ErrInvalidEndpoint, "endpoint %q", endpoint)
	}
}

func TestNewValidEndpoint(t *testing.T) {
	c, err := New("https://rpc.mainnet.near.org", Options{})
	require.NoError(t, err)
	require.Equal(t, "https://rpc.mainnet.near.org", c.Endpoint())
}

// startHeaderServer runs a test RPC server recording the headers of the last
// request and answering every call with a status result.
func startHeaderServer(t *testing.T) (*Client, *http.Header) {
	var last http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		last = r.Header.Clone()
		respondRPC(t, w, r, `{"version":{"version":"2.3.0","build":"2.3.0"},"chain_id":"testnet","protocol_version":73,"latest_protocol_version":73,"validators":[],"uptime_sec":1,"sync_info":{"latest_block_hash":"9MzuZrRPW1BGpFnZJUJg6SzCrixPpJDfjsNeUobRXsLe","latest_block_height":100,"latest_state_root":"9MzuZrRPW1BGpFnZJUJg6SzCrixPpJDfjsNeUobRXsLe","latest_block_time":"2026-08-30T00:00:00Z","syncing":false}}`, "")
	}))
	t.Cleanup(srv.Close)
	c, err := New(srv.URL, Options{})
	require.NoError(t, err)
	return c, &last
}

func TestWithHeader(t *testing.T) {
	c, last := startHeaderServer(t)

	forked := c.WithHeader("X-Custom", "forked")
	_, err := forked.GetStatus(context.Background())
	require.NoError(t, err)
	require.Equal(t, "forked", last.Get("X-Custom"))

	// The base client must stay untouched by the fork.
	_, err = c.GetStatus(context.Background())
	require.NoError(t, err)
	require.Empty(t, last.Get("X-Custom"))

	replaced := forked.WithHeader("X-Custom", "replaced")
	_, err = replaced.GetStatus(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"replaced"}, last.Values("X-Custom"))
}

func TestWithAuth(t *testing.T) {
	c, last := startHeaderServer(t)

	// No credentials leave the client before a scheme is attached.
	_, err := c.GetStatus(context.Background())
	require.NoError(t, err)
	require.Empty(t, last.Get("X-Api-Key"))
	require.Empty(t, last.Get("Authorization"))

	ac := c.WithAuth(APIKey("open sesame"))
	_, err = ac.GetStatus(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"open sesame"}, last.Values("X-Api-Key"))

	// The base client is a separate handle and stays unauthenticated.
	_, err = c.GetStatus(context.Background())
	require.NoError(t, err)
	require.Empty(t, last.Get("X-Api-Key"))

	require.Panics(t, func() {
		ac.WithAuth(BearerToken("second"))
	})
}

func TestBearerToken(t *testing.T) {
	c, last := startHeaderServer(t)

	ac := c.WithAuth(BearerToken("t0ken"))
	_, err := ac.GetStatus(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer t0ken", last.Get("Authorization"))
}

func TestPing(t *testing.T) {
	c, _ := startHeaderServer(t)
	require.NoError(t, c.Ping())
	c.Close()
}
