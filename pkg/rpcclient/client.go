package rpcclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/nspcc-dev/near-go/pkg/nearrpc"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultDialTimeout    = 4 * time.Second
	defaultRequestTimeout = 10 * time.Second
	defaultPollInterval   = 500 * time.Millisecond
	defaultPollAttempts   = 30
)

// Client represents the middleman for executing JSON RPC calls to remote NEAR
// RPC nodes. Client holds no mutable state besides the request id counter and
// can be used from multiple goroutines.
type Client struct {
	cli      *http.Client
	endpoint *url.URL
	headers  http.Header
	authed   bool
	limiter  *rate.Limiter
	log      *zap.Logger
	opts     Options
	requestF func(context.Context, *nearrpc.Request) (*nearrpc.Response, error)

	latestReqID *atomic.Uint64
	// getNextRequestID returns an ID to be used for the subsequent request
	// creation. It is defined on Client, so that our testing code can
	// override this method for the sake of more predictable request IDs
	// generation behavior.
	getNextRequestID func() uint64
}

// AuthorizedClient is a Client that carries exactly one authentication
// header. It's a separate type so that call sites requiring credentials can
// demand one at compile time; it behaves identically to Client otherwise.
type AuthorizedClient struct {
	*Client
}

// Options defines options for the RPC client. All values are optional.
type Options struct {
	DialTimeout    time.Duration
	RequestTimeout time.Duration
	// Limit total number of connections per host. No limit by default.
	MaxConnsPerHost int
	// RequestsPerSecond enables client-side rate limiting when positive,
	// useful against public endpoints that throttle callers.
	RequestsPerSecond float64
	// Burst is the rate limiter burst size, 1 if unset.
	Burst int
	// Logger is used to trace requests at debug level. No-op by default.
	Logger *zap.Logger
	// PollInterval and PollAttempts bound the FastForward status polling
	// loop. Defaults are 500ms and 30 attempts.
	PollInterval time.Duration
	PollAttempts uint64
}

// New returns a new Client connected to the given endpoint, ready to use.
// Any URL-like value the net/url parser accepts for an HTTP endpoint works;
// anything else fails with ErrInvalidEndpoint.
func New(endpoint string, opts Options) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEndpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEndpoint, endpoint)
	}

	if opts.DialTimeout <= 0 {
		opts.DialTimeout = defaultDialTimeout
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = defaultPollInterval
	}
	if opts.PollAttempts == 0 {
		opts.PollAttempts = defaultPollAttempts
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	cl := &Client{
		cli: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: opts.DialTimeout,
				}).DialContext,
				MaxConnsPerHost: opts.MaxConnsPerHost,
			},
			Timeout: opts.RequestTimeout,
		},
		endpoint: u,
		headers:  http.Header{"Content-Type": []string{"application/json"}},
		log:      opts.Logger,
		opts:     opts,

		latestReqID: atomic.NewUint64(0),
	}
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		cl.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}
	cl.getNextRequestID = cl.getRequestID
	cl.requestF = cl.makeHTTPRequest
	return cl, nil
}

func (c *Client) getRequestID() uint64 {
	return c.latestReqID.Inc()
}

// Endpoint returns the client's endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// WithHeader returns a copy of the client carrying the given header on every
// subsequent request. The receiver is not modified, so one base client can be
// forked into several differently configured handles. Setting a header that
// is already present replaces it.
func (c *Client) WithHeader(name, value string) *Client {
	cl := c.fork()
	cl.headers.Set(name, value)
	return cl
}

// WithAuth returns a copy of the client carrying the authentication header
// produced by the given scheme. At most one scheme can ever be attached to a
// client; attaching a second one is a programming error and panics.
func (c *Client) WithAuth(scheme AuthScheme) *AuthorizedClient {
	if c.authed {
		panic("rpcclient: authentication scheme already attached")
	}
	cl := c.fork()
	cl.headers.Set(scheme.HeaderName(), scheme.HeaderValue())
	cl.authed = true
	return &AuthorizedClient{cl}
}

// fork returns a shallow copy of the client with its own header map. The
// transport handle and the request id counter remain shared.
func (c *Client) fork() *Client {
	cl := *c
	cl.headers = c.headers.Clone()
	cl.requestF = cl.makeHTTPRequest
	return &cl
}

// Close closes unused underlying network connections.
func (c *Client) Close() {
	c.cli.CloseIdleConnections()
}

// Ping attempts to create a connection to the endpoint and returns an error
// if there is any.
func (c *Client) Ping() error {
	host := c.endpoint.Host
	if c.endpoint.Port() == "" {
		if c.endpoint.Scheme == "https" {
			host += ":443"
		} else {
			host += ":80"
		}
	}
	conn, err := net.DialTimeout("tcp", host, c.opts.DialTimeout)
	if err != nil {
		return err
	}
	_ = conn.Close()
	return nil
}

// performRequest runs a single JSON-RPC exchange and gives back the decoded
// envelope with its well-formedness already checked: exactly one of
// Result/Error is set and the echoed id matches.
func (c *Client) performRequest(ctx context.Context, method string, params any) (*nearrpc.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &TransportError{Kind: TransportSend, Err: err}
		}
	}
	r := &nearrpc.Request{
		JSONRPC: nearrpc.JSONRPCVersion,
		Method:  method,
		Params:  params,
		ID:      c.getNextRequestID(),
	}
	c.log.Debug("performing request", zap.String("method", method), zap.Uint64("id", r.ID))

	raw, err := c.requestF(ctx, r)
	if err != nil {
		c.log.Debug("request failed", zap.String("method", method), zap.Uint64("id", r.ID), zap.Error(err))
		return nil, err
	}

	hasResult := len(raw.Result) > 0
	hasError := len(raw.Error) > 0
	if hasResult == hasError {
		return nil, &ProtocolError{
			Err: fmt.Errorf("response carries result=%t error=%t, expected exactly one", hasResult, hasError),
		}
	}
	var echoed uint64
	if err := json.Unmarshal(raw.ID, &echoed); err != nil || echoed != r.ID {
		return nil, &ProtocolError{
			Err: fmt.Errorf("response id %s doesn't match request id %d", raw.ID, r.ID),
		}
	}
	return raw, nil
}

func (c *Client) makeHTTPRequest(ctx context.Context, r *nearrpc.Request) (*nearrpc.Response, error) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(r); err != nil {
		return nil, &TransportError{Kind: TransportSend, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.String(), buf)
	if err != nil {
		return nil, &TransportError{Kind: TransportSend, Err: err}
	}
	for name, values := range c.headers {
		req.Header[name] = values
	}
	resp, err := c.cli.Do(req)
	if err != nil {
		return nil, &TransportError{Kind: TransportReceive, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{
			Kind:       transportKindForStatus(resp.StatusCode),
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("HTTP %d/%s", resp.StatusCode, http.StatusText(resp.StatusCode)),
		}
	}

	raw := new(nearrpc.Response)
	if err := json.NewDecoder(resp.Body).Decode(raw); err != nil {
		return nil, &ProtocolError{Err: fmt.Errorf("JSON decoding: %w", err)}
	}
	return raw, nil
}
