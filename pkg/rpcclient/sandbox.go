package rpcclient

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/cenkalti/backoff/v3"
	"github.com/nspcc-dev/near-go/pkg/util"
)

// Sandbox methods are only served by nodes run with sandbox support, regular
// nodes answer them with a method not found error.

var errHeightNotReached = errors.New("target height not reached yet")

type (
	patchStateParams struct {
		Records []json.RawMessage `json:"records"`
	}

	fastForwardParams struct {
		DeltaHeight uint64 `json:"delta_height"`
	}
)

// PatchStateRequest describes the "sandbox_patch_state" method injecting raw
// state records into a sandbox node.
func PatchStateRequest(records []json.RawMessage) Method[struct{}] {
	return request[struct{}]{name: "sandbox_patch_state", params: patchStateParams{Records: records}}
}

// FastForwardRequest describes the "sandbox_fast_forward" method asking a
// sandbox node to skip the given number of blocks. The node acknowledges
// before the skip completes, use Client.FastForward to also wait for it.
func FastForwardRequest(deltaHeight uint64) Method[struct{}] {
	return request[struct{}]{name: "sandbox_fast_forward", params: fastForwardParams{DeltaHeight: deltaHeight}}
}

// PatchState injects raw state records into a sandbox node.
func (c *Client) PatchState(ctx context.Context, records []json.RawMessage) error {
	_, err := Call(ctx, c, PatchStateRequest(records))
	return err
}

// FastForward asks a sandbox node to skip deltaHeight blocks and polls its
// status until the chain reaches the target height. Polling cadence and the
// attempt budget come from Options, exhausting the budget returns a
// *PollTimeoutError.
func (c *Client) FastForward(ctx context.Context, deltaHeight uint64) error {
	st, err := c.GetStatus(ctx)
	if err != nil {
		return err
	}
	target := st.SyncInfo.LatestBlockHeight + util.BlockHeight(deltaHeight)

	if _, err := Call(ctx, c, FastForwardRequest(deltaHeight)); err != nil {
		return err
	}

	op := func() error {
		st, err := c.GetStatus(ctx)
		if err != nil {
			return backoff.Permanent(err)
		}
		if st.SyncInfo.LatestBlockHeight < target {
			return errHeightNotReached
		}
		return nil
	}
	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.opts.PollInterval), c.opts.PollAttempts-1),
		ctx)
	if err := backoff.Retry(op, b); err != nil {
		if errors.Is(err, errHeightNotReached) {
			// Retry also hands the last poll error back on cancellation.
			if cerr := ctx.Err(); cerr != nil {
				return cerr
			}
			return &PollTimeoutError{Target: uint64(target), Attempts: c.opts.PollAttempts}
		}
		return err
	}
	return nil
}
