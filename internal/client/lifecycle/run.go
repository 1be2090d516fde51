package lifecycle

import (
	"context"
	"time"
)

// Operation describes one unit of async work. Key is "domain/verb".
// Fallback is the message used when a failure carries no server text.
type Operation[In, Out any] struct {
	Key      string
	Execute  func(ctx context.Context, in In) (Out, error)
	Fallback string
}

// Reducers fold each phase of an operation into slice state. A nil reducer
// leaves the state unchanged for that phase.
type Reducers[S, In, Out any] struct {
	Pending   func(s S, in In) S
	Fulfilled func(s S, in In, out Out) S
	Rejected  func(s S, in In, e ErrorPayload) S
}

// Run dispatches op against cell. Both results are returned to the caller,
// but the cell has already recorded the outcome; a failure comes back as
// *Rejection.
func Run[S, In, Out any](ctx context.Context, c *Cell[S], op Operation[In, Out], r Reducers[S, In, Out], in In) (Out, error) {
	seq := c.issue(op.Key)
	c.transition(func(s S) S {
		if r.Pending == nil {
			return s
		}
		return r.Pending(s, in)
	}, &Event{Key: op.Key, Seq: seq, Phase: Pending, Input: in})

	start := time.Now()
	out, err := op.Execute(ctx, in)

	if err != nil {
		payload := Normalize(err, op.Fallback)
		applied := c.resolve(op.Key, seq, func(s S) S {
			if r.Rejected == nil {
				return s
			}
			return r.Rejected(s, in, payload)
		}, &Event{Key: op.Key, Seq: seq, Phase: Rejected, Input: in, Error: &payload})

		c.log.Warn(ctx, "operation rejected", "key", op.Key, "seq", seq,
			"message", payload.Message, "applied", applied, "elapsed", time.Since(start), "error", err)

		var zero Out
		return zero, &Rejection{Key: op.Key, Payload: payload, cause: err}
	}

	applied := c.resolve(op.Key, seq, func(s S) S {
		if r.Fulfilled == nil {
			return s
		}
		return r.Fulfilled(s, in, out)
	}, &Event{Key: op.Key, Seq: seq, Phase: Fulfilled, Input: in, Output: out})

	c.log.Debug(ctx, "operation fulfilled", "key", op.Key, "seq", seq,
		"applied", applied, "elapsed", time.Since(start))

	return out, nil
}
