package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/dmitrijs2005/marketadmin/internal/client/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testState struct {
	Loading bool
	Value   string
	Err     string
}

var testReducers = Reducers[testState, string, string]{
	Pending: func(s testState, in string) testState {
		s.Loading = true
		s.Err = ""
		return s
	},
	Fulfilled: func(s testState, in string, out string) testState {
		s.Loading = false
		s.Value = out
		return s
	},
	Rejected: func(s testState, in string, e ErrorPayload) testState {
		s.Loading = false
		s.Err = e.Message
		return s
	},
}

func echoOp(key string) Operation[string, string] {
	return Operation[string, string]{
		Key:      key,
		Fallback: "Failed to echo",
		Execute: func(ctx context.Context, in string) (string, error) {
			return "got " + in, nil
		},
	}
}

func TestRun_PendingThenFulfilled(t *testing.T) {
	c := NewCell(testState{})
	var duringExecute testState

	op := echoOp("test/echo")
	op.Execute = func(ctx context.Context, in string) (string, error) {
		duringExecute = c.State()
		return "got " + in, nil
	}

	out, err := Run(context.Background(), c, op, testReducers, "x")
	require.NoError(t, err)
	assert.Equal(t, "got x", out)
	assert.True(t, duringExecute.Loading, "pending must be applied before the call runs")
	assert.Equal(t, testState{Value: "got x"}, c.State())
}

func TestRun_RejectedUsesServerBody(t *testing.T) {
	c := NewCell(testState{Value: "old"})
	cause := &api.Error{Status: 400, Body: []byte(`{"error":"Name already exists"}`)}

	op := Operation[string, string]{
		Key:      "test/fail",
		Fallback: "Failed to save",
		Execute:  func(ctx context.Context, in string) (string, error) { return "", cause },
	}

	_, err := Run(context.Background(), c, op, testReducers, "x")

	var rej *Rejection
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, "test/fail", rej.Key)
	assert.Equal(t, "Name already exists", rej.Payload.Message)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, testState{Value: "old", Err: "Name already exists"}, c.State())
}

func TestRun_TransportFailureUsesFallback(t *testing.T) {
	c := NewCell(testState{})
	op := Operation[string, string]{
		Key:      "test/fail",
		Fallback: "Failed to fetch products",
		Execute: func(ctx context.Context, in string) (string, error) {
			return "", fmt.Errorf("%w: dial tcp: refused", api.ErrUnavailable)
		},
	}

	_, err := Run(context.Background(), c, op, testReducers, "x")
	require.ErrorIs(t, err, api.ErrUnavailable)
	assert.Equal(t, "Failed to fetch products", c.State().Err)
}

func TestRun_NilReducersLeaveStateAlone(t *testing.T) {
	c := NewCell(testState{Value: "keep"})
	_, err := Run(context.Background(), c, echoOp("test/echo"), Reducers[testState, string, string]{}, "x")
	require.NoError(t, err)
	assert.Equal(t, testState{Value: "keep"}, c.State())
}

// race runs two invocations of the same key where the first one issued
// resolves last, and returns the final state.
func race(t *testing.T, c *Cell[testState]) testState {
	t.Helper()

	release := map[string]chan struct{}{"first": make(chan struct{}), "second": make(chan struct{})}
	started := make(chan string, 2)

	op := Operation[string, string]{
		Key: "test/list",
		Execute: func(ctx context.Context, in string) (string, error) {
			started <- in
			<-release[in]
			return in, nil
		},
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); _, _ = Run(context.Background(), c, op, testReducers, "first") }()
	require.Equal(t, "first", <-started)
	go func() { defer wg.Done(); _, _ = Run(context.Background(), c, op, testReducers, "second") }()
	require.Equal(t, "second", <-started)

	close(release["second"])
	require.Eventually(t, func() bool { return c.State().Value == "second" }, timeout, tick)
	close(release["first"])
	wg.Wait()

	return c.State()
}

func TestRun_LastResolvedWinsByDefault(t *testing.T) {
	c := NewCell(testState{})

	final := race(t, c)
	assert.Equal(t, "first", final.Value, "stale response overwrites without fencing")
}

func TestRun_FencingKeepsNewest(t *testing.T) {
	c := NewCell(testState{}, WithFencing(true))

	final := race(t, c)
	assert.Equal(t, "second", final.Value)
	assert.False(t, final.Loading)
}

func TestRun_FencingIsPerKey(t *testing.T) {
	c := NewCell(testState{}, WithFencing(true))

	_, err := Run(context.Background(), c, echoOp("a/one"), testReducers, "1")
	require.NoError(t, err)
	_, err = Run(context.Background(), c, echoOp("b/two"), testReducers, "2")
	require.NoError(t, err)

	assert.Equal(t, "got 2", c.State().Value)
}

func TestCell_SubscribeAndObserve(t *testing.T) {
	c := NewCell(testState{})

	var states []testState
	var events []Event
	unsub := c.Subscribe(func(s testState) { states = append(states, s) })
	unobs := c.Observe(func(e Event) { events = append(events, e) })

	_, err := Run(context.Background(), c, echoOp("test/echo"), testReducers, "x")
	require.NoError(t, err)

	require.Len(t, states, 2)
	assert.True(t, states[0].Loading)
	assert.Equal(t, "got x", states[1].Value)

	require.Len(t, events, 2)
	assert.Equal(t, Pending, events[0].Phase)
	assert.Equal(t, Fulfilled, events[1].Phase)
	assert.Equal(t, "got x", events[1].Output)
	assert.Equal(t, events[0].Seq, events[1].Seq)

	c.Apply(func(s testState) testState { s.Value = "manual"; return s })
	assert.Len(t, states, 3)
	assert.Len(t, events, 2, "plain Apply is not an operation event")

	unsub()
	unobs()
	_, _ = Run(context.Background(), c, echoOp("test/echo"), testReducers, "y")
	assert.Len(t, states, 3)
	assert.Len(t, events, 2)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback string
		want     string
	}{
		{name: "error field", err: &api.Error{Body: []byte(`{"error":"Invalid email"}`)}, want: "Invalid email"},
		{name: "message field", err: &api.Error{Body: []byte(`{"message":"Wrong password"}`)}, want: "Wrong password"},
		{name: "error wins over message", err: &api.Error{Body: []byte(`{"error":"A","message":"B"}`)}, want: "A"},
		{name: "nested error object", err: &api.Error{Body: []byte(`{"error":{"message":"Nested"}}`)}, want: "Nested"},
		{name: "bare string", err: &api.Error{Body: []byte(`"Plain"`)}, want: "Plain"},
		{name: "html body", err: &api.Error{Body: []byte(`<html>502</html>`)}, fallback: "Failed", want: "Failed"},
		{name: "empty body", err: &api.Error{Status: 500}, fallback: "Failed", want: "Failed"},
		{name: "wrapped api error", err: fmt.Errorf("wrap: %w", &api.Error{Body: []byte(`{"error":"Deep"}`)}), want: "Deep"},
		{name: "precondition", err: Precondition("Not authenticated"), fallback: "Failed", want: "Not authenticated"},
		{name: "transport", err: errors.New("dial tcp"), fallback: "Failed to fetch", want: "Failed to fetch"},
		{name: "no fallback", err: errors.New("x"), want: defaultFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, ErrorPayload{Message: tt.want}, Normalize(tt.err, tt.fallback))
		})
	}
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "pending", Pending.String())
	assert.Equal(t, "fulfilled", Fulfilled.String())
	assert.Equal(t, "rejected", Rejected.String())
	assert.Equal(t, "unknown", Phase(0).String())
}
