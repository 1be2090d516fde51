package lifecycle

import (
	"sync"

	"github.com/dmitrijs2005/marketadmin/internal/logging"
)

type Phase int

const (
	Pending Phase = iota + 1
	Fulfilled
	Rejected
)

func (p Phase) String() string {
	switch p {
	case Pending:
		return "pending"
	case Fulfilled:
		return "fulfilled"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Event describes one applied transition. Output is set for Fulfilled,
// Error for Rejected.
type Event struct {
	Key    string
	Seq    uint64
	Phase  Phase
	Input  any
	Output any
	Error  *ErrorPayload
}

type cellConfig struct {
	fenced bool
	log    logging.Logger
}

type CellOption func(*cellConfig)

// WithFencing enables the newest-request-wins guard.
func WithFencing(on bool) CellOption {
	return func(c *cellConfig) { c.fenced = on }
}

func WithLogger(l logging.Logger) CellOption {
	return func(c *cellConfig) { c.log = l }
}

// Cell holds one slice state. State is only replaced through reducers; the
// value handed to reducers and listeners must be treated as immutable.
//
// Listeners and observers run after the transition, in transition order.
// They may read any cell but must not synchronously apply to the cell that
// is notifying them.
type Cell[S any] struct {
	mu    sync.Mutex
	emit  sync.Mutex
	state S

	fenced bool
	seq    uint64
	latest map[string]uint64

	nextID    uint64
	listeners map[uint64]func(S)
	observers map[uint64]func(Event)

	log logging.Logger
}

func NewCell[S any](initial S, opts ...CellOption) *Cell[S] {
	cfg := cellConfig{log: logging.Nop()}
	for _, o := range opts {
		o(&cfg)
	}
	return &Cell[S]{
		state:     initial,
		fenced:    cfg.fenced,
		latest:    make(map[string]uint64),
		listeners: make(map[uint64]func(S)),
		observers: make(map[uint64]func(Event)),
		log:       cfg.log,
	}
}

func (c *Cell[S]) State() S {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Apply runs a synchronous reducer (message dismissal, cleanup, glue).
func (c *Cell[S]) Apply(reduce func(S) S) {
	c.transition(reduce, nil)
}

// Subscribe registers fn to receive the state after every transition.
func (c *Cell[S]) Subscribe(fn func(S)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

// Observe registers fn to receive every operation transition.
func (c *Cell[S]) Observe(fn func(Event)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.observers[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.observers, id)
	}
}

// issue hands out the next sequence number and records it as the newest
// for key.
func (c *Cell[S]) issue(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.latest[key] = c.seq
	return c.seq
}

// resolve applies reduce unless fencing is on and seq was superseded.
func (c *Cell[S]) resolve(key string, seq uint64, reduce func(S) S, ev *Event) bool {
	return c.transitionIf(func() bool {
		return !c.fenced || c.latest[key] == seq
	}, reduce, ev)
}

func (c *Cell[S]) transition(reduce func(S) S, ev *Event) {
	c.transitionIf(nil, reduce, ev)
}

// transitionIf reduces under mu, then hands over to emit before releasing
// mu so notifications leave in the same order transitions were applied.
func (c *Cell[S]) transitionIf(allowed func() bool, reduce func(S) S, ev *Event) bool {
	c.mu.Lock()
	if allowed != nil && !allowed() {
		c.mu.Unlock()
		return false
	}
	c.state = reduce(c.state)
	snapshot := c.state

	listeners := make([]func(S), 0, len(c.listeners))
	for _, fn := range c.listeners {
		listeners = append(listeners, fn)
	}
	var observers []func(Event)
	if ev != nil {
		observers = make([]func(Event), 0, len(c.observers))
		for _, fn := range c.observers {
			observers = append(observers, fn)
		}
	}

	c.emit.Lock()
	c.mu.Unlock()
	defer c.emit.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
	for _, fn := range observers {
		fn(*ev)
	}
	return true
}
