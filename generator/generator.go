package generator

import (
	"sync"

	"github.com/koto-lang/koto/value"
)

// YieldFunc is how a generator body produces a value and suspends. Zero
// arguments yields Empty; more than one argument yields the tuple of
// those arguments, matching "yield a, b" in the scripting layer.
type YieldFunc func(values ...value.Value) error

// Body is a generator function's implementation, supplied by whatever
// collaborator evaluates generator scripts (out of this module's scope).
// It must call yield for each produced value and return when the
// generator's logical body completes, or return a non-nil error if it
// raises.
type Body func(yield YieldFunc) error

type frameMsg struct {
	value value.Value
	done  bool
	err   error
}

// Generator is a suspended generator frame, implementing value.Value so
// it can be stored and passed around like any other Value. Grounded on
// the teacher's goroutine-per-coroutine execution model
// (internal/coroutine.go, scheduler.go) and on the channel-pair
// producer/consumer handoff pattern used for single-value pipes, adapted
// here to a request/response rendezvous instead of a buffered stream.
type Generator struct {
	id uint64

	newBody func() Body

	mu       sync.Mutex
	state    State
	started  bool
	produced uint64
	out      chan frameMsg
	resume   chan struct{}
}

// New creates a Generator. newBody is called once, lazily, on the first
// call to Next, to construct the body closure that captures the
// generator's entry-time locals; it is called again by Copy to replay a
// fresh frame to the same logical position.
func New(newBody func() Body) *Generator {
	return &Generator{id: value.NextID(), newBody: newBody, state: Initial}
}

func (*Generator) Kind() value.Kind { return value.KindGenerator }

func (g *Generator) String() string { return "Generator" }

// ID returns the generator's unique identity, used for identity equality.
func (g *Generator) ID() uint64 { return g.id }

// State reports the generator's current position in its lifecycle.
func (g *Generator) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Next resumes the frame until it yields, returns, or raises. Calling
// Next while the generator is already Running (a reentrant call from
// within its own body, or a genuine concurrent call) fails with
// GeneratorReentry rather than deadlocking. done is true once the
// generator has returned or raised; a false done with a nil error and an
// Empty value means the body legitimately yielded Empty, which is
// distinct from termination.
func (g *Generator) Next() (v value.Value, done bool, err error) {
	g.mu.Lock()
	switch g.state {
	case Running:
		g.mu.Unlock()
		return value.EmptyValue, false, value.NewError(value.GeneratorReentry, "next called on a running generator")
	case Terminal:
		g.mu.Unlock()
		return value.EmptyValue, true, nil
	}
	wasSuspended := g.state == Suspended
	g.state = Running
	if !g.started {
		g.started = true
		g.out = make(chan frameMsg)
		g.resume = make(chan struct{})
		body := g.newBody()
		go g.run(body)
	}
	out, resume := g.out, g.resume
	g.mu.Unlock()

	if wasSuspended {
		resume <- struct{}{}
	}

	msg := <-out

	g.mu.Lock()
	defer g.mu.Unlock()
	if msg.done {
		g.state = Terminal
		return value.EmptyValue, true, msg.err
	}
	g.state = Suspended
	g.produced++
	return msg.value, false, nil
}

func (g *Generator) run(body Body) {
	err := body(func(vs ...value.Value) error {
		var v value.Value
		switch len(vs) {
		case 0:
			v = value.EmptyValue
		case 1:
			v = vs[0]
		default:
			v = value.NewTuple(vs...)
		}
		g.out <- frameMsg{value: v}
		<-g.resume
		return nil
	})
	g.out <- frameMsg{done: true, err: err}
}

// Copy produces an independent frame positioned at the same logical
// point as g. Go cannot duplicate a suspended goroutine's stack, so Copy
// replays: it builds a fresh frame from newBody and fast-forwards it by
// driving Next the same number of times g has already yielded. This is
// faithful for pure generator bodies; a body with external side effects
// observes them twice. Mutable references a body closed over (e.g. a
// shared List) are not replayed — newBody recreates the closure over the
// same captured handles, so both frames still observe one live List.
func (g *Generator) Copy() (*Generator, error) {
	g.mu.Lock()
	n := g.produced
	factory := g.newBody
	g.mu.Unlock()

	clone := New(factory)
	for i := uint64(0); i < n; i++ {
		if _, _, err := clone.Next(); err != nil {
			return nil, err
		}
	}
	return clone, nil
}
