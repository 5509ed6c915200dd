package augur

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/AugurML/augur-client/pkg/api"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type callState int

const (
	callPending callState = iota
	callCompleted
	callFailed
)

// call tracks one submitted inference until it reaches a terminal
// state. The state transition is guarded by the dispatcher mutex so
// the callback can never fire twice.
type call struct {
	id       uint64
	state    callState
	result   *InferResult
	err      error
	callback InferCallback
	done     chan struct{}
}

type inferFunc func(ctx context.Context) (*InferResult, error)

// dispatcher runs inference calls on client-owned goroutines and
// enforces the per-call lifecycle: pending, then exactly one of
// completed or failed.
type dispatcher struct {
	mu      sync.Mutex
	calls   map[uint64]*call
	nextID  uint64
	timeout time.Duration
	closed  bool
}

func newDispatcher(timeout time.Duration) *dispatcher {
	if timeout <= 0 {
		timeout = time.Duration(DefaultTimeoutInMs) * time.Millisecond
	}
	return &dispatcher{
		calls:   make(map[uint64]*call),
		timeout: timeout,
	}
}

// submit registers a call and runs exec on a new goroutine. The
// callback fires exactly once, on that goroutine.
func (d *dispatcher) submit(ctx context.Context, exec inferFunc, callback InferCallback) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return api.NewServerError(0, "client is closed")
	}
	d.nextID++
	c := &call{
		id:       d.nextID,
		state:    callPending,
		callback: callback,
		done:     make(chan struct{}),
	}
	d.calls[c.id] = c
	d.mu.Unlock()

	go d.run(ctx, c, exec)
	return nil
}

// infer runs a call synchronously: submit plus a bounded wait on the
// call's terminal state. No busy waiting.
func (d *dispatcher) infer(ctx context.Context, exec inferFunc) (*InferResult, error) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil, api.NewServerError(0, "client is closed")
	}
	d.nextID++
	c := &call{
		id:    d.nextID,
		state: callPending,
		done:  make(chan struct{}),
	}
	d.calls[c.id] = c
	d.mu.Unlock()

	go d.run(ctx, c, exec)
	<-c.done

	d.mu.Lock()
	defer d.mu.Unlock()
	return c.result, c.err
}

func (d *dispatcher) run(ctx context.Context, c *call, exec inferFunc) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Uint64("call_id", c.id).
				Msg("panic during inference call")
			d.finish(c, nil, api.NewServerError(0, fmt.Sprintf("panic during inference: %v", r)))
		}
	}()

	callCtx := ctx
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	result, err := exec(callCtx)
	if err != nil {
		err = asTimeoutError(err)
	}
	d.finish(c, result, err)
}

// finish moves the call to its terminal state and invokes the callback
// once. A call already failed by close keeps its first outcome; the
// late completion is dropped.
func (d *dispatcher) finish(c *call, result *InferResult, err error) {
	d.mu.Lock()
	if c.state != callPending {
		d.mu.Unlock()
		return
	}
	if err != nil {
		c.state = callFailed
		c.err = err
	} else {
		c.state = callCompleted
		c.result = result
	}
	callback := c.callback
	delete(d.calls, c.id)
	d.mu.Unlock()

	close(c.done)
	if callback != nil {
		callback(result, err)
	}
}

// close fails every outstanding call instead of letting callers hang.
// Further submissions are rejected.
func (d *dispatcher) close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	outstanding := make([]*call, 0, len(d.calls))
	for _, c := range d.calls {
		if c.state == callPending {
			c.state = callFailed
			c.err = api.NewServerError(0, "client closed with call in flight")
			delete(d.calls, c.id)
			outstanding = append(outstanding, c)
		}
	}
	d.mu.Unlock()

	for _, c := range outstanding {
		close(c.done)
		if c.callback != nil {
			// Callbacks are promised a client-owned goroutine, so the
			// Close caller must not run them inline.
			go c.callback(nil, c.err)
		}
	}
}

// asTimeoutError maps deadline expirations from either transport to
// the timeout error kind; everything else passes through.
func asTimeoutError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return api.NewTimeoutError("inference call exceeded its deadline")
	}
	if st, ok := status.FromError(err); ok && st.Code() == codes.DeadlineExceeded {
		return api.NewTimeoutError(st.Message())
	}
	return err
}
