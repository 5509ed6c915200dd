package augur

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/AugurML/augur-client/pkg/api"
	"github.com/stretchr/testify/assert"
)

func TestDispatcherInfer(t *testing.T) {
	d := newDispatcher(time.Second)
	want := newInferResult("simple", "1", "req-1")

	result, err := d.infer(context.Background(), func(ctx context.Context) (*InferResult, error) {
		return want, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, want, result)
}

func TestDispatcherInferError(t *testing.T) {
	d := newDispatcher(time.Second)

	result, err := d.infer(context.Background(), func(ctx context.Context) (*InferResult, error) {
		return nil, api.NewServerError(500, "model failed")
	})
	assert.Nil(t, result)
	assert.True(t, api.IsServerError(err))
	assert.EqualError(t, err, "model failed")
}

func TestDispatcherInferTimeout(t *testing.T) {
	d := newDispatcher(20 * time.Millisecond)

	_, err := d.infer(context.Background(), func(ctx context.Context) (*InferResult, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	assert.True(t, api.IsTimeoutError(err))
}

func TestDispatcherCallerDeadlineWins(t *testing.T) {
	d := newDispatcher(10 * time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := d.infer(ctx, func(ctx context.Context) (*InferResult, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	assert.True(t, api.IsTimeoutError(err))
	assert.Less(t, time.Since(start), time.Second)
}

func TestDispatcherCallbackFiresExactlyOnce(t *testing.T) {
	d := newDispatcher(time.Second)
	var fired atomic.Int32
	done := make(chan struct{})

	err := d.submit(context.Background(), func(ctx context.Context) (*InferResult, error) {
		return newInferResult("simple", "1", ""), nil
	}, func(result *InferResult, err error) {
		fired.Add(1)
		close(done)
	})
	assert.NoError(t, err)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("callback never fired")
	}
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestDispatcherCloseFailsOutstandingCalls(t *testing.T) {
	d := newDispatcher(10 * time.Second)
	block := make(chan struct{})
	notified := make(chan struct{})
	var fired atomic.Int32
	var callbackErr atomic.Value

	err := d.submit(context.Background(), func(ctx context.Context) (*InferResult, error) {
		<-block
		return newInferResult("simple", "1", ""), nil
	}, func(result *InferResult, err error) {
		fired.Add(1)
		callbackErr.Store(err)
		close(notified)
	})
	assert.NoError(t, err)

	d.close()
	select {
	case <-notified:
	case <-time.After(2 * time.Second):
		t.Fatal("callback never fired after close")
	}
	assert.Equal(t, int32(1), fired.Load())
	assert.True(t, api.IsServerError(callbackErr.Load().(error)))
	assert.Contains(t, callbackErr.Load().(error).Error(), "client closed with call in flight")

	// release the executor; the late completion must be dropped
	close(block)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

// The callback contract promises a client-owned goroutine. A callback
// that waits for close to return would deadlock if close ran it inline.
func TestDispatcherCloseCallbackRunsOffCaller(t *testing.T) {
	d := newDispatcher(10 * time.Second)
	block := make(chan struct{})
	defer close(block)
	closeReturned := make(chan struct{})
	done := make(chan struct{})

	err := d.submit(context.Background(), func(ctx context.Context) (*InferResult, error) {
		<-block
		return nil, nil
	}, func(result *InferResult, err error) {
		<-closeReturned
		close(done)
	})
	assert.NoError(t, err)

	d.close()
	close(closeReturned)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("callback never fired")
	}
}

func TestDispatcherRejectsAfterClose(t *testing.T) {
	d := newDispatcher(time.Second)
	d.close()

	err := d.submit(context.Background(), func(ctx context.Context) (*InferResult, error) {
		return nil, nil
	}, nil)
	assert.True(t, api.IsServerError(err))

	_, err = d.infer(context.Background(), func(ctx context.Context) (*InferResult, error) {
		return nil, nil
	})
	assert.True(t, api.IsServerError(err))
}

func TestDispatcherRecoversPanic(t *testing.T) {
	d := newDispatcher(time.Second)

	_, err := d.infer(context.Background(), func(ctx context.Context) (*InferResult, error) {
		panic("tensor exploded")
	})
	assert.True(t, api.IsServerError(err))
	assert.Contains(t, err.Error(), "tensor exploded")
}
