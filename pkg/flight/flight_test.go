package flight

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCachesResult(t *testing.T) {
	ctx := context.Background()
	var calls atomic.Int32
	c := NewCache(func(_ context.Context, k string) (int, error) {
		calls.Add(1)
		return len(k), nil
	}, 0)

	for range 3 {
		v, err := c.Get(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, 3, v)
	}
	assert.Equal(t, int32(1), calls.Load())

	c.Forget("abc")
	_, _ = c.Get(ctx, "abc")
	assert.Equal(t, int32(2), calls.Load())
}

func TestGetCoalescesConcurrentLoads(t *testing.T) {
	ctx := context.Background()
	var calls atomic.Int32
	release := make(chan struct{})
	c := NewCache(func(_ context.Context, k string) (string, error) {
		calls.Add(1)
		<-release
		return "v:" + k, nil
	}, time.Minute)

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = c.Get(ctx, "k")
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Equal(t, "v:k", r)
	}
}

func TestErrorsAreNotCached(t *testing.T) {
	ctx := context.Background()
	var calls atomic.Int32
	boom := errors.New("boom")
	c := NewCache(func(_ context.Context, k string) (int, error) {
		if calls.Add(1) == 1 {
			return 0, boom
		}
		return 7, nil
	}, 0)

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, boom)

	v, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var calls atomic.Int32
	c := NewCache(func(_ context.Context, k string) (int32, error) {
		return calls.Add(1), nil
	}, time.Minute)
	c.now = func() time.Time { return now }

	v, _ := c.Get(ctx, "k")
	assert.Equal(t, int32(1), v)

	now = now.Add(30 * time.Second)
	v, _ = c.Get(ctx, "k")
	assert.Equal(t, int32(1), v)

	now = now.Add(time.Minute)
	v, _ = c.Get(ctx, "k")
	assert.Equal(t, int32(2), v)
}

func TestSetOverrides(t *testing.T) {
	ctx := context.Background()
	c := NewCache(func(_ context.Context, k string) (string, error) { return "loaded", nil }, 0)
	c.Set("k", "stored")

	v, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "stored", v)
}

func TestGetReleasesWaitersOnPanic(t *testing.T) {
	ctx := context.Background()
	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	c := NewCache(func(_ context.Context, k string) (int, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-release
			panic("boom")
		}
		return 1, nil
	}, 0)

	go func() {
		defer func() { _ = recover() }()
		_, _ = c.Get(ctx, "k")
	}()
	<-started

	waited := make(chan error, 1)
	go func() {
		_, err := c.Get(ctx, "k")
		waited <- err
	}()
	time.Sleep(20 * time.Millisecond)
	close(release)

	select {
	case err := <-waited:
		assert.ErrorIs(t, err, ErrPanicked)
	case <-time.After(time.Second):
		t.Fatal("waiter still blocked after the computation panicked")
	}

	v, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestGetPanicReachesLeader(t *testing.T) {
	c := NewCache(func(_ context.Context, k string) (int, error) { panic("boom") }, 0)
	assert.PanicsWithValue(t, "boom", func() { _, _ = c.Get(context.Background(), "k") })
}

func TestWaiterStopsOnOwnContext(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	defer close(release)
	c := NewCache(func(_ context.Context, k string) (int, error) {
		close(started)
		<-release
		return 1, nil
	}, 0)

	go func() { _, _ = c.Get(context.Background(), "k") }()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWaiterRetriesWhenLeaderCancelled(t *testing.T) {
	started := make(chan struct{})
	var calls atomic.Int32
	c := NewCache(func(ctx context.Context, k string) (string, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-ctx.Done()
			return "", ctx.Err()
		}
		return "v:" + k, nil
	}, 0)

	leaderCtx, cancel := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := c.Get(leaderCtx, "k")
		leaderErr <- err
	}()
	<-started

	waited := make(chan string, 1)
	go func() {
		v, err := c.Get(context.Background(), "k")
		assert.NoError(t, err)
		waited <- v
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()

	assert.ErrorIs(t, <-leaderErr, context.Canceled)
	assert.Equal(t, "v:k", <-waited)
	assert.Equal(t, int32(2), calls.Load())
}
