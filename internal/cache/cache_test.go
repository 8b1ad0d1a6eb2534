package cache

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

func TestCache_Lifecycle(t *testing.T) {
	var calls atomic.Int32
	c := New(func(context.Context) (string, error) {
		calls.Add(1)
		return "index", nil
	})
	assert.Equal(t, Uninitialized, c.State())

	v, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "index", v)
	assert.Equal(t, Ready, c.State())

	_, _ = c.Get(context.Background())
	assert.Equal(t, int32(1), calls.Load())

	c.Reset()
	assert.Equal(t, Uninitialized, c.State())
	_, _ = c.Get(context.Background())
	assert.Equal(t, int32(2), calls.Load())
}

func TestCache_SingleAdmission(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	c := New(func(context.Context) (int, error) {
		calls.Add(1)
		<-release
		return 42, nil
	})

	var wg sync.WaitGroup
	results := make([]int, 10)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.Get(context.Background())
			assert.NoError(t, err)
			results[i] = v
		}()
	}

	require.Eventually(t, func() bool { return c.State() == Loading }, time.Second, time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, v := range results {
		assert.Equal(t, 42, v)
	}
}

func TestCache_FailureIsSticky(t *testing.T) {
	boom := errors.New("boom")
	var calls atomic.Int32
	c := New(func(context.Context) (int, error) {
		calls.Add(1)
		return 0, boom
	})

	_, err := c.Get(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, Failed, c.State())

	_, err = c.Get(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int32(1), calls.Load())

	c.Reset()
	_, _ = c.Get(context.Background())
	assert.Equal(t, int32(2), calls.Load())
}

func TestCache_WaitIsCancellable(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	c := New(func(context.Context) (int, error) {
		<-release
		return 1, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Get(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, Loading, c.State())
}

func TestCache_Panic(t *testing.T) {
	c := New(func(context.Context) (int, error) { panic("bad") })
	_, err := c.Get(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")
	assert.Equal(t, Failed, c.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "ready", Ready.String())
	assert.Equal(t, "State(9)", State(9).String())
}
