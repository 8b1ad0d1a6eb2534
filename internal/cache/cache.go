// Package cache holds a value that is expensive to build and built once.
//
// A Cache moves through four states: Uninitialized, Loading, Ready and
// Failed. The first Get starts the fetch; every Get that arrives while it is
// running waits for the same result. A failure is kept until Reset so a
// broken source is not hammered by every caller.
//
// There is no package-level instance. Callers construct a Cache and pass it
// to whatever needs it, so each test gets a fresh one.
package cache

import (
	"context"
	"fmt"
	"sync"
)

// State is the lifecycle position of a Cache.
type State int

const (
	Uninitialized State = iota
	Loading
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// FetchFunc builds the cached value.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// load is one fetch attempt. done is closed once val and err are set.
type load[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Cache is a single-admission lazily fetched value.
type Cache[T any] struct {
	fetch FetchFunc[T]

	mu  sync.Mutex
	cur *load[T]
}

// New returns an uninitialised cache backed by fetch.
func New[T any](fetch FetchFunc[T]) *Cache[T] {
	return &Cache[T]{fetch: fetch}
}

// Get returns the cached value, starting the fetch if none has been started
// since construction or the last Reset.
//
// The fetch runs detached from ctx: a caller that gives up does not cancel
// the fetch for everyone else. Only the wait honours ctx.
func (c *Cache[T]) Get(ctx context.Context) (T, error) {
	c.mu.Lock()
	l := c.cur
	if l == nil {
		l = &load[T]{done: make(chan struct{})}
		c.cur = l
		go c.run(context.WithoutCancel(ctx), l)
	}
	c.mu.Unlock()

	select {
	case <-l.done:
		return l.val, l.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (c *Cache[T]) run(ctx context.Context, l *load[T]) {
	defer close(l.done)
	defer func() {
		if r := recover(); r != nil {
			l.err = fmt.Errorf("cache fetch panicked: %v", r)
		}
	}()
	l.val, l.err = c.fetch(ctx)
}

// State reports where the cache is in its lifecycle.
func (c *Cache[T]) State() State {
	c.mu.Lock()
	l := c.cur
	c.mu.Unlock()

	if l == nil {
		return Uninitialized
	}
	select {
	case <-l.done:
		if l.err != nil {
			return Failed
		}
		return Ready
	default:
		return Loading
	}
}

// Reset discards the cached value or error. A fetch still in flight
// completes for the callers already waiting on it, but its result is not
// kept.
func (c *Cache[T]) Reset() {
	c.mu.Lock()
	c.cur = nil
	c.mu.Unlock()
}
