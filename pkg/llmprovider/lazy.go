package llmprovider

import (
	"context"
	"sync"
	"sync/atomic"
)

// InitFunc builds the Generator on first use.
type InitFunc func(ctx context.Context) (Generator, error)

// Lazy is a process-scoped Generator that is constructed at most once.
//
// Construction runs under a mutex so concurrent first callers cannot build
// duplicate clients. A failed construction is not remembered: the next call
// tries again.
type Lazy struct {
	mu   sync.Mutex
	gen  Generator
	init InitFunc

	built   atomic.Bool
	warming atomic.Bool
}

// NewLazy creates a Lazy generator around init.
func NewLazy(init InitFunc) *Lazy {
	return &Lazy{init: init}
}

// GenerateContent initializes the underlying generator if needed and delegates to it.
func (l *Lazy) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	gen, err := l.get(ctx)
	if err != nil {
		return nil, err
	}
	return gen.GenerateContent(ctx, req)
}

// Warm forces initialization without generating anything.
func (l *Lazy) Warm(ctx context.Context) error {
	_, err := l.get(ctx)
	return err
}

// Ready reports whether the generator is built without waiting for it. When
// it is not, one background Warm is started (at most one in flight) and
// ErrNotReady is returned, so readiness probes never queue on the mutex.
func (l *Lazy) Ready(ctx context.Context) error {
	if l.built.Load() {
		return nil
	}
	if l.warming.CompareAndSwap(false, true) {
		go func() {
			defer l.warming.Store(false)
			_ = l.Warm(context.WithoutCancel(ctx))
		}()
	}
	return ErrNotReady
}

func (l *Lazy) get(ctx context.Context) (Generator, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.gen != nil {
		return l.gen, nil
	}

	gen, err := l.init(ctx)
	if err != nil {
		return nil, err
	}
	l.gen = gen
	l.built.Store(true)
	return gen, nil
}
