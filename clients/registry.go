// Package clients tracks liveness subscriptions for connected clients,
// replacing platform-specific death notifications with a generic
// watch/unwatch capability over a client's done channel.
package clients

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Opt func(*Registry)

func WithLogger(logger *zap.Logger) Opt {
	return func(r *Registry) {
		r.log = logger
	}
}

// Registry tracks death subscriptions so that per-client state elsewhere can
// be purged when a client goes away. Each subscription fires its callback at
// most once.
type Registry struct {
	log *zap.Logger

	mu      sync.Mutex
	watches map[uuid.UUID]chan struct{}
	wg      sync.WaitGroup
	closed  chan struct{}
}

func New(opts ...Opt) *Registry {
	r := &Registry{
		log:     zap.NewNop(),
		watches: make(map[uuid.UUID]chan struct{}),
		closed:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Watch arranges for fn to be invoked once if done is closed before the
// watch is cancelled. fn runs on the watcher goroutine. If Unwatch races
// with the client dying, fn may still fire concurrently with Unwatch
// returning; consumers must tolerate a stale notification.
func (r *Registry) Watch(done <-chan struct{}, fn func()) uuid.UUID {
	token := uuid.New()
	cancel := make(chan struct{})

	r.mu.Lock()
	select {
	case <-r.closed:
		r.mu.Unlock()
		return token
	default:
	}
	r.watches[token] = cancel
	r.mu.Unlock()
	activeWatches.Set(float64(r.Len()))

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		select {
		case <-done:
			// whoever removes the entry first wins: a fired watch that lost
			// the race to Unwatch stays silent
			if r.forget(token) {
				r.log.Debug("client gone", zap.String("token", token.String()))
				fn()
			}
		case <-cancel:
		case <-r.closed:
		}
	}()
	return token
}

// Unwatch cancels a subscription. Unknown or already-fired tokens are
// ignored.
func (r *Registry) Unwatch(token uuid.UUID) {
	r.mu.Lock()
	cancel, ok := r.watches[token]
	delete(r.watches, token)
	r.mu.Unlock()
	if ok {
		close(cancel)
		activeWatches.Set(float64(r.Len()))
	}
}

// Len returns the number of live subscriptions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.watches)
}

// Close cancels all subscriptions and waits for watcher goroutines to exit.
func (r *Registry) Close() {
	r.mu.Lock()
	select {
	case <-r.closed:
		r.mu.Unlock()
		return
	default:
	}
	close(r.closed)
	r.watches = make(map[uuid.UUID]chan struct{})
	r.mu.Unlock()
	r.wg.Wait()
	activeWatches.Set(0)
}

func (r *Registry) forget(token uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.watches[token]
	delete(r.watches, token)
	if ok {
		activeWatches.Set(float64(len(r.watches)))
	}
	return ok
}
