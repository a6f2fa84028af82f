// Package asynchook wraps a primecache.Hooks so events are dispatched on
// worker goroutines instead of the sieving goroutine. Events are dropped
// when the queue is full - observability must never block an extension.
//
// usage:
//
//	raw := myMetricsHooks{}
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	seq := primecache.New(primecache.Options{Hooks: hooks})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/primecache"
)

type Hooks struct {
	inner primecache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ primecache.Hooks = (*Hooks)(nil)

func New(inner primecache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers.
func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) SievePass(bound, found int) {
	h.try(func() { h.inner.SievePass(bound, found) })
}

func (h *Hooks) CacheExtended(watermark, size int) {
	h.try(func() { h.inner.CacheExtended(watermark, size) })
}
