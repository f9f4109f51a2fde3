package event

import "sync"

// Emitter fans each payload out to its listeners in subscription order.
type Emitter[P any] struct {
	mu        sync.RWMutex
	listeners []func(P)
}

func (e *Emitter[P]) AddListener(listener func(P)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

// Emit runs listeners synchronously on the caller's goroutine.
func (e *Emitter[P]) Emit(payload P) {
	e.mu.RLock()
	listeners := e.listeners
	e.mu.RUnlock()

	for _, listener := range listeners {
		listener(payload)
	}
}
