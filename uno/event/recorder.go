package event

import "sync"

// Recorder keeps every payload an emitter sends after it subscribes.
type Recorder[P any] struct {
	mu       sync.Mutex
	payloads []P
}

func Record[P any](emitter *Emitter[P]) *Recorder[P] {
	r := &Recorder[P]{}
	emitter.AddListener(r.receive)
	return r
}

func (r *Recorder[P]) receive(payload P) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payloads = append(r.payloads, payload)
}

func (r *Recorder[P]) Payloads() []P {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]P(nil), r.payloads...)
}
