// Package eventemitter provides a generic named-event registry.
//
// An Emitter maps event names to ordered lists of callbacks that all accept the
// same argument type A. Anyone holding the Emitter can attach callbacks with On;
// only the holder of the Emit function returned by New can fire events.
//
// An Emitter is not safe for concurrent use. Callers that share one across
// goroutines must synchronize On and Emit themselves.
package eventemitter

import (
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Emitter holds the callbacks registered for each event name.
type Emitter[A any] struct {
	id        string
	logger    zerolog.Logger
	callbacks map[string][]func(A)
}

// Emit fires an event on the Emitter it was created with.
// It is returned only by New, so the owning type decides who may trigger events.
type Emit[A any] func(event string, args A)

// New creates an empty Emitter and the Emit function bound to it.
func New[A any](opts ...Option) (*Emitter[A], Emit[A]) {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}
	e := &Emitter[A]{
		id:        o.id,
		logger:    o.logger.With().Str("emitter", o.id).Logger(),
		callbacks: make(map[string][]func(A)),
	}
	return e, e.emit
}

// ID returns the unique identifier of this Emitter.
func (e *Emitter[A]) ID() string {
	return e.id
}

// Events returns the sorted names that have a callback list,
// including names that were only ever emitted.
func (e *Emitter[A]) Events() []string {
	names := make([]string, 0, len(e.callbacks))
	for name := range e.callbacks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Listeners returns the number of callbacks registered for event.
// Unlike On and Emit it never creates an entry.
func (e *Emitter[A]) Listeners(event string) int {
	return len(e.callbacks[event])
}

// getOrInsert returns the callback list for event, creating an empty one
// if the name has not been seen yet.
func (e *Emitter[A]) getOrInsert(event string) []func(A) {
	cbs, ok := e.callbacks[event]
	if !ok {
		cbs = []func(A){}
		e.callbacks[event] = cbs
	}
	return cbs
}

// snapshot returns a copy of the callback list for event.
func (e *Emitter[A]) snapshot(event string) []func(A) {
	cbs := e.getOrInsert(event)
	out := make([]func(A), len(cbs))
	copy(out, cbs)
	return out
}
