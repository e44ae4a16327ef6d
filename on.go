package eventemitter

// On attaches fn to event. Callbacks for the same event run in the order they
// were attached; attaching the same function twice makes it run twice.
// On panics if fn is nil.
func (e *Emitter[A]) On(event string, fn func(A)) {
	if fn == nil {
		panic("eventemitter: nil callback for event " + event)
	}
	e.callbacks[event] = append(e.getOrInsert(event), fn)
	e.logger.Debug().
		Str("event", event).
		Int("position", len(e.callbacks[event])).
		Msg("callback registered")
}
