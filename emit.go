package eventemitter

// emit runs every callback registered for event, in registration order, with args.
// The list is copied first: callbacks added while emitting run on the next Emit.
// A panicking callback is not recovered and stops the remaining callbacks.
func (e *Emitter[A]) emit(event string, args A) {
	cbs := e.snapshot(event)
	e.logger.Debug().
		Str("event", event).
		Int("listeners", len(cbs)).
		Msg("emitting")
	for _, fn := range cbs {
		fn(args)
	}
}
