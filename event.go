package eventemitter

// Args2 carries two callback arguments through an Emitter[Args2[A, B]].
type Args2[A, B any] struct {
	V1 A
	V2 B
}

// Args3 carries three callback arguments.
type Args3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

// Func2 adapts a two-argument callback for use with On.
// A nil fn yields a nil callback.
func Func2[A, B any](fn func(A, B)) func(Args2[A, B]) {
	if fn == nil {
		return nil
	}
	return func(a Args2[A, B]) { fn(a.V1, a.V2) }
}

// Func3 adapts a three-argument callback for use with On.
func Func3[A, B, C any](fn func(A, B, C)) func(Args3[A, B, C]) {
	if fn == nil {
		return nil
	}
	return func(a Args3[A, B, C]) { fn(a.V1, a.V2, a.V3) }
}
