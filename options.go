package eventemitter

import "github.com/rs/zerolog"

type options struct {
	id     string
	logger zerolog.Logger
}

// Option configures an Emitter.
type Option func(*options)

// WithLogger sets the logger used for debug-level registration and emit lines.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithID overrides the generated Emitter ID.
func WithID(id string) Option {
	return func(o *options) { o.id = id }
}
