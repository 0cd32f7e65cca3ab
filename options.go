package fsa

import "github.com/go-logr/logr"

// DefaultWorkLimit is the default maximum number of subsets a Converter materializes.
const DefaultWorkLimit = 10000

type options struct {
	log       logr.Logger
	workLimit int
}

func newOptions(opts ...Option) *options {
	o := &options{
		log:       logr.Discard(),
		workLimit: DefaultWorkLimit,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option configures a Simulator or a Converter.
type Option func(*options)

// WithLogger sets the logger. Subset discovery is logged at V(1), simulation steps at V(2).
func WithLogger(log logr.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithWorkLimit bounds the number of subsets a Converter may materialize. A limit
// of zero or less disables the bound. Simulators ignore it.
func WithWorkLimit(limit int) Option {
	return func(o *options) {
		o.workLimit = limit
	}
}
