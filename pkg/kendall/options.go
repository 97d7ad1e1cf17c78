package kendall

// Options control input cleaning before correlation.
type Options struct {
	// DropZeros treats zero-valued entries as missing. This mirrors the
	// tricot convention of coding unevaluated items as 0.
	DropZeros bool
}

// Option mutates Options.
type Option func(*Options)

// WithZerosKept keeps zero-valued entries as real ranks instead of dropping
// them as missing.
func WithZerosKept() Option {
	return func(o *Options) {
		o.DropZeros = false
	}
}

// DefaultOptions drops zeros as missing.
func DefaultOptions() Options {
	return Options{DropZeros: true}
}

func newOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
