package grid

import "go.uber.org/zap"

type options struct {
	ghost  []int
	logger *zap.Logger
}

// Option configures a Grid.
type Option func(*options)

// WithGhost sets the ghost margin of every dimension.
func WithGhost(margins ...int) Option {
	return func(o *options) {
		o.ghost = margins
	}
}

// WithLogger sets the logger used for diagnostics. The default discards
// everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
