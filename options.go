package docdiff

import (
	"time"

	"go.uber.org/zap"
)

type config struct {
	window      int
	windowSet   bool
	noCRC       bool
	timeout     time.Duration
	concurrency int
	logger      *zap.Logger
}

type FuncOption func(*config)

func newConfig(o []FuncOption) *config {
	cfg := &config{
		logger: zap.NewNop(),
	}
	for _, f := range o {
		f(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	return cfg
}

// WithWindow fixes the lookahead window instead of deriving it from the input
// size. Values below 1 make Align fail with ErrInvalidConfiguration.
func WithWindow(n int) FuncOption {
	return func(o *config) {
		o.window = n
		o.windowSet = true
	}
}

func WithLogger(l *zap.Logger) FuncOption {
	return func(o *config) {
		o.logger = l
	}
}

func WithNoCRC() FuncOption {
	return func(o *config) {
		o.noCRC = true
	}
}

// WithTimeout bounds the time Reference may spend searching for a minimal
// alignment. Zero means no limit.
func WithTimeout(d time.Duration) FuncOption {
	return func(o *config) {
		o.timeout = d
	}
}

// WithConcurrency caps the number of comparisons CompareAll runs at once.
func WithConcurrency(n int) FuncOption {
	return func(o *config) {
		o.concurrency = n
	}
}
