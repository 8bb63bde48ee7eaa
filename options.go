package priopool

import (
	"go.uber.org/zap"
)

// config holds the tunable collaborators of a Pool.
//
// All zero values are replaced with sensible defaults in fillDefaults.
type config struct {
	logger  *zap.Logger
	sched   ThreadScheduler
	metrics MetricsPolicy
}

// Option customizes a Pool at construction time.
type Option func(*config)

// WithLogger sets the logger used for worker diagnostics. The default
// is zap.NewNop(), keeping the pool silent unless the host opts in.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithThreadScheduler replaces the native thread-priority capability.
// Intended for tests and for hosts that manage thread priorities
// through their own facility.
func WithThreadScheduler(s ThreadScheduler) Option {
	return func(c *config) {
		c.sched = s
	}
}

// WithMetrics sets the metrics sink. The default is NoopMetrics.
func WithMetrics(m MetricsPolicy) Option {
	return func(c *config) {
		c.metrics = m
	}
}

func (c *config) fillDefaults() {
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	if c.sched == nil {
		c.sched = NewNativeScheduler()
	}
	if c.metrics == nil {
		c.metrics = &NoopMetrics{}
	}
}
