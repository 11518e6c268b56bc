package resolver

import "log/slog"

// Option configures a Resolver.
type Option func(*Resolver)

// WithNamer replaces the default segment naming policy.
func WithNamer(namer Namer) Option {
	return func(r *Resolver) {
		if namer != nil {
			r.namer = namer
		}
	}
}

// WithLogger sets the logger used for cache misses and failures.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics attaches prometheus counters to the resolver.
func WithMetrics(m *Metrics) Option {
	return func(r *Resolver) {
		r.metrics = m
	}
}
