package config

import (
	"time"

	"service-dispatch/internal/domain"
)

const (
	defaultPort     = 8080
	defaultStrategy = "bestfit"
)

var defaultOptimizer = Optimizer{
	Workers:        5,
	PopulationSize: 50,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultStrategy returns the default dispatch strategy.
func DefaultStrategy() string {
	return defaultStrategy
}

// DefaultDepot returns the default depot location, the grid origin.
func DefaultDepot() domain.Coordinate {
	return domain.Origin
}

// DefaultWindow returns the default 06:00-22:00 working day.
func DefaultWindow() Window {
	return Window{
		Start: domain.MustTimeOfDay(6, 0, 0),
		End:   domain.MustTimeOfDay(22, 0, 0),
	}
}

// DefaultOptimizer returns the default optimizer settings.
func DefaultOptimizer() Optimizer {
	return defaultOptimizer
}

// DefaultRateLimit returns the default rate limit settings. Limiting is
// off unless enabled explicitly.
func DefaultRateLimit() RateLimitConfig {
	return RateLimitConfig{
		Enabled:    false,
		Rate:       5,
		Burst:      10,
		TTL:        10 * time.Minute,
		MaxBuckets: 10000,
	}
}

// DefaultPprof returns the default pprof server settings.
func DefaultPprof() PprofConfig {
	return PprofConfig{
		Enabled: false,
		Addr:    "127.0.0.1:6060",
	}
}
