package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"service-dispatch/internal/domain"
	"service-dispatch/internal/service/dispatch"
)

// Config stores dispatch service settings.
type Config struct {
	Port      int
	Strategy  string
	Depot     domain.Coordinate
	Window    Window
	Optimizer Optimizer
	RateLimit RateLimitConfig
	Pprof     PprofConfig
}

// Window stores the working-day bounds.
type Window struct {
	Start domain.TimeOfDay
	End   domain.TimeOfDay
}

// Optimizer stores permutation-search engine settings.
type Optimizer struct {
	Workers        int
	PopulationSize int
	Seed           int64
}

// RateLimitConfig stores per-IP rate limit settings.
type RateLimitConfig struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// PprofConfig stores pprof debug server settings.
type PprofConfig struct {
	Enabled bool
	Addr    string
	User    string
	Pass    string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      DefaultPort(),
		Strategy:  DefaultStrategy(),
		Depot:     DefaultDepot(),
		Window:    DefaultWindow(),
		Optimizer: DefaultOptimizer(),
		RateLimit: DefaultRateLimit(),
		Pprof:     DefaultPprof(),
	}

	if err := cfg.fromEnv(); err != nil {
		return nil, err
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.StringVarP(&cfg.Strategy, "strategy", "s", cfg.Strategy, "dispatch strategy: fifo, queue, or bestfit")
	if err := parseFlags(); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseFlags() error {
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}

func (c *Config) fromEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT: %w", err)
		}
		c.Port = p
	}
	if v := os.Getenv("STRATEGY"); v != "" {
		c.Strategy = v
	}
	if err := intFromEnv("DEPOT_X", &c.Depot.X); err != nil {
		return err
	}
	if err := intFromEnv("DEPOT_Y", &c.Depot.Y); err != nil {
		return err
	}
	if v := os.Getenv("WINDOW_START"); v != "" {
		t, err := domain.ParseTimeOfDay(v)
		if err != nil {
			return fmt.Errorf("WINDOW_START: %w", err)
		}
		c.Window.Start = t
	}
	if v := os.Getenv("WINDOW_END"); v != "" {
		t, err := domain.ParseTimeOfDay(v)
		if err != nil {
			return fmt.Errorf("WINDOW_END: %w", err)
		}
		c.Window.End = t
	}
	if err := intFromEnv("OPTIMIZER_WORKERS", &c.Optimizer.Workers); err != nil {
		return err
	}
	if err := intFromEnv("OPTIMIZER_POPULATION", &c.Optimizer.PopulationSize); err != nil {
		return err
	}
	if v := os.Getenv("OPTIMIZER_SEED"); v != "" {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("OPTIMIZER_SEED: %w", err)
		}
		c.Optimizer.Seed = s
	}
	if err := c.rateLimitFromEnv(); err != nil {
		return err
	}
	return c.pprofFromEnv()
}

func (c *Config) rateLimitFromEnv() error {
	if err := boolFromEnv("RATE_LIMIT_ENABLED", &c.RateLimit.Enabled); err != nil {
		return err
	}
	if v := os.Getenv("RATE_LIMIT_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("RATE_LIMIT_RATE: %w", err)
		}
		c.RateLimit.Rate = rate
	}
	if err := intFromEnv("RATE_LIMIT_BURST", &c.RateLimit.Burst); err != nil {
		return err
	}
	if v := os.Getenv("RATE_LIMIT_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("RATE_LIMIT_TTL: %w", err)
		}
		c.RateLimit.TTL = ttl
	}
	return intFromEnv("RATE_LIMIT_MAX_BUCKETS", &c.RateLimit.MaxBuckets)
}

func (c *Config) pprofFromEnv() error {
	if err := boolFromEnv("PPROF_ENABLED", &c.Pprof.Enabled); err != nil {
		return err
	}
	if v := os.Getenv("PPROF_ADDR"); v != "" {
		c.Pprof.Addr = v
	}
	if v := os.Getenv("PPROF_USER"); v != "" {
		c.Pprof.User = v
	}
	if v := os.Getenv("PPROF_PASS"); v != "" {
		c.Pprof.Pass = v
	}
	return nil
}

func boolFromEnv(name string, dst *bool) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = b
	return nil
}

func intFromEnv(name string, dst *int) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = n
	return nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if !dispatch.ValidStrategy(c.Strategy) {
		return fmt.Errorf("unknown strategy: %q", c.Strategy)
	}
	if c.Window.Start >= c.Window.End {
		return fmt.Errorf("invalid window: %s-%s", c.Window.Start, c.Window.End)
	}
	if c.Optimizer.Workers < 0 || c.Optimizer.PopulationSize < 0 {
		return fmt.Errorf("invalid optimizer settings: workers=%d population=%d",
			c.Optimizer.Workers, c.Optimizer.PopulationSize)
	}
	return nil
}
