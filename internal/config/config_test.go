package config_test

import (
	"io"
	"os"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"service-dispatch/internal/config"
	"service-dispatch/internal/domain"
)

func resetFlags(t *testing.T) {
	t.Helper()
	oldFlags := pflag.CommandLine
	oldArgs := os.Args
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	os.Args = []string{"cmd"}
	t.Cleanup(func() {
		pflag.CommandLine = oldFlags
		os.Args = oldArgs
	})
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"PORT", "STRATEGY", "DEPOT_X", "DEPOT_Y",
		"WINDOW_START", "WINDOW_END",
		"OPTIMIZER_WORKERS", "OPTIMIZER_POPULATION", "OPTIMIZER_SEED",
		"RATE_LIMIT_ENABLED", "RATE_LIMIT_RATE", "RATE_LIMIT_BURST",
		"RATE_LIMIT_TTL", "RATE_LIMIT_MAX_BUCKETS",
		"PPROF_ENABLED", "PPROF_ADDR", "PPROF_USER", "PPROF_PASS",
	} {
		t.Setenv(name, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "bestfit", cfg.Strategy)
	require.Equal(t, domain.Origin, cfg.Depot)
	require.Equal(t, domain.MustTimeOfDay(6, 0, 0), cfg.Window.Start)
	require.Equal(t, domain.MustTimeOfDay(22, 0, 0), cfg.Window.End)
	require.Equal(t, 5, cfg.Optimizer.Workers)
	require.Equal(t, 50, cfg.Optimizer.PopulationSize)
	require.False(t, cfg.RateLimit.Enabled)
	require.False(t, cfg.Pprof.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("PORT", "9090")
	t.Setenv("STRATEGY", "queue")
	t.Setenv("DEPOT_X", "10")
	t.Setenv("DEPOT_Y", "-3")
	t.Setenv("WINDOW_START", "07:30:00")
	t.Setenv("WINDOW_END", "20:00:00")
	t.Setenv("OPTIMIZER_WORKERS", "8")
	t.Setenv("OPTIMIZER_POPULATION", "120")
	t.Setenv("OPTIMIZER_SEED", "99")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_RATE", "2.5")
	t.Setenv("RATE_LIMIT_TTL", "30s")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "127.0.0.1:7070")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "queue", cfg.Strategy)
	require.Equal(t, domain.Coordinate{X: 10, Y: -3}, cfg.Depot)
	require.Equal(t, domain.MustTimeOfDay(7, 30, 0), cfg.Window.Start)
	require.Equal(t, domain.MustTimeOfDay(20, 0, 0), cfg.Window.End)
	require.Equal(t, 8, cfg.Optimizer.Workers)
	require.Equal(t, 120, cfg.Optimizer.PopulationSize)
	require.Equal(t, int64(99), cfg.Optimizer.Seed)
	require.True(t, cfg.RateLimit.Enabled)
	require.Equal(t, 2.5, cfg.RateLimit.Rate)
	require.Equal(t, 30*time.Second, cfg.RateLimit.TTL)
	require.True(t, cfg.Pprof.Enabled)
	require.Equal(t, "127.0.0.1:7070", cfg.Pprof.Addr)
}

func TestLoad_FlagOverrides(t *testing.T) {
	resetFlags(t)
	clearEnv(t)
	os.Args = []string{"cmd", "--port=9999", "--strategy=fifo"}

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 9999, cfg.Port)
	require.Equal(t, "fifo", cfg.Strategy)
}

func TestLoad_InvalidPort(t *testing.T) {
	resetFlags(t)
	clearEnv(t)
	t.Setenv("PORT", "70000")

	cfg, err := config.Load()
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoad_UnknownStrategy(t *testing.T) {
	resetFlags(t)
	clearEnv(t)
	t.Setenv("STRATEGY", "teleport")

	cfg, err := config.Load()
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoad_InvalidWindow(t *testing.T) {
	resetFlags(t)
	clearEnv(t)
	t.Setenv("WINDOW_START", "22:00:00")
	t.Setenv("WINDOW_END", "06:00:00")

	cfg, err := config.Load()
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoad_InvalidWindowFormat(t *testing.T) {
	resetFlags(t)
	clearEnv(t)
	t.Setenv("WINDOW_START", "late morning")

	cfg, err := config.Load()
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoad_InvalidDepot(t *testing.T) {
	resetFlags(t)
	clearEnv(t)
	t.Setenv("DEPOT_X", "not-a-number")

	cfg, err := config.Load()
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoad_FlagsParseError(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	pflag.CommandLine.SetOutput(io.Discard)
	os.Args = []string{"cmd", "--port=not-a-number"}

	cfg, err := config.Load()
	require.Error(t, err)
	require.Nil(t, cfg)
	require.Contains(t, err.Error(), "parse flags")
}
