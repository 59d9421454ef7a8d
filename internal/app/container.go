package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"service-dispatch/internal/config"
	"service-dispatch/internal/http/handlers"
	"service-dispatch/internal/http/router"
	"service-dispatch/internal/logx"
	"service-dispatch/internal/opt"
	"service-dispatch/internal/service/dispatch"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder.
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		logFatalf: log.Fatalf,
	}
}

// WithLogFatalf sets the log.Fatalf function.
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container.
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// build builds and returns a new dig container.
func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerScheduling(container); err != nil {
		return nil, fmt.Errorf("scheduling: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		NewLogger,
		config.Load,
	)
}

func registerScheduling(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config) dispatch.Engine {
			return opt.New(opt.Config{
				PopulationSize: cfg.Optimizer.PopulationSize,
				Workers:        cfg.Optimizer.Workers,
				Seed:           cfg.Optimizer.Seed,
			})
		},
		func(cfg *config.Config) dispatch.Window {
			return dispatch.Window{Start: cfg.Window.Start, End: cfg.Window.End}
		},
		dispatch.NewRunner,
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      75 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	scheduleProvider := func(logger logx.Logger, runner *dispatch.Runner, cfg *config.Config) *handlers.ScheduleHandler {
		return handlers.NewScheduleHandler(
			logger,
			handlers.NewScheduleUsecase(runner),
			cfg.Strategy,
			prometheus.DefaultRegisterer,
		)
	}
	return provideAll(container,
		handlers.New,
		scheduleProvider,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitCounter,
		newRateLimitMiddleware,
		router.New,
		serverProvider,
		newPprofServer,
	)
}
