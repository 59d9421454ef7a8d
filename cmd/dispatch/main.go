package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"service-dispatch/internal/app"
	"service-dispatch/internal/config"
	"service-dispatch/internal/exporter"
	"service-dispatch/internal/importer"
	"service-dispatch/internal/opt"
	"service-dispatch/internal/service/dispatch"
)

func main() {
	var outPath string
	pflag.StringVarP(&outPath, "out", "o", "", "output file path (default: stdout)")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	args := pflag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: dispatch [flags] <orders-file>")
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := app.NewLogger()
	defer func() { _ = logger.Sync() }()

	orders, err := importer.New(logger).ReadFile(args[0])
	if err != nil {
		log.Fatalf("read orders: %v", err)
	}

	engine := opt.New(opt.Config{
		PopulationSize: cfg.Optimizer.PopulationSize,
		Workers:        cfg.Optimizer.Workers,
		Seed:           cfg.Optimizer.Seed,
	})
	window := dispatch.Window{Start: cfg.Window.Start, End: cfg.Window.End}
	runner := dispatch.NewRunner(window, engine, logger)

	deliveries, _, err := runner.Run(ctx, cfg.Strategy, cfg.Depot, orders)
	if err != nil {
		log.Fatalf("schedule: %v", err)
	}

	if outPath == "" {
		if err := exporter.Write(os.Stdout, deliveries); err != nil {
			log.Fatalf("write schedule: %v", err)
		}
		return
	}
	if err := exporter.WriteFile(outPath, deliveries); err != nil {
		log.Fatalf("write schedule: %v", err)
	}
	fmt.Println(outPath)
}
