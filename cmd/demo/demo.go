package main

import (
	"context"
	"log"

	"tableflip.dev/appt/pkg/config"
	"tableflip.dev/appt/pkg/logging"
	"tableflip.dev/appt/pkg/remote"
	"tableflip.dev/appt/pkg/runner/demo"
	"tableflip.dev/appt/pkg/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger, err := logging.New(cfg.LogLevel(), cfg.LogFile())
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	client := remote.New(cfg.BaseURL(), remote.WithTimeout(cfg.Timeout()), remote.WithLogger(logger))
	d := demo.Demo{Scheduler: scheduler.New(client, scheduler.WithLogger(logger))}
	if err := d.Do(context.Background()); err != nil {
		log.Fatalf("seed %s: %v", cfg.BaseURL(), err)
	}
}
