package commands

import (
	"go.uber.org/zap"

	"tableflip.dev/appt/pkg/config"
	"tableflip.dev/appt/pkg/logging"
	"tableflip.dev/appt/pkg/remote"
	"tableflip.dev/appt/pkg/scheduler"
	"tableflip.dev/appt/pkg/store"
)

// env is everything a command needs to talk to the service.
type env struct {
	cfg       config.Config
	log       *zap.Logger
	client    *remote.Client
	scheduler *scheduler.Scheduler
}

// newEnv loads config and wires the logger, remote client and scheduler.
// quiet discards logs unless a log file is configured, so they do not draw
// over the terminal UI.
func newEnv(quiet bool) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	file := cfg.LogFile()
	if quiet && file == "" {
		file = logging.Discard
	}
	log, err := logging.New(cfg.LogLevel(), file)
	if err != nil {
		return nil, err
	}
	client := remote.New(cfg.BaseURL(),
		remote.WithTimeout(cfg.Timeout()),
		remote.WithLogger(log),
	)
	return &env{
		cfg:       cfg,
		log:       log,
		client:    client,
		scheduler: scheduler.New(client, scheduler.WithLogger(log)),
	}, nil
}

func (e *env) persistence() (store.Persistence, error) {
	return store.Load(e.cfg)
}

func (e *env) close() {
	_ = e.log.Sync()
}
