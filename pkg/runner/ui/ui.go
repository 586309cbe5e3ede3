// Package ui launches the terminal interface.
package ui

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"

	"tableflip.dev/appt/pkg/scheduler"
	teaui "tableflip.dev/appt/pkg/tui/app"
)

// ErrNotTerminal is returned when stdin or stdout is not a terminal.
var ErrNotTerminal = errors.New("ui: a terminal is required, use the list/get/add commands instead")

type UI struct {
	Scheduler *scheduler.Scheduler
}

func (d *UI) Do(ctx context.Context) error {
	if d.Scheduler == nil {
		return errors.New("ui: no scheduler configured")
	}
	if !interactive(os.Stdin.Fd()) || !interactive(os.Stdout.Fd()) {
		return ErrNotTerminal
	}
	return teaui.Run(ctx, d.Scheduler)
}

func interactive(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
