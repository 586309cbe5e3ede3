package info

import (
	"context"
	"fmt"
	"os"

	"tableflip.dev/appt/pkg/config"
	"tableflip.dev/appt/pkg/printers"
	"tableflip.dev/appt/pkg/store"
)

type Info struct {
	Config      config.Config
	Persistence store.Persistence
	Printer     *printers.PrettyPrint
}

func (n *Info) Do(ctx context.Context) error {
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	if override := os.Getenv("APPT_CONFIG_PATH"); override != "" {
		pp.Line(fmt.Sprintf("APPT_CONFIG_PATH found on env, using %s", override))
	} else {
		pp.Line("APPT_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = config.Load()
		if err != nil {
			return err
		}
	}

	source := n.Config.Source()
	if source == "" {
		source = "(defaults and env)"
	}
	pp.Line(fmt.Sprintf("Config.source:  %s", source))
	pp.Line(fmt.Sprintf("Config.url:     %s", n.Config.BaseURL()))
	timeout := "none"
	if d := n.Config.Timeout(); d > 0 {
		timeout = d.String()
	}
	pp.Line(fmt.Sprintf("Config.timeout: %s", timeout))
	pp.Line(fmt.Sprintf("Config.path:    %s", n.Config.SessionPath()))
	logFile := n.Config.LogFile()
	if logFile == "" {
		logFile = "stderr"
	}
	pp.Line(fmt.Sprintf("Config.log:     %s (%s)", n.Config.LogLevel(), logFile))

	if n.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}

	pp.Line("Drafts:")
	found := 0
	for _, k := range n.Persistence.Sessions(ctx) {
		pp.Line("  " + k)
		found++
	}
	if found == 0 {
		pp.Line("  no saved drafts")
	}
	return nil
}
