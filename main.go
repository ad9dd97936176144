package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/atomicstack/feedview/internal/app"
	"github.com/atomicstack/feedview/internal/config"
	"github.com/atomicstack/feedview/internal/logging"
	"github.com/atomicstack/feedview/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := app.Run(ctx, runtimeCfg.App); err != nil {
		stop()
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload records how feedview was started and what it will draw
// on.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+5)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	flags["logPath"] = logging.Path()
	flags["nextKey"] = string(cfg.App.NextKey)
	flags["previousKey"] = string(cfg.App.PreviousKey)

	mode := "interactive"
	if cfg.App.Headless {
		mode = "headless"
	}
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"mode":   mode,
		"terminal": []terminalState{
			probeTerminal("stdin", os.Stdin),
			probeTerminal("stdout", os.Stdout),
		},
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

// terminalState is the input or output side as the dialogs will see it. Size
// is only set for terminals.
type terminalState struct {
	Name     string `json:"name"`
	Terminal bool   `json:"terminal"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Error    string `json:"error,omitempty"`
}

func probeTerminal(name string, f *os.File) terminalState {
	st := terminalState{Name: name}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return st
	}
	st.Terminal = true
	if w, h, err := term.GetSize(fd); err != nil {
		st.Error = err.Error()
	} else {
		st.Width, st.Height = w, h
	}
	return st
}
