package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	appeditor "github.com/alexisbeaulieu97/gridcraft/internal/app/editor"
	"github.com/alexisbeaulieu97/gridcraft/internal/config"
	"github.com/alexisbeaulieu97/gridcraft/internal/logger"
	"github.com/alexisbeaulieu97/gridcraft/internal/ports"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Settings config.Settings
	Logger   ports.Logger

	closer io.Closer
}

// newAppContext loads settings, applies flag overrides and opens the log
// sink. Only flags the user actually set override the file.
func newAppContext(cmd *cobra.Command, flags *rootFlags) (*AppContext, error) {
	settings, err := config.Load(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	pflags := cmd.Flags()
	if pflags.Changed("log-level") {
		settings.LogLevel = flags.logLevel
	}
	if pflags.Changed("log-file") {
		settings.LogFile = flags.logFile
	}
	if pflags.Changed("seed") {
		settings.Seed = flags.seed
	}
	if flags.noAltScreen {
		off := false
		settings.AltScreen = &off
	}
	if err := config.Validate(settings); err != nil {
		return nil, err
	}

	app := &AppContext{Settings: settings, Logger: logger.Discard()}
	if settings.LogFile == "" || settings.LogLevel == "disabled" {
		return app, nil
	}

	f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log, err := logger.New(logger.Options{
		Level:         settings.LogLevel,
		HumanReadable: true,
		Writer:        f,
		Component:     "gridcraft",
	})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	app.Logger = log
	app.closer = f
	return app, nil
}

// CommandContext returns a context tagged with a fresh session id and a
// logger scoped to the command.
func (a *AppContext) CommandContext(cmd *cobra.Command, command string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ports.WithSessionID(ctx, ports.GenerateSessionID())
	return ctx, a.Logger.With("command", command)
}

// ControllerOptions wires the configured seed and logger into a controller.
func (a *AppContext) ControllerOptions(log ports.Logger) []appeditor.Option {
	opts := []appeditor.Option{appeditor.WithLogger(log)}
	if a.Settings.Seed != 0 {
		opts = append(opts, appeditor.WithRand(rand.New(rand.NewSource(a.Settings.Seed))))
	}
	return opts
}

// Close releases the log file, if any.
func (a *AppContext) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
