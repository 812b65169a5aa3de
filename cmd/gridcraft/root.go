package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	appeditor "github.com/alexisbeaulieu97/gridcraft/internal/app/editor"
	"github.com/alexisbeaulieu97/gridcraft/internal/surface"
	tuieditor "github.com/alexisbeaulieu97/gridcraft/internal/tui/editor"
)

type rootFlags struct {
	configPath  string
	logLevel    string
	logFile     string
	seed        int64
	noAltScreen bool
}

// isTerminal reports whether the TUI can take over stdout. Tests replace it.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "gridcraft",
		Short:         "gridcraft is an interactive CSS grid layout editor",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}
			defer app.Close()
			return runEditor(cmd, app)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a settings file (YAML)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error, disabled)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	cmd.PersistentFlags().Int64Var(&flags.seed, "seed", 0, "Seed for shuffle (0 picks a random seed)")
	cmd.Flags().BoolVar(&flags.noAltScreen, "no-alt-screen", false, "Render inline instead of on the alternate screen")

	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runEditor(cmd *cobra.Command, app *AppContext) error {
	ctx, log := app.CommandContext(cmd, "editor")

	surf := surface.New()
	ctrl := appeditor.New(surf, app.ControllerOptions(log)...)

	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		log.Info(ctx, "stdout is not a terminal, printing preview")
		_, err := fmt.Fprintln(out, ctrl.PreviewText())
		return err
	}

	model := tuieditor.NewModel(ctrl, surf, tuieditor.Options{
		MaxColumns: app.Settings.Limits.MaxColumns,
		MaxItems:   app.Settings.Limits.MaxItems,
		ASCII:      !app.Settings.UseUnicode(),
		Logger:     log,
	})

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if app.Settings.UseAltScreen() {
		opts = append(opts, tea.WithAltScreen())
	}

	log.Info(ctx, "launching editor")
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		log.Error(ctx, "editor exited with error", "error", err)
		return fmt.Errorf("failed to run editor: %w", err)
	}
	return nil
}
