package main

import (
	"fmt"

	"github.com/spf13/cobra"

	appeditor "github.com/alexisbeaulieu97/gridcraft/internal/app/editor"
	"github.com/alexisbeaulieu97/gridcraft/internal/domain/layout"
	"github.com/alexisbeaulieu97/gridcraft/internal/surface"
)

type previewFlags struct {
	columns   int
	columnMin float64
	rowMin    float64
	gap       float64
	flow      string
	dense     bool
	sizing    string
	width     float64
	items     int
	selected  int
	shuffle   bool
	canvas    bool
	canvasW   int
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	defaults := layout.DefaultContainer()
	flags := &previewFlags{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the CSS preview for a layout without starting the editor",
		Long: `Print the CSS preview for the default layout, overridden by flags.

The output is exactly what the editor's preview pane would show, which makes
it useful for scripting and for regression testing layouts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}
			defer app.Close()
			return runPreview(cmd, app, flags)
		},
	}

	cmd.Flags().IntVar(&flags.columns, "cols", defaults.Columns, "Number of columns")
	cmd.Flags().Float64Var(&flags.columnMin, "col-min", defaults.ColumnMin, "Minimum column width in px")
	cmd.Flags().Float64Var(&flags.rowMin, "row-min", defaults.RowMin, "Minimum row height in px")
	cmd.Flags().Float64Var(&flags.gap, "gap", defaults.Gap, "Gap in px")
	cmd.Flags().StringVar(&flags.flow, "flow", string(defaults.Flow), "Auto flow direction (row, column)")
	cmd.Flags().BoolVar(&flags.dense, "dense", defaults.Dense, "Use dense packing")
	cmd.Flags().StringVar(&flags.sizing, "sizing", string(defaults.Sizing), "Track sizing (fill, fit)")
	cmd.Flags().Float64Var(&flags.width, "width", defaults.Width, "Container width in percent")
	cmd.Flags().IntVar(&flags.items, "items", defaults.ItemCount, "Number of items")
	cmd.Flags().IntVar(&flags.selected, "select", 1, "Selected item (1-based)")
	cmd.Flags().BoolVar(&flags.shuffle, "shuffle", false, "Shuffle items before printing")
	cmd.Flags().BoolVar(&flags.canvas, "canvas", false, "Also draw the box grid")
	cmd.Flags().IntVar(&flags.canvasW, "canvas-width", 80, "Terminal columns available to the drawn grid")

	return cmd
}

func runPreview(cmd *cobra.Command, app *AppContext, flags *previewFlags) error {
	ctx, log := app.CommandContext(cmd, "preview")

	surf := surface.New()
	ctrl := appeditor.New(surf, app.ControllerOptions(log)...)

	limits := app.Settings.Limits
	ctrl.UpdateContainer(func(cfg *layout.ContainerConfig) {
		cfg.Columns = min(flags.columns, limits.MaxColumns)
		cfg.ColumnMin = flags.columnMin
		cfg.RowMin = flags.rowMin
		cfg.Gap = flags.gap
		cfg.Flow = layout.FlowDirection(flags.flow)
		cfg.Dense = flags.dense
		cfg.Sizing = layout.SizingMode(flags.sizing)
		cfg.Width = flags.width
		cfg.ItemCount = min(flags.items, limits.MaxItems)
	})
	ctrl.Select(flags.selected - 1)
	if flags.shuffle {
		ctrl.Shuffle()
	}

	log.Debug(ctx, "preview rendered", "items", len(ctrl.Items()))

	out := cmd.OutOrStdout()
	if flags.canvas {
		selected := -1
		if idx, ok := ctrl.Selected(); ok {
			selected = idx
		}
		drawn := surf.Draw(surface.CanvasOptions{
			Width:    flags.canvasW,
			Selected: selected,
			ASCII:    !app.Settings.UseUnicode(),
		})
		if _, err := fmt.Fprintln(out, drawn); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	_, err := fmt.Fprintln(out, ctrl.PreviewText())
	return err
}
