package render

import (
	"fmt"
	"strconv"

	"github.com/alexisbeaulieu97/gridcraft/internal/domain/layout"
	"github.com/alexisbeaulieu97/gridcraft/internal/ports"
)

// Declaration is a single property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// ContainerDeclarations converts a container configuration into its
// declarative grid representation. Sizing mode and width are interpreted
// here and nowhere else.
func ContainerDeclarations(cfg layout.ContainerConfig) []Declaration {
	cfg = cfg.Normalize()
	return []Declaration{
		{ports.PropDisplay, "grid"},
		{ports.PropWidth, FormatLength(cfg.Width) + "%"},
		{ports.PropGridTemplateColumns, ColumnTracks(cfg)},
		{ports.PropGridAutoRows, fmt.Sprintf("minmax(%spx, auto)", FormatLength(cfg.RowMin))},
		{ports.PropGap, FormatLength(cfg.Gap) + "px"},
		{ports.PropJustifyItems, cfg.JustifyItems},
		{ports.PropAlignItems, cfg.AlignItems},
		{ports.PropJustifyContent, cfg.JustifyContent},
		{ports.PropAlignContent, cfg.AlignContent},
		{ports.PropGridAutoFlow, cfg.FlowKeyword()},
	}
}

// ColumnTracks renders grid-template-columns for the configuration.
func ColumnTracks(cfg layout.ContainerConfig) string {
	return fmt.Sprintf("repeat(%d, minmax(%spx, %s))", cfg.Columns, FormatLength(cfg.ColumnMin), trackKeyword(cfg.Sizing))
}

// ApplyContainer writes the container declarations onto the surface.
func ApplyContainer(surface ports.Surface, cfg layout.ContainerConfig) {
	for _, d := range ContainerDeclarations(cfg) {
		surface.SetContainerProperty(d.Property, d.Value)
	}
}

// FormatLength renders a number in its shortest decimal form.
func FormatLength(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func trackKeyword(mode layout.SizingMode) string {
	if mode == layout.SizingFit {
		return "auto"
	}
	return "1fr"
}
