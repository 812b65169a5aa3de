package layout

import "math"

// FlowDirection is the base grid-auto-flow keyword.
type FlowDirection string

const (
	FlowRow    FlowDirection = "row"
	FlowColumn FlowDirection = "column"
)

// SizingMode controls how flexible column tracks are sized.
type SizingMode string

const (
	// SizingFill lets flexible tracks consume leftover space (1fr).
	SizingFill SizingMode = "fill"
	// SizingFit shrinks flexible tracks to their content (auto).
	SizingFit SizingMode = "fit"
)

// ContainerConfig captures the container-level grid parameters.
type ContainerConfig struct {
	Columns        int
	ColumnMin      float64
	RowMin         float64
	Gap            float64
	JustifyItems   string
	AlignItems     string
	JustifyContent string
	AlignContent   string
	Flow           FlowDirection
	Dense          bool
	ItemCount      int
	Sizing         SizingMode
	Width          float64
}

// DefaultContainer returns the container configuration the editor starts with.
func DefaultContainer() ContainerConfig {
	return ContainerConfig{
		Columns:        4,
		ColumnMin:      140,
		RowMin:         80,
		Gap:            12,
		JustifyItems:   "center",
		AlignItems:     "center",
		JustifyContent: "center",
		AlignContent:   "center",
		Flow:           FlowRow,
		Dense:          false,
		ItemCount:      8,
		Sizing:         SizingFill,
		Width:          100,
	}
}

// Normalize clamps the configuration into its valid ranges. Values are
// coerced, never rejected.
func (c ContainerConfig) Normalize() ContainerConfig {
	out := c
	if out.Columns < 1 {
		out.Columns = 1
	}
	out.ColumnMin = nonNegative(out.ColumnMin)
	out.RowMin = nonNegative(out.RowMin)
	out.Gap = nonNegative(out.Gap)
	out.Width = nonNegative(out.Width)
	if out.ItemCount < 0 {
		out.ItemCount = 0
	}
	switch out.Flow {
	case FlowRow, FlowColumn:
	default:
		out.Flow = FlowRow
	}
	switch out.Sizing {
	case SizingFill, SizingFit:
	default:
		out.Sizing = SizingFill
	}
	return out
}

// FlowKeyword renders the grid-auto-flow value, including the dense flag.
func (c ContainerConfig) FlowKeyword() string {
	if c.Dense {
		return string(c.Flow) + " dense"
	}
	return string(c.Flow)
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if math.IsInf(v, 1) {
		return math.MaxFloat64
	}
	return v
}
