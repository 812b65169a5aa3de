package render

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/gridcraft/internal/domain/layout"
	"github.com/alexisbeaulieu97/gridcraft/internal/ports"
)

// Override is an optional self-alignment declaration. Set is false when the
// item inherits the container's *-items value.
type Override struct {
	Value string
	Set   bool
}

// Placement is the declarative form of an item's configuration.
type Placement struct {
	Column      string
	Row         string
	JustifySelf Override
	AlignSelf   Override
}

// FormatPlacement converts an item into its declarative placement.
func FormatPlacement(item layout.ItemConfig) Placement {
	return Placement{
		Column:      formatAxis(item.ColumnStart, item.ColumnSpan),
		Row:         formatAxis(item.RowStart, item.RowSpan),
		JustifySelf: selfOverride(item.JustifySelf),
		AlignSelf:   selfOverride(item.AlignSelf),
	}
}

// ApplyPlacement projects a placement onto the box at index. Absent
// overrides are cleared rather than set to "auto".
func ApplyPlacement(surface ports.Surface, index int, p Placement) {
	surface.SetItemProperty(index, ports.PropGridColumn, p.Column)
	surface.SetItemProperty(index, ports.PropGridRow, p.Row)
	applyOverride(surface, index, ports.PropJustifySelf, p.JustifySelf)
	applyOverride(surface, index, ports.PropAlignSelf, p.AlignSelf)
}

// ApplyItem formats and applies an item, including its hue.
func ApplyItem(surface ports.Surface, index int, item layout.ItemConfig) {
	ApplyPlacement(surface, index, FormatPlacement(item))
	surface.SetItemHue(index, item.Hue)
}

func formatAxis(start string, span int) string {
	return fmt.Sprintf("%s / span %d", layout.NormalizeStart(start), layout.ClampSpan(span))
}

func selfOverride(keyword string) Override {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" || keyword == layout.AutoKeyword {
		return Override{}
	}
	return Override{Value: keyword, Set: true}
}

func applyOverride(surface ports.Surface, index int, name string, o Override) {
	if !o.Set {
		surface.ClearItemProperty(index, name)
		return
	}
	surface.SetItemProperty(index, name, o.Value)
}
