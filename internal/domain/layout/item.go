package layout

import "strings"

// AutoKeyword is both the implicit start line and the "inherit" self alignment.
const AutoKeyword = "auto"

// Palette holds the hues items are colored with.
var Palette = []int{8, 24, 45, 160, 205, 260, 300, 345}

// ItemConfig captures the placement parameters of a single grid item. Items
// have no identity beyond their position in the model's sequence.
type ItemConfig struct {
	ColumnStart string
	ColumnSpan  int
	RowStart    string
	RowSpan     int
	JustifySelf string
	AlignSelf   string
	Hue         int
}

// ItemPatch is a partial update for the selected item. Nil fields are left
// untouched.
type ItemPatch struct {
	ColumnStart *string
	ColumnSpan  *int
	RowStart    *string
	RowSpan     *int
	JustifySelf *string
	AlignSelf   *string
}

// DefaultItem returns an item with every placement field at its default and
// the first palette hue.
func DefaultItem() ItemConfig {
	return ItemConfig{
		ColumnStart: AutoKeyword,
		ColumnSpan:  1,
		RowStart:    AutoKeyword,
		RowSpan:     1,
		JustifySelf: "center",
		AlignSelf:   "center",
		Hue:         Palette[0],
	}
}

// NewItem builds the default item for the given position. The hue cycles
// through the palette so equal positions always get equal colors.
func NewItem(position int) ItemConfig {
	item := DefaultItem()
	item.Hue = PaletteHue(position)
	return item
}

// PaletteHue returns the palette entry for an index, wrapping in both
// directions.
func PaletteHue(index int) int {
	n := len(Palette)
	i := index % n
	if i < 0 {
		i += n
	}
	return Palette[i]
}

// Sanitize coerces placement fields into their valid shapes.
func (i ItemConfig) Sanitize() ItemConfig {
	out := i
	out.ColumnStart = NormalizeStart(out.ColumnStart)
	out.RowStart = NormalizeStart(out.RowStart)
	out.ColumnSpan = ClampSpan(out.ColumnSpan)
	out.RowSpan = ClampSpan(out.RowSpan)
	return out
}

// Apply merges a patch into the item and sanitizes the result. Alignment
// keywords pass through as given.
func (i ItemConfig) Apply(p ItemPatch) ItemConfig {
	out := i
	if p.ColumnStart != nil {
		out.ColumnStart = *p.ColumnStart
	}
	if p.ColumnSpan != nil {
		out.ColumnSpan = *p.ColumnSpan
	}
	if p.RowStart != nil {
		out.RowStart = *p.RowStart
	}
	if p.RowSpan != nil {
		out.RowSpan = *p.RowSpan
	}
	if p.JustifySelf != nil {
		out.JustifySelf = *p.JustifySelf
	}
	if p.AlignSelf != nil {
		out.AlignSelf = *p.AlignSelf
	}
	return out.Sanitize()
}

// NormalizeStart trims a start token and falls back to "auto" when blank.
func NormalizeStart(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return AutoKeyword
	}
	return token
}

// ClampSpan forces a span to be at least one track.
func ClampSpan(span int) int {
	if span < 1 {
		return 1
	}
	return span
}
