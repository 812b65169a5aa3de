package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewItemIsDeterministic(t *testing.T) {
	for i := 0; i < 3*len(Palette); i++ {
		a := NewItem(i)
		b := NewItem(i)
		assert.Equal(t, a, b)
		assert.Equal(t, Palette[i%len(Palette)], a.Hue)
		assert.Equal(t, "center", a.JustifySelf)
		assert.Equal(t, "center", a.AlignSelf)
	}
}

func TestPaletteHueWrapsNegative(t *testing.T) {
	assert.Equal(t, Palette[len(Palette)-1], PaletteHue(-1))
	assert.Equal(t, Palette[0], PaletteHue(len(Palette)))
}

func TestParseSpan(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"abc", 1},
		{"0", 1},
		{"-3", 1},
		{"1", 1},
		{"2", 2},
		{" 7 ", 7},
		{"2.4", 2},
		{"2.6", 3},
		{"NaN", 1},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSpan(tt.raw))
		})
	}
}

func TestParseSizeAndCounts(t *testing.T) {
	assert.Equal(t, 0.0, ParseSize("nope"))
	assert.Equal(t, 0.0, ParseSize("-12"))
	assert.Equal(t, 12.5, ParseSize("12.5"))

	assert.Equal(t, 1, ParseColumns(""))
	assert.Equal(t, 1, ParseColumns("0"))
	assert.Equal(t, 6, ParseColumns("6"))

	assert.Equal(t, 0, ParseCount("x"))
	assert.Equal(t, 0, ParseCount("-1"))
	assert.Equal(t, 12, ParseCount("12"))
}

func TestNormalizeStart(t *testing.T) {
	assert.Equal(t, "auto", NormalizeStart(""))
	assert.Equal(t, "auto", NormalizeStart("  \t"))
	assert.Equal(t, "3", NormalizeStart(" 3 "))
	assert.Equal(t, "main-start", NormalizeStart("main-start"))
}

func TestFlowKeyword(t *testing.T) {
	cfg := DefaultContainer()
	assert.Equal(t, "row", cfg.FlowKeyword())

	cfg.Flow = FlowColumn
	cfg.Dense = true
	assert.Equal(t, "column dense", cfg.FlowKeyword())
}
