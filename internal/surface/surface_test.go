package surface

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/gridcraft/internal/ports"
)

func TestResolvedContainerFallsBackToInitialValues(t *testing.T) {
	s := New()

	assert.Equal(t, "block", s.ResolvedContainer(ports.PropDisplay))
	assert.Equal(t, "row", s.ResolvedContainer(ports.PropGridAutoFlow))
	assert.Equal(t, "normal", s.ResolvedContainer(ports.PropJustifyItems))

	s.SetContainerProperty(ports.PropGap, "  12px ")
	s.SetContainerProperty(ports.PropGridTemplateColumns, "repeat(4,  minmax(140px, 1fr))")
	assert.Equal(t, "12px", s.ResolvedContainer(ports.PropGap))
	assert.Equal(t, "repeat(4, minmax(140px, 1fr))", s.ResolvedContainer(ports.PropGridTemplateColumns))
}

func TestResolvedItemSelfAlignmentCascade(t *testing.T) {
	s := New()
	s.Mount(2)
	s.SetContainerProperty(ports.PropJustifyItems, "center")
	s.SetContainerProperty(ports.PropAlignItems, "end")

	assert.Equal(t, "center", s.ResolvedItem(0, ports.PropJustifySelf))
	assert.Equal(t, "end", s.ResolvedItem(0, ports.PropAlignSelf))

	s.SetItemProperty(0, ports.PropJustifySelf, "start")
	assert.Equal(t, "start", s.ResolvedItem(0, ports.PropJustifySelf))
	assert.Equal(t, "center", s.ResolvedItem(1, ports.PropJustifySelf))

	s.ClearItemProperty(0, ports.PropJustifySelf)
	assert.Equal(t, "center", s.ResolvedItem(0, ports.PropJustifySelf))
	_, ok := s.InlineItem(0, ports.PropJustifySelf)
	assert.False(t, ok)
}

func TestOutOfRangeBoxesAreIgnored(t *testing.T) {
	s := New()
	s.Mount(1)

	s.SetItemProperty(5, ports.PropGridColumn, "1 / span 2")
	s.SetItemHue(-1, 30)

	assert.Equal(t, "", s.ResolvedItem(5, ports.PropGridColumn))
	_, ok := s.InlineItem(5, ports.PropGridColumn)
	assert.False(t, ok)
	assert.Equal(t, "auto", s.ResolvedItem(0, ports.PropGridColumn))
}

func TestMountReplacesBoxes(t *testing.T) {
	s := New()
	s.Mount(3)
	s.SetItemProperty(0, ports.PropGridRow, "2 / span 1")
	s.Mount(2)

	assert.Equal(t, 2, s.Len())
	_, ok := s.InlineItem(0, ports.PropGridRow)
	assert.False(t, ok)

	s.Mount(-1)
	assert.Equal(t, 0, s.Len())
}

func newGrid(columns string, flow string, placements ...string) *Surface {
	s := New()
	s.SetContainerProperty(ports.PropGridTemplateColumns, columns)
	s.SetContainerProperty(ports.PropGridAutoFlow, flow)
	s.Mount(len(placements) / 2)
	for i := 0; i+1 < len(placements); i += 2 {
		s.SetItemProperty(i/2, ports.PropGridColumn, placements[i])
		s.SetItemProperty(i/2, ports.PropGridRow, placements[i+1])
	}
	return s
}

func TestLayoutRowFlowWrapsAtExplicitColumns(t *testing.T) {
	s := newGrid("repeat(3, minmax(10px, 1fr))", "row",
		"auto / span 1", "auto / span 1",
		"auto / span 1", "auto / span 1",
		"auto / span 1", "auto / span 1",
		"auto / span 1", "auto / span 1",
	)

	g := s.Layout()

	assert.Equal(t, 3, g.Columns)
	assert.Equal(t, 2, g.Rows)
	assert.Equal(t, Box{Index: 3, Column: 0, Row: 1, ColumnSpan: 1, RowSpan: 1}, g.Boxes[3])
}

func TestLayoutSparseVersusDense(t *testing.T) {
	placements := []string{
		"auto / span 1", "auto / span 1",
		"auto / span 3", "auto / span 1",
		"auto / span 1", "auto / span 1",
	}

	sparse := newGrid("repeat(3, minmax(10px, 1fr))", "row", placements...).Layout()
	assert.Equal(t, 1, sparse.Boxes[1].Row)
	assert.Equal(t, 2, sparse.Boxes[2].Row, "sparse packing never backfills")

	dense := newGrid("repeat(3, minmax(10px, 1fr))", "row dense", placements...).Layout()
	assert.Equal(t, 0, dense.Boxes[2].Row, "dense packing backfills the first hole")
	assert.Equal(t, 1, dense.Boxes[2].Column)
}

func TestLayoutHonoursExplicitStartsAndClampsSpans(t *testing.T) {
	s := newGrid("repeat(4, minmax(10px, 1fr))", "row",
		"3 / span 2", "auto / span 1",
		"auto / span 9", "auto / span 1",
	)

	g := s.Layout()

	assert.Equal(t, 2, g.Boxes[0].Column)
	assert.Equal(t, 2, g.Boxes[0].ColumnSpan)
	assert.Equal(t, 4, g.Boxes[1].ColumnSpan)
	assert.Equal(t, 1, g.Boxes[1].Row)
}

func TestLayoutColumnFlowGrowsColumns(t *testing.T) {
	s := newGrid("repeat(2, minmax(10px, 1fr))", "column",
		"auto / span 1", "auto / span 1",
		"auto / span 1", "auto / span 1",
		"auto / span 1", "auto / span 1",
	)

	g := s.Layout()

	assert.Equal(t, 1, g.Rows)
	assert.Equal(t, 3, g.Columns)
	assert.Equal(t, 2, g.Boxes[2].Column)
}

func TestParseAxis(t *testing.T) {
	assert.Equal(t, axis{start: 2, span: 2}, parseAxis("3 / span 2"))
	assert.Equal(t, axis{start: -1, span: 1}, parseAxis("auto"))
	assert.Equal(t, axis{start: -1, span: 4}, parseAxis("main-start / span 4"))
	assert.Equal(t, axis{start: -1, span: 1}, parseAxis("-1 / span 0"))
}

func TestDrawLabelsEveryBox(t *testing.T) {
	s := newGrid("repeat(4, minmax(140px, 1fr))", "row",
		"auto / span 1", "auto / span 1",
		"auto / span 2", "auto / span 2",
		"auto / span 1", "auto / span 1",
	)
	s.SetContainerProperty(ports.PropWidth, "100%")
	s.SetContainerProperty(ports.PropGap, "12px")
	s.SetContainerProperty(ports.PropGridAutoRows, "minmax(80px, auto)")

	out := s.Draw(CanvasOptions{Width: 100, Selected: 1, ASCII: true})

	for _, want := range []string{"Item 1", "Item 2", "Item 3"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, "#")
	require.Greater(t, len(strings.Split(out, "\n")), 4)
}

func TestDrawEmptyGrid(t *testing.T) {
	s := New()
	assert.Contains(t, s.Draw(CanvasOptions{Width: 40}), "empty grid")
}

func TestDistributeAndAlign(t *testing.T) {
	off, extra := distribute("center", 10, 3)
	assert.Equal(t, 5, off)
	assert.Zero(t, extra)

	off, extra = distribute("space-between", 10, 3)
	assert.Zero(t, off)
	assert.Equal(t, 5, extra)

	lo, hi := alignSpan("end", 0, 20, 8)
	assert.Equal(t, 12, lo)
	assert.Equal(t, 20, hi)

	lo, hi = alignSpan("stretch", 0, 20, 8)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 20, hi)
}

func TestHueColorIsHex(t *testing.T) {
	c := HueColor(205)
	assert.True(t, strings.HasPrefix(c, "#"))
	assert.Len(t, c, 7)
}

func TestLayoutBoundsOversizedPlacements(t *testing.T) {
	s := newGrid("repeat(4, minmax(140px, 1fr))", "row",
		"auto / span 1", "auto / span 99999999",
		"auto / span 1", "5000000 / span 1",
		"2147483647 / span 2147483647", "auto / span 1",
	)

	g := s.Layout()

	assert.Equal(t, 4, g.Columns)
	assert.LessOrEqual(t, g.Rows, maxTracks)
	assert.Equal(t, maxTracks, g.Boxes[0].RowSpan)
	assert.Equal(t, maxTracks-1, g.Boxes[1].Row)
	assert.Equal(t, 3, g.Boxes[2].Column)
	assert.Equal(t, 1, g.Boxes[2].ColumnSpan)
}

func TestDrawBoundsOversizedGrid(t *testing.T) {
	s := newGrid("repeat(1000000, minmax(999999px, 1fr))", "column",
		"auto / span 99999999", "auto / span 99999999",
		"auto / span 1", "5000000 / span 1",
	)
	s.SetContainerProperty(ports.PropGap, "100000px")
	s.SetContainerProperty(ports.PropGridAutoRows, "minmax(100000px, auto)")

	out := s.Draw(CanvasOptions{Width: 100, Selected: 0, ASCII: true})

	lines := strings.Split(out, "\n")
	assert.LessOrEqual(t, len(lines), maxCanvasLines)
	for _, line := range lines {
		assert.LessOrEqual(t, lipgloss.Width(line), maxCanvasWidth)
	}
	assert.Contains(t, out, "Item 1")
}

func TestParseAxisClampsToTrackLimit(t *testing.T) {
	assert.Equal(t, axis{start: -1, span: maxTracks}, parseAxis("auto / span 99999999"))
	assert.Equal(t, axis{start: maxTracks - 1, span: 1}, parseAxis("5000000 / span 4"))
	assert.Equal(t, axis{start: 9, span: maxTracks - 9}, parseAxis("10 / span 500"))
}
