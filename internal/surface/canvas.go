package surface

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/gridcraft/internal/ports"
)

// Terminal cells are coarse; one column of text stands for pxPerCell pixels
// and one line for pxPerLine.
const (
	pxPerCell = 10.0
	pxPerLine = 20.0

	minBoxWidth  = 8
	minBoxHeight = 3

	// Upper bounds on what a single track, gap or the whole canvas may
	// occupy. Boxes past the canvas edge are clipped.
	maxColumnCells = 40
	maxRowLines    = 10
	maxGapCells    = 8
	maxCanvasWidth = 1000
	maxCanvasLines = 1000
)

var trackPattern = strings.NewReplacer("(", " ", ")", " ", ",", " ")

// CanvasOptions controls how the surface is drawn.
type CanvasOptions struct {
	// Width is the number of terminal columns available to the container.
	Width int
	// Selected highlights a box; negative means none.
	Selected int
	// ASCII draws borders without box-drawing characters.
	ASCII bool
}

type cell struct {
	r     rune
	owner int
}

// Draw renders the placed boxes as text. It reads only resolved values.
func (s *Surface) Draw(opts CanvasOptions) string {
	grid := s.Layout()
	if len(grid.Boxes) == 0 {
		return lipgloss.NewStyle().Faint(true).Render("(empty grid)")
	}

	avail := s.containerWidth(opts.Width)
	colMin, flexible := s.columnTrack()
	colMin = min(colMin, maxColumnCells)
	rowMin := min(s.rowTrack(), maxRowLines)
	gap := min(s.gapCells(), maxGapCells)

	contentWidth := minBoxWidth
	for _, b := range grid.Boxes {
		contentWidth = max(contentWidth, lipgloss.Width(label(b.Index))+4)
	}

	colWidth := max(colMin, contentWidth)
	used := grid.Columns*colWidth + (grid.Columns-1)*gap
	if flexible && used < avail {
		colWidth = max(colWidth, (avail-(grid.Columns-1)*gap)/grid.Columns)
		used = grid.Columns*colWidth + (grid.Columns-1)*gap
	}
	offset, extra := distribute(s.ResolvedContainer(ports.PropJustifyContent), avail-used, grid.Columns)

	rowHeight := max(rowMin, minBoxHeight)
	colX := make([]int, grid.Columns+1)
	for i := range colX {
		colX[i] = offset + i*(colWidth+gap+extra)
	}
	rowY := make([]int, grid.Rows+1)
	for i := range rowY {
		rowY[i] = i * (rowHeight + gap/2)
	}

	width := min(max(avail, colX[grid.Columns]-gap-extra), maxCanvasWidth)
	height := min(max(rowY[grid.Rows]-gap/2, 1), maxCanvasLines)
	canvas := make([][]cell, height)
	for y := range canvas {
		canvas[y] = make([]cell, width)
		for x := range canvas[y] {
			canvas[y][x] = cell{r: ' ', owner: -1}
		}
	}

	for _, b := range grid.Boxes {
		x0 := colX[b.Column]
		x1 := colX[b.Column+b.ColumnSpan] - gap - extra
		y0 := rowY[b.Row]
		y1 := rowY[b.Row+b.RowSpan] - gap/2
		x0, x1 = alignSpan(s.ResolvedItem(b.Index, ports.PropJustifySelf), x0, x1, contentWidth)
		y0, y1 = alignSpan(s.ResolvedItem(b.Index, ports.PropAlignSelf), y0, y1, minBoxHeight)
		drawBox(canvas, b.Index, x0, y0, x1, y1, b.Index == opts.Selected, opts.ASCII)
	}

	return s.paint(canvas, opts.Selected)
}

// containerWidth applies the width percentage to the available columns.
func (s *Surface) containerWidth(total int) int {
	if total <= 0 {
		total = 80
	}
	v := strings.TrimSuffix(s.ResolvedContainer(ports.PropWidth), "%")
	pct, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return total
	}
	return max(minBoxWidth, int(math.Round(float64(total)*pct/100)))
}

// columnTrack reads the minimum column width and whether tracks flex.
func (s *Surface) columnTrack() (int, bool) {
	fields := strings.Fields(trackPattern.Replace(s.ResolvedContainer(ports.PropGridTemplateColumns)))
	// repeat N minmax MIN MAX
	if len(fields) < 5 {
		return minBoxWidth, true
	}
	return pxToCells(fields[3], pxPerCell), fields[4] == "1fr"
}

func (s *Surface) rowTrack() int {
	fields := strings.Fields(trackPattern.Replace(s.ResolvedContainer(ports.PropGridAutoRows)))
	if len(fields) < 2 {
		return minBoxHeight
	}
	return pxToCells(fields[1], pxPerLine)
}

func (s *Surface) gapCells() int {
	return pxToCells(s.ResolvedContainer(ports.PropGap), pxPerCell)
}

func pxToCells(v string, scale float64) int {
	px, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64)
	if err != nil || px <= 0 {
		return 0
	}
	return int(math.Ceil(px / scale))
}

// distribute spreads free space per justify-content; it returns the leading
// offset and the extra space added to every gap.
func distribute(keyword string, free, tracks int) (int, int) {
	if free <= 0 {
		return 0, 0
	}
	switch keyword {
	case "center":
		return free / 2, 0
	case "end", "flex-end", "right":
		return free, 0
	case "space-between":
		if tracks > 1 {
			return 0, free / (tracks - 1)
		}
	case "space-around":
		per := free / tracks
		return per / 2, per
	case "space-evenly":
		per := free / (tracks + 1)
		return per, per
	}
	return 0, 0
}

// alignSpan shrinks an area to its content size according to a
// self-alignment keyword. Stretch and normal fill the area.
func alignSpan(keyword string, lo, hi, content int) (int, int) {
	if hi-lo <= content {
		return lo, hi
	}
	switch keyword {
	case "start", "self-start", "flex-start", "baseline":
		return lo, lo + content
	case "end", "self-end", "flex-end":
		return hi - content, hi
	case "center":
		mid := lo + (hi-lo-content)/2
		return mid, mid + content
	}
	return lo, hi
}

func drawBox(canvas [][]cell, owner, x0, y0, x1, y1 int, selected, ascii bool) {
	border := lipgloss.RoundedBorder()
	if selected {
		border = lipgloss.ThickBorder()
	}
	if ascii {
		border = lipgloss.Border{Top: "-", Bottom: "-", Left: "|", Right: "|", TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+"}
		if selected {
			border = lipgloss.Border{Top: "=", Bottom: "=", Left: "#", Right: "#", TopLeft: "#", TopRight: "#", BottomLeft: "#", BottomRight: "#"}
		}
	}

	put := func(x, y int, s string) {
		if y < 0 || y >= len(canvas) || x < 0 || x >= len(canvas[y]) {
			return
		}
		r := []rune(s)
		if len(r) == 0 {
			return
		}
		canvas[y][x] = cell{r: r[0], owner: owner}
	}

	// Only the visible part of the box is walked; the label centres on it.
	vx0, vy0 := max(x0, 0), max(y0, 0)
	vx1, vy1 := x1, min(y1, len(canvas))
	if len(canvas) > 0 {
		vx1 = min(x1, len(canvas[0]))
	}

	for y := vy0; y < vy1; y++ {
		for x := vx0; x < vx1; x++ {
			switch {
			case y == y0 && x == x0:
				put(x, y, border.TopLeft)
			case y == y0 && x == x1-1:
				put(x, y, border.TopRight)
			case y == y1-1 && x == x0:
				put(x, y, border.BottomLeft)
			case y == y1-1 && x == x1-1:
				put(x, y, border.BottomRight)
			case y == y0:
				put(x, y, border.Top)
			case y == y1-1:
				put(x, y, border.Bottom)
			case x == x0:
				put(x, y, border.Left)
			case x == x1-1:
				put(x, y, border.Right)
			default:
				put(x, y, " ")
			}
		}
	}

	text := []rune(label(owner))
	y := vy0 + (vy1-vy0)/2
	x := vx0 + max(1, (vx1-vx0-len(text))/2)
	for i, r := range text {
		if x+i >= x1-1 || x+i >= vx1 {
			break
		}
		put(x+i, y, string(r))
	}
}

// paint turns the cell matrix into styled lines, one style run per owner.
func (s *Surface) paint(canvas [][]cell, selected int) string {
	styles := make(map[int]lipgloss.Style)
	styleFor := func(owner int) lipgloss.Style {
		if st, ok := styles[owner]; ok {
			return st
		}
		st := lipgloss.NewStyle()
		if owner >= 0 {
			st = st.Foreground(lipgloss.Color(HueColor(s.Hue(owner))))
			if owner == selected {
				st = st.Bold(true)
			}
		}
		styles[owner] = st
		return st
	}

	lines := make([]string, len(canvas))
	for y, row := range canvas {
		var b strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].owner == row[start].owner {
				continue
			}
			run := make([]rune, 0, x-start)
			for _, c := range row[start:x] {
				run = append(run, c.r)
			}
			b.WriteString(styleFor(row[start].owner).Render(string(run)))
			start = x
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(lines, "\n")
}

// HueColor converts a palette hue into a terminal color.
func HueColor(hue int) string {
	return colorful.Hsl(float64(hue%360), 0.7, 0.6).Clamped().Hex()
}

func label(index int) string {
	return fmt.Sprintf("Item %d", index+1)
}
