package surface

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/gridcraft/internal/ports"
)

var repeatPattern = regexp.MustCompile(`^repeat\(\s*(\d+)\s*,`)

// maxTracks bounds explicit lines, spans and the explicit column count so
// that oversized placements still lay out in bounded time and memory.
const maxTracks = 100

// Box is a placed grid item. Tracks are zero-based.
type Box struct {
	Index      int
	Column     int
	Row        int
	ColumnSpan int
	RowSpan    int
}

// Grid is the result of placing every box.
type Grid struct {
	Columns int
	Rows    int
	Boxes   []Box
}

// axis is an item's placement along one axis; start is -1 when automatic.
type axis struct {
	start int
	span  int
}

type request struct {
	index int
	major axis
	minor axis
}

// Layout runs grid auto-placement over the mounted boxes using the resolved
// declarations. Row flow fills the explicit columns and grows rows; column
// flow fills a single implicit row band and grows columns.
func (s *Surface) Layout() Grid {
	columns := s.explicitColumns()
	flow := strings.Fields(s.ResolvedContainer(ports.PropGridAutoFlow))
	columnFlow := len(flow) > 0 && flow[0] == "column"
	dense := len(flow) > 1 && flow[1] == "dense"

	reqs := make([]request, len(s.boxes))
	for i := range s.boxes {
		col := parseAxis(s.ResolvedItem(i, ports.PropGridColumn))
		row := parseAxis(s.ResolvedItem(i, ports.PropGridRow))
		if columnFlow {
			reqs[i] = request{index: i, major: col, minor: row}
		} else {
			reqs[i] = request{index: i, major: row, minor: col}
		}
	}

	limit := columns
	if columnFlow {
		limit = 1
		for _, r := range reqs {
			limit = max(limit, r.minor.span, r.minor.start+r.minor.span)
		}
	}

	p := newPlacer(limit, dense)
	placed := make([]Box, len(reqs))

	// Items locked to a major track go first, the rest follow in order.
	for _, r := range reqs {
		if r.major.start >= 0 {
			placed[r.index] = p.placeLocked(r, columnFlow)
		}
	}
	for _, r := range reqs {
		if r.major.start < 0 {
			placed[r.index] = p.placeAuto(r, columnFlow)
		}
	}

	grid := Grid{Boxes: placed}
	if columnFlow {
		grid.Rows = limit
		grid.Columns = p.extent
	} else {
		grid.Columns = limit
		grid.Rows = p.extent
	}
	return grid
}

func (s *Surface) explicitColumns() int {
	m := repeatPattern.FindStringSubmatch(s.ResolvedContainer(ports.PropGridTemplateColumns))
	if m == nil {
		return 1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 1
	}
	return min(n, maxTracks)
}

// parseAxis reads "<start> / span <n>". Non-integer starts (line names,
// "auto") are treated as automatic. The result never reaches past
// maxTracks.
func parseAxis(value string) axis {
	a := axis{start: -1, span: 1}
	parts := strings.SplitN(value, "/", 2)
	if n, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil && n >= 1 {
		a.start = min(n, maxTracks) - 1
	}
	if len(parts) == 2 {
		fields := strings.Fields(parts[1])
		if len(fields) == 2 && fields[0] == "span" {
			if n, err := strconv.Atoi(fields[1]); err == nil && n >= 1 {
				a.span = min(n, maxTracks)
			}
		}
	}
	if a.start >= 0 {
		a.span = min(a.span, maxTracks-a.start)
	}
	return a
}

type placer struct {
	limit    int
	dense    bool
	occupied map[[2]int]bool
	cursor   [2]int
	extent   int
}

func newPlacer(limit int, dense bool) *placer {
	return &placer{limit: limit, dense: dense, occupied: make(map[[2]int]bool)}
}

func (p *placer) fits(major, minor, majorSpan, minorSpan int) bool {
	if minor < 0 || minor+minorSpan > p.limit {
		return false
	}
	for a := major; a < major+majorSpan; a++ {
		for b := minor; b < minor+minorSpan; b++ {
			if p.occupied[[2]int{a, b}] {
				return false
			}
		}
	}
	return true
}

func (p *placer) mark(major, minor, majorSpan, minorSpan int) {
	for a := major; a < major+majorSpan; a++ {
		for b := minor; b < minor+minorSpan; b++ {
			p.occupied[[2]int{a, b}] = true
		}
	}
	p.extent = max(p.extent, major+majorSpan)
}

func (p *placer) clampMinor(a axis) axis {
	a.span = min(a.span, p.limit)
	if a.start >= 0 && a.start+a.span > p.limit {
		a.start = p.limit - a.span
	}
	return a
}

func (p *placer) placeLocked(r request, columnFlow bool) Box {
	minor := p.clampMinor(r.minor)
	col := minor.start
	if col < 0 {
		col = 0
		for c := 0; c+minor.span <= p.limit; c++ {
			if p.fits(r.major.start, c, r.major.span, minor.span) {
				col = c
				break
			}
		}
	}
	p.mark(r.major.start, col, r.major.span, minor.span)
	return toBox(r.index, r.major.start, col, r.major.span, minor.span, columnFlow)
}

func (p *placer) placeAuto(r request, columnFlow bool) Box {
	minor := p.clampMinor(r.minor)
	major, start := p.cursor[0], p.cursor[1]
	if p.dense {
		major, start = 0, 0
	}

	if minor.start >= 0 {
		if !p.dense && minor.start < start {
			major++
		}
		for !p.fits(major, minor.start, r.major.span, minor.span) {
			major++
		}
		p.mark(major, minor.start, r.major.span, minor.span)
		p.cursor = [2]int{major, minor.start + minor.span}
		return toBox(r.index, major, minor.start, r.major.span, minor.span, columnFlow)
	}

	for {
		for c := start; c+minor.span <= p.limit; c++ {
			if p.fits(major, c, r.major.span, minor.span) {
				p.mark(major, c, r.major.span, minor.span)
				p.cursor = [2]int{major, c + minor.span}
				return toBox(r.index, major, c, r.major.span, minor.span, columnFlow)
			}
		}
		major++
		start = 0
	}
}

func toBox(index, major, minor, majorSpan, minorSpan int, columnFlow bool) Box {
	if columnFlow {
		return Box{Index: index, Column: major, Row: minor, ColumnSpan: majorSpan, RowSpan: minorSpan}
	}
	return Box{Index: index, Column: minor, Row: major, ColumnSpan: minorSpan, RowSpan: majorSpan}
}
