// Package surface is the host rendering engine the editor projects onto. It
// stores declarations, resolves them through a small cascade, places boxes on
// the grid and draws them for the terminal.
package surface

import (
	"strings"

	"github.com/alexisbeaulieu97/gridcraft/internal/ports"
)

// initialValues are what a property resolves to when nothing declared it.
var initialValues = map[string]string{
	ports.PropDisplay:             "block",
	ports.PropWidth:               "auto",
	ports.PropGridTemplateColumns: "none",
	ports.PropGridAutoRows:        "auto",
	ports.PropGap:                 "normal",
	ports.PropJustifyItems:        "normal",
	ports.PropAlignItems:          "normal",
	ports.PropJustifyContent:      "normal",
	ports.PropAlignContent:        "normal",
	ports.PropGridAutoFlow:        "row",
	ports.PropGridColumn:          "auto",
	ports.PropGridRow:             "auto",
	ports.PropJustifySelf:         "auto",
	ports.PropAlignSelf:           "auto",
}

// selfInherits maps a box's self-alignment to the container property it
// falls back to when no override is declared.
var selfInherits = map[string]string{
	ports.PropJustifySelf: ports.PropJustifyItems,
	ports.PropAlignSelf:   ports.PropAlignItems,
}

type box struct {
	props map[string]string
	hue   int
}

// Surface is an in-memory rendering surface.
type Surface struct {
	container map[string]string
	boxes     []box
}

// New returns an empty surface with no boxes.
func New() *Surface {
	return &Surface{container: make(map[string]string)}
}

// Mount destroys every box and creates n fresh ones.
func (s *Surface) Mount(n int) {
	if n < 0 {
		n = 0
	}
	s.boxes = make([]box, n)
	for i := range s.boxes {
		s.boxes[i] = box{props: make(map[string]string)}
	}
}

// Len reports the number of mounted boxes.
func (s *Surface) Len() int {
	return len(s.boxes)
}

// SetContainerProperty declares a container property.
func (s *Surface) SetContainerProperty(name, value string) {
	s.container[name] = value
}

// SetItemProperty declares a property on a box. Unknown boxes are ignored.
func (s *Surface) SetItemProperty(index int, name, value string) {
	if b := s.box(index); b != nil {
		b.props[name] = value
	}
}

// ClearItemProperty removes a declaration from a box.
func (s *Surface) ClearItemProperty(index int, name string) {
	if b := s.box(index); b != nil {
		delete(b.props, name)
	}
}

// SetItemHue colors a box.
func (s *Surface) SetItemHue(index, hue int) {
	if b := s.box(index); b != nil {
		b.hue = hue
	}
}

// Hue returns the hue of a box.
func (s *Surface) Hue(index int) int {
	if b := s.box(index); b != nil {
		return b.hue
	}
	return 0
}

// ResolvedContainer returns the effective container value.
func (s *Surface) ResolvedContainer(name string) string {
	if v, ok := s.container[name]; ok {
		if v = normalizeValue(v); v != "" {
			return v
		}
	}
	return initialValues[name]
}

// ResolvedItem returns the effective value of a box property. Self alignment
// without an override, or declared as "auto", resolves to the container's
// matching *-items value.
func (s *Surface) ResolvedItem(index int, name string) string {
	b := s.box(index)
	if b == nil {
		return ""
	}
	v, ok := b.props[name]
	v = normalizeValue(v)
	if parent, inherits := selfInherits[name]; inherits && (!ok || v == "" || v == "auto") {
		return s.ResolvedContainer(parent)
	}
	if !ok || v == "" {
		return initialValues[name]
	}
	return v
}

// InlineItem returns the raw declaration on a box.
func (s *Surface) InlineItem(index int, name string) (string, bool) {
	b := s.box(index)
	if b == nil {
		return "", false
	}
	v, ok := b.props[name]
	if !ok {
		return "", false
	}
	return normalizeValue(v), true
}

func (s *Surface) box(index int) *box {
	if index < 0 || index >= len(s.boxes) {
		return nil
	}
	return &s.boxes[index]
}

func normalizeValue(v string) string {
	return strings.Join(strings.Fields(v), " ")
}

var _ ports.Surface = (*Surface)(nil)
