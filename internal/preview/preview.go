package preview

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/gridcraft/internal/ports"
)

// ContainerSelector is the selector of the container block.
const ContainerSelector = ".grid-container"

// containerOrder is the fixed property order of the container block.
var containerOrder = []string{
	ports.PropDisplay,
	ports.PropWidth,
	ports.PropGridTemplateColumns,
	ports.PropGridAutoRows,
	ports.PropGap,
	ports.PropJustifyItems,
	ports.PropAlignItems,
	ports.PropJustifyContent,
	ports.PropAlignContent,
	ports.PropGridAutoFlow,
}

// Rule is a single property line.
type Rule struct {
	Property string
	Value    string
}

// Block is a commented rule set.
type Block struct {
	Comment  string
	Selector string
	Rules    []Rule
}

// Sheet is the ordered preview: the container block, optionally followed by
// the selected item's override block.
type Sheet struct {
	Blocks []Block
}

// Selection identifies the item whose overrides are previewed.
type Selection struct {
	Index int
	Valid bool
}

// Read derives the preview from what the surface actually holds. The
// container block uses resolved values; the item block lists the placement
// and self-alignment declarations present on the selected box.
func Read(surface ports.Surface, sel Selection) Sheet {
	container := Block{
		Comment:  "Current container CSS",
		Selector: ContainerSelector,
		Rules:    make([]Rule, 0, len(containerOrder)),
	}
	for _, prop := range containerOrder {
		container.Rules = append(container.Rules, Rule{Property: prop, Value: surface.ResolvedContainer(prop)})
	}

	sheet := Sheet{Blocks: []Block{container}}
	if !sel.Valid || sel.Index < 0 || sel.Index >= surface.Len() {
		return sheet
	}

	var rules []Rule
	for _, prop := range []string{ports.PropGridColumn, ports.PropGridRow} {
		if v, ok := surface.InlineItem(sel.Index, prop); ok && v != "" {
			rules = append(rules, Rule{Property: prop, Value: v})
		}
	}
	for _, prop := range []string{ports.PropJustifySelf, ports.PropAlignSelf} {
		if v, ok := surface.InlineItem(sel.Index, prop); ok && v != "" && v != "auto" {
			rules = append(rules, Rule{Property: prop, Value: v})
		}
	}
	if len(rules) == 0 {
		return sheet
	}

	ordinal := sel.Index + 1
	sheet.Blocks = append(sheet.Blocks, Block{
		Comment:  fmt.Sprintf("Selected item (%d) overrides", ordinal),
		Selector: fmt.Sprintf(".item:nth-child(%d)", ordinal),
		Rules:    rules,
	})
	return sheet
}

// Container returns the container block.
func (s Sheet) Container() Block {
	if len(s.Blocks) == 0 {
		return Block{}
	}
	return s.Blocks[0]
}

// Item returns the item override block, if present.
func (s Sheet) Item() (Block, bool) {
	if len(s.Blocks) < 2 {
		return Block{}, false
	}
	return s.Blocks[1], true
}

// Lookup finds a property value within a block.
func (b Block) Lookup(property string) (string, bool) {
	for _, r := range b.Rules {
		if r.Property == property {
			return r.Value, true
		}
	}
	return "", false
}

// String renders the sheet as CSS text.
func (s Sheet) String() string {
	lines := make([]string, 0, 16)
	for i, b := range s.Blocks {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, fmt.Sprintf("/* %s */", b.Comment), b.Selector+" {")
		for _, r := range b.Rules {
			lines = append(lines, fmt.Sprintf("  %s: %s;", r.Property, r.Value))
		}
		lines = append(lines, "}")
	}
	return strings.Join(lines, "\n")
}
