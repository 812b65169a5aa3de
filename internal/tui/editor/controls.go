package editor

import (
	"fmt"
	"math"
	"strconv"

	"github.com/alexisbeaulieu97/gridcraft/internal/domain/layout"
	"github.com/alexisbeaulieu97/gridcraft/internal/render"
)

// ControlKind is the widget type of a control.
type ControlKind int

const (
	KindRange ControlKind = iota
	KindNumber
	KindText
	KindChoice
	KindToggle
	KindButton
)

// ControlID names a control.
type ControlID string

const (
	CtrlColumns        ControlID = "cols"
	CtrlColumnMin      ControlID = "colMin"
	CtrlRowMin         ControlID = "rowMin"
	CtrlGap            ControlID = "gap"
	CtrlJustifyItems   ControlID = "justifyItems"
	CtrlAlignItems     ControlID = "alignItems"
	CtrlJustifyContent ControlID = "justifyContent"
	CtrlAlignContent   ControlID = "alignContent"
	CtrlAutoFlow       ControlID = "autoFlow"
	CtrlDense          ControlID = "dense"
	CtrlSizing         ControlID = "sizing"
	CtrlWidth          ControlID = "width"
	CtrlItemCount      ControlID = "itemCount"
	CtrlSelectedItem   ControlID = "selectedItem"
	CtrlColumnStart    ControlID = "colStart"
	CtrlColumnSpan     ControlID = "colSpan"
	CtrlRowStart       ControlID = "rowStart"
	CtrlRowSpan        ControlID = "rowSpan"
	CtrlJustifySelf    ControlID = "justifySelf"
	CtrlAlignSelf      ControlID = "alignSelf"
	CtrlShuffle        ControlID = "shuffle"
	CtrlReset          ControlID = "reset"
)

// maxSpan caps the span fields.
const maxSpan = 24

type scope int

const (
	scopeContainer scope = iota
	scopeItem
	scopeAction
)

// control describes one widget on the control panel.
type control struct {
	id      ControlID
	label   string
	kind    ControlKind
	scope   scope
	min     float64
	max     float64
	step    float64
	options []string
}

func newControls(maxColumns, maxItems int) []control {
	return []control{
		{id: CtrlColumns, label: "Columns", kind: KindRange, scope: scopeContainer, min: 1, max: float64(maxColumns), step: 1},
		{id: CtrlColumnMin, label: "Column min (px)", kind: KindRange, scope: scopeContainer, min: 0, max: 400, step: 10},
		{id: CtrlRowMin, label: "Row min (px)", kind: KindRange, scope: scopeContainer, min: 0, max: 300, step: 10},
		{id: CtrlGap, label: "Gap (px)", kind: KindRange, scope: scopeContainer, min: 0, max: 64, step: 1},
		{id: CtrlJustifyItems, label: "justify-items", kind: KindChoice, scope: scopeContainer, options: layout.JustifyItemsKeywords},
		{id: CtrlAlignItems, label: "align-items", kind: KindChoice, scope: scopeContainer, options: layout.AlignItemsKeywords},
		{id: CtrlJustifyContent, label: "justify-content", kind: KindChoice, scope: scopeContainer, options: layout.ContentKeywords},
		{id: CtrlAlignContent, label: "align-content", kind: KindChoice, scope: scopeContainer, options: layout.ContentKeywords},
		{id: CtrlAutoFlow, label: "Auto flow", kind: KindChoice, scope: scopeContainer, options: flowOptions()},
		{id: CtrlDense, label: "Dense", kind: KindToggle, scope: scopeContainer},
		{id: CtrlSizing, label: "Track sizing", kind: KindChoice, scope: scopeContainer, options: sizingOptions()},
		{id: CtrlWidth, label: "Width (%)", kind: KindRange, scope: scopeContainer, min: 10, max: 100, step: 5},
		{id: CtrlItemCount, label: "Items", kind: KindRange, scope: scopeContainer, min: 0, max: float64(maxItems), step: 1},
		{id: CtrlSelectedItem, label: "Selected item", kind: KindChoice, scope: scopeItem},
		{id: CtrlColumnStart, label: "Column start", kind: KindText, scope: scopeItem},
		{id: CtrlColumnSpan, label: "Column span", kind: KindNumber, scope: scopeItem, min: 1, max: maxSpan, step: 1},
		{id: CtrlRowStart, label: "Row start", kind: KindText, scope: scopeItem},
		{id: CtrlRowSpan, label: "Row span", kind: KindNumber, scope: scopeItem, min: 1, max: maxSpan, step: 1},
		{id: CtrlJustifySelf, label: "justify-self", kind: KindChoice, scope: scopeItem, options: layout.SelfKeywords},
		{id: CtrlAlignSelf, label: "align-self", kind: KindChoice, scope: scopeItem, options: layout.SelfKeywords},
		{id: CtrlShuffle, label: "Shuffle", kind: KindButton, scope: scopeAction},
		{id: CtrlReset, label: "Reset", kind: KindButton, scope: scopeAction},
	}
}

func flowOptions() []string {
	out := make([]string, len(layout.FlowDirections))
	for i, f := range layout.FlowDirections {
		out[i] = string(f)
	}
	return out
}

func sizingOptions() []string {
	out := make([]string, len(layout.SizingModes))
	for i, s := range layout.SizingModes {
		out[i] = string(s)
	}
	return out
}

// value renders the current model value of a control. Item controls show
// "-" when there is no selection.
func (m Model) value(c control) string {
	cfg := m.ctrl.Container()
	item, hasItem := m.ctrl.SelectedItem()
	idx, _ := m.ctrl.Selected()

	switch c.id {
	case CtrlColumns:
		return strconv.Itoa(cfg.Columns)
	case CtrlColumnMin:
		return render.FormatLength(cfg.ColumnMin)
	case CtrlRowMin:
		return render.FormatLength(cfg.RowMin)
	case CtrlGap:
		return render.FormatLength(cfg.Gap)
	case CtrlJustifyItems:
		return cfg.JustifyItems
	case CtrlAlignItems:
		return cfg.AlignItems
	case CtrlJustifyContent:
		return cfg.JustifyContent
	case CtrlAlignContent:
		return cfg.AlignContent
	case CtrlAutoFlow:
		return string(cfg.Flow)
	case CtrlDense:
		return onOff(cfg.Dense)
	case CtrlSizing:
		return string(cfg.Sizing)
	case CtrlWidth:
		return render.FormatLength(cfg.Width)
	case CtrlItemCount:
		return strconv.Itoa(cfg.ItemCount)
	case CtrlShuffle, CtrlReset:
		return ""
	}

	if !hasItem {
		return "-"
	}
	switch c.id {
	case CtrlSelectedItem:
		return fmt.Sprintf("Item %d", idx+1)
	case CtrlColumnStart:
		return item.ColumnStart
	case CtrlColumnSpan:
		return strconv.Itoa(item.ColumnSpan)
	case CtrlRowStart:
		return item.RowStart
	case CtrlRowSpan:
		return strconv.Itoa(item.RowSpan)
	case CtrlJustifySelf:
		return item.JustifySelf
	case CtrlAlignSelf:
		return item.AlignSelf
	}
	return ""
}

// step nudges a control by delta steps (or options, for choices).
func (m *Model) step(c control, delta int) {
	switch c.kind {
	case KindRange, KindNumber:
		current, err := strconv.ParseFloat(m.value(c), 64)
		if err != nil {
			current = c.min
		}
		m.commit(c, render.FormatLength(c.clamp(current+float64(delta)*c.step)))
	case KindChoice:
		if c.id == CtrlSelectedItem {
			idx, ok := m.ctrl.Selected()
			if ok {
				m.ctrl.Select(idx + delta)
			}
			return
		}
		m.commit(c, cycle(c.options, m.value(c), delta))
	case KindToggle:
		m.press(c)
	}
}

// press toggles a boolean or fires a button.
func (m *Model) press(c control) {
	switch c.id {
	case CtrlDense:
		m.ctrl.UpdateContainer(func(cfg *layout.ContainerConfig) { cfg.Dense = !cfg.Dense })
	case CtrlShuffle:
		m.ctrl.Shuffle()
		m.status = "Shuffled items"
	case CtrlReset:
		m.ctrl.Reset()
		m.status = "Reset to defaults"
	}
}

// commit writes raw input for a control into the model. Input is coerced,
// never rejected.
func (m *Model) commit(c control, raw string) {
	switch c.id {
	case CtrlColumns:
		n := min(layout.ParseColumns(raw), int(c.max))
		m.ctrl.UpdateContainer(func(cfg *layout.ContainerConfig) { cfg.Columns = n })
	case CtrlColumnMin:
		v := c.clamp(layout.ParseSize(raw))
		m.ctrl.UpdateContainer(func(cfg *layout.ContainerConfig) { cfg.ColumnMin = v })
	case CtrlRowMin:
		v := c.clamp(layout.ParseSize(raw))
		m.ctrl.UpdateContainer(func(cfg *layout.ContainerConfig) { cfg.RowMin = v })
	case CtrlGap:
		v := c.clamp(layout.ParseSize(raw))
		m.ctrl.UpdateContainer(func(cfg *layout.ContainerConfig) { cfg.Gap = v })
	case CtrlWidth:
		v := c.clamp(layout.ParseSize(raw))
		m.ctrl.UpdateContainer(func(cfg *layout.ContainerConfig) { cfg.Width = v })
	case CtrlJustifyItems:
		m.ctrl.UpdateContainer(func(cfg *layout.ContainerConfig) { cfg.JustifyItems = raw })
	case CtrlAlignItems:
		m.ctrl.UpdateContainer(func(cfg *layout.ContainerConfig) { cfg.AlignItems = raw })
	case CtrlJustifyContent:
		m.ctrl.UpdateContainer(func(cfg *layout.ContainerConfig) { cfg.JustifyContent = raw })
	case CtrlAlignContent:
		m.ctrl.UpdateContainer(func(cfg *layout.ContainerConfig) { cfg.AlignContent = raw })
	case CtrlAutoFlow:
		m.ctrl.UpdateContainer(func(cfg *layout.ContainerConfig) { cfg.Flow = layout.FlowDirection(raw) })
	case CtrlSizing:
		m.ctrl.UpdateContainer(func(cfg *layout.ContainerConfig) { cfg.Sizing = layout.SizingMode(raw) })
	case CtrlItemCount:
		m.ctrl.SetItemCount(min(layout.ParseCount(raw), int(c.max)))
	case CtrlSelectedItem:
		m.ctrl.Select(layout.ParseCount(raw) - 1)
	case CtrlColumnStart:
		m.ctrl.UpdateSelected(layout.ItemPatch{ColumnStart: &raw})
	case CtrlRowStart:
		m.ctrl.UpdateSelected(layout.ItemPatch{RowStart: &raw})
	case CtrlColumnSpan:
		span := min(layout.ParseSpan(raw), int(c.max))
		m.ctrl.UpdateSelected(layout.ItemPatch{ColumnSpan: &span})
	case CtrlRowSpan:
		span := min(layout.ParseSpan(raw), int(c.max))
		m.ctrl.UpdateSelected(layout.ItemPatch{RowSpan: &span})
	case CtrlJustifySelf:
		m.ctrl.UpdateSelected(layout.ItemPatch{JustifySelf: &raw})
	case CtrlAlignSelf:
		m.ctrl.UpdateSelected(layout.ItemPatch{AlignSelf: &raw})
	}
}

// clamp bounds a numeric value to the control's range.
func (c control) clamp(v float64) float64 {
	v = math.Max(v, c.min)
	if c.max > 0 {
		v = math.Min(v, c.max)
	}
	return v
}

// editable reports whether enter opens a text field for the control.
func (c control) editable() bool {
	switch c.kind {
	case KindRange, KindNumber, KindText:
		return true
	}
	return c.id == CtrlSelectedItem
}

func cycle(options []string, current string, delta int) string {
	if len(options) == 0 {
		return current
	}
	idx := -1
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return options[0]
	}
	n := len(options)
	return options[((idx+delta)%n+n)%n]
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
