package ports

// Declarative property names shared by the renderers, the surface and the
// preview.
const (
	PropDisplay             = "display"
	PropWidth               = "width"
	PropGridTemplateColumns = "grid-template-columns"
	PropGridAutoRows        = "grid-auto-rows"
	PropGap                 = "gap"
	PropJustifyItems        = "justify-items"
	PropAlignItems          = "align-items"
	PropJustifyContent      = "justify-content"
	PropAlignContent        = "align-content"
	PropGridAutoFlow        = "grid-auto-flow"

	PropGridColumn  = "grid-column"
	PropGridRow     = "grid-row"
	PropJustifySelf = "justify-self"
	PropAlignSelf   = "align-self"
)

// Surface is the rendering surface the editor projects its model onto. The
// surface owns actual box placement; callers only declare properties and
// read back what the surface resolved.
//
// Implementations are driven from a single event loop and need not be safe
// for concurrent use.
type Surface interface {
	// Mount destroys every box and creates n fresh boxes in order.
	Mount(n int)
	// Len reports the number of mounted boxes.
	Len() int

	SetContainerProperty(name, value string)
	SetItemProperty(index int, name, value string)
	// ClearItemProperty removes an inline declaration so the box inherits
	// again.
	ClearItemProperty(index int, name string)
	SetItemHue(index, hue int)

	// ResolvedContainer returns the effective container value after the
	// cascade.
	ResolvedContainer(name string) string
	// ResolvedItem returns the effective value for a box after the cascade.
	ResolvedItem(index int, name string) string
	// InlineItem returns the value declared directly on a box, if any.
	InlineItem(index int, name string) (string, bool)
}
