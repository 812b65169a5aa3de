package layout

// Keyword sets offered by the alignment and flow controls. The model does not
// validate against them.
var (
	JustifyItemsKeywords = []string{"start", "end", "center", "stretch"}
	AlignItemsKeywords   = []string{"start", "end", "center", "stretch", "baseline"}
	ContentKeywords      = []string{"start", "end", "center", "stretch", "space-between", "space-around", "space-evenly"}
	SelfKeywords         = []string{"auto", "start", "end", "center", "stretch"}
	FlowDirections       = []FlowDirection{FlowRow, FlowColumn}
	SizingModes          = []SizingMode{SizingFill, SizingFit}
)
