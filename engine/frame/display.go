package frame

import "bytes"

// DisplayMode is a type for CSS property "display".
type DisplayMode uint16

// Flags for box context and display mode (outer and inner).
const (
	NoMode       DisplayMode = iota   // unset or error condition
	DisplayNone  DisplayMode = 0x0001 // CSS outer display = none
	FlowMode     DisplayMode = 0x0002 // CSS inner display = flow
	BlockMode    DisplayMode = 0x0004 // CSS block context (inner or outer)
	InlineMode   DisplayMode = 0x0008 // CSS inline context
	ListItemMode DisplayMode = 0x0010 // CSS list-item display
	FlowRoot     DisplayMode = 0x0020 // CSS flow-root display property
	FlexMode     DisplayMode = 0x0040 // CSS inner display = flex
	GridMode     DisplayMode = 0x0080 // CSS inner display = grid
	TableMode    DisplayMode = 0x0100 // CSS table display property (inner or outer)
)

// Common combinations of outer and inner display modes.
const (
	DisplayInline      = InlineMode | FlowMode
	DisplayBlock       = BlockMode | FlowMode
	DisplayInlineBlock = InlineMode | FlowRoot
	DisplayInlineFlex  = InlineMode | FlexMode
)

var allDisplayModes = []DisplayMode{
	DisplayNone, FlowMode, BlockMode, InlineMode, ListItemMode, FlowRoot, FlexMode,
	GridMode, TableMode,
}

var displayModeNames = map[DisplayMode]string{
	DisplayNone:  "none",
	FlowMode:     "flow",
	BlockMode:    "block",
	InlineMode:   "inline",
	ListItemMode: "list-item",
	FlowRoot:     "flow-root",
	FlexMode:     "flex",
	GridMode:     "grid",
	TableMode:    "table",
}

// Set sets a given atomic mode within this display mode.
func (disp *DisplayMode) Set(d DisplayMode) {
	*disp = (*disp) | d
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

// Overlaps returns true if a given display mode shares at least one atomic
// mode flag with disp (excluding NoMode).
func (disp DisplayMode) Overlaps(d DisplayMode) bool {
	for _, m := range allDisplayModes {
		if disp.Contains(m) && d.Contains(m) {
			return true
		}
	}
	return false
}

// AlignsToLineBox is true for display modes for which vertical-align values
// `top` and `bottom` align a box relative to the line box, instead of stacking
// it on the baseline: inline, block, inline-block and inline-flex.
func (disp DisplayMode) AlignsToLineBox() bool {
	if disp.Overlaps(DisplayNone | TableMode | GridMode | ListItemMode) {
		return false
	}
	return disp.Contains(InlineMode) || disp.Contains(BlockMode)
}

func (disp DisplayMode) String() string {
	if disp == NoMode {
		return "NoMode"
	}
	var b bytes.Buffer
	first := true
	for _, m := range allDisplayModes {
		if disp.Contains(m) {
			if !first {
				b.WriteString(" ")
			}
			first = false
			b.WriteString(displayModeNames[m])
		}
	}
	return b.String()
}
