package inline

import (
	"fmt"

	"github.com/npillmayer/inlay/core/dimen"
	"github.com/npillmayer/inlay/engine/frame"
	"github.com/npillmayer/inlay/engine/text"
)

// NodeID identifies the element a fragment has been generated for.
// IDs are assigned by the client; they have to be unique within a flow.
type NodeID int

// FragmentKind tells what a fragment represents.
type FragmentKind uint8

// Kinds of fragments.
const (
	TextFragment           FragmentKind = iota // a slice of a shaped text run
	ReplacedFragment                           // an image or similar atomic box
	InlineBlockFragment                        // an inline-block or inline-flex box
	HypotheticalFragment                       // static position of an absolutely positioned box
	InlineAbsoluteFragment                     // an inline absolutely positioned box
)

var kindNames = [...]string{"text", "replaced", "inline-block", "hypothetical", "inline-absolute"}

func (k FragmentKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?"
}

// Fragment is a unit of inline layout. Text fragments are slices of a shared
// text run. Atomic fragments have a size fixed by the client. Placeholder
// fragments take up no space in a line.
//
// Fragments are owned by their flow. The line breaker rebuilds the flow's
// fragment sequence on every pass, splitting and merging text fragments as
// needed; split pieces share their source run.
type Fragment struct {
	frame.Box
	Kind    FragmentKind
	Node    NodeID              // element which generated the fragment
	Style   *frame.StyleSet     // computed style of the fragment itself
	Context *InlineContext      // enclosing inline elements, may be nil
	Flags   frame.FragmentFlags //
	text    *scannedText        // for text fragments
	atomic  AtomicInfo          // for replaced and inline-block fragments
	full    *Fragment           // untruncated original of a truncated fragment
}

// scannedText is the text part of a fragment.
// The cluster range [startIncludingWhitespace, endIncludingWhitespace) includes
// white space stripped at line boundaries.
type scannedText struct {
	run                        *text.Run
	span                       text.Span // visible clusters
	startIncludingWhitespace   int
	endIncludingWhitespace     int
	selected                   bool
	requiresLineBreakAfterward bool
}

// AtomicInfo holds the client-provided metrics of a replaced or inline-block
// fragment.
type AtomicInfo struct {
	ContentSize    dimen.LogicalSize // size of the content box
	Baseline       dimen.Dimen       // baseline offset from the top of the border box
	HasBaseline    bool              // inline-blocks without in-flow lines have none
	IntrinsicSizes IntrinsicISizes   // min-content and max-content contributions
}

// InlineNode is an enclosing inline element of a fragment.
type InlineNode struct {
	Node  NodeID
	Style *frame.StyleSet
	Flags frame.ElementFlags
}

// InlineContext lists the inline elements enclosing a fragment, innermost first.
type InlineContext struct {
	Nodes []InlineNode
}

// NewInlineContext creates a context from enclosing elements, innermost first.
// All elements are flagged as complete.
func NewInlineContext(nodes ...InlineNode) *InlineContext {
	ctx := &InlineContext{Nodes: make([]InlineNode, len(nodes))}
	copy(ctx.Nodes, nodes)
	for i := range ctx.Nodes {
		ctx.Nodes[i].Flags = frame.WholeElement
	}
	return ctx
}

// Clone returns a deep copy of a context. A nil context is returned as nil.
func (ctx *InlineContext) Clone() *InlineContext {
	if ctx == nil {
		return nil
	}
	c := &InlineContext{Nodes: make([]InlineNode, len(ctx.Nodes))}
	copy(c.Nodes, ctx.Nodes)
	return c
}

// Equals is true if two contexts consist of the same elements with the same
// styles. Flags are not compared.
func (ctx *InlineContext) Equals(other *InlineContext) bool {
	if ctx.Len() != other.Len() {
		return false
	}
	for i := 0; i < ctx.Len(); i++ {
		a, b := ctx.Nodes[i], other.Nodes[i]
		if a.Node != b.Node || !a.Style.Equals(b.Style) {
			return false
		}
	}
	return true
}

// Len returns the number of enclosing elements. It is 0 for a nil context.
func (ctx *InlineContext) Len() int {
	if ctx == nil {
		return 0
	}
	return len(ctx.Nodes)
}

func (ctx *InlineContext) clearFlag(flag frame.ElementFlags) {
	if ctx == nil {
		return
	}
	for i := range ctx.Nodes {
		ctx.Nodes[i].Flags.Clear(flag)
	}
}

// --- Constructors ----------------------------------------------------------

// NewTextFragment creates a fragment for the clusters of span within run.
// requiresBreak marks the fragment as ending in a preserved newline.
func NewTextFragment(node NodeID, style *frame.StyleSet, ctx *InlineContext, run *text.Run,
	span text.Span, requiresBreak bool) *Fragment {
	//
	f := &Fragment{
		Kind:    TextFragment,
		Node:    node,
		Style:   style,
		Context: ctx,
		text: &scannedText{
			run:                        run,
			span:                       span,
			startIncludingWhitespace:   span.Start,
			endIncludingWhitespace:     span.End,
			requiresLineBreakAfterward: requiresBreak,
		},
	}
	f.updateBorderBoxSize()
	return f
}

// NewTextFragments creates text fragments for a complete run, splitting it
// after every mandatory break, i.e. after preserved newlines. Each fragment
// ending in a newline requires a line break afterward. Mandatory breaks are
// honoured only if the style preserves newlines.
func NewTextFragments(node NodeID, style *frame.StyleSet, ctx *InlineContext, run *text.Run) []*Fragment {
	var fragments []*Fragment
	start := 0
	if style.WhiteSpace.PreservesNewlines() {
		for i := 0; i < run.Len(); i++ {
			if run.MustBreakAfter(i) {
				fragments = append(fragments, NewTextFragment(node, style, ctx.Clone(), run,
					text.Span{Start: start, End: i + 1}, true))
				start = i + 1
			}
		}
	}
	if start < run.Len() || len(fragments) == 0 {
		fragments = append(fragments, NewTextFragment(node, style, ctx.Clone(), run,
			text.Span{Start: start, End: run.Len()}, false))
	}
	for i, f := range fragments {
		if i > 0 {
			f.Context.clearFlag(frame.FirstFragmentOfElement)
		}
		if i < len(fragments)-1 {
			f.Context.clearFlag(frame.LastFragmentOfElement)
		}
	}
	tracer().Debugf("run %v split into %d text fragment(s)", run, len(fragments))
	return fragments
}

// NewAtomicFragment creates a fragment for a replaced element or an
// inline-block. kind must be ReplacedFragment or InlineBlockFragment.
func NewAtomicFragment(kind FragmentKind, node NodeID, style *frame.StyleSet, ctx *InlineContext,
	info AtomicInfo) *Fragment {
	//
	f := &Fragment{
		Kind:    kind,
		Node:    node,
		Style:   style,
		Context: ctx,
		atomic:  info,
	}
	f.updateBorderBoxSize()
	return f
}

// NewPlaceholderFragment creates a fragment for an absolutely positioned
// element, either HypotheticalFragment or InlineAbsoluteFragment.
func NewPlaceholderFragment(kind FragmentKind, node NodeID, style *frame.StyleSet,
	ctx *InlineContext) *Fragment {
	//
	return &Fragment{
		Kind:    kind,
		Node:    node,
		Style:   style,
		Context: ctx,
	}
}

// --- Capabilities ----------------------------------------------------------

// Run returns the text run of a text fragment, or nil.
func (f *Fragment) Run() *text.Run {
	if f.text == nil {
		return nil
	}
	return f.text.run
}

// Span returns the visible clusters of a text fragment.
func (f *Fragment) Span() text.Span {
	if f.text == nil {
		return text.Span{}
	}
	return f.text.span
}

// Text returns the visible text of a text fragment.
func (f *Fragment) Text() string {
	if f.text == nil {
		return ""
	}
	return f.text.run.TextOf(f.text.span)
}

// OriginalText returns the text of a text fragment, including white space
// which has been stripped at line boundaries.
func (f *Fragment) OriginalText() string {
	if f.text == nil {
		return ""
	}
	return f.text.run.TextOf(text.Span{
		Start: f.text.startIncludingWhitespace,
		End:   f.text.endIncludingWhitespace,
	})
}

// Atomic returns the client-provided metrics of an atomic fragment.
func (f *Fragment) Atomic() AtomicInfo {
	return f.atomic
}

// Select sets the selection state of a text fragment. Fragments with different
// selection state are never merged.
func (f *Fragment) Select(on bool) {
	if f.text != nil {
		f.text.selected = on
	}
}

// CanSplit is true for text fragments which are allowed to wrap.
func (f *Fragment) CanSplit() bool {
	return f.Kind == TextFragment && f.Style.TextWrap == frame.Wrap
}

// MinimumSplittableInlineSize returns the least inline size a line has to
// provide to take up a piece of the fragment, i.e. its first word plus its
// inline-start decorations.
func (f *Fragment) MinimumSplittableInlineSize() dimen.Dimen {
	if f.text == nil {
		return f.MarginBoxInlineSize()
	}
	return f.text.run.MinimumSplittableInlineSize(f.text.span) +
		f.Margin.InlineStart + f.BorderPadding.InlineStart
}

// IsOnGlyphRunBoundary is true if a line may start with the fragment as far
// as its text is concerned. Non-text fragments are always on a boundary.
func (f *Fragment) IsOnGlyphRunBoundary() bool {
	if f.text == nil {
		return true
	}
	return f.text.run.CanBreakBefore(f.text.span.Start)
}

// IsBreakOpportunityBefore is true if the line breaker may start a new line with
// this fragment.
func (f *Fragment) IsBreakOpportunityBefore() bool {
	return !f.Flags.Contains(frame.SuppressLineBreakBefore) &&
		f.IsOnGlyphRunBoundary() && f.Style.TextWrap == frame.Wrap
}

// RequiresLineBreakAfterward is true if the fragment ends in a preserved newline.
func (f *Fragment) RequiresLineBreakAfterward() bool {
	return f.text != nil && f.text.requiresLineBreakAfterward
}

// BidiLevel returns the embedding level of a fragment. Non-text fragments are
// on the paragraph level.
func (f *Fragment) BidiLevel(paragraphLevel uint8) uint8 {
	if f.text == nil {
		return paragraphLevel
	}
	return f.text.run.Level()
}

// IsHypothetical is true for the placeholder of an absolutely positioned box.
func (f *Fragment) IsHypothetical() bool { return f.Kind == HypotheticalFragment }

// IsInlineAbsolute is true for an inline absolutely positioned box.
func (f *Fragment) IsInlineAbsolute() bool { return f.Kind == InlineAbsoluteFragment }

// IsReplacedOrInlineBlock is true for atomic fragments.
func (f *Fragment) IsReplacedOrInlineBlock() bool {
	return f.Kind == ReplacedFragment || f.Kind == InlineBlockFragment
}

// IsTextOrReplaced is true for fragments contributing the block's font
// metrics to a line.
func (f *Fragment) IsTextOrReplaced() bool {
	return f.Kind == TextFragment || f.Kind == ReplacedFragment
}

// IsEllipsis is true for a synthesized ellipsis.
func (f *Fragment) IsEllipsis() bool {
	return f.Flags.Contains(frame.IsEllipsis)
}

// IsTruncated is true for a fragment truncated for text-overflow.
func (f *Fragment) IsTruncated() bool {
	return f.full != nil
}

// Full returns the untruncated original of a truncated fragment, or nil.
func (f *Fragment) Full() *Fragment {
	return f.full
}

// IsPositioned is true if the fragment or any of its enclosing elements is
// positioned.
func (f *Fragment) IsPositioned() bool {
	for _, s := range f.inlineStyles() {
		if s.IsPositioned() {
			return true
		}
	}
	return false
}

// IsAbsolutelyPositioned is true for fragments of absolutely positioned
// elements.
func (f *Fragment) IsAbsolutelyPositioned() bool {
	return f.Style.IsAbsolutelyPositioned()
}

// IsVerticallyAlignedToTopOrBottom is true if the fragment or any enclosing
// element aligns to the top or bottom of the line box.
func (f *Fragment) IsVerticallyAlignedToTopOrBottom() bool {
	for _, s := range f.inlineStyles() {
		if s.VerticalAlign.IsTopOrBottom() {
			return true
		}
	}
	return false
}

// inlineStyles returns the fragment's own style followed by the styles of its
// enclosing elements, innermost first.
func (f *Fragment) inlineStyles() []*frame.StyleSet {
	styles := make([]*frame.StyleSet, 0, 1+f.Context.Len())
	styles = append(styles, f.Style)
	if f.Context != nil {
		for _, n := range f.Context.Nodes {
			styles = append(styles, n.Style)
		}
	}
	return styles
}

// updateBorderBoxSize derives the border box extent from content and
// decorations.
func (f *Fragment) updateBorderBoxSize() {
	bp := f.BorderPadding
	switch f.Kind {
	case TextFragment:
		m := f.text.run.Metrics()
		f.BorderBox.Size.Inline = f.text.run.Advance(f.text.span) + bp.InlineStartEnd()
		f.BorderBox.Size.Block = m.Ascent + m.Descent + bp.BlockStartEnd()
	case ReplacedFragment, InlineBlockFragment:
		f.BorderBox.Size.Inline = f.atomic.ContentSize.Inline + bp.InlineStartEnd()
		f.BorderBox.Size.Block = f.atomic.ContentSize.Block + bp.BlockStartEnd()
	default:
		f.BorderBox.Size = dimen.LogicalSize{}
	}
}

// copyFragment returns a shallow copy of f with its own text record and context.
func (f *Fragment) copyFragment() *Fragment {
	c := *f
	if f.text != nil {
		t := *f.text
		c.text = &t
	}
	c.Context = f.Context.Clone()
	return &c
}

func (f *Fragment) String() string {
	if f.text != nil {
		return fmt.Sprintf("%s#%d%v%q", f.Kind, f.Node, f.text.span, abbrev(f.Text()))
	}
	return fmt.Sprintf("%s#%d(%v)", f.Kind, f.Node, f.BorderBox.Size)
}

func abbrev(s string) string {
	r := []rune(s)
	if len(r) <= 16 {
		return s
	}
	return string(r[:15]) + "…"
}
