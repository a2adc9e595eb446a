package inline

import (
	"github.com/npillmayer/inlay/core/dimen"
	"github.com/npillmayer/inlay/engine/frame"
	"github.com/npillmayer/inlay/engine/text"
)

// Flow is an inline formatting context: a sequence of fragments belonging to
// one block container, to be broken into lines.
//
// Layout of a flow proceeds in three steps:
//
//	flow.BubbleInlineSizes()      // intrinsic sizes, optional
//	flow.AssignInlineSizes(width) // decorations and indentation
//	flow.AssignBlockSize()        // line breaking and positioning
//
// The steps may be repeated, e.g. with a different width. Every pass starts
// from the fragments produced by the previous one; fragments split by the
// previous pass are merged again.
type Flow struct {
	Fragments            []*Fragment       // in logical order
	Lines                []Line            // result of line breaking
	Style                *frame.StyleSet   // style of the block container
	Floats               frame.Floats      // floats to flow around, in flow coordinates
	FloatsOut            frame.Floats      // floats for content following the flow
	Options              Options           // settings not covered by styles
	Shaper               text.Shaper       // shaper for ellipses, may be nil
	FirstLineIndentation dimen.Dimen       // resolved text-indent
	MinimumLineMetrics   LineMetrics       // strut of every line
	IntrinsicInlineSizes IntrinsicISizes   // result of BubbleInlineSizes
	Position             dimen.LogicalRect // extent of the flow
}

// NewFlow creates an inline flow for a block container with a given style.
func NewFlow(fragments []*Fragment, style *frame.StyleSet, options Options) *Flow {
	return &Flow{
		Fragments: fragments,
		Style:     style,
		Options:   options,
	}
}

// BubbleInlineSizes computes the flow's intrinsic inline sizes.
// Fragments which may not be broken in between are combined into non-broken
// runs; preserved newlines end a line.
func (fl *Flow) BubbleInlineSizes() IntrinsicISizes {
	var flow, inlineRun, nonbrokenRun intrinsicISizesContribution
	endLine := func() {
		inlineRun.unionInline(nonbrokenRun.finish())
		nonbrokenRun = intrinsicISizesContribution{}
		flow.unionBlock(inlineRun.finish())
		inlineRun = intrinsicISizesContribution{}
	}
	for _, f := range fl.Fragments {
		if f.IsEllipsis() {
			continue
		}
		if f.IsTruncated() {
			f = f.Full()
		}
		sizes := f.intrinsicInlineSizes().finish()
		ws, wrap := f.Style.WhiteSpace, f.Style.TextWrap
		switch {
		case !ws.CollapsesSpaces() && wrap == frame.Nowrap: // pre
			nonbrokenRun.unionNonbreakingInline(sizes)
			if f.RequiresLineBreakAfterward() {
				endLine()
			}
		case ws.PreservesNewlines() && wrap == frame.Wrap: // pre-wrap, pre-line
			nonbrokenRun.unionInline(sizes)
			if f.RequiresLineBreakAfterward() {
				endLine()
			}
		case wrap == frame.Nowrap: // nowrap
			nonbrokenRun.unionNonbreakingInline(sizes)
		default: // normal
			if f.Flags.Contains(frame.SuppressLineBreakBefore) || !f.IsOnGlyphRunBoundary() {
				nonbrokenRun.unionNonbreakingInline(sizes)
				continue
			}
			inlineRun.unionInline(nonbrokenRun.finish())
			nonbrokenRun = intrinsicISizesContribution{}
			nonbrokenRun.unionInline(sizes)
		}
	}
	inlineRun.unionInline(nonbrokenRun.finish())
	flow.unionBlock(inlineRun.finish())
	fl.IntrinsicInlineSizes = flow.finish()
	tracer().Debugf("inline flow: intrinsic sizes %v", fl.IntrinsicInlineSizes)
	return fl.IntrinsicInlineSizes
}

// AssignInlineSizes sets the inline size of the flow and resolves the
// decorations of all fragments against it.
func (fl *Flow) AssignInlineSizes(containerInlineSize dimen.Dimen) {
	fl.Position.Size.Inline = containerInlineSize
	for _, f := range fl.Fragments {
		if f.IsTruncated() {
			f = f.Full()
		}
		f.Margin, f.BorderPadding = f.inlineDecorations(containerInlineSize)
		f.updateBorderBoxSize()
	}
	fl.FirstLineIndentation = fl.Options.FirstLineIndent
	if !fl.Style.TextIndent.IsZero() {
		fl.FirstLineIndentation = fl.Style.TextIndent.Resolve(containerInlineSize)
	}
	fl.MinimumLineMetrics = MinimumLineMetricsForFragments(fl.Fragments, fl.Style)
	tracer().Debugf("inline flow: inline size %v, indentation %v", containerInlineSize,
		fl.FirstLineIndentation)
}

// AssignBlockSize breaks the flow's fragments into lines and positions them.
// The block size of the flow extends to the bottom of the last line holding
// more than placeholders.
func (fl *Flow) AssignBlockSize() {
	lb := newLineBreaker(fl.Floats, fl.Position.Size.Inline, fl.FirstLineIndentation,
		fl.MinimumLineMetrics)
	if fl.Options.Ellipsis != "" {
		lb.ellipsis = fl.Options.Ellipsis
	}
	lb.shaper = fl.Shaper
	fl.Fragments, fl.Lines = lb.scanForLines(fl.Fragments)
	computeVisualRuns(fl.Fragments, fl.Lines, fl.Style.BidiLevel())
	fl.setInlineFragmentPositions()
	fl.setBlockFragmentPositions()
	var blockSize dimen.Dimen
	if i, ok := fl.lastLineContainingRealFragments(); ok {
		blockSize = fl.Lines[i].Bounds.BlockEnd()
	}
	fl.Position.Size.Block = blockSize
	fl.FloatsOut = fl.Floats.Translate(dimen.LogicalSize{Block: -blockSize})
	tracer().Debugf("inline flow: block size %v", blockSize)
}

func (fl *Flow) lastLineContainingRealFragments() (int, bool) {
	for i := len(fl.Lines) - 1; i >= 0; i-- {
		found := false
		fl.Lines[i].Range.Each(func(idx FragmentIndex) {
			if !fl.Fragments[idx].IsHypothetical() {
				found = true
			}
		})
		if found {
			return i, true
		}
	}
	return 0, false
}

// BaselineOffsetOfLastLine returns the block position of the baseline of the
// last line holding more than placeholders.
func (fl *Flow) BaselineOffsetOfLastLine() (dimen.Dimen, bool) {
	i, ok := fl.lastLineContainingRealFragments()
	if !ok {
		return 0, false
	}
	line := fl.Lines[i]
	return line.Bounds.Start.B + line.Metrics.SpaceAboveBaseline, true
}

// ContainingBlockRange returns the range of positioned fragments surrounding
// fragment #index. They make up the containing block for absolutely
// positioned descendants of an inline element.
func (fl *Flow) ContainingBlockRange(index FragmentIndex) FragmentRange {
	start := index
	for start > 0 && fl.Fragments[start-1].IsPositioned() {
		start--
	}
	end := index + 1
	for int(end) < len(fl.Fragments) && fl.Fragments[end].IsPositioned() {
		end++
	}
	return Range(start, end-start)
}

// ContainingBlockRangeFor returns the containing block range for the fragment
// of an absolutely positioned node. Placeholder fragments are preferred.
func (fl *Flow) ContainingBlockRangeFor(node NodeID) (FragmentRange, bool) {
	found := noIndex
	for i, f := range fl.Fragments {
		if f.Node != node {
			continue
		}
		if f.IsHypothetical() || f.IsInlineAbsolute() {
			found = FragmentIndex(i)
			break
		}
		if found == noIndex {
			found = FragmentIndex(i)
		}
	}
	if found == noIndex {
		return FragmentRange{}, false
	}
	return fl.ContainingBlockRange(found), true
}

// GeneratedContainingBlockSize returns the size of the containing block an
// inline element establishes for an absolutely positioned node: the sum of the
// inline sizes and the maximum of the block sizes of the fragments in its
// containing block range, skipping absolutely positioned fragments.
func (fl *Flow) GeneratedContainingBlockSize(node NodeID) dimen.LogicalSize {
	var size dimen.LogicalSize
	r, ok := fl.ContainingBlockRangeFor(node)
	if !ok {
		return size
	}
	r.Each(func(i FragmentIndex) {
		f := fl.Fragments[i]
		if f.IsAbsolutelyPositioned() {
			return
		}
		size.Inline += f.BorderBox.Size.Inline
		size.Block = dimen.Max(size.Block, f.BorderBox.Size.Block)
	})
	return size
}

// inlineDecorations returns margins and border plus padding of a fragment.
// Atomic fragments carry the decorations of their own style. Every fragment
// carries the decorations of its enclosing elements: block-start and block-end
// always, inline-start for the first fragment of an element, inline-end for
// the last one. Margins of inline elements apply in inline direction only.
func (f *Fragment) inlineDecorations(cbInlineSize dimen.Dimen) (margin, bp dimen.LogicalSides) {
	if f.IsHypothetical() || f.IsInlineAbsolute() {
		return
	}
	if f.IsReplacedOrInlineBlock() {
		margin = f.Style.Margins.Resolve(cbInlineSize)
		bp = f.Style.BorderPadding(cbInlineSize)
	}
	if f.Context == nil {
		return
	}
	for _, n := range f.Context.Nodes {
		m := n.Style.Margins.Resolve(cbInlineSize)
		b := n.Style.BorderPadding(cbInlineSize)
		bp.BlockStart += b.BlockStart
		bp.BlockEnd += b.BlockEnd
		if n.Flags.Contains(frame.FirstFragmentOfElement) {
			margin.InlineStart += m.InlineStart
			bp.InlineStart += b.InlineStart
		}
		if n.Flags.Contains(frame.LastFragmentOfElement) {
			margin.InlineEnd += m.InlineEnd
			bp.InlineEnd += b.InlineEnd
		}
	}
	return
}
