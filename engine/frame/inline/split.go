package inline

import (
	"github.com/npillmayer/inlay/core/dimen"
	"github.com/npillmayer/inlay/engine/frame"
	"github.com/npillmayer/inlay/engine/text"
	"github.com/npillmayer/inlay/engine/text/monospace"
)

// Operations transforming fragments during line breaking. None of them
// changes a text run; pieces of a fragment refer to the same source run.

// StripLeadingWhitespaceIfNecessary removes white space at the start of a text
// fragment, if the fragment's style permits collapsing. The stripped clusters
// stay part of the fragment's original range.
func (f *Fragment) StripLeadingWhitespaceIfNecessary() {
	if f.text == nil || !f.Style.WhiteSpace.CollapsesSpaces() {
		return
	}
	keepNewlines := f.Style.WhiteSpace == frame.WhiteSpacePreserveBreaks
	start := f.text.run.LeadingWhitespace(f.text.span, keepNewlines)
	if start == f.text.span.Start {
		return
	}
	f.text.span.Start = start
	f.updateBorderBoxSize()
}

// StripTrailingWhitespaceIfNecessary removes white space at the end of a text
// fragment, if the fragment's style permits collapsing. It returns the inline
// size removed.
func (f *Fragment) StripTrailingWhitespaceIfNecessary() dimen.Dimen {
	if f.text == nil || !f.Style.WhiteSpace.CollapsesSpaces() {
		return 0
	}
	keepNewlines := f.Style.WhiteSpace == frame.WhiteSpacePreserveBreaks
	end := f.text.run.TrailingWhitespace(f.text.span, keepNewlines)
	if end == f.text.span.End {
		return 0
	}
	before := f.BorderBox.Size.Inline
	f.text.span.End = end
	f.updateBorderBoxSize()
	return before - f.BorderBox.Size.Inline
}

// ResetTextRangeAndInlineSize undoes stripping and justification of a text
// fragment: the fragment covers its original range again and refers to the
// unjustified source run.
func (f *Fragment) ResetTextRangeAndInlineSize() {
	if f.text == nil {
		return
	}
	f.text.run = f.text.run.Source()
	f.text.span = text.Span{
		Start: f.text.startIncludingWhitespace,
		End:   f.text.endIncludingWhitespace,
	}
	f.updateBorderBoxSize()
}

// canMergeWith is true if next continues the text of f without any
// decoration in between.
func (f *Fragment) canMergeWith(next *Fragment) bool {
	if f.Kind != TextFragment || next.Kind != TextFragment {
		return false
	}
	if f.IsEllipsis() || next.IsEllipsis() || f.IsTruncated() || next.IsTruncated() {
		return false
	}
	if f.text.requiresLineBreakAfterward {
		return false
	}
	if f.Margin.InlineEnd != 0 || f.BorderPadding.InlineEnd != 0 ||
		next.Margin.InlineStart != 0 || next.BorderPadding.InlineStart != 0 {
		return false
	}
	return f.text.selected == next.text.selected &&
		f.text.run.SameSource(next.text.run) &&
		f.text.endIncludingWhitespace == next.text.startIncludingWhitespace &&
		f.Context.Equals(next.Context)
}

// MergeWith appends the text of next to f. next has to satisfy canMergeWith.
// f takes over the inline-end decorations of next.
func (f *Fragment) MergeWith(next *Fragment) {
	f.text.endIncludingWhitespace = next.text.endIncludingWhitespace
	f.text.requiresLineBreakAfterward = next.text.requiresLineBreakAfterward
	if f.Context != nil && next.Context != nil {
		for i, n := range next.Context.Nodes {
			if n.Flags.Contains(frame.LastFragmentOfElement) && f.Context.Nodes[i].Node == n.Node {
				f.Context.Nodes[i].Flags.Set(frame.LastFragmentOfElement)
			}
		}
	}
	f.Margin.InlineEnd = next.Margin.InlineEnd
	f.BorderPadding.InlineEnd = next.BorderPadding.InlineEnd
	f.ResetTextRangeAndInlineSize()
}

// calculateSplitPosition finds the longest head of a text fragment whose margin
// box fits into maxInline. It returns the spans for the head and the tail,
// either of which may be nil.
//
// If no slice fits, the first slice is taken as the head anyway, provided the
// fragment starts a line. Otherwise splitting fails and ok is false.
func (f *Fragment) calculateSplitPosition(maxInline dimen.Dimen, startsLine bool) (head, tail *text.Span, ok bool) {
	if f.text == nil {
		return nil, nil, false
	}
	charBreaking := f.Style.WordBreak == frame.WordBreakBreakAll
	retry := !charBreaking && startsLine && f.Style.OverflowWrap == frame.OverflowWrapBreakWord
	for {
		h, t, overflowing := f.splitSlices(maxInline, charBreaking)
		if h.IsEmpty() || overflowing {
			if retry {
				charBreaking, retry = true, false
				continue
			}
			if !startsLine {
				return nil, nil, false
			}
		}
		if !h.IsEmpty() || f.text.requiresLineBreakAfterward {
			head = &h
		}
		return head, t, true
	}
}

func (f *Fragment) splitSlices(maxInline dimen.Dimen, charBreaking bool) (head text.Span, tail *text.Span, overflowing bool) {
	run, span := f.text.run, f.text.span
	remaining := maxInline - f.Margin.InlineStartEnd() - f.BorderPadding.InlineStartEnd()
	var slices []text.Span
	if charBreaking {
		slices = run.CharacterSlices(span)
	} else {
		slices = run.NaturalWordSlices(span)
	}
	head = text.Span{Start: span.Start, End: span.Start}
	for _, s := range slices {
		visible := text.Span{Start: s.Start, End: run.TrailingWhitespace(s, false)}
		if visible.IsEmpty() || run.Advance(visible) <= remaining {
			remaining -= run.Advance(s)
			head.End = s.End
			continue
		}
		if head.IsEmpty() {
			overflowing = true
			head.End = s.End
		}
		if head.End < span.End {
			tail = &text.Span{Start: head.End, End: span.End}
		}
		return head, tail, overflowing
	}
	return head, nil, false
}

// transformWithSplitInfo creates the fragments for a head and a tail span as
// found by calculateSplitPosition. If both are present, the head loses its
// inline-end decorations and the tail loses its inline-start decorations.
func (f *Fragment) transformWithSplitInfo(head, tail *text.Span) (h, t *Fragment) {
	if head != nil {
		h = f.copyFragment()
		h.text.span = *head
		h.text.endIncludingWhitespace = head.End
		h.text.requiresLineBreakAfterward = tail == nil && f.text.requiresLineBreakAfterward
	}
	if tail != nil {
		t = f.copyFragment()
		t.text.span = *tail
		t.text.startIncludingWhitespace = tail.Start
		t.Flags.Clear(frame.SuppressLineBreakBefore)
	}
	if h != nil && t != nil {
		h.Margin.InlineEnd, h.BorderPadding.InlineEnd = 0, 0
		h.Context.clearFlag(frame.LastFragmentOfElement)
		t.Margin.InlineStart, t.BorderPadding.InlineStart = 0, 0
		t.Context.clearFlag(frame.FirstFragmentOfElement)
	}
	if h != nil {
		h.updateBorderBoxSize()
	}
	if t != nil {
		t.updateBorderBoxSize()
	}
	return h, t
}

// TruncateToInlineSize returns a copy of f whose margin box fits into
// maxInline, cut at cluster granularity. Non-text fragments are truncated to
// zero size. The result remembers f as its untruncated original.
func (f *Fragment) TruncateToInlineSize(maxInline dimen.Dimen) *Fragment {
	t := f.copyFragment()
	t.full = f.copyFragment()
	if f.text == nil {
		t.Box = frame.Box{BorderBox: dimen.LogicalRect{Start: f.BorderBox.Start}}
		t.atomic.ContentSize = dimen.LogicalSize{}
		return t
	}
	run := f.text.run
	remaining := maxInline - f.Margin.InlineStartEnd() - f.BorderPadding.InlineStartEnd()
	end := f.text.span.Start
	for _, s := range run.CharacterSlices(f.text.span) {
		adv := run.Advance(s)
		if adv > remaining {
			break
		}
		remaining -= adv
		end = s.End
	}
	t.text.span.End = end
	t.text.endIncludingWhitespace = end
	t.updateBorderBoxSize()
	tracer().Debugf("truncated %v to %v", f, t)
	return t
}

// TransformIntoEllipsis creates a text fragment for an ellipsis string s,
// in the style of f. The ellipsis follows f in the same inline context, taking
// over the inline-end decorations of f. If shaper is nil, a monospace shaper
// for the style's font is used.
func (f *Fragment) TransformIntoEllipsis(s string, shaper text.Shaper) *Fragment {
	if shaper == nil {
		em := f.Style.Font.EmSize
		if em == 0 {
			em = f.Style.Font.Ascent + f.Style.Font.Descent
		}
		shaper = monospace.NewShaper(em, nil)
	}
	run := shaper.Shape(s, f.Style.Font, f.BidiLevel(f.Style.BidiLevel()))
	e := NewTextFragment(f.Node, f.Style, f.Context.Clone(), run, run.Full(),
		f.RequiresLineBreakAfterward())
	e.Flags.Set(frame.IsEllipsis)
	e.Flags.Set(frame.SuppressLineBreakBefore)
	e.Margin = f.Margin
	e.BorderPadding = f.BorderPadding
	e.Margin.InlineStart, e.BorderPadding.InlineStart = 0, 0
	e.Context.clearFlag(frame.FirstFragmentOfElement)
	e.updateBorderBoxSize()
	return e
}

// precedeEllipsis removes the inline-end decorations from a fragment which is
// followed by an ellipsis.
func (f *Fragment) precedeEllipsis() {
	f.Margin.InlineEnd, f.BorderPadding.InlineEnd = 0, 0
	f.Context.clearFlag(frame.LastFragmentOfElement)
	if f.text != nil {
		f.text.requiresLineBreakAfterward = false
	}
	f.updateBorderBoxSize()
}
