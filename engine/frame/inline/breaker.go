package inline

import (
	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/npillmayer/inlay/core"
	"github.com/npillmayer/inlay/core/dimen"
	"github.com/npillmayer/inlay/engine/frame"
	"github.com/npillmayer/inlay/engine/text"
)

// lineBreaker distributes the fragments of a flow onto lines. It is a greedy
// breaker: every fragment is put on the pending line if it fits, otherwise the
// fragment is split, deferred to the next line, or the line is rolled back to
// the last known good break opportunity.
//
// A line breaker is used for a single pass over a flow's fragments.
type lineBreaker struct {
	floats               frame.Floats
	newFragments         []*Fragment            // output fragments
	workList             *doublylinkedlist.List // fragments to process before the input
	input                []*Fragment            // fragments from the previous pass
	next                 int                    // next input fragment
	pendingLine          Line
	lines                []Line        // committed lines
	lastGood             FragmentIndex // last known good break opportunity
	curB                 dimen.Dimen   // block position of the next line
	moved                bool          // pending line has been moved to avoid floats
	firstLineIndentation dimen.Dimen
	minimumMetrics       LineMetrics
	containerInlineSize  dimen.Dimen
	ellipsis             string      // for text-overflow: ellipsis
	shaper               text.Shaper // for shaping ellipses, may be nil
}

// lineFlushMode tells whether a line has to be committed after a fragment.
type lineFlushMode bool

const (
	noFlush lineFlushMode = false
	flush   lineFlushMode = true
)

func newLineBreaker(floats frame.Floats, containerInlineSize, indentation dimen.Dimen,
	minimum LineMetrics) *lineBreaker {
	//
	lb := &lineBreaker{
		floats:               floats,
		workList:             doublylinkedlist.New(),
		lastGood:             noIndex,
		firstLineIndentation: indentation,
		minimumMetrics:       minimum,
		containerInlineSize:  containerInlineSize,
		ellipsis:             DefaultOptions().Ellipsis,
	}
	lb.resetLine()
	return lb
}

// scanForLines breaks fragments into lines. It returns the new fragment
// sequence and the lines referring to it.
func (lb *lineBreaker) scanForLines(fragments []*Fragment) ([]*Fragment, []Line) {
	tracer().Debugf("line breaker: scanning %d fragments, container inline size = %v",
		len(fragments), lb.containerInlineSize)
	lb.input = fragments
	lb.next = 0
	lb.newFragments = make([]*Fragment, 0, len(fragments))
	lb.reflowFragments()
	tracer().Infof("line breaker: %d fragments on %d lines", len(lb.newFragments), len(lb.lines))
	return lb.newFragments, lb.lines
}

func (lb *lineBreaker) reflowFragments() {
	for {
		f := lb.nextUnbrokenFragment()
		if f == nil {
			break
		}
		if f.IsEllipsis() { // synthesized by a previous pass
			continue
		}
		if f.IsTruncated() {
			f = f.Full()
		}
		lb.reflowFragment(f)
	}
	if !lb.pendingLine.IsEmpty() {
		tracer().Debugf("line breaker: committing partially full line %d", len(lb.lines))
		lb.flushCurrentLine()
	}
}

// nextFragment returns the next fragment from the work list or, if it is
// empty, from the input.
func (lb *lineBreaker) nextFragment() *Fragment {
	if !lb.workList.Empty() {
		v, _ := lb.workList.Get(0)
		lb.workList.Remove(0)
		return v.(*Fragment)
	}
	if lb.next < len(lb.input) {
		f := lb.input[lb.next]
		lb.next++
		return f
	}
	return nil
}

// nextUnbrokenFragment returns the next fragment, merged with all following
// fragments it has been split from in a previous pass.
func (lb *lineBreaker) nextUnbrokenFragment() *Fragment {
	result := lb.nextFragment()
	if result == nil {
		return nil
	}
	for {
		candidate := lb.nextFragment()
		if candidate == nil {
			return result
		}
		if !result.canMergeWith(candidate) {
			lb.workList.Prepend(candidate)
			return result
		}
		tracer().Debugf("line breaker: merging %v with %v", result, candidate)
		result.MergeWith(candidate)
	}
}

func (lb *lineBreaker) pendingLineIsEmpty() bool {
	return lb.pendingLine.IsEmpty()
}

// indentationForPendingFragment returns the first line's indentation for the
// first fragment of the first line, and 0 otherwise.
func (lb *lineBreaker) indentationForPendingFragment() dimen.Dimen {
	if lb.pendingLineIsEmpty() && len(lb.lines) == 0 {
		return lb.firstLineIndentation
	}
	return 0
}

func (lb *lineBreaker) resetLine() {
	lb.lastGood = noIndex
	lb.moved = false
	lb.pendingLine = newLine(lb.minimumMetrics)
	lb.pendingLine.Range.Reset(FragmentIndex(len(lb.newFragments)), 0)
}

// initialLinePlacement asks the floats for a place for a line starting with f.
// Splittable fragments are placed by the size of their first word.
func (lb *lineBreaker) initialLinePlacement(f *Fragment, ceiling dimen.Dimen) dimen.LogicalRect {
	inline := f.MarginBoxInlineSize() + lb.indentationForPendingFragment()
	if f.CanSplit() {
		inline = f.MinimumSplittableInlineSize()
	}
	return lb.floats.Place(frame.PlacementInfo{
		Size:          dimen.LogicalSize{Inline: inline, Block: f.BorderBox.Size.Block},
		Ceiling:       ceiling,
		MaxInlineSize: lb.containerInlineSize,
		Side:          frame.LeftFloat,
	})
}

// reflowFragment tries to append f to the pending line, splitting it if
// necessary. Commits the pending line if needed.
func (lb *lineBreaker) reflowFragment(f *Fragment) {
	f.ResetTextRangeAndInlineSize()
	isBreakOpportunity := false
	if lb.pendingLineIsEmpty() {
		f.StripLeadingWhitespaceIfNecessary()
		if !lb.moved { // keep a place found by avoidFloats
			place := lb.initialLinePlacement(f, lb.curB)
			lb.pendingLine.Bounds.Start = place.Start
			lb.pendingLine.GreenZone = place.Size
		}
	} else {
		isBreakOpportunity = f.IsBreakOpportunityBefore()
	}
	tracer().Debugf("line breaker: appending to line %d: %v, green zone %v",
		len(lb.lines), f, lb.pendingLine.GreenZone)
	green := lb.pendingLine.GreenZone
	newBlockSize := lb.pendingLine.newBlockSizeForFragment(f)
	if newBlockSize > green.Block {
		switch lb.avoidFloats(f, newBlockSize) {
		case lineMoved:
			return
		case lineBroken:
			lb.flushCurrentLine()
			return
		}
		green = lb.pendingLine.GreenZone
	}
	if isBreakOpportunity {
		lb.lastGood = lb.pendingLine.Range.End()
	}
	flushMode := noFlush
	if f.Style.WhiteSpace != frame.WhiteSpaceCollapseSpaces && f.RequiresLineBreakAfterward() {
		flushMode = flush
	}
	indentation := lb.indentationForPendingFragment()
	if lb.pendingLine.Bounds.Size.Inline+f.MarginBoxInlineSize()+indentation <= green.Inline {
		tracer().Debugf("line breaker: fragment fits without splitting")
		lb.pushFragmentToLine(f, flushMode)
		return
	}
	if f.Style.TextWrap == frame.Nowrap {
		tracer().Debugf("line breaker: fragment cannot wrap, falling back to last known good break")
		lb.splitLineAtLastKnownGood(f, flushMode)
		return
	}
	available := green.Inline - lb.pendingLine.Bounds.Size.Inline - indentation
	headSpan, tailSpan, ok := f.calculateSplitPosition(available, lb.pendingLineIsEmpty())
	if !ok {
		if isBreakOpportunity {
			tracer().Debugf("line breaker: fragment unsplittable, deferring to next line")
			lb.workList.Prepend(f)
			lb.flushCurrentLine()
		} else {
			lb.splitLineAtLastKnownGood(f, noFlush)
		}
		return
	}
	head, tail := f.transformWithSplitInfo(headSpan, tailSpan)
	switch {
	case head != nil && tail != nil:
		lb.pushFragmentToLine(head, flush)
		lb.workList.Prepend(tail)
	case head != nil:
		lb.pushFragmentToLine(head, flushMode)
	case tail != nil:
		if lb.pendingLineIsEmpty() {
			lb.pushFragmentToLine(tail, flushMode)
			return
		}
		lb.flushCurrentLine()
		lb.workList.Prepend(tail)
	default:
		lb.pushFragmentToLine(f, flushMode)
	}
}

type floatAvoidance uint8

const (
	lineMoved  floatAvoidance = iota // pending line has a new place, retry the fragment
	lineBroken                       // fragment has been deferred, commit the pending line
	lineKept                         // no better place, keep the line where it is
)

// avoidFloats is called if adding f would make the pending line collide with a
// float in block direction. It tries to move the pending line to a place
// which admits the pending content plus f. Otherwise f is deferred to the next
// line. The first fragment of a line is never deferred; if there is no better
// place for it, the line stays and overflows.
func (lb *lineBreaker) avoidFloats(f *Fragment, newBlockSize dimen.Dimen) floatAvoidance {
	tracer().Debugf("line breaker: fragment collides with floats in block direction")
	inline := f.MarginBoxInlineSize()
	if lb.pendingLineIsEmpty() && f.CanSplit() {
		inline = f.MinimumSplittableInlineSize()
	}
	size := dimen.LogicalSize{
		Inline: lb.pendingLine.Bounds.Size.Inline + inline + lb.indentationForPendingFragment(),
		Block:  newBlockSize,
	}
	place := lb.floats.Place(frame.PlacementInfo{
		Size:          size,
		Ceiling:       lb.pendingLine.Bounds.Start.B,
		MaxInlineSize: lb.containerInlineSize,
		Side:          frame.LeftFloat,
	})
	fits := place.Size.Inline >= size.Inline && place.Size.Block >= size.Block
	if fits || (lb.pendingLineIsEmpty() && place.Start.B > lb.pendingLine.Bounds.Start.B) {
		lb.moveLine(place)
		lb.workList.Prepend(f)
		return lineMoved
	}
	if lb.pendingLineIsEmpty() {
		tracer().Debugf("line breaker: no place without collision for first fragment of line")
		return lineKept
	}
	tracer().Debugf("line breaker: breaking line to avoid floats")
	lb.workList.Prepend(f)
	return lineBroken
}

// moveLine moves the pending line to a new place. An empty line which has
// been moved before has to advance in block direction, otherwise line breaking
// would not terminate.
func (lb *lineBreaker) moveLine(place dimen.LogicalRect) {
	if lb.moved && lb.pendingLineIsEmpty() && place.Start.B <= lb.pendingLine.Bounds.Start.B {
		panic(core.Error(core.EINTERNAL, "non-terminating line breaking at line %d, b=%v",
			len(lb.lines), place.Start.B))
	}
	tracer().Debugf("line breaker: moving line to %v", place)
	lb.pendingLine.Bounds.Start = place.Start
	lb.pendingLine.GreenZone = place.Size
	lb.moved = true
}

// splitLineAtLastKnownGood rolls the pending line back to the last known good
// break opportunity and commits it. f and the fragments rolled back are
// deferred to the next line. Without a known break opportunity, f is put on
// the line anyway and will overflow.
func (lb *lineBreaker) splitLineAtLastKnownGood(f *Fragment, flushMode lineFlushMode) {
	if lb.lastGood == noIndex {
		tracer().Debugf("line breaker: no break opportunity on line %d, overflowing", len(lb.lines))
		lb.pushFragmentToLine(f, flushMode)
		return
	}
	lb.workList.Prepend(f)
	for i := lb.pendingLine.Range.End() - 1; i >= lb.lastGood; i-- {
		last := lb.newFragments[len(lb.newFragments)-1]
		lb.newFragments = lb.newFragments[:len(lb.newFragments)-1]
		lb.workList.Prepend(last)
	}
	lb.pendingLine.Range.ExtendTo(lb.lastGood)
	lb.recomputePendingExtent()
	lb.flushCurrentLine()
}

// recomputePendingExtent sets size and metrics of the pending line from its
// fragments.
func (lb *lineBreaker) recomputePendingExtent() {
	l := &lb.pendingLine
	l.Bounds.Size = dimen.LogicalSize{}
	l.Metrics = l.MinimumMetrics
	first := true
	l.Range.Each(func(i FragmentIndex) {
		f := lb.newFragments[i]
		if first && len(lb.lines) == 0 && !f.IsInlineAbsolute() && !f.IsHypothetical() {
			l.Bounds.Size.Inline += lb.firstLineIndentation
		}
		first = false
		lb.extendPendingLine(f)
	})
}

// pushFragmentToLine appends f to the pending line, truncating it if required
// by `text-overflow`.
func (lb *lineBreaker) pushFragmentToLine(f *Fragment, flushMode lineFlushMode) {
	indentation := lb.indentationForPendingFragment()
	if lb.pendingLineIsEmpty() {
		lb.pendingLine.Range.Reset(FragmentIndex(len(lb.newFragments)), 0)
	}
	available := lb.pendingLine.GreenZone.Inline - lb.pendingLine.Bounds.Size.Inline - indentation
	if s, ok := lb.ellipsisFor(f, available); ok {
		ellipsis := f.TransformIntoEllipsis(s, lb.shaper)
		truncated := f.TruncateToInlineSize(dimen.Max(0, available-ellipsis.MarginBoxInlineSize()))
		truncated.precedeEllipsis()
		tracer().Debugf("line breaker: truncating %v with ellipsis %q", f, s)
		lb.pushFragmentToLineIgnoringTextOverflow(truncated)
		lb.pushFragmentToLineIgnoringTextOverflow(ellipsis)
	} else {
		lb.pushFragmentToLineIgnoringTextOverflow(f)
	}
	if flushMode == flush {
		lb.flushCurrentLine()
	}
}

// ellipsisFor returns the string to replace overflowing content of f with, if
// f overflows and its style requests it.
func (lb *lineBreaker) ellipsisFor(f *Fragment, available dimen.Dimen) (string, bool) {
	if f.Style.TextOverflow.Kind == frame.TextOverflowClip || f.Style.OverflowX == frame.OverflowVisible {
		return "", false
	}
	if f.IsEllipsis() || f.MarginBoxInlineSize() <= available {
		return "", false
	}
	if f.Style.TextOverflow.Kind == frame.TextOverflowString {
		return f.Style.TextOverflow.Custom, true
	}
	return lb.ellipsis, true
}

func (lb *lineBreaker) pushFragmentToLineIgnoringTextOverflow(f *Fragment) {
	indentation := lb.indentationForPendingFragment()
	lb.pendingLine.Range.ExtendBy(1)
	if !f.IsInlineAbsolute() && !f.IsHypothetical() {
		lb.pendingLine.Bounds.Size.Inline += indentation
	}
	lb.extendPendingLine(f)
	lb.newFragments = append(lb.newFragments, f)
}

// extendPendingLine adds the size of f to the pending line. Placeholders take
// up no space.
func (lb *lineBreaker) extendPendingLine(f *Fragment) {
	if f.IsInlineAbsolute() || f.IsHypothetical() {
		return
	}
	l := &lb.pendingLine
	l.Bounds.Size.Inline += f.MarginBoxInlineSize()
	blockSize := l.newBlockSizeForFragment(f)
	l.Metrics = l.newMetricsForFragment(f)
	l.Bounds.Size.Block = blockSize
}

// flushCurrentLine commits the pending line. Empty lines are dropped.
func (lb *lineBreaker) flushCurrentLine() {
	if lb.pendingLineIsEmpty() {
		lb.resetLine()
		return
	}
	lb.stripTrailingWhitespaceFromPendingLine()
	l := lb.pendingLine
	if l.Bounds.Size.Inline > l.GreenZone.Inline || l.Bounds.Size.Block > l.GreenZone.Block {
		tracer().Infof("line breaker: line %d overflows: %v > %v", len(lb.lines),
			l.Bounds.Size, l.GreenZone)
	}
	tracer().Debugf("line breaker: flushing %v", l)
	lb.lines = append(lb.lines, l)
	lb.curB = l.Bounds.BlockEnd()
	lb.resetLine()
}

func (lb *lineBreaker) stripTrailingWhitespaceFromPendingLine() {
	last := lb.newFragments[lb.pendingLine.Range.End()-1]
	lb.pendingLine.Bounds.Size.Inline -= last.StripTrailingWhitespaceIfNecessary()
}
