package inline

import (
	"testing"

	"github.com/npillmayer/inlay/core/dimen"
	"github.com/npillmayer/inlay/engine/frame"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

const quickBrownFox = "the quick brown fox jumps over the lazy dog"

func TestBreakTwoWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.inline")
	defer teardown()
	//
	style := testStyle()
	fragments := textFragments(1, style, nil, "Hello ", 0)
	fragments = append(fragments, textFragments(2, style, nil, "World", 0)...)
	flow := layout(newTestFlow(fragments, style), 80*bp)
	assert.Equal(t, []string{"Hello", "World"}, lineTexts(flow))
	assert.Equal(t, 50*bp, flow.Lines[0].Bounds.Size.Inline, "trailing space should be stripped")
	assert.Equal(t, 10*bp, flow.Lines[1].Bounds.Start.B)
	assert.Equal(t, "Hello World", originalText(flow.Fragments))
	assertPartition(t, flow)
}

func TestBreakLongText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.inline")
	defer teardown()
	//
	style := testStyle()
	flow := layout(newTestFlow(textFragments(1, style, nil, quickBrownFox, 0), style), 100*bp)
	assert.Equal(t, []string{"the quick", "brown fox", "jumps over", "the lazy", "dog"}, lineTexts(flow))
	assert.Equal(t, quickBrownFox, originalText(flow.Fragments))
	assertPartition(t, flow)
	for i, line := range flow.Lines {
		assert.LessOrEqual(t, int64(line.Bounds.Size.Inline), int64(line.GreenZone.Inline), "line %d", i)
		assert.LessOrEqual(t, int64(line.Bounds.Size.Block), int64(line.GreenZone.Block), "line %d", i)
		assert.Equal(t, dimen.Dimen(i)*10*bp, line.Bounds.Start.B, "line %d", i)
	}
	assert.Equal(t, 50*bp, flow.Position.Size.Block)
}

type fragmentSnapshot struct {
	text string
	box  dimen.LogicalRect
}

func snapshot(flow *Flow) ([]Line, []fragmentSnapshot) {
	lines := make([]Line, len(flow.Lines))
	copy(lines, flow.Lines)
	var frags []fragmentSnapshot
	for _, f := range flow.Fragments {
		frags = append(frags, fragmentSnapshot{text: f.Text(), box: f.BorderBox})
	}
	return lines, frags
}

func TestRelayoutIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.inline")
	defer teardown()
	//
	style := testStyle()
	style.TextAlign = frame.TextAlignJustify
	flow := layout(newTestFlow(textFragments(1, style, nil, quickBrownFox, 0), style), 100*bp)
	lines1, frags1 := snapshot(flow)
	flow.AssignBlockSize()
	lines2, frags2 := snapshot(flow)
	assert.Equal(t, lines1, lines2)
	assert.Equal(t, frags1, frags2)
	layout(flow, 100*bp)
	lines3, frags3 := snapshot(flow)
	assert.Equal(t, lines1, lines3)
	assert.Equal(t, frags1, frags3)
}

func TestRelayoutWithDifferentWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.inline")
	defer teardown()
	//
	style := testStyle()
	flow := layout(newTestFlow(textFragments(1, style, nil, quickBrownFox, 0), style), 100*bp)
	assert.Equal(t, 5, len(flow.Lines))
	layout(flow, 1000*bp)
	assert.Equal(t, []string{quickBrownFox}, lineTexts(flow))
	assert.Equal(t, 1, len(flow.Fragments), "split fragments should have been merged")
	layout(flow, 200*bp)
	assert.Equal(t, []string{"the quick brown fox", "jumps over the lazy", "dog"}, lineTexts(flow))
	assert.Equal(t, quickBrownFox, originalText(flow.Fragments))
}

func TestUnsplittableFragmentOverflows(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.inline")
	defer teardown()
	//
	style := testStyle()
	flow := layout(newTestFlow([]*Fragment{replacedBox(1, 150*bp, 20*bp)}, style), 100*bp)
	assert.Equal(t, 1, len(flow.Lines))
	line := flow.Lines[0]
	assert.Equal(t, 150*bp, line.Bounds.Size.Inline)
	assert.Greater(t, int64(line.Bounds.Size.Inline), int64(line.GreenZone.Inline))
	//
	flow = layout(newTestFlow(textFragments(1, style, nil, "supercalifragilistic", 0), style), 100*bp)
	assert.Equal(t, []string{"supercalifragilistic"}, lineTexts(flow))
	assert.Greater(t, int64(flow.Lines[0].Bounds.Size.Inline), int64(flow.Lines[0].GreenZone.Inline))
}

func TestBreakWordWhenOverflowing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.inline")
	defer teardown()
	//
	style := testStyle()
	style.OverflowWrap = frame.OverflowWrapBreakWord
	flow := layout(newTestFlow(textFragments(1, style, nil, "abcdefghijkl", 0), style), 50*bp)
	assert.Equal(t, []string{"abcde", "fghij", "kl"}, lineTexts(flow))
	//
	style = testStyle()
	style.WordBreak = frame.WordBreakBreakAll
	flow = layout(newTestFlow(textFragments(1, style, nil, "ab cdefgh", 0), style), 50*bp)
	assert.Equal(t, []string{"ab cd", "efgh"}, lineTexts(flow))
}

func TestPreservedNewlinesBreakLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.inline")
	defer teardown()
	//
	style := testStyle()
	style.WhiteSpace = frame.WhiteSpacePreserve
	fragments := textFragments(1, style, nil, "ab\ncd", 0)
	assert.Equal(t, 2, len(fragments))
	flow := layout(newTestFlow(fragments, style), 500*bp)
	assert.Equal(t, 2, len(flow.Lines))
	assert.Equal(t, "ab\ncd", originalText(flow.Fragments))
	assert.Equal(t, 10*bp, flow.Lines[1].Bounds.Start.B)
}

func TestRollbackToLastKnownGoodBreak(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.inline")
	defer teardown()
	//
	style := testStyle()
	nowrap := testStyle()
	nowrap.TextWrap = frame.Nowrap
	fragments := textFragments(1, style, nil, "aa ", 0)
	fragments = append(fragments, textFragments(2, style, nil, "bb", 0)...)
	fragments = append(fragments, textFragments(3, nowrap, nil, "cc", 0)...)
	flow := layout(newTestFlow(fragments, style), 60*bp)
	assert.Equal(t, []string{"aa", "bbcc"}, lineTexts(flow))
	assert.Equal(t, 20*bp, flow.Lines[0].Bounds.Size.Inline)
	assert.Equal(t, 40*bp, flow.Lines[1].Bounds.Size.Inline)
	assertPartition(t, flow)
}

func TestFirstLineIndentation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.inline")
	defer teardown()
	//
	style := testStyle()
	style.TextIndent = frame.Abs(20 * bp)
	flow := layout(newTestFlow(textFragments(1, style, nil, quickBrownFox, 0), style), 100*bp)
	assert.Equal(t, "the", lineTexts(flow)[0])
	assert.Equal(t, 50*bp, flow.Lines[0].Bounds.Size.Inline)
	assert.Equal(t, 20*bp, flow.Fragments[0].BorderBox.Start.I)
	assert.Equal(t, dimen.Dimen(0), flow.Fragments[1].BorderBox.Start.I)
}

func TestLineMovesBelowFloat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.inline")
	defer teardown()
	//
	style := testStyle()
	fragments := textFragments(1, style, nil, "aaa", 0)
	fragments = append(fragments, replacedBox(2, 40*bp, 20*bp))
	flow := newTestFlow(fragments, style)
	flow.Floats = flow.Floats.Add(frame.Float{Bounds: dimen.LRect(0, 15*bp, 150*bp, 30*bp)})
	layout(flow, 200*bp)
	assert.Equal(t, 1, len(flow.Lines))
	line := flow.Lines[0]
	assert.Equal(t, dimen.LogicalPoint{I: 0, B: 45 * bp}, line.Bounds.Start)
	assert.Equal(t, dimen.LogicalSize{Inline: 70 * bp, Block: 22 * bp}, line.Bounds.Size)
	assert.Equal(t, 200*bp, line.GreenZone.Inline)
	assert.Equal(t, 57*bp, flow.Fragments[0].BorderBox.Start.B)
	assert.Equal(t, 45*bp, flow.Fragments[1].BorderBox.Start.B)
	assert.Equal(t, 30*bp, flow.Fragments[1].BorderBox.Start.I)
}

func TestLineBreaksToAvoidFloat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.inline")
	defer teardown()
	//
	style := testStyle()
	fragments := textFragments(1, style, nil, "aaaaaaa", 0)
	fragments = append(fragments, replacedBox(2, 40*bp, 20*bp))
	flow := newTestFlow(fragments, style)
	flow.Floats = flow.Floats.Add(frame.Float{Bounds: dimen.LRect(0, 15*bp, 60*bp, 30*bp)})
	layout(flow, 100*bp)
	assert.Equal(t, 2, len(flow.Lines))
	assert.Equal(t, dimen.LRect(0, 0, 70*bp, 10*bp), flow.Lines[0].Bounds)
	assert.Equal(t, dimen.LogicalSize{Inline: 100 * bp, Block: 15 * bp}, flow.Lines[0].GreenZone)
	assert.Equal(t, dimen.LRect(60*bp, 10*bp, 40*bp, 22*bp), flow.Lines[1].Bounds)
	box := flow.Fragments[1]
	assert.Equal(t, dimen.LogicalPoint{I: 60 * bp, B: 10 * bp}, box.BorderBox.Start)
	assert.Equal(t, 32*bp, flow.Position.Size.Block)
	assert.Equal(t, dimen.LRect(0, -17*bp, 60*bp, 30*bp), flow.FloatsOut.Floats()[0].Bounds)
	for i, line := range flow.Lines {
		assert.LessOrEqual(t, int64(line.Bounds.Size.Inline), int64(line.GreenZone.Inline), "line %d", i)
		assert.LessOrEqual(t, int64(line.Bounds.Size.Block), int64(line.GreenZone.Block), "line %d", i)
	}
}

func TestEmptyLineMovesBesideFloat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.inline")
	defer teardown()
	//
	style := testStyle()
	flow := newTestFlow([]*Fragment{replacedBox(1, 40*bp, 20*bp)}, style)
	flow.Floats = flow.Floats.Add(frame.Float{Bounds: dimen.LRect(0, 21*bp, 150*bp, 30*bp)})
	layout(flow, 200*bp)
	assert.Equal(t, 1, len(flow.Lines))
	assert.Equal(t, dimen.LRect(150*bp, 0, 40*bp, 22*bp), flow.Lines[0].Bounds)
	assert.Equal(t, 50*bp, flow.Lines[0].GreenZone.Inline)
	assert.Equal(t, dimen.LogicalPoint{I: 150 * bp, B: 0}, flow.Fragments[0].BorderBox.Start)
	assert.Equal(t, 22*bp, flow.Position.Size.Block)
}

func TestMovingEmptyLineMustAdvance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.inline")
	defer teardown()
	//
	lb := newLineBreaker(frame.Floats{}, 200*bp, 0, LineMetrics{})
	box := replacedBox(1, 40*bp, 20*bp)
	assert.Equal(t, lineMoved, lb.avoidFloats(box, 20*bp))
	assert.True(t, lb.moved)
	// a second move to the same block position would loop forever
	assert.Panics(t, func() { lb.avoidFloats(box, 20*bp) })
	lb.resetLine()
	assert.False(t, lb.moved)
	assert.NotPanics(t, func() { lb.avoidFloats(box, 20*bp) })
}

func alignedBox(node NodeID, block dimen.Dimen, kw frame.VerticalAlignKeyword) *Fragment {
	style := testStyle()
	style.VerticalAlign = frame.VAlign(kw)
	return NewAtomicFragment(ReplacedFragment, node, style, nil, AtomicInfo{
		ContentSize: dimen.LogicalSize{Inline: 40 * bp, Block: block},
	})
}

func TestTopAndBottomAlignedBoxes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.inline")
	defer teardown()
	//
	style := testStyle()
	fragments := textFragments(1, style, nil, "aaa", 0)
	fragments = append(fragments, alignedBox(2, 40*bp, frame.VAlignTop))
	fragments = append(fragments, alignedBox(3, 30*bp, frame.VAlignBottom))
	flow := layout(newTestFlow(fragments, style), 200*bp)
	assert.Equal(t, 1, len(flow.Lines))
	line := flow.Lines[0]
	assert.Equal(t, dimen.LRect(0, 0, 110*bp, 40*bp), line.Bounds)
	assert.Equal(t, 8*bp, line.Metrics.SpaceAboveBaseline, "top/bottom boxes keep the metrics")
	top, bottom := flow.Fragments[1], flow.Fragments[2]
	assert.Equal(t, line.Bounds.Start.B, top.BorderBox.Start.B)
	assert.Equal(t, line.Bounds.BlockEnd(), bottom.BorderBox.Start.B+bottom.BorderBox.Size.Block)
	assert.Equal(t, 10*bp, bottom.BorderBox.Start.B)
	assert.Equal(t, 30*bp, top.BorderBox.Start.I)
	assert.Equal(t, 70*bp, bottom.BorderBox.Start.I)
	assert.Equal(t, dimen.Dimen(0), flow.Fragments[0].BorderBox.Start.B)
}

func ellipsisStyle() *frame.StyleSet {
	style := testStyle()
	style.TextWrap = frame.Nowrap
	style.TextOverflow = frame.TextOverflow{Kind: frame.TextOverflowEllipsis}
	style.OverflowX = frame.OverflowHidden
	return style
}

func TestTextOverflowEllipsis(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.inline")
	defer teardown()
	//
	style := ellipsisStyle()
	flow := layout(newTestFlow(textFragments(1, style, nil, "abcdefghij", 0), style), 60*bp)
	assert.Equal(t, 2, len(flow.Fragments))
	truncated, ellipsis := flow.Fragments[0], flow.Fragments[1]
	assert.True(t, truncated.IsTruncated())
	assert.Equal(t, "abcde", truncated.Text())
	assert.Equal(t, "abcdefghij", truncated.Full().Text())
	assert.True(t, ellipsis.IsEllipsis())
	assert.Equal(t, "…", ellipsis.Text())
	assert.LessOrEqual(t, int64(truncated.MarginBoxInlineSize()+ellipsis.MarginBoxInlineSize()), int64(60*bp))
	assert.Equal(t, "abcdefghij", originalText(flow.Fragments))
	// wider container => original text is laid out again
	layout(flow, 200*bp)
	assert.Equal(t, 1, len(flow.Fragments))
	assert.False(t, flow.Fragments[0].IsTruncated())
	assert.Equal(t, []string{"abcdefghij"}, lineTexts(flow))
}

func TestTextOverflowCustomString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.inline")
	defer teardown()
	//
	style := ellipsisStyle()
	style.TextOverflow = frame.TextOverflow{Kind: frame.TextOverflowString, Custom: ">>"}
	flow := layout(newTestFlow(textFragments(1, style, nil, "abcdefghij", 0), style), 60*bp)
	assert.Equal(t, []string{"abcd>>"}, lineTexts(flow))
	// visible overflow never truncates
	style.OverflowX = frame.OverflowVisible
	flow = layout(newTestFlow(textFragments(1, style, nil, "abcdefghij", 0), style), 60*bp)
	assert.Equal(t, []string{"abcdefghij"}, lineTexts(flow))
}

func TestEllipsisWithMonospaceShaper(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.inline")
	defer teardown()
	//
	style := ellipsisStyle()
	flow := newTestFlow(textFragments(1, style, nil, "abcdefghij", 0), style)
	flow.Shaper = nil
	layout(flow, 60*bp)
	assert.Equal(t, 2, len(flow.Fragments))
	assert.Equal(t, "…", flow.Fragments[1].Text())
	assert.LessOrEqual(t, int64(flow.Lines[0].Bounds.Size.Inline), int64(60*bp))
}
