package inline

import (
	"testing"

	"github.com/npillmayer/inlay/core/dimen"
	"github.com/npillmayer/inlay/engine/frame"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestIntrinsicInlineSizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.inline")
	defer teardown()
	//
	style := testStyle()
	flow := newTestFlow(textFragments(1, style, nil, "the quick brown", 0), style)
	assert.Equal(t, IntrinsicISizes{MinimumInlineSize: 50 * bp, PreferredInlineSize: 150 * bp},
		flow.BubbleInlineSizes())
	//
	pre := testStyle()
	pre.WhiteSpace = frame.WhiteSpacePreserve
	pre.TextWrap = frame.Nowrap
	flow = newTestFlow(textFragments(1, pre, nil, "ab\ncdef", 0), pre)
	assert.Equal(t, IntrinsicISizes{MinimumInlineSize: 40 * bp, PreferredInlineSize: 40 * bp},
		flow.BubbleInlineSizes())
	//
	flow = newTestFlow(textFragments(1, style, paddedSpan(10), "ab cd", 0), style)
	assert.Equal(t, IntrinsicISizes{MinimumInlineSize: 30 * bp, PreferredInlineSize: 60 * bp},
		flow.BubbleInlineSizes())
	//
	nowrap := testStyle()
	nowrap.TextWrap = frame.Nowrap
	flow = newTestFlow(textFragments(1, nowrap, nil, "ab cd", 0), nowrap)
	assert.Equal(t, IntrinsicISizes{MinimumInlineSize: 50 * bp, PreferredInlineSize: 50 * bp},
		flow.BubbleInlineSizes())
}

func TestIntrinsicSizesIgnoreLayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.inline")
	defer teardown()
	//
	style := testStyle()
	flow := newTestFlow(textFragments(1, style, nil, quickBrownFox, 0), style)
	before := flow.BubbleInlineSizes()
	layout(flow, 100*bp)
	assert.Equal(t, before, flow.BubbleInlineSizes(), "split fragments should add up to the original")
}

func TestContainingBlockOfInlineElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.inline")
	defer teardown()
	//
	style := testStyle()
	rel := testStyle()
	rel.Position = frame.PositionRelative
	abs := testStyle()
	abs.Position = frame.PositionAbsolute
	ctx := NewInlineContext(InlineNode{Node: 10, Style: rel})
	var fragments []*Fragment
	fragments = append(fragments, textFragments(1, style, nil, "aa ", 0)...)
	fragments = append(fragments, textFragments(2, style, ctx, "bb", 0)...)
	fragments = append(fragments, NewPlaceholderFragment(HypotheticalFragment, 3, abs, ctx.Clone()))
	fragments = append(fragments, textFragments(4, style, ctx, "dd ", 0)...)
	fragments = append(fragments, textFragments(5, style, nil, "ee", 0)...)
	flow := layout(newTestFlow(fragments, style), 500*bp)
	r, ok := flow.ContainingBlockRangeFor(3)
	assert.True(t, ok)
	assert.Equal(t, Range(1, 3), r)
	assert.Equal(t, dimen.LogicalSize{Inline: 50 * bp, Block: 10 * bp}, flow.GeneratedContainingBlockSize(3))
	_, ok = flow.ContainingBlockRangeFor(99)
	assert.False(t, ok)
	assert.Equal(t, dimen.LogicalSize{}, flow.GeneratedContainingBlockSize(99))
	assert.Equal(t, Range(1, 3), flow.ContainingBlockRange(2))
}

func TestBaselineOfLastLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.inline")
	defer teardown()
	//
	style := testStyle()
	flow := layout(newTestFlow(textFragments(1, style, nil, quickBrownFox, 0), style), 100*bp)
	b, ok := flow.BaselineOffsetOfLastLine()
	assert.True(t, ok)
	assert.Equal(t, 48*bp, b)
	//
	placeholders := []*Fragment{NewPlaceholderFragment(HypotheticalFragment, 1, style, nil)}
	flow = layout(newTestFlow(placeholders, style), 100*bp)
	_, ok = flow.BaselineOffsetOfLastLine()
	assert.False(t, ok)
	assert.Equal(t, dimenZero, flow.Position.Size.Block)
}
