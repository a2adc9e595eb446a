package text

import (
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/inlay/core/dimen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// fixedRun creates a run with every rune advancing 10bp, breaking after spaces.
func fixedRun(s string) *Run {
	var clusters []Cluster
	for i, r := range s {
		c := Cluster{Offset: i, Length: utf8.RuneLen(r), Advance: 10 * dimen.BP}
		if r == ' ' {
			c.Flags.Set(Whitespace)
			c.Flags.Set(WordSeparator)
		}
		clusters = append(clusters, c)
	}
	for i := range clusters {
		if clusters[i].Flags.Contains(Whitespace) &&
			(i+1 == len(clusters) || !clusters[i+1].Flags.Contains(Whitespace)) {
			clusters[i].Flags.Set(BreakAfter)
		}
	}
	return NewRun(s, clusters, EmMetrics(10*dimen.BP), 0)
}

func TestRunAdvance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.text")
	defer teardown()
	//
	r := fixedRun("Hello World")
	assert.Equal(t, 11, r.Len())
	assert.Equal(t, 110*dimen.BP, r.Advance(r.Full()))
	assert.Equal(t, "World", r.TextOf(Span{6, 11}))
	assert.Equal(t, 1, r.WordSeparatorCount(r.Full()))
	assert.True(t, r.CanBreakAfter(5))
	assert.True(t, r.CanBreakBefore(6))
	assert.False(t, r.CanBreakBefore(7))
}

func TestNaturalWordSlices(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.text")
	defer teardown()
	//
	r := fixedRun("a bb  ccc")
	slices := r.NaturalWordSlices(r.Full())
	assert.Equal(t, []Span{{0, 2}, {2, 6}, {6, 9}}, slices)
	assert.Equal(t, 10*dimen.BP, r.MinimumSplittableInlineSize(r.Full()))
	assert.Equal(t, 30*dimen.BP, r.MinContentInlineSize(r.Full()))
	assert.Equal(t, 4, r.TrailingWhitespace(Span{2, 6}, false))
	assert.Equal(t, 6, r.LeadingWhitespace(Span{4, 9}, false))
}

func TestJustifiedRunVersion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.text")
	defer teardown()
	//
	r := fixedRun("a b c d")
	j := r.Justified(5, 2, 0)
	assert.True(t, j.SameSource(r))
	assert.True(t, r.SameSource(j))
	assert.Equal(t, r, j.Source())
	// three separators: +6, +6, +5
	assert.Equal(t, 70*dimen.BP+17, j.Advance(j.Full()))
	assert.Equal(t, 70*dimen.BP, r.Advance(r.Full()), "source run must not change")
	// a span starting after the first separator sees only the second bonus point
	assert.Equal(t, 50*dimen.BP+11, j.Advance(Span{2, 7}))
}

func TestFontMetricsFromFace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.text")
	defer teardown()
	//
	m := xfont.Metrics{
		Height:  fixed.I(14),
		Ascent:  fixed.I(9),
		Descent: fixed.I(3),
		XHeight: fixed.I(5),
	}
	fm := FontMetricsFromFace(m)
	assert.Equal(t, 9*dimen.BP, fm.Ascent)
	assert.Equal(t, 3*dimen.BP, fm.Descent)
	assert.Equal(t, 2*dimen.BP, fm.LineGap)
	assert.Equal(t, 14*dimen.BP, fm.Height())
}

func TestCharacterSlicesAndNewlines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.text")
	defer teardown()
	//
	r := fixedRun("ab c")
	assert.Equal(t, []Span{{1, 2}, {2, 3}, {3, 4}}, r.CharacterSlices(Span{1, 4}))
	assert.Empty(t, r.CharacterSlices(Span{2, 2}))
	//
	clusters := []Cluster{
		{Offset: 0, Length: 1, Advance: 10 * dimen.BP},
		{Offset: 1, Length: 1, Flags: Whitespace | MandatoryBreak},
	}
	n := NewRun("a\n", clusters, EmMetrics(10*dimen.BP), 0)
	assert.True(t, n.MustBreakAfter(1))
	assert.True(t, n.CanBreakAfter(1))
	assert.Equal(t, 1, n.TrailingWhitespace(n.Full(), false))
	assert.Equal(t, 2, n.TrailingWhitespace(n.Full(), true), "newline should be kept")
}
