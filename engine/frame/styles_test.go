package frame

import (
	"testing"

	"github.com/npillmayer/inlay/core/dimen"
	"github.com/npillmayer/inlay/engine/text"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/unicode/bidi"
)

func TestStyleSetIsStyledStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.frame")
	defer teardown()
	//
	s1 := InitialStyle(text.EmMetrics(10 * dimen.BP))
	s2 := s1.Clone()
	assert.True(t, s1.Equals(s1))
	assert.False(t, s1.Equals(s2), "clones are different style sets")
	assert.Equal(t, *s1, *s2)
	assert.Equal(t, uint8(0), s1.BidiLevel())
	s2.Direction = bidi.RightToLeft
	assert.Equal(t, uint8(1), s2.BidiLevel())
}

func TestLineHeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.frame")
	defer teardown()
	//
	fm := text.EmMetrics(10 * dimen.BP)
	fm.LineGap = 2 * dimen.BP
	assert.Equal(t, 12*dimen.BP, LineHeight{}.Resolve(fm))
	assert.Equal(t, 15*dimen.BP, LineHeightFactor(1.5).Resolve(fm))
	assert.Equal(t, 20*dimen.BP, LineHeightOf(20*dimen.BP).Resolve(fm))
}

func TestTextAlignLogical(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.frame")
	defer teardown()
	//
	assert.Equal(t, TextAlignStart, TextAlignLeft.Logical(false))
	assert.Equal(t, TextAlignEnd, TextAlignLeft.Logical(true))
	assert.Equal(t, TextAlignEnd, TextAlignRight.Logical(false))
	assert.Equal(t, TextAlignStart, TextAlignRight.Logical(true))
	assert.Equal(t, TextAlignCenter, TextAlignCenter.Logical(true))
}

func TestWhiteSpaceCollapse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.frame")
	defer teardown()
	//
	assert.True(t, WhiteSpaceCollapseSpaces.CollapsesSpaces())
	assert.True(t, WhiteSpacePreserveBreaks.CollapsesSpaces())
	assert.False(t, WhiteSpacePreserve.CollapsesSpaces())
	assert.False(t, WhiteSpaceBreakSpaces.CollapsesSpaces())
	assert.False(t, WhiteSpaceCollapseSpaces.PreservesNewlines())
	assert.True(t, WhiteSpacePreserveBreaks.PreservesNewlines())
}
