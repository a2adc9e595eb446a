package inline

import (
	"fmt"

	"github.com/npillmayer/inlay/core/dimen"
	"github.com/npillmayer/inlay/engine/frame"
	"github.com/npillmayer/inlay/engine/text"
)

// IntrinsicISizes are the intrinsic inline sizes of a box or a flow.
type IntrinsicISizes struct {
	MinimumInlineSize   dimen.Dimen // min-content
	PreferredInlineSize dimen.Dimen // max-content
}

func (is IntrinsicISizes) String() string {
	return fmt.Sprintf("isizes{min=%v,pref=%v}", is.MinimumInlineSize, is.PreferredInlineSize)
}

// intrinsicISizesContribution accumulates intrinsic inline sizes of content,
// plus the decorations surrounding it.
type intrinsicISizesContribution struct {
	content     IntrinsicISizes
	surrounding dimen.Dimen
}

// unionInline adds sizes of content following on the same line, where a line
// may break in between.
func (c *intrinsicISizesContribution) unionInline(sizes IntrinsicISizes) {
	c.content.MinimumInlineSize = dimen.Max(c.content.MinimumInlineSize, sizes.MinimumInlineSize)
	c.content.PreferredInlineSize += sizes.PreferredInlineSize
}

// unionNonbreakingInline adds sizes of content following on the same line,
// where no line break may occur in between.
func (c *intrinsicISizesContribution) unionNonbreakingInline(sizes IntrinsicISizes) {
	c.content.MinimumInlineSize += sizes.MinimumInlineSize
	c.content.PreferredInlineSize += sizes.PreferredInlineSize
}

// unionBlock adds sizes of content stacked in block direction.
func (c *intrinsicISizesContribution) unionBlock(sizes IntrinsicISizes) {
	c.content.MinimumInlineSize = dimen.Max(c.content.MinimumInlineSize, sizes.MinimumInlineSize)
	c.content.PreferredInlineSize = dimen.Max(c.content.PreferredInlineSize, sizes.PreferredInlineSize)
}

func (c intrinsicISizesContribution) finish() IntrinsicISizes {
	return IntrinsicISizes{
		MinimumInlineSize:   c.content.MinimumInlineSize + c.surrounding,
		PreferredInlineSize: c.content.PreferredInlineSize + c.surrounding,
	}
}

// intrinsicInlineSizes computes the intrinsic contribution of a single
// fragment. Percentages of decorations are resolved against 0.
func (f *Fragment) intrinsicInlineSizes() intrinsicISizesContribution {
	margin, bp := f.inlineDecorations(0)
	c := intrinsicISizesContribution{
		surrounding: margin.InlineStartEnd() + bp.InlineStartEnd(),
	}
	switch f.Kind {
	case TextFragment:
		run := f.text.run.Source()
		span := text.Span{Start: f.text.startIncludingWhitespace, End: f.text.endIncludingWhitespace}
		c.content.PreferredInlineSize = run.Advance(span)
		if f.Style.TextWrap == frame.Nowrap {
			c.content.MinimumInlineSize = c.content.PreferredInlineSize
		} else {
			c.content.MinimumInlineSize = run.MinContentInlineSize(span)
		}
	case ReplacedFragment, InlineBlockFragment:
		sizes := f.atomic.IntrinsicSizes
		if sizes == (IntrinsicISizes{}) {
			sizes = IntrinsicISizes{
				MinimumInlineSize:   f.atomic.ContentSize.Inline,
				PreferredInlineSize: f.atomic.ContentSize.Inline,
			}
		}
		c.content = sizes
	}
	return c
}
