package inline

import (
	"fmt"

	"github.com/npillmayer/inlay/core/dimen"
	"github.com/npillmayer/inlay/engine/frame"
	"github.com/npillmayer/inlay/engine/text"
)

// InlineMetrics are the vertical metrics of an inline box, relative to its
// baseline.
type InlineMetrics struct {
	SpaceAboveBaseline dimen.Dimen // including half-leading
	SpaceBelowBaseline dimen.Dimen // including half-leading
	Ascent             dimen.Dimen // ascent of the font, without leading
}

// InlineMetricsFromFontMetrics computes the metrics of an inline box for a font
// and a line height. The leading is split between above and below the
// baseline, with above + below = lineHeight exactly.
func InlineMetricsFromFontMetrics(fm text.FontMetrics, lineHeight dimen.Dimen) InlineMetrics {
	leading := lineHeight - (fm.Ascent + fm.Descent)
	half := leading.Scale(0.5)
	return InlineMetrics{
		SpaceAboveBaseline: fm.Ascent + half,
		SpaceBelowBaseline: fm.Descent + leading - half,
		Ascent:             fm.Ascent,
	}
}

// SpaceNeeded returns the block size of an inline box.
func (im InlineMetrics) SpaceNeeded() dimen.Dimen {
	return im.SpaceAboveBaseline + im.SpaceBelowBaseline
}

func (im InlineMetrics) String() string {
	return fmt.Sprintf("im{above=%v,below=%v,ascent=%v}", im.SpaceAboveBaseline,
		im.SpaceBelowBaseline, im.Ascent)
}

// LineMetrics are the vertical metrics of a line box.
type LineMetrics struct {
	SpaceAboveBaseline dimen.Dimen
	SpaceBelowBaseline dimen.Dimen
}

// NewMetricsForFragment returns the metrics of a line extended to hold an
// inline box.
func (lm LineMetrics) NewMetricsForFragment(im InlineMetrics) LineMetrics {
	return LineMetrics{
		SpaceAboveBaseline: dimen.Max(lm.SpaceAboveBaseline, im.SpaceAboveBaseline),
		SpaceBelowBaseline: dimen.Max(lm.SpaceBelowBaseline, im.SpaceBelowBaseline),
	}
}

// SpaceNeeded returns the block size of a line.
func (lm LineMetrics) SpaceNeeded() dimen.Dimen {
	return lm.SpaceAboveBaseline + lm.SpaceBelowBaseline
}

func (lm LineMetrics) String() string {
	return fmt.Sprintf("lm{above=%v,below=%v}", lm.SpaceAboveBaseline, lm.SpaceBelowBaseline)
}

// contentInlineMetrics returns the metrics of a fragment before vertical
// alignment.
func (f *Fragment) contentInlineMetrics() InlineMetrics {
	switch f.Kind {
	case TextFragment:
		if f.BorderBox.Size.Inline-f.BorderPadding.InlineStartEnd() == 0 {
			return InlineMetrics{}
		}
		fm := f.text.run.Metrics()
		return InlineMetricsFromFontMetrics(fm, f.Style.LineHeight.Resolve(fm))
	case ReplacedFragment:
		return f.atomicInlineMetrics(false)
	case InlineBlockFragment:
		return f.atomicInlineMetrics(f.atomic.HasBaseline)
	}
	return InlineMetrics{}
}

// atomicInlineMetrics places the margin box of an atomic fragment on the
// baseline. Without a baseline, the bottom margin edge sits on the baseline.
func (f *Fragment) atomicInlineMetrics(hasBaseline bool) InlineMetrics {
	h := f.BorderBox.Size.Block
	if !hasBaseline {
		ascent := h + f.Margin.BlockEnd
		return InlineMetrics{
			SpaceAboveBaseline: ascent + f.Margin.BlockStart,
			SpaceBelowBaseline: 0,
			Ascent:             ascent,
		}
	}
	b := f.atomic.Baseline
	return InlineMetrics{
		SpaceAboveBaseline: b + f.Margin.BlockStart,
		SpaceBelowBaseline: h - b + f.Margin.BlockEnd,
		Ascent:             b,
	}
}

// AlignedInlineMetrics returns the metrics of a fragment after applying
// `vertical-align` of the fragment and of all of its enclosing elements.
// minimum are the minimum metrics of the line, actual are the line's current
// metrics. If actual is nil, `top` and `bottom` are not resolved; this is the
// case while the line is still being filled.
func (f *Fragment) AlignedInlineMetrics(minimum LineMetrics, actual *LineMetrics) InlineMetrics {
	content := f.contentInlineMetrics()
	var offset dimen.Dimen
	for _, style := range f.inlineStyles() {
		va := style.VerticalAlign
		switch va.Keyword {
		case frame.VAlignBaseline:
		case frame.VAlignMiddle:
			offset += (content.Ascent - content.SpaceBelowBaseline - style.Font.XHeight).Scale(0.5)
		case frame.VAlignSub:
			offset += minimum.SpaceNeeded().Scale(0.20)
		case frame.VAlignSuper:
			offset -= minimum.SpaceNeeded().Scale(0.34)
		case frame.VAlignTextTop:
			offset = content.Ascent - minimum.SpaceAboveBaseline
		case frame.VAlignTextBottom:
			offset = minimum.SpaceBelowBaseline - content.SpaceBelowBaseline
		case frame.VAlignTop:
			if actual != nil {
				offset = content.Ascent - actual.SpaceAboveBaseline
			}
		case frame.VAlignBottom:
			if actual != nil {
				offset = actual.SpaceBelowBaseline - content.SpaceBelowBaseline
			}
		case frame.VAlignLength:
			offset -= va.Length.Resolve(minimum.SpaceNeeded())
		}
	}
	return InlineMetrics{
		SpaceAboveBaseline: content.SpaceAboveBaseline - offset,
		SpaceBelowBaseline: content.SpaceBelowBaseline + offset,
		Ascent:             content.Ascent - offset,
	}
}

// MinimumLineMetricsForFragments computes the metrics every line of a flow
// has at least: the block's strut, plus the line height of every element
// enclosing any of the fragments. A flow consisting of placeholders only has
// zero metrics.
func MinimumLineMetricsForFragments(fragments []*Fragment, style *frame.StyleSet) LineMetrics {
	allHypothetical := true
	hasTextOrReplaced := false
	for _, f := range fragments {
		if !f.IsHypothetical() {
			allHypothetical = false
		}
		if f.IsTextOrReplaced() {
			hasTextOrReplaced = true
		}
	}
	if allHypothetical {
		return LineMetrics{}
	}
	var im InlineMetrics
	if hasTextOrReplaced {
		im = InlineMetricsFromFontMetrics(style.Font, style.LineHeightValue())
	}
	acc := metricsAccumulator{
		lm: LineMetrics{SpaceAboveBaseline: 0, SpaceBelowBaseline: -dimen.Infinity},
	}
	acc.update(frame.VAlign(frame.VAlignBaseline), style.Display, im)
	for _, f := range fragments {
		if f.Context == nil {
			continue
		}
		for _, n := range f.Context.Nodes {
			nim := InlineMetricsFromFontMetrics(n.Style.Font, n.Style.LineHeightValue())
			acc.update(n.Style.VerticalAlign, n.Style.Display, nim)
		}
	}
	lm := acc.lm
	lm.SpaceAboveBaseline = dimen.Max(lm.SpaceAboveBaseline,
		acc.bottomMax-dimen.Max(lm.SpaceBelowBaseline, 0))
	lm.SpaceBelowBaseline = dimen.Max(lm.SpaceBelowBaseline,
		acc.topMax-lm.SpaceAboveBaseline)
	tracer().Debugf("minimum line metrics = %v", lm)
	return lm
}

// metricsAccumulator collects contributions to the minimum line metrics.
// Boxes aligned to the top or bottom of the line box are tracked separately,
// as their position depends on the final line height.
type metricsAccumulator struct {
	lm        LineMetrics
	topMax    dimen.Dimen
	bottomMax dimen.Dimen
}

func (acc *metricsAccumulator) update(va frame.VerticalAlign, display frame.DisplayMode, im InlineMetrics) {
	switch {
	case va.Keyword == frame.VAlignLength:
		acc.lm = acc.lm.NewMetricsForFragment(im)
	case display.AlignsToLineBox() && va.Keyword == frame.VAlignTop && im.SpaceAboveBaseline >= 0:
		acc.topMax = dimen.Max(acc.topMax, im.SpaceNeeded())
	case display.AlignsToLineBox() && va.Keyword == frame.VAlignBottom && im.SpaceBelowBaseline >= 0:
		acc.bottomMax = dimen.Max(acc.bottomMax, im.SpaceNeeded())
	default:
		acc.lm = acc.lm.NewMetricsForFragment(im)
	}
}
