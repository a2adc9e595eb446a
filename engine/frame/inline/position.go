package inline

import (
	"github.com/npillmayer/inlay/core/dimen"
	"github.com/npillmayer/inlay/engine/frame"
)

// setInlineFragmentPositions assigns inline coordinates to all fragments,
// line by line. Coordinates are line-left, i.e. they grow from the left edge
// of the flow regardless of direction.
func (fl *Flow) setInlineFragmentPositions() {
	rtl := fl.Style.IsRTL()
	align := fl.Style.TextAlign.Logical(rtl)
	paraLevel := fl.Style.BidiLevel()
	for i := range fl.Lines {
		line := &fl.Lines[i]
		slack := dimen.Max(0, line.GreenZone.Inline-line.Bounds.Size.Inline)
		var offset dimen.Dimen
		switch align {
		case frame.TextAlignEnd:
			offset = slack
		case frame.TextAlignCenter:
			offset = slack / 2
		case frame.TextAlignJustify:
			if fl.isJustifiable(i) {
				line.Bounds.Size.Inline += justifyLine(fl.Fragments, line, slack)
			}
		}
		var indentation dimen.Dimen
		if i == 0 {
			indentation = fl.FirstLineIndentation
		}
		x := line.Bounds.Start.I + indentation + offset
		if rtl {
			slack = dimen.Max(0, line.GreenZone.Inline-line.Bounds.Size.Inline)
			x = line.Bounds.Start.I + slack - offset
		}
		for _, idx := range line.visualOrder() {
			f := fl.Fragments[idx]
			left, right := f.Margin.InlineStart, f.Margin.InlineEnd
			if f.BidiLevel(paraLevel)%2 == 1 {
				left, right = right, left
			}
			if f.IsInlineAbsolute() || f.IsHypothetical() {
				f.BorderBox.Start.I = x + left
				continue
			}
			x += left
			f.BorderBox.Start.I = x
			x += f.BorderBox.Size.Inline + right
		}
	}
}

// isJustifiable is true if line #i may be justified. The last line and lines
// ending in a forced break are not justified.
func (fl *Flow) isJustifiable(i int) bool {
	if i == len(fl.Lines)-1 {
		return false
	}
	if fl.Style.TextJustify == frame.TextJustifyNone || fl.Options.TextJustify == frame.TextJustifyNone {
		return false
	}
	line := fl.Lines[i]
	if line.IsEmpty() {
		return false
	}
	return !fl.Fragments[line.Range.End()-1].RequiresLineBreakAfterward()
}

// setBlockFragmentPositions assigns block coordinates to all fragments. A
// fragment's ascent is aligned to the baseline of its line; for non-atomic
// fragments the alignment refers to the content box.
func (fl *Flow) setBlockFragmentPositions() {
	for i := range fl.Lines {
		line := &fl.Lines[i]
		line.Range.Each(func(idx FragmentIndex) {
			f := fl.Fragments[idx]
			if f.IsReplacedOrInlineBlock() && f.Style.Display.AlignsToLineBox() {
				switch f.Style.VerticalAlign.Keyword {
				case frame.VAlignTop:
					f.BorderBox.Start.B = line.Bounds.Start.B + f.Margin.BlockStart
					return
				case frame.VAlignBottom:
					f.BorderBox.Start.B = line.Bounds.BlockEnd() - f.Margin.BlockEnd -
						f.BorderBox.Size.Block
					return
				}
			}
			lm := line.metricsForFragment(f)
			aligned := f.AlignedInlineMetrics(line.MinimumMetrics, &lm)
			b := line.Bounds.Start.B + lm.SpaceAboveBaseline - aligned.Ascent
			if !f.IsReplacedOrInlineBlock() {
				b -= f.BorderPadding.BlockStart
			}
			f.BorderBox.Start.B = b
		})
	}
}
