package inline

import (
	"fmt"

	"github.com/npillmayer/inlay/core/dimen"
)

// Line is a line box of an inline flow. A line refers to a contiguous range of
// the flow's fragments, in logical order.
type Line struct {
	Range          FragmentRange     // fragments of the line
	VisualRuns     []VisualRun       // bidi runs in reading order; nil for unidirectional lines
	Bounds         dimen.LogicalRect // position and extent of the line box
	GreenZone      dimen.LogicalSize // space available between floats
	MinimumMetrics LineMetrics       // metrics every line of the flow has at least
	Metrics        LineMetrics       // metrics of this line
}

func newLine(minimum LineMetrics) Line {
	return Line{
		MinimumMetrics: minimum,
		Metrics:        minimum,
	}
}

// IsEmpty is true for a line without fragments.
func (l *Line) IsEmpty() bool {
	return l.Range.IsEmpty()
}

// newMetricsForFragment returns the line's metrics extended by a fragment.
// Fragments aligned to the top or bottom of the line box do not change the
// metrics, as they are aligned relative to them.
func (l *Line) newMetricsForFragment(f *Fragment) LineMetrics {
	if f.IsVerticallyAlignedToTopOrBottom() {
		return l.Metrics
	}
	return l.Metrics.NewMetricsForFragment(f.AlignedInlineMetrics(l.MinimumMetrics, nil))
}

// newBlockSizeForFragment returns the block size of the line extended by a
// fragment. The block size of a line never shrinks.
func (l *Line) newBlockSizeForFragment(f *Fragment) dimen.Dimen {
	var size dimen.Dimen
	if f.IsVerticallyAlignedToTopOrBottom() {
		aligned := f.AlignedInlineMetrics(l.MinimumMetrics, nil)
		size = dimen.Max(aligned.SpaceNeeded(), l.MinimumMetrics.SpaceNeeded())
	} else {
		size = l.newMetricsForFragment(f).SpaceNeeded()
	}
	return dimen.Max(size, l.Bounds.Size.Block)
}

// metricsForFragment returns the metrics used to position a fragment of
// the line. Hypothetical fragments get the metrics the line would have with
// them.
func (l *Line) metricsForFragment(f *Fragment) LineMetrics {
	if !f.IsHypothetical() {
		return LineMetrics{
			SpaceAboveBaseline: l.Metrics.SpaceAboveBaseline,
			SpaceBelowBaseline: l.Bounds.Size.Block - l.Metrics.SpaceAboveBaseline,
		}
	}
	return l.newMetricsForFragment(f)
}

func (l Line) String() string {
	return fmt.Sprintf("line%v@%v green=%v %v", l.Range, l.Bounds, l.GreenZone, l.Metrics)
}
