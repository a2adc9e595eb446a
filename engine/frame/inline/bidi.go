package inline

import "fmt"

// VisualRun is a maximal range of fragments of a line sharing one bidi level.
type VisualRun struct {
	Range FragmentRange
	Level uint8
}

func (vr VisualRun) String() string {
	return fmt.Sprintf("run%v@%d", vr.Range, vr.Level)
}

// computeVisualRuns partitions every line into runs of constant bidi level.
// If no fragment has an odd level, lines keep their logical order and no runs
// are recorded.
func computeVisualRuns(fragments []*Fragment, lines []Line, paragraphLevel uint8) {
	levels := make([]uint8, len(fragments))
	hasRTL := false
	for i, f := range fragments {
		levels[i] = f.BidiLevel(paragraphLevel)
		if levels[i]%2 == 1 {
			hasRTL = true
		}
	}
	if !hasRTL {
		for i := range lines {
			lines[i].VisualRuns = nil
		}
		return
	}
	for i := range lines {
		line := &lines[i]
		line.VisualRuns = line.VisualRuns[:0]
		start := line.Range.Begin
		for start < line.Range.End() {
			level := levels[start]
			end := start + 1
			for end < line.Range.End() && levels[end] == level {
				end++
			}
			line.VisualRuns = append(line.VisualRuns, VisualRun{
				Range: Range(start, end-start),
				Level: level,
			})
			start = end
		}
		tracer().Debugf("bidi: line %d has visual runs %v", i, line.VisualRuns)
	}
}

// visualOrder returns the fragment indices of a line in visual order, from
// line-left to line-right. Runs are reordered following rule L2 of the
// Unicode bidi algorithm: from the highest level down to the lowest odd
// level, every maximal sequence of runs at that level or higher is reversed.
// Fragments within a run of odd level are reversed as well.
func (l *Line) visualOrder() []FragmentIndex {
	order := make([]FragmentIndex, 0, l.Range.Length)
	if len(l.VisualRuns) == 0 {
		l.Range.Each(func(i FragmentIndex) {
			order = append(order, i)
		})
		return order
	}
	runs := make([]VisualRun, len(l.VisualRuns))
	copy(runs, l.VisualRuns)
	var highest uint8
	lowestOdd := uint8(255)
	for _, r := range runs {
		if r.Level > highest {
			highest = r.Level
		}
		if r.Level%2 == 1 && r.Level < lowestOdd {
			lowestOdd = r.Level
		}
	}
	for level := highest; level >= lowestOdd && level > 0; level-- {
		for i := 0; i < len(runs); {
			if runs[i].Level < level {
				i++
				continue
			}
			j := i
			for j < len(runs) && runs[j].Level >= level {
				j++
			}
			reverseRuns(runs[i:j])
			i = j
		}
	}
	for _, r := range runs {
		if r.Level%2 == 1 {
			r.Range.EachReverse(func(i FragmentIndex) {
				order = append(order, i)
			})
		} else {
			r.Range.Each(func(i FragmentIndex) {
				order = append(order, i)
			})
		}
	}
	return order
}

func reverseRuns(runs []VisualRun) {
	for i, j := 0, len(runs)-1; i < j; i, j = i+1, j-1 {
		runs[i], runs[j] = runs[j], runs[i]
	}
}
