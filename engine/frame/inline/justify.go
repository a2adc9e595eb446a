package inline

import "github.com/npillmayer/inlay/core/dimen"

// justifyLine distributes slack among the word separators of a line's text
// fragments. Every separator gets slack/n, the first slack mod n separators
// get one more scaled point, so the increments sum up to slack exactly.
// Justified fragments receive new versions of their runs.
//
// It returns the inline size added to the line, which is either slack or 0 for
// a line without word separators.
func justifyLine(fragments []*Fragment, line *Line, slack dimen.Dimen) dimen.Dimen {
	if slack <= 0 {
		return 0
	}
	n := 0
	line.Range.Each(func(i FragmentIndex) {
		n += fragments[i].wordSeparatorCount()
	})
	if n == 0 {
		return 0
	}
	base := slack / dimen.Dimen(n)
	bonus := int(slack % dimen.Dimen(n))
	seen := 0
	var added dimen.Dimen
	line.Range.Each(func(i FragmentIndex) {
		f := fragments[i]
		k := f.wordSeparatorCount()
		if k == 0 {
			return
		}
		b := bonus - seen
		if b < 0 {
			b = 0
		} else if b > k {
			b = k
		}
		before := f.BorderBox.Size.Inline
		f.text.run = f.text.run.Justified(base, b, f.text.span.Start)
		f.updateBorderBoxSize()
		added += f.BorderBox.Size.Inline - before
		seen += k
	})
	tracer().Debugf("justified line %v: %d separators, +%v each, %d bonus", line.Range, n, base, bonus)
	return added
}

func (f *Fragment) wordSeparatorCount() int {
	if f.text == nil || f.text.span.IsEmpty() {
		return 0
	}
	return f.text.run.WordSeparatorCount(f.text.span)
}
