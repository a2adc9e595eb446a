package inline

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/inlay/core/dimen"
	"github.com/npillmayer/inlay/engine/frame"
	"github.com/npillmayer/inlay/engine/text"
)

const (
	bp        = dimen.BP
	dimenZero = dimen.Dimen(0)
)

// fixedShaper shapes every rune to a cluster advancing 10bp. Spaces are word
// separators followed by a break opportunity, newlines are mandatory breaks
// of zero width.
type fixedShaper struct{}

func (fixedShaper) Shape(s string, metrics text.FontMetrics, level uint8) *text.Run {
	clusters := make([]text.Cluster, 0, utf8.RuneCountInString(s))
	for offset, r := range s {
		c := text.Cluster{Offset: offset, Length: utf8.RuneLen(r), Advance: 10 * bp}
		switch r {
		case ' ':
			c.Flags.Set(text.Whitespace)
			c.Flags.Set(text.WordSeparator)
			c.Flags.Set(text.BreakAfter)
		case '\n':
			c.Advance = 0
			c.Flags.Set(text.Whitespace)
			c.Flags.Set(text.MandatoryBreak)
		}
		clusters = append(clusters, c)
	}
	return text.NewRun(s, clusters, metrics, level)
}

var _ text.Shaper = fixedShaper{}

func testFont() text.FontMetrics {
	return text.EmMetrics(10 * bp)
}

func testStyle() *frame.StyleSet {
	return frame.InitialStyle(testFont())
}

func textFragments(node NodeID, style *frame.StyleSet, ctx *InlineContext, s string, level uint8) []*Fragment {
	run := fixedShaper{}.Shape(s, style.Font, level)
	return NewTextFragments(node, style, ctx, run)
}

func replacedBox(node NodeID, inline, block dimen.Dimen) *Fragment {
	return NewAtomicFragment(ReplacedFragment, node, testStyle(), nil, AtomicInfo{
		ContentSize: dimen.LogicalSize{Inline: inline, Block: block},
	})
}

func newTestFlow(fragments []*Fragment, style *frame.StyleSet) *Flow {
	flow := NewFlow(fragments, style, DefaultOptions())
	flow.Shaper = fixedShaper{}
	return flow
}

func layout(flow *Flow, width dimen.Dimen) *Flow {
	flow.AssignInlineSizes(width)
	flow.AssignBlockSize()
	return flow
}

// lineTexts returns the visible text of every line.
func lineTexts(flow *Flow) []string {
	var texts []string
	for _, line := range flow.Lines {
		var b strings.Builder
		line.Range.Each(func(i FragmentIndex) {
			b.WriteString(flow.Fragments[i].Text())
		})
		texts = append(texts, b.String())
	}
	return texts
}

// originalText concatenates the content of all fragments, excluding
// ellipses and replacing truncated fragments by their originals.
func originalText(fragments []*Fragment) string {
	var b strings.Builder
	for _, f := range fragments {
		if f.IsEllipsis() {
			continue
		}
		if f.IsTruncated() {
			f = f.Full()
		}
		b.WriteString(f.OriginalText())
	}
	return b.String()
}

func assertPartition(t interface {
	Errorf(format string, args ...interface{})
}, flow *Flow) {
	next := FragmentIndex(0)
	for i, line := range flow.Lines {
		if line.Range.Begin != next {
			t.Errorf("line %d starts at %d, expected %d", i, line.Range.Begin, next)
		}
		if line.Range.IsEmpty() {
			t.Errorf("line %d is empty", i)
		}
		next = line.Range.End()
	}
	if int(next) != len(flow.Fragments) {
		t.Errorf("lines cover %d fragments, flow has %d", next, len(flow.Fragments))
	}
}
