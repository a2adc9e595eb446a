package monospace

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/inlay/core/dimen"
	"github.com/npillmayer/inlay/engine/text"
	"github.com/npillmayer/uax"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

// Shaper shapes text for monospace typesetting. Every grapheme advances by
// one em per display cell, i.e. East Asian wide graphemes take up two ems.
type Shaper struct {
	em      dimen.Dimen
	context *uax11.Context
}

// NewShaper creates a shaper for monospace typesetting with cells of width em.
// If context is nil, a Latin context is assumed for East Asian width
// resolution.
func NewShaper(em dimen.Dimen, context *uax11.Context) *Shaper {
	sh := &Shaper{
		em:      em,
		context: context,
	}
	if context == nil {
		sh.context = uax11.LatinContext
	}
	grapheme.SetupGraphemeClasses()
	return sh
}

// Shape creates a run from a string. Clusters are graphemes; line break
// opportunities are found by the UAX#14 line wrap algorithm.
func (ms *Shaper) Shape(s string, metrics text.FontMetrics, level uint8) *text.Run {
	if ms.em == 0 {
		T().Errorf("monospace shaper has em=0 => no output")
		return text.NewRun("", nil, metrics, level)
	}
	gstr := grapheme.StringFromString(s)
	clusters := make([]text.Cluster, 0, gstr.Len())
	ends := make(map[int]int, gstr.Len()) // byte end position ⇒ cluster index
	offset := 0
	for i := 0; i < gstr.Len(); i++ {
		grphm := gstr.Nth(i)
		c := text.Cluster{Offset: offset, Length: len(grphm)}
		r, _ := utf8.DecodeRuneInString(grphm)
		switch {
		case isNewline(grphm):
			c.Flags.Set(text.Whitespace)
			c.Flags.Set(text.MandatoryBreak)
		case r == ' ':
			c.Flags.Set(text.Whitespace)
			c.Flags.Set(text.WordSeparator)
			c.Advance = dimen.Dimen(uax11.Width([]byte(grphm), ms.context)) * ms.em
		case r == '\u00a0': // no-break space does not collapse
			c.Flags.Set(text.WordSeparator)
			c.Advance = dimen.Dimen(uax11.Width([]byte(grphm), ms.context)) * ms.em
		case unicode.IsSpace(r):
			c.Flags.Set(text.Whitespace)
			c.Advance = dimen.Dimen(uax11.Width([]byte(grphm), ms.context)) * ms.em
		default:
			c.Advance = dimen.Dimen(uax11.Width([]byte(grphm), ms.context)) * ms.em
		}
		clusters = append(clusters, c)
		offset += len(grphm)
		ends[offset] = i
	}
	markBreakOpportunities(s, clusters, ends)
	T().Debugf("monospace: shaped %d clusters from %d bytes", len(clusters), len(s))
	return text.NewRun(s, clusters, metrics, level)
}

// markBreakOpportunities runs a UAX#14 segmenter over s and flags every
// cluster which ends a segment at a line wrap opportunity.
// The end of the text is not a break opportunity on its own: whether a line
// may wrap there depends on the text following the run.
func markBreakOpportunities(s string, clusters []text.Cluster, ends map[int]int) {
	linewrap := uax14.NewLineWrap()
	seg := segment.NewSegmenter(linewrap)
	seg.Init(strings.NewReader(s))
	pos := 0
	for seg.Next() {
		pos += len(seg.Text())
		p1, _ := seg.Penalties()
		if pos >= len(s) || p1 >= uax.InfinitePenalty {
			continue
		}
		if i, ok := ends[pos]; ok {
			clusters[i].Flags.Set(text.BreakAfter)
		}
	}
	// trailing white space allows wrapping after the run
	if n := len(clusters); n > 0 && clusters[n-1].Flags.Contains(text.Whitespace) {
		clusters[n-1].Flags.Set(text.BreakAfter)
	}
}

func isNewline(g string) bool {
	switch g {
	case "\n", "\r", "\r\n", "\u2028", "\u2029", "\u0085":
		return true
	}
	return false
}

var _ text.Shaper = &Shaper{}
