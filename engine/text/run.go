package text

import (
	"fmt"
	"strings"

	"github.com/npillmayer/inlay/core/dimen"
)

// ClusterFlags classify a cluster for line breaking and justification.
type ClusterFlags uint8

// Flags for clusters.
const (
	Whitespace     ClusterFlags = 0x01 // white space, subject to collapsing
	WordSeparator  ClusterFlags = 0x02 // expansion opportunity for justification
	BreakAfter     ClusterFlags = 0x04 // a line may wrap after this cluster
	MandatoryBreak ClusterFlags = 0x08 // a line must end after this cluster (preserved newline)
)

// Set sets a flag.
func (f *ClusterFlags) Set(flag ClusterFlags) {
	*f = (*f) | flag
}

// Contains checks if a flag is set. Returns false for flag = 0.
func (f ClusterFlags) Contains(flag ClusterFlags) bool {
	return flag != 0 && f&flag == flag
}

// Cluster is a non-breakable unit of text, usually a grapheme.
type Cluster struct {
	Offset  int          // byte offset into the run's text
	Length  int          // byte length
	Advance dimen.Dimen  // inline advance, without extra word spacing
	Flags   ClusterFlags //
}

// Span is a half-open range of cluster indices [Start, End).
type Span struct {
	Start, End int
}

// Len returns the number of clusters in s.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty is true if s covers no cluster.
func (s Span) IsEmpty() bool {
	return s.End <= s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// Run is an immutable shaped text run. See package documentation.
type Run struct {
	text     string
	clusters []Cluster
	metrics  FontMetrics
	level    uint8
	source   *Run // nil for an original run
	spacing  justification
}

// justification holds the extra word spacing of a justified run version.
// The first `bonus` word separators from cluster `from` onwards receive an
// additional scaled point.
type justification struct {
	perSeparator dimen.Dimen
	bonus        int
	from         int
}

// NewRun creates a run from clusters. Clusters have to cover text without gaps,
// in logical order.
func NewRun(text string, clusters []Cluster, metrics FontMetrics, level uint8) *Run {
	return &Run{
		text:     text,
		clusters: clusters,
		metrics:  metrics,
		level:    level,
	}
}

// Text returns the complete text of a run.
func (r *Run) Text() string {
	return r.text
}

// TextOf returns the text of a span of clusters.
func (r *Run) TextOf(span Span) string {
	if span.IsEmpty() {
		return ""
	}
	from := r.clusters[span.Start].Offset
	last := r.clusters[span.End-1]
	return r.text[from : last.Offset+last.Length]
}

// Len returns the number of clusters of a run.
func (r *Run) Len() int {
	return len(r.clusters)
}

// Full returns the span covering all of the run's clusters.
func (r *Run) Full() Span {
	return Span{0, len(r.clusters)}
}

// Cluster returns cluster #i.
func (r *Run) Cluster(i int) Cluster {
	return r.clusters[i]
}

// Metrics returns the font metrics of a run.
func (r *Run) Metrics() FontMetrics {
	return r.metrics
}

// Level returns the bidi embedding level of a run.
func (r *Run) Level() uint8 {
	return r.level
}

// Source returns the original run this run has been derived from, or the run
// itself if it is an original.
func (r *Run) Source() *Run {
	if r.source == nil {
		return r
	}
	return r.source
}

// SameSource is true if two runs are versions of the same original run.
func (r *Run) SameSource(other *Run) bool {
	if r == nil || other == nil {
		return false
	}
	return r.Source() == other.Source()
}

// ExtraWordSpacing returns the extra space per word separator of a justified run
// version. For original runs it is zero.
func (r *Run) ExtraWordSpacing() dimen.Dimen {
	return r.spacing.perSeparator
}

// Justified creates a new version of r with extra space for each word separator.
// The first `bonus` separators at or after cluster `from` get one more scaled
// point, which allows distributing a slack without any remainder.
// r is left untouched.
func (r *Run) Justified(perSeparator dimen.Dimen, bonus int, from int) *Run {
	j := *r
	j.source = r.Source()
	j.spacing = justification{perSeparator: perSeparator, bonus: bonus, from: from}
	tracer().Debugf("justified version of run %q: +%v per separator, bonus=%d",
		abbrev(r.text), perSeparator, bonus)
	return &j
}

// Advance returns the inline advance of a span, including extra word spacing.
func (r *Run) Advance(span Span) dimen.Dimen {
	var adv dimen.Dimen
	for i := span.Start; i < span.End; i++ {
		adv += r.clusters[i].Advance
	}
	if r.spacing.perSeparator == 0 && r.spacing.bonus == 0 {
		return adv
	}
	k := r.separatorOrdinal(span.Start)
	for i := span.Start; i < span.End; i++ {
		if !r.clusters[i].Flags.Contains(WordSeparator) {
			continue
		}
		adv += r.spacing.perSeparator
		if i >= r.spacing.from && k < r.spacing.bonus {
			adv++
		}
		if i >= r.spacing.from {
			k++
		}
	}
	return adv
}

// separatorOrdinal counts the word separators in [spacing.from, i).
func (r *Run) separatorOrdinal(i int) int {
	k := 0
	for j := r.spacing.from; j < i && j < len(r.clusters); j++ {
		if r.clusters[j].Flags.Contains(WordSeparator) {
			k++
		}
	}
	return k
}

// WordSeparatorCount returns the number of expansion opportunities within a span.
func (r *Run) WordSeparatorCount(span Span) int {
	n := 0
	for i := span.Start; i < span.End; i++ {
		if r.clusters[i].Flags.Contains(WordSeparator) {
			n++
		}
	}
	return n
}

// IsWhitespace is true if cluster #i is white space.
func (r *Run) IsWhitespace(i int) bool {
	return r.clusters[i].Flags.Contains(Whitespace)
}

// CanBreakAfter is true if a line may end after cluster #i.
func (r *Run) CanBreakAfter(i int) bool {
	return r.clusters[i].Flags.Contains(BreakAfter) || r.clusters[i].Flags.Contains(MandatoryBreak)
}

// MustBreakAfter is true if a line has to end after cluster #i.
func (r *Run) MustBreakAfter(i int) bool {
	return r.clusters[i].Flags.Contains(MandatoryBreak)
}

// CanBreakBefore is true if a line may start with cluster #i.
// This is the case for the first cluster of a run and for every cluster
// following a break opportunity.
func (r *Run) CanBreakBefore(i int) bool {
	return i == 0 || (i <= len(r.clusters) && r.CanBreakAfter(i-1))
}

// NaturalWordSlices splits a span at its line break opportunities.
// Every slice but the last ends after a break opportunity.
func (r *Run) NaturalWordSlices(span Span) []Span {
	var slices []Span
	start := span.Start
	for i := span.Start; i < span.End; i++ {
		if r.CanBreakAfter(i) && i+1 < span.End {
			slices = append(slices, Span{start, i + 1})
			start = i + 1
		}
	}
	if start < span.End {
		slices = append(slices, Span{start, span.End})
	}
	return slices
}

// CharacterSlices splits a span into slices of one cluster each. This is used
// for breaking within words, e.g. for `word-break: break-all`.
func (r *Run) CharacterSlices(span Span) []Span {
	slices := make([]Span, 0, span.Len())
	for i := span.Start; i < span.End; i++ {
		slices = append(slices, Span{i, i + 1})
	}
	return slices
}

// TrailingWhitespace returns the index of the first cluster of the trailing
// white space of a span. If keepNewlines is set, mandatory breaks are not
// counted as white space.
func (r *Run) TrailingWhitespace(span Span, keepNewlines bool) int {
	i := span.End
	for i > span.Start && r.isStrippable(i-1, keepNewlines) {
		i--
	}
	return i
}

// LeadingWhitespace returns the index of the first cluster after the leading
// white space of a span.
func (r *Run) LeadingWhitespace(span Span, keepNewlines bool) int {
	i := span.Start
	for i < span.End && r.isStrippable(i, keepNewlines) {
		i++
	}
	return i
}

func (r *Run) isStrippable(i int, keepNewlines bool) bool {
	if !r.IsWhitespace(i) {
		return false
	}
	return !(keepNewlines && r.MustBreakAfter(i))
}

// MinimumSplittableInlineSize returns the advance of the first natural word
// slice of a span, without trailing white space. This is the least inline size
// a line needs to take up a piece of the span.
func (r *Run) MinimumSplittableInlineSize(span Span) dimen.Dimen {
	slices := r.NaturalWordSlices(span)
	if len(slices) == 0 {
		return 0
	}
	s := slices[0]
	s.End = r.TrailingWhitespace(s, false)
	return r.Advance(s)
}

// MinContentInlineSize returns the advance of the widest natural word slice
// of a span, without trailing white space.
func (r *Run) MinContentInlineSize(span Span) dimen.Dimen {
	var w dimen.Dimen
	for _, s := range r.NaturalWordSlices(span) {
		s.End = r.TrailingWhitespace(s, false)
		w = dimen.Max(w, r.Advance(s))
	}
	return w
}

func (r *Run) String() string {
	if r.source != nil {
		return fmt.Sprintf("run'%q", abbrev(r.text))
	}
	return fmt.Sprintf("run%q", abbrev(r.text))
}

func abbrev(s string) string {
	if len(s) <= 24 {
		return s
	}
	return strings.TrimSpace(s[:20]) + "…"
}
