package inline

import (
	"github.com/npillmayer/cords"
	"github.com/npillmayer/cords/styled"
	"github.com/npillmayer/inlay/core"
	"github.com/npillmayer/inlay/engine/frame"
	"github.com/npillmayer/inlay/engine/text"
	"github.com/npillmayer/uax/bidi"
)

// ParagraphBuilder collects the text content of a block container, element by
// element, as a styled text. The bidi algorithm runs over the paragraph as a
// whole; Fragments then creates shaped text fragments, one or more per piece
// of text.
//
// Text of an element whose direction differs from the paragraph's is isolated,
// as if it were wrapped in a `dir` attribute.
type ParagraphBuilder struct {
	builder *styled.TextBuilder
	pieces  []textPiece
}

// textPiece is the text of a single element, at a byte position within the
// paragraph.
type textPiece struct {
	node    NodeID
	style   *frame.StyleSet
	context *InlineContext
	from    uint64
	to      uint64
}

// NewParagraphBuilder creates an empty paragraph.
func NewParagraphBuilder() *ParagraphBuilder {
	return &ParagraphBuilder{builder: styled.NewTextBuilder()}
}

// AddText appends the text of an element. ctx lists the element's enclosing
// inline elements and may be nil. Empty strings are ignored. Text without a
// style is rejected with an error of code core.EMISSING.
func (pb *ParagraphBuilder) AddText(node NodeID, style *frame.StyleSet, ctx *InlineContext, s string) error {
	if s == "" {
		return nil
	}
	if style == nil {
		return core.Error(core.EMISSING, "text of node %d has no style", node)
	}
	from := pb.builder.Len()
	leaf := &textLeaf{node: node, content: s}
	if err := pb.builder.Append(leaf, style); err != nil {
		tracer().Errorf("paragraph: cannot append text of node %d: %v", node, err)
		return core.WrapError(err, core.EINVALID, "cannot append text of node %d", node)
	}
	pb.pieces = append(pb.pieces, textPiece{
		node:    node,
		style:   style,
		context: ctx,
		from:    from,
		to:      from + leaf.Weight(),
	})
	return nil
}

// Fragments resolves the bidi levels of the paragraph and shapes its text.
// Text is shaped in segments of a single element, a single style and a single
// direction. The fragments of an element's text keep the element's inline
// context, with first/last flags set on the first and last segment only.
func (pb *ParagraphBuilder) Fragments(blockStyle *frame.StyleSet, shaper text.Shaper) ([]*Fragment, error) {
	if shaper == nil {
		return nil, core.Error(core.EMISSING, "paragraph needs a shaper")
	}
	if len(pb.pieces) == 0 {
		return nil, nil
	}
	dir := bidi.LeftToRight
	if blockStyle.IsRTL() {
		dir = bidi.RightToLeft
	}
	t := pb.builder.Text()
	para, err := styled.ParagraphFromText(t, 0, t.Raw().Len(), dir, pb.bidiMarkup(dir))
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot create paragraph")
	}
	levels := para.BidiLevels()
	paraLevel := blockStyle.BidiLevel()
	var segments []textSegment
	err = para.EachStyleRun(func(content string, sty styled.Style, pos, length uint64) error {
		for _, p := range pb.pieces {
			from, to := maxU(pos, p.from), minU(pos+length, p.to)
			if from >= to {
				continue
			}
			s := content[from-pos : to-pos]
			segments = appendByDirection(segments, p, s, from, func(at uint64) uint8 {
				if levels == nil {
					return paraLevel
				}
				return levelFor(levels.DirectionAt(at), paraLevel)
			})
		}
		return nil
	})
	if err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "cannot iterate over paragraph")
	}
	var fragments []*Fragment
	for i, seg := range segments {
		ctx := seg.piece.context.Clone()
		if i > 0 && segments[i-1].piece.from == seg.piece.from {
			ctx.clearFlag(frame.FirstFragmentOfElement)
		}
		if i+1 < len(segments) && segments[i+1].piece.from == seg.piece.from {
			ctx.clearFlag(frame.LastFragmentOfElement)
		}
		run := shaper.Shape(seg.text, seg.piece.style.Font, seg.level)
		fragments = append(fragments, NewTextFragments(seg.piece.node, seg.piece.style, ctx, run)...)
	}
	tracer().Debugf("paragraph: %d pieces shaped into %d segments, %d fragments",
		len(pb.pieces), len(segments), len(fragments))
	return fragments, nil
}

// textSegment is a slice of a piece's text with a single bidi level.
type textSegment struct {
	piece textPiece
	text  string
	level uint8
}

// appendByDirection splits s, starting at paragraph position pos, at changes of
// the bidi level.
func appendByDirection(segments []textSegment, p textPiece, s string, pos uint64,
	levelAt func(uint64) uint8) []textSegment {
	//
	start := 0
	level := levelAt(pos)
	for i := range s {
		if i == 0 {
			continue
		}
		if l := levelAt(pos + uint64(i)); l != level {
			segments = append(segments, textSegment{piece: p, text: s[start:i], level: level})
			start, level = i, l
		}
	}
	return append(segments, textSegment{piece: p, text: s[start:], level: level})
}

// levelFor maps a resolved direction to an embedding level. Text with the
// paragraph's direction stays on the paragraph level.
func levelFor(dir bidi.Direction, paraLevel uint8) uint8 {
	rtl := dir == bidi.RightToLeft
	switch {
	case rtl && paraLevel%2 == 0, !rtl && paraLevel%2 == 1:
		return paraLevel + 1
	}
	return paraLevel
}

// bidiMarkup isolates every piece whose direction differs from the
// paragraph's.
func (pb *ParagraphBuilder) bidiMarkup(dir bidi.Direction) bidi.OutOfLineBidiMarkup {
	isolates := make(map[uint64]bidi.Direction)
	pdis := make(map[uint64]bool)
	for _, p := range pb.pieces {
		pdir := bidi.LeftToRight
		if p.style.IsRTL() {
			pdir = bidi.RightToLeft
		}
		if pdir != dir {
			isolates[p.from] = pdir
			pdis[p.to] = true
		}
	}
	return func(pos uint64) int {
		if d, ok := isolates[pos]; ok {
			if d == bidi.LeftToRight {
				return int(bidi.MarkupLRI)
			}
			return int(bidi.MarkupRLI)
		}
		if pdis[pos] {
			return int(bidi.MarkupPDI)
		}
		return 0
	}
}

func minU(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

func maxU(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}

// --- Leafs -----------------------------------------------------------------

// textLeaf is the leaf type for cords of paragraph text.
// Not intended for client usage.
type textLeaf struct {
	node    NodeID
	content string
}

// Weight is part of interface cords.Leaf.
func (l textLeaf) Weight() uint64 {
	return uint64(len(l.content))
}

// String is part of interface cords.Leaf.
func (l textLeaf) String() string {
	return l.content
}

// Split is part of interface cords.Leaf.
func (l textLeaf) Split(i uint64) (cords.Leaf, cords.Leaf) {
	return &textLeaf{node: l.node, content: l.content[:i]},
		&textLeaf{node: l.node, content: l.content[i:]}
}

// Substring is part of interface cords.Leaf.
func (l textLeaf) Substring(i, j uint64) []byte {
	return []byte(l.content)[i:j]
}

var _ cords.Leaf = textLeaf{}
