package frame

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
   list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
   contributors may be used to endorse or promote products derived from
   this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"fmt"

	"github.com/npillmayer/cords/styled"
	"github.com/npillmayer/inlay/core/dimen"
	"github.com/npillmayer/inlay/engine/text"
	"golang.org/x/text/unicode/bidi"
)

// StyleSet is a type to hold the computed CSS properties relevant for inline
// layout. A style set is shared between all fragments of an element, and
// between an element and the fragments of its text. Style sets are treated as
// immutable once layout has started.
//
// StyleSet implements cords/styled.Style, so styled text may carry
// style sets directly.
type StyleSet struct {
	Font          text.FontMetrics   // metrics of the first available font
	LineHeight    LineHeight         // CSS line-height
	VerticalAlign VerticalAlign      // CSS vertical-align
	WhiteSpace    WhiteSpaceCollapse // CSS white-space-collapse
	TextWrap      TextWrapMode       // CSS text-wrap-mode
	WordBreak     WordBreak          // CSS word-break
	OverflowWrap  OverflowWrap       // CSS overflow-wrap
	TextOverflow  TextOverflow       // CSS text-overflow (inline-end side)
	OverflowX     Overflow           // CSS overflow-x
	Direction     bidi.Direction     // CSS direction
	TextAlign     TextAlign          // CSS text-align, for block containers
	TextJustify   TextJustify        // CSS text-justify
	TextIndent    Length             // CSS text-indent, for block containers
	Display       DisplayMode        // CSS display
	Position      Position           // CSS position
	Margins       Spacing            // outside of border
	Padding       Spacing            // inside of border
	BorderWidth   Spacing            // thickness of border
}

// InitialStyle creates a style set with initial values for every property,
// using a given font.
func InitialStyle(font text.FontMetrics) *StyleSet {
	return &StyleSet{
		Font:      font,
		Direction: bidi.LeftToRight,
		Display:   DisplayInline,
	}
}

// Clone returns a copy of a style set, to be modified before layout.
func (set *StyleSet) Clone() *StyleSet {
	s := *set
	return &s
}

// String is part of interface cords.styled.Style.
func (set *StyleSet) String() string {
	if set == nil {
		return "<nil style>"
	}
	return fmt.Sprintf("<style %s ws=%v wrap=%v va=%v>", set.Display, set.WhiteSpace,
		set.TextWrap, set.VerticalAlign)
}

// Equals is part of interface cords.styled.Style, not intended for client usage.
// Style sets are equal if they are identical.
func (set *StyleSet) Equals(other styled.Style) bool {
	if o, ok := other.(*StyleSet); ok {
		return o == set
	}
	return false
}

var _ styled.Style = &StyleSet{}

// IsRTL is true for right-to-left direction.
func (set *StyleSet) IsRTL() bool {
	return set.Direction == bidi.RightToLeft
}

// BidiLevel returns the paragraph embedding level for the direction of a style.
func (set *StyleSet) BidiLevel() uint8 {
	if set.IsRTL() {
		return 1
	}
	return 0
}

// LineHeightValue resolves `line-height` for the style's font.
func (set *StyleSet) LineHeightValue() dimen.Dimen {
	return set.LineHeight.Resolve(set.Font)
}

// BorderPadding returns border width plus padding for all four sides.
func (set *StyleSet) BorderPadding(cbInlineSize dimen.Dimen) dimen.LogicalSides {
	return set.BorderWidth.Resolve(cbInlineSize).Add(set.Padding.Resolve(cbInlineSize))
}

// IsPositioned is true for any position other than static.
func (set *StyleSet) IsPositioned() bool {
	return set.Position != PositionStatic
}

// IsAbsolutelyPositioned is true for absolute or fixed position.
func (set *StyleSet) IsAbsolutelyPositioned() bool {
	return set.Position == PositionAbsolute || set.Position == PositionFixed
}

// --- Property types --------------------------------------------------------

// LineHeightKind is the kind of a `line-height` value.
type LineHeightKind uint8

// Kinds of line heights.
const (
	LineHeightNormal LineHeightKind = iota // use the font's natural line height
	LineHeightLength                       // absolute length
	LineHeightNumber                       // multiple of the font size
)

// LineHeight is a computed value for CSS property `line-height`.
type LineHeight struct {
	Kind   LineHeightKind
	Length dimen.Dimen
	Number float64
}

// LineHeightOf creates an absolute line height.
func LineHeightOf(d dimen.Dimen) LineHeight {
	return LineHeight{Kind: LineHeightLength, Length: d}
}

// LineHeightFactor creates a line height relative to the font size.
func LineHeightFactor(n float64) LineHeight {
	return LineHeight{Kind: LineHeightNumber, Number: n}
}

// Resolve returns the used line height for a font.
func (lh LineHeight) Resolve(font text.FontMetrics) dimen.Dimen {
	switch lh.Kind {
	case LineHeightLength:
		return lh.Length
	case LineHeightNumber:
		size := font.EmSize
		if size == 0 {
			size = font.Ascent + font.Descent
		}
		return size.Scale(lh.Number)
	}
	return font.Height()
}

// VerticalAlignKeyword is a keyword value of CSS property `vertical-align`.
type VerticalAlignKeyword uint8

// Values for vertical-align.
const (
	VAlignBaseline VerticalAlignKeyword = iota
	VAlignMiddle
	VAlignSub
	VAlignSuper
	VAlignTextTop
	VAlignTextBottom
	VAlignTop
	VAlignBottom
	VAlignLength // shift by VerticalAlign.Length
)

var valignNames = [...]string{"baseline", "middle", "sub", "super", "text-top", "text-bottom",
	"top", "bottom", "length"}

// VerticalAlign is a computed value for CSS property `vertical-align`.
// Percentages refer to the minimum line height.
type VerticalAlign struct {
	Keyword VerticalAlignKeyword
	Length  Length
}

// VAlign creates a keyword value for vertical-align.
func VAlign(kw VerticalAlignKeyword) VerticalAlign {
	return VerticalAlign{Keyword: kw}
}

// VAlignShift creates a length value for vertical-align. Positive values raise
// a box.
func VAlignShift(l Length) VerticalAlign {
	return VerticalAlign{Keyword: VAlignLength, Length: l}
}

// IsTopOrBottom is true for keywords `top` and `bottom`, which align a box
// relative to the line box instead of the baseline.
func (va VerticalAlign) IsTopOrBottom() bool {
	return va.Keyword == VAlignTop || va.Keyword == VAlignBottom
}

func (va VerticalAlign) String() string {
	if va.Keyword == VAlignLength {
		return va.Length.String()
	}
	if int(va.Keyword) < len(valignNames) {
		return valignNames[va.Keyword]
	}
	return "?"
}

// WhiteSpaceCollapse is a value for CSS property `white-space-collapse`.
type WhiteSpaceCollapse uint8

// Values for white-space-collapse.
const (
	WhiteSpaceCollapseSpaces WhiteSpaceCollapse = iota // CSS collapse
	WhiteSpacePreserve                                 // CSS preserve
	WhiteSpacePreserveBreaks                           // CSS preserve-breaks
	WhiteSpaceBreakSpaces                              // CSS break-spaces
)

// CollapsesSpaces is true if spaces at the start and end of a line may be
// removed.
func (ws WhiteSpaceCollapse) CollapsesSpaces() bool {
	return ws == WhiteSpaceCollapseSpaces || ws == WhiteSpacePreserveBreaks
}

// PreservesNewlines is true if newlines in the text force line breaks.
func (ws WhiteSpaceCollapse) PreservesNewlines() bool {
	return ws != WhiteSpaceCollapseSpaces
}

func (ws WhiteSpaceCollapse) String() string {
	switch ws {
	case WhiteSpacePreserve:
		return "preserve"
	case WhiteSpacePreserveBreaks:
		return "preserve-breaks"
	case WhiteSpaceBreakSpaces:
		return "break-spaces"
	}
	return "collapse"
}

// TextWrapMode is a value for CSS property `text-wrap-mode`.
type TextWrapMode uint8

// Values for text-wrap-mode.
const (
	Wrap TextWrapMode = iota
	Nowrap
)

func (w TextWrapMode) String() string {
	if w == Nowrap {
		return "nowrap"
	}
	return "wrap"
}

// WordBreak is a value for CSS property `word-break`.
type WordBreak uint8

// Values for word-break.
const (
	WordBreakNormal WordBreak = iota
	WordBreakBreakAll
	WordBreakKeepAll
)

// OverflowWrap is a value for CSS property `overflow-wrap`.
type OverflowWrap uint8

// Values for overflow-wrap.
const (
	OverflowWrapNormal OverflowWrap = iota
	OverflowWrapBreakWord
)

// TextOverflowKind is the kind of a `text-overflow` value.
type TextOverflowKind uint8

// Kinds of text-overflow.
const (
	TextOverflowClip TextOverflowKind = iota
	TextOverflowEllipsis
	TextOverflowString
)

// TextOverflow is a computed value for CSS property `text-overflow`.
type TextOverflow struct {
	Kind   TextOverflowKind
	Custom string // for TextOverflowString
}

// Overflow is a value for CSS properties `overflow-x` and `overflow-y`.
type Overflow uint8

// Values for overflow.
const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowClip
	OverflowScroll
	OverflowAuto
)

// TextAlign is a value for CSS property `text-align`.
type TextAlign uint8

// Values for text-align.
const (
	TextAlignStart TextAlign = iota
	TextAlignEnd
	TextAlignLeft
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
)

// Logical maps physical values `left` and `right` to `start` or `end`, depending
// on a writing direction.
func (ta TextAlign) Logical(rtl bool) TextAlign {
	switch {
	case (ta == TextAlignLeft && !rtl) || (ta == TextAlignRight && rtl):
		return TextAlignStart
	case (ta == TextAlignLeft && rtl) || (ta == TextAlignRight && !rtl):
		return TextAlignEnd
	}
	return ta
}

// TextJustify is a value for CSS property `text-justify`.
type TextJustify uint8

// Values for text-justify.
const (
	TextJustifyAuto TextJustify = iota
	TextJustifyNone
)

func (tj TextJustify) String() string {
	if tj == TextJustifyNone {
		return "none"
	}
	return "auto"
}

// Position is a value for CSS property `position`.
type Position uint8

// Values for position.
const (
	PositionStatic Position = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
)
