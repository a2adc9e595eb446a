package frame

/*
BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"fmt"

	"github.com/npillmayer/inlay/core"
	"github.com/npillmayer/inlay/core/dimen"
)

// Box is a box following the CSS box model, in logical coordinates.
// The border box is the reference rectangle; margins extend outside of it,
// border and padding are the decorations inside of it.
type Box struct {
	BorderBox     dimen.LogicalRect  // position and extent of the border box
	Margin        dimen.LogicalSides // outside of border
	BorderPadding dimen.LogicalSides // thickness of border plus padding
}

// MarginBoxInlineSize returns the inline extent of the margin box.
func (box *Box) MarginBoxInlineSize() dimen.Dimen {
	return box.BorderBox.Size.Inline + box.Margin.InlineStartEnd()
}

// MarginBoxBlockSize returns the block extent of the margin box.
func (box *Box) MarginBoxBlockSize() dimen.Dimen {
	return box.BorderBox.Size.Block + box.Margin.BlockStartEnd()
}

// MarginBox returns the rectangle including margins.
func (box *Box) MarginBox() dimen.LogicalRect {
	return dimen.LRect(
		box.BorderBox.Start.I-box.Margin.InlineStart,
		box.BorderBox.Start.B-box.Margin.BlockStart,
		box.MarginBoxInlineSize(),
		box.MarginBoxBlockSize(),
	)
}

// ContentBox returns the rectangle inside of border and padding.
func (box *Box) ContentBox() dimen.LogicalRect {
	return dimen.LRect(
		box.BorderBox.Start.I+box.BorderPadding.InlineStart,
		box.BorderBox.Start.B+box.BorderPadding.BlockStart,
		box.BorderBox.Size.Inline-box.BorderPadding.InlineStartEnd(),
		box.BorderBox.Size.Block-box.BorderPadding.BlockStartEnd(),
	)
}

// DebugString returns a textual representation of a box's dimensions.
// Intended for debugging.
func (box *Box) DebugString() string {
	s := fmt.Sprintf("box{\n   border-box=%v\n", box.BorderBox)
	s += fmt.Sprintf("   bp.bstart=%v, bp.iend=%v, bp.bend=%v, bp.istart=%v\n",
		box.BorderPadding.BlockStart, box.BorderPadding.InlineEnd,
		box.BorderPadding.BlockEnd, box.BorderPadding.InlineStart)
	s += fmt.Sprintf("   m.bstart=%v, m.iend=%v, m.bend=%v, m.istart=%v\n",
		box.Margin.BlockStart, box.Margin.InlineEnd,
		box.Margin.BlockEnd, box.Margin.InlineStart)
	s += "}"
	return s
}

// --- Lengths ---------------------------------------------------------------

// Length is a computed CSS length, which is either an absolute dimension or a
// percentage of the inline size of the containing block.
type Length struct {
	Value   dimen.Dimen // absolute value or percentage
	Percent bool
}

// Abs creates an absolute length.
func Abs(d dimen.Dimen) Length {
	return Length{Value: d}
}

// Pcnt creates a percentage length.
func Pcnt(p int) Length {
	return Length{Value: dimen.Dimen(p), Percent: true}
}

// ParseLength parses a length from a CSS-like string, e.g. "12pt" or "10%".
func ParseLength(s string) (Length, error) {
	d, isPcnt, err := dimen.ParseDimen(s)
	if err != nil {
		return Length{}, core.WrapError(err, core.EINVALID, "cannot parse length %q", s)
	}
	return Length{Value: d, Percent: isPcnt}, nil
}

// Resolve returns the absolute value of a length, given a base value for
// percentages.
func (l Length) Resolve(base dimen.Dimen) dimen.Dimen {
	if !l.Percent {
		return l.Value
	}
	return dimen.Dimen(int64(base) * int64(l.Value) / 100)
}

// IsZero is true for a length of 0, either absolute or relative.
func (l Length) IsZero() bool {
	return l.Value == 0
}

func (l Length) String() string {
	if l.Percent {
		return fmt.Sprintf("%d%%", int32(l.Value))
	}
	return l.Value.String()
}

// Spacing holds 4-way values, e.g. for padding or margins.
// Like CSS 4-way values they start at the top (block-start) and travel
// clockwise.
type Spacing [4]Length

// Indices for Spacing.
const (
	BlockStart int = iota
	InlineEnd
	BlockEnd
	InlineStart
)

// Resolve returns the absolute values of all four sides. Percentages refer to
// the inline size of the containing block, even for block-start and block-end.
func (s Spacing) Resolve(cbInlineSize dimen.Dimen) dimen.LogicalSides {
	return dimen.LogicalSides{
		BlockStart:  s[BlockStart].Resolve(cbInlineSize),
		InlineEnd:   s[InlineEnd].Resolve(cbInlineSize),
		BlockEnd:    s[BlockEnd].Resolve(cbInlineSize),
		InlineStart: s[InlineStart].Resolve(cbInlineSize),
	}
}

// UniformSpacing creates spacing with the same length on every side.
func UniformSpacing(l Length) Spacing {
	return Spacing{l, l, l, l}
}
