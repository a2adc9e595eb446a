package dimen

import "fmt"

// Logical geometry is expressed in terms of an inline axis (the direction text
// progresses on a line) and a block axis (the direction lines stack).
// For horizontal writing modes the inline axis corresponds to X and the block
// axis corresponds to Y.

// LogicalSize is an extent in the inline and block directions.
type LogicalSize struct {
	Inline, Block Dimen
}

func (sz LogicalSize) String() string {
	return fmt.Sprintf("(i=%v,b=%v)", sz.Inline, sz.Block)
}

// LogicalPoint is a position in logical coordinates.
type LogicalPoint struct {
	I, B Dimen
}

// Add returns p shifted by an offset.
func (p LogicalPoint) Add(offset LogicalSize) LogicalPoint {
	return LogicalPoint{I: p.I + offset.Inline, B: p.B + offset.Block}
}

// LogicalRect is a rectangle in logical coordinates, given by its
// block-start/inline-start corner and its size.
type LogicalRect struct {
	Start LogicalPoint
	Size  LogicalSize
}

// LRect creates a logical rectangle.
func LRect(i, b, inline, block Dimen) LogicalRect {
	return LogicalRect{
		Start: LogicalPoint{I: i, B: b},
		Size:  LogicalSize{Inline: inline, Block: block},
	}
}

// InlineEnd returns the inline coordinate of the inline-end edge.
func (r LogicalRect) InlineEnd() Dimen {
	return r.Start.I + r.Size.Inline
}

// BlockEnd returns the block coordinate of the block-end edge.
func (r LogicalRect) BlockEnd() Dimen {
	return r.Start.B + r.Size.Block
}

// Translate returns r shifted by an offset.
func (r LogicalRect) Translate(offset LogicalSize) LogicalRect {
	r.Start = r.Start.Add(offset)
	return r
}

// Physical converts a logical rectangle to a rectangle on the page,
// assuming a horizontal writing mode.
func (r LogicalRect) Physical() Rect {
	return Rect{
		TopL: Point{X: r.Start.I, Y: r.Start.B},
		BotR: Point{X: r.InlineEnd(), Y: r.BlockEnd()},
	}
}

func (r LogicalRect) String() string {
	return fmt.Sprintf("[%v,%v %v]", r.Start.I, r.Start.B, r.Size)
}

// LogicalSides holds a value for each of the four sides of a box, e.g. margins.
// Sides start at block-start and travel clockwise, as do CSS 4-way values.
type LogicalSides struct {
	BlockStart, InlineEnd, BlockEnd, InlineStart Dimen
}

// InlineStartEnd returns the sum of inline-start and inline-end values.
func (s LogicalSides) InlineStartEnd() Dimen {
	return s.InlineStart + s.InlineEnd
}

// BlockStartEnd returns the sum of block-start and block-end values.
func (s LogicalSides) BlockStartEnd() Dimen {
	return s.BlockStart + s.BlockEnd
}

// Add returns the side-wise sum of two sets of sides.
func (s LogicalSides) Add(other LogicalSides) LogicalSides {
	return LogicalSides{
		BlockStart:  s.BlockStart + other.BlockStart,
		InlineEnd:   s.InlineEnd + other.InlineEnd,
		BlockEnd:    s.BlockEnd + other.BlockEnd,
		InlineStart: s.InlineStart + other.InlineStart,
	}
}
