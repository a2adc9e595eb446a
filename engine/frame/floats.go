package frame

import (
	"fmt"
	"strings"

	"github.com/npillmayer/inlay/core/dimen"
)

// FloatSide tells to which side of a containing block a float sticks.
type FloatSide uint8

// Sides for floats.
const (
	LeftFloat FloatSide = iota
	RightFloat
)

func (side FloatSide) String() string {
	if side == RightFloat {
		return "right"
	}
	return "left"
}

// Float is a floating box, given by its margin box.
type Float struct {
	Bounds dimen.LogicalRect
	Side   FloatSide
}

func (f Float) String() string {
	return fmt.Sprintf("float-%s%v", f.Side, f.Bounds)
}

// Floats is an immutable snapshot of the floats a formatting context has to
// flow around. Floats are passed around by value; operations which would change
// a snapshot return a new one. This allows handing each child formatting
// context its own snapshot, without any need for synchronization.
//
// The zero value is a valid, empty snapshot.
type Floats struct {
	list   []Float            // in coordinates of the originating context
	offset dimen.LogicalSize // translation to the current context
}

// PlacementInfo is a request for placing a box between floats.
type PlacementInfo struct {
	Size          dimen.LogicalSize // size of the box to place
	Ceiling       dimen.Dimen       // the box may not be placed above this block position
	MaxInlineSize dimen.Dimen       // inline size of the containing block
	Side          FloatSide         // edge of the free band the box sticks to
}

// Len returns the number of floats in a snapshot.
func (fl Floats) Len() int {
	return len(fl.list)
}

// Floats returns all floats of a snapshot, in current coordinates.
func (fl Floats) Floats() []Float {
	floats := make([]Float, len(fl.list))
	for i, f := range fl.list {
		floats[i] = fl.translated(f)
	}
	return floats
}

func (fl Floats) translated(f Float) Float {
	f.Bounds = f.Bounds.Translate(fl.offset)
	return f
}

// Add returns a new snapshot with an additional float. The float's bounds
// are given in current coordinates.
func (fl Floats) Add(f Float) Floats {
	list := make([]Float, len(fl.list), len(fl.list)+1)
	copy(list, fl.list)
	f.Bounds = f.Bounds.Translate(dimen.LogicalSize{
		Inline: -fl.offset.Inline,
		Block:  -fl.offset.Block,
	})
	return Floats{list: append(list, f), offset: fl.offset}
}

// Translate returns a snapshot with the coordinate system shifted by delta.
// It is used to hand floats over between a formatting context and its children,
// which have their own origin.
func (fl Floats) Translate(delta dimen.LogicalSize) Floats {
	return Floats{
		list: fl.list,
		offset: dimen.LogicalSize{
			Inline: fl.offset.Inline + delta.Inline,
			Block:  fl.offset.Block + delta.Block,
		},
	}
}

// Place finds a position for a box at or below info.Ceiling, where the box does
// not collide with any float. It returns the position together with the
// largest extent available there (the "green zone"): the inline size of the
// free band, and the block distance to the next float intruding into the band.
// If no float limits the band in the block direction, the block size is
// dimen.Infinity.
//
// If no band is wide enough, the box is placed below all floats overlapping its
// way down, and the green zone may be smaller than the requested size.
//
// Place is deterministic and monotonic: raising the ceiling never moves the
// resulting position upwards.
func (fl Floats) Place(info PlacementInfo) dimen.LogicalRect {
	b := info.Ceiling
	height := dimen.Max(info.Size.Block, 1)
	for {
		left, right, next, overlaps := fl.band(b, height, info.MaxInlineSize)
		if !overlaps || right-left >= info.Size.Inline {
			avail := fl.availableBlockSize(b, height, left, right)
			tracer().Debugf("floats: placed %v at b=%v, band=[%v,%v), block avail=%v",
				info.Size, b, left, right, avail)
			if info.Side == RightFloat {
				start := dimen.Max(left, right-info.Size.Inline)
				return dimen.LRect(start, b, right-start, avail)
			}
			return dimen.LRect(left, b, dimen.Max(0, right-left), avail)
		}
		b = next
	}
}

// band returns the free inline interval [left,right) for the block interval
// [b,b+height), the lowest bottom edge of all floats overlapping it, and a flag
// indicating if any float overlaps it.
func (fl Floats) band(b, height, maxInline dimen.Dimen) (left, right, next dimen.Dimen, overlaps bool) {
	left, right, next = 0, maxInline, dimen.Infinity
	for _, f := range fl.list {
		r := f.Bounds.Translate(fl.offset)
		if r.Size.Block <= 0 || r.Start.B >= b+height || r.BlockEnd() <= b {
			continue
		}
		overlaps = true
		next = dimen.Min(next, r.BlockEnd())
		if f.Side == LeftFloat {
			left = dimen.Max(left, r.InlineEnd())
		} else {
			right = dimen.Min(right, r.Start.I)
		}
	}
	return
}

// availableBlockSize returns the distance from b to the nearest float below the
// band [b,b+height) which intrudes into the inline interval [left,right).
func (fl Floats) availableBlockSize(b, height, left, right dimen.Dimen) dimen.Dimen {
	avail := dimen.Infinity
	for _, f := range fl.list {
		r := f.Bounds.Translate(fl.offset)
		if r.Size.Block <= 0 || r.Start.B < b+height {
			continue
		}
		if r.InlineEnd() > left && r.Start.I < right {
			avail = dimen.Min(avail, r.Start.B-b)
		}
	}
	return avail
}

// AddFloat places a new float of a given margin box size at or below a
// ceiling, sticking to the given side of the containing block. It returns the
// new snapshot and the float's bounds.
func (fl Floats) AddFloat(size dimen.LogicalSize, ceiling, maxInline dimen.Dimen,
	side FloatSide) (Floats, dimen.LogicalRect) {
	//
	place := fl.Place(PlacementInfo{
		Size:          size,
		Ceiling:       ceiling,
		MaxInlineSize: maxInline,
		Side:          side,
	})
	bounds := dimen.LRect(place.Start.I, place.Start.B, size.Inline, size.Block)
	if side == RightFloat {
		bounds.Start.I = place.InlineEnd() - size.Inline
	}
	return fl.Add(Float{Bounds: bounds, Side: side}), bounds
}

func (fl Floats) String() string {
	var b strings.Builder
	b.WriteString("floats{")
	for i, f := range fl.Floats() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.String())
	}
	b.WriteString("}")
	return b.String()
}
