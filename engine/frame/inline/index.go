package inline

import (
	"fmt"

	"github.com/npillmayer/inlay/core"
)

// FragmentIndex is the index of a fragment within the fragment sequence of an
// inline flow. It is not interchangeable with indices into other sequences,
// e.g. cluster indices of a text run.
type FragmentIndex int

// noIndex marks an unset fragment index.
const noIndex FragmentIndex = -1

// FragmentRange is a half-open range of fragment indices [Begin, Begin+Length).
type FragmentRange struct {
	Begin  FragmentIndex
	Length FragmentIndex
}

// Range creates a fragment range. It panics for a negative begin or length.
func Range(begin, length FragmentIndex) FragmentRange {
	if begin < 0 || length < 0 {
		panic(core.Error(core.EINTERNAL, "invalid fragment range [%d,+%d)", begin, length))
	}
	return FragmentRange{Begin: begin, Length: length}
}

// End returns the index after the last index of the range.
func (r FragmentRange) End() FragmentIndex {
	return r.Begin + r.Length
}

// IsEmpty is true for a range without any index.
func (r FragmentRange) IsEmpty() bool {
	return r.Length == 0
}

// Contains checks if an index is part of a range.
func (r FragmentRange) Contains(i FragmentIndex) bool {
	return i >= r.Begin && i < r.End()
}

// ExtendBy extends a range at the end.
func (r *FragmentRange) ExtendBy(n FragmentIndex) {
	if r.Length+n < 0 {
		panic(core.Error(core.EINTERNAL, "cannot shrink fragment range %v by %d", *r, -n))
	}
	r.Length += n
}

// ExtendTo moves the end of a range to a given index.
func (r *FragmentRange) ExtendTo(end FragmentIndex) {
	if end < r.Begin {
		panic(core.Error(core.EINTERNAL, "cannot set end of fragment range %v to %d", *r, end))
	}
	r.Length = end - r.Begin
}

// Reset sets begin and length of a range.
func (r *FragmentRange) Reset(begin, length FragmentIndex) {
	*r = Range(begin, length)
}

// Each calls f for every index of a range, in ascending order.
func (r FragmentRange) Each(f func(FragmentIndex)) {
	for i := r.Begin; i < r.End(); i++ {
		f(i)
	}
}

// EachReverse calls f for every index of a range, in descending order.
func (r FragmentRange) EachReverse(f func(FragmentIndex)) {
	for i := r.End() - 1; i >= r.Begin; i-- {
		f(i)
	}
}

func (r FragmentRange) String() string {
	return fmt.Sprintf("[%d,%d)", r.Begin, r.End())
}
