package frame

import "strings"

// ElementFlags tell which part of an element a fragment represents.
// An inline element may be split into several fragments, e.g. when it is broken
// across lines. Decorations at the inline-start side (left border, padding and
// margin for horizontal left-to-right text) are drawn for the first fragment
// only, the inline-end side for the last fragment only.
type ElementFlags uint8

// Flags for fragments of an element.
const (
	NoElementFlags         ElementFlags = 0
	FirstFragmentOfElement ElementFlags = 0x01
	LastFragmentOfElement  ElementFlags = 0x02
)

// WholeElement is set for an element which has not been split.
const WholeElement = FirstFragmentOfElement | LastFragmentOfElement

// Set sets a flag.
func (f *ElementFlags) Set(flag ElementFlags) {
	*f = (*f) | flag
}

// Clear removes a flag.
func (f *ElementFlags) Clear(flag ElementFlags) {
	*f = (*f) &^ flag
}

// Contains checks if all bits of flag are set. Returns false for flag = 0.
func (f ElementFlags) Contains(flag ElementFlags) bool {
	return flag != 0 && f&flag == flag
}

func (f ElementFlags) String() string {
	var s []string
	if f.Contains(FirstFragmentOfElement) {
		s = append(s, "first")
	}
	if f.Contains(LastFragmentOfElement) {
		s = append(s, "last")
	}
	if len(s) == 0 {
		return "-"
	}
	return strings.Join(s, "|")
}

// FragmentFlags are flags for a single fragment, set by flow construction or by
// the line breaker.
type FragmentFlags uint8

// Flags for fragments.
const (
	NoFragmentFlags FragmentFlags = 0
	// The line breaker must not break before this fragment, e.g. for
	// `Foo<span>bar</span>`.
	SuppressLineBreakBefore FragmentFlags = 0x01
	// This fragment is an ellipsis placeholder, synthesized for text-overflow.
	IsEllipsis FragmentFlags = 0x02
)

// Set sets a flag.
func (f *FragmentFlags) Set(flag FragmentFlags) {
	*f = (*f) | flag
}

// Clear removes a flag.
func (f *FragmentFlags) Clear(flag FragmentFlags) {
	*f = (*f) &^ flag
}

// Contains checks if all bits of flag are set. Returns false for flag = 0.
func (f FragmentFlags) Contains(flag FragmentFlags) bool {
	return flag != 0 && f&flag == flag
}
