/*
Package inline breaks inline content into lines.

The input of inline layout is a flat sequence of fragments, the atomic units of
inline content: slices of shaped text runs, replaced elements (images),
inline-blocks, and placeholders for absolutely positioned boxes. All of them
belong to one block container, the owner of an inline formatting context.

The line breaker consumes the fragments in logical order and fills line after
line, greedily. Text fragments are split at line break opportunities, white
space at the start and end of lines is stripped, and lines are moved or broken
early to avoid collisions with floats. The result is the final sequence of
fragments (reflecting splits) and a list of lines, each one covering a range of
fragments.

After line breaking, fragments are reordered for bidirectional text and
positioned: in the inline direction according to text-align (including
justification), in the block direction according to vertical-align.

Line breaking may be repeated any number of times on the same fragments, e.g.
after the containing block changed its size. Fragments split by a previous run
are merged again before re-breaking, and text truncated for text-overflow is
restored.

Coordinates of fragments and lines are flow-local logical coordinates. Inline
coordinates are measured from the line-left edge of the block container.

_________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package inline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'inlay.inline'.
func tracer() tracing.Trace {
	return tracing.Select("inlay.inline")
}
