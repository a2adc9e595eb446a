/*
Package frame deals with the boxes and style properties of inline content.

Layout may be understood as the process of placing boxes within larger
boxes. Boxes follow the CSS box model, but are expressed in logical
directions: the inline axis is the direction text progresses on a line,
the block axis is the direction lines stack up.

Package frame holds the parts of this model shared between formatting
contexts: box decorations, flags for fragments of elements, computed style
properties relevant for inline layout, and the float oracle which tells line
boxes where they may go without colliding with floats.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package frame

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'inlay.frame'.
func tracer() tracing.Trace {
	return tracing.Select("inlay.frame")
}
