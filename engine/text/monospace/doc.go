/*
Package monospace implements a shaper for monospace text.

It is useful for terminal-like output and for testing inline layout without
real fonts.

_________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package monospace

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces with key 'inlay.text'.
func T() tracing.Trace {
	return tracing.Select("inlay.text")
}
