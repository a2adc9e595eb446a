/*
Package text holds shaped text runs for inline layout.

A Run is the result of shaping a piece of text with a single font at a single
bidi embedding level. It is immutable: many inline fragments may reference
the same run, each one covering a span of the run's clusters. Operations which
would have to change a run, e.g. adding extra word spacing for justification,
create a new version of it. Every version remembers the run it has been derived
from, so fragments may find out if they originate from the same source run.

Clusters are the smallest unit of text the line breaker knows about: a
cluster is never broken across lines. Clusters carry flags for white space,
word separators (expansion opportunities for justification), and line
break opportunities.

_________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package text

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'inlay.text'.
func tracer() tracing.Trace {
	return tracing.Select("inlay.text")
}
