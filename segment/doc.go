/*
Package segment splits the text of a post into typed segments.

Entity annotations of a post come in independent lists: hashtags, cashtags
(symbols), URLs, media and user mentions. Segmenting merges these lists,
orders the entities by their position in the text, and walks the text once,
emitting an entity segment for every entity and a plain segment for every run
of text in between. Plain text is delivered with HTML character references
(see package htmlref); a plain segment holds both the raw text and the
decoded text. Entity segments are emitted with their canonical tokens and are
never decoded.

Typical Usage

Segmenter provides an interface similar to bufio.Scanner.

	seg := segment.NewSegmenter()
	if err := seg.Init(status.Text, status.Entities); err != nil {
	    …
	}
	for seg.Next() {
	    s := seg.Segment()
	    switch s.Kind {
	    case segment.URL:
	        fmt.Printf("<a href=%q>%s</a>", s.Entity.URL.ExpandedURL, s.Text)
	    default:
	        fmt.Print(s.Text)
	    }
	}

For posts in extended mode, ExtendedView applies the display range of a
post, separating reply mentions and attachment links from the text to show.

Positions

Offsets are counted in code-points. Segmenting may be restricted to a
window [start, end) of code-points; entities starting outside the window
are ignored, while the end of an entity is not checked. If entities overlap,
the later one starts where it starts, and no text between them is emitted.
Entities starting at the same position are emitted in the order hashtags,
cashtags, URLs, media, mentions.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package segment

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
