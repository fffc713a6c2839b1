/*
Package tweettext is about splitting the text of social-media posts into
typed segments.

Description

Posts as delivered by the usual micro-blogging APIs consist of a raw text and
a set of entity annotations: hashtags, cashtags, URLs (including media
attachments) and user mentions. Each entity references the text by a half-open
range of code-point offsets. Rendering a post means walking the text, cutting
it at entity boundaries, and emitting plain text in between. Plain text is
HTML-escaped by the provider, whereas entity tokens are not.

Offsets are counted in Unicode code-points, not in bytes and not in UTF-16
code units. A character outside the Basic Multilingual Plane, such as U+20B9F
'𠮟', counts as one position, even though it occupies four bytes in a Go string
and a surrogate pair in UTF-16 based clients.

Contents

The work is split over a handful of sub-packages:

	codepoint   random access to the code-points of a string
	htmlref     decoding of numeric and a fixed set of named character references
	post        data types of posts, users and direct messages; source attribution
	            and profile-image URL helpers
	segment     the segmenter proper and the extended (display range) view

Base package tweettext provides the tracer shared by all sub-packages and a pool
of byte buffers, which sub-packages borrow while assembling decoded text.

Typical Usage

	seg := segment.NewSegmenter()
	if err := seg.Init(status.Text, status.Entities); err != nil {
	    …
	}
	for seg.Next() {
	    part := seg.Segment()
	    switch part.Kind {
	    case segment.Hashtag: …
	    case segment.Plain:   …
	    }
	}
	if err := seg.Err(); err != nil {
	    …
	}

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tweettext

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
