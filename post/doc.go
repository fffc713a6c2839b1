/*
Package post holds the data types of posts, direct messages and users as
delivered by the REST API (v1.1 JSON format), together with small helpers
operating on them.

The types carry JSON tags and are meant to be decoded with encoding/json.
Only the fields needed for rendering are present. Entity indices are half-open
ranges of code-point offsets into the text the entities belong to.

Besides the data types, package post provides two helpers which do not need
any segmenting: ParseSource resolves the HTML anchor of a post's "source"
field, and AlternativeProfileImageURL derives URLs for the different sizes of
a user's profile image.
*/
package post

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
