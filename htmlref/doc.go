/*
Package htmlref decodes HTML character references in post texts.

Providers deliver the plain text of posts with '<', '>' and '&' escaped as
character references. Decoding is limited to what actually occurs in practice:
numeric references, decimal (&#9834;) and hexadecimal (&#x266A;, &#X266A;), and
six named references:

	&nbsp;  &lt;  &gt;  &amp;  &quot;  &apos;

Any other named reference is left untouched, including its delimiters.
Decoding is a single pass from left to right: text produced by decoding is
never decoded again, so "&amp;amp;" becomes "&amp;".

A reference consists of '&', a name of at least two and at most 32 bytes of
ASCII letters, digits and a leading '#', and a terminating ';'. An ampersand
not starting a reference is copied verbatim.

Numeric references with malformed numerals (e.g., "&#xzz;") or values which are
not Unicode scalar values are errors. DecodeLenient and the option WithLenient
will copy them verbatim instead. Text which does not fit the reference syntax,
such as "&#12 3;", is not a reference at all and is copied without error.

For streaming use, NewDecoder returns a transform.Transformer
(see golang.org/x/text/transform) with identical semantics.
*/
package htmlref

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
