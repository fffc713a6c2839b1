/*
Package codepoint provides random access to the code-points of a string.

Entity annotations of posts address their text by code-point offsets.
Go strings are sequences of UTF-8 bytes, and clients implemented on top of
UTF-16 see characters outside the Basic Multilingual Plane as surrogate pairs.
Neither bytes nor UTF-16 code units are what the offsets count. A codepoint.String
is a read-only view on a Go string, which maps every code-point index to a byte
range of the underlying string. Reconstructing any run of consecutive
code-points is then a matter of slicing.

	s := codepoint.FromString("𠮷野家 #𠮷野家")
	fmt.Println(s.Len())         // => 8
	fmt.Println(s.Slice(4, 8))   // => #𠮷野家
	fmt.Println(s.Nth(0).Wide()) // => true

Malformed input is not an error. Every byte which is not part of a valid
UTF-8 sequence becomes a code-point of its own, carrying utf8.RuneError, and
is reproduced unchanged by Slice. This mirrors the treatment of lone
surrogates in UTF-16 based implementations.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package codepoint

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
