package codepoint

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// String is a read-only sequence of code-points over a Go string.
//
// Indexing a string is an operation with runtime complexity O(N); access to
// single code-points and slicing is O(1) afterwards.
type String interface {
	Len() int                    // length of string in code-points
	Nth(int) Char                // return nth code-point
	Slice(start, end int) string // substring for code-points [start, end)
	String() string              // the underlying Go string
	UTF16Len() int               // length of string in UTF-16 code units
	ByteOffset(n int) int        // byte position of code-point n, 0 <= n <= Len()
}

// FromString creates a code-point string from a Go string.
//
// Short strings, which are the common case for posts, use a compact offset
// table. There is no upper limit for the length of s.
func FromString(s string) String {
	if len(s) < math.MaxUint16 {
		return makeShortString(s)
	}
	CT().Debugf("codepoint: indexing long string of %d bytes", len(s))
	return makeLongString(s)
}

// --- Short version ---------------------------------------------------------

type shortString struct {
	content string
	breaks  []uint16
	wide    int // number of wide code-points
}

func makeShortString(s string) *shortString {
	cstr := &shortString{content: s}
	cstr.breaks = make([]uint16, 1, len(s)+1)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r > 0xFFFF {
			cstr.wide++
		}
		i += size
		cstr.breaks = append(cstr.breaks, uint16(i))
	}
	return cstr
}

func (cstr *shortString) Len() int {
	return len(cstr.breaks) - 1
}

func (cstr *shortString) Nth(n int) Char {
	if n < 0 || n >= cstr.Len() {
		panic(fmt.Sprintf("code-point string index out of bounds, [%d] in [0:%d]",
			n, cstr.Len()))
	}
	return makeChar(cstr.content[cstr.breaks[n]:cstr.breaks[n+1]])
}

func (cstr *shortString) Slice(start, end int) string {
	checkSlice(start, end, cstr.Len())
	return cstr.content[cstr.breaks[start]:cstr.breaks[end]]
}

func (cstr *shortString) ByteOffset(n int) int {
	return int(cstr.breaks[n])
}

func (cstr *shortString) String() string {
	return cstr.content
}

func (cstr *shortString) UTF16Len() int {
	return cstr.Len() + cstr.wide
}

// --- Long version ----------------------------------------------------------

type longString struct {
	content string
	breaks  []int
	wide    int
}

func makeLongString(s string) *longString {
	cstr := &longString{content: s}
	cstr.breaks = make([]int, 1, len(s)/2+1)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r > 0xFFFF {
			cstr.wide++
		}
		i += size
		cstr.breaks = append(cstr.breaks, i)
	}
	return cstr
}

func (cstr *longString) Len() int {
	return len(cstr.breaks) - 1
}

func (cstr *longString) Nth(n int) Char {
	if n < 0 || n >= cstr.Len() {
		panic(fmt.Sprintf("code-point string index out of bounds, [%d] in [0:%d]",
			n, cstr.Len()))
	}
	return makeChar(cstr.content[cstr.breaks[n]:cstr.breaks[n+1]])
}

func (cstr *longString) Slice(start, end int) string {
	checkSlice(start, end, cstr.Len())
	return cstr.content[cstr.breaks[start]:cstr.breaks[end]]
}

func (cstr *longString) ByteOffset(n int) int {
	return cstr.breaks[n]
}

func (cstr *longString) String() string {
	return cstr.content
}

func (cstr *longString) UTF16Len() int {
	return cstr.Len() + cstr.wide
}

// ---------------------------------------------------------------------------

func makeChar(raw string) Char {
	r, _ := utf8.DecodeRuneInString(raw)
	return Char{r: r, raw: raw}
}

func checkSlice(start, end, l int) {
	if start < 0 || end < start || end > l {
		panic(fmt.Sprintf("code-point string slice out of bounds, [%d:%d] in [0:%d]",
			start, end, l))
	}
}
