package codepoint

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// Char is a single code-point of a string, i.e. one Unicode scalar value.
// It remembers the bytes it has been decoded from, so that it may be
// reproduced verbatim, even if the input has been malformed.
//
// Chars are immutable.
type Char struct {
	r   rune
	raw string
}

// ErrInvalidCodePoint is returned for numeric values which are not Unicode
// scalar values, i.e. are beyond U+10FFFF or within the surrogate block.
var ErrInvalidCodePoint = errors.New("codepoint: not a Unicode scalar value")

// FromCode creates a Char from a numeric code-point value.
func FromCode(code uint32) (Char, error) {
	if code > unicode.MaxRune || (code >= 0xD800 && code <= 0xDFFF) {
		return Char{}, fmt.Errorf("%w: %#x", ErrInvalidCodePoint, code)
	}
	r := rune(code)
	return Char{r: r, raw: string(r)}, nil
}

// Encode returns the UTF-8 encoding of a numeric code-point value. Values
// beyond the Basic Multilingual Plane are encoded as a single character, never
// as a pair of surrogate halves.
func Encode(code uint32) (string, error) {
	c, err := FromCode(code)
	if err != nil {
		return "", err
	}
	return c.raw, nil
}

// Rune returns the scalar value of c. Chars stemming from malformed input
// return utf8.RuneError.
func (c Char) Rune() rune {
	return c.r
}

// String returns the bytes c has been decoded from.
func (c Char) String() string {
	return c.raw
}

// Valid is false for Chars stemming from malformed input.
func (c Char) Valid() bool {
	return c.r != utf8.RuneError || c.raw == "\uFFFD"
}

// Wide returns true if c is located outside the Basic Multilingual Plane.
// Wide characters need a surrogate pair, i.e. two code units, in UTF-16.
func (c Char) Wide() bool {
	return c.r > 0xFFFF
}

// UTF16 returns the UTF-16 encoding of c, consisting of either one or two
// code units. Malformed input is reported as U+FFFD.
func (c Char) UTF16() []uint16 {
	if c.Wide() {
		hi, lo := utf16.EncodeRune(c.r)
		return []uint16{uint16(hi), uint16(lo)}
	}
	return []uint16{uint16(c.r)}
}

// UTF16Len returns the length of text measured in UTF-16 code units.
// Characters outside the BMP take two code units, all others take one.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		if r > 0xFFFF {
			count += 2
		} else {
			count++
		}
	}
	return count
}
