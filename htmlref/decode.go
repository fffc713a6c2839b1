package htmlref

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/tweettext"
	"github.com/npillmayer/tweettext/codepoint"
)

// ErrMalformedReference flags a numeric character reference which cannot be
// decoded.
var ErrMalformedReference = errors.New("htmlref: malformed numeric character reference")

// maxReferenceLen is the maximum length of a reference name, excluding
// delimiters.
const maxReferenceLen = 32

const minReferenceLen = 2

var namedReferences = map[string]string{
	"nbsp": "\u00a0",
	"lt":   "<",
	"gt":   ">",
	"amp":  "&",
	"quot": "\"",
	"apos": "'",
}

// Decode decodes character references in s. If s does not contain any
// ampersand, s is returned unchanged.
//
// Decode returns an error wrapping ErrMalformedReference if a numeric
// reference is not well-formed.
func Decode(s string) (string, error) {
	return decode(s, false)
}

// DecodeLenient decodes character references in s, copying malformed numeric
// references verbatim.
func DecodeLenient(s string) string {
	d, _ := decode(s, true)
	return d
}

// MustDecode is like Decode, but panics if s contains a malformed reference.
// It is intended for use with known-good input.
func MustDecode(s string) string {
	d, err := Decode(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decode(s string, lenient bool) (string, error) {
	if strings.IndexByte(s, '&') < 0 {
		return s, nil
	}
	buf := tweettext.BorrowBuffer()
	defer tweettext.ReturnBuffer(buf)
	buf.Grow(len(s))
	for i := 0; i < len(s); {
		k := strings.IndexByte(s[i:], '&')
		if k < 0 {
			buf.WriteString(s[i:])
			break
		}
		buf.WriteString(s[i : i+k])
		i += k
		name, n, st := scanReference(s[i:], true)
		if st != refFound {
			buf.WriteByte('&')
			i++
			continue
		}
		r, err := replacement(name, lenient)
		if err != nil {
			CT().Errorf("htmlref: %v", err)
			return "", err
		}
		buf.WriteString(r)
		i += n
	}
	return buf.String(), nil
}

// --- Reference scanning ----------------------------------------------------

type scanStatus int8

const (
	refNone  scanStatus = iota // no reference at this position
	refFound                   // complete reference
	refShort                   // need more input to decide
)

// scanReference checks if s, which starts with '&', starts with a character
// reference. It returns the reference name and the length of the reference
// including delimiters.
func scanReference(s string, atEOF bool) (string, int, scanStatus) {
	for j := 1; j < len(s); j++ {
		b := s[j]
		if b == ';' {
			if j-1 < minReferenceLen {
				return "", 0, refNone
			}
			return s[1:j], j + 1, refFound
		}
		if j > maxReferenceLen || !isNameByte(b, j == 1) {
			return "", 0, refNone
		}
	}
	if atEOF {
		return "", 0, refNone
	}
	return "", 0, refShort
}

func isNameByte(b byte, first bool) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' || '0' <= b && b <= '9' ||
		first && b == '#'
}

// replacement returns the decoded text for a reference name.
func replacement(name string, lenient bool) (string, error) {
	if r, ok := namedReferences[name]; ok {
		return r, nil
	}
	if name[0] != '#' {
		return "&" + name + ";", nil
	}
	digits, base := name[1:], 10
	if digits[0] == 'x' || digits[0] == 'X' {
		digits, base = digits[1:], 16
	}
	r, err := numericReference(digits, base)
	if err != nil {
		if lenient {
			CT().Debugf("htmlref: keeping malformed reference &%s;", name)
			return "&" + name + ";", nil
		}
		return "", fmt.Errorf("%w: &%s; (%v)", ErrMalformedReference, name, err)
	}
	return r, nil
}

func numericReference(digits string, base int) (string, error) {
	code, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return "", err
	}
	return codepoint.Encode(uint32(code))
}
