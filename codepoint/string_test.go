package codepoint

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"pgregory.net/rapid"
)

func TestString(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	input := "Hello World"
	s := FromString(input)
	if s == nil {
		t.Fatalf("resulting code-point string should not be nil")
	}
	x := s.Nth(2)
	if x.String() != "l" {
		t.Errorf("expected s.Nth(2) to be 'l', is %#v", x.String())
	}
	if s.Len() != 11 {
		t.Errorf("expected s.Len() to be 11, is %d", s.Len())
	}
}

func TestChineseString(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	input := "世界"
	s := FromString(input)
	if l := s.Len(); l != 2 {
		t.Errorf("expected \"%s\".Len() to be 2, is %d", input, l)
	}
	x := s.Nth(1)
	t.Logf("number of bytes for 2nd code-point: %d", len(x.String())) // => 3
	if x.String() != "界" || x.Rune() != '界' {
		t.Errorf("expected s.Nth(1) to be '界', is %s", x)
	}
}

func TestEnumerateChars(t *testing.T) {
	s := FromString("𠮷野家こそ至高!")
	expected := []string{"𠮷", "野", "家", "こ", "そ", "至", "高", "!"}
	if s.Len() != len(expected) {
		t.Fatalf("expected %d code-points, have %d", len(expected), s.Len())
	}
	for i, e := range expected {
		if c := s.Nth(i); c.String() != e {
			t.Errorf("expected code-point #%d to be %q, is %q", i, e, c)
		}
	}
	if !s.Nth(0).Wide() {
		t.Errorf("expected %q to be wide", s.Nth(0))
	}
	if s.Nth(1).Wide() {
		t.Errorf("expected %q not to be wide", s.Nth(1))
	}
	if s.UTF16Len() != 9 {
		t.Errorf("expected UTF-16 length of 9, is %d", s.UTF16Len())
	}
}

func TestNonBMPRoundTrip(t *testing.T) {
	input := "a\U00020B9Fb"
	s := FromString(input)
	if s.Len() != 3 {
		t.Fatalf("expected 3 code-points, have %d", s.Len())
	}
	if c := s.Nth(1); c.String() != "\U00020B9F" || !c.Wide() {
		t.Errorf("expected U+20B9F as a single wide code-point, have %q", c)
	}
	u := s.Nth(1).UTF16()
	if len(u) != 2 || u[0] != 0xD842 || u[1] != 0xDF9F {
		t.Errorf("expected surrogate pair D842 DF9F, have %X", u)
	}
	if got := s.Slice(1, 2); got != "\U00020B9F" {
		t.Errorf("expected slice [1:2] to reconstruct U+20B9F, is %q", got)
	}
	if got := s.Slice(0, s.Len()); got != input {
		t.Errorf("expected full slice to reconstruct input, is %q", got)
	}
}

func TestMalformedInputPassesThrough(t *testing.T) {
	input := "a\xffb\xed\xa0\x80c" // 0xff and an encoded lone surrogate
	s := FromString(input)
	if s.Len() != 7 {
		t.Errorf("expected every malformed byte to be a code-point of its own, have %d", s.Len())
	}
	if s.Nth(1).Valid() {
		t.Errorf("expected code-point #1 to be invalid")
	}
	if !s.Nth(0).Valid() {
		t.Errorf("expected code-point #0 to be valid")
	}
	if got := s.Slice(0, s.Len()); got != input {
		t.Errorf("malformed input has not been reproduced verbatim: %q", got)
	}
}

func TestReplacementCharIsValid(t *testing.T) {
	s := FromString("�")
	if !s.Nth(0).Valid() {
		t.Errorf("expected a literal U+FFFD to be valid")
	}
}

func TestLongString(t *testing.T) {
	input := strings.Repeat("て", 30000) + "x" // > 64K bytes
	s := FromString(input)
	if _, ok := s.(*longString); !ok {
		t.Fatalf("expected a long string, have %T", s)
	}
	if s.Len() != 30001 {
		t.Errorf("expected 30001 code-points, have %d", s.Len())
	}
	if s.Nth(30000).String() != "x" {
		t.Errorf("expected last code-point to be 'x', is %q", s.Nth(30000))
	}
	if got := s.Slice(29999, 30001); got != "てx" {
		t.Errorf("expected slice to be \"てx\", is %q", got)
	}
	if s.ByteOffset(30000) != 90000 {
		t.Errorf("expected byte offset of 90000, is %d", s.ByteOffset(30000))
	}
}

func TestIndexOutOfBounds(t *testing.T) {
	s := FromString("abc")
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Nth(3) to panic")
		}
	}()
	_ = s.Nth(3)
}

func TestSliceOutOfBounds(t *testing.T) {
	s := FromString("abc")
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Slice(2, 1) to panic")
		}
	}()
	_ = s.Slice(2, 1)
}

func TestEncode(t *testing.T) {
	if x, err := Encode(97); err != nil || x != "a" {
		t.Errorf("expected Encode(97) to be \"a\", is %q (%v)", x, err)
	}
	if x, err := Encode(0x20B9F); err != nil || x != "𠮟" {
		t.Errorf("expected Encode(0x20B9F) to be \"𠮟\", is %q (%v)", x, err)
	}
	for _, code := range []uint32{0xD800, 0xDFFF, 0x110000} {
		if _, err := Encode(code); !errors.Is(err, ErrInvalidCodePoint) {
			t.Errorf("expected Encode(%#x) to fail with ErrInvalidCodePoint, have %v", code, err)
		}
	}
}

func TestUTF16Len(t *testing.T) {
	for input, l := range map[string]int{
		"":      0,
		"hello": 5,
		"你好":    2,
		"A📌B":   4,
		"🇺🇸":    4,
	} {
		if got := UTF16Len(input); got != l {
			t.Errorf("UTF16Len(%q) = %d, want %d", input, got, l)
		}
		if got := FromString(input).UTF16Len(); got != l {
			t.Errorf("FromString(%q).UTF16Len() = %d, want %d", input, got, l)
		}
	}
}

func TestSliceReconstructsSubstrings(t *testing.T) {
	alphabet := []rune{'a', ' ', '#', '&', ';', 'て', '界', '𠮷', '📌'}
	rapid.Check(t, func(t *rapid.T) {
		runes := rapid.SliceOf(rapid.RuneFrom(alphabet)).Draw(t, "runes")
		input := string(runes)
		s := FromString(input)
		if s.Len() != len(runes) {
			t.Fatalf("expected %d code-points, have %d", len(runes), s.Len())
		}
		start := rapid.IntRange(0, len(runes)).Draw(t, "start")
		end := rapid.IntRange(start, len(runes)).Draw(t, "end")
		if got, want := s.Slice(start, end), string(runes[start:end]); got != want {
			t.Fatalf("Slice(%d, %d) = %q, want %q", start, end, got, want)
		}
		var sb strings.Builder
		for i := 0; i < s.Len(); i++ {
			sb.WriteString(s.Nth(i).String())
		}
		if sb.String() != input {
			t.Fatalf("concatenated code-points %q differ from input %q", sb.String(), input)
		}
	})
}
