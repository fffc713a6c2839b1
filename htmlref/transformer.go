package htmlref

import (
	"golang.org/x/text/transform"
)

// Decoder is a Transformer that decodes HTML character references.
// It shares its semantics with Decode. A reference is at most
// maxReferenceLen+2 bytes long, which bounds the look-ahead.
type Decoder struct {
	transform.NopResetter
	lenient bool
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithLenient sets whether malformed numeric references are copied verbatim
// instead of failing the transformation.
func WithLenient(lenient bool) Option {
	return func(d *Decoder) {
		d.lenient = lenient
	}
}

// NewDecoder creates a Transformer for decoding character references.
//
//	r := transform.NewReader(input, htmlref.NewDecoder())
func NewDecoder(opts ...Option) transform.Transformer {
	d := &Decoder{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Transform is part of interface transform.Transformer.
func (d *Decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if c := src[nSrc]; c != '&' {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nSrc++
			nDst++
			continue
		}
		window := src[nSrc:]
		if len(window) > maxReferenceLen+2 {
			window = window[:maxReferenceLen+2]
		}
		name, n, st := scanReference(string(window), atEOF || len(window) == maxReferenceLen+2)
		decoded := "&"
		switch st {
		case refShort:
			return nDst, nSrc, transform.ErrShortSrc
		case refNone:
			n = 1
		case refFound:
			if decoded, err = replacement(name, d.lenient); err != nil {
				CT().Errorf("htmlref: %v", err)
				return nDst, nSrc, err
			}
		}
		if nDst+len(decoded) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], decoded)
		nSrc += n
	}
	return nDst, nSrc, nil
}
