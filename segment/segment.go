package segment

import (
	"errors"
	"fmt"

	"github.com/npillmayer/tweettext/codepoint"
	"github.com/npillmayer/tweettext/htmlref"
	"github.com/npillmayer/tweettext/post"
)

// Segment is a part of a text, either plain text between entities or the
// text of an entity.
//
// For plain segments, Raw is the exact substring of the input text and Text
// is Raw with character references decoded. For entity segments, Raw and
// Text are the entity's canonical and display tokens.
type Segment struct {
	Kind   Kind
	Raw    string
	Text   string
	Entity *Entity // nil for plain segments
	Start  int     // first code-point covered
	End    int     // code-point after the last one covered
}

func (seg Segment) String() string {
	return fmt.Sprintf("%s[%d,%d) %q", seg.Kind, seg.Start, seg.End, seg.Text)
}

// ErrInvalidWindow flags a window which does not fit the text.
// ErrNotInitialized is returned if a segmenter's Next-function is called
// without first setting a text.
var (
	ErrInvalidWindow  = errors.New("segment: invalid window")
	ErrNotInitialized = errors.New("segment: segmenter not initialized; must call Init(...) first")
)

// A Segmenter splits a text into segments, given the entity annotations of
// the text. Segmenter provides an interface similar to bufio.Scanner:
//
//	seg := segment.NewSegmenter()
//	if err := seg.Init(text, entities); err != nil {
//	    …
//	}
//	for seg.Next() {
//	    fmt.Println(seg.Segment().Kind, seg.Text())
//	}
//	if err := seg.Err(); err != nil {
//	    …
//	}
//
// Segments are produced on demand; stopping early does no unnecessary work.
// A Segmenter is not safe for concurrent use.
type Segmenter struct {
	text        codepoint.String
	start, end  int       // window
	entities    []*Entity // entities within window, ordered
	inx         int       // next entity to emit
	pos         int       // start of next segment
	current     Segment   // most recent segment
	lenient     bool      // keep malformed references
	err         error
	initialized bool
}

// Option configures a Segmenter.
type Option func(*Segmenter)

// WithLenientDecoding controls the handling of malformed numeric character
// references in plain text. By default, a malformed reference stops
// segmenting with an error. With lenient decoding, such references are kept
// verbatim.
func WithLenientDecoding(lenient bool) Option {
	return func(s *Segmenter) {
		s.lenient = lenient
	}
}

// NewSegmenter creates a new Segmenter. Before use, clients will have to call
// Init(…) or InitWindow(…).
func NewSegmenter(opts ...Option) *Segmenter {
	s := &Segmenter{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init initializes a segmenter for a text and its entities. ents may be nil.
// Segmenters may be re-initialized at any time.
func (s *Segmenter) Init(text string, ents *post.Entities) error {
	cps := codepoint.FromString(text)
	return s.init(cps, merge(ents), 0, cps.Len())
}

// InitWindow initializes a segmenter for a range [start, end) of code-points
// of a text. Only entities starting within the window take part in
// segmenting.
//
// If the window does not fit the text, InitWindow returns an error wrapping
// ErrInvalidWindow, and the segmenter will not produce any segments.
// An empty window is valid and produces no segments.
func (s *Segmenter) InitWindow(text string, ents *post.Entities, start, end int) error {
	return s.init(codepoint.FromString(text), merge(ents), start, end)
}

func (s *Segmenter) init(text codepoint.String, merged []*Entity, start, end int) error {
	s.text, s.entities = nil, nil
	s.initialized = true
	s.start, s.end = 0, 0
	s.err = nil
	s.Reset()
	if err := checkWindow(text, start, end); err != nil {
		s.setErr(err)
		return err
	}
	s.text = text
	s.start, s.end = start, end
	s.entities = inWindow(merged, start, end)
	s.pos = start
	CT().Debugf("segment: window [%d,%d) of %d code-points, %d entities", start, end,
		text.Len(), len(s.entities))
	return nil
}

func checkWindow(text codepoint.String, start, end int) error {
	n := text.Len()
	switch {
	case start < 0 || start > n:
		return fmt.Errorf("%w: start %d outside of text of length %d", ErrInvalidWindow, start, n)
	case end < start || end > n:
		return fmt.Errorf("%w: [%d,%d) for text of length %d", ErrInvalidWindow, start, end, n)
	}
	return nil
}

// Reset restarts segmenting from the beginning of the window. The segmenter
// will produce the same sequence of segments again.
func (s *Segmenter) Reset() {
	s.inx = 0
	s.pos = s.start
	s.current = Segment{}
	if !errors.Is(s.err, ErrInvalidWindow) {
		s.err = nil
	}
}

// Next advances the Segmenter to the next segment, which will then be
// available through the Segment() or Text() method. It returns false when
// segmenting stops, either by reaching the end of the window or an error.
// After Next() returns false, the Err() method will return any error
// that occurred.
func (s *Segmenter) Next() bool {
	if !s.initialized {
		s.setErr(ErrNotInitialized)
	}
	if s.err != nil || s.text == nil {
		return false
	}
	if s.inx < len(s.entities) {
		e := s.entities[s.inx]
		if s.pos < e.Start {
			return s.plain(s.pos, e.Start)
		}
		s.inx++
		s.pos = e.End
		s.current = Segment{
			Kind:   e.Kind,
			Raw:    e.Raw,
			Text:   e.Display,
			Entity: e,
			Start:  e.Start,
			End:    e.End,
		}
		CT().Debugf("segment: %v", s.current)
		return true
	}
	if s.pos < s.end {
		return s.plain(s.pos, s.end)
	}
	s.current = Segment{}
	return false
}

// plain produces a plain segment for the code-points [from, to).
func (s *Segmenter) plain(from, to int) bool {
	if from < s.start {
		from = s.start
	}
	raw := s.text.Slice(from, to)
	var text string
	if s.lenient {
		text = htmlref.DecodeLenient(raw)
	} else {
		var err error
		if text, err = htmlref.Decode(raw); err != nil {
			CT().Errorf("segment: cannot decode plain text at [%d,%d): %v", from, to, err)
			s.setErr(err)
			s.current = Segment{}
			return false
		}
	}
	s.pos = to
	s.current = Segment{Kind: Plain, Raw: raw, Text: text, Start: from, End: to}
	CT().Debugf("segment: %v", s.current)
	return true
}

// Segment returns the most recent segment generated by a call to Next().
func (s *Segmenter) Segment() Segment {
	return s.current
}

// Text returns the decoded text of the most recent segment generated by a
// call to Next().
func (s *Segmenter) Text() string {
	return s.current.Text
}

// Err returns the first error that was encountered by the Segmenter.
func (s *Segmenter) Err() error {
	return s.err
}

// setErr() records the first error encountered.
func (s *Segmenter) setErr(err error) {
	if s.err == nil {
		s.err = err
	}
}

// --- Convenience functions --------------------------------------------------

// Segments splits a text into segments.
func Segments(text string, ents *post.Entities, opts ...Option) ([]Segment, error) {
	seg := NewSegmenter(opts...)
	if err := seg.Init(text, ents); err != nil {
		return nil, err
	}
	return collect(seg)
}

// SegmentsInWindow splits a range [start, end) of code-points of a text into
// segments. See Segmenter.InitWindow.
func SegmentsInWindow(text string, ents *post.Entities, start, end int, opts ...Option) ([]Segment, error) {
	seg := NewSegmenter(opts...)
	if err := seg.InitWindow(text, ents, start, end); err != nil {
		return nil, err
	}
	return collect(seg)
}

func collect(seg *Segmenter) ([]Segment, error) {
	var segs []Segment
	for seg.Next() {
		segs = append(segs, seg.Segment())
	}
	if err := seg.Err(); err != nil {
		return nil, err
	}
	return segs, nil
}
