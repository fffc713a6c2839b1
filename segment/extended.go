package segment

import (
	"fmt"

	"github.com/npillmayer/tweettext/codepoint"
	"github.com/npillmayer/tweettext/post"
)

// ForStatus splits the text of a post into segments. This is the classic
// view of a post: Text and Entities, with no display range applied.
// See ExtendedView for posts in extended mode.
func ForStatus(status *post.Status, opts ...Option) ([]Segment, error) {
	return Segments(status.Text, status.Entities, opts...)
}

// ForDirectMessage splits the text of a direct message into segments.
func ForDirectMessage(dm *post.DirectMessage, opts ...Option) ([]Segment, error) {
	return Segments(dm.Text, dm.Entities, opts...)
}

// ForUserDescription splits the profile description of a user into segments.
func ForUserDescription(user *post.User, opts ...Option) ([]Segment, error) {
	var ents *post.Entities
	if user.Entities != nil {
		ents = user.Entities.Description
	}
	return Segments(user.Description, ents, opts...)
}

// Extended is the display view of a post in extended mode. Text holds the
// segments of the display range. Mentions of users replied to, which
// precede the display range, are listed in HiddenPrefix. Links to
// attachments following the display range are listed in HiddenSuffix.
type Extended struct {
	Text         []Segment
	HiddenPrefix []Entity
	HiddenSuffix []Entity
}

// ExtendedView creates the display view of a post.
//
// The text is taken from the extended tweet, if present, otherwise from
// FullText, and from Text as a last resort. Entities and display range of
// the extended tweet replace those of the post only where present. If there
// is no display range, the whole text is segmented and both hidden lists
// are empty.
func ExtendedView(status *post.Status, opts ...Option) (*Extended, error) {
	text, ents, rng := status.Text, status.Entities, status.DisplayTextRange
	if status.FullText != "" {
		text = status.FullText
	}
	if et := status.ExtendedTweet; et != nil {
		if et.FullText != "" {
			text = et.FullText
		}
		if et.Entities != nil {
			ents = et.Entities
		}
		if len(et.DisplayTextRange) > 0 {
			rng = et.DisplayTextRange
		}
	}
	ext := &Extended{}
	if len(rng) == 0 {
		segs, err := Segments(text, ents, opts...)
		if err != nil {
			return nil, err
		}
		ext.Text = segs
		return ext, nil
	}
	if len(rng) != 2 {
		return nil, fmt.Errorf("%w: display range %v", ErrInvalidWindow, rng)
	}
	start, end := rng[0], rng[1]
	merged := merge(ents)
	seg := NewSegmenter(opts...)
	if err := seg.init(codepoint.FromString(text), merged, start, end); err != nil {
		return nil, err
	}
	segs, err := collect(seg)
	if err != nil {
		return nil, err
	}
	ext.Text = segs
	for _, e := range merged {
		switch {
		case e.Kind == UserMention && e.Start < start:
			ext.HiddenPrefix = append(ext.HiddenPrefix, *e)
		case e.Kind == URL && e.Start >= end:
			ext.HiddenSuffix = append(ext.HiddenSuffix, *e)
		}
	}
	CT().Debugf("segment: extended view with %d segments, %d hidden mentions, %d hidden links",
		len(ext.Text), len(ext.HiddenPrefix), len(ext.HiddenSuffix))
	return ext, nil
}
