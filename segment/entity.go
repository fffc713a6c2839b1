package segment

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/tweettext/post"
)

// Kind is the type of a segment or entity.
type Kind int8

// Kinds of segments. Plain is used for text between entities only, never for
// an entity.
const (
	Plain Kind = iota
	Hashtag
	Cashtag
	URL
	UserMention
)

func (k Kind) String() string {
	switch k {
	case Plain:
		return "Plain"
	case Hashtag:
		return "Hashtag"
	case Cashtag:
		return "Cashtag"
	case URL:
		return "URL"
	case UserMention:
		return "UserMention"
	}
	return fmt.Sprintf("Kind(%d)", int8(k))
}

// Entity is an entity annotation of a text, unified over the different
// entity lists of post.Entities. Depending on Kind, exactly one of the
// payload fields is set, with the exception of media attachments: these are
// of kind URL and carry both URL and Media.
//
// Raw is the canonical token of the entity as it appears in the text
// ("#tag", "$SYM", the short URL, "@name"). Display is the token to show to
// users; it differs from Raw for URLs only.
type Entity struct {
	Kind    Kind
	Start   int // first code-point covered
	End     int // code-point after the last one covered
	Raw     string
	Display string
	Hashtag *post.HashtagEntity
	Cashtag *post.CashtagEntity
	URL     *post.URLEntity
	Media   *post.MediaEntity
	Mention *post.UserMentionEntity
}

// IsMedia returns true if e is a media attachment.
func (e *Entity) IsMedia() bool {
	return e.Media != nil
}

func (e *Entity) String() string {
	return fmt.Sprintf("%s[%d,%d) %q", e.Kind, e.Start, e.End, e.Raw)
}

func hashtagEntity(h *post.HashtagEntity) *Entity {
	raw := "#" + h.Text
	return &Entity{Kind: Hashtag, Start: h.Indices.Start(), End: h.Indices.End(),
		Raw: raw, Display: raw, Hashtag: h}
}

func cashtagEntity(c *post.CashtagEntity) *Entity {
	raw := "$" + c.Text
	return &Entity{Kind: Cashtag, Start: c.Indices.Start(), End: c.Indices.End(),
		Raw: raw, Display: raw, Cashtag: c}
}

func urlEntity(u *post.URLEntity) *Entity {
	display := u.DisplayURL
	if display == "" {
		display = u.URL
	}
	return &Entity{Kind: URL, Start: u.Indices.Start(), End: u.Indices.End(),
		Raw: u.URL, Display: display, URL: u}
}

func mediaEntity(m *post.MediaEntity) *Entity {
	e := urlEntity(&m.URLEntity)
	e.Media = m
	return e
}

func mentionEntity(m *post.UserMentionEntity) *Entity {
	raw := "@" + m.ScreenName
	return &Entity{Kind: UserMention, Start: m.Indices.Start(), End: m.Indices.End(),
		Raw: raw, Display: raw, Mention: m}
}

// --- Merging entity lists --------------------------------------------------

// mergeKey orders entities by start offset. Entities starting at the same
// offset keep the order in which they have been merged.
type mergeKey struct {
	start int
	seq   int
}

func byPosition(a, b interface{}) int {
	k1, k2 := a.(mergeKey), b.(mergeKey)
	if c := utils.IntComparator(k1.start, k2.start); c != 0 {
		return c
	}
	return utils.IntComparator(k1.seq, k2.seq)
}

// merge unifies the entity lists of ents into a single list, ordered by
// start offset. Lists are merged in the order hashtags, cashtags, URLs,
// media, mentions. Direct messages report attachments both as URL and as
// media; a media entity starting at the same offset as a URL entity is
// therefore dropped.
func merge(ents *post.Entities) []*Entity {
	if ents == nil {
		return nil
	}
	tree := treemap.NewWith(byPosition)
	seq := 0
	put := func(e *Entity) {
		tree.Put(mergeKey{start: e.Start, seq: seq}, e)
		seq++
	}
	for i := range ents.Hashtags {
		put(hashtagEntity(&ents.Hashtags[i]))
	}
	for i := range ents.Symbols {
		put(cashtagEntity(&ents.Symbols[i]))
	}
	urlStarts := hashset.New()
	for i := range ents.URLs {
		urlStarts.Add(ents.URLs[i].Indices.Start())
		put(urlEntity(&ents.URLs[i]))
	}
	for i := range ents.Media {
		if urlStarts.Contains(ents.Media[i].Indices.Start()) {
			CT().Debugf("segment: dropping media %q duplicating a URL", ents.Media[i].URL)
			continue
		}
		put(mediaEntity(&ents.Media[i]))
	}
	for i := range ents.UserMentions {
		put(mentionEntity(&ents.UserMentions[i]))
	}
	merged := make([]*Entity, 0, tree.Size())
	for _, v := range tree.Values() {
		merged = append(merged, v.(*Entity))
	}
	return merged
}

// inWindow selects the entities starting within [start, end). The end of an
// entity is not checked against the window.
func inWindow(merged []*Entity, start, end int) []*Entity {
	var sel []*Entity
	for _, e := range merged {
		if e.Start >= start && e.Start < end {
			sel = append(sel, e)
		}
	}
	return sel
}
