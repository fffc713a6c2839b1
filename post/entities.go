package post

// Indices is a half-open range [start, end) of code-point offsets.
type Indices [2]int

// Start returns the offset of the first code-point covered.
func (ix Indices) Start() int {
	return ix[0]
}

// End returns the offset after the last code-point covered.
func (ix Indices) End() int {
	return ix[1]
}

// Entities is the set of entity annotations of a text. Every list is
// optional and indexed independently of the others.
type Entities struct {
	Hashtags     []HashtagEntity     `json:"hashtags,omitempty"`
	Symbols      []CashtagEntity     `json:"symbols,omitempty"`
	URLs         []URLEntity         `json:"urls,omitempty"`
	UserMentions []UserMentionEntity `json:"user_mentions,omitempty"`
	Media        []MediaEntity       `json:"media,omitempty"`
}

// IsEmpty returns true if e is nil or does not contain any entity.
func (e *Entities) IsEmpty() bool {
	return e == nil || len(e.Hashtags)+len(e.Symbols)+len(e.URLs)+len(e.UserMentions)+len(e.Media) == 0
}

// HashtagEntity is a hashtag, without the leading '#'.
type HashtagEntity struct {
	Indices Indices `json:"indices"`
	Text    string  `json:"text"`
}

// CashtagEntity is a cashtag (symbol), without the leading '$'.
type CashtagEntity struct {
	Indices Indices `json:"indices"`
	Text    string  `json:"text"`
}

// URLEntity is a link. URL is the shortened link as it appears in the text,
// DisplayURL the text to show instead.
type URLEntity struct {
	Indices     Indices `json:"indices"`
	URL         string  `json:"url"`
	DisplayURL  string  `json:"display_url"`
	ExpandedURL string  `json:"expanded_url"`
}

// MediaEntity is an attached photo, video or animated GIF. Within the text it
// is represented by a link, like a URLEntity.
type MediaEntity struct {
	URLEntity
	ID            int64  `json:"id"`
	IDStr         string `json:"id_str"`
	MediaURL      string `json:"media_url"`
	MediaURLHTTPS string `json:"media_url_https"`
	Type          string `json:"type"`
}

// UserMentionEntity is a mention of a user, without the leading '@'.
type UserMentionEntity struct {
	Indices    Indices `json:"indices"`
	ID         int64   `json:"id"`
	IDStr      string  `json:"id_str"`
	Name       string  `json:"name"`
	ScreenName string  `json:"screen_name"`
}
