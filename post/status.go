package post

// Status is a post.
//
// Depending on the request mode, the text of a post is found in different
// places: Text for compatibility mode, FullText for extended mode, and
// ExtendedTweet.FullText for streamed posts exceeding the classic length.
// DisplayTextRange, if present, is the range of code-points to show to
// the user; leading reply mentions and trailing attachment links lie
// outside of it.
type Status struct {
	ID                   int64          `json:"id"`
	IDStr                string         `json:"id_str"`
	CreatedAt            string         `json:"created_at"`
	Text                 string         `json:"text"`
	FullText             string         `json:"full_text,omitempty"`
	DisplayTextRange     []int          `json:"display_text_range,omitempty"`
	Source               string         `json:"source"`
	Truncated            bool           `json:"truncated"`
	InReplyToScreenName  string         `json:"in_reply_to_screen_name,omitempty"`
	InReplyToStatusIDStr string         `json:"in_reply_to_status_id_str,omitempty"`
	Entities             *Entities      `json:"entities,omitempty"`
	ExtendedTweet        *ExtendedTweet `json:"extended_tweet,omitempty"`
	User                 *User          `json:"user,omitempty"`
	RetweetedStatus      *Status        `json:"retweeted_status,omitempty"`
	QuotedStatus         *Status        `json:"quoted_status,omitempty"`
}

// ExtendedTweet holds the complete text of a streamed post whose Text has
// been truncated.
type ExtendedTweet struct {
	FullText         string    `json:"full_text"`
	DisplayTextRange []int     `json:"display_text_range,omitempty"`
	Entities         *Entities `json:"entities,omitempty"`
}

// ParseSource parses the source field of s.
func (s *Status) ParseSource() Source {
	return ParseSource(s.Source)
}

// DirectMessage is a private message between two users.
type DirectMessage struct {
	ID          int64     `json:"id"`
	IDStr       string    `json:"id_str"`
	CreatedAt   string    `json:"created_at"`
	Text        string    `json:"text"`
	Entities    *Entities `json:"entities,omitempty"`
	Sender      *User     `json:"sender,omitempty"`
	Recipient   *User     `json:"recipient,omitempty"`
	SenderID    int64     `json:"sender_id,omitempty"`
	RecipientID int64     `json:"recipient_id,omitempty"`
}

// User is an account.
type User struct {
	ID                   int64         `json:"id"`
	IDStr                string        `json:"id_str"`
	Name                 string        `json:"name"`
	ScreenName           string        `json:"screen_name"`
	Description          string        `json:"description"`
	URL                  string        `json:"url,omitempty"`
	Entities             *UserEntities `json:"entities,omitempty"`
	ProfileImageURL      string        `json:"profile_image_url"`
	ProfileImageURLHTTPS string        `json:"profile_image_url_https"`
}

// UserEntities are the entities of a user's profile. URL refers to the
// profile's URL field, Description to its description text.
type UserEntities struct {
	URL         *Entities `json:"url,omitempty"`
	Description *Entities `json:"description,omitempty"`
}

// ProfileImage returns the HTTP URL of the user's profile image in a
// given size. Clients usually ask for "normal", which is the size
// delivered by the API; see AlternativeProfileImageURL.
func (u *User) ProfileImage(size string) string {
	return AlternativeProfileImageURL(u.ProfileImageURL, size)
}

// ProfileImageHTTPS returns the HTTPS URL of the user's profile image in a
// given size; see AlternativeProfileImageURL.
func (u *User) ProfileImageHTTPS(size string) string {
	return AlternativeProfileImageURL(u.ProfileImageURLHTTPS, size)
}
