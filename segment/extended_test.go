package segment

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tweettext/post"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtendedViewWithoutRange(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	st := loadStatus(t, "status469054246503989248.json")
	ext, err := ExtendedView(st)
	require.NoError(t, err)
	assert.Empty(t, ext.HiddenPrefix)
	assert.Empty(t, ext.HiddenSuffix)
	segs, err := ForStatus(st)
	require.NoError(t, err)
	assert.Equal(t, segs, ext.Text)
}

func TestExtendedViewEmptyText(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	ext, err := ExtendedView(loadStatus(t, "status848569108350226434.json"))
	require.NoError(t, err)
	assert.Len(t, ext.Text, 0)
	require.Len(t, ext.HiddenPrefix, 1)
	assert.Equal(t, "@azyobuzin", ext.HiddenPrefix[0].Raw)
	require.Len(t, ext.HiddenSuffix, 1)
	assert.True(t, ext.HiddenSuffix[0].IsMedia())
	assert.Equal(t, "pic.twitter.com/AbCdEfGhIj", ext.HiddenSuffix[0].Display)
}

func TestExtendedViewOfExtendedTweet(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	ext, err := ExtendedView(loadStatus(t, "status_extended.json"))
	require.NoError(t, err)
	require.Len(t, ext.Text, 2)
	assert.Equal(t, "Hello &amp; welcome ", ext.Text[0].Raw)
	assert.Equal(t, "Hello & welcome ", ext.Text[0].Text)
	assert.Equal(t, 12, ext.Text[0].Start)
	assert.Equal(t, "#golang", ext.Text[1].Text)
	require.Len(t, ext.HiddenPrefix, 2)
	assert.Equal(t, "alice", ext.HiddenPrefix[0].Mention.ScreenName)
	assert.Equal(t, "bob", ext.HiddenPrefix[1].Mention.ScreenName)
	require.Len(t, ext.HiddenSuffix, 1)
	assert.Equal(t, "https://t.co/pic1", ext.HiddenSuffix[0].Raw)
}

func TestExtendedViewTextSelection(t *testing.T) {
	st := &post.Status{Text: "short", FullText: "full &lt;text&gt;"}
	ext, err := ExtendedView(st)
	require.NoError(t, err)
	require.Len(t, ext.Text, 1)
	assert.Equal(t, "full <text>", ext.Text[0].Text)
	//
	// range of the status applies to the extended tweet if it has none
	st = &post.Status{
		Text:             "truncated…",
		DisplayTextRange: []int{5, 9},
		ExtendedTweet:    &post.ExtendedTweet{FullText: "abcd efgh ijkl"},
	}
	ext, err = ExtendedView(st)
	require.NoError(t, err)
	require.Len(t, ext.Text, 1)
	assert.Equal(t, "efgh", ext.Text[0].Text)
}

func TestExtendedViewFallsBackToPostEntities(t *testing.T) {
	st := &post.Status{
		Text: "@a hi #x",
		Entities: &post.Entities{
			Hashtags:     []post.HashtagEntity{{Text: "x", Indices: post.Indices{6, 8}}},
			UserMentions: []post.UserMentionEntity{{ScreenName: "a", Indices: post.Indices{0, 2}}},
		},
		ExtendedTweet: &post.ExtendedTweet{
			FullText:         "@a hi #x",
			DisplayTextRange: []int{3, 8},
		},
	}
	ext, err := ExtendedView(st)
	require.NoError(t, err)
	require.Len(t, ext.Text, 2)
	assert.Equal(t, "hi ", ext.Text[0].Text)
	assert.Equal(t, Hashtag, ext.Text[1].Kind)
	assert.Equal(t, "#x", ext.Text[1].Raw)
	require.Len(t, ext.HiddenPrefix, 1)
	assert.Equal(t, "@a", ext.HiddenPrefix[0].Raw)
	//
	// empty full text of the extended tweet falls back to the post's text
	st.ExtendedTweet.FullText = ""
	ext, err = ExtendedView(st)
	require.NoError(t, err)
	require.Len(t, ext.Text, 2)
	assert.Equal(t, "#x", ext.Text[1].Raw)
}

func TestExtendedViewRangePrecedence(t *testing.T) {
	st := &post.Status{
		Text:             "abcd efgh ijkl",
		DisplayTextRange: []int{0, 4},
		ExtendedTweet: &post.ExtendedTweet{
			FullText:         "abcd efgh ijkl",
			DisplayTextRange: []int{10, 14},
		},
	}
	ext, err := ExtendedView(st)
	require.NoError(t, err)
	require.Len(t, ext.Text, 1)
	assert.Equal(t, "ijkl", ext.Text[0].Text) // range of the extended tweet wins
}

func TestExtendedViewInvalidRange(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	for _, rng := range [][]int{{0}, {0, 2, 4}, {3, 1}, {0, 99}} {
		_, err := ExtendedView(&post.Status{FullText: "some text", DisplayTextRange: rng})
		assert.True(t, errors.Is(err, ErrInvalidWindow), "range %v: %v", rng, err)
	}
}

func TestExtendedViewMalformedReference(t *testing.T) {
	st := &post.Status{FullText: "@x &#xzz;", DisplayTextRange: []int{3, 9}}
	_, err := ExtendedView(st)
	assert.Error(t, err)
	ext, err := ExtendedView(st, WithLenientDecoding(true))
	require.NoError(t, err)
	require.Len(t, ext.Text, 1)
	assert.Equal(t, "&#xzz;", ext.Text[0].Text)
}
