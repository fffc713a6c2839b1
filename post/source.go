package post

import (
	"regexp"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/npillmayer/tweettext/htmlref"
)

// Source is the resolved source field of a post: the name of the client
// application and, if it has one, the URL of its home page.
type Source struct {
	Name string
	Href string
}

// HasHref returns true if the source links to a home page.
func (src Source) HasHref() bool {
	return src.Href != ""
}

func (src Source) String() string {
	if src.HasHref() {
		return src.Name + " <" + src.Href + ">"
	}
	return src.Name
}

var sourceAnchor = regexp.MustCompile(`^<a href="(.+)" rel="nofollow">(.+)</a>$`)

// Posts of a timeline are written with a handful of clients, so the same
// anchors are parsed over and over again.
const (
	sourceExpiration      = 10 * time.Minute
	sourceCleanupInterval = 30 * time.Minute
)

var sourceCache = gocache.New(sourceExpiration, sourceCleanupInterval)

// ParseSource resolves the source field of a post. The field is either a
// plain client name (e.g., "web") or an HTML anchor
//
//	<a href="http://twitter.com/download/iphone" rel="nofollow">Twitter for iPhone</a>
//
// For anchors, name and link are HTML-decoded. Input which does not fit
// either form is returned as the name of a source without link.
func ParseSource(html string) Source {
	if !strings.HasPrefix(html, "<") {
		return Source{Name: html}
	}
	if v, found := sourceCache.Get(html); found {
		if src, ok := v.(Source); ok {
			return src
		}
	}
	src := parseAnchor(html)
	sourceCache.SetDefault(html, src)
	return src
}

func parseAnchor(html string) Source {
	m := sourceAnchor.FindStringSubmatch(html)
	if m == nil {
		CT().Debugf("source is not an anchor: %q", html)
		return Source{Name: html}
	}
	href, err := htmlref.Decode(m[1])
	if err != nil {
		return Source{Name: html}
	}
	name, err := htmlref.Decode(m[2])
	if err != nil {
		return Source{Name: html}
	}
	return Source{Name: name, Href: href}
}
