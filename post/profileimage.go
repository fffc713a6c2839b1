package post

import "strings"

const sizeMarker = "_normal"

// AlternativeProfileImageURL returns the URL of a profile image in another
// size. u is the URL as delivered by the API, which points to the "normal"
// variant by carrying the marker "_normal" in the last path segment.
// The last occurrence of the marker in the URL's path is replaced by
// "_" + size. Sizes "orig" and "" address the original image and remove
// the marker.
//
// Everything except the path is left untouched, byte by byte, including
// percent-escapes in path and query. If the path does not contain the
// marker, u is returned unchanged.
func AlternativeProfileImageURL(u, size string) string {
	start, end := pathBounds(u)
	path := u[start:end]
	i := strings.LastIndex(path, sizeMarker)
	if i < 0 {
		return u
	}
	i += start
	var b strings.Builder
	b.Grow(len(u) + len(size))
	b.WriteString(u[:i])
	b.WriteString(sizeSuffix(size))
	b.WriteString(u[i+len(sizeMarker):])
	return b.String()
}

func sizeSuffix(size string) string {
	if size == "" || size == "orig" {
		return ""
	}
	return "_" + size
}

// pathBounds locates the path component of a URL reference, i.e. the part
// after scheme and authority and before query and fragment.
func pathBounds(u string) (start, end int) {
	if i := strings.Index(u, "://"); i >= 0 && !strings.ContainsAny(u[:i], "/?#") {
		start = i + 3
		if j := strings.IndexAny(u[start:], "/?#"); j >= 0 {
			start += j
		} else {
			start = len(u)
		}
	}
	end = len(u)
	if j := strings.IndexAny(u[start:], "?#"); j >= 0 {
		end = start + j
	}
	return start, end
}
