package tag

import (
	"net/url"
	"strings"
)

// Format canonicalizes a clan or player tag: a leading '#' is added when
// missing and the result is upper-cased. Pure function, never fails.
func Format(raw string) string {
	if !strings.HasPrefix(raw, "#") {
		raw = "#" + raw
	}
	return strings.ToUpper(raw)
}

// PathEscape formats the tag and percent-encodes it for use as a single
// URL path segment. Everything outside the unreserved set is encoded, so '#'
// becomes "%23" and a space becomes "%20".
func PathEscape(raw string) string {
	return strings.ReplaceAll(url.QueryEscape(Format(raw)), "+", "%20")
}
