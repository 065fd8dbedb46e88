package fetchurl

import (
	"regexp"
	"strings"
)

// BuildURL appends the serialized parameters to url.  If there are no
// parameters, or they serialize to the empty string, url is returned unchanged.
//
// Otherwise any fragment is dropped and the query is appended with '?',
// or with '&' when url already has a query.  A trailing '?' or '&' already
// present on url is left alone.
func BuildURL(url string, p Parameters, s Serializer) string {
	if p == nil {
		return url
	}

	query := Serialize(p, s)
	if len(query) == 0 {
		return url
	}

	if i := strings.IndexByte(url, '#'); i >= 0 {
		url = url[:i]
	}

	if strings.IndexByte(url, '?') >= 0 {
		return url + "&" + query
	}

	return url + "?" + query
}

var absoluteURL = regexp.MustCompile(`(?i)^([a-z][a-z\d+\-.]*:)?//`)

// IsAbsoluteURL tests if url starts with a scheme followed by "//", or is
// protocol-relative ("//host/path").  Absolute URLs never have a base URL
// prepended to them.
func IsAbsoluteURL(url string) bool {
	return absoluteURL.MatchString(url)
}

// CombineURL joins base and relative with exactly one '/'.  If relative is
// empty, base is returned as is.
func CombineURL(base, relative string) string {
	if len(relative) == 0 {
		return base
	}

	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(relative, "/")
}

// FullURL computes the final URL for a request.  When baseURL is set and url
// is not absolute, the two are combined.  The parameters are then appended
// with BuildURL.
func FullURL(baseURL, url string, p Parameters, s Serializer) string {
	if len(baseURL) > 0 && !IsAbsoluteURL(url) {
		url = CombineURL(baseURL, url)
	}

	return BuildURL(url, p, s)
}
