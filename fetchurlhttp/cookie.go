package fetchurlhttp

import (
	"net/http"
	"net/url"
	"strings"
)

// CookieReader is the source of cookie values, such as the XSRF token.
type CookieReader interface {
	// Read returns the decoded value of the named cookie.  If no such
	// cookie exists, this method returns false.
	Read(name string) (string, bool)
}

// CookieReaderFunc is a function type that implements CookieReader.
type CookieReaderFunc func(string) (string, bool)

// Read implements CookieReader.
func (crf CookieReaderFunc) Read(name string) (string, bool) {
	return crf(name)
}

// decodeCookieValue decodes percent-escapes in a cookie value.  A value
// that is not validly escaped is returned as is.
func decodeCookieValue(v string) string {
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}

	return v
}

// CookieString is a CookieReader over a cookie string in the same format as
// a browser's document.cookie, e.g. "a=1; XSRF-TOKEN=abc".  The first cookie
// with a matching name wins.
type CookieString string

// Read implements CookieReader.
func (cs CookieString) Read(name string) (string, bool) {
	for _, pair := range strings.Split(string(cs), ";") {
		key, value, found := strings.Cut(strings.TrimLeft(pair, " \t"), "=")
		if found && key == name {
			return decodeCookieValue(value), true
		}
	}

	return "", false
}

// JarCookies is a CookieReader over the cookies an http.CookieJar holds for a URL,
// typically the page location.
type JarCookies struct {
	Jar http.CookieJar
	URL *url.URL
}

// Read implements CookieReader.
func (jc JarCookies) Read(name string) (string, bool) {
	if jc.Jar == nil || jc.URL == nil {
		return "", false
	}

	for _, c := range jc.Jar.Cookies(jc.URL) {
		if c.Name == name {
			return decodeCookieValue(c.Value), true
		}
	}

	return "", false
}
