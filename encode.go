package fetchurl

import "strings"

const upperhex = "0123456789ABCDEF"

// unescaper reverses the escapes for characters that are allowed to appear
// literally in a query component.  Escape only ever emits uppercase hex, but
// the lowercase forms are listed so that the replacement is case-insensitive.
var unescaper = strings.NewReplacer(
	"%40", "@",
	"%3A", ":", "%3a", ":",
	"%24", "$",
	"%2C", ",", "%2c", ",",
	"%20", "+",
	"%5B", "[", "%5b", "[",
	"%5D", "]", "%5d", "]",
)

// unreserved reports whether c is left alone by Escape.  This is the same set
// that a browser's encodeURIComponent leaves unescaped.
func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}

	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}

	return false
}

// Escape percent-encodes every byte of s outside the unreserved set.  Multibyte
// UTF-8 sequences are escaped byte by byte, which yields the usual UTF-8 percent
// encoding.  Invalid UTF-8 is escaped the same way, so this function never fails.
func Escape(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !unreserved(s[i]) {
			n++
		}
	}

	if n == 0 {
		return s
	}

	var o strings.Builder
	o.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			o.WriteByte(c)
		} else {
			o.WriteByte('%')
			o.WriteByte(upperhex[c>>4])
			o.WriteByte(upperhex[c&15])
		}
	}

	return o.String()
}

// Encode is the encoder used for both keys and values of a query string.
// It applies Escape, then renders @ : $ , [ ] literally and a space as '+'.
// Every occurrence is rewritten, not just the first.
func Encode(s string) string {
	return unescaper.Replace(Escape(s))
}
