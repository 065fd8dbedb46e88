package fetchurlhttp

import "net/http"

// emptyHeader is an internal singleton representing a blank Header
var emptyHeader = Header{}

// Header is an immutable set of default request headers.  Every request
// sent through AddRequest gets these headers, in addition to its own.
//
// All header keys are stored internally as canonicalized values.
type Header struct {
	h http.Header
}

// NewHeader makes a deep copy of the given source with each
// key filtered through http.CanonicalHeaderKey.  Empty keys and keys
// with no values are dropped.
func NewHeader(src http.Header) Header {
	if len(src) > 0 {
		cleaned := make(http.Header, len(src))
		for key, values := range src {
			if len(key) > 0 && len(values) > 0 {
				key = http.CanonicalHeaderKey(key)
				cleaned[key] = append(cleaned[key], values...)
			}
		}

		if len(cleaned) > 0 {
			return Header{h: cleaned}
		}
	}

	return emptyHeader
}

// NewHeaderFromMap is a simpler version of NewHeader for configuration,
// where each header has exactly one value.
func NewHeaderFromMap(src map[string]string) Header {
	if len(src) > 0 {
		cleaned := make(http.Header, len(src))
		for key, value := range src {
			if len(key) > 0 {
				key = http.CanonicalHeaderKey(key)
				cleaned[key] = []string{value}
			}
		}

		if len(cleaned) > 0 {
			return Header{h: cleaned}
		}
	}

	return emptyHeader
}

// Len returns the count of keys in this header
func (h Header) Len() int {
	return len(h.h)
}

// AddTo sets each of this Header's keys on dst, unless dst already has a value
// for that key.  Values set on a request take precedence over defaults.
func (h Header) AddTo(dst http.Header) {
	for key, values := range h.h {
		if _, exists := dst[key]; !exists {
			dst[key] = append([]string{}, values...)
		}
	}
}

// AddRequest is a RoundTripperConstructor that adds this Header's defaults to
// each request.  The original request is not modified.  If this Header is empty,
// no decoration is performed.
func (h Header) AddRequest(next http.RoundTripper) http.RoundTripper {
	if h.Len() == 0 {
		return next
	}

	return RoundTripperFunc(func(request *http.Request) (*http.Response, error) {
		request = request.Clone(request.Context())
		if request.Header == nil {
			request.Header = make(http.Header, h.Len())
		}

		h.AddTo(request.Header)
		return next.RoundTrip(request)
	})
}
