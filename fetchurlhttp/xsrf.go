package fetchurlhttp

import (
	"errors"
	"net/http"

	"github.com/xmidt-org/fetchurl"
)

const (
	// DefaultXSRFCookieName is the cookie the XSRF token is read from when none is configured.
	DefaultXSRFCookieName = "XSRF-TOKEN"

	// DefaultXSRFHeaderName is the request header the XSRF token is written to when none is configured.
	DefaultXSRFHeaderName = "X-XSRF-TOKEN"
)

// XSRF describes how an XSRF token is copied from a cookie into a request header.
// The token is only attached to requests that are same-origin with the page,
// or to every request when WithCredentials is set.
type XSRF struct {
	// CookieName is the cookie holding the token.  If unset, no token is attached.
	CookieName string

	// HeaderName is the request header the token is written to.  If unset, no token is attached.
	HeaderName string

	// Cookies is the source of the token.  If unset, no token is attached.
	Cookies CookieReader

	// Origin decides which requests are same-origin.  If unset, the current
	// page established by fetchurl.InitLocation is used.
	Origin fetchurl.SameOriginChecker

	// WithCredentials attaches the token to cross-origin requests as well.
	WithCredentials bool
}

func (x XSRF) origin() fetchurl.SameOriginChecker {
	if x.Origin != nil {
		return x.Origin
	}

	return fetchurl.CurrentOrigin{}
}

// shouldAttach decides whether a request gets the token.  When no page location
// has been initialized, no request is same-origin.  Any other resolution error
// is returned.
func (x XSRF) shouldAttach(request *http.Request) (bool, error) {
	if x.WithCredentials {
		return true, nil
	}

	same, err := x.origin().IsSameOrigin(request.URL.String())
	if errors.Is(err, fetchurl.ErrNoLocation) {
		return false, nil
	}

	return same, err
}

// Then is a RoundTripperConstructor that attaches the token to requests.  The original
// request is never modified.  If this XSRF is not fully configured, next is returned as is.
func (x XSRF) Then(next http.RoundTripper) http.RoundTripper {
	if len(x.CookieName) == 0 || len(x.HeaderName) == 0 || x.Cookies == nil {
		return next
	}

	if next == nil {
		next = http.DefaultTransport
	}

	return RoundTripperFunc(func(request *http.Request) (*http.Response, error) {
		attach, err := x.shouldAttach(request)
		if err != nil {
			// RoundTrip must close the body, even on errors
			if request.Body != nil {
				request.Body.Close()
			}

			return nil, err
		}

		if attach {
			if token, ok := x.Cookies.Read(x.CookieName); ok && len(token) > 0 {
				request = request.Clone(request.Context())
				if request.Header == nil {
					request.Header = make(http.Header)
				}

				request.Header.Set(x.HeaderName, token)
			}
		}

		return next.RoundTrip(request)
	})
}
