package fetchurlhttp

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/xmidt-org/fetchurl"
	"go.uber.org/multierr"
	"golang.org/x/net/publicsuffix"
)

// TransportConfig holds the unmarshaled fields of an *http.Transport.
type TransportConfig struct {
	TLSHandshakeTimeout    time.Duration
	DisableKeepAlives      bool
	DisableCompression     bool
	MaxIdleConns           int
	MaxIdleConnsPerHost    int
	MaxConnsPerHost        int
	IdleConnTimeout        time.Duration
	ResponseHeaderTimeout  time.Duration
	ExpectContinueTimeout  time.Duration
	ProxyConnectHeader     http.Header
	MaxResponseHeaderBytes int64
	WriteBufferSize        int
	ReadBufferSize         int
	ForceAttemptHTTP2      bool

	// TLS is the optional client-side TLS configuration.
	TLS *TLSConfig
}

// NewTransport creates an *http.Transport from this configuration.
func (tc TransportConfig) NewTransport() (*http.Transport, error) {
	tlsConfig, err := tc.TLS.New()
	if err != nil {
		return nil, err
	}

	return &http.Transport{
		Proxy:                  http.ProxyFromEnvironment,
		TLSClientConfig:        tlsConfig,
		TLSHandshakeTimeout:    tc.TLSHandshakeTimeout,
		DisableKeepAlives:      tc.DisableKeepAlives,
		DisableCompression:     tc.DisableCompression,
		MaxIdleConns:           tc.MaxIdleConns,
		MaxIdleConnsPerHost:    tc.MaxIdleConnsPerHost,
		MaxConnsPerHost:        tc.MaxConnsPerHost,
		IdleConnTimeout:        tc.IdleConnTimeout,
		ResponseHeaderTimeout:  tc.ResponseHeaderTimeout,
		ExpectContinueTimeout:  tc.ExpectContinueTimeout,
		ProxyConnectHeader:     tc.ProxyConnectHeader,
		MaxResponseHeaderBytes: tc.MaxResponseHeaderBytes,
		WriteBufferSize:        tc.WriteBufferSize,
		ReadBufferSize:         tc.ReadBufferSize,
		ForceAttemptHTTP2:      tc.ForceAttemptHTTP2,
	}, nil
}

// ClientConfig is the unmarshaled configuration for an *http.Client and the
// requests made with it.
type ClientConfig struct {
	// Timeout is the http.Client timeout.
	Timeout time.Duration

	// Transport configures the underlying *http.Transport.
	Transport TransportConfig

	// BaseURL is prepended to request URLs that are not absolute.
	BaseURL string

	// Location is the page location that requests are compared against to
	// decide whether they are same-origin.  Relative request URLs are resolved
	// against it.  If unset, the process-wide page from fetchurl.InitLocation is used.
	Location string

	// Header holds default headers sent with every request.
	Header map[string]string

	// Params are default parameters for every request built with NewRequest.
	// Request parameters with the same key replace these.
	Params fetchurl.Params

	// XSRFCookieName is the cookie the XSRF token is read from.  Defaults to DefaultXSRFCookieName.
	XSRFCookieName string

	// XSRFHeaderName is the header the XSRF token is sent in.  Defaults to DefaultXSRFHeaderName.
	XSRFHeaderName string

	// DisableXSRF turns off attaching the XSRF token altogether.
	DisableXSRF bool

	// WithCredentials attaches the XSRF token to cross-origin requests too.
	WithCredentials bool

	// CookieJar gives the client a public-suffix aware cookie jar.  When Location
	// is also set, the jar's cookies for the location are the XSRF token source.
	CookieJar bool
}

// Validate checks that the URLs in this configuration can be used.  All problems
// are reported in an aggregate error.
func (cc ClientConfig) Validate() (err error) {
	if len(cc.BaseURL) > 0 {
		if _, parseErr := url.Parse(cc.BaseURL); parseErr != nil {
			err = multierr.Append(err, &fetchurl.InvalidURLError{URL: cc.BaseURL, Err: parseErr})
		}
	}

	if len(cc.Location) > 0 {
		if _, pageErr := fetchurl.NewPage(cc.Location); pageErr != nil {
			err = multierr.Append(err, pageErr)
		}
	}

	return
}

// XSRFNames returns the cookie and header names for the XSRF token, with defaults
// applied.  Both are empty when DisableXSRF is set.
func (cc ClientConfig) XSRFNames() (cookieName, headerName string) {
	if cc.DisableXSRF {
		return
	}

	cookieName, headerName = cc.XSRFCookieName, cc.XSRFHeaderName
	if len(cookieName) == 0 {
		cookieName = DefaultXSRFCookieName
	}

	if len(headerName) == 0 {
		headerName = DefaultXSRFHeaderName
	}

	return
}

// SameOriginChecker returns what this configuration compares requests against:
// a Page for Location, or the process-wide page if Location is unset.
func (cc ClientConfig) SameOriginChecker() (fetchurl.SameOriginChecker, error) {
	if len(cc.Location) == 0 {
		return fetchurl.CurrentOrigin{}, nil
	}

	p, err := fetchurl.NewPage(cc.Location)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// NewClient creates an *http.Client from this configuration.  Each request goes
// through the default headers, then the XSRF decorator, then the configured transport.
//
// The cookies parameter is the source of the XSRF token.  If nil, and a cookie jar and
// Location are configured, the jar's cookies for Location are used.  Options are applied
// last, after the transport chain is in place.
func (cc ClientConfig) NewClient(cookies CookieReader, opts ...ClientOption) (*http.Client, error) {
	if err := cc.Validate(); err != nil {
		return nil, err
	}

	origin, err := cc.SameOriginChecker()
	if err != nil {
		return nil, err
	}

	transport, err := cc.Transport.NewTransport()
	if err != nil {
		return nil, err
	}

	client := &http.Client{
		Timeout: cc.Timeout,
	}

	if cc.CookieJar {
		jar, err := cookiejar.New(&cookiejar.Options{
			PublicSuffixList: publicsuffix.List,
		})

		if err != nil {
			return nil, err
		}

		client.Jar = jar
		if cookies == nil && len(cc.Location) > 0 {
			location, _ := url.Parse(cc.Location) // already validated
			cookies = JarCookies{Jar: jar, URL: location}
		}
	}

	cookieName, headerName := cc.XSRFNames()
	client.Transport = NewRoundTripperChain(
		NewHeaderFromMap(cc.Header).AddRequest,
		XSRF{
			CookieName:      cookieName,
			HeaderName:      headerName,
			Cookies:         cookies,
			Origin:          origin,
			WithCredentials: cc.WithCredentials,
		}.Then,
	).Then(transport)

	if err := ClientOptions(opts).Apply(client); err != nil {
		return nil, err
	}

	return client, nil
}
