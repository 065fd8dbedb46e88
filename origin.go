package fetchurl

import (
	"errors"
	"net"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/idna"
)

var (
	// ErrRelativeURL indicates that a relative URL was resolved with no base URL.
	ErrRelativeURL = errors.New("a relative URL cannot be resolved without a base URL")

	// ErrMissingHost indicates that a URL resolved to something with no host,
	// such as "mailto:" or "file:" URLs.
	ErrMissingHost = errors.New("the URL has no host")
)

// InvalidURLError is returned when a URL cannot be resolved into an Origin.
type InvalidURLError struct {
	// URL is the original text that was being resolved.
	URL string

	// Err is the underlying parse or resolution error.
	Err error
}

// Error describes the URL that could not be resolved.
func (iue *InvalidURLError) Error() string {
	var o strings.Builder
	o.WriteString("invalid URL [")
	o.WriteString(iue.URL)
	o.WriteString("]")
	if iue.Err != nil {
		o.WriteString(": ")
		o.WriteString(iue.Err.Error())
	}

	return o.String()
}

// Unwrap returns the underlying error.
func (iue *InvalidURLError) Unwrap() error {
	return iue.Err
}

// Origin is the protocol and host of a URL.  Two URLs are same-origin
// when their Origins are equal, field for field.
type Origin struct {
	// Protocol is the lowercased scheme, including the trailing colon, e.g. "https:".
	Protocol string

	// Host is the hostname plus the port, if the port is not the default
	// for the protocol, e.g. "example.com:8080".
	Host string
}

// String returns the serialized origin, e.g. "https://example.com:8080".
func (o Origin) String() string {
	return o.Protocol + "//" + o.Host
}

// Resolver turns an absolute or relative URL into an Origin.
type Resolver interface {
	Resolve(string) (Origin, error)
}

// ResolverFunc is a function type that implements Resolver.
type ResolverFunc func(string) (Origin, error)

// Resolve implements Resolver.
func (rf ResolverFunc) Resolve(u string) (Origin, error) {
	return rf(u)
}

// hostProfile follows the WHATWG host parser: nontransitional processing
// without the STD3 restrictions, so hostnames like "my_host" are accepted.
var hostProfile = idna.New(
	idna.MapForLookup(),
	idna.Transitional(false),
	idna.StrictDomainName(false),
)

// defaultPorts are the ports that are dropped from Origin.Host.
var defaultPorts = map[string]string{
	"http:":  "80",
	"https:": "443",
	"ws:":    "80",
	"wss:":   "443",
	"ftp:":   "21",
}

// URLResolver is the net/url based Resolver.  It yields the same normalized
// fields as a browser: a lowercased protocol, and an ASCII, lowercased host
// with default ports removed.
type URLResolver struct {
	// Base is the URL that relative references resolve against.  If unset,
	// only absolute URLs can be resolved.
	Base *url.URL
}

// Resolve implements Resolver.  All errors are of type *InvalidURLError.
func (ur URLResolver) Resolve(u string) (Origin, error) {
	ref, err := url.Parse(strings.TrimSpace(u))
	if err != nil {
		return Origin{}, &InvalidURLError{URL: u, Err: err}
	}

	if !ref.IsAbs() {
		if ur.Base == nil {
			return Origin{}, &InvalidURLError{URL: u, Err: ErrRelativeURL}
		}

		ref = ur.Base.ResolveReference(ref)
	}

	o, err := originOf(ref)
	if err != nil {
		return Origin{}, &InvalidURLError{URL: u, Err: err}
	}

	return o, nil
}

// originOf extracts the normalized Origin from an absolute URL.
func originOf(u *url.URL) (Origin, error) {
	hostname := u.Hostname()
	if len(hostname) == 0 {
		return Origin{}, ErrMissingHost
	}

	protocol := strings.ToLower(u.Scheme) + ":"
	if strings.IndexByte(hostname, ':') < 0 {
		ascii, err := hostProfile.ToASCII(hostname)
		if err != nil {
			return Origin{}, err
		}

		hostname = ascii
	}

	host := strings.ToLower(hostname)
	if strings.IndexByte(host, ':') >= 0 {
		host = "[" + host + "]"
	}

	port := u.Port()
	if n, err := strconv.Atoi(port); err == nil {
		port = strconv.Itoa(n)
	}

	if len(port) > 0 && port != defaultPorts[protocol] {
		host = net.JoinHostPort(strings.Trim(host, "[]"), port)
	}

	return Origin{
		Protocol: protocol,
		Host:     host,
	}, nil
}
