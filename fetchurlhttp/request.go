package fetchurlhttp

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/xmidt-org/fetchurl"
)

// Request describes an outgoing request before its URL has been composed.
type Request struct {
	// Method is the HTTP method.  Defaults to GET.
	Method string

	// URL is the request target.  When it is not absolute, the configured
	// BaseURL is prepended.
	URL string

	// Params are appended to the URL.
	Params fetchurl.Parameters

	// Serializer, if set, replaces the default serialization of Params.
	Serializer fetchurl.Serializer

	// Header holds request-specific headers.
	Header http.Header

	// Body is the optional request body.
	Body io.Reader
}

// params merges the configured default parameters with the request's.  Defaults
// only apply when the request has no parameters or has Params.
func (cc ClientConfig) params(p fetchurl.Parameters) fetchurl.Parameters {
	if len(cc.Params) == 0 {
		return p
	}

	switch pt := p.(type) {
	case nil:
		return cc.Params

	case fetchurl.Params:
		merged := append(fetchurl.Params{}, cc.Params...)
		for _, param := range pt {
			merged.Set(param.Key, param.Value)
		}

		return merged

	default:
		return p
	}
}

// URL composes the final URL for a request: the base URL, then the parameters.
// When Location is configured, a URL that is still relative is resolved against it.
func (cc ClientConfig) URL(r Request) (string, error) {
	u := fetchurl.FullURL(cc.BaseURL, r.URL, cc.params(r.Params), r.Serializer)
	if len(cc.Location) == 0 {
		return u, nil
	}

	ref, err := url.Parse(u)
	if err != nil {
		return "", &fetchurl.InvalidURLError{URL: u, Err: err}
	} else if ref.IsAbs() {
		return u, nil
	}

	location, err := url.Parse(cc.Location)
	if err != nil {
		return "", &fetchurl.InvalidURLError{URL: cc.Location, Err: err}
	}

	return location.ResolveReference(ref).String(), nil
}

// NewRequest creates an *http.Request for r with a composed URL.
func (cc ClientConfig) NewRequest(ctx context.Context, r Request) (*http.Request, error) {
	u, err := cc.URL(r)
	if err != nil {
		return nil, err
	}

	method := r.Method
	if len(method) == 0 {
		method = http.MethodGet
	}

	request, err := http.NewRequestWithContext(ctx, method, u, r.Body)
	if err != nil {
		return nil, err
	}

	for key, values := range r.Header {
		for _, v := range values {
			request.Header.Add(key, v)
		}
	}

	return request, nil
}
