package fetchurl

import (
	"errors"
	"net/url"

	"go.uber.org/atomic"
)

var (
	// ErrNoLocation is returned when the current page location is needed but
	// InitLocation has not been called.
	ErrNoLocation = errors.New("the current page location has not been initialized")

	// ErrLocationInitialized is returned by InitLocation when the current page
	// location has already been set.
	ErrLocationInitialized = errors.New("the current page location has already been initialized")

	// ErrNilResolver is returned by NewPage when a nil Resolver is supplied.
	ErrNilResolver = errors.New("the resolver cannot be nil")
)

// SameOriginChecker decides whether a URL shares origin with some page.
type SameOriginChecker interface {
	IsSameOrigin(string) (bool, error)
}

// PageOption tailors how a Page is built.
type PageOption func(*Page) error

// WithResolver sets the Resolver a Page uses.  By default, a Page uses
// a URLResolver based at the page location.
func WithResolver(r Resolver) PageOption {
	return func(p *Page) error {
		if r == nil {
			return ErrNilResolver
		}

		p.resolver = r
		return nil
	}
}

// Page is a location together with its origin, which is resolved once when
// the Page is created.  A Page is immutable and safe for concurrent use.
type Page struct {
	location string
	origin   Origin
	resolver Resolver
}

// NewPage creates a Page for the given absolute location.
func NewPage(location string, opts ...PageOption) (*Page, error) {
	base, err := url.Parse(location)
	if err != nil {
		return nil, &InvalidURLError{URL: location, Err: err}
	} else if !base.IsAbs() {
		return nil, &InvalidURLError{URL: location, Err: ErrRelativeURL}
	}

	p := &Page{
		location: location,
		resolver: URLResolver{Base: base},
	}

	for _, o := range opts {
		if err := o(p); err != nil {
			return nil, err
		}
	}

	p.origin, err = p.resolver.Resolve(location)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Location returns the location this Page was created with.
func (p *Page) Location() string {
	return p.location
}

// Origin returns the cached origin of this Page.
func (p *Page) Origin() Origin {
	return p.origin
}

// Resolve resolves u, which may be relative to this page's location.
func (p *Page) Resolve(u string) (Origin, error) {
	return p.resolver.Resolve(u)
}

// IsSameOrigin tests if u has the same protocol and host as this page.
// Any resolution error is returned as is, along with false.
func (p *Page) IsSameOrigin(u string) (bool, error) {
	o, err := p.resolver.Resolve(u)
	if err != nil {
		return false, err
	}

	return o == p.origin, nil
}

// currentPage is the process-wide page.  It is written by InitLocation,
// and by SwapPage in tests.
var currentPage atomic.Pointer[Page]

// InitLocation is the single initialization point for the current page.  It is
// meant to be called once, at process start.  Only the first successful call
// has any effect; subsequent calls return ErrLocationInitialized.
func InitLocation(location string, opts ...PageOption) error {
	p, err := NewPage(location, opts...)
	if err != nil {
		return err
	}

	if !currentPage.CompareAndSwap(nil, p) {
		return ErrLocationInitialized
	}

	return nil
}

// CurrentPage returns the current page, or nil if InitLocation has not been called.
func CurrentPage() *Page {
	return currentPage.Load()
}

// SwapPage replaces the current page, returning the previous one.  Passing nil
// clears the current page.  This function exists for tests; production code
// should use InitLocation.
func SwapPage(p *Page) *Page {
	return currentPage.Swap(p)
}

// ResolveURL resolves u against the current page.  If there is no current page,
// only absolute URLs can be resolved.
func ResolveURL(u string) (Origin, error) {
	if p := CurrentPage(); p != nil {
		return p.Resolve(u)
	}

	return URLResolver{}.Resolve(u)
}

// IsURLSameOrigin tests if u has the same origin as the current page.  If there
// is no current page, this function returns false and ErrNoLocation.
func IsURLSameOrigin(u string) (bool, error) {
	p := CurrentPage()
	if p == nil {
		return false, ErrNoLocation
	}

	return p.IsSameOrigin(u)
}

// CurrentOrigin is a SameOriginChecker that always consults the current page.
type CurrentOrigin struct{}

// IsSameOrigin implements SameOriginChecker.
func (CurrentOrigin) IsSameOrigin(u string) (bool, error) {
	return IsURLSameOrigin(u)
}
