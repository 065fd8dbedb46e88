package fetchurlhttp

import (
	"net/http"
	"reflect"
	"strings"

	"go.uber.org/multierr"
)

// InvalidClientOptionTypeError is returned by a ClientOption produced by AsClientOption
// to indicate that a type could not be converted.
type InvalidClientOptionTypeError struct {
	Type reflect.Type
}

// Error describes the type that could not be converted.
func (icote *InvalidClientOptionTypeError) Error() string {
	var o strings.Builder
	if icote.Type != nil {
		o.WriteString(icote.Type.String())
	} else {
		o.WriteString("<nil>")
	}

	o.WriteString(" cannot be converted to a ClientOption")
	return o.String()
}

// ClientOption is a general-purpose modifier for an *http.Client.  Options run
// after the client, including its transport chain, has been built.
type ClientOption interface {
	// Apply modifies the given client.
	Apply(*http.Client) error
}

// ClientOptionFunc is a function type that implements ClientOption.
type ClientOptionFunc func(*http.Client) error

// Apply implements ClientOption.
func (cof ClientOptionFunc) Apply(c *http.Client) error {
	return cof(c)
}

// ClientOptions is an aggregate set of ClientOption that acts as a single option.
type ClientOptions []ClientOption

// Apply invokes each option in order.  Options are always invoked, even when
// one or more errors occur.  The returned error may be an aggregate error
// and can always be inspected via go.uber.org/multierr.
func (co ClientOptions) Apply(c *http.Client) (err error) {
	for _, o := range co {
		err = multierr.Append(err, o.Apply(c))
	}

	return
}

// Add appends options to this slice.  Each value is converted to a ClientOption
// via AsClientOption.
func (co *ClientOptions) Add(opts ...any) {
	for _, o := range opts {
		*co = append(*co, AsClientOption(o))
	}
}

// AsClientOption converts a value into a ClientOption.  This function never returns nil
// and does not panic if v cannot be converted.
//
// Any of the following kinds of values can be converted:
//   - any type that implements ClientOption
//   - any type that supplies an Apply(*http.Client) method that returns no error
//   - an underlying type of func(*http.Client)
//   - an underlying type of func(*http.Client) error
//   - a RoundTripperConstructor or RoundTripperChain, which decorates the client's transport
//
// Any other kind of value will result in a ClientOption that returns an error indicating
// that the type cannot be converted.
func AsClientOption(v any) ClientOption {
	type clientOptionNoError interface {
		Apply(*http.Client)
	}

	switch vt := v.(type) {
	case ClientOption:
		return vt

	case clientOptionNoError:
		return ClientOptionFunc(func(c *http.Client) error {
			vt.Apply(c)
			return nil
		})

	case func(*http.Client) error:
		return ClientOptionFunc(vt)

	case func(*http.Client):
		return ClientOptionFunc(func(c *http.Client) error {
			vt(c)
			return nil
		})

	case RoundTripperConstructor:
		return Transport(vt)

	case func(http.RoundTripper) http.RoundTripper:
		return Transport(vt)

	case RoundTripperChain:
		return Transport(vt.Then)
	}

	return ClientOptionFunc(func(_ *http.Client) error {
		return &InvalidClientOptionTypeError{
			Type: reflect.TypeOf(v),
		}
	})
}

// Transport returns a ClientOption that decorates the client's current transport.
func Transport(c ...RoundTripperConstructor) ClientOption {
	chain := NewRoundTripperChain(c...)
	return ClientOptionFunc(func(client *http.Client) error {
		client.Transport = chain.Then(client.Transport)
		return nil
	})
}
