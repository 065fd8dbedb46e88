package fetchurlhttp

import (
	"errors"
	"net/http"

	"github.com/spf13/viper"
	"github.com/xmidt-org/fetchurl"
	"go.uber.org/fx"
)

// ClientIn is the set of dependencies for a client built by ProvideClient.
type ClientIn struct {
	fx.In

	// Viper is the required Viper component in the enclosing fx.App.  See fetchurl.ForViper.
	Viper *viper.Viper

	// DecodeOptions are an optional set of options applied after fetchurl.DefaultDecodeHooks
	DecodeOptions []viper.DecoderConfigOption `optional:"true"`

	// Printer is an optional fx.Printer for informational output.  If not supplied,
	// fetchurl.DefaultPrinter() is used.
	Printer fx.Printer `optional:"true"`

	// Cookies is an optional source for XSRF tokens.  See ClientConfig.NewClient.
	Cookies CookieReader `optional:"true"`
}

// ClientOut is the set of components emitted by ProvideClient.
type ClientOut struct {
	fx.Out

	Config ClientConfig
	Client *http.Client
}

// initLocation establishes the process-wide page.  Initializing again with the
// same location is not an error, so several clients may share one location.
func initLocation(location string) error {
	err := fetchurl.InitLocation(location)
	if errors.Is(err, fetchurl.ErrLocationInitialized) && fetchurl.CurrentPage().Location() == location {
		return nil
	}

	return err
}

// NewClientFromViper unmarshals a ClientConfig from the given viper key and builds
// an *http.Client from it.  If the configuration has a Location, it also becomes the
// process-wide page location.
func NewClientFromViper(key string, in ClientIn, opts ...ClientOption) (out ClientOut, err error) {
	if in.Viper == nil {
		err = fetchurl.ErrNilViper
		return
	}

	p := fetchurl.NewModulePrinter(fetchurl.Module, in.Printer)
	p.Printf("UNMARSHAL KEY\t[%s] => %T", key, out.Config)
	err = in.Viper.UnmarshalKey(
		key,
		&out.Config,
		fetchurl.Merge(
			[]viper.DecoderConfigOption{fetchurl.DefaultDecodeHooks},
			in.DecodeOptions,
		),
	)

	if err != nil {
		return
	}

	if len(out.Config.Location) > 0 {
		if err = initLocation(out.Config.Location); err != nil {
			return
		}

		p.Printf("LOCATION\t[%s] => %s", out.Config.Location, fetchurl.CurrentPage().Origin())
	}

	out.Client, err = out.Config.NewClient(in.Cookies, opts...)
	if err == nil {
		p.Printf("CLIENT\t[%s] => base URL [%s]", key, out.Config.BaseURL)
	}

	return
}

// ProvideClient unmarshals the given configuration key and emits both the ClientConfig
// and the *http.Client built from it as unnamed components.  The enclosing fx.App must
// supply a *viper.Viper.
func ProvideClient(key string, opts ...ClientOption) fx.Option {
	return fx.Provide(
		func(in ClientIn) (ClientOut, error) {
			return NewClientFromViper(key, in, opts...)
		},
	)
}
