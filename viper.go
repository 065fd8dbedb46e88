package fetchurl

import (
	"errors"

	"github.com/spf13/viper"
	"go.uber.org/fx"
)

// ErrNilViper is returned to the fx.App when the externally supplied Viper
// instance is nil
var ErrNilViper = errors.New("the viper instance cannot be nil")

// ForViper makes an externally created viper instance available as a component,
// along with any decode options that every client in this module should use.
// The options are emitted as a []viper.DecoderConfigOption component, so an
// enclosing fx.App must not supply that type itself when options are passed here.
func ForViper(v *viper.Viper, o ...viper.DecoderConfigOption) fx.Option {
	if v == nil {
		return fx.Error(ErrNilViper)
	}

	if len(o) == 0 {
		return fx.Supply(v)
	}

	return fx.Supply(
		v,
		append([]viper.DecoderConfigOption{}, o...),
	)
}
