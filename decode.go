package fetchurl

import (
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

var paramsType = reflect.TypeOf(Params(nil))

// ParamsHookFunc is a mapstructure.DecodeHookFunc that converts a configuration
// map into Params.  Keys are sorted, as with ParamsOf.
func ParamsHookFunc(from, to reflect.Type, src interface{}) (interface{}, error) {
	if to != paramsType {
		return src, nil
	}

	switch m := src.(type) {
	case map[string]interface{}:
		return ParamsOf(m), nil

	case map[interface{}]interface{}:
		converted := make(map[string]interface{}, len(m))
		for k, v := range m {
			converted[coerce(k)] = v
		}

		return ParamsOf(converted), nil

	default:
		return src, nil
	}
}

// DefaultDecodeHooks is a viper option that sets the decode hooks used for
// configuration in this module: durations, comma-separated slices, and Params.
//
// Note that you can still use ComposeDecodeHooks with this option as long as you use
// it after this one.
func DefaultDecodeHooks(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		ParamsHookFunc,
	)
}

// ComposeDecodeHooks adds more decode hook functions to mapstructure's DecoderConfig.  If
// there are already decode hooks, they are preserved and the given hooks are appended.
func ComposeDecodeHooks(fs ...mapstructure.DecodeHookFunc) viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		if dc.DecodeHook != nil {
			dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
				append([]mapstructure.DecodeHookFunc{dc.DecodeHook},
					fs...,
				)...,
			)
		} else {
			dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(fs...)
		}
	}
}

// Merge takes any number of slices of decoder options and merges them
// into a single option, applying them in order.
func Merge(opts ...[]viper.DecoderConfigOption) viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		for _, group := range opts {
			for _, o := range group {
				o(dc)
			}
		}
	}
}
