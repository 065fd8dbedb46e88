package fetchurl

import "strings"

// Serializer is a custom strategy for turning Parameters into a query string.
// When a Serializer is supplied, its output is used verbatim.
type Serializer interface {
	Serialize(Parameters) string
}

// SerializerFunc is a function type that implements Serializer.
type SerializerFunc func(Parameters) string

// Serialize implements Serializer.
func (sf SerializerFunc) Serialize(p Parameters) string {
	return sf(p)
}

// Serialize produces the query string for a parameter collection, without
// any leading '?'.
//
// If s is not nil, its result is returned as is.  Otherwise, SearchParams are
// rendered with their own Encode method and Params use the generic rules:
// absent values are skipped, arrays expand to one key[]=element token per
// element, and both keys and values are passed through Encode.
func Serialize(p Parameters, s Serializer) string {
	if s != nil {
		return s.Serialize(p)
	}

	switch pt := p.(type) {
	case SearchParams:
		if pt.QueryEncoder == nil {
			return ""
		}

		return pt.Encode()

	case Params:
		return serializeParams(pt)

	default:
		return ""
	}
}

func serializeParams(p Params) string {
	var o strings.Builder
	token := func(key string, v Value) {
		if o.Len() > 0 {
			o.WriteByte('&')
		}

		o.WriteString(Encode(key))
		o.WriteByte('=')
		o.WriteString(Encode(v.String()))
	}

	for _, param := range p {
		switch param.Value.Kind() {
		case AbsentKind:
			continue

		case ArrayKind:
			key := param.Key + "[]"
			for _, e := range param.Value.Elements() {
				if !e.IsAbsent() {
					token(key, e)
				}
			}

		default:
			token(param.Key, param.Value)
		}
	}

	return o.String()
}
