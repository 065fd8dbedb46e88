package fetchurl

import "sort"

// Parameters is the closed set of parameter collections that can be appended
// to a URL.  The only implementations are Params and SearchParams.
type Parameters interface {
	parameters()
}

// QueryEncoder is implemented by collections that already know how to render
// themselves as a query string, such as url.Values.
type QueryEncoder interface {
	Encode() string
}

// SearchParams adapts a QueryEncoder into Parameters.  The encoder's output is
// used verbatim, with none of the generic serialization rules applied.
type SearchParams struct {
	QueryEncoder
}

func (SearchParams) parameters() {}

// Param is a single key and its value.
type Param struct {
	Key   string
	Value Value
}

// Params is an ordered parameter set.  Keys are unique when the collection
// is built with Set, and the order of the slice is the order of the tokens
// in the serialized query string.
type Params []Param

func (Params) parameters() {}

// ParamsOf builds a Params from a map.  Since maps have no order, keys are
// sorted.  Each value is classified with ValueOf.
func ParamsOf(m map[string]any) Params {
	if len(m) == 0 {
		return nil
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)
	p := make(Params, 0, len(keys))
	for _, k := range keys {
		p = append(p, Param{Key: k, Value: ValueOf(m[k])})
	}

	return p
}

// NewParams builds a Params from key/value pairs.  The sequence is expected
// to alternate between string keys and arbitrary values.  A dangling key
// produces an absent value.  Later duplicates replace earlier ones in place.
func NewParams(kv ...any) (p Params) {
	for i := 0; i < len(kv); i += 2 {
		key, _ := kv[i].(string)
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
		}

		p.Set(key, v)
	}

	return
}

// Set replaces the value of an existing key, keeping its position, or appends
// the key if it is not present.  The value is classified with ValueOf.
func (p *Params) Set(key string, v any) {
	value := ValueOf(v)
	for i := range *p {
		if (*p)[i].Key == key {
			(*p)[i].Value = value
			return
		}
	}

	*p = append(*p, Param{Key: key, Value: value})
}

// Add appends a key without checking for duplicates.
func (p *Params) Add(key string, v any) {
	*p = append(*p, Param{Key: key, Value: ValueOf(v)})
}

// Get returns the value for the given key.  If the key is not present,
// an absent Value and false are returned.
func (p Params) Get(key string) (Value, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}

	return Absent(), false
}

// Len returns the number of keys, including keys with absent values.
func (p Params) Len() int {
	return len(p)
}
