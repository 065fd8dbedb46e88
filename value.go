package fetchurl

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/spf13/cast"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// AbsentKind is a missing value.  Absent values never appear in a query string.
	AbsentKind Kind = iota

	// ScalarKind is any value rendered with plain string coercion.
	ScalarKind

	// ArrayKind is a sequence of values, each emitted as its own key[]=value token.
	ArrayKind

	// DateKind is a point in time, rendered as ISO-8601 text.
	DateKind

	// RecordKind is a generic key/value structure, rendered as JSON text.
	RecordKind
)

// String returns a readable name for this kind.
func (k Kind) String() string {
	switch k {
	case AbsentKind:
		return "absent"
	case ScalarKind:
		return "scalar"
	case ArrayKind:
		return "array"
	case DateKind:
		return "date"
	case RecordKind:
		return "record"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ISO8601 is the layout used for DateKind values.  Dates are always rendered
// in UTC with millisecond precision.
const ISO8601 = "2006-01-02T15:04:05.000Z"

var timeType = reflect.TypeOf(time.Time{})

// Value is a single parameter value.  The variant is decided once, when the
// Value is created, and is never re-examined during serialization.
//
// The zero value is an absent Value.
type Value struct {
	kind     Kind
	scalar   any
	elements []Value
	date     time.Time
	record   any
}

// Absent returns a Value that is omitted from query strings.
func Absent() Value {
	return Value{}
}

// Scalar returns a Value that is coerced to a string when serialized.  A nil v,
// including a typed nil, produces an absent Value.
func Scalar(v any) Value {
	if v == nil || isNil(v) {
		return Value{}
	}

	return Value{kind: ScalarKind, scalar: v}
}

// Date returns a Value rendered as ISO-8601 text.
func Date(t time.Time) Value {
	return Value{kind: DateKind, date: t}
}

// Record returns a Value rendered as JSON text.  A nil v produces an absent Value.
func Record(v any) Value {
	if v == nil {
		return Value{}
	}

	return Value{kind: RecordKind, record: v}
}

// Array returns a Value whose elements are each classified with ValueOf.
// Nested arrays are not flattened: a nested array, whether a Go slice or an
// array Value, is rendered as its comma-joined text.
//
// Absent elements are kept here but produce no key[]= token when serialized,
// so the number of tokens can be smaller than the number of elements.
func Array(elements ...any) Value {
	v := Value{
		kind:     ArrayKind,
		elements: make([]Value, 0, len(elements)),
	}

	for _, e := range elements {
		ev := ValueOf(e)
		if ev.kind == ArrayKind {
			ev = Scalar(ev.String())
		}

		v.elements = append(v.elements, ev)
	}

	return v
}

// ValueOf classifies an arbitrary Go value.  If v is already a Value, it is
// returned as is.
//
//   - nil, including typed nil pointers, maps, slices and interfaces, is absent
//   - time.Time and *time.Time are dates
//   - slices and arrays, except []byte, are arrays
//   - maps and structs are records
//   - anything else is a scalar
func ValueOf(v any) Value {
	switch vt := v.(type) {
	case nil:
		return Absent()
	case Value:
		return vt
	case time.Time:
		return Date(vt)
	case *time.Time:
		if vt == nil {
			return Absent()
		}

		return Date(*vt)
	case []byte:
		if vt == nil {
			return Absent()
		}

		return Scalar(vt)
	case string, bool:
		return Scalar(vt)

	case fmt.Stringer, error:
		if isNil(v) {
			return Absent()
		}

		return Scalar(vt)
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Absent()
		}

		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return Absent()
		}

		fallthrough

	case reflect.Array:
		elements := make([]any, rv.Len())
		for i := range elements {
			elements[i] = rv.Index(i).Interface()
		}

		return Array(elements...)

	case reflect.Map:
		if rv.IsNil() {
			return Absent()
		}

		return Record(rv.Interface())

	case reflect.Struct:
		if rv.Type() == timeType {
			return Date(rv.Interface().(time.Time))
		}

		return Record(rv.Interface())

	case reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return Absent()
		}
	}

	return Scalar(rv.Interface())
}

// Kind returns the variant of this Value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsAbsent tests if this Value is omitted from query strings.
func (v Value) IsAbsent() bool {
	return v.kind == AbsentKind
}

// Elements returns the elements of an array Value.  For any other kind,
// this method returns nil.
func (v Value) Elements() []Value {
	return v.elements
}

// String renders this Value as unencoded query text.  Absent values render
// as the empty string.  Array values render their elements joined by commas,
// which is only meaningful for diagnostics since serialization expands arrays.
func (v Value) String() string {
	switch v.kind {
	case ScalarKind:
		return coerce(v.scalar)

	case DateKind:
		return v.date.UTC().Format(ISO8601)

	case RecordKind:
		if data, err := json.Marshal(v.record, json.Deterministic(true)); err == nil {
			return string(data)
		}

		return coerce(v.record)

	case ArrayKind:
		var text []byte
		for i, e := range v.elements {
			if i > 0 {
				text = append(text, ',')
			}

			text = append(text, e.String()...)
		}

		return string(text)

	default:
		return ""
	}
}

// isNil tests for typed nils, such as a nil pointer stored in an interface.
func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()

	default:
		return false
	}
}

// formatFloat renders a float the way a browser coerces numbers to strings:
// plain decimal notation for magnitudes in [1e-6, 1e21), exponent notation
// with no zero padding otherwise.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"

	case math.IsInf(f, 1):
		return "Infinity"

	case math.IsInf(f, -1):
		return "-Infinity"

	case f == 0:
		return "0"
	}

	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}

	mantissa, exponent, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, bitSize), "e")
	sign := exponent[:1]
	exponent = strings.TrimLeft(exponent[1:], "0")
	if len(exponent) == 0 {
		exponent = "0"
	}

	return mantissa + "e" + sign + exponent
}

// coerce is the default string conversion for scalars.  Values that cast
// does not understand, such as named string types, fall back to fmt.
func coerce(v any) string {
	switch f := v.(type) {
	case float64:
		return formatFloat(f, 64)

	case float32:
		return formatFloat(float64(f), 32)
	}

	if s, err := cast.ToStringE(v); err == nil {
		return s
	}

	return fmt.Sprint(v)
}
