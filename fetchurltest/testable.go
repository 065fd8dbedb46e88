package fetchurltest

import (
	"fmt"
	"testing"
)

// Testable is the minimal interface required for assertions and testing.
// This interface is implemented by several libraries.
type Testable interface {
	Logf(string, ...interface{})
	Errorf(string, ...interface{})
	FailNow()
}

type testHolder interface {
	T() *testing.T
}

// AsTestable converts a value into a Testable.  The v parameter
// may be a *testing.T, *testing.B, or a type that provides a T() *testing.T method,
// such as a stretchr test suite.
//
// If v cannot be coerced into a Testable, this function panics.
func AsTestable(v any) Testable {
	if tt, ok := v.(Testable); ok {
		return tt
	}

	if th, ok := v.(testHolder); ok {
		return th.T()
	}

	panic(fmt.Errorf("%T cannot be converted into a Testable", v))
}

// cleanup registers f to run when the test behind v finishes.  The v parameter has
// the same restrictions as AsTestable, and must also supply a Cleanup method.
func cleanup(v any, f func()) {
	type cleaner interface {
		Cleanup(func())
	}

	if c, ok := v.(cleaner); ok {
		c.Cleanup(f)
		return
	}

	if th, ok := v.(testHolder); ok {
		th.T().Cleanup(f)
		return
	}

	panic(fmt.Errorf("%T does not support cleanup functions", v))
}
