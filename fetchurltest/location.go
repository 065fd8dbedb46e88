package fetchurltest

import (
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/fetchurl"
)

// Location replaces the process-wide page with one for the given location,
// for the duration of the enclosing test.  The previous page, if any, is
// restored when the test finishes.
//
// The t parameter has the same restrictions as AsTestable, and must also
// support Cleanup.  Tests using this function must not run in parallel
// with other tests that depend on the current page.
func Location(t any, location string, opts ...fetchurl.PageOption) *fetchurl.Page {
	p, err := fetchurl.NewPage(location, opts...)
	require.NoError(AsTestable(t), err)

	previous := fetchurl.SwapPage(p)
	cleanup(t, func() {
		fetchurl.SwapPage(previous)
	})

	return p
}

// NoLocation clears the process-wide page for the duration of the enclosing test.
func NoLocation(t any) {
	previous := fetchurl.SwapPage(nil)
	cleanup(t, func() {
		fetchurl.SwapPage(previous)
	})
}
