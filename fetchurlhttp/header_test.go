package fetchurlhttp

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/fetchurl/fetchurltest"
)

func testHeaderBasic(f func() Header, expected http.Header, t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		header Header
		actual = make(http.Header)
	)

	require.NotPanics(func() {
		header = f()
	})

	assert.Equal(len(expected), header.Len())
	header.AddTo(actual)
	assert.Equal(expected, actual)
}

func testHeaderAddRequest(f func() Header, expected http.Header, t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		header   Header
		request  = httptest.NewRequest("GET", "/", nil)
		response = &http.Response{StatusCode: 289}
		next     = new(fetchurltest.MockRoundTripper)
		matcher  = new(fetchurltest.RequestMatcher).Header("Test", "true")
	)

	require.NotPanics(func() {
		header = f()
	})

	for key, values := range expected {
		for _, v := range values {
			matcher.Header(key, v)
		}
	}

	next.ExpectMatch(matcher).Response(response).Once()
	request.Header.Set("Test", "true")
	decorated := header.AddRequest(next)
	require.NotNil(decorated)

	actual, err := decorated.RoundTrip(request)
	require.NoError(err)
	assert.Same(response, actual)
	next.AssertExpectations(t)

	// the original request is untouched
	assert.Equal(http.Header{"Test": {"true"}}, request.Header)
}

func TestNewHeader(t *testing.T) {
	testData := []struct {
		source   http.Header
		expected http.Header
	}{
		{
			source:   nil,
			expected: http.Header{},
		},
		{
			source:   http.Header{},
			expected: http.Header{},
		},
		{
			source:   http.Header{"": {"dropped"}, "empty": {}},
			expected: http.Header{},
		},
		{
			source:   http.Header{"x-single": {"value"}},
			expected: http.Header{"X-Single": {"value"}},
		},
		{
			source:   http.Header{"x-multi": {"value1", "value2"}, "Accept": {"application/json"}},
			expected: http.Header{"X-Multi": {"value1", "value2"}, "Accept": {"application/json"}},
		},
	}

	for i, record := range testData {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			f := func() Header { return NewHeader(record.source) }
			t.Run("Basic", func(t *testing.T) {
				testHeaderBasic(f, record.expected, t)
			})

			t.Run("AddRequest", func(t *testing.T) {
				testHeaderAddRequest(f, record.expected, t)
			})
		})
	}
}

func TestNewHeaderFromMap(t *testing.T) {
	testData := []struct {
		source   map[string]string
		expected http.Header
	}{
		{
			source:   nil,
			expected: http.Header{},
		},
		{
			source:   map[string]string{"": "dropped"},
			expected: http.Header{},
		},
		{
			source:   map[string]string{"x-single": "value", "accept": "application/json"},
			expected: http.Header{"X-Single": {"value"}, "Accept": {"application/json"}},
		},
	}

	for i, record := range testData {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			f := func() Header { return NewHeaderFromMap(record.source) }
			t.Run("Basic", func(t *testing.T) {
				testHeaderBasic(f, record.expected, t)
			})

			t.Run("AddRequest", func(t *testing.T) {
				testHeaderAddRequest(f, record.expected, t)
			})
		})
	}
}

func TestHeaderAddToExisting(t *testing.T) {
	var (
		assert = assert.New(t)
		header = NewHeaderFromMap(map[string]string{"Accept": "application/json", "X-Default": "true"})
		dst    = http.Header{"Accept": {"text/plain"}}
	)

	header.AddTo(dst)
	assert.Equal(
		http.Header{"Accept": {"text/plain"}, "X-Default": {"true"}},
		dst,
	)
}

func TestHeaderAddRequestEmpty(t *testing.T) {
	next := new(fetchurltest.MockRoundTripper)
	assert.Same(t, next, Header{}.AddRequest(next))
}
