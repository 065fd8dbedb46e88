// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package fetchurlhttp

import (
	"io"
	"strings"

	"github.com/stretchr/testify/mock"
)

type mockSameOriginChecker struct {
	mock.Mock
}

func (m *mockSameOriginChecker) IsSameOrigin(u string) (bool, error) {
	args := m.Called(u)
	return args.Bool(0), args.Error(1)
}

func (m *mockSameOriginChecker) ExpectIsSameOrigin(u string) *mock.Call {
	return m.On("IsSameOrigin", u)
}

type mockCookieReader struct {
	mock.Mock
}

func (m *mockCookieReader) Read(name string) (string, bool) {
	args := m.Called(name)
	return args.String(0), args.Bool(1)
}

func (m *mockCookieReader) ExpectRead(name string) *mock.Call {
	return m.On("Read", name)
}

// closeTracker is a request body that records whether it was closed.
type closeTracker struct {
	io.Reader
	closed bool
}

func newCloseTracker(body string) *closeTracker {
	return &closeTracker{Reader: strings.NewReader(body)}
}

func (ct *closeTracker) Close() error {
	ct.closed = true
	return nil
}
