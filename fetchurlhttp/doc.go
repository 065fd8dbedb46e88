// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package fetchurlhttp builds http clients from configuration and wires the
fetchurl core into them: request URLs are composed from a base URL and
parameters, and an XSRF token is attached to same-origin requests.
*/
package fetchurlhttp
