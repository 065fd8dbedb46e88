// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package fetchurl composes request URLs and decides whether they share origin
with the current page.

# URL composition

BuildURL appends a parameter collection to a URL.  Parameters are either Params,
an ordered set of keys with classified values, or SearchParams, which wraps
anything with an Encode() string method such as url.Values:

	fetchurl.BuildURL("/users", fetchurl.NewParams("id", 1, "tags", []string{"a", "b"}), nil)
	// "/users?id=1&tags[]=a&tags[]=b"

IsAbsoluteURL and CombineURL decide whether, and how, a base URL is prepended.
FullURL does both steps.

# Origins

InitLocation sets the current page location once, at process start.  After that,
IsURLSameOrigin compares the protocol and host of any URL, relative or absolute,
with the page's origin.  This is the check used to decide whether an XSRF header
may be attached to a request.
*/
package fetchurl
