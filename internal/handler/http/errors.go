// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// Sentinel errors used by the session middleware when reading the session
// cookie. Callers can match against them with [errors.Is].
var (
	// ErrMissingSessionCookie is returned by the session middleware when the
	// incoming request does not include the session cookie at all.
	ErrMissingSessionCookie = errors.New("missing session cookie")

	// ErrEmptySessionCookie is returned when the session cookie is present
	// but its value is an empty string.
	ErrEmptySessionCookie = errors.New("empty session cookie")

	// ErrInvalidJSONBody is used when the request body cannot be decoded
	// as JSON at all.
	ErrInvalidJSONBody = errors.New("invalid JSON was passed")
)
