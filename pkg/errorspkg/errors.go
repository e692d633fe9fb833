// Package errorspkg provides common app errors.
package errorspkg

import "errors"

// ErrInternal indicates internal server error.
var ErrInternal = errors.New("internal")

// ErrUnconfigured indicates that the splitwise credentials are missing.
var ErrUnconfigured = errors.New("splitwise credentials are not configured")
