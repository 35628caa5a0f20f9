// Package xerrors provides small helpers on top of the standard errors
// package.
package xerrors

import "errors"

// AsA is a generic wrapper around [errors.As]: it returns err re-typed as T
// if any error in its chain matches, and ok=false otherwise.
func AsA[T error](err error) (_ T, ok bool) {
	var e T

	if errors.As(err, &e) {
		return e, true
	}

	var zero T

	return zero, false
}
