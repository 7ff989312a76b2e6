package eratsmall

import "errors"

// ErrInvalidParameter is returned when a caller-provided precondition is
// violated: maxPrime exceeds 3*l1CacheSize at Init, or a stored prime
// exceeds the maxPrime declared at Init.
var ErrInvalidParameter = errors.New("eratsmall: invalid parameter")
