package presieve

import "errors"

// ErrInvalidParameter is returned when segmentLow passed to PreSieve is
// not a multiple of 30.
var ErrInvalidParameter = errors.New("presieve: invalid parameter")
