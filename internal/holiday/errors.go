package holiday

import "errors"

// Domain-specific errors for the holiday package.
var (
	ErrMalformedResponse = errors.New("holiday api returned malformed data")
	ErrUpstream          = errors.New("holiday api request failed")
	ErrInvalidDate       = errors.New("invalid date")
)
