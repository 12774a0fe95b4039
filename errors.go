package civiltime

import (
	"errors"
	"fmt"
)

// The entire failure surface of the package. Every error returned by a
// constructor or a conversion wraps exactly one of these, so callers can
// enumerate outcomes with errors.Is.
var (
	ErrInvalidDate         = errors.New("invalid date")
	ErrComponentOutOfRange = errors.New("component out of range")
	ErrOverflow            = errors.New("time overflow")
)

func rangeErrf(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
