package common

import (
	"errors"
	"fmt"
)

// Error taxonomy of the ordering/grouping core. Operations either fully
// succeed or report exactly one of these; no partial results.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrUnsupportedType   = errors.New("unsupported type")
	ErrResourceExhausted = errors.New("resource exhausted")
)

func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func UnsupportedType(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedType, fmt.Sprintf(format, args...))
}

func ResourceExhausted(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrResourceExhausted, fmt.Sprintf(format, args...))
}
