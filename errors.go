package succinct

import (
	"errors"
	"fmt"
)

// Sentinel markers for the package's error taxonomy. Callers distinguish
// error kinds with errors.Is against these values rather than by matching
// message text.
var (
	// ErrOutOfRange marks an index argument outside its declared domain.
	ErrOutOfRange = errors.New("succinct: index out of range")
	// ErrBadArgument marks an inconsistent or invalid constructor argument.
	ErrBadArgument = errors.New("succinct: bad argument")
	// ErrUnsupported marks a write attempted against a read-only view.
	ErrUnsupported = errors.New("succinct: unsupported operation")
)

func outOfRangef(format string, args ...interface{}) error {
	return wrapf(ErrOutOfRange, format, args...)
}

func badArgumentf(format string, args ...interface{}) error {
	return wrapf(ErrBadArgument, format, args...)
}

func unsupportedf(format string, args ...interface{}) error {
	return wrapf(ErrUnsupported, format, args...)
}

func wrapf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, sentinel)...)
}

// checkIndex returns ErrOutOfRange if i is not within [0, size).
func checkIndex(i, size int) error {
	if i < 0 || i >= size {
		return outOfRangef("index %d out of range [0, %d)", i, size)
	}
	return nil
}
