package m2h

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUsage reports missing arguments or an explicit help request.
	ErrUsage = errors.New("usage")
	// ErrInputNotFound reports a source path that does not exist.
	ErrInputNotFound = errors.New("input file does not exist")
	// ErrInputUnreadable reports a source path that exists but cannot be read.
	ErrInputUnreadable = errors.New("could not read input file")
	// ErrOutputWrite reports an artifact that could not be written.
	ErrOutputWrite = errors.New("could not write output file")
)

// OutputError names the artifact path that failed to be written.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("%s %s: %v", ErrOutputWrite, e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error.
func (e *OutputError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrOutputWrite) true for every OutputError.
func (e *OutputError) Is(target error) bool {
	return target == ErrOutputWrite
}
