package Maps

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArg = errors.New("invalid argument")
	ErrDestroyed  = fmt.Errorf("%w: table is destroyed", ErrInvalidArg)
	ErrCapacity   = errors.New("capacity out of range")
	ErrCorrupt    = errors.New("chain length doesn't match its records")
)

// ResizeError is returned when a table couldn't grow. The table keeps its old buckets and stays usable.
type ResizeError struct {
	From, To uint
	Err      error
}

func (e *ResizeError) Error() string {
	return fmt.Sprintf("resize %d -> %d: %v", e.From, e.To, e.Err)
}

func (e *ResizeError) Unwrap() error {
	return e.Err
}
