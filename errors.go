package subint

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when a width, count or bit index exceeds the
	// 32-bit register word.
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidPattern is returned by Advance when the current value does not
	// have the requested number of set bits inside the register window.
	ErrInvalidPattern = errors.New("invalid bit pattern")
)

// ErrArgumentOutOfRange reports which argument exceeded its upper bound.
//
// It matches ErrOutOfRange via errors.Is.
type ErrArgumentOutOfRange struct {
	Argument string
	Value    uint64
	Max      uint64
}

func (e *ErrArgumentOutOfRange) Error() string {
	return fmt.Sprintf("%s %d out of range: must be <= %d", e.Argument, e.Value, e.Max)
}

func (e *ErrArgumentOutOfRange) Unwrap() error { return ErrOutOfRange }

func outOfRange(argument string, value, limit uint64) error {
	return &ErrArgumentOutOfRange{Argument: argument, Value: value, Max: limit}
}
