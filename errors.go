package main

import (
	"errors"
	"fmt"
)

// ErrEmptyDistribution is returned when normalizing a counts map with
// no entries.
var ErrEmptyDistribution = errors.New("empty distribution")

// UnknownGateError reports a gate identifier the library cannot build,
// including u3 requested without its angle parameters.
type UnknownGateError struct {
	Gate string
}

func (e *UnknownGateError) Error() string {
	return fmt.Sprintf("unknown gate %q", e.Gate)
}

// InvalidQubitCountError reports a non-positive register size.
type InvalidQubitCountError struct {
	NumQubits int
}

func (e *InvalidQubitCountError) Error() string {
	return fmt.Sprintf("invalid qubit count %d", e.NumQubits)
}

// TargetOutOfRangeError reports an instruction naming a qubit outside
// the allocated register. Detected by whole-program validation before
// any instruction executes.
type TargetOutOfRangeError struct {
	Qubit     int
	NumQubits int
}

func (e *TargetOutOfRangeError) Error() string {
	return fmt.Sprintf("target qubit %d out of range for %d-qubit register", e.Qubit, e.NumQubits)
}
