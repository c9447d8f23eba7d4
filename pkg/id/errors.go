package id

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for ID generation.
var (
	// Configuration errors. Returned by New; the generator is not created.
	ErrInvalidConfig       = errors.New("id: invalid configuration")
	ErrInvalidMachineID    = errors.New("id: machine id out of range")
	ErrInvalidDatacenterID = errors.New("id: datacenter id out of range")

	// Argument errors. The generator state is left untouched.
	ErrShortIDTooShort  = errors.New("id: requested length too short to remain practically unique")
	ErrInvalidBatchSize = errors.New("id: batch size must be positive")

	// Clock errors.
	ErrClockRegression   = errors.New("id: clock moved backwards")
	ErrTimestampOverflow = errors.New("id: timestamp does not fit the 41-bit field")

	// Encoding errors.
	ErrInvalidAlphabet = errors.New("id: invalid encoder alphabet")
	ErrInvalidEncoding = errors.New("id: invalid encoded value")
	ErrNegativeValue   = errors.New("id: negative value cannot be encoded")
)

// ClockRegressionError reports a clock reading earlier than the timestamp of
// the last issued ID. It matches ErrClockRegression with errors.Is.
type ClockRegressionError struct {
	Last int64 // timestamp of the last issued ID, ms since the Unix epoch
	Now  int64 // offending clock reading, ms since the Unix epoch
}

func (e *ClockRegressionError) Error() string {
	return fmt.Sprintf("%s by %d ms (last %d, now %d)", ErrClockRegression, e.Last-e.Now, e.Last, e.Now)
}

func (e *ClockRegressionError) Unwrap() error { return ErrClockRegression }

// Drift returns how far the clock is behind the last issued timestamp.
func (e *ClockRegressionError) Drift() time.Duration {
	return time.Duration(e.Last-e.Now) * time.Millisecond
}
