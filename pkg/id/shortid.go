package id

import "fmt"

const (
	// MinShortIDLength is the shortest short ID that stays practically unique.
	MinShortIDLength = 6

	// DefaultShortIDLength is used when GenerateShortID is called with zero.
	DefaultShortIDLength = 8
)

// Shorten keeps the trailing maxLength symbols of an encoded ID, or the whole
// string when it is already short enough.
//
// The least significant symbols carry the sequence and the low bits of the
// timestamp, which change fastest, so cutting from the front keeps the most
// entropy within a short time window.
func Shorten(encoded string, maxLength int) (string, error) {
	if maxLength < MinShortIDLength {
		return "", fmt.Errorf("%w: got %d, need at least %d", ErrShortIDTooShort, maxLength, MinShortIDLength)
	}
	if len(encoded) <= maxLength {
		return encoded, nil
	}
	return encoded[len(encoded)-maxLength:], nil
}
