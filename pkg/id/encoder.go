package id

import (
	"fmt"
	"math/bits"
	"unicode/utf8"
)

const (
	base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

	// Crockford's Base32 alphabet (excludes I, L, O, U to avoid confusion).
	crockfordBase32 = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"
)

// Predefined encoders.
var (
	// Base36 renders digits 0-9 followed by lowercase letters a-z.
	Base36 = mustEncoder(base36Alphabet)

	// Base32Crockford renders Crockford's human-friendly base32 symbols.
	Base32Crockford = mustEncoder(crockfordBase32)
)

// Encoder converts unsigned integers to positional strings over a fixed
// alphabet. The radix equals the alphabet length. An Encoder is immutable and
// safe for concurrent use.
type Encoder struct {
	alphabet string
	radix    uint64
	index    [256]int16 // symbol -> digit value, -1 when not in the alphabet
}

// NewEncoder builds an encoder for the given alphabet. The alphabet must hold
// at least two distinct ASCII symbols.
func NewEncoder(alphabet string) (*Encoder, error) {
	if len(alphabet) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 symbols, got %d", ErrInvalidAlphabet, len(alphabet))
	}

	e := &Encoder{alphabet: alphabet, radix: uint64(len(alphabet))}
	for i := range e.index {
		e.index[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if c >= utf8.RuneSelf {
			return nil, fmt.Errorf("%w: non-ASCII byte at position %d", ErrInvalidAlphabet, i)
		}
		if e.index[c] != -1 {
			return nil, fmt.Errorf("%w: duplicate symbol %q", ErrInvalidAlphabet, c)
		}
		e.index[c] = int16(i)
	}
	return e, nil
}

func mustEncoder(alphabet string) *Encoder {
	e, err := NewEncoder(alphabet)
	if err != nil {
		panic(err)
	}
	return e
}

// Radix returns the numeral base of the encoder.
func (e *Encoder) Radix() int { return int(e.radix) }

// Alphabet returns the symbols in digit order.
func (e *Encoder) Alphabet() string { return e.alphabet }

// Encode returns the shortest representation of n, without leading zero
// symbols. Zero encodes as the first symbol of the alphabet.
func (e *Encoder) Encode(n uint64) string {
	if n == 0 {
		return e.alphabet[:1]
	}

	// 64 symbols is enough for radix 2, the smallest allowed.
	var buf [64]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = e.alphabet[n%e.radix]
		n /= e.radix
	}
	return string(buf[i:])
}

// EncodeInt64 encodes a non-negative signed value.
func (e *Encoder) EncodeInt64(n int64) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeValue, n)
	}
	return e.Encode(uint64(n)), nil
}

// Decode parses a string produced by Encode. Leading zero symbols are
// accepted. Values beyond the unsigned 64-bit range are rejected.
func (e *Encoder) Decode(s string) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidEncoding)
	}

	var n uint64
	for i := 0; i < len(s); i++ {
		d := e.index[s[i]]
		if d < 0 {
			return 0, fmt.Errorf("%w: unexpected symbol %q at position %d", ErrInvalidEncoding, s[i], i)
		}
		hi, lo := bits.Mul64(n, e.radix)
		if hi != 0 {
			return 0, fmt.Errorf("%w: %q overflows uint64", ErrInvalidEncoding, s)
		}
		sum, carry := bits.Add64(lo, uint64(d), 0)
		if carry != 0 {
			return 0, fmt.Errorf("%w: %q overflows uint64", ErrInvalidEncoding, s)
		}
		n = sum
	}
	return n, nil
}
