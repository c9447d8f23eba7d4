package id

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/snowflake/pkg/logger"
)

// Option configures a Generator.
type Option func(*options)

type options struct {
	clock          Clock
	encoder        *Encoder
	logger         *slog.Logger
	epoch          int64
	clockTolerance time.Duration
	machineID      int
	datacenterID   int
	shortIDLength  int
}

func defaultOptions() *options {
	return &options{
		clock:         SystemClock{},
		encoder:       Base36,
		logger:        logger.NewNope(),
		epoch:         Twepoch,
		machineID:     0,
		datacenterID:  0,
		shortIDLength: DefaultShortIDLength,
	}
}

// WithMachineID sets the machine identifier, in [0, MaxMachineID].
// Negative values select the default.
// Default: 0
func WithMachineID(id int) Option {
	return func(o *options) {
		if id >= 0 {
			o.machineID = id
		}
	}
}

// WithDatacenterID sets the datacenter identifier, in [0, MaxDatacenterID].
// Negative values select the default.
// Default: 0
func WithDatacenterID(id int) Option {
	return func(o *options) {
		if id >= 0 {
			o.datacenterID = id
		}
	}
}

// WithClock replaces the time source.
// Default: SystemClock
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithEpoch sets the reference time, in milliseconds since the Unix epoch.
// It must not lie in the future and cannot change once IDs are issued.
// Default: Twepoch
func WithEpoch(ms int64) Option {
	return func(o *options) {
		o.epoch = ms
	}
}

// WithEncoder sets the alphabet used by GenerateStringID and GenerateShortID.
// Default: Base36
func WithEncoder(e *Encoder) Option {
	return func(o *options) {
		if e != nil {
			o.encoder = e
		}
	}
}

// WithLogger sets the logger for clock and sequence diagnostics.
// Default: discard
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClockTolerance sets how far the clock may step backwards before
// GenerateID fails. Regressions within the tolerance are waited out.
// Keep it small: the wait spins on the clock.
// Default: 0 (fail on any regression)
func WithClockTolerance(d time.Duration) Option {
	return func(o *options) {
		if d >= 0 {
			o.clockTolerance = d
		}
	}
}

// WithShortIDLength sets the length GenerateShortID uses when called with
// zero. Zero keeps the default.
// Default: 8
func WithShortIDLength(n int) Option {
	return func(o *options) {
		if n != 0 {
			o.shortIDLength = n
		}
	}
}
