package id

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"
)

// neverGenerated marks a generator that has not issued an ID yet.
const neverGenerated int64 = -1

// maxBatchPrealloc bounds the slice capacity GenerateBatch reserves up front.
const maxBatchPrealloc = int(MaxSequence) + 1

// Generator issues unique, time-ordered 64-bit IDs for one
// (datacenter, machine) pair. It is safe for concurrent use.
//
// Uniqueness across generators relies on every running instance having a
// distinct (datacenter, machine) pair.
type Generator struct {
	clock   Clock
	encoder *Encoder
	logger  *slog.Logger

	epoch         int64
	tolerance     int64 // ms
	datacenterID  int64
	machineID     int64
	shortIDLength int

	mu            sync.Mutex
	lastTimestamp int64
	sequence      int64
}

// New creates a generator. Machine and datacenter IDs outside [0, 31] are
// rejected with an error matching ErrInvalidConfig.
func New(opts ...Option) (*Generator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.machineID > MaxMachineID {
		return nil, fmt.Errorf("%w: %w: %d not in [0, %d]", ErrInvalidConfig, ErrInvalidMachineID, o.machineID, MaxMachineID)
	}
	if o.datacenterID > MaxDatacenterID {
		return nil, fmt.Errorf("%w: %w: %d not in [0, %d]", ErrInvalidConfig, ErrInvalidDatacenterID, o.datacenterID, MaxDatacenterID)
	}
	if o.shortIDLength < MinShortIDLength {
		return nil, fmt.Errorf("%w: short id length %d below %d", ErrInvalidConfig, o.shortIDLength, MinShortIDLength)
	}
	if o.epoch < 0 {
		return nil, fmt.Errorf("%w: negative epoch %d", ErrInvalidConfig, o.epoch)
	}
	if now := o.clock.Now(); o.epoch > now {
		return nil, fmt.Errorf("%w: epoch %d is ahead of the clock (%d)", ErrInvalidConfig, o.epoch, now)
	}

	g := &Generator{
		clock:         o.clock,
		encoder:       o.encoder,
		epoch:         o.epoch,
		tolerance:     o.clockTolerance.Milliseconds(),
		datacenterID:  int64(o.datacenterID),
		machineID:     int64(o.machineID),
		shortIDLength: o.shortIDLength,
		lastTimestamp: neverGenerated,
	}
	g.logger = o.logger.With(
		slog.Int64("datacenter_id", g.datacenterID),
		slog.Int64("machine_id", g.machineID),
	)
	g.logger.Info("id generator initialized",
		slog.Int64("epoch", g.epoch),
		slog.Int("radix", g.encoder.Radix()),
		slog.Duration("clock_tolerance", o.clockTolerance),
	)
	return g, nil
}

// MustNew is like New but panics on a configuration error.
func MustNew(opts ...Option) *Generator {
	g, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// GenerateID returns the next ID.
//
// At most 4096 IDs are issued per millisecond; past that the call spins until
// the clock moves on. When the clock reads earlier than the last issued
// timestamp, including while waiting out an exhausted sequence, the call
// either waits (within the configured tolerance) or fails with a
// *ClockRegressionError, leaving the generator state untouched.
func (g *Generator) GenerateID() (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.next()
}

// GenerateBatch returns n IDs issued under a single lock acquisition, so the
// batch is contiguous for this generator. On error the IDs issued so far are
// returned along with it.
//
// Preallocation is capped at one millisecond worth of IDs; larger batches
// grow as they are issued.
func (g *Generator) GenerateBatch(n int) ([]int64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBatchSize, n)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	ids := make([]int64, 0, min(n, maxBatchPrealloc))
	for range n {
		id, err := g.next()
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// GenerateStringID returns the next ID rendered by the configured encoder
// (radix 36 by default).
func (g *Generator) GenerateStringID() (string, error) {
	id, err := g.GenerateID()
	if err != nil {
		return "", err
	}
	return g.EncodeID(id), nil
}

// GenerateShortID returns the trailing maxLength symbols of a fresh string
// ID. Zero selects the configured default length (8 unless changed).
// Lengths below MinShortIDLength fail with ErrShortIDTooShort before any ID
// is consumed.
func (g *Generator) GenerateShortID(maxLength int) (string, error) {
	maxLength, err := g.shortLength(maxLength)
	if err != nil {
		return "", err
	}

	id, err := g.GenerateID()
	if err != nil {
		return "", err
	}
	return Shorten(g.EncodeID(id), maxLength)
}

// EncodeID renders an already issued ID with the configured encoder.
func (g *Generator) EncodeID(id int64) string {
	return g.encoder.Encode(uint64(id))
}

// ShortenID renders an already issued ID in short form, with the same
// length rules as GenerateShortID.
func (g *Generator) ShortenID(id int64, maxLength int) (string, error) {
	maxLength, err := g.shortLength(maxLength)
	if err != nil {
		return "", err
	}
	return Shorten(g.EncodeID(id), maxLength)
}

func (g *Generator) shortLength(maxLength int) (int, error) {
	if maxLength == 0 {
		maxLength = g.shortIDLength
	}
	if maxLength < MinShortIDLength {
		return 0, fmt.Errorf("%w: got %d, need at least %d", ErrShortIDTooShort, maxLength, MinShortIDLength)
	}
	return maxLength, nil
}

// Decompose extracts the fields of an ID issued by g.
func (g *Generator) Decompose(id int64) Parts {
	return Decompose(id)
}

// Time returns the issue time of an ID generated by g.
func (g *Generator) Time(id int64) time.Time {
	return Decompose(id).Time(g.epoch)
}

// MachineID returns the configured machine identifier.
func (g *Generator) MachineID() int64 { return g.machineID }

// DatacenterID returns the configured datacenter identifier.
func (g *Generator) DatacenterID() int64 { return g.datacenterID }

// Epoch returns the reference time in milliseconds since the Unix epoch.
func (g *Generator) Epoch() int64 { return g.epoch }

// Healthcheck returns a closure that fails while the clock reads earlier than
// the last issued timestamp. Compatible with health endpoints that expect
// func(context.Context) error.
func (g *Generator) Healthcheck() func(context.Context) error {
	return func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		g.mu.Lock()
		last := g.lastTimestamp
		g.mu.Unlock()

		if now := g.clock.Now(); now < last {
			return &ClockRegressionError{Last: last, Now: now}
		}
		return nil
	}
}

// next issues one ID. Callers must hold g.mu.
func (g *Generator) next() (int64, error) {
	now := g.clock.Now()

	if now < g.lastTimestamp {
		var err error
		if now, err = g.catchUp(now); err != nil {
			return 0, err
		}
	}

	var sequence int64
	if now == g.lastTimestamp {
		sequence = (g.sequence + 1) & MaxSequence
		if sequence == 0 {
			g.logger.Debug("sequence exhausted, waiting for next millisecond",
				slog.Int64("last_timestamp", g.lastTimestamp),
			)
			var err error
			if now, err = g.waitAfter(g.lastTimestamp); err != nil {
				return 0, err
			}
		}
	}

	elapsed := now - g.epoch
	if elapsed < 0 || elapsed > MaxTimestamp {
		return 0, fmt.Errorf("%w: %d ms since epoch %d", ErrTimestampOverflow, elapsed, g.epoch)
	}

	g.lastTimestamp = now
	g.sequence = sequence
	return Compose(elapsed, g.datacenterID, g.machineID, sequence), nil
}

// catchUp handles a clock reading behind the last issued timestamp. Within
// the tolerance it spins until the clock reaches that timestamp again;
// otherwise it reports the regression.
func (g *Generator) catchUp(now int64) (int64, error) {
	g.warnRegression(now)
	if g.lastTimestamp-now > g.tolerance {
		return 0, &ClockRegressionError{Last: g.lastTimestamp, Now: now}
	}
	for now < g.lastTimestamp {
		runtime.Gosched()
		now = g.clock.Now()
	}
	return now, nil
}

// waitAfter spins until the clock reads later than ts. A regression beyond
// the tolerance observed while spinning is reported instead of waited out.
func (g *Generator) waitAfter(ts int64) (int64, error) {
	warned := false
	now := g.clock.Now()
	for now <= ts {
		if now < ts {
			if ts-now > g.tolerance {
				g.warnRegression(now)
				return 0, &ClockRegressionError{Last: ts, Now: now}
			}
			if !warned {
				g.warnRegression(now)
				warned = true
			}
		}
		runtime.Gosched()
		now = g.clock.Now()
	}
	return now, nil
}

func (g *Generator) warnRegression(now int64) {
	g.logger.Warn("clock moved backwards",
		slog.Int64("last_timestamp", g.lastTimestamp),
		slog.Int64("now", now),
		slog.Int64("drift_ms", g.lastTimestamp-now),
	)
}
