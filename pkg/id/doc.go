// Package id generates time-ordered 64-bit identifiers in the Snowflake
// scheme and renders them as compact strings.
//
// # Layout
//
// An ID packs four fields, most significant first:
//
//	| 1 unused | 41 bits ms since epoch | 5 bits datacenter | 5 bits machine | 12 bits sequence |
//
// The epoch defaults to [Twepoch]. Each generator issues at most 4096 IDs per
// millisecond; the 4097th call spins until the clock advances.
//
// # Basic Usage
//
//	gen, err := id.New(
//	    id.WithDatacenterID(3),
//	    id.WithMachineID(7),
//	    id.WithLogger(log),
//	)
//	if err != nil {
//	    return err // errors.Is(err, id.ErrInvalidConfig)
//	}
//
//	n, err := gen.GenerateID()          // 64-bit integer
//	s, err := gen.GenerateStringID()    // radix 36
//	short, err := gen.GenerateShortID(0) // trailing 8 symbols
//
// Machine and datacenter IDs must be unique per running instance; assigning
// them is left to deployment configuration. [NewFromConfig] accepts a
// [Config] tagged for env and YAML loading.
//
// # Clock Regression
//
// A generator never issues an ID with a timestamp earlier than one it already
// issued. If the clock steps backwards, GenerateID returns a
// [*ClockRegressionError] (matching [ErrClockRegression]) without touching
// its state, so calls succeed again once the clock catches up.
// [WithClockTolerance] turns small regressions into a short wait instead.
// [MonotonicClock] avoids wall-clock steps altogether.
//
// # Encoding
//
// [Encoder] renders unsigned integers over any ASCII alphabet. [Base36] is the
// default for string IDs; [Base32Crockford] is available via [WithEncoder].
// [Shorten] keeps the fastest-changing trailing symbols of an encoded ID.
package id
