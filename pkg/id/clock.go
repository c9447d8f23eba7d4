package id

import "time"

// Clock supplies the current time in milliseconds since the Unix epoch.
// Monotonic readings are preferred but not assumed.
type Clock interface {
	Now() int64
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() int64

func (f ClockFunc) Now() int64 { return f() }

// SystemClock reads the wall clock. It follows NTP and manual adjustments,
// including backward steps, which the generator detects and refuses.
type SystemClock struct{}

func (SystemClock) Now() int64 { return time.Now().UnixMilli() }

// MonotonicClock is aligned with the wall clock once, at construction, and
// then advances with the process monotonic clock. Backward steps of the
// system clock never surface, at the price of ignoring forward corrections
// for the lifetime of the process.
type MonotonicClock struct {
	start     time.Time // carries the monotonic reading
	startWall int64
}

// NewMonotonicClock samples the wall clock and returns a clock anchored on it.
func NewMonotonicClock() *MonotonicClock {
	start := time.Now() // no UTC(): it strips the monotonic reading
	return &MonotonicClock{start: start, startWall: start.UnixMilli()}
}

func (c *MonotonicClock) Now() int64 {
	return c.startWall + int64(time.Since(c.start)/time.Millisecond)
}
