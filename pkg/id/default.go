package id

import "sync"

var (
	defaultOnce      sync.Once
	defaultGenerator *Generator
)

// Default returns a process-wide generator created on first use with machine
// and datacenter ID 0.
//
// Kept for convenience in scripts and tests. Services should construct a
// generator with New and pass it to their components, so the identifiers
// stay under configuration control.
func Default() *Generator {
	defaultOnce.Do(func() {
		defaultGenerator = MustNew()
	})
	return defaultGenerator
}
