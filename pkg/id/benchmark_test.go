package id_test

import (
	"testing"

	"github.com/dmitrymomot/snowflake/pkg/id"
)

func BenchmarkGenerateID(b *testing.B) {
	gen := id.MustNew(id.WithClock(id.NewMonotonicClock()))
	for b.Loop() {
		_, _ = gen.GenerateID()
	}
}

func BenchmarkGenerateIDParallel(b *testing.B) {
	gen := id.MustNew(id.WithClock(id.NewMonotonicClock()))
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = gen.GenerateID()
		}
	})
}

func BenchmarkGenerateStringID(b *testing.B) {
	gen := id.MustNew(id.WithClock(id.NewMonotonicClock()))
	for b.Loop() {
		_, _ = gen.GenerateStringID()
	}
}

func BenchmarkBase36Encode(b *testing.B) {
	n := uint64(id.Compose(id.MaxTimestamp, id.MaxDatacenterID, id.MaxMachineID, id.MaxSequence))
	for b.Loop() {
		_ = id.Base36.Encode(n)
	}
}
