package id_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/dmitrymomot/snowflake/pkg/id"
)

func TestCompose(t *testing.T) {
	t.Parallel()

	t.Run("matches the documented bit layout", func(t *testing.T) {
		t.Parallel()

		n := id.Compose(1000, 3, 7, 5)

		assert.Equal(t, int64(1000<<22|3<<17|7<<12|5), n)
		assert.Equal(t, int64(4194725893), n)

		assert.Equal(t, int64(1000), n>>22)
		assert.Equal(t, int64(3), (n>>17)&0x1F)
		assert.Equal(t, int64(7), (n>>12)&0x1F)
		assert.Equal(t, int64(5), n&0xFFF)
	})

	t.Run("masks out-of-range fields", func(t *testing.T) {
		t.Parallel()

		n := id.Compose(0, 32, 33, 4097)
		parts := id.Decompose(n)

		assert.Equal(t, int64(0), parts.DatacenterID)
		assert.Equal(t, int64(1), parts.MachineID)
		assert.Equal(t, int64(1), parts.Sequence)
	})

	t.Run("largest id stays positive", func(t *testing.T) {
		t.Parallel()

		n := id.Compose(id.MaxTimestamp, id.MaxDatacenterID, id.MaxMachineID, id.MaxSequence)
		assert.Positive(t, n)
		assert.Equal(t, int64(1<<63-1), n)
	})
}

func TestDecompose(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		rapid.Check(t, func(t *rapid.T) {
			want := id.Parts{
				Elapsed:      rapid.Int64Range(0, id.MaxTimestamp).Draw(t, "elapsed"),
				DatacenterID: rapid.Int64Range(0, id.MaxDatacenterID).Draw(t, "datacenter"),
				MachineID:    rapid.Int64Range(0, id.MaxMachineID).Draw(t, "machine"),
				Sequence:     rapid.Int64Range(0, id.MaxSequence).Draw(t, "sequence"),
			}

			n := id.Compose(want.Elapsed, want.DatacenterID, want.MachineID, want.Sequence)
			if n < 0 {
				t.Fatalf("negative id %d", n)
			}
			if got := id.Decompose(n); got != want {
				t.Fatalf("got %+v, want %+v", got, want)
			}
		})
	})

	t.Run("time is relative to the epoch", func(t *testing.T) {
		t.Parallel()

		n := id.Compose(1500, 0, 0, 0)

		assert.Equal(t, time.UnixMilli(id.Twepoch+1500).UTC(), id.Time(n))
		assert.Equal(t, time.UnixMilli(1500).UTC(), id.Decompose(n).Time(0))
	})
}
