package id

import "time"

// Twepoch is the default reference time in milliseconds since the Unix epoch
// (2010-11-04T01:42:54.657Z). It is subtracted from the clock reading before
// the timestamp is packed, so the 41-bit field lasts until ~2080.
const Twepoch int64 = 1288834974657

// Bit layout, most to least significant:
//
//	| 1 unused | 41 timestamp | 5 datacenter | 5 machine | 12 sequence |
const (
	TimestampBits    = 41
	DatacenterIDBits = 5
	MachineIDBits    = 5
	SequenceBits     = 12

	MaxTimestamp    int64 = 1<<TimestampBits - 1
	MaxDatacenterID       = 1<<DatacenterIDBits - 1
	MaxMachineID          = 1<<MachineIDBits - 1
	MaxSequence     int64 = 1<<SequenceBits - 1

	MachineIDShift    = SequenceBits
	DatacenterIDShift = SequenceBits + MachineIDBits
	TimestampShift    = SequenceBits + MachineIDBits + DatacenterIDBits
)

// Parts is the decomposed form of a generated ID.
type Parts struct {
	// Elapsed is the number of milliseconds between the epoch and the moment
	// the ID was issued.
	Elapsed      int64
	DatacenterID int64
	MachineID    int64
	Sequence     int64
}

// Time returns the wall-clock time the ID was issued at, given the epoch
// (milliseconds since the Unix epoch) the issuing generator used.
func (p Parts) Time(epoch int64) time.Time {
	return time.UnixMilli(epoch + p.Elapsed).UTC()
}

// Compose packs the fields into a single ID. Every field is masked to its
// width so an out-of-range value can never bleed into its neighbour.
func Compose(elapsed, datacenterID, machineID, sequence int64) int64 {
	return (elapsed&MaxTimestamp)<<TimestampShift |
		(datacenterID&MaxDatacenterID)<<DatacenterIDShift |
		(machineID&MaxMachineID)<<MachineIDShift |
		sequence&MaxSequence
}

// Decompose extracts the fields of an ID.
func Decompose(id int64) Parts {
	return Parts{
		Elapsed:      (id >> TimestampShift) & MaxTimestamp,
		DatacenterID: (id >> DatacenterIDShift) & MaxDatacenterID,
		MachineID:    (id >> MachineIDShift) & MaxMachineID,
		Sequence:     id & MaxSequence,
	}
}

// Time returns the issue time of an ID generated against Twepoch.
func Time(id int64) time.Time {
	return Decompose(id).Time(Twepoch)
}
