package id

import "time"

// Config holds generator configuration.
// Embed this in your app config for env parsing with caarlos0/env or YAML
// decoding; start from DefaultConfig so unset fields keep their defaults.
type Config struct {
	MachineID      int           `env:"ID_MACHINE_ID" yaml:"machine_id"`
	DatacenterID   int           `env:"ID_DATACENTER_ID" yaml:"datacenter_id"`
	Epoch          int64         `env:"ID_EPOCH" yaml:"epoch"`
	ClockTolerance time.Duration `env:"ID_CLOCK_TOLERANCE" yaml:"clock_tolerance"`
	ShortIDLength  int           `env:"ID_SHORT_LENGTH" yaml:"short_id_length"`
}

// DefaultConfig returns the configuration New uses without options.
func DefaultConfig() Config {
	return Config{
		Epoch:         Twepoch,
		ShortIDLength: DefaultShortIDLength,
	}
}

// NewFromConfig creates a generator from cfg. Options are applied after the
// configuration, so they take precedence.
func NewFromConfig(cfg Config, opts ...Option) (*Generator, error) {
	base := []Option{
		WithMachineID(cfg.MachineID),
		WithDatacenterID(cfg.DatacenterID),
		WithClockTolerance(cfg.ClockTolerance),
		WithShortIDLength(cfg.ShortIDLength),
	}
	if cfg.Epoch != 0 {
		base = append(base, WithEpoch(cfg.Epoch))
	}
	return New(append(base, opts...)...)
}
