package config

// Option configures Load.
type Option func(*options)

type options struct {
	environment map[string]string
	file        string
	prefix      string
	optional    bool
}

// WithFile reads a YAML file before the environment is applied.
// A missing file is an error.
func WithFile(path string) Option {
	return func(o *options) {
		o.file = path
		o.optional = false
	}
}

// WithOptionalFile is like WithFile but skips the file when it does not exist.
func WithOptionalFile(path string) Option {
	return func(o *options) {
		o.file = path
		o.optional = true
	}
}

// WithPrefix prepends prefix to every environment variable name.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithEnvironment replaces the process environment, mostly for tests.
func WithEnvironment(env map[string]string) Option {
	return func(o *options) {
		o.environment = env
	}
}
