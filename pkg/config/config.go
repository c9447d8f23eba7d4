package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Load fills dst from an optional YAML file and then from environment
// variables, so the environment wins. Fields absent from both keep the value
// dst already holds, which lets callers pass pre-populated defaults.
func Load(dst any, opts ...Option) error {
	rv := reflect.ValueOf(dst)
	if dst == nil || rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: got %T", ErrInvalidTarget, dst)
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.file != "" {
		if err := loadFile(dst, o.file, o.optional); err != nil {
			return err
		}
	}

	envOpts := env.Options{Prefix: o.prefix}
	if o.environment != nil {
		envOpts.Environment = o.environment
	}
	if err := env.ParseWithOptions(dst, envOpts); err != nil {
		return errors.Join(ErrParseEnv, err)
	}
	return nil
}

func loadFile(dst any, path string, optional bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Join(ErrReadFile, err)
	}

	if err := yaml.Unmarshal(data, dst); err != nil {
		return errors.Join(ErrParseFile, fmt.Errorf("%s: %w", path, err))
	}
	return nil
}
