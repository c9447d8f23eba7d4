// Package config loads application configuration from a YAML file and the
// environment.
//
// Structs are tagged for both sources; the environment overrides the file and
// fields missing from both keep their existing values:
//
//	type AppConfig struct {
//	    ID  id.Config     `yaml:"id"`
//	    Log logger.Config `yaml:"log"`
//	}
//
//	cfg := AppConfig{ID: id.DefaultConfig(), Log: logger.DefaultConfig()}
//	if err := config.Load(&cfg, config.WithOptionalFile("config.yaml")); err != nil {
//	    return err
//	}
//
// YAML decoding uses gopkg.in/yaml.v3, environment parsing uses
// github.com/caarlos0/env. Durations accept Go syntax ("5ms"), slog levels
// accept their names ("debug").
package config
