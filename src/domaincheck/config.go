// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domaincheck

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by [Config.Format].
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Duration wraps [time.Duration] so YAML config can use values like
// "5s" or "1m30s".
type Duration time.Duration

// UnmarshalYAML decodes a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML encodes the duration back to its string form.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Config is the YAML configuration surface of the batch CLI. Zero
// values fall back to checker defaults; command-line flags override
// anything loaded from file.
type Config struct {
	// Checks selects which checks run. Batch runs default to all four.
	Checks CheckConfig `yaml:"checks"`

	// Timeout bounds each probe attempt.
	Timeout Duration `yaml:"timeout"`

	// Concurrency is the number of domains processed in parallel.
	Concurrency int `yaml:"concurrency"`

	// DescriptiveStatus switches the accessibility column to the
	// "<code> - <description>" form.
	DescriptiveStatus bool `yaml:"descriptive_status"`

	// SortByAttention reorders the export: unreachable domains first,
	// then possibly-parked ones.
	SortByAttention bool `yaml:"sort_by_attention"`

	// ExtraParkingKeywords extends the built-in parking keyword table.
	ExtraParkingKeywords []string `yaml:"extra_parking_keywords"`

	// DNSServers overrides the resolvers used by the NS probe.
	DNSServers []string `yaml:"dns_servers"`

	// Output is the result file path; Format is "csv" or "xlsx".
	Output string `yaml:"output"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the batch defaults: all checks enabled,
// sequential processing, CSV output to [DefaultOutputFile].
func DefaultConfig() Config {
	return Config{
		Checks:      AllChecks(),
		Timeout:     Duration(defaultTimeout),
		Concurrency: defaultConcurrency,
		Output:      DefaultOutputFile,
		Format:      FormatCSV,
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Format != FormatCSV && cfg.Format != FormatXLSX {
		return cfg, fmt.Errorf("unsupported output format %q", cfg.Format)
	}
	return cfg, nil
}

// Options translates the config into checker options.
func (cfg Config) Options() []Option {
	opts := []Option{
		WithChecks(cfg.Checks),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, WithTimeout(time.Duration(cfg.Timeout)))
	}
	if cfg.Concurrency > 0 {
		opts = append(opts, WithConcurrency(cfg.Concurrency))
	}
	if cfg.DescriptiveStatus {
		opts = append(opts, WithDescriptiveStatus())
	}
	if len(cfg.ExtraParkingKeywords) > 0 {
		opts = append(opts, WithParkingKeywords(cfg.ExtraParkingKeywords...))
	}
	if len(cfg.DNSServers) > 0 {
		opts = append(opts, WithDNSServers(cfg.DNSServers...))
	}
	return opts
}
