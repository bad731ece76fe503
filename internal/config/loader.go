// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ik5/lpcsynth/audio"
	"github.com/ik5/lpcsynth/lpc"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LPCSYNTH_"

// Load reads the YAML configuration file at path and returns a validated [Config].
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg, err := LoadUnvalidated(path)
	if err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadUnvalidated is Load without the final Validate, for callers that
// layer further overrides on top of the file and validate once at the end.
func LoadUnvalidated(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r over the defaults and
// validates the result. Unknown keys are rejected.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg, err := decode(r)
	if err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	return cfg, nil
}

// LoadEnvFile loads KEY=VALUE pairs from a .env file into the process
// environment. Variables already set are left alone. A missing file is not
// an error when optional is true.
func LoadEnvFile(path string, optional bool) error {
	err := godotenv.Load(path)
	if err != nil && optional && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: load env file %q: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg fields from LPCSYNTH_* variables found by lookup,
// usually os.LookupEnv, and validates the result.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if err := OverrideFromEnv(cfg, lookup); err != nil {
		return err
	}
	return Validate(cfg)
}

// OverrideFromEnv is ApplyEnv without validation. Only malformed values
// are reported.
func OverrideFromEnv(cfg *Config, lookup func(string) (string, bool)) error {
	var errs []error

	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	num := func(name string, dst *int) {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
			return
		}
		*dst = n
	}
	float := func(name string, dst *float64) {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
			return
		}
		*dst = f
	}

	a := &cfg.Analysis
	num("SAMPLE_RATE", &a.SampleRate)
	num("WINDOW_SIZE", &a.WindowSize)
	num("HOP_SIZE", &a.HopSize)
	num("ORDER", &a.Order)
	float("VOICING_THRESHOLD", &a.VoicingThreshold)
	float("OUTPUT_LIMIT", &a.OutputLimit)
	num("WORKERS", &a.Workers)

	if v, ok := lookup(EnvPrefix + "PHASE_IN_SECONDS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sPHASE_IN_SECONDS: %w", EnvPrefix, err))
		} else {
			a.PhaseInSeconds = b
		}
	}

	var solver, mix string
	str("SOLVER", &solver)
	if solver != "" {
		a.Solver = lpc.SolverKind(solver)
	}
	str("MIX", &mix)
	if mix != "" {
		cfg.Input.Mix = audio.MixMode(mix)
	}

	str("OUTPUT", &cfg.Output.Path)
	num("BIT_DEPTH", &cfg.Output.BitDepth)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("METRICS_FILE", &cfg.MetricsFile)
	str("REPORT_FILE", &cfg.ReportFile)

	return errors.Join(errs...)
}
