// Package config loads CLI defaults from .env files and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
)

// Prefix is shared by every environment key the package reads.
const Prefix = "MT19937_"

// Config holds the defaults of the mt19937 command.
type Config struct {
	Seed    uint32  `mapstructure:"MT19937_SEED"`
	Count   int     `mapstructure:"MT19937_COUNT"`
	Samples int     `mapstructure:"MT19937_SAMPLES"`
	Bins    int     `mapstructure:"MT19937_BINS"`
	Workers int     `mapstructure:"MT19937_WORKERS"`
	Alpha   float64 `mapstructure:"MT19937_ALPHA"`
}

var keys = []string{
	Prefix + "SEED",
	Prefix + "COUNT",
	Prefix + "SAMPLES",
	Prefix + "BINS",
	Prefix + "WORKERS",
	Prefix + "ALPHA",
}

// Default returns the built-in defaults: the reference printout of 200
// values for seed 1, and 100000 samples over 100 bins for quality reports.
func Default() Config {
	return Config{
		Seed:    1,
		Count:   200,
		Samples: 100000,
		Bins:    100,
		Workers: 0,
		Alpha:   0.001,
	}
}

// Load reads files (".env" when none are given; a missing .env is not an
// error), lets the process environment override them, and decodes the
// result over Default.
func Load(files ...string) (Config, error) {
	explicit := len(files) > 0
	if !explicit {
		files = []string{".env"}
	}

	values, err := godotenv.Read(files...)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: reading %v: %w", files, err)
		}
		values = map[string]string{}
	}
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			values[k] = v
		}
	}

	return Decode(values)
}

// Decode converts string values keyed by environment name over Default.
// Unknown keys are ignored.
func Decode(values map[string]string) (Config, error) {
	cfg := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(values); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Vars exposes the configuration as interpolation variables for CLI
// defaults.
func (c Config) Vars() map[string]string {
	return map[string]string{
		"seed":    strconv.FormatUint(uint64(c.Seed), 10),
		"count":   strconv.Itoa(c.Count),
		"samples": strconv.Itoa(c.Samples),
		"bins":    strconv.Itoa(c.Bins),
		"workers": strconv.Itoa(c.Workers),
		"alpha":   strconv.FormatFloat(c.Alpha, 'g', -1, 64),
	}
}
