package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load decodes a YAML file on top of Default(). An empty path returns the defaults.
func Load(path string) (SimConfig, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return c, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&c); err != nil {
		return c, fmt.Errorf("decode config %s: %w", path, err)
	}
	return c, nil
}

// ApplyEnv overrides fields from ELEVSIM_* keys in a .env file. A missing file is ignored.
func ApplyEnv(c SimConfig, path string) (SimConfig, error) {
	env, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("read env %s: %w", path, err)
	}

	ints := map[string]*int{
		"ELEVSIM_FLOORS":         &c.Floors,
		"ELEVSIM_ELEVATORS":      &c.Elevators,
		"ELEVSIM_SPEED":          &c.Speed,
		"ELEVSIM_CAPACITY":       &c.Capacity,
		"ELEVSIM_STEPS":          &c.Steps,
		"ELEVSIM_TRAILING_STEPS": &c.TrailingSteps,
	}
	for key, dst := range ints {
		raw, ok := env[key]
		if !ok {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return c, &ConfigurationError{Field: key, Reason: err.Error()}
		}
		*dst = v
	}

	floats := map[string]*float64{
		"ELEVSIM_ARRIVAL_RATE":        &c.ArrivalRate,
		"ELEVSIM_DISTRIBUTION_WEIGHT": &c.DistributionWeight,
	}
	for key, dst := range floats {
		raw, ok := env[key]
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c, &ConfigurationError{Field: key, Reason: err.Error()}
		}
		*dst = v
	}

	if raw, ok := env["ELEVSIM_SEED"]; ok {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return c, &ConfigurationError{Field: "ELEVSIM_SEED", Reason: err.Error()}
		}
		c.Seed = v
	}
	if raw, ok := env["ELEVSIM_PRINT_DELAY"]; ok {
		v, err := time.ParseDuration(raw)
		if err != nil {
			return c, &ConfigurationError{Field: "ELEVSIM_PRINT_DELAY", Reason: err.Error()}
		}
		c.PrintDelay = v
	}
	if raw, ok := env["ELEVSIM_POLICY"]; ok {
		c.Policy = raw
	}
	if raw, ok := env["ELEVSIM_BOARDING"]; ok {
		c.Boarding = raw
	}
	if raw, ok := env["ELEVSIM_LOG_LEVEL"]; ok {
		c.LogLevel = raw
	}
	return c, nil
}
