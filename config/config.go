package config

import (
	"time"
)

// Building defaults
const NUM_FLOORS = 5
const NUM_ELEVATORS = 2

// Elevator defaults
const ELEVATOR_MAX_SPEED = 1
const ELEVATOR_CAPACITY = 20

// Mean arrivals per floor per tick
const ARRIVAL_RATE = 0.3

// Driver loop defaults
const NUM_STEPS = 30
const NUM_TRAILING_STEPS = 10
const PRINT_DELAY = 300 * time.Millisecond

const DEFAULT_POLICY = "look"
const DEFAULT_BOARDING = "least-loaded"

// SimConfig is everything a Building needs to be constructed, plus the driver loop settings.
type SimConfig struct {
	Floors    int `yaml:"floors"`
	Elevators int `yaml:"elevators"`
	Speed     int `yaml:"speed"`    // max floors traversed per tick
	Capacity  int `yaml:"capacity"` // max passengers per elevator

	ArrivalRate  float64   `yaml:"arrival_rate"`  // used for every floor when ArrivalRates is empty
	ArrivalRates []float64 `yaml:"arrival_rates"` // one mean per floor, overrides ArrivalRate

	DistributionWeight float64 `yaml:"distribution_weight"`
	Boarding           string  `yaml:"boarding"`
	Policy             string  `yaml:"policy"`
	Seed               uint64  `yaml:"seed"`

	Steps         int           `yaml:"steps"`
	TrailingSteps int           `yaml:"trailing_steps"`
	PrintDelay    time.Duration `yaml:"print_delay"`
	LogLevel      string        `yaml:"log_level"`
}

func Default() SimConfig {
	return SimConfig{
		Floors:        NUM_FLOORS,
		Elevators:     NUM_ELEVATORS,
		Speed:         ELEVATOR_MAX_SPEED,
		Capacity:      ELEVATOR_CAPACITY,
		ArrivalRate:   ARRIVAL_RATE,
		Boarding:      DEFAULT_BOARDING,
		Policy:        DEFAULT_POLICY,
		Seed:          1,
		Steps:         NUM_STEPS,
		TrailingSteps: NUM_TRAILING_STEPS,
		PrintDelay:    PRINT_DELAY,
		LogLevel:      "info",
	}
}

// Rates returns the per-floor arrival means. The result is always a fresh slice.
func (c SimConfig) Rates() []float64 {
	rates := make([]float64, c.Floors)
	if len(c.ArrivalRates) > 0 {
		copy(rates, c.ArrivalRates)
		return rates
	}
	for floor := range rates {
		rates[floor] = c.ArrivalRate
	}
	return rates
}

func (c SimConfig) MaxFloor() int {
	return c.Floors - 1
}

// Validate rejects every combination that would produce a degenerate simulation.
func (c SimConfig) Validate() error {
	switch {
	case c.Floors < 2:
		return &ConfigurationError{Field: "floors", Reason: "need at least 2 floors"}
	case c.Elevators < 1:
		return &ConfigurationError{Field: "elevators", Reason: "need at least 1 elevator"}
	case c.Speed < 1:
		return &ConfigurationError{Field: "speed", Reason: "must be at least 1"}
	case c.Capacity < 1:
		return &ConfigurationError{Field: "capacity", Reason: "must be at least 1"}
	case c.ArrivalRate < 0:
		return &ConfigurationError{Field: "arrival_rate", Reason: "must not be negative"}
	case c.DistributionWeight < 0:
		return &ConfigurationError{Field: "distribution_weight", Reason: "must not be negative"}
	}
	if len(c.ArrivalRates) > 0 && len(c.ArrivalRates) != c.Floors {
		return &ConfigurationError{Field: "arrival_rates", Reason: "need exactly one rate per floor"}
	}
	for _, rate := range c.ArrivalRates {
		if rate < 0 {
			return &ConfigurationError{Field: "arrival_rates", Reason: "must not be negative"}
		}
	}
	return nil
}
