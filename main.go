package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/eiannone/keyboard"
	"github.com/rs/zerolog"

	"elevsim/building"
	"elevsim/config"
	"elevsim/dispatch"
	"elevsim/evaluate"
	"elevsim/util/logger"
	"elevsim/util/timer"
)

type options struct {
	configPath  string
	envPath     string
	policy      string
	external    string
	steps       int
	trailing    int
	seed        uint64
	interactive bool
	compare     int
	workers     int
	quiet       bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "YAML config file, defaults are used when empty")
	flag.StringVar(&opts.envPath, "env", ".env", "file with ELEVSIM_* overrides")
	flag.StringVar(&opts.policy, "policy", "", "dispatch policy: scan, look, clook or idle")
	flag.StringVar(&opts.external, "external", "", "executable that decides actions, overrides -policy")
	flag.IntVar(&opts.steps, "steps", 0, "ticks with arrivals")
	flag.IntVar(&opts.trailing, "trailing", 0, "ticks without arrivals after the main run")
	flag.Uint64Var(&opts.seed, "seed", 0, "random seed")
	flag.BoolVar(&opts.interactive, "interactive", false, "step with the keyboard: any key steps, d drains, q or Ctrl+C quits")
	flag.IntVar(&opts.compare, "compare", 0, "rank scan, look and clook over this many seeds")
	flag.IntVar(&opts.workers, "workers", 0, "parallel runs for -compare, one per CPU when 0")
	flag.BoolVar(&opts.quiet, "quiet", false, "only print the summary")
	flag.Parse()

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
	log := logger.GetLoggerConfigured(logger.ParseLevel(cfg.LogLevel))

	switch {
	case opts.compare > 0:
		err = compare(cfg, opts)
	case opts.interactive:
		err = interactive(cfg, opts)
	default:
		err = simulate(cfg, opts, log)
	}
	if err != nil {
		log.Error().Err(err).Msg("simulation failed")
		os.Exit(1)
	}
}

// loadConfig layers defaults, the YAML file, the .env file and finally explicitly set flags.
func loadConfig(opts options) (config.SimConfig, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}
	cfg, err = config.ApplyEnv(cfg, opts.envPath)
	if err != nil {
		return cfg, err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "policy":
			cfg.Policy = opts.policy
		case "steps":
			cfg.Steps = opts.steps
		case "trailing":
			cfg.TrailingSteps = opts.trailing
		case "seed":
			cfg.Seed = opts.seed
		}
	})
	return cfg, cfg.Validate()
}

func policyFor(cfg config.SimConfig, opts options) (dispatch.Policy, error) {
	if opts.external != "" {
		return dispatch.External{Path: opts.external, Timeout: 5 * time.Second}, nil
	}
	return dispatch.ByName(cfg.Policy)
}

func simulate(cfg config.SimConfig, opts options, log *zerolog.Logger) error {
	policy, err := policyFor(cfg, opts)
	if err != nil {
		return err
	}
	b, err := building.New(cfg, policy)
	if err != nil {
		return err
	}
	log.Info().
		Int("floors", cfg.Floors).
		Int("elevators", cfg.Elevators).
		Str("policy", cfg.Policy).
		Uint64("seed", cfg.Seed).
		Msg("starting simulation")

	frame := timer.NewTimer()
	for i := 0; i < cfg.Steps+cfg.TrailingSteps; i++ {
		if !opts.quiet {
			frame.Start(cfg.PrintDelay)
		}
		if _, err := b.Step(i < cfg.Steps); err != nil {
			return err
		}
		if !opts.quiet {
			if err := building.Print(os.Stdout, b); err != nil {
				return err
			}
			frame.Wait()
		}
	}

	summary := b.Summary()
	log.Info().Interface("summary", summary).Msg("simulation finished")
	fmt.Println(summary)
	return nil
}

func interactive(cfg config.SimConfig, opts options) error {
	policy, err := policyFor(cfg, opts)
	if err != nil {
		return err
	}
	b, err := building.New(cfg, policy)
	if err != nil {
		return err
	}

	fmt.Println("Any key steps, d drains, q or Ctrl+C quits")
	for {
		if err := building.Print(os.Stdout, b); err != nil {
			return err
		}
		char, key, err := keyboard.GetSingleKey()
		if err != nil {
			return err
		}
		if char == 'q' || char == 'Q' || key == keyboard.KeyCtrlC {
			break
		}
		if char == 'd' || char == 'D' {
			ticks, err := b.Drain(evaluate.MAX_DRAIN_TICKS)
			if err != nil {
				return err
			}
			fmt.Printf("Drained in %d ticks\n", ticks)
			continue
		}
		if _, err := b.Step(true); err != nil {
			return err
		}
	}
	fmt.Println(b.Summary())
	return nil
}

func compare(cfg config.SimConfig, opts options) error {
	candidates, err := evaluate.Builtins("scan", "look", "clook")
	if err != nil {
		return err
	}
	seeds := make([]uint64, opts.compare)
	for i := range seeds {
		seeds[i] = cfg.Seed + uint64(i)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	results, err := evaluate.Run(ctx, cfg, candidates, seeds, opts.workers)
	if err != nil {
		return err
	}

	fmt.Printf("%-8s %6s %12s %10s %10s %10s\n", "policy", "runs", "mean cost", "stddev", "fitness", "undrained")
	for _, r := range evaluate.Rank(results) {
		fmt.Printf("%-8s %6d %12.3f %10.3f %10.5f %10d\n", r.Policy, r.Runs, r.MeanCost, r.StdDev, r.Fitness, r.Undrained)
	}
	return nil
}
