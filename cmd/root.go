package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	sim "github.com/inference-sim/teller-sim/sim"
	"github.com/inference-sim/teller-sim/sim/report"
	"github.com/inference-sim/teller-sim/sim/trace"
)

// Config keys shared by flags, TELLERSIM_* environment variables and viper lookups.
const (
	keyLambda      = "lambda"
	keyTellers     = "tellers"
	keyHorizon     = "horizon"
	keySeed        = "seed"
	keyTraceLevel  = "trace-level"
	keyScenario    = "scenario"
	keyLog         = "log"
	keyResultsPath = "results-path"
	keyMaxTellers  = "max-tellers"
)

var (
	// cfgViper resolves flag > environment > default for every run parameter.
	cfgViper = viper.New()

	maxTellers int // upper bound on teller counts tried by sweep
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "teller-sim",
	Short: "Discrete-event simulator for a multi-teller service counter",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logLevel := cfgViper.GetString(keyLog)
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd executes one simulated business day using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate one business day and report customer wait times",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveConfig()
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		logrus.Infof("Starting simulation with lambda=%.3f, tellers=%d, horizon=%d, seed=%d",
			cfg.Lambda, cfg.NumTellers, cfg.Horizon, cfg.Seed)
		startTime := time.Now()

		metrics, tr, err := sim.RunSimulation(cfg)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Infof("Simulation complete in %v.", time.Since(startTime))

		results, err := buildResults(metrics, tr)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		renderRun(cmd.OutOrStdout(), results)

		if path := cfgViper.GetString(keyResultsPath); path != "" {
			if err := writeResults(path, results); err != nil {
				logrus.Fatalf("%v", err)
			}
			logrus.Infof("Results written to %s", path)
		}
	},
}

// sweepCmd re-runs the same day with 1..max-tellers tellers.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Compare wait times across teller counts for the same arrival stream",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveConfig()
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		rows, err := runSweep(cfg, maxTellers)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		renderSweep(cmd.OutOrStdout(), cfg, rows)
	},
}

// resolveConfig builds the SimConfig from flags, environment and an optional scenario file.
// Precedence: explicit flag or TELLERSIM_* variable > scenario file > flag default.
func resolveConfig() (sim.SimConfig, error) {
	cfg := sim.SimConfig{
		Lambda:     cfgViper.GetFloat64(keyLambda),
		NumTellers: cfgViper.GetInt(keyTellers),
		Horizon:    cfgViper.GetInt(keyHorizon),
		Seed:       cfgViper.GetInt64(keySeed),
		TraceLevel: trace.TraceLevel(cfgViper.GetString(keyTraceLevel)),
	}

	if path := cfgViper.GetString(keyScenario); path != "" {
		sc, err := sim.LoadScenario(path)
		if err != nil {
			return sim.SimConfig{}, err
		}
		if err := sc.Validate(); err != nil {
			return sim.SimConfig{}, fmt.Errorf("scenario %s: %w", path, err)
		}
		merged := sc.ApplyTo(cfg)
		if cfgViper.IsSet(keyLambda) {
			merged.Lambda = cfg.Lambda
		}
		if cfgViper.IsSet(keyTellers) {
			merged.NumTellers = cfg.NumTellers
		}
		if cfgViper.IsSet(keyHorizon) {
			merged.Horizon = cfg.Horizon
		}
		if cfgViper.IsSet(keySeed) {
			merged.Seed = cfg.Seed
		}
		if cfgViper.IsSet(keyTraceLevel) {
			merged.TraceLevel = cfg.TraceLevel
		}
		cfg = merged
	}

	if err := cfg.Validate(); err != nil {
		return sim.SimConfig{}, err
	}
	return cfg, nil
}

// buildResults summarizes a finished run. A run in which nobody arrived has no Summary.
func buildResults(m *sim.Metrics, tr *trace.SimulationTrace) (*RunResults, error) {
	results := &RunResults{Metrics: m}
	summary, err := report.Summarize(m.WaitTimes)
	switch {
	case errors.Is(err, report.ErrEmptyDataset):
		logrus.Warn("No customers were served; skipping wait time analysis")
	case err != nil:
		return nil, fmt.Errorf("summarizing wait times: %w", err)
	default:
		results.Summary = summary
	}
	if tr != nil {
		results.Trace = trace.Summarize(tr)
	}
	return results, nil
}

// configureViper binds the command flags and TELLERSIM_* environment variables to v.
func configureViper(v *viper.Viper) error {
	v.SetEnvPrefix("TELLERSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		return err
	}
	return v.BindPFlags(runCmd.Flags())
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().String(keyLog, "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().Float64(keyLambda, 1.0, "Average customer arrivals per minute")
	rootCmd.PersistentFlags().Int(keyTellers, 1, "Number of tellers at the counter")
	rootCmd.PersistentFlags().Int(keyHorizon, sim.DefaultHorizon, "Minutes during which customers arrive")
	rootCmd.PersistentFlags().Int64(keySeed, 42, "Seed for arrival and service time sampling")
	rootCmd.PersistentFlags().String(keyScenario, "", "YAML scenario file (lambda, tellers, horizon, seed, trace_level)")
	rootCmd.PersistentFlags().String(keyTraceLevel, string(trace.TraceLevelNone), "Trace level (none, ticks)")

	runCmd.Flags().String(keyResultsPath, "", "Write metrics and wait time statistics as YAML to this file")
	sweepCmd.Flags().IntVar(&maxTellers, keyMaxTellers, 5, "Largest teller count to try")

	if err := configureViper(cfgViper); err != nil {
		logrus.Fatalf("binding flags: %v", err)
	}

	// Attach subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sweepCmd)
}
