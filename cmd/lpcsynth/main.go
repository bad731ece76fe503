// SPDX-License-Identifier: EPL-2.0

// Command lpcsynth runs an audio file through LPC analysis and resynthesis
// and writes the result as a mono WAV file.
//
// Usage:
//
//	lpcsynth [flags] <input.{wav|aiff|mp3|ogg|flac}>
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ik5/lpcsynth"
	"github.com/ik5/lpcsynth/audio"
	"github.com/ik5/lpcsynth/internal/config"
	"github.com/ik5/lpcsynth/internal/metrics"
	"github.com/ik5/lpcsynth/internal/report"
	"github.com/ik5/lpcsynth/lpc"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run is main without the process exit, returning the exit code.
func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("lpcsynth", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: lpcsynth [flags] <input.{wav|aiff|mp3|ogg|flac}>")
		fs.PrintDefaults()
	}

	var (
		output      = fs.String("o", config.DefaultOutputPath, "output WAV file")
		configPath  = fs.String("config", "", "YAML configuration file")
		envFile     = fs.String("env-file", ".env", "file with LPCSYNTH_* overrides")
		reportFile  = fs.String("report", "", "write a per-frame YAML report to this file")
		metricsFile = fs.String("metrics-file", "", "write Prometheus metrics to this file")
		logLevel    = fs.String("log-level", "", "log level (debug, info, warn, error)")
		solver      = fs.String("solver", "", "LPC solver (regression, levinson)")
		workers     = fs.Int("workers", 0, "frames analysed in parallel, 0 for GOMAXPROCS")
	)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	logger := logrus.New()
	logger.SetOutput(stderr)

	if fs.NArg() != 1 {
		logger.Error("lpcsynth: no input file given")
		fs.Usage()
		return exitUsage
	}
	input := fs.Arg(0)

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if err := config.LoadEnvFile(*envFile, !set["env-file"]); err != nil {
		logger.WithError(err).Error("lpcsynth: cannot load environment file")
		return exitError
	}

	// Flags override the environment, which overrides the file; the result
	// is validated once, after every layer.
	cfg, err := config.LoadUnvalidated(*configPath)
	if err == nil {
		err = config.OverrideFromEnv(cfg, os.LookupEnv)
	}
	if err != nil {
		logger.WithError(err).Error("lpcsynth: invalid configuration")
		return exitError
	}

	if set["o"] {
		cfg.Output.Path = *output
	}
	if set["report"] {
		cfg.ReportFile = *reportFile
	}
	if set["metrics-file"] {
		cfg.MetricsFile = *metricsFile
	}
	if set["log-level"] {
		cfg.LogLevel = *logLevel
	}
	if set["solver"] {
		cfg.Analysis.Solver = lpc.SolverKind(*solver)
	}
	if set["workers"] {
		cfg.Analysis.Workers = *workers
	}
	if err := config.Validate(cfg); err != nil {
		logger.WithError(err).Error("lpcsynth: invalid configuration")
		return exitError
	}

	level, _ := logrus.ParseLevel(cfg.LogLevel)
	logger.SetLevel(level)

	if err := resynthesize(logger, cfg, input); err != nil {
		logger.WithError(err).WithField("input", input).Error("lpcsynth: resynthesis failed")
		return exitError
	}

	return exitOK
}

func resynthesize(logger *logrus.Logger, cfg *config.Config, input string) error {
	mix, err := audio.ParseMixMode(string(cfg.Input.Mix))
	if err != nil {
		return err
	}

	buf, err := lpcsynth.LoadFile(lpcsynth.NewRegistry(), input, mix)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"input":       input,
		"sample_rate": buf.SampleRate,
		"duration":    buf.Duration(),
	}).Debug("lpcsynth: input decoded")

	start := time.Now()
	res, err := lpcsynth.ResynthesizeBuffer(buf, cfg.Analysis, lpc.WithLogger(logger))
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err := lpcsynth.WriteFile(cfg.Output.Path, res, cfg.Output.BitDepth); err != nil {
		return err
	}

	if cfg.ReportFile != "" {
		if err := report.New(input, res).WriteFile(cfg.ReportFile); err != nil {
			return err
		}
	}

	if cfg.MetricsFile != "" {
		rec := metrics.New()
		rec.Observe(res, elapsed)
		if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
	}

	logger.WithFields(logrus.Fields{
		"output":   cfg.Output.Path,
		"samples":  len(res.Samples),
		"frames":   res.Stats.Frames,
		"elapsed":  elapsed,
		"clamped":  res.Stats.ClampedSamples,
		"fallback": res.Stats.SolverFallbacks,
	}).Info("lpcsynth: wrote output")

	return nil
}
