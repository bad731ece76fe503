// SPDX-License-Identifier: EPL-2.0

package lpc

import (
	"fmt"
	"io"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// framesPerWorker sizes the batches merged between fan-outs, bounding the
// number of synthesized frames held in memory at once.
const framesPerWorker = 64

// Frame is the complete analysis and synthesis result of one bin.
type Frame struct {
	Bin    int
	Offset int
	// Output holds WindowSize synthesized samples destined for Offset.
	Output         []float64
	Coefficients   []float64
	Decision       Decision
	SolverFallback bool
	SolverErr      error
	// Clamped counts output samples saturated by the filter bound.
	Clamped int
}

// FrameSummary is a Frame without its sample data.
type FrameSummary struct {
	Bin            int       `yaml:"bin"`
	Offset         int       `yaml:"offset"`
	Decision       Decision  `yaml:",inline"`
	Coefficients   []float64 `yaml:"coefficients,flow"`
	SolverFallback bool      `yaml:"solver_fallback,omitempty"`
	Clamped        int       `yaml:"clamped,omitempty"`
}

// Summary drops the sample buffers of f.
func (f Frame) Summary() FrameSummary {
	return FrameSummary{
		Bin:            f.Bin,
		Offset:         f.Offset,
		Decision:       f.Decision,
		Coefficients:   f.Coefficients,
		SolverFallback: f.SolverFallback,
		Clamped:        f.Clamped,
	}
}

// Stats aggregates per-frame outcomes of a run.
type Stats struct {
	Frames          int `yaml:"frames"`
	Voiced          int `yaml:"voiced"`
	Unvoiced        int `yaml:"unvoiced"`
	PitchUndefined  int `yaml:"pitch_undefined"`
	SolverFallbacks int `yaml:"solver_fallbacks"`
	DivergentFrames int `yaml:"divergent_frames"`
	ClampedSamples  int `yaml:"clamped_samples"`
}

func (s *Stats) add(f Frame) {
	s.Frames++

	switch {
	case f.Decision.Voiced:
		s.Voiced++
	default:
		s.Unvoiced++
	}
	if f.Decision.Lag == 0 {
		s.PitchUndefined++
	}
	if f.SolverFallback {
		s.SolverFallbacks++
	}
	if f.Clamped > 0 {
		s.DivergentFrames++
		s.ClampedSamples += f.Clamped
	}
}

// Result is the resynthesized signal plus what was decided per frame.
type Result struct {
	Samples    []float64
	SampleRate int
	// Config is the effective configuration, derived fields filled in.
	Config Config
	Frames []FrameSummary
	Stats  Stats
}

type Option func(*Processor)

// WithLogger sets the logger used for fallbacks and the run summary.
func WithLogger(l *logrus.Logger) Option {
	return func(p *Processor) {
		p.logger = l
	}
}

// WithSolver replaces the solver selected by Config.Solver.
func WithSolver(s Solver) Option {
	return func(p *Processor) {
		p.solver = s
	}
}

// Processor runs the frame-by-frame LPC analysis and resynthesis.
// It is safe for concurrent use; all per-frame state is local to AnalyzeFrame.
type Processor struct {
	cfg     Config
	window  []float64
	solver  Solver
	logger  *logrus.Logger
	workers int
}

func NewProcessor(cfg Config, opts ...Option) (*Processor, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("lpc: invalid config: %w", err)
	}

	p := &Processor{
		cfg:     cfg,
		window:  HannWindow(cfg.WindowSize),
		workers: cfg.Workers,
	}
	if p.workers == 0 {
		p.workers = runtime.GOMAXPROCS(0)
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.solver == nil {
		s, err := NewSolver(cfg.Solver)
		if err != nil {
			return nil, fmt.Errorf("lpc: %w", err)
		}
		p.solver = s
	}
	if p.logger == nil {
		p.logger = logrus.New()
		p.logger.SetOutput(io.Discard)
	}

	return p, nil
}

// Config returns the effective configuration, derived fields included.
func (p *Processor) Config() Config { return p.cfg }

// AnalyzeFrame computes the synthesized output of frame bin of samples.
// It reads samples only and allocates everything it returns.
func (p *Processor) AnalyzeFrame(samples []float64, bin int) Frame {
	cfg := p.cfg
	start, _ := FrameBounds(bin, cfg.WindowSize, cfg.HopSize)

	chunk := make([]float64, cfg.WindowSize)
	ExtractFrame(chunk, samples, start)
	ApplyWindow(chunk, p.window)

	coor := make([]float64, cfg.WindowSize)
	Autocorrelate(coor, chunk)

	f := Frame{Bin: bin, Offset: start}

	coeff, err := p.solver.Solve(coor, cfg.Order)
	if err != nil {
		coeff = passthrough(cfg.Order)
		f.SolverFallback = true
		f.SolverErr = err
	}
	f.Coefficients = coeff

	f.Decision = DetectPitch(coor, cfg.SampleRate, cfg.VoicingThreshold)
	Excite(chunk, f.Decision, cfg.SampleRate, cfg.PhaseInSeconds)

	f.Output = make([]float64, cfg.WindowSize)
	f.Clamped = Synthesize(f.Output, chunk, coeff, cfg.OutputLimit)

	return f
}

// Process resynthesizes samples. The result has exactly len(samples) samples;
// output positions not covered by any frame stay zero.
func (p *Processor) Process(samples []float64) (*Result, error) {
	if len(samples) == 0 {
		return nil, ErrEmptySignal
	}

	total := FrameCount(len(samples), p.cfg.HopSize)
	res := &Result{
		Samples:    make([]float64, len(samples)),
		SampleRate: p.cfg.SampleRate,
		Config:     p.cfg,
		Frames:     make([]FrameSummary, 0, total),
	}

	if total == 0 {
		p.logger.WithFields(logrus.Fields{
			"samples":  len(samples),
			"hop_size": p.cfg.HopSize,
		}).Warn("lpc: signal shorter than one hop, output is silent")
		return res, nil
	}

	batch := make([]Frame, min(total, p.workers*framesPerWorker))
	for first := 0; first < total; first += len(batch) {
		n := min(len(batch), total-first)

		var g errgroup.Group
		g.SetLimit(p.workers)
		for i := range n {
			g.Go(func() error {
				batch[i] = p.AnalyzeFrame(samples, first+i)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("lpc: %w", err)
		}

		// Merge in bin order so the highest bin covering an index wins.
		for i := range n {
			p.merge(res, batch[i])
			batch[i] = Frame{}
		}
	}

	p.logger.WithFields(logrus.Fields{
		"frames":           res.Stats.Frames,
		"voiced":           res.Stats.Voiced,
		"solver_fallbacks": res.Stats.SolverFallbacks,
		"divergent_frames": res.Stats.DivergentFrames,
	}).Info("lpc: resynthesis complete")

	return res, nil
}

func (p *Processor) merge(res *Result, f Frame) {
	Overwrite(res.Samples, f.Output, f.Offset)
	res.Stats.add(f)
	res.Frames = append(res.Frames, f.Summary())

	if f.SolverFallback {
		p.logger.WithError(f.SolverErr).WithFields(logrus.Fields{
			"bin":    f.Bin,
			"offset": f.Offset,
		}).Debug("lpc: solver failed, using passthrough coefficients")
	}
	if f.Clamped > 0 {
		p.logger.WithFields(logrus.Fields{
			"bin":     f.Bin,
			"clamped": f.Clamped,
		}).Debug("lpc: synthesis filter output saturated")
	}
}
