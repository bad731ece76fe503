// SPDX-License-Identifier: EPL-2.0

// Package metrics exposes the statistics of a resynthesis run as Prometheus
// metrics, written to a node_exporter style textfile.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ik5/lpcsynth/lpc"
)

const namespace = "lpcsynth"

// Recorder owns a private registry with one collector per run statistic.
type Recorder struct {
	reg *prometheus.Registry

	frames         *prometheus.CounterVec
	pitchUndefined prometheus.Counter
	fallbacks      prometheus.Counter
	divergent      prometheus.Counter
	clamped        prometheus.Counter
	samples        prometheus.Counter
	duration       prometheus.Gauge
}

func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		frames: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_total",
			Help:      "Analysis frames processed, by voicing decision.",
		}, []string{"voicing"}),
		pitchUndefined: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pitch_undefined_frames_total",
			Help:      "Frames without an autocorrelation peak past the zero-lag lobe.",
		}),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solver_fallbacks_total",
			Help:      "Frames synthesized with passthrough coefficients after a solver failure.",
		}),
		divergent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "divergent_frames_total",
			Help:      "Frames with at least one saturated output sample.",
		}),
		clamped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clamped_samples_total",
			Help:      "Output samples saturated to the output limit.",
		}),
		samples: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "output_samples_total",
			Help:      "Samples written to the resynthesized signal.",
		}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of the last resynthesis run.",
		}),
	}

	r.reg.MustRegister(r.frames, r.pitchUndefined, r.fallbacks, r.divergent,
		r.clamped, r.samples, r.duration)

	return r
}

// Registry returns the registry holding the run metrics.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// Observe adds the statistics of one finished run.
func (r *Recorder) Observe(res *lpc.Result, elapsed time.Duration) {
	s := res.Stats

	r.frames.WithLabelValues("voiced").Add(float64(s.Voiced))
	r.frames.WithLabelValues("unvoiced").Add(float64(s.Unvoiced))
	r.pitchUndefined.Add(float64(s.PitchUndefined))
	r.fallbacks.Add(float64(s.SolverFallbacks))
	r.divergent.Add(float64(s.DivergentFrames))
	r.clamped.Add(float64(s.ClampedSamples))
	r.samples.Add(float64(len(res.Samples)))
	r.duration.Set(elapsed.Seconds())
}

// WriteTextfile writes every metric to path in the Prometheus text format.
// The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metrics: write %q: %w", path, err)
	}
	return nil
}
