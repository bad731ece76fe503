// SPDX-License-Identifier: EPL-2.0

// Package report writes the per-frame analysis of a run as YAML.
package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ik5/lpcsynth/lpc"
)

// Report describes one resynthesis run.
type Report struct {
	Input      string             `yaml:"input"`
	SampleRate int                `yaml:"sample_rate"`
	Samples    int                `yaml:"samples"`
	Duration   string             `yaml:"duration"`
	Config     lpc.Config         `yaml:"config"`
	Stats      lpc.Stats          `yaml:"stats"`
	Frames     []lpc.FrameSummary `yaml:"frames"`
}

// New builds the report of res, produced from input.
func New(input string, res *lpc.Result) *Report {
	var d time.Duration
	if res.SampleRate > 0 {
		d = time.Duration(len(res.Samples)) * time.Second / time.Duration(res.SampleRate)
	}

	return &Report{
		Input:      input,
		SampleRate: res.SampleRate,
		Samples:    len(res.Samples),
		Duration:   d.String(),
		Config:     res.Config,
		Stats:      res.Stats,
		Frames:     res.Frames,
	}
}

func (r *Report) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("report: encode: %w", err)
	}
	return enc.Close()
}

// WriteFile writes the report to path, truncating any existing file.
func (r *Report) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %q: %w", path, err)
	}

	if err := r.Write(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
