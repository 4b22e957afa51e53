// Package synth generates small labelled datasets for demos and tests.
package synth

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/softreg/internal/tensor"
)

// Config describes a blob dataset.
type Config struct {
	Samples    int     // Rows to generate.
	Features   int     // Columns; must be >= Classes.
	Classes    int     // Number of classes (>= 2).
	Separation float64 // Centre offset along each owned axis (default: 1.0)
	Spread     float64 // Half-width of the uniform noise (default: 0.25)
	Seed       uint64  // PRNG seed; equal seeds give equal datasets.
}

// Validate verifies the config can produce a dataset.
func (c Config) Validate() error {
	if c.Samples <= 0 {
		return fmt.Errorf("synth: samples must be > 0 (got %d)", c.Samples)
	}
	if c.Classes < 2 {
		return fmt.Errorf("synth: classes must be >= 2 (got %d)", c.Classes)
	}
	if c.Features < c.Classes {
		return fmt.Errorf("synth: features (%d) must be >= classes (%d)", c.Features, c.Classes)
	}
	if c.Spread < 0 || c.Separation < 0 {
		return errors.New("synth: separation and spread must not be negative")
	}
	return nil
}

// Blobs returns a features matrix [Samples, Features] and its labels.
//
// Feature axis f is owned by class f % Classes. A row of class c sits at
// Separation on every axis c owns and at 0 elsewhere, plus uniform noise in
// [-Spread, Spread] on every axis. Row i has class i % Classes, so any
// contiguous mini-batch mixes the classes. With Spread well below
// Separation/2 the classes are linearly separable through the origin.
func Blobs(cfg Config) (*tensor.Matrix, tensor.Labels, error) {
	if cfg.Separation == 0 {
		cfg.Separation = 1.0
	}
	if cfg.Spread == 0 {
		cfg.Spread = 0.25
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	x, err := tensor.NewMatrix(cfg.Samples, cfg.Features)
	if err != nil {
		return nil, nil, err
	}
	labels := make(tensor.Labels, cfg.Samples)

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	for i := 0; i < cfg.Samples; i++ {
		class := i % cfg.Classes
		labels[i] = int32(class)

		row := x.Row(i)
		for f := range row {
			noise := (rng.Float64()*2 - 1) * cfg.Spread
			if f%cfg.Classes == class {
				row[f] = cfg.Separation + noise
			} else {
				row[f] = noise
			}
		}
	}

	return x, labels, nil
}
