// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package main provides the softreg CLI.
//
// Commands:
//
//	softreg version
//	softreg epoch [-samples N] [-features N] [-classes N] [-lr F] [-batch N] [-seed N] [-stable]
//
// epoch builds a synthetic dataset, runs exactly one training epoch from zero
// weights and reports loss and accuracy before and after.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/klauspost/cpuid/v2"

	"github.com/born-ml/softreg/internal/nn"
	"github.com/born-ml/softreg/internal/synth"
	"github.com/born-ml/softreg/internal/tensor"
	"github.com/born-ml/softreg/internal/trainer"
)

const version = "v0.1.0"

var errUsage = errors.New("usage")

func main() {
	log.SetFlags(0)
	log.SetPrefix("softreg: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		// Usage text and -h output are already on stdout.
		if err != errUsage && !errors.Is(err, flag.ErrHelp) { //nolint:errorlint // bare usage error only
			log.Print(err)
		}
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		printUsage(out)
		return errUsage
	}

	switch args[0] {
	case "version":
		printVersion(out)
		return nil
	case "epoch":
		return runEpoch(args[1:], out)
	default:
		printUsage(out)
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func printUsage(out io.Writer) {
	fmt.Fprintln(out, "softreg - mini-batch SGD for softmax regression")
	fmt.Fprintf(out, "Version: %s\n\n", version)
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  version    Show version and CPU features")
	fmt.Fprintln(out, "  epoch      Train one epoch on synthetic data")
}

func printVersion(out io.Writer) {
	fmt.Fprintf(out, "softreg %s\n", version)

	var simd []string
	for _, f := range []cpuid.FeatureID{cpuid.SSE2, cpuid.AVX, cpuid.AVX2, cpuid.FMA3, cpuid.AVX512F, cpuid.ASIMD} {
		if cpuid.CPU.Supports(f) {
			simd = append(simd, f.String())
		}
	}
	if len(simd) == 0 {
		simd = append(simd, "none")
	}

	fmt.Fprintf(out, "cpu: %s (%d logical cores)\n", cpuid.CPU.BrandName, cpuid.CPU.LogicalCores)
	fmt.Fprintf(out, "simd: %s\n", strings.Join(simd, " "))
}

// epochOptions are the flags of the epoch command.
type epochOptions struct {
	samples  int
	features int
	classes  int
	lr       float64
	batch    int
	seed     uint64
	stable   bool
}

func parseEpochFlags(args []string, out io.Writer) (epochOptions, error) {
	var opts epochOptions
	fs := flag.NewFlagSet("epoch", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.IntVar(&opts.samples, "samples", 256, "Number of synthetic rows")
	fs.IntVar(&opts.features, "features", 8, "Features per row")
	fs.IntVar(&opts.classes, "classes", 4, "Number of classes")
	fs.Float64Var(&opts.lr, "lr", 0.1, "Learning rate")
	fs.IntVar(&opts.batch, "batch", 32, "Mini-batch size")
	fs.Uint64Var(&opts.seed, "seed", 42, "Dataset seed")
	fs.BoolVar(&opts.stable, "stable", false, "Subtract the row max before softmax")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("epoch: unexpected arguments %v", fs.Args())
	}
	return opts, nil
}

func runEpoch(args []string, out io.Writer) error {
	opts, err := parseEpochFlags(args, out)
	if err != nil {
		return err
	}

	x, y, err := synth.Blobs(synth.Config{
		Samples:  opts.samples,
		Features: opts.features,
		Classes:  opts.classes,
		Seed:     opts.seed,
	})
	if err != nil {
		return fmt.Errorf("generate dataset: %w", err)
	}

	theta, err := tensor.NewMatrix(opts.features, opts.classes)
	if err != nil {
		return err
	}

	cfg := trainer.Config{
		LearningRate:  opts.lr,
		BatchSize:     opts.batch,
		NumClasses:    opts.classes,
		StableSoftmax: opts.stable,
	}

	fmt.Fprintf(out, "dataset: %d rows, %d features, %d classes (seed %d)\n",
		opts.samples, opts.features, opts.classes, opts.seed)
	if err := report(out, "before", x, y, theta, opts.stable); err != nil {
		return err
	}

	if err := trainer.RunEpoch(x, y, theta, cfg); err != nil {
		return fmt.Errorf("epoch: %w", err)
	}

	return report(out, "after", x, y, theta, opts.stable)
}

func report(out io.Writer, stage string, x *tensor.Matrix, y tensor.Labels, theta *tensor.Matrix, stable bool) error {
	probs, err := nn.Probabilities(x, theta, stable)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%-6s loss=%.4f accuracy=%.3f\n", stage, nn.CrossEntropy(probs, y), nn.Accuracy(probs, y))
	return nil
}
