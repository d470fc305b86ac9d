// Copyright 2023 The Quadpi Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package quad estimates π by composite numerical integration of
// 4/(1+x²) on [0,1]. Trapezoid and midpoint sums are accumulated per
// subinterval range by parallel workers and fused into a Simpson's 1/3
// estimate. The high-precision path runs entirely on bignum arithmetic;
// a native float64 path is available for quick runs.
package quad

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/quadpi/quadpi/bignum"
	"github.com/quadpi/quadpi/clog"
)

// referencePi is the decimal expansion of π to 100 fractional digits,
// without the leading "3.".
const referencePi = "14159265358979323846264338327950288419716939937510" +
	"58209749445923078164062862089986280348253421170679"

const (
	// DefaultIterations is the subinterval count used when none is given.
	DefaultIterations = 20000
	// DefaultWorkers is the worker count used when none is given.
	DefaultWorkers = 8
	// DefaultDigits is the digit budget used when none is given. Error
	// accumulates in the last places, so budget roughly twice the digits
	// you need to trust.
	DefaultDigits = 25
)

// Config carries the run parameters. Non-positive fields fall back to
// the defaults.
type Config struct {
	Iterations int64 // number of subintervals N
	Workers    int   // number of parallel workers W
	Digits     int   // significant-digit budget D for the bignum path
}

func (c Config) withDefaults() Config {
	if c.Iterations < 1 {
		c.Iterations = DefaultIterations
	}
	if c.Workers < 1 {
		c.Workers = DefaultWorkers
	}
	if c.Digits < 1 {
		c.Digits = DefaultDigits
	}
	return c
}

// Result is a completed estimate.
type Result struct {
	Pi         *bignum.Num // final estimate; nil for native runs
	Value      string      // rendered estimate
	Iterations int64
	Workers    int
	Digits     int
	Elapsed    time.Duration
}

// Run computes the bignum estimate for cfg: fan out one worker per
// span, join, reduce the partial sums in ascending worker order, and
// apply the Simpson combiner 4·(2·M + T)/3. Any worker failure aborts
// the run.
func Run(cfg Config) (*Result, error) {
	cfg = cfg.withDefaults()
	logger := clog.New("driver %s ", uuidShort(uuid.NewString()))
	spans := Partition(cfg.Iterations, cfg.Workers)
	logger.Printf("partitioned %d subintervals across %d workers", cfg.Iterations, cfg.Workers)

	start := time.Now()
	parts := make([]partial, cfg.Workers)
	werrs := make([]error, cfg.Workers)
	var wg sync.WaitGroup
	for j := range spans {
		wg.Add(1)
		go func(j int) {
			defer wg.Done()
			parts[j], werrs[j] = computeSpan(spans[j], cfg.Iterations, cfg.Digits)
		}(j)
	}
	wg.Wait()
	for j, err := range werrs {
		if err != nil {
			return nil, errors.Wrapf(err, "worker %d", j)
		}
	}
	logger.Printf("all %d workers joined", cfg.Workers)

	trap := bignum.New(cfg.Digits)
	mid := bignum.New(cfg.Digits)
	tmp := bignum.New(cfg.Digits)
	simp := bignum.New(cfg.Digits)
	var ed bignum.ErrNum
	for j := range parts {
		ed.Add(tmp, trap, parts[j].trap)
		trap.Reset()
		trap.Set(tmp)
		tmp.Reset()
		ed.Add(tmp, mid, parts[j].mid)
		mid.Reset()
		mid.Set(tmp)
		tmp.Reset()
	}

	// Simpson combine: 4·(2·mid + trap)/3.
	ed.MulInt64(tmp, mid, 2)
	mid.Reset()
	mid.Set(tmp)
	tmp.Reset()
	ed.Add(tmp, trap, mid)
	trap.Reset()
	trap.Set(tmp)
	tmp.Reset()
	ed.QuoInt64(tmp, trap, 3)
	trap.Reset()
	trap.Set(tmp)
	tmp.Reset()
	ed.MulInt64(simp, trap, 4)
	elapsed := time.Since(start)
	if ed.Err != nil {
		return nil, errors.Wrap(ed.Err, "combining partial sums")
	}

	return &Result{
		Pi:         simp,
		Value:      simp.String(),
		Iterations: cfg.Iterations,
		Workers:    cfg.Workers,
		Digits:     cfg.Digits,
		Elapsed:    elapsed,
	}, nil
}

// ReferenceDigits returns the first digits-1 fractional digits of π,
// clamped to the stored 100.
func ReferenceDigits(digits int) string {
	n := digits - 1
	if n < 0 {
		n = 0
	}
	if n > len(referencePi) {
		n = len(referencePi)
	}
	return referencePi[:n]
}

// Report writes the three result lines.
func (r *Result) Report(w io.Writer) {
	fmt.Fprintf(w, "The calculated value of pi is %s\n", r.Value)
	fmt.Fprintf(w, "The actual value of pi is     3.%s\n", ReferenceDigits(r.Digits))
	fmt.Fprintf(w, "The time taken to calculate this was %.2f seconds\n", r.Elapsed.Seconds())
}
