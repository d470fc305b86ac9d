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

package quad

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

// With a single subinterval both rules evaluate the integrand at 1/2,
// every intermediate is exactly representable, and the combine yields
// exactly 4·(3·0.8)/3 = 3.2.
func TestRunSingleSubinterval(t *testing.T) {
	res, err := Run(Config{Iterations: 1, Workers: 1, Digits: 25})
	if err != nil {
		t.Fatal(err)
	}
	if res.Value != "3.2" {
		t.Fatalf("expected 3.2, got %s", res.Value)
	}
}

func TestRunHundred(t *testing.T) {
	res, err := Run(Config{Iterations: 100, Workers: 1, Digits: 25})
	if err != nil {
		t.Fatal(err)
	}
	// Quadrature error dominates far above the truncation noise, so the
	// leading digits are a fixed function of N.
	const want = "3.1416009869231246"
	if !strings.HasPrefix(res.Value, want) {
		t.Fatalf("expected prefix %s, got %s", want, res.Value)
	}
	if !strings.HasPrefix(res.Value, "3.14") {
		t.Fatalf("expected a pi-like value, got %s", res.Value)
	}
}

// Defaults fill in for non-positive parameters, including a worker
// count larger than the subinterval count (the early spans are empty).
func TestRunAppliesDefaults(t *testing.T) {
	res, err := Run(Config{Iterations: 1})
	if err != nil {
		t.Fatal(err)
	}
	if res.Workers != DefaultWorkers || res.Digits != DefaultDigits {
		t.Fatalf("expected defaults %d/%d, got %d/%d",
			DefaultWorkers, DefaultDigits, res.Workers, res.Digits)
	}
	if res.Value != "3.2" {
		t.Fatalf("expected 3.2, got %s", res.Value)
	}
}

// The worker split must not change the digits: partial sums regroup
// but the per-subinterval truncation pattern is identical.
func TestRunWorkerInvariance(t *testing.T) {
	one, err := Run(Config{Iterations: 200, Workers: 1, Digits: 25})
	if err != nil {
		t.Fatal(err)
	}
	five, err := Run(Config{Iterations: 200, Workers: 5, Digits: 25})
	if err != nil {
		t.Fatal(err)
	}
	const want = "3.14159473692312"
	if !strings.HasPrefix(one.Value, want) {
		t.Fatalf("W=1: expected prefix %s, got %s", want, one.Value)
	}
	if !strings.HasPrefix(five.Value, want) {
		t.Fatalf("W=5: expected prefix %s, got %s", want, five.Value)
	}
}

func TestRunDeterministic(t *testing.T) {
	cfg := Config{Iterations: 150, Workers: 3, Digits: 25}
	a, err := Run(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Run(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if a.Value != b.Value {
		t.Fatalf("two runs disagree: %s vs %s", a.Value, b.Value)
	}
	if a.Pi.Cmp(b.Pi) != 0 {
		t.Fatalf("two runs disagree: %s vs %s", a.Pi, b.Pi)
	}
}

// The documented canonical invocation: 20000 subintervals across 8
// workers at 25 digits agrees with pi to 8 decimal places.
func TestRunCanonical(t *testing.T) {
	if testing.Short() {
		t.Skip("full-size run")
	}
	res, err := Run(Config{Iterations: 20000, Workers: 8, Digits: 25})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(res.Value, "3.14159265") {
		t.Fatalf("expected 8 correct decimals, got %s", res.Value)
	}
}

func TestReferenceDigits(t *testing.T) {
	if got := ReferenceDigits(25); got != "141592653589793238462643" {
		t.Fatalf("got %s", got)
	}
	if got := ReferenceDigits(1); got != "" {
		t.Fatalf("expected empty, got %s", got)
	}
	if got := len(ReferenceDigits(500)); got != 100 {
		t.Fatalf("expected the full 100 stored digits, got %d", got)
	}
}

func TestReport(t *testing.T) {
	res := &Result{
		Value:   "3.2",
		Digits:  25,
		Elapsed: 1500 * time.Millisecond,
	}
	var buf bytes.Buffer
	res.Report(&buf)
	want := "The calculated value of pi is 3.2\n" +
		"The actual value of pi is     3.141592653589793238462643\n" +
		"The time taken to calculate this was 1.50 seconds\n"
	if buf.String() != want {
		t.Fatalf("expected:\n%q\ngot:\n%q", want, buf.String())
	}
}

func TestRunNative(t *testing.T) {
	res, err := RunNative(Config{Iterations: 1, Workers: 1})
	if err != nil {
		t.Fatal(err)
	}
	if res.Value != "3.20000000" {
		t.Fatalf("expected 3.20000000, got %s", res.Value)
	}

	res, err = RunNative(Config{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Iterations != DefaultIterations || res.Workers != DefaultWorkers {
		t.Fatalf("defaults not applied: %+v", res)
	}
	if !strings.HasPrefix(res.Value, "3.14159265") {
		t.Fatalf("expected 8 correct decimals, got %s", res.Value)
	}
	if res.Pi != nil {
		t.Fatal("native runs carry no bignum")
	}
}
