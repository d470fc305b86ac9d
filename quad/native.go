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
	"strconv"
	"sync"
	"time"
)

// nativePartial is one worker's float64 partial-sum pair.
type nativePartial struct {
	trap, mid float64
}

// computeSpanNative is the float64 twin of computeSpan. Good to about
// 8 decimal places at the default iteration count.
func computeSpanNative(sp Span, total int64) nativePartial {
	var p nativePartial
	h := 1.0 / float64(total)
	inc := (float64(sp.Lo) + 0.5) * h
	k := sp.Lo
	for i := sp.Lo; i < sp.Hi; i++ {
		left := float64(k) * h
		k++
		right := float64(k) * h
		x := (left + right) / 2.0
		p.trap += (1.0 / (1.0 + x*x)) * h
		m := inc
		inc += h
		p.mid += (1.0 / (1.0 + m*m)) * h
	}
	return p
}

// RunNative computes the estimate in native float64 arithmetic with the
// same partitioning and Simpson combine as Run. The digit budget is
// ignored; the rendered value carries 8 decimal places.
func RunNative(cfg Config) (*Result, error) {
	cfg = cfg.withDefaults()
	spans := Partition(cfg.Iterations, cfg.Workers)

	start := time.Now()
	parts := make([]nativePartial, cfg.Workers)
	var wg sync.WaitGroup
	for j := range spans {
		wg.Add(1)
		go func(j int) {
			defer wg.Done()
			parts[j] = computeSpanNative(spans[j], cfg.Iterations)
		}(j)
	}
	wg.Wait()

	var trap, mid float64
	for _, p := range parts {
		trap += p.trap
		mid += p.mid
	}
	simp := ((2.0 * mid) + trap) / 3.0 * 4.0
	elapsed := time.Since(start)

	return &Result{
		Value:      strconv.FormatFloat(simp, 'f', 8, 64),
		Iterations: cfg.Iterations,
		Workers:    cfg.Workers,
		Digits:     9, // the 8 trustworthy decimals plus the units digit
		Elapsed:    elapsed,
	}, nil
}
