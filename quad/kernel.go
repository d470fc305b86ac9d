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
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/quadpi/quadpi/bignum"
	"github.com/quadpi/quadpi/clog"
)

// A partial holds one worker's accumulated trapezoid and midpoint sums.
// It is written once by its worker and read once by the driver after the
// join.
type partial struct {
	trap, mid *bignum.Num
}

// uuidShort returns the first part of a string in UUID v4 format;
// otherwise the complete string is returned.
func uuidShort(id string) string {
	if i := strings.Index(id, "-"); i != -1 {
		return id[:i]
	}
	return id
}

// computeSpan accumulates the trapezoid and midpoint partial sums for
// the subintervals of sp, with h = 1/total. All arithmetic stays in the
// bignum domain at the given digit budget; the summation order is
// strictly ascending so repeated runs truncate identically.
//
// The midpoint abscissa inc = (i + 0.5)·h is carried across iterations
// and advanced by h each step rather than recomputed; the right-edge
// counter k runs one ahead of i between the trapezoid and midpoint
// halves of the loop body.
func computeSpan(sp Span, total int64, digits int) (partial, error) {
	logger := clog.New("worker %s ", uuidShort(uuid.NewString()))
	logger.Printf("computing [%d, %d) of %d at %d digits", sp.Lo, sp.Hi, total, digits)

	trap := bignum.New(digits)
	mid := bignum.New(digits)
	invIter := bignum.New(digits)
	t1 := bignum.New(digits)
	t2 := bignum.New(digits)
	inc := bignum.New(digits)
	left := bignum.New(digits)
	right := bignum.New(digits)

	// The arithmetic chain runs unchecked; ed holds the first failure
	// and every later operation becomes a no-op.
	var ed bignum.ErrNum

	// invIter = h = 1/total, inc = lo·h + h/2.
	ed.SetInt64(t1, total)
	ed.Int64Quo(invIter, 1, t1)
	t1.Reset()
	k := sp.Lo
	ed.QuoInt64(t1, invIter, 2)
	ed.SetInt64(inc, k)
	ed.Mul(t2, inc, invIter)
	inc.Reset()
	inc.Set(t2)
	t2.Reset()
	ed.Add(t2, inc, t1)
	inc.Reset()
	inc.Set(t2)
	t2.Reset()
	t1.Reset()

	for i := sp.Lo; i < sp.Hi; i++ {
		// Trapezoid: h / (1 + ((k·h + (k+1)·h)/2)²).
		left.Reset()
		ed.SetInt64(left, k)
		ed.Mul(t2, left, invIter)
		left.Reset()
		left.Set(t2)
		t2.Reset()
		k++
		right.Reset()
		ed.SetInt64(right, k)
		ed.Mul(t2, right, invIter)
		right.Reset()
		right.Set(t2)
		t2.Reset()
		ed.Add(t1, left, right)
		ed.QuoInt64(t2, t1, 2)
		t1.Reset()
		t1.Set(t2)
		t2.Reset()
		ed.Mul(t2, t1, t1)
		t1.Reset()
		t1.Set(t2)
		t2.Reset()
		ed.AddInt64(t2, t1, 1)
		t1.Reset()
		t1.Set(t2)
		t2.Reset()
		ed.Int64Quo(t2, 1, t1)
		t1.Reset()
		t1.Set(t2)
		t2.Reset()
		ed.Mul(t2, t1, invIter)
		t1.Reset()
		t1.Set(t2)
		t2.Reset()
		ed.Add(t2, trap, t1)
		trap.Reset()
		trap.Set(t2)
		t2.Reset()
		t1.Reset()

		// Midpoint: h / (1 + inc²), then advance inc by h.
		t1.Set(inc)
		ed.Add(t2, inc, invIter)
		inc.Reset()
		inc.Set(t2)
		t2.Reset()
		ed.Mul(t2, t1, t1)
		t1.Reset()
		t1.Set(t2)
		t2.Reset()
		ed.AddInt64(t2, t1, 1)
		t1.Reset()
		t1.Set(t2)
		t2.Reset()
		ed.Int64Quo(t2, 1, t1)
		t1.Reset()
		t1.Set(t2)
		t2.Reset()
		ed.Mul(t2, t1, invIter)
		t1.Reset()
		t1.Set(t2)
		t2.Reset()
		ed.Add(t2, mid, t1)
		mid.Reset()
		mid.Set(t2)
		t2.Reset()
		t1.Reset()
	}

	if ed.Err != nil {
		return partial{}, errors.Wrapf(ed.Err, "subintervals [%d, %d)", sp.Lo, sp.Hi)
	}
	logger.Printf("done: trap %s, mid %s", trap.Text(8), mid.Text(8))
	return partial{trap: trap, mid: mid}, nil
}
