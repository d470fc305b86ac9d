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

package bignum

import "github.com/pkg/errors"

var (
	// ErrDivisionByZero is returned by the division operations when the
	// denominator is zero.
	ErrDivisionByZero = errors.New("division by zero")

	errAliasedOperands = errors.New("result operand aliases an input operand")
)

// ErrNum performs operations on Nums and collects errors during
// operations. If an error is already set, the operation is skipped.
// Designed to be used for many operations in a row, with a single error
// check at the end.
type ErrNum struct {
	Err error
}

// Add performs z.Add(x, y).
func (e *ErrNum) Add(z, x, y *Num) {
	if e.Err != nil {
		return
	}
	e.Err = z.Add(x, y)
}

// AddInt64 performs z.AddInt64(x, v).
func (e *ErrNum) AddInt64(z, x *Num, v int64) {
	if e.Err != nil {
		return
	}
	e.Err = z.AddInt64(x, v)
}

// Mul performs z.Mul(x, y).
func (e *ErrNum) Mul(z, x, y *Num) {
	if e.Err != nil {
		return
	}
	e.Err = z.Mul(x, y)
}

// MulInt64 performs z.MulInt64(x, v).
func (e *ErrNum) MulInt64(z, x *Num, v int64) {
	if e.Err != nil {
		return
	}
	e.Err = z.MulInt64(x, v)
}

// Quo performs z.Quo(num, denom).
func (e *ErrNum) Quo(z, num, denom *Num) {
	if e.Err != nil {
		return
	}
	e.Err = z.Quo(num, denom)
}

// QuoInt64 performs z.QuoInt64(x, v).
func (e *ErrNum) QuoInt64(z, x *Num, v int64) {
	if e.Err != nil {
		return
	}
	e.Err = z.QuoInt64(x, v)
}

// Int64Quo performs z.Int64Quo(v, x).
func (e *ErrNum) Int64Quo(z *Num, v int64, x *Num) {
	if e.Err != nil {
		return
	}
	e.Err = z.Int64Quo(v, x)
}

// SetInt64 performs z.SetInt64(v).
func (e *ErrNum) SetInt64(z *Num, v int64) {
	if e.Err != nil {
		return
	}
	e.Err = z.SetInt64(v)
}
