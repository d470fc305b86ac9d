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

// Package bignum implements unsigned arbitrary-precision decimal numbers
// with a fixed per-value significant-digit budget. Digits beyond the
// budget are truncated, never rounded.
package bignum

import (
	"strings"

	"github.com/pkg/errors"
)

// Num is an unsigned decimal number. Its value is:
//
//	Σ digits[i] · 10^(power − i)
//
// Digits are stored most-significant first, each in 0..9. A Num never
// stores leading or trailing zero digits; the zero value of the number is
// an empty digit sequence. The digit budget is fixed at construction and
// every operation truncates low-order digits that would exceed it.
type Num struct {
	power     int64
	digits    []byte // MSD first; len is the significant digit count
	precision int
}

// New creates a zero Num that can hold up to precision significant
// digits. precision must be at least 1.
func New(precision int) *Num {
	if precision < 1 {
		panic(errors.Errorf("bignum: nonpositive precision %d", precision))
	}
	return &Num{
		digits:    make([]byte, 0, precision),
		precision: precision,
	}
}

// NewFromString creates a Num with the given digit budget from a plain
// decimal string, as produced by Text.
func NewFromString(s string, precision int) (*Num, error) {
	n := New(precision)
	if err := n.SetString(s); err != nil {
		return nil, err
	}
	return n, nil
}

// Reset sets n to zero. The digit budget is retained.
func (n *Num) Reset() {
	n.digits = n.digits[:0]
	n.power = 0
}

// IsZero reports whether n is zero.
func (n *Num) IsZero() bool {
	return len(n.digits) == 0
}

// NumDigits returns the count of stored significant digits.
func (n *Num) NumDigits() int {
	return len(n.digits)
}

// Power returns the decimal exponent of the most-significant stored
// digit. It is 0 for a zero Num.
func (n *Num) Power() int64 {
	return n.power
}

// Precision returns the digit budget fixed at construction.
func (n *Num) Precision() int {
	return n.precision
}

// Set copies the value of x into z and returns z. If x holds more digits
// than z's budget, the low-order digits are truncated.
func (z *Num) Set(x *Num) *Num {
	if z == x {
		return z
	}
	if len(x.digits) == 0 {
		z.Reset()
		return z
	}
	c := len(x.digits)
	if c > z.precision {
		c = z.precision
	}
	z.digits = append(z.digits[:0], x.digits[:c]...)
	// The cut can expose a trailing zero.
	for len(z.digits) > 0 && z.digits[len(z.digits)-1] == 0 {
		z.digits = z.digits[:len(z.digits)-1]
	}
	z.power = x.power
	return z
}

// SetInt64 sets z to the non-negative integer v. If v needs more digits
// than z's budget, the low-order digits are truncated.
func (z *Num) SetInt64(v int64) error {
	if v < 0 {
		return errors.Errorf("bignum: negative value %d", v)
	}
	z.Reset()
	if v == 0 {
		return nil
	}
	var buf [20]byte // LSD first
	cnt := 0
	for t := v; t > 0; t /= 10 {
		buf[cnt] = byte(t % 10)
		cnt++
	}
	z.power = int64(cnt - 1)
	tz := 0
	for buf[tz] == 0 { // the value's own trailing zeros are not stored
		tz++
	}
	keep := cnt - tz
	if keep > z.precision {
		keep = z.precision
	}
	for i := 0; i < keep; i++ {
		z.digits = append(z.digits, buf[cnt-1-i])
	}
	for len(z.digits) > 0 && z.digits[len(z.digits)-1] == 0 {
		z.digits = z.digits[:len(z.digits)-1]
	}
	return nil
}

// SetString sets z from a plain decimal string: an optional fraction
// separated by a single dot, digits only, no sign and no exponent. It
// accepts everything Text produces. A zero-budget receiver adopts the
// parsed digit count as its budget.
func (z *Num) SetString(s string) error {
	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
		if fracPart == "" {
			return errors.Errorf("bignum: parse %q: missing fraction", s)
		}
	}
	if intPart == "" && fracPart == "" {
		return errors.Errorf("bignum: parse %q: empty", s)
	}
	all := intPart + fracPart
	for i := 0; i < len(all); i++ {
		if all[i] < '0' || all[i] > '9' {
			return errors.Errorf("bignum: parse %q: invalid digit %q", s, all[i])
		}
	}
	first := 0
	for first < len(all) && all[first] == '0' {
		first++
	}
	if first == len(all) {
		z.Reset()
		return nil
	}
	last := len(all) - 1
	for all[last] == '0' {
		last--
	}
	digs := all[first : last+1]
	if z.precision == 0 {
		z.precision = len(digs)
	}
	if len(digs) > z.precision {
		digs = digs[:z.precision]
		for len(digs) > 0 && digs[len(digs)-1] == '0' {
			digs = digs[:len(digs)-1]
		}
	}
	z.power = int64(len(intPart) - 1 - first)
	if cap(z.digits) < len(digs) {
		z.digits = make([]byte, 0, z.precision)
	}
	z.digits = z.digits[:0]
	for i := 0; i < len(digs); i++ {
		z.digits = append(z.digits, digs[i]-'0')
	}
	return nil
}

// String renders n with all stored significant digits.
func (n *Num) String() string {
	return n.Text(0)
}

// Text renders n in plain decimal notation. At most limit significant
// digits are emitted; limit <= 0 means all of them. The integral part is
// never suppressed by limit, and leading fractional zeros do not count
// against it.
func (n *Num) Text(limit int) string {
	sig := len(n.digits)
	if sig == 0 {
		return "0"
	}
	if limit <= 0 || limit > sig {
		limit = sig
	}
	var b strings.Builder
	switch {
	case n.power < 0:
		b.WriteString("0.")
		for i := int64(1); i < -n.power; i++ {
			b.WriteByte('0')
		}
		writeDigits(&b, n.digits[:limit])
	case int64(sig) > n.power+1:
		writeDigits(&b, n.digits[:n.power+1])
		if int64(limit) > n.power+1 {
			b.WriteByte('.')
			writeDigits(&b, n.digits[n.power+1:limit])
		}
	default:
		writeDigits(&b, n.digits)
		for i := int64(sig); i < n.power+1; i++ {
			b.WriteByte('0')
		}
	}
	return b.String()
}

func writeDigits(b *strings.Builder, digits []byte) {
	for _, d := range digits {
		b.WriteByte('0' + d)
	}
}

// Cmp compares the values of n and x and returns:
//
//	-1 if n <  x
//	 0 if n == x
//	+1 if n >  x
func (n *Num) Cmp(x *Num) int {
	switch {
	case len(n.digits) == 0 && len(x.digits) == 0:
		return 0
	case len(n.digits) == 0:
		return -1
	case len(x.digits) == 0:
		return 1
	case n.power < x.power:
		return -1
	case n.power > x.power:
		return 1
	}
	c := len(n.digits)
	if len(x.digits) < c {
		c = len(x.digits)
	}
	for i := 0; i < c; i++ {
		if n.digits[i] < x.digits[i] {
			return -1
		}
		if n.digits[i] > x.digits[i] {
			return 1
		}
	}
	// No trailing zeros are stored, so on a common prefix the longer
	// number is the larger one.
	switch {
	case len(n.digits) < len(x.digits):
		return -1
	case len(n.digits) > len(x.digits):
		return 1
	}
	return 0
}
