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

// Arithmetic is unsigned and truncating: every operation keeps at most
// the result operand's digit budget, discarding low-order digits. The
// result operand must not alias an input operand; it is clobbered
// immediately and used as a scratchpad. Input operands are expected to
// carry the same digit budget as the result.

// Add sets z to x + y. z must not alias x or y.
func (z *Num) Add(x, y *Num) error {
	if z == x || z == y {
		return errAliasedOperands
	}
	z.Reset()
	switch {
	case len(x.digits) == 0 && len(y.digits) == 0:
		return nil
	case len(x.digits) == 0:
		z.Set(y)
		return nil
	case len(y.digits) == 0:
		z.Set(x)
		return nil
	}

	bigger, smaller := x, y
	if y.power > x.power {
		bigger, smaller = y, x
	}
	shift := bigger.power - smaller.power

	// Over-shift: every digit of the smaller operand falls past the
	// result's budget, so the sum degenerates to the bigger operand.
	if shift >= int64(z.precision) {
		z.Set(bigger)
		return nil
	}

	// Lay the smaller operand into the scratch buffer shifted right to
	// align powers, cut at the budget.
	buf := make([]byte, z.precision)
	for i, d := range smaller.digits {
		pos := int(shift) + i
		if pos >= z.precision {
			break
		}
		buf[pos] = d
	}
	sig := int(shift) + len(smaller.digits)
	if sig > z.precision {
		sig = z.precision
	}
	if len(bigger.digits) > sig {
		sig = len(bigger.digits)
	}

	// Single pass from the least-significant position, adding the bigger
	// operand's digit and the carry. Trailing zeros are counted as they
	// form so they can be dropped from the digit count.
	carry := byte(0)
	zeros := 0
	trailing := true
	for i := sig - 1; i >= 0; i-- {
		s := buf[i] + carry
		if i < len(bigger.digits) {
			s += bigger.digits[i]
		}
		if s >= 10 {
			s -= 10
			carry = 1
		} else {
			carry = 0
		}
		buf[i] = s
		if trailing {
			if s == 0 {
				zeros++
			} else {
				trailing = false
			}
		}
	}
	sig -= zeros
	z.power = bigger.power

	// A carry out of the MSD shifts everything right by one; if the
	// budget is already full the least-significant digit is discarded.
	if carry != 0 {
		if sig == z.precision {
			sig--
		}
		copy(buf[1:sig+1], buf[:sig])
		buf[0] = carry
		sig++
		z.power++
	}
	z.digits = append(z.digits[:0], buf[:sig]...)
	for len(z.digits) > 0 && z.digits[len(z.digits)-1] == 0 {
		z.digits = z.digits[:len(z.digits)-1]
	}
	return nil
}

// Mul sets z to x · y. z must not alias x or y.
func (z *Num) Mul(x, y *Num) error {
	if z == x || z == y {
		return errAliasedOperands
	}
	z.Reset()
	if len(x.digits) == 0 || len(y.digits) == 0 {
		return nil
	}

	bigger, smaller := x, y
	if len(y.digits) > len(x.digits) {
		bigger, smaller = y, x
	}
	width := 2 * z.precision
	buf := make([]byte, width)

	// Schoolbook shift-and-add over the operand with fewer digits, least
	// significant first. Zero digits contribute nothing and are skipped;
	// the row's carry lands one cell above the row.
	var carry byte
	for si := 0; si < len(smaller.digits); si++ {
		sd := smaller.digits[len(smaller.digits)-1-si]
		if sd == 0 {
			continue
		}
		carry = 0
		for bi := 0; bi < len(bigger.digits); bi++ {
			bd := bigger.digits[len(bigger.digits)-1-bi]
			pos := width - si - bi - 1
			v := buf[pos] + carry + sd*bd
			carry = v / 10
			buf[pos] = v % 10
		}
		buf[width-si-len(bigger.digits)-1] = carry
	}

	z.power = bigger.power + smaller.power
	sig := len(bigger.digits) + len(smaller.digits)
	if carry == 0 { // the top scratch cell stayed empty
		sig--
		z.power--
	}
	z.power++

	zeros := 0
	for i := width - 1; i >= 0 && buf[i] == 0; i-- {
		zeros++
	}
	sig -= zeros
	if sig > z.precision {
		sig = z.precision
	}
	start := width - (len(bigger.digits) + len(smaller.digits))
	if carry == 0 {
		start++
	}
	z.digits = append(z.digits[:0], buf[start:start+sig]...)
	// The budget cut can expose new trailing zeros.
	for len(z.digits) > 0 && z.digits[len(z.digits)-1] == 0 {
		z.digits = z.digits[:len(z.digits)-1]
	}
	return nil
}

// Quo sets z to num / denom using schoolbook long division in base 10,
// truncated at z's digit budget. Division by zero is an error. z must
// not alias num or denom.
func (z *Num) Quo(num, denom *Num) error {
	if z == num || z == denom {
		return errAliasedOperands
	}
	z.Reset()
	if len(denom.digits) == 0 {
		return ErrDivisionByZero
	}
	if len(num.digits) == 0 {
		return nil
	}

	dn := len(denom.digits)
	width := 2*z.precision + 2
	rem := make([]int8, width)
	for i := 0; i < len(num.digits) && i+1 < width; i++ {
		rem[i+1] = int8(num.digits[i])
	}
	z.power = num.power - denom.power

	// denomBigger compares the remainder window at off MSD-first against
	// the denominator. A nonzero overflow digit above the window makes
	// the remainder the larger side; an equal window counts as not
	// bigger so the subtraction loop still fires.
	denomBigger := func(off int) bool {
		if rem[off] > 0 {
			return false
		}
		for j := 0; j < dn; j++ {
			d := int8(denom.digits[j])
			w := rem[off+1+j]
			if d > w {
				return true
			}
			if d < w {
				return false
			}
		}
		return false
	}

	// If the leading window is smaller than the denominator, the first
	// quotient digit sits one place further right.
	idx := 0
	if denomBigger(0) {
		idx++
		z.power--
	}

	res := make([]byte, z.precision)
	count := 0
	nonzero := true
	for count < z.precision && nonzero {
		// Repeated subtraction yields the quotient digit. Borrows may
		// leave a cell negative transiently; the next (more significant)
		// step of the same subtraction settles it.
		var digit byte
		for !denomBigger(idx) {
			digit++
			for j := 0; j < dn; j++ {
				p := idx + dn - j
				v := rem[p] - int8(denom.digits[dn-1-j])
				if v < 0 {
					v += 10
					rem[p-1]--
				}
				rem[p] = v
			}
		}

		// Past the numerator's own digits an all-zero remainder window
		// means every further digit would be zero.
		if count >= len(num.digits) {
			allZero := true
			for j := 0; j <= dn; j++ {
				if rem[idx+j] > 0 {
					allZero = false
					break
				}
			}
			if allZero {
				nonzero = false
			}
		}
		res[count] = digit
		count++
		idx++
	}

	sig := count
	for sig > 0 && res[sig-1] == 0 {
		sig--
	}
	z.digits = append(z.digits[:0], res[:sig]...)
	if sig == 0 { // quotient vanished below the budget
		z.power = 0
	}
	return nil
}

// AddInt64 sets z to x + v for a non-negative v. z must not alias x.
func (z *Num) AddInt64(x *Num, v int64) error {
	if z == x {
		return errAliasedOperands
	}
	z.Reset()
	if v < 0 {
		return errors.Errorf("bignum: negative value %d", v)
	}
	if v == 0 {
		z.Set(x)
		return nil
	}
	if len(x.digits) == 0 {
		return z.SetInt64(v)
	}
	t := New(z.precision)
	if err := t.SetInt64(v); err != nil {
		return err
	}
	return z.Add(x, t)
}

// MulInt64 sets z to x · v for a non-negative v. z must not alias x.
func (z *Num) MulInt64(x *Num, v int64) error {
	if z == x {
		return errAliasedOperands
	}
	z.Reset()
	if v < 0 {
		return errors.Errorf("bignum: negative value %d", v)
	}
	if v == 0 || len(x.digits) == 0 {
		return nil
	}
	t := New(z.precision)
	if err := t.SetInt64(v); err != nil {
		return err
	}
	return z.Mul(x, t)
}

// QuoInt64 sets z to x / v. z must not alias x.
func (z *Num) QuoInt64(x *Num, v int64) error {
	if z == x {
		return errAliasedOperands
	}
	z.Reset()
	if v == 0 {
		return ErrDivisionByZero
	}
	if len(x.digits) == 0 {
		return nil
	}
	t := New(z.precision)
	if err := t.SetInt64(v); err != nil {
		return err
	}
	return z.Quo(x, t)
}

// Int64Quo sets z to v / x. z must not alias x.
func (z *Num) Int64Quo(v int64, x *Num) error {
	if z == x {
		return errAliasedOperands
	}
	z.Reset()
	if len(x.digits) == 0 {
		return ErrDivisionByZero
	}
	if v == 0 {
		return nil
	}
	t := New(z.precision)
	if err := t.SetInt64(v); err != nil {
		return err
	}
	return z.Quo(t, x)
}
