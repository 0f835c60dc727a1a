// Copyright 2022 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements rounding of arbitrary-precision decimals
// (cockroachdb/apd) to integral values. Eight modes map one to one onto
// apd rounders. HalfDown and HalfUp tie by direction while apd's half_down
// and half_up tie by magnitude, so they select the apd rounder from the
// operand's sign; HalfOdd shifts the operand by one unit toward its sign,
// rounds half to even, and shifts back. All rounding happens in a scratch
// context wide enough to hold the operand and a carry digit exactly, so an
// engine's working precision never distorts an integral result. Operands
// with magnitude below one tenth never reach the context: quantizing them
// drops the coefficient without consulting the rounder, so decSmall decides
// their result directly.

package round

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// DefaultDecimalPrec is the precision, in decimal digits, of the context
// used by decimal engines built without WithContext. It is the precision
// of the IEEE 754-2008 decimal128 format.
const DefaultDecimalPrec = 34

// decRounders maps directly-supported modes to apd rounders. HalfOdd,
// HalfDown and HalfUp have no fixed apd equivalent and are derived in
// their own functions.
var decRounders = [numModes]apd.Rounder{
	Down:             apd.RoundFloor,
	Up:               apd.RoundCeiling,
	ToZero:           apd.RoundDown,
	FromZero:         apd.RoundUp,
	HalfEven:         apd.RoundHalfEven,
	HalfToZero:       apd.RoundHalfDown,
	HalfFromZero:     apd.RoundHalfUp,
	ZeroFiveFromZero: apd.Round05Up,
}

// decScratch returns a context rounding with r at a precision that holds
// any integral value derived from x, plus a carry digit, exactly.
func decScratch(x *apd.Decimal, r apd.Rounder) *apd.Context {
	hi := int64(x.Exponent) + x.NumDigits() - 1
	if hi < 0 {
		hi = 0
	}
	lo := int64(x.Exponent)
	if lo > 0 {
		lo = 0
	}
	ctx := apd.BaseContext.WithPrecision(uint32(hi - lo + 2))
	ctx.Rounding = r
	return ctx
}

// decRoundTo rounds x to an integral value with rounder r. Non-finite
// operands are returned unchanged.
func decRoundTo(x *apd.Decimal, r apd.Rounder) (*apd.Decimal, error) {
	z := new(apd.Decimal)
	if x.Form != apd.Finite {
		return z.Set(x), nil
	}
	if !x.IsZero() && x.NumDigits()+int64(x.Exponent) < 0 {
		return decSmall(x, r), nil
	}
	if _, err := decScratch(x, r).RoundToIntegralValue(z, x); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRange, err)
	}
	return z, nil
}

// decSmall rounds a nonzero operand with 0 < |x| < 0.1 to an integral
// value. Context.quantize drops the coefficient of an operand with fewer
// digits than the distance to exponent zero without consulting the
// rounder, so the directed rounders would return zero for these operands;
// the result is decided here instead. The half rounders always answer
// zero, since |x| < 0.1 rules out a tie.
func decSmall(x *apd.Decimal, r apd.Rounder) *apd.Decimal {
	away := false
	switch r {
	case apd.RoundFloor:
		away = x.Negative
	case apd.RoundCeiling:
		away = !x.Negative
	case apd.RoundUp, apd.Round05Up: // the truncated result 0 ends in 0
		away = true
	}
	var n int64
	if away {
		n = 1
		if x.Negative {
			n = -1
		}
	}
	z := decFromInt(big.NewInt(n))
	z.Negative = x.Negative
	return z
}

// decHalfDown rounds x to the nearest integral value with ties toward
// -Inf.
func decHalfDown(x *apd.Decimal) (*apd.Decimal, error) {
	r := apd.RoundHalfDown
	if x.Negative {
		r = apd.RoundHalfUp
	}
	return decRoundTo(x, r)
}

// decHalfUp rounds x to the nearest integral value with ties toward +Inf.
func decHalfUp(x *apd.Decimal) (*apd.Decimal, error) {
	r := apd.RoundHalfUp
	if x.Negative {
		r = apd.RoundHalfDown
	}
	return decRoundTo(x, r)
}

// decHalfOdd rounds x to the nearest integral value with ties to the odd
// candidate.
func decHalfOdd(x *apd.Decimal) (*apd.Decimal, error) {
	z := new(apd.Decimal)
	if x.Form != apd.Finite {
		return z.Set(x), nil
	}
	s := apd.New(1, 0)
	if x.Negative {
		s = apd.New(-1, 0)
	}
	ctx := decScratch(x, apd.RoundHalfEven)
	if _, err := ctx.Add(z, x, s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRange, err)
	}
	if _, err := ctx.RoundToIntegralValue(z, z); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRange, err)
	}
	if _, err := ctx.Sub(z, z, s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRange, err)
	}
	if z.IsZero() {
		z.Negative = x.Negative
	}
	return z, nil
}

// decIsInt reports whether x is a finite integral decimal.
func decIsInt(x *apd.Decimal) bool {
	if x.Form != apd.Finite {
		return false
	}
	if x.Exponent >= 0 || x.IsZero() {
		return true
	}
	k := -int64(x.Exponent)
	if k >= x.NumDigits() {
		return false
	}
	pow := new(big.Int).Exp(ten, big.NewInt(k), nil)
	return new(big.Int).Rem(x.Coeff.MathBigInt(), pow).Sign() == 0
}

// decToRat converts a finite decimal to a *big.Rat. The conversion is
// exact.
func decToRat(x *apd.Decimal) *big.Rat {
	n := new(big.Int).Set(x.Coeff.MathBigInt())
	if x.Negative {
		n.Neg(n)
	}
	if x.Exponent >= 0 {
		n.Mul(n, new(big.Int).Exp(ten, big.NewInt(int64(x.Exponent)), nil))
		return new(big.Rat).SetInt(n)
	}
	return new(big.Rat).SetFrac(n, new(big.Int).Exp(ten, big.NewInt(-int64(x.Exponent)), nil))
}

// decFromInt converts a *big.Int to a decimal with exponent 0.
func decFromInt(i *big.Int) *apd.Decimal {
	var c apd.BigInt
	c.SetMathBigInt(i)
	return apd.NewWithBigInt(&c, 0)
}
