// Copyright 2022 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements exact rounding of rational values to integers, one
// function per rounding mode. These back the Integral and GeneralReal
// engines directly and serve as the reference path for every other kind:
// any finite operand converts exactly to a *big.Rat, so a result obtained
// here is never distorted by precision or range limits.

package round

import "math/big"

var (
	oneInt = big.NewInt(1)
	two    = big.NewInt(2)
	five   = big.NewInt(5)
	ten    = big.NewInt(10)
)

// ratHalf returns floor(x) along with the comparison (-1, 0, +1) of x's
// fractional part against one half. The denominator of a Rat is always
// positive, so Euclidean DivMod yields the floor and a remainder in [0, d).
func ratHalf(x *big.Rat) (q *big.Int, c int) {
	q, r := new(big.Int), new(big.Int)
	q.DivMod(x.Num(), x.Denom(), r)
	c = r.Mul(r, two).Cmp(x.Denom())
	return q, c
}

// ratDown returns x rounded toward -Inf.
func ratDown(x *big.Rat) *big.Int {
	return new(big.Int).Div(x.Num(), x.Denom())
}

// ratUp returns x rounded toward +Inf.
func ratUp(x *big.Rat) *big.Int {
	q, r := new(big.Int), new(big.Int)
	q.DivMod(x.Num(), x.Denom(), r)
	if r.Sign() != 0 {
		q.Add(q, oneInt)
	}
	return q
}

// ratToZero returns x rounded toward zero.
func ratToZero(x *big.Rat) *big.Int {
	return new(big.Int).Quo(x.Num(), x.Denom())
}

// ratFromZero returns x rounded away from zero.
func ratFromZero(x *big.Rat) *big.Int {
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(x.Num(), x.Denom(), r)
	switch r.Sign() {
	case 1:
		q.Add(q, oneInt)
	case -1:
		q.Sub(q, oneInt)
	}
	return q
}

// ratHalfEven returns x rounded to the nearest integer, ties to the even
// candidate.
func ratHalfEven(x *big.Rat) *big.Int {
	q, c := ratHalf(x)
	if c > 0 || c == 0 && q.Bit(0) == 1 {
		q.Add(q, oneInt)
	}
	return q
}

// ratHalfOdd returns x rounded to the nearest integer, ties to the odd
// candidate.
func ratHalfOdd(x *big.Rat) *big.Int {
	q, c := ratHalf(x)
	if c > 0 || c == 0 && q.Bit(0) == 0 {
		q.Add(q, oneInt)
	}
	return q
}

// ratHalfDown returns x rounded to the nearest integer, ties toward -Inf.
func ratHalfDown(x *big.Rat) *big.Int {
	q, c := ratHalf(x)
	if c > 0 {
		q.Add(q, oneInt)
	}
	return q
}

// ratHalfUp returns x rounded to the nearest integer, ties toward +Inf.
func ratHalfUp(x *big.Rat) *big.Int {
	q, c := ratHalf(x)
	if c >= 0 {
		q.Add(q, oneInt)
	}
	return q
}

// ratHalfToZero returns x rounded to the nearest integer, ties toward zero.
func ratHalfToZero(x *big.Rat) *big.Int {
	q, c := ratHalf(x)
	if c > 0 || c == 0 && x.Sign() < 0 {
		q.Add(q, oneInt)
	}
	return q
}

// ratHalfFromZero returns x rounded to the nearest integer, ties away from
// zero.
func ratHalfFromZero(x *big.Rat) *big.Int {
	q, c := ratHalf(x)
	if c > 0 || c == 0 && x.Sign() > 0 {
		q.Add(q, oneInt)
	}
	return q
}

// ratZeroFiveFromZero returns x rounded toward zero, unless the truncated
// result ends in 0 or 5, in which case it rounds away from zero. A decimal
// integer ends in 0 or 5 exactly when it is divisible by 5.
func ratZeroFiveFromZero(x *big.Rat) *big.Int {
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(x.Num(), x.Denom(), r)
	if r.Sign() == 0 || r.Rem(q, five).Sign() != 0 {
		return q
	}
	if x.Sign() > 0 {
		return q.Add(q, oneInt)
	}
	return q.Sub(q, oneInt)
}

// ratFuncs indexes the exact rounding functions by mode.
var ratFuncs = [numModes]func(*big.Rat) *big.Int{
	Down:             ratDown,
	Up:               ratUp,
	ToZero:           ratToZero,
	FromZero:         ratFromZero,
	HalfEven:         ratHalfEven,
	HalfOdd:          ratHalfOdd,
	HalfDown:         ratHalfDown,
	HalfUp:           ratHalfUp,
	HalfToZero:       ratHalfToZero,
	HalfFromZero:     ratHalfFromZero,
	ZeroFiveFromZero: ratZeroFiveFromZero,
}
