// Copyright 2022 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements rounding of float64 values to integral float64
// values, one function per rounding mode. All functions are total: NaN and
// ±Inf round to themselves, and a zero result always carries the sign of
// the operand, so rounding -0.3 up yields -0 rather than +0.
//
// Operands that are already integral (which includes ±0, ±Inf and every
// value of magnitude 2^52 or more) return unchanged. For the remaining
// operands |x| < 2^52, so Trunc(x), x - Trunc(x) and Trunc(x)±1 are all
// exact and the half-way comparisons below are free of representation
// error.

package round

import (
	"math"
	"math/big"
)

func floatDown(x float64) float64 { return math.Floor(x) }

func floatUp(x float64) float64 { return math.Ceil(x) }

func floatToZero(x float64) float64 { return math.Trunc(x) }

func floatFromZero(x float64) float64 {
	return math.Copysign(math.Ceil(math.Abs(x)), x)
}

func floatHalfEven(x float64) float64 { return math.RoundToEven(x) }

func floatHalfFromZero(x float64) float64 { return math.Round(x) }

func floatHalfOdd(x float64) float64 {
	t := math.Trunc(x)
	if t == x || x != x {
		return x
	}
	switch a := math.Abs(x - t); {
	case a > 0.5:
		t += math.Copysign(1, x)
	case a == 0.5 && math.Mod(t, 2) == 0:
		t += math.Copysign(1, x)
	}
	return t
}

func floatHalfDown(x float64) float64 {
	t := math.Trunc(x)
	if t == x || x != x {
		return x
	}
	if a := math.Abs(x - t); x > 0 {
		if a > 0.5 {
			t++
		}
	} else if a >= 0.5 {
		t--
	}
	return t
}

func floatHalfUp(x float64) float64 {
	t := math.Trunc(x)
	if t == x || x != x {
		return x
	}
	if a := math.Abs(x - t); x > 0 {
		if a >= 0.5 {
			t++
		}
	} else if a > 0.5 {
		t--
	}
	return t
}

func floatHalfToZero(x float64) float64 {
	t := math.Trunc(x)
	if t == x || x != x {
		return x
	}
	if math.Abs(x-t) > 0.5 {
		t += math.Copysign(1, x)
	}
	return t
}

func floatZeroFiveFromZero(x float64) float64 {
	t := math.Trunc(x)
	if t == x || x != x {
		return x
	}
	if math.Mod(t, 5) == 0 {
		t += math.Copysign(1, x)
	}
	return t
}

// floatFuncs indexes the float rounding functions by mode.
var floatFuncs = [numModes]func(float64) float64{
	Down:             floatDown,
	Up:               floatUp,
	ToZero:           floatToZero,
	FromZero:         floatFromZero,
	HalfEven:         floatHalfEven,
	HalfOdd:          floatHalfOdd,
	HalfDown:         floatHalfDown,
	HalfUp:           floatHalfUp,
	HalfToZero:       floatHalfToZero,
	HalfFromZero:     floatHalfFromZero,
	ZeroFiveFromZero: floatZeroFiveFromZero,
}

// floatIsInt reports whether x is a finite integral value.
func floatIsInt(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x == math.Trunc(x)
}

// floatInt converts an integral float64 to a *big.Int. The conversion is
// exact.
func floatInt(x float64) *big.Int {
	z, _ := big.NewFloat(x).Int(nil)
	return z
}
