// Copyright 2022 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package round

import (
	"math/big"
	"testing"
)

// Expected results per mode, in mode declaration order: Down, Up, ToZero,
// FromZero, HalfEven, HalfOdd, HalfDown, HalfUp, HalfToZero, HalfFromZero,
// ZeroFiveFromZero.
func TestRatRound(t *testing.T) {
	for _, d := range []struct {
		x    string
		want [numModes]string
	}{
		{"5/2", [numModes]string{"2", "3", "2", "3", "2", "3", "2", "3", "2", "3", "2"}},
		{"-5/2", [numModes]string{"-3", "-2", "-2", "-3", "-2", "-3", "-3", "-2", "-2", "-3", "-2"}},
		{"1/2", [numModes]string{"0", "1", "0", "1", "0", "1", "0", "1", "0", "1", "1"}},
		{"-1/2", [numModes]string{"-1", "0", "0", "-1", "0", "-1", "-1", "0", "0", "-1", "-1"}},
		{"3/2", [numModes]string{"1", "2", "1", "2", "2", "1", "1", "2", "1", "2", "1"}},
		{"-3/2", [numModes]string{"-2", "-1", "-1", "-2", "-2", "-1", "-2", "-1", "-1", "-2", "-1"}},
		{"0.3", [numModes]string{"0", "1", "0", "1", "0", "0", "0", "0", "0", "0", "1"}},
		{"-0.3", [numModes]string{"-1", "0", "0", "-1", "0", "0", "0", "0", "0", "0", "-1"}},
		{"5.3", [numModes]string{"5", "6", "5", "6", "5", "5", "5", "5", "5", "5", "6"}},
		{"-5.3", [numModes]string{"-6", "-5", "-5", "-6", "-5", "-5", "-5", "-5", "-5", "-5", "-6"}},
		{"10.3", [numModes]string{"10", "11", "10", "11", "10", "10", "10", "10", "10", "10", "11"}},
		{"7.5", [numModes]string{"7", "8", "7", "8", "8", "7", "7", "8", "7", "8", "7"}},
		{"-7.5", [numModes]string{"-8", "-7", "-7", "-8", "-8", "-7", "-8", "-7", "-7", "-8", "-7"}},
		{"2", [numModes]string{"2", "2", "2", "2", "2", "2", "2", "2", "2", "2", "2"}},
		{"-2", [numModes]string{"-2", "-2", "-2", "-2", "-2", "-2", "-2", "-2", "-2", "-2", "-2"}},
		{"0", [numModes]string{"0", "0", "0", "0", "0", "0", "0", "0", "0", "0", "0"}},
		{"7/3", [numModes]string{"2", "3", "2", "3", "2", "2", "2", "2", "2", "2", "2"}},
		{"-7/3", [numModes]string{"-3", "-2", "-2", "-3", "-2", "-2", "-2", "-2", "-2", "-2", "-2"}},
		{"12345678901234567890123456789.5", [numModes]string{
			"12345678901234567890123456789",
			"12345678901234567890123456790",
			"12345678901234567890123456789",
			"12345678901234567890123456790",
			"12345678901234567890123456790",
			"12345678901234567890123456789",
			"12345678901234567890123456789",
			"12345678901234567890123456790",
			"12345678901234567890123456789",
			"12345678901234567890123456790",
			"12345678901234567890123456789",
		}},
	} {
		x, ok := new(big.Rat).SetString(d.x)
		if !ok {
			t.Fatalf("SetString(%q) failed", d.x)
		}
		for m, f := range ratFuncs {
			if got := f(x); got.String() != d.want[m] {
				t.Errorf("%s(%s) = %v. Want %v", Mode(m), d.x, got, d.want[m])
			}
		}
	}
}

// Rounding must not modify its operand.
func TestRatRoundAliasing(t *testing.T) {
	x, _ := new(big.Rat).SetString("-7/2")
	want := new(big.Rat).Set(x)
	for m, f := range ratFuncs {
		f(x)
		if x.Cmp(want) != 0 {
			t.Fatalf("%s modified its operand: %v. Want %v", Mode(m), x, want)
		}
	}
}

var benchInt *big.Int

func BenchmarkRatHalfEven(b *testing.B) {
	x, _ := new(big.Rat).SetString("12345678901234567890123456789.5")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchInt = ratHalfEven(x)
	}
}
