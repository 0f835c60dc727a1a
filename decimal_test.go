// Copyright 2022 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package round

import (
	"math/big"
	"strings"
	"testing"

	"github.com/cockroachdb/apd/v3"
)

func mustDec(s string) *apd.Decimal {
	x, _, err := apd.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return x
}

// decRound applies mode m the way the *apd.Decimal engine does: the three
// modes with no GDA rounder counterpart go through their derived
// implementations, everything else maps straight onto a rounder.
func decRound(x *apd.Decimal, m Mode) (*apd.Decimal, error) {
	switch m {
	case HalfOdd:
		return decHalfOdd(x)
	case HalfDown:
		return decHalfDown(x)
	case HalfUp:
		return decHalfUp(x)
	}
	return decRoundTo(x, decRounders[m])
}

// decAlike is like x.Cmp(y) == 0 but also considers the sign of 0 (0 != -0).
func decAlike(x, y *apd.Decimal) bool {
	return x.Cmp(y) == 0 && x.Negative == y.Negative
}

// Expected results per mode, in mode declaration order: Down, Up, ToZero,
// FromZero, HalfEven, HalfOdd, HalfDown, HalfUp, HalfToZero, HalfFromZero,
// ZeroFiveFromZero.
func TestDecimalRound(t *testing.T) {
	for _, d := range []struct {
		x    string
		want [numModes]string
	}{
		{"2.5", [numModes]string{"2", "3", "2", "3", "2", "3", "2", "3", "2", "3", "2"}},
		{"-2.5", [numModes]string{"-3", "-2", "-2", "-3", "-2", "-3", "-3", "-2", "-2", "-3", "-2"}},
		{"0.5", [numModes]string{"0", "1", "0", "1", "0", "1", "0", "1", "0", "1", "1"}},
		{"-0.5", [numModes]string{"-1", "-0", "-0", "-1", "-0", "-1", "-1", "-0", "-0", "-1", "-1"}},
		{"1.5", [numModes]string{"1", "2", "1", "2", "2", "1", "1", "2", "1", "2", "1"}},
		{"-1.5", [numModes]string{"-2", "-1", "-1", "-2", "-2", "-1", "-2", "-1", "-1", "-2", "-1"}},
		{"0.3", [numModes]string{"0", "1", "0", "1", "0", "0", "0", "0", "0", "0", "1"}},
		{"-0.3", [numModes]string{"-1", "-0", "-0", "-1", "-0", "-0", "-0", "-0", "-0", "-0", "-1"}},
		{"5.3", [numModes]string{"5", "6", "5", "6", "5", "5", "5", "5", "5", "5", "6"}},
		{"-5.3", [numModes]string{"-6", "-5", "-5", "-6", "-5", "-5", "-5", "-5", "-5", "-5", "-6"}},
		{"10.3", [numModes]string{"10", "11", "10", "11", "10", "10", "10", "10", "10", "10", "11"}},
		{"7.5", [numModes]string{"7", "8", "7", "8", "8", "7", "7", "8", "7", "8", "7"}},
		{"-7.5", [numModes]string{"-8", "-7", "-7", "-8", "-8", "-7", "-8", "-7", "-7", "-8", "-7"}},
		{"-0.025", [numModes]string{"-1", "-0", "-0", "-1", "-0", "-0", "-0", "-0", "-0", "-0", "-1"}},
		{"0.025", [numModes]string{"0", "1", "0", "1", "0", "0", "0", "0", "0", "0", "1"}},
		{"0.0999", [numModes]string{"0", "1", "0", "1", "0", "0", "0", "0", "0", "0", "1"}},
		{"-9.99E-10", [numModes]string{"-1", "-0", "-0", "-1", "-0", "-0", "-0", "-0", "-0", "-0", "-1"}},
		{"2.5E+1", [numModes]string{"25", "25", "25", "25", "25", "25", "25", "25", "25", "25", "25"}},
		{"2", [numModes]string{"2", "2", "2", "2", "2", "2", "2", "2", "2", "2", "2"}},
		{"-2", [numModes]string{"-2", "-2", "-2", "-2", "-2", "-2", "-2", "-2", "-2", "-2", "-2"}},
		{"0", [numModes]string{"0", "0", "0", "0", "0", "0", "0", "0", "0", "0", "0"}},
		{"-0", [numModes]string{"-0", "-0", "-0", "-0", "-0", "-0", "-0", "-0", "-0", "-0", "-0"}},
	} {
		x := mustDec(d.x)
		for i := 0; i < numModes; i++ {
			m := Mode(i)
			got, err := decRound(x, m)
			if err != nil {
				t.Fatalf("%s(%s): %v", m, d.x, err)
			}
			if want := mustDec(d.want[i]); !decAlike(got, want) {
				t.Errorf("%s(%s) = %s; want %s", m, d.x, got, want)
			}
		}
	}
}

// NaN and infinities pass through every mode unchanged.
func TestDecimalRoundSpecial(t *testing.T) {
	for _, s := range []string{"NaN", "-NaN", "Infinity", "-Infinity"} {
		x := mustDec(s)
		for i := 0; i < numModes; i++ {
			m := Mode(i)
			got, err := decRound(x, m)
			if err != nil {
				t.Fatalf("%s(%s): %v", m, s, err)
			}
			if got.Form != x.Form || got.Negative != x.Negative {
				t.Errorf("%s(%s) = %s; want %s", m, s, got, x)
			}
		}
	}
}

// The derived modes must agree with the exact rational implementation
// whatever the operand's span, including spans wider than any engine
// precision.
func TestDecimalDerivedMatchesExact(t *testing.T) {
	wide := strings.Repeat("1", 40) + ".5"
	for _, s := range []string{
		"2.5", "-2.5", "3.5", "-3.5", "0.5", "-0.5", "1.25", "-7.5",
		"9.5", "-9.5", "0.49", "100.5", "1.2345E+3", "-1.2345E+3",
		"3E-10", "-3E-10", wide, "-" + wide,
	} {
		x := mustDec(s)
		for _, m := range []Mode{HalfOdd, HalfDown, HalfUp} {
			got, err := decRound(x, m)
			if err != nil {
				t.Fatalf("%s(%s): %v", m, s, err)
			}
			want := new(big.Rat).SetInt(ratFuncs[m](decToRat(x)))
			if decToRat(got).Cmp(want) != 0 {
				t.Errorf("%s(%s) = %s; want %s", m, s, got, want.RatString())
			}
		}
	}
}

func TestDecimalIsInt(t *testing.T) {
	for _, test := range []string{
		"0 int",
		"-0 int",
		"0E-10 int",
		"1 int",
		"-1 int",
		"5.000 int",
		"0.5",
		"1.23",
		"1.23e1",
		"1.23e2 int",
		"0.000000001e+8",
		"0.000000001e+9 int",
		"1.2345e200 int",
		"Infinity",
		"-Infinity",
		"NaN",
	} {
		s := strings.TrimSuffix(test, " int")
		want := s != test
		if got := decIsInt(mustDec(s)); got != want {
			t.Errorf("decIsInt(%s) == %t", s, got)
		}
	}
}

func TestDecimalToRat(t *testing.T) {
	for _, test := range []struct {
		x, want string
	}{
		{"0", "0/1"},
		{"-0", "0/1"},
		{"25", "25/1"},
		{"-0.5", "-1/2"},
		{"12.34", "617/50"},
		{"1.2E+3", "1200/1"},
		{"1E-3", "1/1000"},
		{"-123.456", "-15432/125"},
	} {
		if got := decToRat(mustDec(test.x)); got.String() != test.want {
			t.Errorf("decToRat(%s) = %s; want %s", test.x, got, test.want)
		}
	}
}

func TestDecimalFromInt(t *testing.T) {
	for _, s := range []string{
		"0",
		"5",
		"-5",
		"123456789012345678901234567890",
		"-123456789012345678901234567890",
	} {
		n, ok := new(big.Int).SetString(s, 10)
		if !ok {
			t.Fatalf("invalid integer %s", s)
		}
		if got, want := decFromInt(n), mustDec(s); !decAlike(got, want) {
			t.Errorf("decFromInt(%s) = %s; want %s", s, got, want)
		}
	}
}

var benchDec *apd.Decimal

func BenchmarkDecimalHalfEven(b *testing.B) {
	x := mustDec("2.5")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchDec, _ = decRoundTo(x, apd.RoundHalfEven)
	}
}

func BenchmarkDecimalHalfOdd(b *testing.B) {
	x := mustDec("2.5")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchDec, _ = decHalfOdd(x)
	}
}
