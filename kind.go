// Copyright 2022 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package round

import "fmt"

// A Kind identifies the family of numeric representations an engine was
// built for. The kind decides which rounding algorithms back the engine's
// tables: exact integer arithmetic, IEEE 754 binary floating point, decimal
// floating point, or exact rational arithmetic.
type Kind uint8

const (
	Unsupported      Kind = iota // no built-in algorithm family for the type
	Integral                     // int and friends, *big.Int
	NativeFloat                  // float32, float64
	ArbitraryDecimal             // *apd.Decimal
	GeneralReal                  // *big.Rat, *big.Float, *inf.Dec
	NativeComplex                // complex64, complex128
	GeneralComplex               // reserved: no built-in representation
)

var kindNames = [...]string{
	Unsupported:      "Unsupported",
	Integral:         "Integral",
	NativeFloat:      "NativeFloat",
	ArbitraryDecimal: "ArbitraryDecimal",
	GeneralReal:      "GeneralReal",
	NativeComplex:    "NativeComplex",
	GeneralComplex:   "GeneralComplex",
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}
