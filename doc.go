// Copyright 2022 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package round applies a closed set of rounding policies uniformly across
heterogeneous numeric representations.

Eleven rounding modes are supported: the four directed modes Down, Up,
ToZero and FromZero, the six half modes HalfEven, HalfOdd, HalfDown,
HalfUp, HalfToZero and HalfFromZero, and ZeroFiveFromZero, which truncates
unless the truncated result ends in 0 or 5. Every mode is available for
every supported representation and all of them answer two kinds of queries:
rounding within the representation and rounding to an exact integer.

An engine is generic over its operand type and is built once per type:

	r, err := round.New[float64]()
	if err != nil {
		...
	}
	y, _ := r.Round(2.5)                   // 2, half to even by default
	y, _ = r.Round(2.5, round.HalfUp)      // 3
	y, _ = r.RoundToUnit(1.07, 0.05)       // 1.05
	n, _ := r.CountUnits(1.07, 0.05)       // 21

New classifies the type into a representation Kind and resolves one
rounding function per mode up front; calls never inspect operand types.
The built-in kinds cover the native integer, float and complex types and
their named variants (Integral, NativeFloat, NativeComplex), *big.Int
(Integral), *big.Rat, *big.Float and *inf.Dec (GeneralReal), and
*apd.Decimal (ArbitraryDecimal). Other types are rejected with
ErrUnsupportedType unless the caller supplies mode tables, in which case
the engine serves exactly the supplied modes.

The package implements no numeric arithmetic of its own: representations
bring their arithmetic with them (math/big, cockroachdb/apd, gopkg.in/inf)
and the engine only divides, rounds and multiplies in it. Exact
representations round exactly: unit operations on integral kinds and
*inf.Dec run in rational arithmetic and never lose precision, and decimal
rounding happens in a scratch context wide enough that an engine's working
precision cannot distort an integral result.

Rounding is total on the representation's values. NaN and infinities pass
through same-representation rounding unchanged and fail integer-result
queries with ErrNonFinite. A zero result always carries the sign of the
operand for representations with signed zeros. A zero unit means "no
granularity": RoundToUnit returns its operand unchanged and IsUnitSized
reports true.

All errors returned by the package wrap one of the sentinel errors
ErrUnsupportedType, ErrModeNotImplemented, ErrNonFinite, ErrUnordered and
ErrRange, so callers can test them with errors.Is.

Engines are safe for concurrent queries. SetDefaultMode and the Override
methods mutate the engine and require external synchronization.
*/
package round
