// Copyright 2022 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file classifies operand types and resolves the collaborators an
// engine needs for each of them: built-in mode tables, integer predicate,
// zero test, copy, and arithmetic. Canonical types resolve through a type
// switch; named basic kinds resolve through reflect and pay one conversion
// per call.

package round

import (
	"fmt"
	"math"
	"math/big"
	"reflect"

	"github.com/cockroachdb/apd/v3"
	"gopkg.in/inf.v0"
)

type signedInt interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsignedInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// ops bundles the collaborators resolved for a representation: the
// built-in mode tables, the integer predicate, copy and zero test, and
// either representation arithmetic (quo, mul) or an exact rational route
// (toRat, fromBig, mulInt) for kinds that are not closed under division.
type ops[T any] struct {
	kind  Kind
	same  ModeTable[T]
	toInt IntegerModeTable[T]
	isInt func(T) (bool, error)

	isZero func(T) bool
	clone  func(T) T

	quo func(x, y T) (T, error)
	mul func(x, y T) (T, error)

	toRat   func(T) *big.Rat
	fromBig func(*big.Int) (T, error)
	mulInt  func(n *big.Int, unit T) (T, error)

	// unit is nil for Integral engines: their place units are built as big
	// integers so that 10^places cannot overflow T.
	unit func(places int) (T, error)
}

// newOps resolves the collaborators for T. ctx is used by decimal engines
// only.
func newOps[T any](ctx *apd.Context) (*ops[T], error) {
	var zero T
	var o any
	switch any(zero).(type) {
	case int:
		o = signedOps[int](math.MinInt, math.MaxInt)
	case int8:
		o = signedOps[int8](math.MinInt8, math.MaxInt8)
	case int16:
		o = signedOps[int16](math.MinInt16, math.MaxInt16)
	case int32:
		o = signedOps[int32](math.MinInt32, math.MaxInt32)
	case int64:
		o = signedOps[int64](math.MinInt64, math.MaxInt64)
	case uint:
		o = unsignedOps[uint](math.MaxUint)
	case uint8:
		o = unsignedOps[uint8](math.MaxUint8)
	case uint16:
		o = unsignedOps[uint16](math.MaxUint16)
	case uint32:
		o = unsignedOps[uint32](math.MaxUint32)
	case uint64:
		o = unsignedOps[uint64](math.MaxUint64)
	case float64:
		o = float64Ops()
	case float32:
		o = float32Ops()
	case complex128:
		o = complex128Ops()
	case complex64:
		o = complex64Ops()
	case *big.Int:
		o = bigIntOps()
	case *big.Rat:
		o = bigRatOps()
	case *big.Float:
		o = bigFloatOps()
	case *inf.Dec:
		o = infDecOps()
	case *apd.Decimal:
		o = apdOps(ctx)
	default:
		return reflectOps[T]()
	}
	return o.(*ops[T]), nil
}

// reflectOps resolves named basic kinds. uintptr is an address, not
// arithmetic, and stays unsupported.
func reflectOps[T any]() (*ops[T], error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return reflectSignedOps[T](t), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return reflectUnsignedOps[T](t), nil
	case reflect.Float32, reflect.Float64:
		return reflectFloatOps[T](t), nil
	case reflect.Complex64, reflect.Complex128:
		return reflectComplexOps[T](t), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
}

// identityTable maps every mode to the identity: values of integral kinds
// are fixed points of rounding.
func identityTable[U any]() ModeTable[U] {
	t := make(ModeTable[U], numModes)
	for _, m := range Modes() {
		t[m] = func(x U) (U, error) { return x, nil }
	}
	return t
}

// ratUnit returns 10^-places as an exact rational.
func ratUnit(places int) *big.Rat {
	e := new(big.Int).SetInt64(int64(places))
	pow := new(big.Int).Exp(ten, e.Abs(e), nil)
	if places > 0 {
		return new(big.Rat).SetFrac(oneInt, pow)
	}
	return new(big.Rat).SetInt(pow)
}

func signedOps[U signedInt](min, max int64) *ops[U] {
	fromBig := func(i *big.Int) (U, error) {
		var zero U
		if !i.IsInt64() {
			return zero, fmt.Errorf("%w: %v overflows %T", ErrRange, i, zero)
		}
		v := i.Int64()
		if v < min || v > max {
			return zero, fmt.Errorf("%w: %v overflows %T", ErrRange, i, zero)
		}
		return U(v), nil
	}
	toInt := make(IntegerModeTable[U], numModes)
	for _, m := range Modes() {
		toInt[m] = func(x U) (*big.Int, error) { return big.NewInt(int64(x)), nil }
	}
	return &ops[U]{
		kind:    Integral,
		same:    identityTable[U](),
		toInt:   toInt,
		isInt:   func(U) (bool, error) { return true, nil },
		isZero:  func(x U) bool { return x == 0 },
		clone:   func(x U) U { return x },
		toRat:   func(x U) *big.Rat { return new(big.Rat).SetInt64(int64(x)) },
		fromBig: fromBig,
		mulInt: func(n *big.Int, unit U) (U, error) {
			return fromBig(new(big.Int).Mul(n, big.NewInt(int64(unit))))
		},
	}
}

func unsignedOps[U unsignedInt](max uint64) *ops[U] {
	fromBig := func(i *big.Int) (U, error) {
		var zero U
		if i.Sign() < 0 || !i.IsUint64() || i.Uint64() > max {
			return zero, fmt.Errorf("%w: %v overflows %T", ErrRange, i, zero)
		}
		return U(i.Uint64()), nil
	}
	toInt := make(IntegerModeTable[U], numModes)
	for _, m := range Modes() {
		toInt[m] = func(x U) (*big.Int, error) { return new(big.Int).SetUint64(uint64(x)), nil }
	}
	return &ops[U]{
		kind:    Integral,
		same:    identityTable[U](),
		toInt:   toInt,
		isInt:   func(U) (bool, error) { return true, nil },
		isZero:  func(x U) bool { return x == 0 },
		clone:   func(x U) U { return x },
		toRat:   func(x U) *big.Rat { return new(big.Rat).SetUint64(uint64(x)) },
		fromBig: fromBig,
		mulInt: func(n *big.Int, unit U) (U, error) {
			return fromBig(new(big.Int).Mul(n, new(big.Int).SetUint64(uint64(unit))))
		},
	}
}

func bigIntOps() *ops[*big.Int] {
	same := make(ModeTable[*big.Int], numModes)
	toInt := make(IntegerModeTable[*big.Int], numModes)
	for _, m := range Modes() {
		same[m] = func(x *big.Int) (*big.Int, error) { return new(big.Int).Set(x), nil }
		toInt[m] = func(x *big.Int) (*big.Int, error) { return new(big.Int).Set(x), nil }
	}
	return &ops[*big.Int]{
		kind:    Integral,
		same:    same,
		toInt:   toInt,
		isInt:   func(*big.Int) (bool, error) { return true, nil },
		isZero:  func(x *big.Int) bool { return x.Sign() == 0 },
		clone:   func(x *big.Int) *big.Int { return new(big.Int).Set(x) },
		toRat:   func(x *big.Int) *big.Rat { return new(big.Rat).SetInt(x) },
		fromBig: func(i *big.Int) (*big.Int, error) { return new(big.Int).Set(i), nil },
		mulInt: func(n *big.Int, unit *big.Int) (*big.Int, error) {
			return new(big.Int).Mul(n, unit), nil
		},
	}
}

func bigRatOps() *ops[*big.Rat] {
	same := make(ModeTable[*big.Rat], numModes)
	toInt := make(IntegerModeTable[*big.Rat], numModes)
	for m, f := range ratFuncs {
		f := f
		mm := Mode(m)
		same[mm] = func(x *big.Rat) (*big.Rat, error) { return new(big.Rat).SetInt(f(x)), nil }
		toInt[mm] = func(x *big.Rat) (*big.Int, error) { return f(x), nil }
	}
	return &ops[*big.Rat]{
		kind:   GeneralReal,
		same:   same,
		toInt:  toInt,
		isInt:  func(x *big.Rat) (bool, error) { return x.IsInt(), nil },
		isZero: func(x *big.Rat) bool { return x.Sign() == 0 },
		clone:  func(x *big.Rat) *big.Rat { return new(big.Rat).Set(x) },
		quo:    func(x, y *big.Rat) (*big.Rat, error) { return new(big.Rat).Quo(x, y), nil },
		mul:    func(x, y *big.Rat) (*big.Rat, error) { return new(big.Rat).Mul(x, y), nil },
		unit:   func(places int) (*big.Rat, error) { return ratUnit(places), nil },
	}
}

func bigFloatOps() *ops[*big.Float] {
	same := make(ModeTable[*big.Float], numModes)
	toInt := make(IntegerModeTable[*big.Float], numModes)
	for m, f := range ratFuncs {
		f := f
		mm := Mode(m)
		same[mm] = func(x *big.Float) (*big.Float, error) {
			if x.IsInf() {
				return new(big.Float).Copy(x), nil
			}
			r, _ := x.Rat(nil)
			z := new(big.Float).SetInt(f(r))
			if z.Sign() == 0 && x.Signbit() {
				z.Neg(z)
			}
			return z, nil
		}
		toInt[mm] = func(x *big.Float) (*big.Int, error) {
			if x.IsInf() {
				return nil, fmt.Errorf("%w: %v", ErrNonFinite, x)
			}
			r, _ := x.Rat(nil)
			return f(r), nil
		}
	}
	return &ops[*big.Float]{
		kind:   GeneralReal,
		same:   same,
		toInt:  toInt,
		isInt:  func(x *big.Float) (bool, error) { return x.IsInt(), nil },
		isZero: func(x *big.Float) bool { return x.Sign() == 0 },
		clone:  func(x *big.Float) *big.Float { return new(big.Float).Copy(x) },
		quo:    bigFloatQuo,
		mul:    bigFloatMul,
		unit: func(places int) (*big.Float, error) {
			return new(big.Float).SetRat(ratUnit(places)), nil
		},
	}
}

// bigFloatQuo divides in the operands' precision, translating the ErrNaN
// panic raised on undefined operands (0/0, Inf/Inf) into ErrNonFinite.
func bigFloatQuo(x, y *big.Float) (z *big.Float, err error) {
	defer bigFloatRecover(&err)
	return new(big.Float).Quo(x, y), nil
}

func bigFloatMul(x, y *big.Float) (z *big.Float, err error) {
	defer bigFloatRecover(&err)
	return new(big.Float).Mul(x, y), nil
}

// bigFloatRecover translates a big.ErrNaN panic into an error, standing in
// for the NaN value that big.Float cannot represent.
func bigFloatRecover(err *error) {
	switch p := recover().(type) {
	case nil:
	case big.ErrNaN:
		*err = fmt.Errorf("%w: %v", ErrNonFinite, p)
	default:
		panic(p)
	}
}

func infDecOps() *ops[*inf.Dec] {
	same := make(ModeTable[*inf.Dec], numModes)
	toInt := make(IntegerModeTable[*inf.Dec], numModes)
	for m, f := range ratFuncs {
		f := f
		mm := Mode(m)
		same[mm] = func(x *inf.Dec) (*inf.Dec, error) {
			return inf.NewDecBig(f(infDecRat(x)), 0), nil
		}
		toInt[mm] = func(x *inf.Dec) (*big.Int, error) { return f(infDecRat(x)), nil }
	}
	return &ops[*inf.Dec]{
		kind:   GeneralReal,
		same:   same,
		toInt:  toInt,
		isInt:  func(x *inf.Dec) (bool, error) { return infDecRat(x).IsInt(), nil },
		isZero: func(x *inf.Dec) bool { return x.Sign() == 0 },
		clone:  func(x *inf.Dec) *inf.Dec { return new(inf.Dec).Set(x) },
		toRat:  infDecRat,
		fromBig: func(i *big.Int) (*inf.Dec, error) {
			return inf.NewDecBig(new(big.Int).Set(i), 0), nil
		},
		mulInt: func(n *big.Int, unit *inf.Dec) (*inf.Dec, error) {
			u := new(big.Int).Mul(n, unit.UnscaledBig())
			return inf.NewDecBig(u, unit.Scale()), nil
		},
		unit: func(places int) (*inf.Dec, error) {
			if places > math.MaxInt32 || places < math.MinInt32 {
				return nil, fmt.Errorf("%w: scale %d", ErrRange, places)
			}
			return inf.NewDec(1, inf.Scale(places)), nil
		},
	}
}

// infDecRat converts a scaled decimal to a *big.Rat. The conversion is
// exact.
func infDecRat(x *inf.Dec) *big.Rat {
	s := int64(x.Scale())
	if s >= 0 {
		pow := new(big.Int).Exp(ten, big.NewInt(s), nil)
		return new(big.Rat).SetFrac(x.UnscaledBig(), pow)
	}
	pow := new(big.Int).Exp(ten, big.NewInt(-s), nil)
	return new(big.Rat).SetInt(new(big.Int).Mul(x.UnscaledBig(), pow))
}

func apdOps(ctx *apd.Context) *ops[*apd.Decimal] {
	if ctx == nil {
		ctx = apd.BaseContext.WithPrecision(DefaultDecimalPrec)
	}
	same := make(ModeTable[*apd.Decimal], numModes)
	toInt := make(IntegerModeTable[*apd.Decimal], numModes)
	for _, m := range Modes() {
		switch m {
		case HalfDown:
			same[m] = decHalfDown
		case HalfUp:
			same[m] = decHalfUp
		case HalfOdd:
			same[m] = decHalfOdd
		default:
			r := decRounders[m]
			same[m] = func(x *apd.Decimal) (*apd.Decimal, error) { return decRoundTo(x, r) }
		}
		f := ratFuncs[m]
		toInt[m] = func(x *apd.Decimal) (*big.Int, error) {
			if x.Form != apd.Finite {
				return nil, fmt.Errorf("%w: %s", ErrNonFinite, x)
			}
			return f(decToRat(x)), nil
		}
	}
	return &ops[*apd.Decimal]{
		kind:   ArbitraryDecimal,
		same:   same,
		toInt:  toInt,
		isInt:  func(x *apd.Decimal) (bool, error) { return decIsInt(x), nil },
		isZero: func(x *apd.Decimal) bool { return x.IsZero() },
		clone:  func(x *apd.Decimal) *apd.Decimal { return new(apd.Decimal).Set(x) },
		quo: func(x, y *apd.Decimal) (*apd.Decimal, error) {
			z := new(apd.Decimal)
			if _, err := ctx.Quo(z, x, y); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrRange, err)
			}
			return z, nil
		},
		mul: func(x, y *apd.Decimal) (*apd.Decimal, error) {
			z := new(apd.Decimal)
			if _, err := ctx.Mul(z, x, y); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrRange, err)
			}
			return z, nil
		},
		unit: func(places int) (*apd.Decimal, error) {
			if places > math.MaxInt32 || places < math.MinInt32+1 {
				return nil, fmt.Errorf("%w: exponent %d", ErrRange, places)
			}
			return apd.New(1, int32(-places)), nil
		},
	}
}

func float64Ops() *ops[float64] {
	same := make(ModeTable[float64], numModes)
	toInt := make(IntegerModeTable[float64], numModes)
	for m, f := range floatFuncs {
		f := f
		mm := Mode(m)
		same[mm] = func(x float64) (float64, error) { return f(x), nil }
		toInt[mm] = func(x float64) (*big.Int, error) {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, fmt.Errorf("%w: %v", ErrNonFinite, x)
			}
			return floatInt(f(x)), nil
		}
	}
	return &ops[float64]{
		kind:   NativeFloat,
		same:   same,
		toInt:  toInt,
		isInt:  func(x float64) (bool, error) { return floatIsInt(x), nil },
		isZero: func(x float64) bool { return x == 0 },
		clone:  func(x float64) float64 { return x },
		quo:    func(x, y float64) (float64, error) { return x / y, nil },
		mul:    func(x, y float64) (float64, error) { return x * y, nil },
		unit:   float64Unit,
	}
}

// float64Unit returns 10^-places. Units beyond the float64 exponent range
// are rejected; units that underflow to zero behave as the zero-unit
// identity.
func float64Unit(places int) (float64, error) {
	u := math.Pow(10, -float64(places))
	if math.IsInf(u, 0) {
		return 0, fmt.Errorf("%w: exponent %d", ErrRange, places)
	}
	return u, nil
}

func float32Ops() *ops[float32] {
	same := make(ModeTable[float32], numModes)
	toInt := make(IntegerModeTable[float32], numModes)
	for m, f := range floatFuncs {
		f := f
		mm := Mode(m)
		same[mm] = func(x float32) (float32, error) { return float32(f(float64(x))), nil }
		toInt[mm] = func(x float32) (*big.Int, error) {
			v := float64(x)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: %v", ErrNonFinite, v)
			}
			return floatInt(f(v)), nil
		}
	}
	return &ops[float32]{
		kind:   NativeFloat,
		same:   same,
		toInt:  toInt,
		isInt:  func(x float32) (bool, error) { return floatIsInt(float64(x)), nil },
		isZero: func(x float32) bool { return x == 0 },
		clone:  func(x float32) float32 { return x },
		quo:    func(x, y float32) (float32, error) { return x / y, nil },
		mul:    func(x, y float32) (float32, error) { return x * y, nil },
		unit: func(places int) (float32, error) {
			u, err := float64Unit(places)
			if err == nil && u > math.MaxFloat32 {
				err = fmt.Errorf("%w: exponent %d", ErrRange, places)
			}
			if err != nil {
				return 0, err
			}
			return float32(u), nil
		},
	}
}

func complex128Ops() *ops[complex128] {
	same := make(ModeTable[complex128], numModes)
	toInt := make(IntegerModeTable[complex128], numModes)
	for m, f := range floatFuncs {
		f := f
		mm := Mode(m)
		same[mm] = func(x complex128) (complex128, error) { return complexRound(f, x), nil }
		toInt[mm] = func(x complex128) (*big.Int, error) { return complexInt(f, x) }
	}
	return &ops[complex128]{
		kind:   NativeComplex,
		same:   same,
		toInt:  toInt,
		isInt:  func(x complex128) (bool, error) { return complexIsInt(x), nil },
		isZero: func(x complex128) bool { return x == 0 },
		clone:  func(x complex128) complex128 { return x },
		quo:    func(x, y complex128) (complex128, error) { return x / y, nil },
		mul:    func(x, y complex128) (complex128, error) { return x * y, nil },
		unit: func(places int) (complex128, error) {
			u, err := float64Unit(places)
			return complex(u, 0), err
		},
	}
}

func complex64Ops() *ops[complex64] {
	same := make(ModeTable[complex64], numModes)
	toInt := make(IntegerModeTable[complex64], numModes)
	for m, f := range floatFuncs {
		f := f
		mm := Mode(m)
		same[mm] = func(x complex64) (complex64, error) {
			return complex64(complexRound(f, complex128(x))), nil
		}
		toInt[mm] = func(x complex64) (*big.Int, error) { return complexInt(f, complex128(x)) }
	}
	return &ops[complex64]{
		kind:   NativeComplex,
		same:   same,
		toInt:  toInt,
		isInt:  func(x complex64) (bool, error) { return complexIsInt(complex128(x)), nil },
		isZero: func(x complex64) bool { return x == 0 },
		clone:  func(x complex64) complex64 { return x },
		quo:    func(x, y complex64) (complex64, error) { return x / y, nil },
		mul:    func(x, y complex64) (complex64, error) { return x * y, nil },
		unit: func(places int) (complex64, error) {
			u, err := float64Unit(places)
			if err == nil && u > math.MaxFloat32 {
				err = fmt.Errorf("%w: exponent %d", ErrRange, places)
			}
			if err != nil {
				return 0, err
			}
			return complex(float32(u), 0), nil
		},
	}
}

func reflectSignedOps[T any](t reflect.Type) *ops[T] {
	toI := func(x T) int64 { return reflect.ValueOf(x).Int() }
	fromBig := func(i *big.Int) (T, error) {
		var zero T
		if i.IsInt64() {
			w := reflect.New(t).Elem()
			if v := i.Int64(); !w.OverflowInt(v) {
				w.SetInt(v)
				return w.Interface().(T), nil
			}
		}
		return zero, fmt.Errorf("%w: %v overflows %s", ErrRange, i, t)
	}
	toInt := make(IntegerModeTable[T], numModes)
	for _, m := range Modes() {
		toInt[m] = func(x T) (*big.Int, error) { return big.NewInt(toI(x)), nil }
	}
	return &ops[T]{
		kind:    Integral,
		same:    identityTable[T](),
		toInt:   toInt,
		isInt:   func(T) (bool, error) { return true, nil },
		isZero:  func(x T) bool { return toI(x) == 0 },
		clone:   func(x T) T { return x },
		toRat:   func(x T) *big.Rat { return new(big.Rat).SetInt64(toI(x)) },
		fromBig: fromBig,
		mulInt: func(n *big.Int, unit T) (T, error) {
			return fromBig(new(big.Int).Mul(n, big.NewInt(toI(unit))))
		},
	}
}

func reflectUnsignedOps[T any](t reflect.Type) *ops[T] {
	toU := func(x T) uint64 { return reflect.ValueOf(x).Uint() }
	fromBig := func(i *big.Int) (T, error) {
		var zero T
		if i.Sign() >= 0 && i.IsUint64() {
			w := reflect.New(t).Elem()
			if v := i.Uint64(); !w.OverflowUint(v) {
				w.SetUint(v)
				return w.Interface().(T), nil
			}
		}
		return zero, fmt.Errorf("%w: %v overflows %s", ErrRange, i, t)
	}
	toInt := make(IntegerModeTable[T], numModes)
	for _, m := range Modes() {
		toInt[m] = func(x T) (*big.Int, error) { return new(big.Int).SetUint64(toU(x)), nil }
	}
	return &ops[T]{
		kind:    Integral,
		same:    identityTable[T](),
		toInt:   toInt,
		isInt:   func(T) (bool, error) { return true, nil },
		isZero:  func(x T) bool { return toU(x) == 0 },
		clone:   func(x T) T { return x },
		toRat:   func(x T) *big.Rat { return new(big.Rat).SetUint64(toU(x)) },
		fromBig: fromBig,
		mulInt: func(n *big.Int, unit T) (T, error) {
			return fromBig(new(big.Int).Mul(n, new(big.Int).SetUint64(toU(unit))))
		},
	}
}

func reflectFloatOps[T any](t reflect.Type) *ops[T] {
	toF := func(x T) float64 { return reflect.ValueOf(x).Float() }
	fromF := func(v float64) T {
		w := reflect.New(t).Elem()
		w.SetFloat(v)
		return w.Interface().(T)
	}
	same := make(ModeTable[T], numModes)
	toInt := make(IntegerModeTable[T], numModes)
	for m, f := range floatFuncs {
		f := f
		mm := Mode(m)
		same[mm] = func(x T) (T, error) { return fromF(f(toF(x))), nil }
		toInt[mm] = func(x T) (*big.Int, error) {
			v := toF(x)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: %v", ErrNonFinite, v)
			}
			return floatInt(f(v)), nil
		}
	}
	return &ops[T]{
		kind:   NativeFloat,
		same:   same,
		toInt:  toInt,
		isInt:  func(x T) (bool, error) { return floatIsInt(toF(x)), nil },
		isZero: func(x T) bool { return toF(x) == 0 },
		clone:  func(x T) T { return x },
		quo:    func(x, y T) (T, error) { return fromF(toF(x) / toF(y)), nil },
		mul:    func(x, y T) (T, error) { return fromF(toF(x) * toF(y)), nil },
		unit: func(places int) (T, error) {
			var zero T
			u, err := float64Unit(places)
			if err != nil {
				return zero, err
			}
			w := fromF(u)
			if math.IsInf(toF(w), 0) {
				return zero, fmt.Errorf("%w: exponent %d", ErrRange, places)
			}
			return w, nil
		},
	}
}

func reflectComplexOps[T any](t reflect.Type) *ops[T] {
	toC := func(x T) complex128 { return reflect.ValueOf(x).Complex() }
	fromC := func(v complex128) T {
		w := reflect.New(t).Elem()
		w.SetComplex(v)
		return w.Interface().(T)
	}
	same := make(ModeTable[T], numModes)
	toInt := make(IntegerModeTable[T], numModes)
	for m, f := range floatFuncs {
		f := f
		mm := Mode(m)
		same[mm] = func(x T) (T, error) { return fromC(complexRound(f, toC(x))), nil }
		toInt[mm] = func(x T) (*big.Int, error) { return complexInt(f, toC(x)) }
	}
	return &ops[T]{
		kind:   NativeComplex,
		same:   same,
		toInt:  toInt,
		isInt:  func(x T) (bool, error) { return complexIsInt(toC(x)), nil },
		isZero: func(x T) bool { return toC(x) == 0 },
		clone:  func(x T) T { return x },
		quo:    func(x, y T) (T, error) { return fromC(toC(x) / toC(y)), nil },
		mul:    func(x, y T) (T, error) { return fromC(toC(x) * toC(y)), nil },
		unit: func(places int) (T, error) {
			var zero T
			u, err := float64Unit(places)
			if err != nil {
				return zero, err
			}
			w := fromC(complex(u, 0))
			if math.IsInf(real(toC(w)), 0) {
				return zero, fmt.Errorf("%w: exponent %d", ErrRange, places)
			}
			return w, nil
		},
	}
}

// overrideOps is the scaffolding of an engine built entirely from
// caller-supplied tables over a type the classifier rejects.
func overrideOps[T any](ar *Arith[T]) *ops[T] {
	o := &ops[T]{
		kind:  Unsupported,
		same:  ModeTable[T]{},
		toInt: IntegerModeTable[T]{},
		isInt: func(T) (bool, error) {
			return false, fmt.Errorf("%w: no integer predicate", ErrUnsupportedType)
		},
		isZero: func(T) bool { return false },
		clone:  func(x T) T { return x },
	}
	if ar == nil {
		return o
	}
	if ar.Quo != nil {
		o.quo = ar.Quo
	}
	if ar.Mul != nil {
		o.mul = ar.Mul
	}
	if ar.IsZero != nil {
		o.isZero = ar.IsZero
	}
	return o
}
