// Copyright 2022 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package round

import (
	"fmt"
	"math"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// A Rounder applies rounding policies to values of a single numeric
// representation. New classifies the type once and resolves one rounding
// function per mode and result family, so calls never inspect operand
// types.
//
// All query operations are safe for concurrent use. SetDefaultMode and the
// Override methods mutate the engine and require external synchronization
// with every other call.
type Rounder[T any] struct {
	ops   *ops[T]
	mode  Mode
	same  ModeTable[T]
	toInt IntegerModeTable[T]
	pred  func(T) (bool, error)

	// entries cached for the default mode
	csame  RoundFunc[T]
	ctoInt IntegerRoundFunc[T]
}

// Arith supplies representation arithmetic for engines built over types
// the classifier does not know. Quo and Mul back the unit operations;
// IsZero recognizes the zero-unit identity.
type Arith[T any] struct {
	Quo    func(x, y T) (T, error)
	Mul    func(x, y T) (T, error)
	IsZero func(x T) bool
}

// An Option configures an engine at construction.
type Option[T any] func(*config[T])

type config[T any] struct {
	mode  Mode
	ctx   *apd.Context
	same  ModeTable[T]
	toInt IntegerModeTable[T]
	pred  func(T) (bool, error)
	arith *Arith[T]
}

// WithDefaultMode sets the mode used by operations called without an
// explicit mode. Engines built without this option round half to even.
func WithDefaultMode[T any](mode Mode) Option[T] {
	return func(c *config[T]) { c.mode = mode }
}

// WithContext sets the context under which a decimal engine computes the
// quotients and products of its unit operations. Engines over other
// representations ignore it.
func WithContext[T any](ctx *apd.Context) Option[T] {
	return func(c *config[T]) { c.ctx = ctx }
}

// WithModeTable replaces the engine's same-representation table at
// construction. See Rounder.OverrideModeTable.
func WithModeTable[T any](table ModeTable[T]) Option[T] {
	return func(c *config[T]) { c.same = table }
}

// WithIntegerModeTable replaces the engine's integer-result table at
// construction. See Rounder.OverrideIntegerModeTable.
func WithIntegerModeTable[T any](table IntegerModeTable[T]) Option[T] {
	return func(c *config[T]) { c.toInt = table }
}

// WithIntegerPredicate replaces the engine's integer predicate at
// construction.
func WithIntegerPredicate[T any](pred func(T) (bool, error)) Option[T] {
	return func(c *config[T]) { c.pred = pred }
}

// WithArith supplies quotient, product and zero test for engines over
// types the classifier does not know. Built-in kinds ignore it.
func WithArith[T any](a Arith[T]) Option[T] {
	return func(c *config[T]) { c.arith = &a }
}

// New builds a rounding engine for T. The type is classified into a Kind
// and the mode tables are resolved once, here. Types outside the built-in
// kinds fail with ErrUnsupportedType unless the caller supplies at least
// one table, in which case the engine reports Kind Unsupported and serves
// exactly the supplied modes.
func New[T any](opts ...Option[T]) (*Rounder[T], error) {
	var cfg config[T]
	cfg.mode = DefaultMode
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.mode.valid() {
		return nil, fmt.Errorf("%w: %s", ErrModeNotImplemented, cfg.mode)
	}
	o, err := newOps[T](cfg.ctx)
	if err != nil {
		if cfg.same == nil && cfg.toInt == nil {
			return nil, err
		}
		o = overrideOps[T](cfg.arith)
	}
	r := &Rounder[T]{ops: o, mode: cfg.mode, same: o.same, toInt: o.toInt, pred: o.isInt}
	if cfg.same != nil {
		r.same = cfg.same
	}
	if cfg.toInt != nil {
		r.toInt = cfg.toInt
	}
	if cfg.pred != nil {
		r.pred = cfg.pred
	}
	r.refresh()
	return r, nil
}

func (r *Rounder[T]) refresh() {
	r.csame = r.same[r.mode]
	r.ctoInt = r.toInt[r.mode]
}

// Kind returns the representation kind the engine was built for.
func (r *Rounder[T]) Kind() Kind { return r.ops.kind }

// DefaultMode returns the mode used by operations called without an
// explicit mode.
func (r *Rounder[T]) DefaultMode() Mode { return r.mode }

// SetDefaultMode changes the default mode and refreshes the cached
// default entries. The mode must be a declared Mode; it need not be
// present in the active tables, in which case default-mode calls fail
// with ErrModeNotImplemented exactly like explicit ones.
func (r *Rounder[T]) SetDefaultMode(mode Mode) error {
	if !mode.valid() {
		return fmt.Errorf("%w: %s", ErrModeNotImplemented, mode)
	}
	r.mode = mode
	r.refresh()
	return nil
}

// sameFunc resolves the same-representation entry for an optional mode.
func (r *Rounder[T]) sameFunc(mode []Mode) (RoundFunc[T], error) {
	if len(mode) == 0 {
		if r.csame == nil {
			return nil, fmt.Errorf("%w: %s", ErrModeNotImplemented, r.mode)
		}
		return r.csame, nil
	}
	if f, ok := r.same[mode[0]]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrModeNotImplemented, mode[0])
}

// intFunc resolves the integer-result entry for an optional mode.
func (r *Rounder[T]) intFunc(mode []Mode) (IntegerRoundFunc[T], error) {
	if len(mode) == 0 {
		if r.ctoInt == nil {
			return nil, fmt.Errorf("%w: %s", ErrModeNotImplemented, r.mode)
		}
		return r.ctoInt, nil
	}
	if f, ok := r.toInt[mode[0]]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrModeNotImplemented, mode[0])
}

// ratFunc resolves the exact rounding function for an optional mode, for
// engines that route unit operations through rational arithmetic.
func (r *Rounder[T]) ratFunc(mode []Mode) (func(*big.Rat) *big.Int, error) {
	m := r.mode
	if len(mode) > 0 {
		m = mode[0]
	}
	if !m.valid() {
		return nil, fmt.Errorf("%w: %s", ErrModeNotImplemented, m)
	}
	return ratFuncs[m], nil
}

// Round rounds x to an integral value of the same representation. mode is
// optional; if given, the first value overrides the default mode for this
// call.
func (r *Rounder[T]) Round(x T, mode ...Mode) (T, error) {
	f, err := r.sameFunc(mode)
	if err != nil {
		var zero T
		return zero, err
	}
	return f(x)
}

// RoundToUnit rounds x to an integral multiple of unit. A zero unit is the
// identity: x is returned (copied, for pointer representations) and no
// division takes place. Engines over representations that are not closed
// under division (Integral kinds and *inf.Dec) compute the quotient and
// the scaled result in exact rational arithmetic; for those engines table
// overrides do not affect this operation.
func (r *Rounder[T]) RoundToUnit(x, unit T, mode ...Mode) (T, error) {
	var zero T
	o := r.ops
	if o.isZero(unit) {
		return o.clone(x), nil
	}
	if o.toRat != nil {
		f, err := r.ratFunc(mode)
		if err != nil {
			return zero, err
		}
		q := o.toRat(x)
		q.Quo(q, o.toRat(unit))
		return o.mulInt(f(q), unit)
	}
	if o.quo == nil {
		return zero, fmt.Errorf("%w: no unit arithmetic", ErrUnsupportedType)
	}
	f, err := r.sameFunc(mode)
	if err != nil {
		return zero, err
	}
	q, err := o.quo(x, unit)
	if err != nil {
		return zero, err
	}
	rq, err := f(q)
	if err != nil {
		return zero, err
	}
	return o.mul(rq, unit)
}

// CountUnits reports how many units x contains: the quotient x/unit
// rounded to an exact integer. A zero unit has no finite count and fails
// with ErrNonFinite.
func (r *Rounder[T]) CountUnits(x, unit T, mode ...Mode) (*big.Int, error) {
	o := r.ops
	if o.isZero(unit) {
		return nil, fmt.Errorf("%w: zero unit", ErrNonFinite)
	}
	if o.toRat != nil {
		f, err := r.ratFunc(mode)
		if err != nil {
			return nil, err
		}
		q := o.toRat(x)
		return f(q.Quo(q, o.toRat(unit))), nil
	}
	if o.quo == nil {
		return nil, fmt.Errorf("%w: no unit arithmetic", ErrUnsupportedType)
	}
	f, err := r.intFunc(mode)
	if err != nil {
		return nil, err
	}
	q, err := o.quo(x, unit)
	if err != nil {
		return nil, err
	}
	return f(q)
}

// IsUnitSized reports whether x is an integral multiple of unit. A zero
// unit imposes no granularity, so every value is unit sized against it.
// Otherwise the answer comes from the integer predicate applied to the
// quotient, so a complex quotient with a nonzero imaginary part answers
// false rather than failing.
func (r *Rounder[T]) IsUnitSized(x, unit T) (bool, error) {
	o := r.ops
	if o.isZero(unit) {
		return true, nil
	}
	if o.toRat != nil {
		q := o.toRat(x)
		return q.Quo(q, o.toRat(unit)).IsInt(), nil
	}
	if o.quo == nil {
		return false, fmt.Errorf("%w: no unit arithmetic", ErrUnsupportedType)
	}
	q, err := o.quo(x, unit)
	if err != nil {
		return false, err
	}
	return r.pred(q)
}

// IsInteger reports whether x is an integral value of its representation.
func (r *Rounder[T]) IsInteger(x T) (bool, error) {
	return r.pred(x)
}

// RoundToPlaces rounds x to places decimal digits after the point: it is
// RoundToUnit with a unit of 10^-places built in x's representation.
// Negative places round to powers of ten left of the point. Integral
// engines return x unchanged for places >= 0 and compute negative places
// in exact arithmetic, so the unit cannot overflow T.
func (r *Rounder[T]) RoundToPlaces(x T, places int, mode ...Mode) (T, error) {
	var zero T
	o := r.ops
	if o.kind == Integral {
		if places >= 0 {
			return o.clone(x), nil
		}
		if places < math.MinInt32 {
			return zero, fmt.Errorf("%w: exponent %d", ErrRange, places)
		}
		f, err := r.ratFunc(mode)
		if err != nil {
			return zero, err
		}
		e := new(big.Int).SetInt64(int64(places))
		pow := new(big.Int).Exp(ten, e.Neg(e), nil)
		q := o.toRat(x)
		q.Quo(q, new(big.Rat).SetInt(pow))
		n := f(q)
		return o.fromBig(n.Mul(n, pow))
	}
	if o.unit == nil {
		return zero, fmt.Errorf("%w: no unit arithmetic", ErrUnsupportedType)
	}
	u, err := o.unit(places)
	if err != nil {
		return zero, err
	}
	return r.RoundToUnit(x, u, mode...)
}

// OverrideModeTable replaces the same-representation table with table;
// fallback, which may be nil, fills the modes table lacks. Modes present
// in neither fail with ErrModeNotImplemented. The cached default entry is
// refreshed. For engines whose unit operations run in exact rational
// arithmetic (Integral kinds and *inf.Dec) the override affects Round
// only.
func (r *Rounder[T]) OverrideModeTable(table, fallback ModeTable[T]) error {
	merged := make(ModeTable[T], len(table)+len(fallback))
	for m, f := range fallback {
		if f == nil {
			return fmt.Errorf("%w: nil function for %s", ErrModeNotImplemented, m)
		}
		merged[m] = f
	}
	for m, f := range table {
		if f == nil {
			return fmt.Errorf("%w: nil function for %s", ErrModeNotImplemented, m)
		}
		merged[m] = f
	}
	r.same = merged
	r.refresh()
	return nil
}

// OverrideIntegerModeTable replaces the integer-result table with table;
// fallback, which may be nil, fills the modes table lacks. See
// OverrideModeTable.
func (r *Rounder[T]) OverrideIntegerModeTable(table, fallback IntegerModeTable[T]) error {
	merged := make(IntegerModeTable[T], len(table)+len(fallback))
	for m, f := range fallback {
		if f == nil {
			return fmt.Errorf("%w: nil function for %s", ErrModeNotImplemented, m)
		}
		merged[m] = f
	}
	for m, f := range table {
		if f == nil {
			return fmt.Errorf("%w: nil function for %s", ErrModeNotImplemented, m)
		}
		merged[m] = f
	}
	r.toInt = merged
	r.refresh()
	return nil
}

// OverrideIntegerPredicate replaces the integer predicate used by
// IsInteger and IsUnitSized. A nil pred restores the built-in predicate.
func (r *Rounder[T]) OverrideIntegerPredicate(pred func(T) (bool, error)) {
	if pred == nil {
		pred = r.ops.isInt
	}
	r.pred = pred
}
