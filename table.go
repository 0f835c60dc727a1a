// Copyright 2022 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package round

import "math/big"

// A RoundFunc rounds its operand under one fixed rounding mode and returns
// the result in the operand's own representation.
type RoundFunc[T any] func(x T) (T, error)

// An IntegerRoundFunc rounds its operand under one fixed rounding mode and
// returns the result as an exact integer.
type IntegerRoundFunc[T any] func(x T) (*big.Int, error)

// A ModeTable maps rounding modes to same-representation rounding
// functions. Engines resolve their tables once, at construction; a table
// can be replaced wholesale with Rounder.OverrideModeTable. Modes absent
// from the active table fail with ErrModeNotImplemented.
type ModeTable[T any] map[Mode]RoundFunc[T]

// An IntegerModeTable maps rounding modes to integer-result rounding
// functions. See ModeTable.
type IntegerModeTable[T any] map[Mode]IntegerRoundFunc[T]
