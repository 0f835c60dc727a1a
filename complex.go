// Copyright 2022 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package round

import (
	"fmt"
	"math/big"
)

// Only the real component of a complex value is rounded: it goes through
// the float family while the imaginary part is preserved untouched.
// Integer results are only defined on the real line, so a nonzero
// imaginary part fails with ErrUnordered there.

// complexRound rounds the real part of x with f.
func complexRound(f func(float64) float64, x complex128) complex128 {
	return complex(f(real(x)), imag(x))
}

// complexInt rounds the real part of x with f and converts it to a
// *big.Int. x must have a zero imaginary part and a finite real part.
func complexInt(f func(float64) float64, x complex128) (*big.Int, error) {
	if imag(x) != 0 {
		return nil, fmt.Errorf("%w: %v has a nonzero imaginary part", ErrUnordered, x)
	}
	r := f(real(x))
	if !floatIsInt(r) {
		return nil, fmt.Errorf("%w: %v", ErrNonFinite, x)
	}
	return floatInt(r), nil
}

// complexIsInt reports whether x is real-valued and integral.
func complexIsInt(x complex128) bool {
	return imag(x) == 0 && floatIsInt(real(x))
}
