// Copyright 2022 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package round

import "fmt"

// A Mode determines how a value is rounded to an integer, or to an integer
// multiple of a unit. Rounding may change the value; when the operand sits
// exactly halfway between two candidates, the Half modes pick the candidate
// named by their suffix.
type Mode uint8

// Supported rounding modes.
const (
	Down             Mode = iota // == IEEE 754-2008 roundTowardNegative
	Up                           // == IEEE 754-2008 roundTowardPositive
	ToZero                       // == IEEE 754-2008 roundTowardZero
	FromZero                     // no IEEE 754-2008 equivalent
	HalfEven                     // == IEEE 754-2008 roundTiesToEven
	HalfOdd                      // ties to the odd digit
	HalfDown                     // ties toward -Inf
	HalfUp                       // ties toward +Inf
	HalfToZero                   // ties toward zero
	HalfFromZero                 // == IEEE 754-2008 roundTiesToAway
	ZeroFiveFromZero             // away from zero when the truncated result ends in 0 or 5
)

const numModes = int(ZeroFiveFromZero) + 1

// DefaultMode is the rounding mode of engines constructed without an
// explicit mode.
const DefaultMode = HalfEven

var modeNames = [numModes]string{
	Down:             "Down",
	Up:               "Up",
	ToZero:           "ToZero",
	FromZero:         "FromZero",
	HalfEven:         "HalfEven",
	HalfOdd:          "HalfOdd",
	HalfDown:         "HalfDown",
	HalfUp:           "HalfUp",
	HalfToZero:       "HalfToZero",
	HalfFromZero:     "HalfFromZero",
	ZeroFiveFromZero: "ZeroFiveFromZero",
}

var modeDescs = [numModes]string{
	Down:         "Round toward -infinity.",
	Up:           "Round toward +infinity.",
	ToZero:       "Round toward zero.",
	FromZero:     "Round away from zero, toward +infinity if positive and toward -infinity if negative.",
	HalfEven:     "Round to nearest with ties going to the even digit.",
	HalfOdd:      "Round to nearest with ties going to the odd digit.",
	HalfDown:     "Round to nearest with ties going toward -infinity.",
	HalfUp:       "Round to nearest with ties going toward +infinity.",
	HalfToZero:   "Round to nearest with ties going toward zero.",
	HalfFromZero: "Round to nearest with ties going away from zero.",
	ZeroFiveFromZero: "Round toward zero, unless the truncated result ends in 0 or 5, " +
		"in which case round away from zero.",
}

func (m Mode) valid() bool {
	return int(m) < numModes
}

func (m Mode) String() string {
	if !m.valid() {
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
	return modeNames[m]
}

// Description returns a one-sentence description of the rounding policy
// selected by m.
func (m Mode) Description() string {
	if !m.valid() {
		return fmt.Sprintf("Unknown rounding mode %d.", uint8(m))
	}
	return modeDescs[m]
}

// Modes returns all supported rounding modes, in declaration order.
func Modes() []Mode {
	ms := make([]Mode, numModes)
	for i := range ms {
		ms[i] = Mode(i)
	}
	return ms
}

// ParseMode returns the Mode named by s, as reported by Mode.String.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if s == name {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown mode %q", ErrModeNotImplemented, s)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (m Mode) MarshalText() (text []byte, err error) {
	if !m.valid() {
		return nil, fmt.Errorf("%w: %s", ErrModeNotImplemented, m)
	}
	return []byte(modeNames[m]), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. It
// accepts mode names as reported by Mode.String.
func (m *Mode) UnmarshalText(text []byte) error {
	p, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = p
	return nil
}
