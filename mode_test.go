// Copyright 2022 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package round

import (
	"errors"
	"strings"
	"testing"
)

func TestModeString(t *testing.T) {
	for _, d := range []struct {
		m    Mode
		want string
	}{
		{Down, "Down"},
		{Up, "Up"},
		{ToZero, "ToZero"},
		{FromZero, "FromZero"},
		{HalfEven, "HalfEven"},
		{HalfOdd, "HalfOdd"},
		{HalfDown, "HalfDown"},
		{HalfUp, "HalfUp"},
		{HalfToZero, "HalfToZero"},
		{HalfFromZero, "HalfFromZero"},
		{ZeroFiveFromZero, "ZeroFiveFromZero"},
		{Mode(99), "Mode(99)"},
	} {
		if got := d.m.String(); got != d.want {
			t.Errorf("Mode(%d).String() = %q. Want %q", uint8(d.m), got, d.want)
		}
	}
}

func TestModes(t *testing.T) {
	ms := Modes()
	if len(ms) != numModes {
		t.Fatalf("len(Modes()) = %d. Want %d", len(ms), numModes)
	}
	for i, m := range ms {
		if m != Mode(i) {
			t.Errorf("Modes()[%d] = %s. Want %s", i, m, Mode(i))
		}
	}
}

func TestModeDescription(t *testing.T) {
	for _, m := range Modes() {
		d := m.Description()
		if d == "" {
			t.Errorf("%s has no description", m)
		}
		if !strings.HasSuffix(d, ".") {
			t.Errorf("%s description %q does not end in a period", m, d)
		}
	}
	if got, want := Mode(99).Description(), "Unknown rounding mode 99."; got != want {
		t.Errorf("Mode(99).Description() = %q. Want %q", got, want)
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes() {
		got, err := ParseMode(m.String())
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", m.String(), err)
		}
		if got != m {
			t.Errorf("ParseMode(%q) = %s. Want %s", m.String(), got, m)
		}
	}
	for _, s := range []string{"", "halfeven", "Half-Even", "Nearest", "Mode(3)"} {
		if _, err := ParseMode(s); !errors.Is(err, ErrModeNotImplemented) {
			t.Errorf("ParseMode(%q) = %v. Want ErrModeNotImplemented", s, err)
		}
	}
}

func TestModeText(t *testing.T) {
	for _, m := range Modes() {
		b, err := m.MarshalText()
		if err != nil {
			t.Fatalf("%s.MarshalText(): %v", m, err)
		}
		var got Mode
		if err := got.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", b, err)
		}
		if got != m {
			t.Errorf("text round trip of %s gave %s", m, got)
		}
	}
	if _, err := Mode(99).MarshalText(); !errors.Is(err, ErrModeNotImplemented) {
		t.Errorf("Mode(99).MarshalText() = %v. Want ErrModeNotImplemented", err)
	}
	var m Mode
	if err := m.UnmarshalText([]byte("Sideways")); !errors.Is(err, ErrModeNotImplemented) {
		t.Errorf("UnmarshalText(\"Sideways\") = %v. Want ErrModeNotImplemented", err)
	}
}
