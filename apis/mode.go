/*
   Copyright 2026 The Mobile Shell Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

import (
	"fmt"
	"strings"
)

// Mode selects which partition of the primitive token document is in effect.
//
// Mode is a closed set. Token documents partition their primitives by the
// String form of a Mode ("light", "dark"), so the textual form is part of
// the document contract and MUST NOT change for existing values.
type Mode int

const (
	// Light is the light appearance. It is the zero Mode and the default.
	Light Mode = iota
	// Dark is the dark appearance.
	Dark
)

// Modes returns every known Mode in declaration order.
func Modes() []Mode { return []Mode{Light, Dark} }

func (m Mode) String() string {
	switch m {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool { return m == Light || m == Dark }

// Toggle returns the other mode of the light/dark pair.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// ParseMode parses a mode name, ignoring case and surrounding space.
func ParseMode(s string) (Mode, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Light, fmt.Errorf("%w: empty mode", ErrUnknownMode)
	}

	switch strings.ToLower(trimmed) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Light, fmt.Errorf("%w %q", ErrUnknownMode, s)
	}
}

// MustParseMode is ParseMode that panics on error.
func MustParseMode(s string) Mode {
	m, err := ParseMode(s)
	if err != nil {
		panic(err)
	}
	return m
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: cannot marshal %d", ErrUnknownMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	value, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = value
	return nil
}
