// This file is part of Famicore.
//
// Famicore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famicore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famicore.  If not, see <https://www.gnu.org/licenses/>.

package controller

import (
	"fmt"
	"strings"

	"github.com/famicore/famicore/curated"
)

// Button identifies a single button on the joypad. The value of the button is
// also the bit it occupies in the serial report.
type Button uint8

// List of valid Button values, in the order they are reported.
const (
	A Button = 1 << iota
	B
	Select
	Start
	Up
	Down
	Left
	Right
)

var buttonNames = []string{"A", "B", "Select", "Start", "Up", "Down", "Left", "Right"}

func (b Button) String() string {
	for i, n := range buttonNames {
		if b == 1<<i {
			return n
		}
	}
	return "unknown button"
}

// UnknownButton is the error pattern returned by ParseButton.
const UnknownButton = "controller: unknown button (%s)"

// ParseButton returns the Button with the name. Matching is case-insensitive.
func ParseButton(name string) (Button, error) {
	for i, n := range buttonNames {
		if strings.EqualFold(n, name) {
			return Button(1 << i), nil
		}
	}
	return 0, curated.Errorf(UnknownButton, name)
}

// the number of buttons reported before the joypad returns a constant value
const numButtons = 8

// Joypad is the standard NES controller. The state of the buttons is read one
// bit at a time through a serial port.
type Joypad struct {
	strobe bool
	index  int
	state  Button
}

// NewJoypad is the preferred method of initialisation for the Joypad type.
func NewJoypad() *Joypad {
	return &Joypad{}
}

func (jp *Joypad) String() string {
	s := strings.Builder{}
	for i, n := range buttonNames {
		if jp.state&(1<<i) != 0 {
			s.WriteString(strings.ToUpper(n[:1]))
		} else {
			s.WriteString(strings.ToLower(n[:1]))
		}
	}
	return fmt.Sprintf("joypad: %s strobe=%v index=%d", s.String(), jp.strobe, jp.index)
}

// Write to the joypad port. Bit 0 is the strobe. While the strobe is high the
// report index is held at the first button.
func (jp *Joypad) Write(data uint8) {
	jp.strobe = data&0x01 == 0x01
	if jp.strobe {
		jp.index = 0
	}
}

// Read the next bit of the report. After all buttons have been reported the
// joypad returns 1.
func (jp *Joypad) Read() uint8 {
	if jp.index >= numButtons {
		return 1
	}

	v := uint8(jp.state>>jp.index) & 0x01
	if !jp.strobe {
		jp.index++
	}
	return v
}

// Peek returns the bit that would be returned by Read() without advancing the
// report.
func (jp *Joypad) Peek() uint8 {
	if jp.index >= numButtons {
		return 1
	}
	return uint8(jp.state>>jp.index) & 0x01
}

// Press a button.
func (jp *Joypad) Press(b Button) {
	jp.state |= b
}

// Release a button.
func (jp *Joypad) Release(b Button) {
	jp.state &^= b
}

// IsPressed returns true if the button is currently pressed.
func (jp *Joypad) IsPressed(b Button) bool {
	return jp.state&b == b
}
