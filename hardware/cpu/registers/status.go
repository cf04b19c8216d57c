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

package registers

import (
	"strings"
)

// Flag is a single bit in the status register.
type Flag uint8

// List of valid Flags. The Unused bit has no function but is always set when
// the status register is pushed to the stack.
const (
	Carry            Flag = 0x01
	Zero             Flag = 0x02
	InterruptDisable Flag = 0x04
	DecimalMode      Flag = 0x08
	Break            Flag = 0x10
	Unused           Flag = 0x20
	Overflow         Flag = 0x40
	Negative         Flag = 0x80
)

// the order in which the flags are printed by String(). most significant bit
// first
var flagOrder = []struct {
	flag  Flag
	label byte
}{
	{Negative, 'n'},
	{Overflow, 'v'},
	{Unused, '-'},
	{Break, 'b'},
	{DecimalMode, 'd'},
	{InterruptDisable, 'i'},
	{Zero, 'z'},
	{Carry, 'c'},
}

// Status is the processor status register. The register is held as a bitset
// because several instructions (PHP, PLP, RTI, BRK) transfer it as a whole
// byte.
type Status uint8

// NewStatus is the preferred method of initialisation for the status register.
func NewStatus(val uint8) Status {
	return Status(val)
}

// Label returns the canonical name for the status register.
func (sr Status) Label() string {
	return "P"
}

// String returns the status register as a string of letters, one per bit.
// Uppercase letters indicate that a bit is set.
func (sr Status) String() string {
	s := strings.Builder{}
	for _, f := range flagOrder {
		if f.flag == Unused {
			s.WriteByte(f.label)
		} else if sr.IsSet(f.flag) {
			s.WriteByte(f.label - 'a' + 'A')
		} else {
			s.WriteByte(f.label)
		}
	}
	return s.String()
}

// IsSet returns true if the flag is set.
func (sr Status) IsSet(f Flag) bool {
	return uint8(sr)&uint8(f) == uint8(f)
}

// Set the flag.
func (sr *Status) Set(f Flag) {
	*sr |= Status(f)
}

// Clear the flag.
func (sr *Status) Clear(f Flag) {
	*sr &^= Status(f)
}

// Toggle the flag.
func (sr *Status) Toggle(f Flag) {
	*sr ^= Status(f)
}

// Update sets the flag if v is true and clears it otherwise.
func (sr *Status) Update(f Flag, v bool) {
	if v {
		sr.Set(f)
	} else {
		sr.Clear(f)
	}
}

// UpdateZeroNegative sets the zero and negative flags according to the value.
func (sr *Status) UpdateZeroNegative(v uint8) {
	sr.Update(Zero, v == 0)
	sr.Update(Negative, v&0x80 == 0x80)
}

// Value returns the raw byte of the status register.
func (sr Status) Value() uint8 {
	return uint8(sr)
}

// Load sets the status register from a raw byte.
func (sr *Status) Load(v uint8) {
	*sr = Status(v)
}
