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

package cpu

// Push writes the value to the stack and decrements the stack pointer. The
// stack pointer wraps silently.
func (mc *CPU) Push(data uint8) error {
	if err := mc.mem.Write(mc.SP.Address(), data); err != nil {
		return err
	}
	mc.SP.Push()
	return nil
}

// Pop increments the stack pointer and returns the value at the new stack
// position.
func (mc *CPU) Pop() (uint8, error) {
	mc.SP.Pop()
	return mc.mem.Read(mc.SP.Address())
}

// Push16 pushes the high byte of the value and then the low byte. Pop16() is
// the inverse.
func (mc *CPU) Push16(data uint16) error {
	if err := mc.Push(uint8(data >> 8)); err != nil {
		return err
	}
	return mc.Push(uint8(data))
}

// Pop16 pops the low byte and then the high byte.
func (mc *CPU) Pop16() (uint16, error) {
	lo, err := mc.Pop()
	if err != nil {
		return 0, err
	}
	hi, err := mc.Pop()
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}
