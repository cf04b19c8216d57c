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

// Package registers implements the registers of the 2A03 CPU: the 8-bit
// Register type used for the accumulator and the index registers, the
// ProgramCounter, the StackPointer and the Status register.
//
// Arithmetic on a Register returns the carry and overflow states. It is up to
// the CPU to transfer these to the Status register. For example, the CPU
// implementation of ADC is:
//
//	carry, overflow := a.Add(v, sr.IsSet(registers.Carry))
//	sr.Update(registers.Carry, carry)
//	sr.Update(registers.Overflow, overflow)
//	sr.UpdateZeroNegative(a.Value())
//
// The Status register is a bitset. It should never be represented as a set of
// separate boolean values because several instructions transfer it as a
// whole byte.
package registers
