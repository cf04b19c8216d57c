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

package disassembly

import (
	"fmt"

	"github.com/famicore/famicore/hardware/cpu/instructions"
	"github.com/famicore/famicore/hardware/memory/cpubus"
)

// Registers are the index registers used to annotate indexed operands with
// their effective address.
type Registers struct {
	X uint8
	Y uint8
}

// errors from the memory are not interesting to the disassembly. unreadable
// memory is shown as zero
func peek(mem cpubus.Peeker, address uint16) uint8 {
	v, err := mem.Peek(address)
	if err != nil {
		return 0
	}
	return v
}

func peek16(mem cpubus.Peeker, address uint16) uint16 {
	return uint16(peek(mem, address)) | uint16(peek(mem, address+1))<<8
}

// Instruction disassembles the instruction at the address. Memory is read
// with Peek() so that disassembly has no side effects.
func Instruction(mem cpubus.Peeker, address uint16, regs Registers) Entry {
	defn := instructions.Get(peek(mem, address))

	e := Entry{
		Address:  address,
		Defn:     defn,
		Operator: defn.Operator.String(),
	}

	if defn.Undocumented {
		e.Operator = "*" + e.Operator
	}

	e.Bytes = make([]uint8, defn.Bytes)
	for i := range e.Bytes {
		e.Bytes[i] = peek(mem, address+uint16(i))
	}

	var lo, hi uint8
	if defn.Bytes > 1 {
		lo = e.Bytes[1]
	}
	if defn.Bytes > 2 {
		hi = e.Bytes[2]
	}
	data := uint16(hi)<<8 | uint16(lo)

	switch defn.AddressingMode {
	case instructions.Implied:

	case instructions.Accumulator:
		e.Operand = "A"

	case instructions.Immediate:
		e.Operand = fmt.Sprintf("#$%02X", lo)

	case instructions.Relative:
		target := address + 2 + uint16(int16(int8(lo)))
		e.Operand = fmt.Sprintf("$%04X", target)

	case instructions.ZeroPage:
		e.Operand = fmt.Sprintf("$%02X = %02X", lo, peek(mem, uint16(lo)))

	case instructions.ZeroPageIndexedX:
		ea := lo + regs.X
		e.Operand = fmt.Sprintf("$%02X,X @ %02X = %02X", lo, ea, peek(mem, uint16(ea)))

	case instructions.ZeroPageIndexedY:
		ea := lo + regs.Y
		e.Operand = fmt.Sprintf("$%02X,Y @ %02X = %02X", lo, ea, peek(mem, uint16(ea)))

	case instructions.Absolute:
		switch defn.Operator {
		case instructions.Jmp, instructions.Jsr:
			e.Operand = fmt.Sprintf("$%04X", data)
		default:
			e.Operand = fmt.Sprintf("$%04X = %02X", data, peek(mem, data))
		}

	case instructions.AbsoluteIndexedX:
		ea := data + uint16(regs.X)
		e.Operand = fmt.Sprintf("$%04X,X @ %04X = %02X", data, ea, peek(mem, ea))

	case instructions.AbsoluteIndexedY:
		ea := data + uint16(regs.Y)
		e.Operand = fmt.Sprintf("$%04X,Y @ %04X = %02X", data, ea, peek(mem, ea))

	case instructions.Indirect:
		// the high byte of the pointer does not carry
		hiAddr := data + 1
		if lo == 0xff {
			hiAddr = data & 0xff00
		}
		ea := uint16(peek(mem, hiAddr))<<8 | uint16(peek(mem, data))
		e.Operand = fmt.Sprintf("($%04X) = %04X", data, ea)

	case instructions.IndexedIndirect:
		ptr := lo + regs.X
		ea := uint16(peek(mem, uint16(ptr+1)))<<8 | uint16(peek(mem, uint16(ptr)))
		e.Operand = fmt.Sprintf("($%02X,X) @ %02X = %04X = %02X", lo, ptr, ea, peek(mem, ea))

	case instructions.IndirectIndexed:
		base := uint16(peek(mem, uint16(lo+1)))<<8 | uint16(peek(mem, uint16(lo)))
		ea := base + uint16(regs.Y)
		e.Operand = fmt.Sprintf("($%02X),Y = %04X @ %04X = %02X", lo, base, ea, peek(mem, ea))
	}

	return e
}

// Linear disassembles count instructions starting at the address. Each
// instruction is assumed to follow the previous one. No attempt is made to
// follow the flow of the program.
func Linear(mem cpubus.Peeker, address uint16, count int, regs Registers) []Entry {
	entries := make([]Entry, 0, count)
	for range count {
		e := Instruction(mem, address, regs)
		entries = append(entries, e)
		address += uint16(len(e.Bytes))
	}
	return entries
}
