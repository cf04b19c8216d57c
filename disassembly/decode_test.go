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

package disassembly_test

import (
	"testing"

	"github.com/famicore/famicore/disassembly"
	"github.com/famicore/famicore/test"
)

type mockMem [0x10000]uint8

func (mem *mockMem) Peek(address uint16) (uint8, error) {
	return mem[address], nil
}

func (mem *mockMem) put(origin uint16, bytes ...uint8) {
	for i, b := range bytes {
		mem[origin+uint16(i)] = b
	}
}

func TestInstruction(t *testing.T) {
	var mem mockMem

	mem[0x0022] = 0x00
	mem[0x0023] = 0x04
	mem[0x007f] = 0x99
	mem[0x0201] = 0x33
	mem[0x0400] = 0x77
	mem[0x02ff] = 0x00
	mem[0x0200] = 0x03

	regs := disassembly.Registers{X: 0x02, Y: 0x03}

	tests := []struct {
		bytes    []uint8
		regs     disassembly.Registers
		expected string
	}{
		{[]uint8{0x0a}, regs, " ASL A"},
		{[]uint8{0xe8}, regs, " INX"},
		{[]uint8{0xa9, 0x10}, regs, " LDA #$10"},
		{[]uint8{0x20, 0x00, 0x07}, regs, " JSR $0700"},
		{[]uint8{0x4c, 0x00, 0x07}, regs, " JMP $0700"},
		{[]uint8{0x8d, 0x01, 0x02}, regs, " STA $0201 = 33"},
		{[]uint8{0x6c, 0xff, 0x02}, regs, " JMP ($02FF) = 0300"},
		{[]uint8{0xa1, 0x20}, regs, " LDA ($20,X) @ 22 = 0400 = 77"},
		{[]uint8{0xb5, 0x80}, disassembly.Registers{X: 0xff}, " LDA $80,X @ 7F = 99"},
		{[]uint8{0xb6, 0x20}, regs, " LDX $20,Y @ 23 = 04"},
		{[]uint8{0x9d, 0x00, 0x02}, disassembly.Registers{X: 0x01}, " STA $0200,X @ 0201 = 33"},
		{[]uint8{0xb9, 0xfe, 0x01}, regs, " LDA $01FE,Y @ 0201 = 33"},
		{[]uint8{0x04, 0x7f}, regs, "*NOP $7F = 99"},
		{[]uint8{0xeb, 0x01}, regs, "*SBC #$01"},
	}

	for _, tt := range tests {
		mem.put(0x0600, tt.bytes...)
		e := disassembly.Instruction(&mem, 0x0600, tt.regs)
		test.ExpectEquality(t, e.Assembly(), tt.expected)
		test.ExpectEquality(t, len(e.Bytes), len(tt.bytes))
		test.ExpectEquality(t, e.Defn.OpCode, tt.bytes[0])
	}
}

func TestRelative(t *testing.T) {
	var mem mockMem

	// branch backwards
	mem.put(0x0600, 0xf0, 0xfc)
	e := disassembly.Instruction(&mem, 0x0600, disassembly.Registers{})
	test.ExpectEquality(t, e.Assembly(), " BEQ $05FE")

	// branch forwards
	mem.put(0x0600, 0xd0, 0x10)
	e = disassembly.Instruction(&mem, 0x0600, disassembly.Registers{})
	test.ExpectEquality(t, e.Assembly(), " BNE $0612")
}

func TestEntryString(t *testing.T) {
	var mem mockMem
	mem.put(0x0004, 0x04, 0xa9)
	e := disassembly.Instruction(&mem, 0x0004, disassembly.Registers{})
	test.ExpectEquality(t, e.String(), "0004  04 A9    *NOP $A9 = 00")
	test.ExpectEquality(t, e.Bytecode(), "04 A9")
}

func TestLinear(t *testing.T) {
	var mem mockMem

	// LDX #$01; DEX; STA $0200; BRK
	mem.put(0x8000, 0xa2, 0x01, 0xca, 0x8d, 0x00, 0x02, 0x00)

	entries := disassembly.Linear(&mem, 0x8000, 4, disassembly.Registers{})
	test.DemandEquality(t, len(entries), 4)
	test.ExpectEquality(t, entries[0].Address, 0x8000)
	test.ExpectEquality(t, entries[1].Address, 0x8002)
	test.ExpectEquality(t, entries[2].Address, 0x8003)
	test.ExpectEquality(t, entries[3].Address, 0x8006)
	test.ExpectEquality(t, entries[3].Operator, "BRK")
}
