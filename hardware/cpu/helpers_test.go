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

package cpu_test

import (
	"testing"

	"github.com/famicore/famicore/hardware/cpu"
)

// the full 64k address space with no mirroring and no side effects
type mockMem struct {
	internal [0x10000]uint8
	ticks    int
}

func newMockMem() *mockMem {
	return &mockMem{}
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	return nil
}

func (mem *mockMem) Peek(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *mockMem) Tick(cycles int) {
	mem.ticks += cycles
}

// programs are loaded at 0x8000 and the reset vector points there
func (mem *mockMem) LoadProgram(program []uint8) error {
	copy(mem.internal[0x8000:], program)
	mem.internal[0xfffc] = 0x00
	mem.internal[0xfffd] = 0x80
	return nil
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.internal[address] != value {
		t.Errorf("memory assertion failed (%#02x  - wanted %#02x at address %#04x)", mem.internal[address], value, address)
	}
}

// memory that does not support program loading
type plainMem struct {
	internal [0x10000]uint8
}

func (mem *plainMem) Read(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *plainMem) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	return nil
}

func (mem *plainMem) Tick(_ int) {
}

// programs in the tests start at this address, clear of the zero page and the
// stack
const origin = uint16(0x0600)

// create a CPU and reset it with the PC at the test origin
func setup(t *testing.T) (*cpu.CPU, *mockMem) {
	t.Helper()
	mem := newMockMem()
	mem.internal[0xfffc] = uint8(origin & 0xff)
	mem.internal[0xfffd] = uint8(origin >> 8)
	mc := cpu.NewCPU(mem)
	if err := mc.Reset(); err != nil {
		t.Fatal(err)
	}
	return mc, mem
}

// step the CPU and check the result for consistency
func step(t *testing.T, mc *cpu.CPU) bool {
	t.Helper()
	cont, err := mc.Step()
	if err != nil {
		t.Fatal(err)
	}
	if err := mc.LastResult.IsValid(); err != nil {
		t.Fatal(err)
	}
	return cont
}
