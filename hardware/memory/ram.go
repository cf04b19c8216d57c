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

package memory

import (
	"fmt"
	"strings"

	"github.com/famicore/famicore/hardware/memory/memorymap"
)

// the amount of internal RAM. the RAM area of the memory map is larger than
// this and is a mirror of the internal RAM
const ramSize = int(memorymap.MaskRAM) + 1

// RAM is the 2KB of internal RAM in the NES. The zero page and the stack are
// both in this RAM.
type RAM struct {
	memory [ramSize]uint8
}

func newRAM() *RAM {
	return &RAM{}
}

// String returns a hex dump of the zero page and the stack page.
func (ram RAM) String() string {
	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("    ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < 32; y++ {
		s.WriteString(fmt.Sprintf("%03X- | ", y))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", ram.memory[(y*16)+x]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}

// Reset clears the contents of RAM.
func (ram *RAM) Reset() {
	clear(ram.memory[:])
}

// Peek returns the value at the address. The address is mapped.
func (ram RAM) Peek(address uint16) uint8 {
	return ram.memory[address&memorymap.MaskRAM]
}

// Poke changes the value at the address. The address is mapped.
func (ram *RAM) Poke(address uint16, value uint8) {
	ram.memory[address&memorymap.MaskRAM] = value
}
