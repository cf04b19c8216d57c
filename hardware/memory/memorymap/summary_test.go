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

package memorymap_test

import (
	"testing"

	"github.com/famicore/famicore/hardware/memory/memorymap"
	"github.com/famicore/famicore/test"
)

const validMemMap = `0000 -> 1fff	RAM
2000 -> 3fff	PPU
4000 -> 4013	I/O
4014 -> 4014	OAM DMA
4015 -> 4015	I/O
4016 -> 4016	Controller
4017 -> 401f	I/O
4020 -> 7fff	Unmapped
8000 -> ffff	Cartridge
`

func TestMemory(t *testing.T) {
	test.ExpectEquality(t, memorymap.Summary(), validMemMap)
}

func TestMirrors(t *testing.T) {
	for _, a := range []uint16{0x0012, 0x0812, 0x1012, 0x1812} {
		ma, area := memorymap.MapAddress(a)
		test.ExpectEquality(t, area, memorymap.RAM)
		test.ExpectEquality(t, ma, 0x0012)
	}

	for _, a := range []uint16{0x2002, 0x200a, 0x3ffa, 0x2ff2} {
		ma, area := memorymap.MapAddress(a)
		test.ExpectEquality(t, area, memorymap.PPU)
		test.ExpectEquality(t, ma, 0x2002)
	}

	ma, area := memorymap.MapAddress(0xfffc)
	test.ExpectEquality(t, area, memorymap.Cartridge)
	test.ExpectEquality(t, ma, 0x7ffc)
}
