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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case PPU:
		return "PPU"
	case IO:
		return "I/O"
	case OAMDMA:
		return "OAM DMA"
	case Controller:
		return "Controller"
	case Cartridge:
		return "Cartridge"
	}

	return "Unmapped"
}

// The different memory areas seen by the CPU.
const (
	Unmapped Area = iota
	RAM
	PPU
	IO
	OAMDMA
	Controller
	Cartridge
)

// The origin and memory top for each area of memory. Checking which area an
// address falls within and forcing the address into the normalised range is
// all handled by the MapAddress() function.
const (
	OriginRAM  = uint16(0x0000)
	MemtopRAM  = uint16(0x1fff)
	OriginPPU  = uint16(0x2000)
	MemtopPPU  = uint16(0x3fff)
	OriginIO   = uint16(0x4000)
	MemtopIO   = uint16(0x401f)
	OriginCart = uint16(0x8000)
	MemtopCart = uint16(0xffff)
)

// Registers in the I/O area handled by the bus.
const (
	RegOAMDMA     = uint16(0x4014)
	RegController = uint16(0x4016)
)

// Internal RAM is 2KB mirrored four times over the RAM area. The PPU has eight
// registers mirrored over the entire PPU area.
const (
	MaskRAM = uint16(0x07ff)
	MaskPPU = uint16(0x2007)
)

// Memtop is the top most address of memory.
const Memtop = uint16(0xffff)

// MapAddress translates the address argument from mirror space to primary
// space. For the Cartridge area the returned address is the offset into the
// cartridge space, starting at zero.
func MapAddress(address uint16) (uint16, Area) {
	// note that the order of these filters is important

	if address >= OriginCart {
		return address - OriginCart, Cartridge
	}

	if address <= MemtopRAM {
		return address & MaskRAM, RAM
	}

	if address <= MemtopPPU {
		return address & MaskPPU, PPU
	}

	if address <= MemtopIO {
		switch address {
		case RegOAMDMA:
			return address, OAMDMA
		case RegController:
			return address, Controller
		}
		return address, IO
	}

	return address, Unmapped
}
