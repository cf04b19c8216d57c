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

package ppu

import "github.com/famicore/famicore/hardware/memory/cartridge"

// the PPU address space
const (
	addressMask     = uint16(0x3fff)
	nametableOrigin = uint16(0x2000)
	paletteOrigin   = uint16(0x3f00)
	nametableSize   = uint16(0x0400)
)

func (ppu *PPU) increment() {
	if ppu.ctrl&ctrlIncrement == ctrlIncrement {
		ppu.addr += 32
	} else {
		ppu.addr++
	}
	ppu.addr &= addressMask
}

func (ppu *PPU) readData() uint8 {
	var v uint8

	if ppu.addr >= paletteOrigin {
		v = ppu.palette[paletteIndex(ppu.addr)]
	} else {
		v = ppu.buffer
		ppu.buffer = ppu.read(ppu.addr)
	}

	ppu.increment()
	return v
}

func (ppu *PPU) writeData(data uint8) {
	switch {
	case ppu.addr < nametableOrigin:
		ppu.cart.WriteCHR(ppu.addr, data)
	case ppu.addr < paletteOrigin:
		ppu.vram[ppu.mirrorVRAM(ppu.addr)] = data
	default:
		ppu.palette[paletteIndex(ppu.addr)] = data
	}
	ppu.increment()
}

func (ppu *PPU) read(address uint16) uint8 {
	switch {
	case address < nametableOrigin:
		return ppu.cart.ReadCHR(address)
	case address < paletteOrigin:
		return ppu.vram[ppu.mirrorVRAM(address)]
	}
	return ppu.palette[paletteIndex(address)]
}

// mirrorVRAM maps an address in the nametable area to an index into the 2KB
// of nametable memory. the four nametables are arranged in a grid:
//
//	0 1
//	2 3
//
// horizontal mirroring maps 0 and 1 to the first table and 2 and 3 to the
// second. vertical mirroring maps 0 and 2 to the first table and 1 and 3 to
// the second.
func (ppu *PPU) mirrorVRAM(address uint16) uint16 {
	// 0x3000 to 0x3eff is a mirror of 0x2000 to 0x2eff
	idx := (address & 0x2fff) - nametableOrigin
	table := idx / nametableSize

	switch ppu.cart.Mirroring {
	case cartridge.Horizontal:
		switch table {
		case 1, 2:
			return idx - nametableSize
		case 3:
			return idx - nametableSize*2
		}
	default:
		if table >= 2 {
			return idx - nametableSize*2
		}
	}

	return idx
}

// the background colour entries of the sprite palettes are mirrors of the
// background palette entries
func paletteIndex(address uint16) uint16 {
	idx := address & 0x1f
	switch idx {
	case 0x10, 0x14, 0x18, 0x1c:
		idx -= 0x10
	}
	return idx
}
