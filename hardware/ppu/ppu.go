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

import (
	"fmt"

	"github.com/famicore/famicore/hardware/memory/cartridge"
	"github.com/famicore/famicore/logger"
)

// Timing of the NTSC PPU.
const (
	DotsPerScanline   = 341
	ScanlinesPerFrame = 262
	VBlankScanline    = 241
)

// sizes of the PPU memories
const (
	vramSize    = 0x800
	paletteSize = 0x20
	oamSize     = 0x100
)

// PPU is the register block and clock of the NES picture processing unit. The
// PPU does not produce an image. It maintains the state of its registers and
// memory as seen by the CPU, and the vertical blank timing that generates the
// non-maskable interrupt.
type PPU struct {
	cart *cartridge.Cartridge

	ctrl    uint8
	mask    uint8
	status  uint8
	oamAddr uint8

	// the scroll and addr registers share a single write latch. the latch is
	// reset by reading the status register
	latch   bool
	scrollX uint8
	scrollY uint8
	addr    uint16

	// reads from the data register are delayed by one read, except for
	// reads from palette memory
	buffer uint8

	vram    [vramSize]uint8
	palette [paletteSize]uint8
	oam     [oamSize]uint8

	scanline int
	dot      int
	frame    int

	nmi bool
}

// NewPPU is the preferred method of initialisation for the PPU type.
func NewPPU(cart *cartridge.Cartridge) *PPU {
	ppu := &PPU{}
	ppu.AttachCartridge(cart)
	return ppu
}

// AttachCartridge changes the source of CHR data and the nametable
// mirroring. The PPU is reset.
func (ppu *PPU) AttachCartridge(cart *cartridge.Cartridge) {
	ppu.cart = cart
	if cart.Mirroring == cartridge.FourScreen {
		logger.Log(logger.Allow, "ppu", "four-screen mirroring treated as vertical")
	}
	ppu.Reset()
}

// Reset the PPU registers, memory and clock.
func (ppu *PPU) Reset() {
	cart := ppu.cart
	*ppu = PPU{}
	ppu.cart = cart
}

func (ppu *PPU) String() string {
	return fmt.Sprintf("frame=%d scanline=%d dot=%d ctrl=%02x mask=%02x status=%02x addr=%04x scroll=%d,%d",
		ppu.frame, ppu.scanline, ppu.dot, ppu.ctrl, ppu.mask, ppu.status, ppu.addr, ppu.scrollX, ppu.scrollY)
}

// Scanline returns the current scanline. Scanline 0 is the first visible
// scanline.
func (ppu *PPU) Scanline() int {
	return ppu.scanline
}

// Dot returns the current dot (or cycle) in the scanline.
func (ppu *PPU) Dot() int {
	return ppu.dot
}

// Frame returns the number of frames completed since reset.
func (ppu *PPU) Frame() int {
	return ppu.frame
}

// Scroll returns the most recent values written to the scroll register.
func (ppu *PPU) Scroll() (uint8, uint8) {
	return ppu.scrollX, ppu.scrollY
}

// Tick advances the PPU clock by the number of dots. Returns true if a frame
// was completed.
func (ppu *PPU) Tick(dots int) bool {
	var frameDone bool

	ppu.dot += dots
	for ppu.dot >= DotsPerScanline {
		ppu.dot -= DotsPerScanline
		ppu.scanline++

		if ppu.scanline == VBlankScanline {
			ppu.status |= statusVBlank
			if ppu.ctrl&ctrlNMIEnable == ctrlNMIEnable {
				ppu.nmi = true
			}
		}

		if ppu.scanline >= ScanlinesPerFrame {
			ppu.scanline = 0
			ppu.status &^= statusVBlank | statusSprite0
			ppu.frame++
			frameDone = true
		}
	}

	return frameDone
}

// PollNMI returns true if the PPU has requested a non-maskable interrupt since
// the last call. The request is cleared.
func (ppu *PPU) PollNMI() bool {
	nmi := ppu.nmi
	ppu.nmi = false
	return nmi
}

// InVBlank returns the state of the vertical blank flag without the side
// effects of reading the status register.
func (ppu *PPU) InVBlank() bool {
	return ppu.status&statusVBlank == statusVBlank
}

// Read the PPU register at the (mapped) address. Reading write-only registers
// returns zero.
func (ppu *PPU) Read(address uint16) uint8 {
	switch address {
	case STATUS:
		v := ppu.status & statusBitsInUse
		ppu.status &^= statusVBlank
		ppu.latch = false
		return v
	case OAMDATA:
		return ppu.oam[ppu.oamAddr]
	case DATA:
		return ppu.readData()
	}
	return 0
}

// Peek is the same as Read() except that there are no side effects.
func (ppu *PPU) Peek(address uint16) uint8 {
	switch address {
	case STATUS:
		return ppu.status & statusBitsInUse
	case OAMDATA:
		return ppu.oam[ppu.oamAddr]
	case DATA:
		if ppu.addr >= paletteOrigin {
			return ppu.palette[paletteIndex(ppu.addr)]
		}
		return ppu.buffer
	}
	return 0
}

// Write to the PPU register at the (mapped) address. Writes to the status
// register are ignored.
func (ppu *PPU) Write(address uint16, data uint8) {
	switch address {
	case CTRL:
		enabling := ppu.ctrl&ctrlNMIEnable == 0 && data&ctrlNMIEnable == ctrlNMIEnable
		ppu.ctrl = data
		if enabling && ppu.InVBlank() {
			ppu.nmi = true
		}
	case MASK:
		ppu.mask = data
	case OAMADDR:
		ppu.oamAddr = data
	case OAMDATA:
		ppu.oam[ppu.oamAddr] = data
		ppu.oamAddr++
	case SCROLL:
		if ppu.latch {
			ppu.scrollY = data
		} else {
			ppu.scrollX = data
		}
		ppu.latch = !ppu.latch
	case ADDR:
		if ppu.latch {
			ppu.addr = (ppu.addr & 0xff00) | uint16(data)
		} else {
			ppu.addr = (uint16(data) << 8) | (ppu.addr & 0x00ff)
		}
		ppu.addr &= addressMask
		ppu.latch = !ppu.latch
	case DATA:
		ppu.writeData(data)
	}
}

// PeekOAM returns the OAM byte at the index.
func (ppu *PPU) PeekOAM(idx uint8) uint8 {
	return ppu.oam[idx]
}

// PeekVRAM returns the byte in the PPU address space without side effects.
func (ppu *PPU) PeekVRAM(address uint16) uint8 {
	return ppu.read(address & addressMask)
}

// Nametable returns the address of the base nametable selected by the CTRL
// register.
func (ppu *PPU) Nametable() uint16 {
	return nametableOrigin + uint16(ppu.ctrl&ctrlNametable)*nametableSize
}

// PatternTables returns the addresses of the background and sprite pattern
// tables selected by the CTRL register.
func (ppu *PPU) PatternTables() (background uint16, sprites uint16) {
	if ppu.ctrl&ctrlBackground == ctrlBackground {
		background = 0x1000
	}
	if ppu.ctrl&ctrlSpritePattern == ctrlSpritePattern {
		sprites = 0x1000
	}
	return background, sprites
}

// SpriteHeight returns 8 or 16 depending on the sprite size bit of the CTRL
// register.
func (ppu *PPU) SpriteHeight() int {
	if ppu.ctrl&ctrlSpriteSize == ctrlSpriteSize {
		return 16
	}
	return 8
}
