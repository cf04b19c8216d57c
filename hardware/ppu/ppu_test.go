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

package ppu_test

import (
	"testing"

	"github.com/famicore/famicore/hardware/memory/cartridge"
	"github.com/famicore/famicore/hardware/ppu"
	"github.com/famicore/famicore/test"
)

func newPPU(t *testing.T, mirroring cartridge.Mirroring) *ppu.PPU {
	t.Helper()
	chr := make([]uint8, cartridge.CHRBankSize)
	chr[0x0010] = 0x99
	cart, err := cartridge.NewCartridge(make([]uint8, cartridge.PRGBankSize), chr, mirroring)
	test.DemandSuccess(t, err)
	return ppu.NewPPU(cart)
}

func setAddress(p *ppu.PPU, address uint16) {
	p.Write(ppu.ADDR, uint8(address>>8))
	p.Write(ppu.ADDR, uint8(address))
}

func TestBufferedRead(t *testing.T) {
	p := newPPU(t, cartridge.Horizontal)

	setAddress(p, 0x2000)
	p.Write(ppu.DATA, 0x01)
	p.Write(ppu.DATA, 0x02)

	setAddress(p, 0x2000)
	_ = p.Read(ppu.DATA) // dummy read
	test.ExpectEquality(t, p.Read(ppu.DATA), 0x01)
	test.ExpectEquality(t, p.Read(ppu.DATA), 0x02)

	// reading from CHR ROM is also buffered
	setAddress(p, 0x0010)
	_ = p.Read(ppu.DATA)
	test.ExpectEquality(t, p.Read(ppu.DATA), 0x99)
}

func TestCHRROMWrite(t *testing.T) {
	p := newPPU(t, cartridge.Horizontal)
	setAddress(p, 0x0010)
	p.Write(ppu.DATA, 0x11)
	test.ExpectEquality(t, p.PeekVRAM(0x0010), 0x99)
}

func TestPalette(t *testing.T) {
	p := newPPU(t, cartridge.Horizontal)

	setAddress(p, 0x3f10)
	p.Write(ppu.DATA, 0x01)
	test.ExpectEquality(t, p.PeekVRAM(0x3f00), 0x01)

	// palette reads are not buffered
	setAddress(p, 0x3f00)
	test.ExpectEquality(t, p.Read(ppu.DATA), 0x01)

	// palette is mirrored throughout 0x3f00 to 0x3fff
	test.ExpectEquality(t, p.PeekVRAM(0x3fe0), 0x01)
}

func TestIncrement(t *testing.T) {
	p := newPPU(t, cartridge.Vertical)

	p.Write(ppu.CTRL, 0x04)
	setAddress(p, 0x2000)
	p.Write(ppu.DATA, 0x01)
	p.Write(ppu.DATA, 0x02)
	test.ExpectEquality(t, p.PeekVRAM(0x2000), 0x01)
	test.ExpectEquality(t, p.PeekVRAM(0x2020), 0x02)

	// address wraps at the top of the PPU address space
	p.Write(ppu.CTRL, 0x00)
	setAddress(p, 0x3fff)
	p.Write(ppu.DATA, 0x05)
	p.Write(ppu.DATA, 0x06)
	test.ExpectEquality(t, p.PeekVRAM(0x0000), 0x00)
}

func TestHorizontalMirroring(t *testing.T) {
	p := newPPU(t, cartridge.Horizontal)

	setAddress(p, 0x2000)
	p.Write(ppu.DATA, 0x01)
	setAddress(p, 0x2801)
	p.Write(ppu.DATA, 0x02)

	test.ExpectEquality(t, p.PeekVRAM(0x2400), 0x01)
	test.ExpectEquality(t, p.PeekVRAM(0x2c01), 0x02)
	test.ExpectEquality(t, p.PeekVRAM(0x2800), 0x00)

	// 0x3000 mirrors 0x2000
	test.ExpectEquality(t, p.PeekVRAM(0x3000), 0x01)
}

func TestVerticalMirroring(t *testing.T) {
	p := newPPU(t, cartridge.Vertical)

	setAddress(p, 0x2000)
	p.Write(ppu.DATA, 0x01)
	setAddress(p, 0x2401)
	p.Write(ppu.DATA, 0x02)

	test.ExpectEquality(t, p.PeekVRAM(0x2800), 0x01)
	test.ExpectEquality(t, p.PeekVRAM(0x2c01), 0x02)
	test.ExpectEquality(t, p.PeekVRAM(0x2400), 0x00)
}

func TestStatus(t *testing.T) {
	p := newPPU(t, cartridge.Horizontal)

	// run to the start of the vertical blank
	p.Tick(ppu.DotsPerScanline * ppu.VBlankScanline)
	test.ExpectSuccess(t, p.InVBlank())
	test.ExpectEquality(t, p.Peek(ppu.STATUS), 0x80)

	// status read clears vblank
	test.ExpectEquality(t, p.Read(ppu.STATUS), 0x80)
	test.ExpectFailure(t, p.InVBlank())
	test.ExpectEquality(t, p.Read(ppu.STATUS), 0x00)

	// status read resets the address latch
	p.Write(ppu.ADDR, 0x21)
	_ = p.Read(ppu.STATUS)
	p.Write(ppu.ADDR, 0x23)
	p.Write(ppu.ADDR, 0x45)
	p.Write(ppu.DATA, 0x77)
	test.ExpectEquality(t, p.PeekVRAM(0x2345), 0x77)
}

func TestScroll(t *testing.T) {
	p := newPPU(t, cartridge.Horizontal)
	p.Write(ppu.SCROLL, 0x10)
	p.Write(ppu.SCROLL, 0x20)
	x, y := p.Scroll()
	test.ExpectEquality(t, x, 0x10)
	test.ExpectEquality(t, y, 0x20)
}

func TestOAM(t *testing.T) {
	p := newPPU(t, cartridge.Horizontal)
	p.Write(ppu.OAMADDR, 0xfe)
	p.Write(ppu.OAMDATA, 0x01)
	p.Write(ppu.OAMDATA, 0x02)
	p.Write(ppu.OAMDATA, 0x03)

	test.ExpectEquality(t, p.PeekOAM(0xfe), 0x01)
	test.ExpectEquality(t, p.PeekOAM(0xff), 0x02)
	test.ExpectEquality(t, p.PeekOAM(0x00), 0x03)

	// reading does not increment the address
	p.Write(ppu.OAMADDR, 0xfe)
	test.ExpectEquality(t, p.Read(ppu.OAMDATA), 0x01)
	test.ExpectEquality(t, p.Read(ppu.OAMDATA), 0x01)
}

func TestNMI(t *testing.T) {
	p := newPPU(t, cartridge.Horizontal)

	// no NMI when disabled
	p.Tick(ppu.DotsPerScanline * ppu.VBlankScanline)
	test.ExpectFailure(t, p.PollNMI())

	// enabling NMI during vblank raises the NMI immediately
	p.Write(ppu.CTRL, 0x80)
	test.ExpectSuccess(t, p.PollNMI())
	test.ExpectFailure(t, p.PollNMI())

	// frame completes
	done := p.Tick(ppu.DotsPerScanline * (ppu.ScanlinesPerFrame - ppu.VBlankScanline))
	test.ExpectSuccess(t, done)
	test.ExpectEquality(t, p.Frame(), 1)
	test.ExpectEquality(t, p.Scanline(), 0)
	test.ExpectFailure(t, p.InVBlank())

	// NMI raised at the start of the next vblank
	p.Tick(ppu.DotsPerScanline*ppu.VBlankScanline - 1)
	test.ExpectFailure(t, p.PollNMI())
	p.Tick(1)
	test.ExpectSuccess(t, p.PollNMI())
}

func TestClock(t *testing.T) {
	p := newPPU(t, cartridge.Horizontal)
	p.Tick(21)
	test.ExpectEquality(t, p.Dot(), 21)
	p.Tick(ppu.DotsPerScanline)
	test.ExpectEquality(t, p.Scanline(), 1)
	test.ExpectEquality(t, p.Dot(), 21)
}

func TestCtrl(t *testing.T) {
	p := newPPU(t, cartridge.Horizontal)
	test.ExpectEquality(t, p.Nametable(), 0x2000)
	test.ExpectEquality(t, p.SpriteHeight(), 8)

	p.Write(ppu.CTRL, 0x3a)
	test.ExpectEquality(t, p.Nametable(), 0x2800)
	test.ExpectEquality(t, p.SpriteHeight(), 16)
	bg, spr := p.PatternTables()
	test.ExpectEquality(t, bg, 0x1000)
	test.ExpectEquality(t, spr, 0x1000)
}
