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

// The PPU registers as seen by the CPU. Addresses should be mapped to their
// primary mirror before being used with the PPU.
const (
	CTRL    = uint16(0x2000)
	MASK    = uint16(0x2001)
	STATUS  = uint16(0x2002)
	OAMADDR = uint16(0x2003)
	OAMDATA = uint16(0x2004)
	SCROLL  = uint16(0x2005)
	ADDR    = uint16(0x2006)
	DATA    = uint16(0x2007)
)

// bits in the CTRL register
const (
	ctrlNametable     = 0x03
	ctrlIncrement     = 0x04
	ctrlSpritePattern = 0x08
	ctrlBackground    = 0x10
	ctrlSpriteSize    = 0x20
	ctrlMasterSlave   = 0x40
	ctrlNMIEnable     = 0x80
)

// bits in the STATUS register. the lower five bits are unused
const (
	statusOverflow  = 0x20
	statusSprite0   = 0x40
	statusVBlank    = 0x80
	statusBitsInUse = 0xe0
)

var registerNames = [8]string{"CTRL", "MASK", "STATUS", "OAMADDR", "OAMDATA", "SCROLL", "ADDR", "DATA"}

// RegisterName returns the name of the PPU register at the (mapped) address.
func RegisterName(address uint16) string {
	return registerNames[address&0x0007]
}
