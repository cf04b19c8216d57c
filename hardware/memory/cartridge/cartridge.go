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

package cartridge

import (
	"fmt"

	"github.com/famicore/famicore/curated"
)

// Sizes of the program and character banks.
const (
	PRGBankSize = 0x4000
	CHRBankSize = 0x2000
)

// the maximum amount of PRG data that can be addressed by the CPU without a
// bank switching mapper
const maxPRG = 2 * PRGBankSize

// Cartridge contains the program (PRG) and character (CHR) data of a game.
// Only the address decoding of mapper zero is supported. Cartridges with other
// mapper numbers are accepted but bank switching is not performed.
type Cartridge struct {
	// the name of the cartridge. usually the filename
	Name string

	// SHA1 hash of the data the cartridge was created from
	Hash string

	Mapper    uint8
	Mirroring Mirroring

	prg []uint8
	chr []uint8

	// if the cartridge was created without CHR data then the character memory
	// is writable
	chrRAM bool
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The prg argument must be one or two banks in length. If chr is empty
// the cartridge is given a single bank of CHR RAM.
func NewCartridge(prg []uint8, chr []uint8, mirroring Mirroring) (*Cartridge, error) {
	if len(prg) == 0 || len(prg)%PRGBankSize != 0 {
		return nil, curated.Errorf("cartridge: PRG data must be a multiple of %d bytes (%d bytes)", PRGBankSize, len(prg))
	}

	cart := &Cartridge{
		Mirroring: mirroring,
		prg:       prg,
		chr:       chr,
	}

	if len(cart.chr) == 0 {
		cart.chr = make([]uint8, CHRBankSize)
		cart.chrRAM = true
	}

	return cart, nil
}

// NewBlank returns a cartridge with two empty PRG banks and CHR RAM. Used
// when installing a raw program rather than a cartridge dump.
func NewBlank() *Cartridge {
	cart, _ := NewCartridge(make([]uint8, maxPRG), nil, Horizontal)
	cart.Name = "blank"
	return cart
}

func (cart Cartridge) String() string {
	return fmt.Sprintf("%s [mapper %d, %dk PRG, %dk CHR, %s]", cart.Name, cart.Mapper,
		len(cart.prg)/1024, len(cart.chr)/1024, cart.Mirroring)
}

// PRGSize returns the number of bytes of program data.
func (cart Cartridge) PRGSize() int {
	return len(cart.prg)
}

// CHRSize returns the number of bytes of character data.
func (cart Cartridge) CHRSize() int {
	return len(cart.chr)
}

// HasCHRRAM returns true if the character data is writable.
func (cart Cartridge) HasCHRRAM() bool {
	return cart.chrRAM
}

// Read returns the PRG byte at offset. The offset is relative to the start of
// the cartridge area. If the cartridge has a single bank then that bank is
// mirrored into the upper half of the cartridge area.
func (cart *Cartridge) Read(offset uint16) uint8 {
	o := int(offset)
	if len(cart.prg) == PRGBankSize {
		o %= PRGBankSize
	}
	if o >= len(cart.prg) {
		return 0
	}
	return cart.prg[o]
}

// Patch changes the PRG byte at offset. This is not a CPU write. Offsets
// are mirrored in the same way as for Read().
func (cart *Cartridge) Patch(offset uint16, data uint8) error {
	o := int(offset)
	if len(cart.prg) == PRGBankSize {
		o %= PRGBankSize
	}
	if o >= len(cart.prg) {
		return curated.Errorf("cartridge: patch offset too high (%#04x)", offset)
	}
	cart.prg[o] = data
	return nil
}

// ReadCHR returns the character byte at address. The address is in the range
// 0x0000 to 0x1fff.
func (cart *Cartridge) ReadCHR(address uint16) uint8 {
	return cart.chr[int(address)%len(cart.chr)]
}

// WriteCHR changes the character byte at address. Writes are ignored unless
// the cartridge has CHR RAM.
func (cart *Cartridge) WriteCHR(address uint16, data uint8) {
	if !cart.chrRAM {
		return
	}
	cart.chr[int(address)%len(cart.chr)] = data
}
