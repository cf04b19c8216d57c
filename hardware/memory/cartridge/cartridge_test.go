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

package cartridge_test

import (
	"testing"

	"github.com/famicore/famicore/hardware/memory/cartridge"
	"github.com/famicore/famicore/test"
)

func TestPRGMirroring(t *testing.T) {
	prg := make([]uint8, cartridge.PRGBankSize)
	prg[0x0010] = 0xaa
	prg[0x3ffc] = 0x34

	cart, err := cartridge.NewCartridge(prg, nil, cartridge.Vertical)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, cart.Read(0x0010), 0xaa)
	test.ExpectEquality(t, cart.Read(0x4010), 0xaa)
	test.ExpectEquality(t, cart.Read(0x7ffc), 0x34)

	// no mirroring with two banks
	prg = make([]uint8, cartridge.PRGBankSize*2)
	prg[0x0010] = 0xaa
	cart, err = cartridge.NewCartridge(prg, nil, cartridge.Vertical)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.Read(0x0010), 0xaa)
	test.ExpectEquality(t, cart.Read(0x4010), 0x00)
}

func TestBadPRG(t *testing.T) {
	_, err := cartridge.NewCartridge(make([]uint8, 100), nil, cartridge.Horizontal)
	test.ExpectFailure(t, err)
	_, err = cartridge.NewCartridge(nil, nil, cartridge.Horizontal)
	test.ExpectFailure(t, err)
}

func TestCHR(t *testing.T) {
	// CHR ROM ignores writes
	chr := make([]uint8, cartridge.CHRBankSize)
	chr[0x0100] = 0x55
	cart, err := cartridge.NewCartridge(make([]uint8, cartridge.PRGBankSize), chr, cartridge.Horizontal)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, cart.HasCHRRAM())
	cart.WriteCHR(0x0100, 0x11)
	test.ExpectEquality(t, cart.ReadCHR(0x0100), 0x55)

	// CHR RAM accepts them
	cart = cartridge.NewBlank()
	test.ExpectSuccess(t, cart.HasCHRRAM())
	cart.WriteCHR(0x0100, 0x11)
	test.ExpectEquality(t, cart.ReadCHR(0x0100), 0x11)
}

func TestPatch(t *testing.T) {
	cart := cartridge.NewBlank()
	test.ExpectEquality(t, cart.PRGSize(), 0x8000)
	test.ExpectSuccess(t, cart.Patch(0x7ffc, 0x00))
	test.ExpectSuccess(t, cart.Patch(0x7ffd, 0x80))
	test.ExpectEquality(t, cart.Read(0x7ffd), 0x80)
	test.ExpectFailure(t, cart.Patch(0x8000, 0x00))
}
