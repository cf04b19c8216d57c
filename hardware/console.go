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

package hardware

import (
	"fmt"

	"github.com/famicore/famicore/hardware/controller"
	"github.com/famicore/famicore/hardware/cpu"
	"github.com/famicore/famicore/hardware/memory"
	"github.com/famicore/famicore/hardware/memory/cartridge"
	"github.com/famicore/famicore/hardware/ppu"
	"github.com/famicore/famicore/logger"
)

// Console is the NES. It owns the CPU and the memory bus. The PPU and the
// joypad are owned by the bus but are referenced here for convenience.
type Console struct {
	CPU *cpu.CPU
	Mem *memory.Bus

	PPU    *ppu.PPU
	Joypad *controller.Joypad

	// the number of NMIs delivered since the last reset
	NMICount int
}

// NewConsole creates a new NES and everything associated with the hardware.
// The CPU is reset and is ready to run the cartridge. A nil cartridge is
// replaced with a blank cartridge.
func NewConsole(cart *cartridge.Cartridge) (*Console, error) {
	if cart == nil {
		cart = cartridge.NewBlank()
	}

	con := &Console{}
	con.Mem = memory.NewBus(cart)
	con.CPU = cpu.NewCPU(con.Mem)
	con.PPU = con.Mem.PPU
	con.Joypad = con.Mem.Joypad

	if err := con.Reset(); err != nil {
		return nil, err
	}

	return con, nil
}

func (con *Console) String() string {
	return fmt.Sprintf("%s\n%s", con.CPU, con.Mem)
}

// AttachCartridge replaces the cartridge and resets the console.
func (con *Console) AttachCartridge(cart *cartridge.Cartridge) error {
	if cart == nil {
		cart = cartridge.NewBlank()
	}
	con.Mem.AttachCartridge(cart)
	logger.Logf(logger.Allow, "console", "attached %s", cart)
	return con.Reset()
}

// LoadProgram installs a raw program at the start of cartridge space, with the
// reset vector pointing to it, and resets the console. The RAM is cleared.
func (con *Console) LoadProgram(program []uint8) error {
	if err := con.CPU.Load(program); err != nil {
		return err
	}
	return con.Reset()
}

// Reset emulates the reset button. The PPU is reset and the CPU is reset,
// which loads the PC from the reset vector.
func (con *Console) Reset() error {
	con.PPU.Reset()
	con.NMICount = 0
	return con.CPU.Reset()
}
