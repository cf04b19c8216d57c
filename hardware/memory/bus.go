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

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/hardware/clocks"
	"github.com/famicore/famicore/hardware/controller"
	"github.com/famicore/famicore/hardware/memory/cartridge"
	"github.com/famicore/famicore/hardware/memory/cpubus"
	"github.com/famicore/famicore/hardware/memory/memorymap"
	"github.com/famicore/famicore/hardware/ppu"
	"github.com/famicore/famicore/logger"
)

// ROMWriteError is returned when the CPU writes to the cartridge area. The
// values are the address and the data being written.
const ROMWriteError = "memory: write to ROM (address %#04x, data %#02x)"

// ProgramTooLarge is returned by LoadProgram() if the program would overwrite
// the vectors at the top of memory.
const ProgramTooLarge = "memory: program too large (%d bytes)"

// Bus is the address bus of the NES as seen from the CPU. It owns the
// internal RAM and forwards accesses to the cartridge and the peripherals.
type Bus struct {
	RAM    *RAM
	Cart   *cartridge.Cartridge
	PPU    *ppu.PPU
	Joypad *controller.Joypad

	// unmapped addresses that have been written to. each address is only
	// logged once
	unmapped map[uint16]bool
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus(cart *cartridge.Cartridge) *Bus {
	return &Bus{
		RAM:      newRAM(),
		Cart:     cart,
		PPU:      ppu.NewPPU(cart),
		Joypad:   controller.NewJoypad(),
		unmapped: make(map[uint16]bool),
	}
}

func (bus *Bus) String() string {
	return fmt.Sprintf("%s\n%s\n%s", bus.Cart, bus.PPU, bus.Joypad)
}

// AttachCartridge replaces the cartridge. The RAM and the PPU are reset.
func (bus *Bus) AttachCartridge(cart *cartridge.Cartridge) {
	bus.Cart = cart
	bus.PPU.AttachCartridge(cart)
	bus.RAM.Reset()
	clear(bus.unmapped)
}

// Read implements the cpubus.Memory interface.
func (bus *Bus) Read(address uint16) (uint8, error) {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return bus.RAM.Peek(ma), nil
	case memorymap.Controller:
		return bus.Joypad.Read(), nil
	case memorymap.PPU:
		return bus.PPU.Read(ma), nil
	case memorymap.Cartridge:
		return bus.Cart.Read(ma), nil
	}

	return 0, nil
}

// Write implements the cpubus.Memory interface.
func (bus *Bus) Write(address uint16, data uint8) error {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		bus.RAM.Poke(ma, data)
	case memorymap.Controller:
		bus.Joypad.Write(data)
	case memorymap.PPU:
		bus.PPU.Write(ma, data)
	case memorymap.OAMDMA:
		return bus.dma(data)
	case memorymap.Cartridge:
		return curated.Errorf(ROMWriteError, address, data)
	default:
		if !bus.unmapped[address] {
			bus.unmapped[address] = true
			logger.Logf(logger.Allow, "memory", "write to unmapped address %#04x ignored", address)
		}
	}

	return nil
}

// dma copies a page of memory to the PPU's object memory. the page is
// specified by the high byte of the address
func (bus *Bus) dma(page uint8) error {
	origin := uint16(page) << 8
	for i := uint16(0); i <= 0xff; i++ {
		v, err := bus.Read(origin | i)
		if err != nil {
			return err
		}
		bus.PPU.Write(ppu.OAMDATA, v)
	}
	return nil
}

// Read16 reads a 16-bit little endian value from memory. The address of the
// high byte wraps at the top of memory.
func (bus *Bus) Read16(address uint16) (uint16, error) {
	lo, err := bus.Read(address)
	if err != nil {
		return 0, err
	}
	hi, err := bus.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// Write16 writes a 16-bit value to memory in little endian order. The low
// byte is written first.
func (bus *Bus) Write16(address uint16, data uint16) error {
	if err := bus.Write(address, uint8(data)); err != nil {
		return err
	}
	return bus.Write(address+1, uint8(data>>8))
}

// Tick implements the cpubus.Memory interface. The PPU is advanced by three
// dots for every CPU cycle.
func (bus *Bus) Tick(cycles int) {
	bus.PPU.Tick(cycles * clocks.PPUDotsPerCycle)
}

// PollNMI returns true if the PPU has requested a non-maskable interrupt.
func (bus *Bus) PollNMI() bool {
	return bus.PPU.PollNMI()
}

// Peek implements the cpubus.Peeker interface. Peripheral registers are read
// without side effects.
func (bus *Bus) Peek(address uint16) (uint8, error) {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return bus.RAM.Peek(ma), nil
	case memorymap.Controller:
		return bus.Joypad.Peek(), nil
	case memorymap.PPU:
		return bus.PPU.Peek(ma), nil
	case memorymap.Cartridge:
		return bus.Cart.Read(ma), nil
	}

	return 0, nil
}

// Poke changes the value at the address. Unlike Write(), cartridge memory can
// be changed and peripheral registers are not affected.
func (bus *Bus) Poke(address uint16, value uint8) error {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		bus.RAM.Poke(ma, value)
	case memorymap.Cartridge:
		return bus.Cart.Patch(ma, value)
	default:
		return curated.Errorf(cpubus.AddressError, "poke", address)
	}

	return nil
}

// LoadProgram implements the cpubus.ProgramLoader interface. A blank
// cartridge is attached with the program at the start of the cartridge area
// and the reset vector pointing to it.
func (bus *Bus) LoadProgram(program []uint8) error {
	if len(program) > int(cpubus.NMI-memorymap.OriginCart) {
		return curated.Errorf(ProgramTooLarge, len(program))
	}

	cart := cartridge.NewBlank()
	for i, v := range program {
		if err := cart.Patch(uint16(i), v); err != nil {
			return err
		}
	}

	if err := cart.Patch(cpubus.Reset-memorymap.OriginCart, uint8(memorymap.OriginCart&0xff)); err != nil {
		return err
	}
	if err := cart.Patch(cpubus.Reset-memorymap.OriginCart+1, uint8(memorymap.OriginCart>>8)); err != nil {
		return err
	}

	bus.AttachCartridge(cart)

	return nil
}
