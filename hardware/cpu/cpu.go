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

package cpu

import (
	"fmt"

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/hardware/cpu/execution"
	"github.com/famicore/famicore/hardware/cpu/registers"
	"github.com/famicore/famicore/hardware/memory/cpubus"
)

// Values of the stack pointer and status register after reset.
const (
	ResetSP     = uint8(0xfd)
	ResetStatus = uint8(0x24)
)

// ResetCycles is the number of cycles consumed by the reset sequence.
const ResetCycles = 7

// UnimplementedInstruction is the error pattern used when an opcode has a
// definition but the CPU has no implementation for the operator.
const UnimplementedInstruction = "cpu: unimplemented instruction (%#02x) at (%#04x)"

// LoadNotSupported is the error pattern used when the memory does not
// implement the cpubus.ProgramLoader interface.
const LoadNotSupported = "cpu: memory does not support program loading"

// CPU implements the 2A03 as found in the NES. The 2A03 is a 6502 without the
// decimal mode. Register logic is implemented by the types in the registers
// sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.Status

	// some operations only need an accumulator
	acc8 registers.Register

	mem cpubus.Memory

	// the number of cycles consumed since the last reset
	Cycles uint64

	// last result. the Final field is false until the instruction has
	// completed successfully
	LastResult execution.Result

	// HaltOnBRK sets whether the BRK instruction stops the execution loop
	// rather than performing the hardware interrupt sequence. test programs
	// end with BRK and so the default value is true
	HaltOnBRK bool

	// the cpu has encounted a KIL instruction. requires a Reset()
	Killed bool

	// the interrupt currently being serviced. nil if no interrupt is pending
	interrupt *Interrupt

	// unstable opcodes are logged on first use
	unstableLogged map[uint8]bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// program counter is zero and the remaining registers are in their reset
// state. The reset vector is not read. Use Reset() for that.
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		mem:            mem,
		PC:             registers.NewProgramCounter(0),
		A:              registers.NewRegister(0, "A"),
		X:              registers.NewRegister(0, "X"),
		Y:              registers.NewRegister(0, "Y"),
		SP:             registers.NewStackPointer(ResetSP),
		Status:         registers.NewStatus(ResetStatus),
		acc8:           registers.NewRegister(0, "accumulator"),
		HaltOnBRK:      true,
		unstableLogged: make(map[uint8]bool),
	}
}

// Snapshot creates a copy of the CPU in its current state. The copy shares
// the memory of the original.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers and loads the PC with the reset vector.
// The cycle counter starts again with the cost of the reset sequence.
func (mc *CPU) Reset() error {
	mc.LastResult.Reset()
	mc.Killed = false
	mc.interrupt = nil

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(ResetSP)
	mc.Status.Load(ResetStatus)

	mc.Cycles = 0
	mc.consume(ResetCycles)

	return mc.LoadPCIndirect(cpubus.Reset)
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) error {
	address, err := mc.Read16(indirectAddress)
	if err != nil {
		return err
	}
	mc.PC.Load(address)
	return nil
}

// consume adds cycles to the cycle counter and advances the rest of the
// console by the same amount
func (mc *CPU) consume(cycles int) {
	mc.Cycles += uint64(cycles)
	mc.mem.Tick(cycles)
}

// Load installs the program in memory and points the reset vector at it. The
// memory must implement the cpubus.ProgramLoader interface. The CPU is not
// reset.
func (mc *CPU) Load(program []uint8) error {
	loader, ok := mc.mem.(cpubus.ProgramLoader)
	if !ok {
		return curated.Errorf(LoadNotSupported)
	}
	return loader.LoadProgram(program)
}

// LoadAndRun installs the program, resets the CPU and runs until the program
// stops.
func (mc *CPU) LoadAndRun(program []uint8) error {
	if err := mc.Load(program); err != nil {
		return err
	}
	if err := mc.Reset(); err != nil {
		return err
	}
	return mc.Run()
}

// Read returns the value at the address from the memory attached to the CPU.
func (mc *CPU) Read(address uint16) (uint8, error) {
	return mc.mem.Read(address)
}

// Write the value to the address of the memory attached to the CPU.
func (mc *CPU) Write(address uint16, data uint8) error {
	return mc.mem.Write(address, data)
}

// Read16 returns the little endian 16-bit value at the address.
func (mc *CPU) Read16(address uint16) (uint16, error) {
	lo, err := mc.mem.Read(address)
	if err != nil {
		return 0, err
	}
	hi, err := mc.mem.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// Write16 writes the 16-bit value to the address in little endian order.
func (mc *CPU) Write16(address uint16, data uint16) error {
	if err := mc.mem.Write(address, uint8(data)); err != nil {
		return err
	}
	return mc.mem.Write(address+1, uint8(data>>8))
}

// Peek returns the value at the address without side effects, if the memory
// supports it. Otherwise the value is read normally.
func (mc *CPU) Peek(address uint16) (uint8, error) {
	if p, ok := mc.mem.(cpubus.Peeker); ok {
		return p.Peek(address)
	}
	return mc.mem.Read(address)
}
