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
	"github.com/famicore/famicore/hardware/cpu/registers"
	"github.com/famicore/famicore/hardware/memory/cpubus"
	"github.com/famicore/famicore/logger"
)

// Interrupt describes one of the hardware interrupts.
type Interrupt struct {
	Name string

	// the address of the vector containing the address of the handler
	Vector uint16

	// cycles charged for delivering the interrupt
	Cycles int
}

func (i Interrupt) String() string {
	return i.Name
}

// List of interrupts.
var (
	NMI = Interrupt{Name: "NMI", Vector: cpubus.NMI, Cycles: 2}
	IRQ = Interrupt{Name: "IRQ", Vector: cpubus.IRQ, Cycles: 2}
)

// Interrupt delivers the interrupt to the CPU. The PC and status register are
// pushed to the stack and the PC is loaded from the interrupt vector.
//
// The IRQ is ignored if the InterruptDisable flag is set, in which case the
// function returns false.
func (mc *CPU) Interrupt(i Interrupt) (bool, error) {
	if i.Vector == IRQ.Vector && mc.Status.IsSet(registers.InterruptDisable) {
		return false, nil
	}

	if err := mc.Push16(mc.PC.Address()); err != nil {
		return false, err
	}

	if err := mc.Push(mc.Status.Value() | uint8(registers.Break|registers.Unused)); err != nil {
		return false, err
	}

	mc.Status.Set(registers.InterruptDisable)
	mc.consume(i.Cycles)

	if err := mc.LoadPCIndirect(i.Vector); err != nil {
		return false, err
	}

	mc.interrupt = &i
	logger.Logf(logger.Allow, "cpu", "%s serviced at cycle %d", i.Name, mc.Cycles)

	return true, nil
}

// ReturnFromInterrupt acknowledges that the current interrupt has been dealt
// with. It does not restore the PC or the status register, that is the job of
// the RTI instruction.
func (mc *CPU) ReturnFromInterrupt() {
	mc.interrupt = nil
}

// PendingInterrupt returns the interrupt that has been delivered but not yet
// acknowledged.
func (mc *CPU) PendingInterrupt() (Interrupt, bool) {
	if mc.interrupt == nil {
		return Interrupt{}, false
	}
	return *mc.interrupt, true
}
