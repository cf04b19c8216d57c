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
	"github.com/famicore/famicore/hardware/cpu"
)

// Step the emulator state one CPU instruction. If the PPU has requested an
// NMI then the interrupt is delivered before the instruction is executed.
//
// The callback is called after any interrupt has been delivered and before
// the instruction is executed. It can be nil.
//
// Returns false if the CPU has stopped. See cpu.Step() for details.
func (con *Console) Step(callback func(*cpu.CPU) error) (bool, error) {
	if err := con.pollNMI(); err != nil {
		return false, err
	}

	if callback != nil {
		if err := callback(con.CPU); err != nil {
			return false, err
		}
	}

	return con.CPU.Step()
}

// the NMI condition is observed through the bus. the PPU state is the state
// after the last instruction's tick
func (con *Console) pollNMI() error {
	if !con.Mem.PollNMI() {
		return nil
	}
	ok, err := con.CPU.Interrupt(cpu.NMI)
	if err != nil {
		return err
	}
	if ok {
		con.NMICount++
	}
	return nil
}
