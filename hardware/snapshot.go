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
	"github.com/famicore/famicore/hardware/memory"
	"github.com/famicore/famicore/hardware/ppu"
)

// State stores the console sub-systems. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
//
// Note in particular that the cartridge is not part of the snapshot process.
// The cartridge PRG cannot be changed by the CPU.
type State struct {
	CPU *cpu.CPU
	RAM memory.RAM
	PPU ppu.PPU
}

// Snapshot the state of the console sub-systems.
func (con *Console) Snapshot() *State {
	return &State{
		CPU: con.CPU.Snapshot(),
		RAM: *con.Mem.RAM,
		PPU: *con.PPU,
	}
}

// Plumb a previously snapshotted state into the console. The state can be
// plumbed more than once.
func (con *Console) Plumb(state *State) {
	if state == nil {
		panic("console: cannot plumb in a nil state")
	}

	// take another snapshot of the CPU before plumbing. we don't want the
	// machine to change what we have stored in the state
	con.CPU = state.CPU.Snapshot()
	con.CPU.Plumb(con.Mem)

	*con.Mem.RAM = state.RAM
	*con.PPU = state.PPU
}
