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

package monitor

import (
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/famicore/famicore/hardware/cpu"
	"github.com/famicore/famicore/hardware/cpu/execution"
	"github.com/famicore/famicore/hardware/cpu/registers"
)

// the parts of the CPU that are interesting to look at. the memory is
// excluded because the graph would be unreadable
type cpuView struct {
	PC     *registers.ProgramCounter
	A      *registers.Register
	X      *registers.Register
	Y      *registers.Register
	SP     *registers.StackPointer
	Status *registers.Status
	Cycles uint64
	Result *execution.Result
}

// WriteMemviz writes the state of the CPU registers and the result of the
// last instruction to w in the graphviz dot format.
func WriteMemviz(w io.Writer, mc *cpu.CPU) {
	memviz.Map(w, &cpuView{
		PC:     &mc.PC,
		A:      &mc.A,
		X:      &mc.X,
		Y:      &mc.Y,
		SP:     &mc.SP,
		Status: &mc.Status,
		Cycles: mc.Cycles,
		Result: &mc.LastResult,
	})
}
