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

package disassembly

import (
	"fmt"

	"github.com/famicore/famicore/hardware/cpu"
)

// PPUPosition is the current position of the PPU beam. Implemented by the
// ppu.PPU type.
type PPUPosition interface {
	Scanline() int
	Dot() int
}

// Trace returns a single line describing the instruction at the PC and the
// state of the CPU before the instruction is executed. The format is the same
// as the nestest log:
//
//	C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:7
//
// Trace has no side effects. A nil PPUPosition shows the PPU position as
// zero.
func Trace(mc *cpu.CPU, pos PPUPosition) string {
	e := Instruction(mc, mc.PC.Address(), Registers{X: mc.X.Value(), Y: mc.Y.Value()})

	var scanline, dot int
	if pos != nil {
		scanline = pos.Scanline()
		dot = pos.Dot()
	}

	return fmt.Sprintf("%04X  %-8s %-32s A:%02X X:%02X Y:%02X P:%02X SP:%02X PPU:%3d,%3d CYC:%d",
		e.Address, e.Bytecode(), e.Assembly(),
		mc.A.Value(), mc.X.Value(), mc.Y.Value(), mc.Status.Value(), mc.SP.Value(),
		scanline, dot, mc.Cycles)
}
