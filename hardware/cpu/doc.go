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

// Package cpu emulates the 2A03 microprocessor found in the NES. The 2A03 is a
// 6502 without the binary coded decimal mode. Like all 8-bit processors of the
// era, the 2A03 executes instructions according to the single byte value read
// from an address pointed to by the program counter. This single byte is the
// opcode and is looked up in the instruction table. The instruction definition
// for that opcode is then used to move execution of the program forward.
//
// The CPU type requires an implementation of the cpubus.Memory interface as
// the sole argument. The memory package provides the NES implementation.
//
// The bread-and-butter of the CPU type is the Step() function. It executes
// exactly one instruction, adds the cost of the instruction to the Cycles
// field and then ticks the memory by the same number of cycles.
//
//	mc := cpu.NewCPU(mem)
//	err := mc.Reset()
//
//	for {
//		cont, err := mc.Step()
//		if err != nil || !cont {
//			break
//		}
//	}
//
// The RunWithCallback() function is a convenient form of the above loop. The
// callback is called before every instruction and is useful for tracing.
//
// The LastResult field can be probed for information about the last
// instruction executed. See the execution package for more information.
//
// Hardware interrupts are delivered with the Interrupt() function. The CPU
// does not poll for interrupts itself. The NMI is raised by the PPU and it is
// the job of the console to check for it before each instruction.
//
// All 256 opcodes are decoded, including the undocumented opcodes. The unstable
// undocumented opcodes are emulated with a fixed value where the real hardware
// is unpredictable. The KIL opcodes halt the CPU until the next reset.
package cpu
