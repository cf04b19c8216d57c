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

// Package disassembly converts the bytes in memory to a human readable form.
//
// The Instruction() function disassembles a single instruction and Linear()
// disassembles a run of instructions. Neither function follows the flow of the
// program.
//
// The Trace() function produces a single line in the format of the nestest
// log. The line describes the next instruction and the state of the CPU before
// the instruction is executed. Comparing trace lines against a known good log
// is the main way of verifying the CPU emulation.
//
// Memory is accessed with the Peek() function of the cpubus.Peeker interface.
// Disassembly never changes the state of the emulation.
package disassembly
