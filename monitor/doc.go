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

// Package monitor is an interactive, single-key monitor for the console. It
// is the MONITOR mode of the famicore command.
//
// When the input is a terminal it is put into raw mode for the duration of
// Run() so that keys take effect without pressing return. Otherwise, keys are
// read as they arrive from the input. The following keys are recognised:
//
//	s, space    step one instruction
//	u           undo the last step
//	r           run until the CPU stops or a key is pressed
//	n           deliver an NMI
//	i           deliver an IRQ
//	d           disassemble from the program counter
//	m           write the CPU state as a graphviz file (see memviz)
//	l           show the tail of the log
//	h, ?        show help
//	q, ctrl-c   quit
//
// A trace line for the next instruction is printed after every key that
// changes the state of the console.
package monitor
