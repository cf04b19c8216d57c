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

package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. The NES bus implements this interface and maps the read/write address
// to the correct memory area, meaning that the CPU need not care which part of
// memory it is accessing.
//
// Tick() is called by the CPU after every instruction and every interrupt with
// the number of CPU cycles consumed. The bus uses this to keep the peripherals
// in step with the CPU.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
	Tick(cycles int)
}

// Peeker is implemented by memory that can be read without side effects. Used
// for tracing and disassembly where reading a peripheral register must not
// change the state of that peripheral.
type Peeker interface {
	Peek(address uint16) (uint8, error)
}

// ProgramLoader is implemented by memory that can accept a raw program image.
// The program is installed at the start of program memory and the reset vector
// is pointed at it.
type ProgramLoader interface {
	LoadProgram(program []uint8) error
}

// AddressError is the error pattern used when a read or write cannot be
// completed for the address. The first value is "read" or "write" and the
// second is the address.
const AddressError = "cpubus: cannot %s address %#04x"
