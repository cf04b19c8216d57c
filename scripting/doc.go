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

// Package scripting runs Lua scripts alongside the emulation. A script defines
// a global step() function which is called before every CPU instruction. The
// script can inspect the CPU registers, read and write memory and press
// buttons on the joypad.
//
// The following globals are available to the script:
//
//	cpu                 table of register values: a, x, y, p, sp, pc, cycles
//	peek(addr)          returns the value at the address without side effects
//	poke(addr, value)   changes the value at the address
//	press(name)         presses the named joypad button
//	release(name)       releases the named joypad button
//	log(text)           adds an entry to the central log
//
// The cpu table is refreshed before every call to step(). Changing the values
// in the table has no effect on the emulation.
//
// Returning false from step() stops the emulation. Any other value, including
// no value, allows the emulation to continue.
//
// Example script that presses Start once a frame has been drawn:
//
//	function step()
//		if peek(0x2002) >= 128 then
//			press("start")
//		end
//		return true
//	end
package scripting
