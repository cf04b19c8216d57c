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

// Package memory implements the address bus of the NES as seen by the CPU.
//
//	                       ---- RAM (2KB, mirrored)
//	                      |
//	                      |---- PPU registers ---- PPU
//	                      |
//	    CPU ---- Bus ---- *---- joypad port ---- Joypad
//	                      |
//	                      |---- OAM DMA ---->-- PPU
//	                      |
//	                       -<-- Cartridge
//
// The asterisk indicates that addresses used by the CPU are first mapped to
// the primary address. The memorymap package contains more detail on this.
//
// The arrow pointing away from the Cartridge area indicates that the CPU can
// only read from the cartridge. Writing to the cartridge area is an error.
// Reads from unmapped areas return zero and writes to them are ignored.
//
// The Bus also keeps the PPU in step with the CPU. For every CPU cycle
// reported through the Tick() function the PPU is advanced three dots.
package memory
