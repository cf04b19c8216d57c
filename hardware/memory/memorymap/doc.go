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

// Package memorymap facilitates the translation of addresses to primary
// address equivalents.
//
// The 2KB of internal RAM and the eight PPU registers are mirrored many times
// over the address space. The MapAddress() function should be used to produce
// a "mapped address" whenever an address is being used from the viewport of
// the CPU.
//
//	ma, area := memorymap.MapAddress(address)
//
// The Area value indicates which part of the console should service the
// access.
package memorymap
