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

// Package clocks defines the constant values that define the speed of the main
// clock in the NES console.
//
// The PPU runs at exactly three times the speed of the CPU in the NTSC
// console.
package clocks

// Clock speed of the CPU in MHz.
const (
	NTSC = 1.789773
	PAL  = 1.662607
)

// PPUDotsPerCycle is the number of PPU dots that elapse for every CPU cycle.
const PPUDotsPerCycle = 3

// PPU clock speed in MHz.
const (
	NTSC_PPU = NTSC * PPUDotsPerCycle
)
