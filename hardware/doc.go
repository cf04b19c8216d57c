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

// Package hardware is the base package for the NES emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Console type is the root of the emulation and contains external
// references to all the NES sub-systems. From here, the emulation can either
// be started to run continuously (with optional callback to check for
// continuation); or it can be stepped one CPU instruction at a time.
//
// The PPU is advanced by the memory bus as a side effect of the CPU
// instruction. The console checks for a non-maskable interrupt request from
// the PPU before every instruction and delivers it to the CPU.
package hardware
