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

// Package ppu implements the register block and clock of the NES picture
// processing unit.
//
// The CPU sees eight registers, mirrored over the range 0x2000 to 0x3fff. The
// memory bus should map the address to the primary mirror before calling
// Read(), Write() or Peek().
//
// The PPU clock is advanced with Tick(). The PPU runs three dots for every CPU
// cycle. A non-maskable interrupt is requested at the start of the vertical
// blank if the CTRL register allows it. The request is collected with
// PollNMI().
//
// Rendering is not performed. Pattern, nametable, palette and sprite memory
// is maintained so that it can be inspected.
package ppu
