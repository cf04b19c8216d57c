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

// Package cartridge implements the memory of an NES cartridge as seen by the
// CPU and the PPU.
//
// Only the fixed address decoding of mapper zero (NROM) is implemented. A
// cartridge with a single 16KB program bank is mirrored in the upper half of
// the cartridge area. Cartridges are created by the cartridgeloader package
// or with NewBlank() for installing raw programs.
package cartridge
