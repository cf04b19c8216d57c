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

// Package cpubus defines how the CPU sees memory. The Memory interface is all
// the CPU needs to execute instructions. Optional interfaces, Peeker and
// ProgramLoader, are asserted for when a memory implementation is required to
// support debugging or program loading.
//
// The package also defines the addresses of the three 2A03 vectors.
package cpubus
