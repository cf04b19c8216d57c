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

// Package performance contains helper functions relating to performance.
//
// Check() runs the emulation for a fixed duration and reports the number of
// frames and instructions per second. It will optionally generate profiling
// information.
//
// RunProfiler() can be used to generate the various profile types for any
// function. On its own it does not limit the amount of time the function runs
// for.
//
// CalcFPS() calculates frames-per-second in aggregate along with an accuracy
// value as compared to an NTSC console.
package performance
