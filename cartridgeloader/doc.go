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

// Package cartridgeloader is used to load the data that is to be attached to
// the emulated console.
//
// The Load() function handles loading of data from different sources.
// Currently local files and data over HTTP are supported. A SHA1 hash of the
// data is recorded and, if the Hash field was set before loading, verified.
//
//	cl := cartridgeloader.NewLoader("roms/nestest.nes")
//	cart, err := cl.Cartridge()
//
// The data is expected to be in the iNES format. ParseHeader() decodes the 16
// byte header and Header.Cartridge() creates the cartridge. NES 2.0 files are
// rejected. Mapper numbers other than zero are accepted but only the mapper
// zero address decoding is performed.
//
// All errors are curated errors and are recoverable. Callers should check for
// them before creating a console.
package cartridgeloader
