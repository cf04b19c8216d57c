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

package cartridgeloader

import (
	"bytes"
	"fmt"

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/hardware/memory/cartridge"
	"github.com/famicore/famicore/logger"
)

// Error patterns for iNES parsing.
const (
	NotINES            = "cartridgeloader: not an iNES file"
	UnsupportedVersion = "cartridgeloader: unsupported iNES version (NES 2.0)"
	Truncated          = "cartridgeloader: truncated data (%d bytes, expected %d)"
)

// the first four bytes of every iNES file
var magic = []byte{'N', 'E', 'S', 0x1a}

// Sizes of the parts of an iNES file that are not bank data.
const (
	HeaderSize  = 16
	TrainerSize = 512
)

// flag bits in byte 6 of the header
const (
	flag6Vertical   = 0x01
	flag6Battery    = 0x02
	flag6Trainer    = 0x04
	flag6FourScreen = 0x08
)

// bits 2 and 3 of byte 7 identify the NES 2.0 format
const flag7Version = 0x0c

// Header is the decoded iNES header.
type Header struct {
	PRGBanks  int
	CHRBanks  int
	Mapper    uint8
	Mirroring cartridge.Mirroring
	Trainer   bool
	Battery   bool
}

func (hdr Header) String() string {
	return fmt.Sprintf("mapper %d, %d PRG x 16k, %d CHR x 8k, %s mirroring, trainer=%v battery=%v",
		hdr.Mapper, hdr.PRGBanks, hdr.CHRBanks, hdr.Mirroring, hdr.Trainer, hdr.Battery)
}

// ParseHeader decodes the iNES header at the start of the data.
func ParseHeader(data []byte) (Header, error) {
	var hdr Header

	if len(data) < HeaderSize || !bytes.Equal(data[:len(magic)], magic) {
		return hdr, curated.Errorf(NotINES)
	}

	flag6 := data[6]
	flag7 := data[7]

	if flag7&flag7Version != 0 {
		return hdr, curated.Errorf(UnsupportedVersion)
	}

	hdr.PRGBanks = int(data[4])
	hdr.CHRBanks = int(data[5])
	hdr.Mapper = (flag6 >> 4) | (flag7 & 0xf0)
	hdr.Trainer = flag6&flag6Trainer == flag6Trainer
	hdr.Battery = flag6&flag6Battery == flag6Battery

	// the vertical bit takes priority over the four-screen bit
	switch {
	case flag6&flag6Vertical == flag6Vertical:
		hdr.Mirroring = cartridge.Vertical
	case flag6&flag6FourScreen == flag6FourScreen:
		hdr.Mirroring = cartridge.FourScreen
	default:
		hdr.Mirroring = cartridge.Horizontal
	}

	return hdr, nil
}

// Size returns the number of bytes the iNES file should contain, including
// the header.
func (hdr Header) Size() int {
	n := HeaderSize + hdr.PRGBanks*cartridge.PRGBankSize + hdr.CHRBanks*cartridge.CHRBankSize
	if hdr.Trainer {
		n += TrainerSize
	}
	return n
}

// Cartridge creates a new cartridge from the data described by the header.
// The trainer, if present, is skipped.
func (hdr Header) Cartridge(data []byte) (*cartridge.Cartridge, error) {
	if len(data) < hdr.Size() {
		return nil, curated.Errorf(Truncated, len(data), hdr.Size())
	}

	prgStart := HeaderSize
	if hdr.Trainer {
		prgStart += TrainerSize
	}
	chrStart := prgStart + hdr.PRGBanks*cartridge.PRGBankSize
	chrEnd := chrStart + hdr.CHRBanks*cartridge.CHRBankSize

	if hdr.Mapper != 0 {
		logger.Logf(logger.Allow, "cartridgeloader", "mapper %d is not supported. using mapper 0 address decoding", hdr.Mapper)
	}

	// the slices are copied so that the cartridge does not share memory with
	// the loaded data
	prg := bytes.Clone(data[prgStart:chrStart])
	chr := bytes.Clone(data[chrStart:chrEnd])

	cart, err := cartridge.NewCartridge(prg, chr, hdr.Mirroring)
	if err != nil {
		return nil, curated.Errorf(LoaderError, err)
	}
	cart.Mapper = hdr.Mapper

	return cart, nil
}
