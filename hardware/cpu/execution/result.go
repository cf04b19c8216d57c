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

package execution

import (
	"fmt"

	"github.com/famicore/famicore/hardware/cpu/instructions"
)

// Result records the state/result of the last instruction executed by the
// CPU.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a reference to the instruction definition
	Defn *instructions.Definition

	// the number of bytes read during instruction decode. if this value is
	// less than Defn.Bytes then the instruction has not yet been fully decoded
	ByteCount int

	// instruction data is the actual instruction data. so, for example, in the
	// case of a branch instruction, it is the offset value.
	InstructionData uint16

	// the actual number of cycles taken by the instruction. usually the same
	// as Defn.Cycles but in the case of PageFaults and branches, this value
	// may be different
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether a known buggy code path (in the emulated CPU) was triggered
	CPUBug Bug

	// whether branch instruction test passed (ie. branched) or not. testing of
	// this field should be used in conjunction with Defn.IsBranch()
	BranchSuccess bool

	// whether this data has been finalised. some of the fields in this struct
	// will be undefined if Final is false
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%04x ???", r.Address)
	}

	s := fmt.Sprintf("%04x %s", r.Address, r.Defn.Operator)

	switch r.Defn.Bytes {
	case 2:
		s = fmt.Sprintf("%s $%02x", s, r.InstructionData)
	case 3:
		s = fmt.Sprintf("%s $%04x", s, r.InstructionData)
	}

	s = fmt.Sprintf("%s [%d]", s, r.Cycles)

	if r.PageFault {
		s = fmt.Sprintf("%s page-fault", s)
	}
	if r.CPUBug != NoBug {
		s = fmt.Sprintf("%s * %s *", s, r.CPUBug)
	}

	return s
}
