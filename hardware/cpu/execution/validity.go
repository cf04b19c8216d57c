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

	"github.com/famicore/famicore/curated"
)

// InvalidResult is the error pattern used by IsValid().
const InvalidResult = "cpu: invalid result: %s"

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf(InvalidResult, "execution not finalised")
	}

	if r.Defn == nil {
		return curated.Errorf(InvalidResult, "no instruction definition")
	}

	// is PageFault valid given content of Defn
	if !r.Defn.PageSensitive && r.PageFault {
		return curated.Errorf(InvalidResult, "unexpected page fault")
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf(InvalidResult,
			fmt.Sprintf("unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes))
	}

	if r.Defn.IsBranch() {
		expected := r.Defn.Cycles
		if r.BranchSuccess {
			expected++
			if r.PageFault {
				expected++
			}
		} else if r.PageFault {
			return curated.Errorf(InvalidResult, "page fault on a branch that was not taken")
		}
		if r.Cycles != expected {
			return curated.Errorf(InvalidResult,
				fmt.Sprintf("number of cycles wrong for opcode %#02x [%s] (%d instead of %d)", r.Defn.OpCode, r.Defn.Operator, r.Cycles, expected))
		}
		return nil
	}

	expected := r.Defn.Cycles
	if r.PageFault {
		expected++
	}
	if r.Cycles != expected {
		return curated.Errorf(InvalidResult,
			fmt.Sprintf("number of cycles wrong for opcode %#02x [%s] (%d instead of %d)", r.Defn.OpCode, r.Defn.Operator, r.Cycles, expected))
	}

	return nil
}
