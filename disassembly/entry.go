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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/famicore/famicore/hardware/cpu/instructions"
)

// Entry is a disassembled instruction.
type Entry struct {
	Address uint16

	// the opcode and operand bytes
	Bytes []uint8

	Defn *instructions.Definition

	// the operator mnemonic. undocumented instructions are prefixed with an
	// asterisk
	Operator string

	// the operand, annotated with the effective address and the value found
	// there where appropriate
	Operand string
}

// Bytecode returns the instruction bytes as hex values separated by spaces.
func (e Entry) Bytecode() string {
	s := make([]string, len(e.Bytes))
	for i, b := range e.Bytes {
		s[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(s, " ")
}

// Assembly returns the mnemonic and the operand. The mnemonic is always four
// characters wide (including the prefix) so that operands line up.
func (e Entry) Assembly() string {
	op := e.Operator
	if !strings.HasPrefix(op, "*") {
		op = " " + op
	}
	if e.Operand == "" {
		return op
	}
	return fmt.Sprintf("%s %s", op, e.Operand)
}

func (e Entry) String() string {
	return fmt.Sprintf("%04X  %-8s %s", e.Address, e.Bytecode(), e.Assembly())
}
