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

package registers

import "fmt"

// StackPage is the page of memory used by the stack.
const StackPage = uint16(0x0100)

// StackPointer is an offset into the stack page. It always points to the next
// free slot in the stack, not the most recently written one.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns an identifying string for the SP.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%02x", sp.value)
}

// Value returns the offset into the stack page.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the address in the stack page pointed to by the SP.
func (sp StackPointer) Address() uint16 {
	return StackPage | uint16(sp.value)
}

// Load a new offset into the SP.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Push moves the SP to the next free slot after a write. Wraps silently.
func (sp *StackPointer) Push() {
	sp.value--
}

// Pop moves the SP to the most recently written slot before a read. Wraps
// silently.
func (sp *StackPointer) Pop() {
	sp.value++
}
