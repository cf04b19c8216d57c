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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which takes a
// pattern string and placeholder values in the same way as fmt.Errorf().
//
// The pattern is kept with the error and is used to identify it later:
//
//	e := curated.Errorf("bus: write to ROM address (%#04x)", addr)
//	if curated.Is(e, "bus: write to ROM address (%#04x)") {
//		fmt.Println("true")
//	}
//
// Packages that return curated errors should export the pattern as a const
// string so that callers can test for it.
//
// The Has() function looks for the pattern anywhere in the chain of curated
// errors:
//
//	e := curated.Errorf("bus: write to ROM address (%#04x)", addr)
//	f := curated.Errorf("cpu: %v", e)
//	curated.Has(f, "bus: write to ROM address (%#04x)") // true
//	curated.Is(f, "bus: write to ROM address (%#04x)")  // false
//
// The Error() function normalises the message so that adjacent duplicate
// parts do not appear. Parts are separated by the sub-string ": ". For
// example, a chain that would produce
//
//	cpu: cpu: unimplemented instruction
//
// is printed as
//
//	cpu: unimplemented instruction
package curated
