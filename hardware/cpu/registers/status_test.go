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

package registers_test

import (
	"testing"

	"github.com/famicore/famicore/hardware/cpu/registers"
	"github.com/famicore/famicore/test"
)

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatus(0x24)
	test.ExpectEquality(t, sr.String(), "nv-bdIzc")
	test.ExpectEquality(t, sr.Value(), 0x24)

	sr.Set(registers.Carry)
	sr.Set(registers.Negative)
	test.ExpectEquality(t, sr.String(), "Nv-bdIzC")
	test.ExpectSuccess(t, sr.IsSet(registers.Carry))

	sr.Clear(registers.Carry)
	test.ExpectFailure(t, sr.IsSet(registers.Carry))

	sr.Toggle(registers.Zero)
	test.ExpectSuccess(t, sr.IsSet(registers.Zero))
	sr.Toggle(registers.Zero)
	test.ExpectFailure(t, sr.IsSet(registers.Zero))

	sr.Update(registers.Overflow, true)
	test.ExpectEquality(t, sr.Value(), 0xe4)

	sr.Load(0xff)
	test.ExpectEquality(t, sr.String(), "NV-BDIZC")
	sr.Load(0x00)
	test.ExpectEquality(t, sr.String(), "nv-bdizc")
}

func TestZeroNegative(t *testing.T) {
	var sr registers.Status

	for v := 0; v <= 0xff; v++ {
		sr.UpdateZeroNegative(uint8(v))
		test.ExpectEquality(t, sr.IsSet(registers.Zero), v == 0)
		test.ExpectEquality(t, sr.IsSet(registers.Negative), v&0x80 == 0x80)
	}
}
