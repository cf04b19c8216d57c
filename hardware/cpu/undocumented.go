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

package cpu

import (
	"github.com/famicore/famicore/hardware/cpu/execution"
	"github.com/famicore/famicore/hardware/cpu/instructions"
	"github.com/famicore/famicore/hardware/cpu/registers"
	"github.com/famicore/famicore/logger"
)

// the value ORed with the accumulator by the unstable XAA and LXA
// instructions. the real value varies between chips and with temperature
const unstableMagic = 0xee

// undocumented executes the undocumented operators. returns false if the
// operator is not recognised.
func (mc *CPU) undocumented(defn *instructions.Definition, op operand, value uint8) (bool, error) {
	var err error

	switch defn.Operator {
	case instructions.Slo:
		mc.Status.Update(registers.Carry, mc.acc8.ASL())
		mc.A.ORA(mc.acc8.Value())
		mc.Status.UpdateZeroNegative(mc.A.Value())

	case instructions.Rla:
		mc.Status.Update(registers.Carry, mc.acc8.ROL(mc.Status.IsSet(registers.Carry)))
		mc.A.AND(mc.acc8.Value())
		mc.Status.UpdateZeroNegative(mc.A.Value())

	case instructions.Sre:
		mc.Status.Update(registers.Carry, mc.acc8.LSR())
		mc.A.EOR(mc.acc8.Value())
		mc.Status.UpdateZeroNegative(mc.A.Value())

	case instructions.Rra:
		mc.Status.Update(registers.Carry, mc.acc8.ROR(mc.Status.IsSet(registers.Carry)))
		mc.adc(mc.acc8.Value())

	case instructions.Sax:
		err = mc.mem.Write(op.address, mc.A.Value()&mc.X.Value())

	case instructions.Lax:
		mc.A.Load(value)
		mc.X.Load(value)
		mc.Status.UpdateZeroNegative(value)

	case instructions.Dcp:
		mc.acc8.Load(value - 1)
		mc.compare(mc.A, mc.acc8.Value())

	case instructions.Isb:
		mc.acc8.Load(value + 1)
		mc.sbc(mc.acc8.Value())

	case instructions.Anc:
		mc.A.AND(value)
		mc.Status.UpdateZeroNegative(mc.A.Value())
		mc.Status.Update(registers.Carry, mc.A.IsNegative())

	case instructions.Alr:
		mc.A.AND(value)
		mc.Status.Update(registers.Carry, mc.A.LSR())
		mc.Status.UpdateZeroNegative(mc.A.Value())

	case instructions.Arr:
		mc.A.AND(value)
		mc.A.ROR(mc.Status.IsSet(registers.Carry))
		mc.Status.UpdateZeroNegative(mc.A.Value())
		b6 := mc.A.Value()&0x40 == 0x40
		b5 := mc.A.Value()&0x20 == 0x20
		mc.Status.Update(registers.Carry, b6)
		mc.Status.Update(registers.Overflow, b6 != b5)

	case instructions.Xaa:
		mc.logUnstable(defn)
		mc.A.Load((mc.A.Value() | unstableMagic) & mc.X.Value() & value)
		mc.Status.UpdateZeroNegative(mc.A.Value())

	case instructions.Lxa:
		mc.logUnstable(defn)
		v := (mc.A.Value() | unstableMagic) & value
		mc.A.Load(v)
		mc.X.Load(v)
		mc.Status.UpdateZeroNegative(v)

	case instructions.Axs:
		carry, result := registers.NewRegister(mc.A.Value()&mc.X.Value(), "AX").Compare(value)
		mc.X.Load(result)
		mc.Status.Update(registers.Carry, carry)
		mc.Status.UpdateZeroNegative(result)

	case instructions.Sha:
		mc.logUnstable(defn)
		err = mc.storeHighByte(op, mc.A.Value()&mc.X.Value())

	case instructions.Shx:
		mc.logUnstable(defn)
		err = mc.storeHighByte(op, mc.X.Value())

	case instructions.Shy:
		mc.logUnstable(defn)
		err = mc.storeHighByte(op, mc.Y.Value())

	case instructions.Tas:
		mc.logUnstable(defn)
		mc.SP.Load(mc.A.Value() & mc.X.Value())
		err = mc.storeHighByte(op, mc.SP.Value())

	case instructions.Las:
		v := value & mc.SP.Value()
		mc.A.Load(v)
		mc.X.Load(v)
		mc.SP.Load(v)
		mc.Status.UpdateZeroNegative(v)

	default:
		return false, nil
	}

	return true, err
}

// the SH* family of instructions store the register value ANDed with the
// high byte of the base address plus one. if indexing crossed a page then the
// stored value also replaces the high byte of the target address
func (mc *CPU) storeHighByte(op operand, reg uint8) error {
	v := reg & (uint8(op.base>>8) + 1)
	address := op.address
	if op.crossed {
		address = (uint16(v) << 8) | (address & 0x00ff)
		mc.LastResult.CPUBug = execution.UnstableHighByteBug
	}
	return mc.mem.Write(address, v)
}

// unstable instructions are logged the first time they are used
func (mc *CPU) logUnstable(defn *instructions.Definition) {
	if mc.unstableLogged[defn.OpCode] {
		return
	}
	mc.unstableLogged[defn.OpCode] = true
	logger.Logf(logger.Allow, "cpu", "unstable instruction %s (%#02x) at (%#04x)", defn.Operator, defn.OpCode, mc.LastResult.Address)
}
