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
	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/hardware/cpu/execution"
	"github.com/famicore/famicore/hardware/cpu/instructions"
	"github.com/famicore/famicore/hardware/cpu/registers"
	"github.com/famicore/famicore/hardware/memory/cpubus"
	"github.com/famicore/famicore/logger"
)

// the outcome of addressing mode resolution
type operand struct {
	address uint16

	// the address before indexing. only meaningful for indexed modes
	base uint16

	// indexing (or branching) moved the address into a different page
	crossed bool
}

// fetch the operand bytes for the instruction and resolve the effective
// address. the PC is advanced past the operand bytes.
func (mc *CPU) resolve(defn *instructions.Definition) (operand, error) {
	var op operand

	// read the instruction data that follows the opcode
	switch defn.Bytes {
	case 2:
		v, err := mc.mem.Read(mc.PC.Address())
		if err != nil {
			return op, err
		}
		mc.LastResult.InstructionData = uint16(v)
	case 3:
		v, err := mc.Read16(mc.PC.Address())
		if err != nil {
			return op, err
		}
		mc.LastResult.InstructionData = v
	}
	mc.PC.Add(uint16(defn.Bytes - 1))
	mc.LastResult.ByteCount = defn.Bytes

	data := mc.LastResult.InstructionData

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:
		// no memory operand

	case instructions.Immediate:
		// the address of the operand byte. the value is the instruction
		// data itself
		op.address = mc.PC.Address() - 1

	case instructions.Relative:
		// branch target is relative to the PC after the operand
		op.address = mc.PC.Address() + uint16(int16(int8(uint8(data))))
		op.crossed = op.address&0xff00 != mc.PC.Address()&0xff00

	case instructions.Absolute:
		op.address = data

	case instructions.ZeroPage:
		op.address = data & 0x00ff

	case instructions.Indirect:
		// JMP indirect does not carry into the high byte of the pointer when
		// the pointer is at the end of a page
		lo, err := mc.mem.Read(data)
		if err != nil {
			return op, err
		}
		hiAddr := data + 1
		if data&0x00ff == 0x00ff {
			hiAddr = data & 0xff00
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
		}
		hi, err := mc.mem.Read(hiAddr)
		if err != nil {
			return op, err
		}
		op.address = (uint16(hi) << 8) | uint16(lo)

	case instructions.IndexedIndirect:
		// the pointer is always in the zero page
		ptr := uint8(data) + mc.X.Value()
		if ptr == 0xff {
			mc.LastResult.CPUBug = execution.IndexedIndirectAddressingBug
		}
		a, err := mc.readZeroPage16(ptr)
		if err != nil {
			return op, err
		}
		op.address = a

	case instructions.IndirectIndexed:
		a, err := mc.readZeroPage16(uint8(data))
		if err != nil {
			return op, err
		}
		op.base = a
		op.address = a + uint16(mc.Y.Value())
		op.crossed = op.address&0xff00 != op.base&0xff00

	case instructions.AbsoluteIndexedX:
		op.base = data
		op.address = data + uint16(mc.X.Value())
		op.crossed = op.address&0xff00 != op.base&0xff00

	case instructions.AbsoluteIndexedY:
		op.base = data
		op.address = data + uint16(mc.Y.Value())
		op.crossed = op.address&0xff00 != op.base&0xff00

	case instructions.ZeroPageIndexedX:
		op.base = data & 0x00ff
		op.address = uint16(uint8(data) + mc.X.Value())
		if op.base+uint16(mc.X.Value()) > 0xff {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}

	case instructions.ZeroPageIndexedY:
		op.base = data & 0x00ff
		op.address = uint16(uint8(data) + mc.Y.Value())
		if op.base+uint16(mc.Y.Value()) > 0xff {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}
	}

	// branch instructions only suffer a page fault if the branch is taken.
	// that is decided by the operator
	if defn.PageSensitive && !defn.IsBranch() {
		mc.LastResult.PageFault = op.crossed
	}

	return op, nil
}

// read a pointer from the zero page. the high byte wraps around to the start
// of the zero page
func (mc *CPU) readZeroPage16(ptr uint8) (uint16, error) {
	lo, err := mc.mem.Read(uint16(ptr))
	if err != nil {
		return 0, err
	}
	hi, err := mc.mem.Read(uint16(ptr + 1))
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// the addressing modes that read a value from memory for Read and RMW
// instructions
func readsMemory(mode instructions.AddressingMode) bool {
	switch mode {
	case instructions.Implied, instructions.Accumulator, instructions.Immediate, instructions.Relative:
		return false
	}
	return true
}

// Step executes the next instruction in the program. It returns false if the
// execution loop should stop: either a BRK instruction was executed with
// HaltOnBRK set or a KIL instruction was encountered.
//
// The cycles consumed by the instruction are added to the Cycles field and
// the memory is ticked after the instruction has taken effect.
func (mc *CPU) Step() (bool, error) {
	if mc.Killed {
		return false, nil
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return false, err
	}
	mc.PC.Increment()

	defn := instructions.Get(opcode)
	mc.LastResult.Defn = defn

	op, err := mc.resolve(defn)
	if err != nil {
		return false, err
	}

	// the value the instruction operates on
	var value uint8

	switch defn.AddressingMode {
	case instructions.Immediate:
		value = uint8(mc.LastResult.InstructionData)
	case instructions.Accumulator:
		value = mc.A.Value()
	default:
		if (defn.Effect == instructions.Read || defn.Effect == instructions.RMW) && readsMemory(defn.AddressingMode) {
			value, err = mc.mem.Read(op.address)
			if err != nil {
				return false, err
			}
		}
	}

	// the result of RMW instructions is held in acc8 and written back to
	// memory (or the accumulator) after the operator has been processed
	mc.acc8.Load(value)

	cont := true

	switch defn.Operator {
	case instructions.Nop:
		// NOP also covers the undocumented NOPs with operands. the operand
		// has already been read

	case instructions.Clc:
		mc.Status.Clear(registers.Carry)
	case instructions.Cld:
		mc.Status.Clear(registers.DecimalMode)
	case instructions.Cli:
		mc.Status.Clear(registers.InterruptDisable)
	case instructions.Clv:
		mc.Status.Clear(registers.Overflow)
	case instructions.Sec:
		mc.Status.Set(registers.Carry)
	case instructions.Sed:
		// the 2A03 has no decimal mode but the flag can still be set
		mc.Status.Set(registers.DecimalMode)
	case instructions.Sei:
		mc.Status.Set(registers.InterruptDisable)

	case instructions.Pha:
		err = mc.Push(mc.A.Value())

	case instructions.Pla:
		var v uint8
		v, err = mc.Pop()
		mc.A.Load(v)
		mc.Status.UpdateZeroNegative(v)

	case instructions.Php:
		err = mc.Push(mc.Status.Value() | uint8(registers.Break|registers.Unused))

	case instructions.Plp:
		var v uint8
		v, err = mc.Pop()
		mc.loadStatus(v)

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.UpdateZeroNegative(mc.A.Value())
	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.UpdateZeroNegative(mc.X.Value())
	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.UpdateZeroNegative(mc.Y.Value())
	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.UpdateZeroNegative(mc.A.Value())
	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.UpdateZeroNegative(mc.X.Value())
	case instructions.Txs:
		// TXS does not affect the status register
		mc.SP.Load(mc.X.Value())

	case instructions.Eor:
		mc.A.EOR(value)
		mc.Status.UpdateZeroNegative(mc.A.Value())
	case instructions.Ora:
		mc.A.ORA(value)
		mc.Status.UpdateZeroNegative(mc.A.Value())
	case instructions.And:
		mc.A.AND(value)
		mc.Status.UpdateZeroNegative(mc.A.Value())

	case instructions.Lda:
		mc.A.Load(value)
		mc.Status.UpdateZeroNegative(value)
	case instructions.Ldx:
		mc.X.Load(value)
		mc.Status.UpdateZeroNegative(value)
	case instructions.Ldy:
		mc.Y.Load(value)
		mc.Status.UpdateZeroNegative(value)

	case instructions.Sta:
		err = mc.mem.Write(op.address, mc.A.Value())
	case instructions.Stx:
		err = mc.mem.Write(op.address, mc.X.Value())
	case instructions.Sty:
		err = mc.mem.Write(op.address, mc.Y.Value())

	case instructions.Inx:
		mc.X.Load(mc.X.Value() + 1)
		mc.Status.UpdateZeroNegative(mc.X.Value())
	case instructions.Iny:
		mc.Y.Load(mc.Y.Value() + 1)
		mc.Status.UpdateZeroNegative(mc.Y.Value())
	case instructions.Dex:
		mc.X.Load(mc.X.Value() - 1)
		mc.Status.UpdateZeroNegative(mc.X.Value())
	case instructions.Dey:
		mc.Y.Load(mc.Y.Value() - 1)
		mc.Status.UpdateZeroNegative(mc.Y.Value())

	case instructions.Asl:
		mc.Status.Update(registers.Carry, mc.acc8.ASL())
		mc.Status.UpdateZeroNegative(mc.acc8.Value())
	case instructions.Lsr:
		mc.Status.Update(registers.Carry, mc.acc8.LSR())
		mc.Status.UpdateZeroNegative(mc.acc8.Value())
	case instructions.Rol:
		mc.Status.Update(registers.Carry, mc.acc8.ROL(mc.Status.IsSet(registers.Carry)))
		mc.Status.UpdateZeroNegative(mc.acc8.Value())
	case instructions.Ror:
		mc.Status.Update(registers.Carry, mc.acc8.ROR(mc.Status.IsSet(registers.Carry)))
		mc.Status.UpdateZeroNegative(mc.acc8.Value())

	case instructions.Inc:
		mc.acc8.Load(value + 1)
		mc.Status.UpdateZeroNegative(mc.acc8.Value())
	case instructions.Dec:
		mc.acc8.Load(value - 1)
		mc.Status.UpdateZeroNegative(mc.acc8.Value())

	case instructions.Adc:
		mc.adc(value)
	case instructions.Sbc:
		mc.sbc(value)

	case instructions.Cmp:
		mc.compare(mc.A, value)
	case instructions.Cpx:
		mc.compare(mc.X, value)
	case instructions.Cpy:
		mc.compare(mc.Y, value)

	case instructions.Bit:
		mc.Status.Update(registers.Zero, mc.A.Value()&value == 0)
		mc.Status.Update(registers.Negative, value&0x80 == 0x80)
		mc.Status.Update(registers.Overflow, value&0x40 == 0x40)

	case instructions.Jmp:
		mc.PC.Load(op.address)

	case instructions.Bcc:
		mc.branch(!mc.Status.IsSet(registers.Carry), op)
	case instructions.Bcs:
		mc.branch(mc.Status.IsSet(registers.Carry), op)
	case instructions.Beq:
		mc.branch(mc.Status.IsSet(registers.Zero), op)
	case instructions.Bne:
		mc.branch(!mc.Status.IsSet(registers.Zero), op)
	case instructions.Bmi:
		mc.branch(mc.Status.IsSet(registers.Negative), op)
	case instructions.Bpl:
		mc.branch(!mc.Status.IsSet(registers.Negative), op)
	case instructions.Bvs:
		mc.branch(mc.Status.IsSet(registers.Overflow), op)
	case instructions.Bvc:
		mc.branch(!mc.Status.IsSet(registers.Overflow), op)

	case instructions.Jsr:
		// the address pushed is the last byte of the JSR instruction
		err = mc.Push16(mc.PC.Address() - 1)
		if err == nil {
			mc.PC.Load(op.address)
		}

	case instructions.Rts:
		var a uint16
		a, err = mc.Pop16()
		mc.PC.Load(a + 1)

	case instructions.Rti:
		var v uint8
		v, err = mc.Pop()
		if err == nil {
			mc.loadStatus(v)
			var a uint16
			a, err = mc.Pop16()
			mc.PC.Load(a)
		}

	case instructions.Brk:
		if mc.HaltOnBRK {
			mc.Status.Set(registers.Break)
			cont = false
			break
		}

		// the byte following BRK is a padding byte and is skipped
		err = mc.Push16(mc.PC.Address() + 1)
		if err == nil {
			err = mc.Push(mc.Status.Value() | uint8(registers.Break|registers.Unused))
		}
		if err == nil {
			mc.Status.Set(registers.InterruptDisable)
			err = mc.LoadPCIndirect(cpubus.IRQ)
		}

	case instructions.Kil:
		// the CPU stops and can only be restarted by a reset. the PC is left
		// pointing at the KIL instruction
		mc.Killed = true
		mc.PC.Load(mc.LastResult.Address)
		cont = false
		logger.Logf(logger.Allow, "cpu", "KIL instruction (%#02x) at (%#04x)", defn.OpCode, mc.LastResult.Address)

	default:
		var ok bool
		ok, err = mc.undocumented(defn, op, value)
		if err == nil && !ok {
			return false, curated.Errorf(UnimplementedInstruction, defn.OpCode, mc.LastResult.Address)
		}
	}

	if err != nil {
		return false, err
	}

	// write back the result of RMW instructions
	if defn.Effect == instructions.RMW {
		if defn.AddressingMode == instructions.Accumulator {
			mc.A.Load(mc.acc8.Value())
		} else {
			err = mc.mem.Write(op.address, mc.acc8.Value())
			if err != nil {
				return false, err
			}
		}
	}

	// cycle accounting happens strictly after the instruction has taken
	// effect
	cycles := defn.Cycles
	if mc.LastResult.BranchSuccess {
		cycles++
	}
	if mc.LastResult.PageFault {
		cycles++
	}
	mc.LastResult.Cycles = cycles
	mc.consume(cycles)

	mc.LastResult.Final = true

	return cont, nil
}

// the break flag does not exist in the status register. it only exists on
// the stack. the unused bit always reads as one
func (mc *CPU) loadStatus(v uint8) {
	mc.Status.Load(v)
	mc.Status.Clear(registers.Break)
	mc.Status.Set(registers.Unused)
}

func (mc *CPU) branch(flag bool, op operand) {
	if !flag {
		return
	}
	mc.LastResult.BranchSuccess = true
	mc.LastResult.PageFault = op.crossed
	mc.PC.Load(op.address)
}

func (mc *CPU) compare(r registers.Register, value uint8) {
	carry, result := r.Compare(value)
	mc.Status.Update(registers.Carry, carry)
	mc.Status.UpdateZeroNegative(result)
}

func (mc *CPU) adc(value uint8) {
	carry, overflow := mc.A.Add(value, mc.Status.IsSet(registers.Carry))
	mc.Status.Update(registers.Carry, carry)
	mc.Status.Update(registers.Overflow, overflow)
	mc.Status.UpdateZeroNegative(mc.A.Value())
}

func (mc *CPU) sbc(value uint8) {
	carry, overflow := mc.A.Subtract(value, mc.Status.IsSet(registers.Carry))
	mc.Status.Update(registers.Carry, carry)
	mc.Status.Update(registers.Overflow, overflow)
	mc.Status.UpdateZeroNegative(mc.A.Value())
}
