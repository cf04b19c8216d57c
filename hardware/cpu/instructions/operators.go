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

package instructions

// Operator identifies the operation performed by an instruction. Several
// opcodes share an Operator, differing only in addressing mode.
type Operator int

// List of documented operators.
const (
	Adc Operator = iota
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Nop
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya

	// undocumented operators. the mnemonics are those used by the nestest
	// log where there is a choice
	Slo // ASL then ORA
	Rla // ROL then AND
	Sre // LSR then EOR
	Rra // ROR then ADC
	Sax // store A AND X
	Lax // LDA and LDX
	Dcp // DEC then CMP
	Isb // INC then SBC
	Anc // AND then copy bit 7 to carry
	Alr // AND then LSR
	Arr // AND then ROR with odd flags
	Xaa // unstable: TXA then AND
	Lxa // unstable: LDA and TAX
	Axs // X = (A AND X) - operand
	Sha // unstable: store A AND X AND high byte+1
	Shx // unstable: store X AND high byte+1
	Shy // unstable: store Y AND high byte+1
	Tas // unstable: SP = A AND X then SHA
	Las // A, X and SP = memory AND SP
	Kil // halts the CPU
)

var operatorNames = [...]string{
	Adc: "ADC",
	And: "AND",
	Asl: "ASL",
	Bcc: "BCC",
	Bcs: "BCS",
	Beq: "BEQ",
	Bit: "BIT",
	Bmi: "BMI",
	Bne: "BNE",
	Bpl: "BPL",
	Brk: "BRK",
	Bvc: "BVC",
	Bvs: "BVS",
	Clc: "CLC",
	Cld: "CLD",
	Cli: "CLI",
	Clv: "CLV",
	Cmp: "CMP",
	Cpx: "CPX",
	Cpy: "CPY",
	Dec: "DEC",
	Dex: "DEX",
	Dey: "DEY",
	Eor: "EOR",
	Inc: "INC",
	Inx: "INX",
	Iny: "INY",
	Jmp: "JMP",
	Jsr: "JSR",
	Lda: "LDA",
	Ldx: "LDX",
	Ldy: "LDY",
	Lsr: "LSR",
	Nop: "NOP",
	Ora: "ORA",
	Pha: "PHA",
	Php: "PHP",
	Pla: "PLA",
	Plp: "PLP",
	Rol: "ROL",
	Ror: "ROR",
	Rti: "RTI",
	Rts: "RTS",
	Sbc: "SBC",
	Sec: "SEC",
	Sed: "SED",
	Sei: "SEI",
	Sta: "STA",
	Stx: "STX",
	Sty: "STY",
	Tax: "TAX",
	Tay: "TAY",
	Tsx: "TSX",
	Txa: "TXA",
	Txs: "TXS",
	Tya: "TYA",
	Slo: "SLO",
	Rla: "RLA",
	Sre: "SRE",
	Rra: "RRA",
	Sax: "SAX",
	Lax: "LAX",
	Dcp: "DCP",
	Isb: "ISB",
	Anc: "ANC",
	Alr: "ALR",
	Arr: "ARR",
	Xaa: "XAA",
	Lxa: "LXA",
	Axs: "AXS",
	Sha: "SHA",
	Shx: "SHX",
	Shy: "SHY",
	Tas: "TAS",
	Las: "LAS",
	Kil: "KIL",
}

func (op Operator) String() string {
	if op < 0 || int(op) >= len(operatorNames) {
		return "???"
	}
	return operatorNames[op]
}
