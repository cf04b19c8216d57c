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

// generator creates table.go in the parent instructions package from the
// instructions.csv file. run with "go generate" from the instructions
// directory.
package main

import (
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"
)

const definitionsCSVFile = "./generator/instructions.csv"
const generatedGoFile = "./table.go"

const licenseHeader = `// This file is part of Famicore.
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

`

const leadingBoilerPlate = "// generated code - do not change\n\n" +
	"package instructions\n\n" +
	"// the definitions table is indexed by opcode. every one of the 256 possible\n" +
	"// opcodes has an entry.\n" +
	"var definitions = [256]Definition{\n"

const trailingBoilerPlate = "}\n"

// addressing mode names in the CSV file and the corresponding Go identifier
// and instruction length
var addressingModes = map[string]struct {
	ident string
	bytes int
}{
	"IMPLIED":             {"Implied", 1},
	"ACCUMULATOR":         {"Accumulator", 1},
	"IMMEDIATE":           {"Immediate", 2},
	"RELATIVE":            {"Relative", 2},
	"ABSOLUTE":            {"Absolute", 3},
	"ZERO_PAGE":           {"ZeroPage", 2},
	"INDIRECT":            {"Indirect", 3},
	"INDEXED_INDIRECT":    {"IndexedIndirect", 2},
	"INDIRECT_INDEXED":    {"IndirectIndexed", 2},
	"ABSOLUTE_INDEXED_X":  {"AbsoluteIndexedX", 3},
	"ABSOLUTE_INDEXED_Y":  {"AbsoluteIndexedY", 3},
	"ZERO_PAGE_INDEXED_X": {"ZeroPageIndexedX", 2},
	"ZERO_PAGE_INDEXED_Y": {"ZeroPageIndexedY", 2},
}

var effects = map[string]string{
	"READ":        "Read",
	"WRITE":       "Write",
	"RMW":         "RMW",
	"FLOW":        "Flow",
	"SUB-ROUTINE": "Subroutine",
	"INTERRUPT":   "Interrupt",
}

func parseCSV() (string, error) {
	df, err := os.Open(definitionsCSVFile)
	if err != nil {
		return "", fmt.Errorf("error opening instruction definitions (%s)", err)
	}
	defer df.Close()

	csvr := csv.NewReader(df)
	csvr.Comment = '#'
	csvr.TrimLeadingSpace = true

	// the effect field is optional (defaulting to READ)
	csvr.FieldsPerRecord = -1

	var table [256]string
	var defined [256]bool

	line := 0
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		if !(len(rec) == 5 || len(rec) == 6) {
			return "", fmt.Errorf("wrong number of fields in instruction definition (%s) [line %d]", rec, line)
		}

		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}

		// field: opcode
		n, err := strconv.ParseUint(strings.TrimPrefix(rec[0], "0x"), 16, 8)
		if err != nil {
			return "", fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}
		opcode := uint8(n)
		if defined[opcode] {
			return "", fmt.Errorf("duplicate opcode (%#02x) [line %d]", opcode, line)
		}
		defined[opcode] = true

		// field: mnemonic. a leading asterisk indicates an undocumented opcode
		mnemonic := rec[1]
		undocumented := strings.HasPrefix(mnemonic, "*")
		mnemonic = strings.TrimPrefix(mnemonic, "*")
		operator := strings.ToUpper(mnemonic[:1]) + strings.ToLower(mnemonic[1:])

		// field: cycle count
		cycles, err := strconv.Atoi(rec[2])
		if err != nil {
			return "", fmt.Errorf("invalid cycle count for %#02x (%s) [line %d]", opcode, rec[2], line)
		}

		// field: addressing mode. the addressing mode also defines how many
		// bytes an opcode requires
		am, ok := addressingModes[strings.ToUpper(rec[3])]
		if !ok {
			return "", fmt.Errorf("invalid addressing mode for %#02x (%s) [line %d]", opcode, rec[3], line)
		}

		// field: page sensitive
		var pageSensitive bool
		switch strings.ToUpper(rec[4]) {
		case "TRUE":
			pageSensitive = true
		case "FALSE":
			pageSensitive = false
		default:
			return "", fmt.Errorf("invalid page sensitivity switch for %#02x (%s) [line %d]", opcode, rec[4], line)
		}

		// field: effect category
		effect := "Read"
		if len(rec) == 6 {
			effect, ok = effects[strings.ToUpper(rec[5])]
			if !ok {
				return "", fmt.Errorf("unknown category for %#02x (%s) [line %d]", opcode, rec[5], line)
			}
		}

		table[opcode] = fmt.Sprintf("0x%02x: {OpCode: 0x%02x, Operator: %s, Bytes: %d, Cycles: %d, AddressingMode: %s, PageSensitive: %t, Effect: %s, Undocumented: %t},\n",
			opcode, opcode, operator, am.bytes, cycles, am.ident, pageSensitive, effect, undocumented)
	}

	// the table must be total
	missing := make([]string, 0)
	for i := range defined {
		if !defined[i] {
			missing = append(missing, fmt.Sprintf("%#02x", i))
		}
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("missing opcodes: %s", strings.Join(missing, ", "))
	}

	return strings.Join(table[:], ""), nil
}

func main() {
	output, err := parseCSV()
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	output = fmt.Sprintf("%s%s%s%s", licenseHeader, leadingBoilerPlate, output, trailingBoilerPlate)

	formattedOutput, err := format.Source([]byte(output))
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	err = os.WriteFile(generatedGoFile, formattedOutput, 0644)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
}
