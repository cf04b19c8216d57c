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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/famicore/famicore/test"
)

// LDX #$05; INX; BRK
var program = []uint8{0xa2, 0x05, 0xe8, 0x00}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(filename, data, 0644))
	return filename
}

func launchTest(t *testing.T, input string, args ...string) (int, string, string) {
	t.Helper()
	var output, errOutput strings.Builder
	ret := launch(args, strings.NewReader(input), &output, &errOutput)
	return ret, output.String(), errOutput.String()
}

func TestHelp(t *testing.T) {
	ret, output, _ := launchTest(t, "", "-help")
	test.ExpectEquality(t, ret, 0)
	test.ExpectSuccess(t, strings.Contains(output, "available sub-modes: RUN, TRACE, MONITOR, INFO, PERFORMANCE"))
}

func TestVersion(t *testing.T) {
	ret, output, _ := launchTest(t, "", "-version")
	test.ExpectEquality(t, ret, 0)
	test.ExpectSuccess(t, strings.HasPrefix(output, "Famicore "))
}

func TestBadFlag(t *testing.T) {
	ret, _, errOutput := launchTest(t, "", "-nonsense")
	test.ExpectEquality(t, ret, 10)
	test.ExpectSuccess(t, strings.HasPrefix(errOutput, "* error:"))
}

func TestMissingCartridge(t *testing.T) {
	ret, _, errOutput := launchTest(t, "", "run")
	test.ExpectEquality(t, ret, 20)
	test.ExpectSuccess(t, strings.Contains(errOutput, "cartridge required for RUN mode"))
}

func TestRun(t *testing.T) {
	filename := writeFile(t, "test.bin", program)

	// RUN is the default mode. without the raw flag the file must be an
	// iNES file
	ret, _, errOutput := launchTest(t, "", filename)
	test.ExpectEquality(t, ret, 20)
	test.ExpectSuccess(t, strings.HasPrefix(errOutput, "* error in RUN mode"))

	ret, output, _ := launchTest(t, "", "run", "-raw", filename)
	test.ExpectEquality(t, ret, 0)
	test.ExpectSuccess(t, strings.Contains(output, "X=06"))
	test.ExpectSuccess(t, strings.Contains(output, "3 instructions, 18 cycles, 0 frames, 0 NMIs"))

	ret, output, _ = launchTest(t, "", "run", "-raw", "-steps", "2", filename)
	test.ExpectEquality(t, ret, 0)
	test.ExpectSuccess(t, strings.Contains(output, "2 instructions, 11 cycles"))
}

func TestRunScript(t *testing.T) {
	filename := writeFile(t, "test.bin", program)
	script := writeFile(t, "test.lua", []byte(`
function step()
	return cpu.x ~= 6
end
`))

	ret, output, _ := launchTest(t, "", "run", "-raw", "-script", script, filename)
	test.ExpectEquality(t, ret, 0)
	test.ExpectSuccess(t, strings.Contains(output, "3 instructions, 11 cycles"))
}

func TestRunMemviz(t *testing.T) {
	filename := writeFile(t, "test.bin", program)
	viz := filepath.Join(t.TempDir(), "cpu.dot")

	ret, _, _ := launchTest(t, "", "run", "-raw", "-memviz", viz, filename)
	test.ExpectEquality(t, ret, 0)

	data, err := os.ReadFile(viz)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, len(data) > 0)
}

func TestTrace(t *testing.T) {
	filename := writeFile(t, "test.bin", program)

	ret, output, _ := launchTest(t, "", "trace", "-raw", filename)
	test.ExpectEquality(t, ret, 0)

	lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
	test.DemandEquality(t, len(lines), 3)
	test.ExpectEquality(t, lines[0], "8000  A2 05     LDX #$05                        A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:7")
	test.ExpectEquality(t, lines[1], "8002  E8        INX                             A:00 X:05 Y:00 P:24 SP:FD PPU:  0, 27 CYC:9")
	test.ExpectEquality(t, lines[2], "8003  00        BRK                             A:00 X:06 Y:00 P:24 SP:FD PPU:  0, 33 CYC:11")

	// output to file and limited number of steps
	outFile := filepath.Join(t.TempDir(), "trace.log")
	ret, output, _ = launchTest(t, "", "trace", "-raw", "-steps", "1", "-o", outFile, filename)
	test.ExpectEquality(t, ret, 0)
	test.ExpectEquality(t, output, "")

	data, err := os.ReadFile(outFile)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Count(string(data), "\n"), 1)

	// start address
	ret, output, _ = launchTest(t, "", "trace", "-raw", "-pc", "$8002", "-steps", "1", filename)
	test.ExpectEquality(t, ret, 0)
	test.ExpectSuccess(t, strings.HasPrefix(output, "8002  E8        INX"))
}

func buildROM() []byte {
	data := make([]byte, 16+0x4000+0x2000)
	copy(data, []byte{'N', 'E', 'S', 0x1a, 1, 1, 0x01, 0x00})
	return data
}

func TestInfo(t *testing.T) {
	filename := writeFile(t, "game.nes", buildROM())

	ret, output, _ := launchTest(t, "", "info", filename)
	test.ExpectEquality(t, ret, 0)
	test.ExpectSuccess(t, strings.HasPrefix(output, "game\n"))
	test.ExpectSuccess(t, strings.Contains(output, "mapper 0, 1 PRG x 16k, 1 CHR x 8k, vertical mirroring"))
	test.ExpectSuccess(t, strings.Contains(output, "24592 bytes (expected 24592)"))
	test.ExpectSuccess(t, strings.Contains(output, "sha1 "))

	// not an iNES file
	filename = writeFile(t, "test.bin", program)
	ret, _, errOutput := launchTest(t, "", "info", filename)
	test.ExpectEquality(t, ret, 20)
	test.ExpectSuccess(t, strings.Contains(errOutput, "* error in INFO mode"))
}

func TestMonitorMode(t *testing.T) {
	filename := writeFile(t, "test.bin", program)

	ret, output, _ := launchTest(t, "sq", "monitor", "-raw", filename)
	test.ExpectEquality(t, ret, 0)
	test.ExpectSuccess(t, strings.Contains(output, "8002  E8        INX"))
}

func TestPerformanceMode(t *testing.T) {
	// JMP $8000
	filename := writeFile(t, "loop.bin", []byte{0x4c, 0x00, 0x80})

	ret, output, _ := launchTest(t, "", "performance", "-raw", "-leadtime", "10ms", "-duration", "50ms", filename)
	test.ExpectEquality(t, ret, 0)
	test.ExpectSuccess(t, strings.Contains(output, " fps ("))
}
