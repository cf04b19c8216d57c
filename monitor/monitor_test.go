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

package monitor_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/famicore/famicore/hardware"
	"github.com/famicore/famicore/monitor"
	"github.com/famicore/famicore/test"
)

// INX x5; BRK
var program = []uint8{0xe8, 0xe8, 0xe8, 0xe8, 0xe8, 0x00}

func runMonitor(t *testing.T, keys string) (*hardware.Console, *monitor.Monitor, string) {
	t.Helper()

	con, err := hardware.NewConsole(nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, con.LoadProgram(program))

	var output bytes.Buffer
	mon := monitor.NewMonitor(con, strings.NewReader(keys), &output)
	mon.VizPath = filepath.Join(t.TempDir(), "cpu.dot")
	test.DemandSuccess(t, mon.Run())

	return con, mon, output.String()
}

func TestStep(t *testing.T) {
	con, _, output := runMonitor(t, "ss q")
	test.ExpectEquality(t, con.CPU.X.Value(), 3)

	// the initial trace line and one after each step
	test.ExpectSuccess(t, strings.Contains(output, "8000  E8        INX "))
	test.ExpectSuccess(t, strings.Contains(output, "8003  E8        INX "))
	test.ExpectEquality(t, strings.Count(output, " INX "), 4)
}

func TestUndo(t *testing.T) {
	con, _, output := runMonitor(t, "sssuuq")
	test.ExpectEquality(t, con.CPU.X.Value(), 1)
	test.ExpectEquality(t, con.CPU.PC.Address(), 0x8001)
	test.ExpectEquality(t, con.CPU.Cycles, 9)

	// more undos than steps
	con, _, output = runMonitor(t, "suuq")
	test.ExpectEquality(t, con.CPU.X.Value(), 0)
	test.ExpectSuccess(t, strings.Contains(output, "nothing to undo"))
}

func TestRun(t *testing.T) {
	con, _, output := runMonitor(t, "rq")
	test.ExpectEquality(t, con.CPU.X.Value(), 5)
	test.ExpectSuccess(t, strings.Contains(output, "cpu stopped"))
}

// an exhausted input ends the monitor without a quit key
func TestEndOfInput(t *testing.T) {
	con, _, _ := runMonitor(t, "s")
	test.ExpectEquality(t, con.CPU.X.Value(), 1)
}

func TestInterrupts(t *testing.T) {
	// the interrupt disable flag is set after reset
	con, _, output := runMonitor(t, "iq")
	test.ExpectSuccess(t, strings.Contains(output, "IRQ ignored"))
	test.ExpectEquality(t, con.CPU.PC.Address(), 0x8000)

	// the NMI vector of a loaded program is zero
	con, _, output = runMonitor(t, "nq")
	test.ExpectSuccess(t, strings.Contains(output, "NMI delivered"))
	test.ExpectEquality(t, con.CPU.PC.Address(), 0x0000)
	test.ExpectEquality(t, con.CPU.SP.Value(), 0xfa)
}

func TestDisassemble(t *testing.T) {
	_, _, output := runMonitor(t, "dq")
	test.ExpectSuccess(t, strings.Contains(output, "8004  E8        INX"))
	test.ExpectSuccess(t, strings.Contains(output, "8005  00        BRK"))
}

func TestMemviz(t *testing.T) {
	_, mon, output := runMonitor(t, "smq")
	test.ExpectSuccess(t, strings.Contains(output, "cpu state written to"))

	data, err := os.ReadFile(mon.VizPath)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "digraph"))
}

func TestWriteMemviz(t *testing.T) {
	con, err := hardware.NewConsole(nil)
	test.DemandSuccess(t, err)

	var b bytes.Buffer
	monitor.WriteMemviz(&b, con.CPU)
	test.ExpectSuccess(t, b.Len() > 0)
}
