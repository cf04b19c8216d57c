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

package performance_test

import (
	"strings"
	"testing"
	"time"

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/hardware"
	"github.com/famicore/famicore/performance"
	"github.com/famicore/famicore/test"
)

func TestCheck(t *testing.T) {
	con, err := hardware.NewConsole(nil)
	test.DemandSuccess(t, err)

	// JMP $8000
	test.DemandSuccess(t, con.LoadProgram([]uint8{0x4c, 0x00, 0x80}))

	var output strings.Builder
	err = performance.Check(&output, con, performance.ProfileNone, 10*time.Millisecond, 50*time.Millisecond)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(output.String(), " fps ("))
	test.ExpectSuccess(t, strings.Contains(output.String(), " MHz ("))
}

func TestCheckStopped(t *testing.T) {
	con, err := hardware.NewConsole(nil)
	test.DemandSuccess(t, err)

	// INX; BRK
	test.DemandSuccess(t, con.LoadProgram([]uint8{0xe8, 0x00}))

	var output strings.Builder
	err = performance.Check(&output, con, performance.ProfileNone, 10*time.Millisecond, 50*time.Millisecond)
	test.ExpectSuccess(t, curated.Is(err, performance.Stopped))
	test.ExpectEquality(t, output.Len(), 0)
}

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(120, 2.0)
	test.ExpectEquality(t, fps, 60.0)
	test.ExpectSuccess(t, accuracy > 99.8 && accuracy < 99.9)
}

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU)

	p, err = performance.ParseProfileString("CPU, mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	p, err = performance.ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	p, err = performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	_, err = performance.ParseProfileString("trace")
	test.ExpectFailure(t, err)
}

func TestRunProfiler(t *testing.T) {
	var ran bool
	err := performance.RunProfiler(performance.ProfileNone, "test", func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)
}
