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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/govern"
	"github.com/famicore/famicore/hardware"
)

// Stopped is returned by Check() if the CPU stops before the end of the
// measurement period.
const Stopped = "performance: cpu stopped after %d instructions"

// sentinel error returned by the Run() loop
var timedOut = errors.New("performance timed out")

// Check the performance of the emulator with the console, which should have
// a cartridge attached and be ready to run.
//
// The emulation runs for the leadtime to allow the frame rate to settle
// before the measurement period begins.
func Check(output io.Writer, con *hardware.Console, profile Profile, leadtime time.Duration, duration time.Duration) error {
	var startFrame int
	var startCycles uint64
	var instructions int
	var total int

	runner := func() error {
		// signals false when the leadtime has elapsed and true when the
		// measurement has finished
		timerChan := make(chan bool, 2)

		time.AfterFunc(leadtime, func() {
			timerChan <- false
			time.AfterFunc(duration, func() {
				timerChan <- true
			})
		})

		measuring := false
		performanceBrake := 0

		err := con.Run(func() (govern.State, error) {
			total++
			if measuring {
				instructions++
			}

			performanceBrake++
			if performanceBrake < hardware.PerformanceBrake {
				return govern.Running, nil
			}
			performanceBrake = 0

			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, timedOut
				}
				measuring = true
				startFrame = con.PPU.Frame()
				startCycles = con.CPU.Cycles
			default:
			}

			return govern.Running, nil
		})
		if err == nil {
			return curated.Errorf(Stopped, total)
		}
		return err
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return err
	}

	numFrames := con.PPU.Frame() - startFrame
	cycles := con.CPU.Cycles - startCycles
	fps, accuracy := CalcFPS(numFrames, duration.Seconds())

	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, duration.Seconds(), accuracy)
	fmt.Fprintf(output, "%.2f MHz (%d instructions)\n", float64(cycles)/duration.Seconds()/1000000, instructions)

	return nil
}
