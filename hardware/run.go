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

package hardware

import (
	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/govern"
	"github.com/famicore/famicore/hardware/cpu"
)

// While the continueCheck() function only runs at the end of a CPU
// instruction, it can still be expensive to do a full continue check every
// time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// UnsupportedState is the error pattern used when the continueCheck()
// function returns a state the run loop does not understand.
const UnsupportedState = "console: unsupported emulation state (%s) in Run() function"

// Run sets the emulation running as quickly as possible. The emulation stops
// when the CPU stops or when continueCheck() returns govern.Ending. A nil
// continueCheck() runs until the CPU stops.
func (con *Console) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending {
		switch state {
		case govern.Running:
			cont, err := con.Step(nil)
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}
		case govern.Paused:
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunWithCallback runs the emulation, calling f() before every instruction.
// The emulation stops when the CPU stops or f() returns false.
func (con *Console) RunWithCallback(f func(*cpu.CPU) (bool, error)) error {
	for {
		if err := con.pollNMI(); err != nil {
			return err
		}

		cont, err := f(con.CPU)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}

		cont, err = con.CPU.Step()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

// RunForFrameCount sets emulator running for the specified number of frames.
// Useful for performance measurements and for scripted tests.
func (con *Console) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	frameNum := con.PPU.Frame()
	targetFrame := frameNum + numFrames

	state := govern.Running
	for frameNum != targetFrame && state != govern.Ending {
		cont, err := con.Step(nil)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}

		frameNum = con.PPU.Frame()

		state, err = continueCheck(frameNum)
		if err != nil {
			return err
		}
	}

	return nil
}
