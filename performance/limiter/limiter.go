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

// Package limiter limits the emulation to a fixed frame rate.
//
// A new FPSLimiter is created with the required frame rate:
//
//	lim := limiter.NewFPSLimiter(performance.FramesPerSecond)
//	defer lim.Stop()
//
// The emulation is then stalled whenever a new frame begins:
//
//	con.Run(func() (govern.State, error) {
//		lim.CheckFrame(con.PPU.Frame())
//		return govern.Running, nil
//	})
//
// The limiter is only useful if the emulation is naturally faster than the
// requested rate.
package limiter

import (
	"time"
)

// FPSLimiter stalls the caller so that frames happen at a fixed rate.
type FPSLimiter struct {
	framesPerSecond float64
	ticker          *time.Ticker

	// the frame number seen by the previous call to CheckFrame()
	lastFrame int
}

// NewFPSLimiter is the preferred method of initialisation for the FPSLimiter
// type. The frame rate must be greater than zero.
func NewFPSLimiter(framesPerSecond float64) *FPSLimiter {
	lim := &FPSLimiter{
		framesPerSecond: framesPerSecond,
		ticker:          time.NewTicker(period(framesPerSecond)),
	}
	return lim
}

func period(framesPerSecond float64) time.Duration {
	return time.Duration(float64(time.Second) / framesPerSecond)
}

// SetLimit changes the frame rate.
func (lim *FPSLimiter) SetLimit(framesPerSecond float64) {
	lim.framesPerSecond = framesPerSecond
	lim.ticker.Reset(period(framesPerSecond))
}

// Limit returns the current frame rate.
func (lim *FPSLimiter) Limit() float64 {
	return lim.framesPerSecond
}

// Wait blocks until the next frame is due.
func (lim *FPSLimiter) Wait() {
	<-lim.ticker.C
}

// HasWaited returns true if the next frame is already due. It does not block.
func (lim *FPSLimiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}

// CheckFrame calls Wait() if the frame number is different to the frame
// number of the previous call.
func (lim *FPSLimiter) CheckFrame(frame int) {
	if frame == lim.lastFrame {
		return
	}
	lim.lastFrame = frame
	lim.Wait()
}

// Stop the limiter. The limiter should not be used after it has been stopped.
func (lim *FPSLimiter) Stop() {
	lim.ticker.Stop()
}
