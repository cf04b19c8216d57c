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

package limiter_test

import (
	"testing"
	"time"

	"github.com/famicore/famicore/performance/limiter"
	"github.com/famicore/famicore/test"
)

func TestLimiter(t *testing.T) {
	lim := limiter.NewFPSLimiter(100)
	defer lim.Stop()
	test.ExpectEquality(t, lim.Limit(), 100.0)

	start := time.Now()
	for range 5 {
		lim.Wait()
	}
	test.ExpectSuccess(t, time.Since(start) >= 40*time.Millisecond)
}

func TestCheckFrame(t *testing.T) {
	lim := limiter.NewFPSLimiter(50)
	defer lim.Stop()

	// the same frame number never waits
	start := time.Now()
	for range 100 {
		lim.CheckFrame(0)
	}
	test.ExpectSuccess(t, time.Since(start) < 20*time.Millisecond)

	// a change of frame waits for the next tick
	start = time.Now()
	lim.CheckFrame(1)
	lim.CheckFrame(2)
	test.ExpectSuccess(t, time.Since(start) >= 20*time.Millisecond)
}

func TestSetLimit(t *testing.T) {
	lim := limiter.NewFPSLimiter(1)
	defer lim.Stop()
	test.ExpectFailure(t, lim.HasWaited())

	lim.SetLimit(1000)
	test.ExpectEquality(t, lim.Limit(), 1000.0)

	time.Sleep(10 * time.Millisecond)
	test.ExpectSuccess(t, lim.HasWaited())
}
