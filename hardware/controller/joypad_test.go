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

package controller_test

import (
	"testing"

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/hardware/controller"
	"github.com/famicore/famicore/test"
)

func TestReport(t *testing.T) {
	jp := controller.NewJoypad()
	jp.Press(controller.A)
	jp.Press(controller.Start)
	jp.Press(controller.Right)

	jp.Write(1)
	jp.Write(0)

	expected := []uint8{1, 0, 0, 1, 0, 0, 0, 1}
	for i, e := range expected {
		test.ExpectEquality(t, jp.Read(), e, i)
	}

	// report is exhausted
	test.ExpectEquality(t, jp.Read(), 1)
	test.ExpectEquality(t, jp.Read(), 1)

	// strobing resets the report
	jp.Write(1)
	jp.Write(0)
	test.ExpectEquality(t, jp.Read(), 1)
	test.ExpectEquality(t, jp.Read(), 0)
}

func TestStrobeHigh(t *testing.T) {
	jp := controller.NewJoypad()
	jp.Press(controller.A)
	jp.Write(1)

	// the A button is reported repeatedly while the strobe is high
	for i := 0; i < 10; i++ {
		test.ExpectEquality(t, jp.Read(), 1)
	}

	jp.Release(controller.A)
	test.ExpectEquality(t, jp.Read(), 0)
	test.ExpectFailure(t, jp.IsPressed(controller.A))
}

func TestParseButton(t *testing.T) {
	b, err := controller.ParseButton("start")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, controller.Start)
	test.ExpectEquality(t, b.String(), "Start")

	_, err = controller.ParseButton("turbo")
	test.ExpectSuccess(t, curated.Is(err, controller.UnknownButton))
}
