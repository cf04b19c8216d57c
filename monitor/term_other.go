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

//go:build !unix

package monitor

import (
	"errors"
	"os"
)

// raw mode is only supported on unix systems. keys will need to be followed
// by return
type rawTerm struct{}

func newRawTerm(_ *os.File) (*rawTerm, error) {
	return nil, errors.New("raw mode not supported")
}

func (rt *rawTerm) rawMode() error {
	return nil
}

func (rt *rawTerm) canonicalMode() error {
	return nil
}
