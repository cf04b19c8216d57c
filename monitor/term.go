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

//go:build unix

package monitor

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// rawTerm switches a terminal between raw and canonical mode.
type rawTerm struct {
	fd uintptr

	canAttr unix.Termios
	rawAttr unix.Termios
}

func newRawTerm(f *os.File) (*rawTerm, error) {
	rt := &rawTerm{fd: f.Fd()}
	if err := termios.Tcgetattr(rt.fd, &rt.canAttr); err != nil {
		return nil, err
	}
	rt.rawAttr = rt.canAttr
	termios.Cfmakeraw(&rt.rawAttr)
	return rt, nil
}

func (rt *rawTerm) rawMode() error {
	return termios.Tcsetattr(rt.fd, termios.TCIFLUSH, &rt.rawAttr)
}

func (rt *rawTerm) canonicalMode() error {
	return termios.Tcsetattr(rt.fd, termios.TCIFLUSH, &rt.canAttr)
}
