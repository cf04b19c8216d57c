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

package logger

// Permission implementations decide whether a log request from the caller
// should create a new entry. The monitor for example, denies logging from
// the CPU while it is single stepping so that the log is not flooded.
type Permission interface {
	AllowLogging() bool
}

type allow bool

func (a allow) AllowLogging() bool {
	return bool(a)
}

// Allow indicates that the logging request should always be allowed.
var Allow Permission = allow(true)

// Deny indicates that the logging request should never be allowed.
var Deny Permission = allow(false)
