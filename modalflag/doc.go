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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes and allows a different set of flags for
// each mode.
//
// Arguments are given to the Modes type with NewArgs() and then parsed with
// Parse(). Flags for the top level are added before the first call to Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "TRACE", "MONITOR", "INFO")
//	echo := md.AddBool("log", false, "echo log to stderr")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// The first sub-mode is the default mode. Sub-mode comparisons are case
// insensitive and Mode() always returns the name in upper case. Once the mode
// has been decided, NewMode() begins a new set of flags for the mode and
// Parse() is called again with the remaining arguments:
//
//	switch md.Mode() {
//	case "TRACE":
//		md.NewMode()
//		pc := md.AddAddress("pc", 0, "start address (zero uses the reset vector)")
//		if p, err := md.Parse(); p != modalflag.ParseContinue {
//			return err
//		}
//		trace(md.GetArg(0), *pc)
//	}
//
// Help is handled automatically. The help message lists the flags for the
// current mode, the available sub-modes and any text given to
// AdditionalHelp().
package modalflag
