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

package cpu

// Run steps the CPU until the program stops.
func (mc *CPU) Run() error {
	return mc.RunWithCallback(nil)
}

// RunWithCallback steps the CPU until the program stops. The callback is
// called before every step and can stop the execution loop by returning
// false. The callback can be nil.
//
// The CPU is passed to the callback for the duration of the call only. It
// should not be retained.
func (mc *CPU) RunWithCallback(callback func(*CPU) (bool, error)) error {
	for {
		if callback != nil {
			cont, err := callback(mc)
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}
		}

		cont, err := mc.Step()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
