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

package scripting

import (
	"path/filepath"

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/hardware"
	"github.com/famicore/famicore/hardware/controller"
	"github.com/famicore/famicore/hardware/cpu"
	"github.com/famicore/famicore/logger"
	lua "github.com/yuin/gopher-lua"
)

// ScriptError wraps errors raised by the Lua interpreter.
const ScriptError = "scripting: %v"

// NoStepFunction is returned by NewScript() if the script does not define a
// global step() function.
const NoStepFunction = "scripting: %s does not define a step() function"

// Script is a loaded Lua script attached to a console.
type Script struct {
	con      *hardware.Console
	filename string

	state *lua.LState
	step  lua.LValue
	regs  *lua.LTable
}

// NewScript loads and runs the top level of the Lua script in filename. The
// script must define a step() function. Close() should be called when the
// script is no longer required.
func NewScript(con *hardware.Console, filename string) (*Script, error) {
	scr := &Script{
		con:      con,
		filename: filename,
		state:    lua.NewState(),
	}

	scr.regs = scr.state.NewTable()
	scr.state.SetGlobal("cpu", scr.regs)
	scr.state.SetGlobal("peek", scr.state.NewFunction(scr.peek))
	scr.state.SetGlobal("poke", scr.state.NewFunction(scr.poke))
	scr.state.SetGlobal("press", scr.state.NewFunction(scr.press))
	scr.state.SetGlobal("release", scr.state.NewFunction(scr.release))
	scr.state.SetGlobal("log", scr.state.NewFunction(scr.log))

	scr.refresh()

	if err := scr.state.DoFile(filename); err != nil {
		scr.state.Close()
		return nil, curated.Errorf(ScriptError, err)
	}

	scr.step = scr.state.GetGlobal("step")
	if scr.step.Type() != lua.LTFunction {
		scr.state.Close()
		return nil, curated.Errorf(NoStepFunction, filename)
	}

	logger.Logf(logger.Allow, "scripting", "loaded %s", filename)

	return scr, nil
}

// Close releases the Lua interpreter.
func (scr *Script) Close() {
	scr.state.Close()
}

func (scr *Script) String() string {
	return filepath.Base(scr.filename)
}

// Step calls the script's step() function. Returns false if the script wants
// the emulation to stop.
func (scr *Script) Step() (bool, error) {
	scr.refresh()

	err := scr.state.CallByParam(lua.P{
		Fn:      scr.step,
		NRet:    1,
		Protect: true,
	})
	if err != nil {
		return false, curated.Errorf(ScriptError, err)
	}

	ret := scr.state.Get(-1)
	scr.state.Pop(1)

	return ret != lua.LFalse, nil
}

// Hook has the signature required by hardware.Console.RunWithCallback().
func (scr *Script) Hook(_ *cpu.CPU) (bool, error) {
	return scr.Step()
}

func (scr *Script) refresh() {
	mc := scr.con.CPU
	scr.regs.RawSetString("a", lua.LNumber(mc.A.Value()))
	scr.regs.RawSetString("x", lua.LNumber(mc.X.Value()))
	scr.regs.RawSetString("y", lua.LNumber(mc.Y.Value()))
	scr.regs.RawSetString("p", lua.LNumber(mc.Status.Value()))
	scr.regs.RawSetString("sp", lua.LNumber(mc.SP.Value()))
	scr.regs.RawSetString("pc", lua.LNumber(mc.PC.Address()))
	scr.regs.RawSetString("cycles", lua.LNumber(mc.Cycles))
}

func (scr *Script) peek(L *lua.LState) int {
	address := L.CheckInt(1)
	v, err := scr.con.Mem.Peek(uint16(address))
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	address := L.CheckInt(1)
	value := L.CheckInt(2)
	if err := scr.con.Mem.Poke(uint16(address), uint8(value)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) button(L *lua.LState) (controller.Button, bool) {
	b, err := controller.ParseButton(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0, false
	}
	return b, true
}

func (scr *Script) press(L *lua.LState) int {
	if b, ok := scr.button(L); ok {
		scr.con.Joypad.Press(b)
	}
	return 0
}

func (scr *Script) release(L *lua.LState) int {
	if b, ok := scr.button(L); ok {
		scr.con.Joypad.Release(b)
	}
	return 0
}

func (scr *Script) log(L *lua.LState) int {
	logger.Log(logger.Allow, scr.String(), L.CheckString(1))
	return 0
}
