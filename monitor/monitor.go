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

package monitor

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/famicore/famicore/disassembly"
	"github.com/famicore/famicore/hardware"
	"github.com/famicore/famicore/hardware/cpu"
	"github.com/famicore/famicore/logger"
	"golang.org/x/term"
)

// the maximum number of steps that can be undone
const maxUndo = 100

// the number of lines shown by the disassemble and log commands when the size
// of the output terminal is unknown
const defaultLines = 8

const keyInterrupt = 3

// Monitor is an interactive single-step monitor for a console.
type Monitor struct {
	con *hardware.Console

	input  io.Reader
	output io.Writer

	// the output is a terminal in raw mode
	raw bool

	// the file written by the memviz command
	VizPath string

	history []*hardware.State

	keys chan byte
	done chan struct{}
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(con *hardware.Console, input io.Reader, output io.Writer) *Monitor {
	return &Monitor{
		con:     con,
		input:   input,
		output:  output,
		VizPath: "famicore_cpu.dot",
	}
}

func isTerminal(f any) (*os.File, bool) {
	if f, ok := f.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return f, true
	}
	return nil, false
}

// Run the monitor until the quit key is pressed or the input is exhausted.
func (mon *Monitor) Run() error {
	if f, ok := isTerminal(mon.input); ok {
		rt, err := newRawTerm(f)
		if err == nil {
			if err := rt.rawMode(); err != nil {
				return err
			}
			defer rt.canonicalMode()
			mon.raw = true
		} else {
			logger.Logf(logger.Allow, "monitor", "input remains in canonical mode: %v", err)
		}
	}

	mon.keys = make(chan byte)
	mon.done = make(chan struct{})
	defer close(mon.done)
	go mon.readKeys()

	mon.help()
	mon.trace()

	for {
		k, ok := <-mon.keys
		if !ok {
			return nil
		}
		if quit := mon.command(k); quit {
			return nil
		}
	}
}

func (mon *Monitor) readKeys() {
	defer close(mon.keys)

	b := make([]byte, 1)
	for {
		n, err := mon.input.Read(b)
		if n > 0 {
			select {
			case mon.keys <- b[0]:
			case <-mon.done:
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// prints a single line. raw mode terminals need an explicit carriage return
func (mon *Monitor) print(s string, a ...any) {
	s = fmt.Sprintf(s, a...)
	if mon.raw {
		s = strings.ReplaceAll(s, "\n", "\r\n")
		io.WriteString(mon.output, s)
		io.WriteString(mon.output, "\r\n")
		return
	}
	io.WriteString(mon.output, s)
	io.WriteString(mon.output, "\n")
}

// the number of lines available in the output terminal
func (mon *Monitor) lines() int {
	if f, ok := isTerminal(mon.output); ok {
		if _, height, err := term.GetSize(int(f.Fd())); err == nil && height > 2 {
			return height - 2
		}
	}
	return defaultLines
}

func (mon *Monitor) trace() {
	mon.print("%s", disassembly.Trace(mon.con.CPU, mon.con.PPU))
}

func (mon *Monitor) help() {
	mon.print("s/space: step  u: undo  r: run  n: nmi  i: irq  d: disasm  m: memviz  l: log  q: quit")
}

// returns true if the monitor should quit
func (mon *Monitor) command(k byte) bool {
	switch k {
	case 'q', keyInterrupt:
		return true

	case 's', ' ':
		mon.step()
		mon.trace()

	case 'u':
		if len(mon.history) == 0 {
			mon.print("nothing to undo")
			break
		}
		mon.con.Plumb(mon.history[len(mon.history)-1])
		mon.history = mon.history[:len(mon.history)-1]
		mon.trace()

	case 'r':
		mon.run()
		mon.trace()

	case 'n':
		mon.interrupt(cpu.NMI)
		mon.trace()

	case 'i':
		mon.interrupt(cpu.IRQ)
		mon.trace()

	case 'd':
		mc := mon.con.CPU
		regs := disassembly.Registers{X: mc.X.Value(), Y: mc.Y.Value()}
		for _, e := range disassembly.Linear(mc, mc.PC.Address(), mon.lines(), regs) {
			mon.print("%s", e)
		}

	case 'm':
		mon.memviz()

	case 'l':
		var b bytes.Buffer
		logger.Tail(&b, mon.lines())
		if b.Len() == 0 {
			mon.print("log is empty")
			break
		}
		mon.print("%s", strings.TrimSuffix(b.String(), "\n"))

	case 'h', '?':
		mon.help()
	}

	return false
}

// returns false if the CPU has stopped
func (mon *Monitor) step() bool {
	mon.history = append(mon.history, mon.con.Snapshot())
	if len(mon.history) > maxUndo {
		mon.history = mon.history[1:]
	}

	cont, err := mon.con.Step(nil)
	if err != nil {
		mon.print("* %v", err)
		return false
	}
	if !cont {
		if mon.con.CPU.Killed {
			mon.print("cpu killed")
		} else {
			mon.print("cpu stopped")
		}
	}
	return cont
}

// the key that stops the run is discarded
func (mon *Monitor) run() {
	var performanceFilter int
	for mon.step() {
		performanceFilter++
		if performanceFilter >= hardware.PerformanceBrake {
			performanceFilter = 0
			select {
			case <-mon.keys:
				mon.print("halted")
				return
			default:
			}
		}
	}
}

func (mon *Monitor) interrupt(i cpu.Interrupt) {
	mon.history = append(mon.history, mon.con.Snapshot())

	ok, err := mon.con.CPU.Interrupt(i)
	switch {
	case err != nil:
		mon.print("* %v", err)
	case ok:
		mon.print("%s delivered", i.Name)
	default:
		mon.print("%s ignored (interrupt disable is set)", i.Name)
	}
}

func (mon *Monitor) memviz() {
	f, err := os.Create(mon.VizPath)
	if err != nil {
		mon.print("* %v", err)
		return
	}
	defer f.Close()

	WriteMemviz(f, mon.con.CPU)
	mon.print("cpu state written to %s", mon.VizPath)
}
