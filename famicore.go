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

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/famicore/famicore/cartridgeloader"
	"github.com/famicore/famicore/disassembly"
	"github.com/famicore/famicore/hardware"
	"github.com/famicore/famicore/hardware/cpu"
	"github.com/famicore/famicore/logger"
	"github.com/famicore/famicore/modalflag"
	"github.com/famicore/famicore/monitor"
	"github.com/famicore/famicore/performance"
	"github.com/famicore/famicore/performance/limiter"
	"github.com/famicore/famicore/scripting"
	"github.com/famicore/famicore/statsview"
	"github.com/famicore/famicore/version"
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// launch returns the exit value for the program
func launch(args []string, input io.Reader, output io.Writer, errOutput io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "TRACE", "MONITOR", "INFO", "PERFORMANCE")

	log := md.AddBool("log", false, "echo log to stderr")
	stats := md.AddBool("statsview", false, "launch stats server (requires statsview build tag)")
	showVersion := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(errOutput, "* error: %v\n", err)
		return 10
	}

	if *showVersion {
		fmt.Fprintln(output, version.String())
		return 0
	}

	if *log {
		logger.SetEcho(errOutput)
		defer logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(output)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)

	case "TRACE":
		err = trace(md, output)

	case "MONITOR":
		err = monitorMode(md, input, output)

	case "INFO":
		err = info(md, output)

	case "PERFORMANCE":
		err = perform(md, output)
	}

	if err != nil {
		fmt.Fprintf(errOutput, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// the single argument of every mode is the cartridge file. the raw flag loads
// the file as a program rather than an iNES file
func newConsole(md *modalflag.Modes, raw bool) (*hardware.Console, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("cartridge required for %s mode", md)
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	cl := cartridgeloader.NewLoader(md.GetArg(0))

	if raw {
		if err := cl.Load(); err != nil {
			return nil, err
		}
		con, err := hardware.NewConsole(nil)
		if err != nil {
			return nil, err
		}
		if err := con.LoadProgram(cl.Data); err != nil {
			return nil, err
		}
		logger.Logf(logger.Allow, "famicore", "loaded %s as a raw program (%d bytes)", cl.ShortName(), len(cl.Data))
		return con, nil
	}

	cart, err := cl.Cartridge()
	if err != nil {
		return nil, err
	}

	return hardware.NewConsole(cart)
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	raw := md.AddBool("raw", false, "load file as a raw program at $8000")
	brk := md.AddBool("brk", true, "BRK instruction halts the CPU")
	script := md.AddString("script", "", "lua script to run alongside the emulation")
	maxSteps := md.AddUint64("steps", 0, "maximum number of instructions (0 = until the CPU stops)")
	viz := md.AddString("memviz", "", "write CPU state graph to file on exit")
	fpsCap := md.AddBool("fpscap", false, "limit emulation to NTSC frame rate")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	con, err := newConsole(md, *raw)
	if err != nil {
		return err
	}
	con.CPU.HaltOnBRK = *brk

	var scr *scripting.Script
	if *script != "" {
		scr, err = scripting.NewScript(con, *script)
		if err != nil {
			return err
		}
		defer scr.Close()
	}

	var lim *limiter.FPSLimiter
	if *fpsCap {
		lim = limiter.NewFPSLimiter(performance.FramesPerSecond)
		defer lim.Stop()
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	var steps uint64
	performanceBrake := 0

	err = con.RunWithCallback(func(mc *cpu.CPU) (bool, error) {
		if *maxSteps > 0 && steps >= *maxSteps {
			return false, nil
		}
		steps++

		performanceBrake++
		if performanceBrake >= hardware.PerformanceBrake {
			performanceBrake = 0
			select {
			case <-intChan:
				return false, nil
			default:
			}
		}

		if lim != nil {
			lim.CheckFrame(con.PPU.Frame())
		}

		if scr != nil {
			return scr.Step()
		}

		return true, nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s\n", con.CPU)
	fmt.Fprintf(output, "%d instructions, %d cycles, %d frames, %d NMIs\n", steps, con.CPU.Cycles, con.PPU.Frame(), con.NMICount)

	if *viz != "" {
		f, err := os.Create(*viz)
		if err != nil {
			return err
		}
		defer f.Close()
		monitor.WriteMemviz(f, con.CPU)
	}

	return nil
}

func trace(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	raw := md.AddBool("raw", false, "load file as a raw program at $8000")
	brk := md.AddBool("brk", true, "BRK instruction halts the CPU")
	pc := md.AddAddress("pc", 0, "start address (0 = use the reset vector)")
	maxSteps := md.AddUint64("steps", 0, "maximum number of instructions (0 = until the CPU stops)")
	outFile := md.AddString("o", "", "write trace to file rather than stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	con, err := newConsole(md, *raw)
	if err != nil {
		return err
	}
	con.CPU.HaltOnBRK = *brk

	if *pc != 0 {
		con.CPU.PC.Load(*pc)
	}

	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		output = f
	}

	w := bufio.NewWriter(output)
	defer w.Flush()

	var steps uint64
	return con.RunWithCallback(func(mc *cpu.CPU) (bool, error) {
		if *maxSteps > 0 && steps >= *maxSteps {
			return false, nil
		}
		steps++

		if _, err := fmt.Fprintln(w, disassembly.Trace(mc, con.PPU)); err != nil {
			return false, err
		}
		return true, nil
	})
}

func monitorMode(md *modalflag.Modes, input io.Reader, output io.Writer) error {
	md.NewMode()

	raw := md.AddBool("raw", false, "load file as a raw program at $8000")
	viz := md.AddString("memviz", "famicore_cpu.dot", "file written by the memviz command")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	con, err := newConsole(md, *raw)
	if err != nil {
		return err
	}

	mon := monitor.NewMonitor(con, input, output)
	mon.VizPath = *viz

	return mon.Run()
}

func info(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one cartridge required for %s mode", md)
	}

	cl := cartridgeloader.NewLoader(md.GetArg(0))
	if err := cl.Load(); err != nil {
		return err
	}

	hdr, err := cartridgeloader.ParseHeader(cl.Data)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s\n", cl.ShortName())
	fmt.Fprintf(output, "  %s\n", hdr)
	fmt.Fprintf(output, "  %d bytes (expected %d)\n", len(cl.Data), hdr.Size())
	fmt.Fprintf(output, "  sha1 %s\n", cl.Hash)

	return nil
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	raw := md.AddBool("raw", false, "load file as a raw program at $8000")
	duration := md.AddString("duration", "5s", "run duration")
	leadtime := md.AddString("leadtime", "2s", "time to run before measurement begins")
	profile := md.AddString("profile", "none", "create profiles: cpu, mem, all")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	dur, err := time.ParseDuration(*duration)
	if err != nil {
		return err
	}

	lead, err := time.ParseDuration(*leadtime)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	con, err := newConsole(md, *raw)
	if err != nil {
		return err
	}

	return performance.Check(output, con, prf, lead, dur)
}
