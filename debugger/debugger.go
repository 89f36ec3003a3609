// This file is part of Gopher Advance.
//
// Gopher Advance is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher Advance is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher Advance.  If not, see <https://www.gnu.org/licenses/>.

// Package debugger implements a terminal debugger for the emulation:
// instruction and frame stepping, register and memory inspection, PC
// breakpoints and a dump of the hardware graph.
package debugger

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/debugger/terminal"
	"github.com/jetsetilly/gopheradvance/hardware"
	"github.com/jetsetilly/gopheradvance/logger"
)

// Debugger is the command loop around an emulation.
type Debugger struct {
	gba  *hardware.GBA
	term terminal.Terminal

	breakpoints map[uint32]bool

	running bool
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type.
func NewDebugger(gba *hardware.GBA, term terminal.Terminal) *Debugger {
	dbg := &Debugger{
		gba:         gba,
		term:        term,
		breakpoints: make(map[uint32]bool),
	}

	gba.CPU.CheckBreakpoint = func(pc uint32) bool {
		return dbg.breakpoints[pc]
	}

	return dbg
}

// Start the debugger command loop. The function returns when the user
// quits or input is exhausted.
func (dbg *Debugger) Start() error {
	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	dbg.term.TermPrintLine(terminal.StyleHelp, "type HELP for the list of commands")

	dbg.running = true
	for dbg.running {
		input, err := dbg.term.TermRead("[gba] ")
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return curated.Errorf("debugger: %v", err)
		}

		if err := dbg.parseCommand(input); err != nil {
			dbg.term.TermPrintLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}

func (dbg *Debugger) parseCommand(input string) error {
	tokens := strings.Fields(strings.ToUpper(input))
	if len(tokens) == 0 {
		return nil
	}

	arg := func(i int) (uint32, error) {
		if i >= len(tokens) {
			return 0, curated.Errorf("debugger: not enough arguments for %s", tokens[0])
		}
		v, err := strconv.ParseUint(strings.TrimPrefix(tokens[i], "0X"), 16, 32)
		if err != nil {
			return 0, curated.Errorf("debugger: cannot parse argument: %s", tokens[i])
		}
		return uint32(v), nil
	}

	switch tokens[0] {
	case "HELP":
		dbg.term.TermPrintLine(terminal.StyleHelp, "STEP [n]       step n instructions (default 1)")
		dbg.term.TermPrintLine(terminal.StyleHelp, "FRAME          run one complete frame")
		dbg.term.TermPrintLine(terminal.StyleHelp, "RUN            run until a breakpoint is hit")
		dbg.term.TermPrintLine(terminal.StyleHelp, "REGISTERS      show the CPU registers")
		dbg.term.TermPrintLine(terminal.StyleHelp, "PEEK addr      read memory (hex address)")
		dbg.term.TermPrintLine(terminal.StyleHelp, "POKE addr val  write memory (hex)")
		dbg.term.TermPrintLine(terminal.StyleHelp, "BREAK addr     toggle a PC breakpoint")
		dbg.term.TermPrintLine(terminal.StyleHelp, "LOG            show the emulation log")
		dbg.term.TermPrintLine(terminal.StyleHelp, "MEMVIZ file    dump the hardware graph as graphviz dot")
		dbg.term.TermPrintLine(terminal.StyleHelp, "QUIT           leave the debugger")

	case "STEP":
		n := 1
		if len(tokens) > 1 {
			v, err := strconv.Atoi(tokens[1])
			if err != nil || v < 1 {
				return curated.Errorf("debugger: cannot parse step count: %s", tokens[1])
			}
			n = v
		}
		for i := 0; i < n; i++ {
			dbg.gba.CPU.Step()
		}
		dbg.printCPU()

	case "FRAME":
		if err := dbg.gba.TV.RunFrame(); err != nil {
			return err
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("frame %d", dbg.gba.TV.Frame()))

	case "RUN":
		dbg.gba.CPU.BreakpointHit = false
		for !dbg.gba.CPU.BreakpointHit {
			if err := dbg.gba.TV.RunFrame(); err != nil {
				return err
			}
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback,
			fmt.Sprintf("breakpoint at %08x", dbg.gba.CPU.ExecutingPC()))
		dbg.printCPU()

	case "REGISTERS", "CPU":
		dbg.printCPU()

	case "PEEK":
		addr, err := arg(1)
		if err != nil {
			return err
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback,
			fmt.Sprintf("%08x -> %08x", addr, dbg.gba.Mem.Peek32(addr)))

	case "POKE":
		addr, err := arg(1)
		if err != nil {
			return err
		}
		val, err := arg(2)
		if err != nil {
			return err
		}
		dbg.gba.Mem.Poke32(addr, val)

	case "BREAK":
		addr, err := arg(1)
		if err != nil {
			return err
		}
		if dbg.breakpoints[addr] {
			delete(dbg.breakpoints, addr)
			dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("breakpoint removed: %08x", addr))
		} else {
			dbg.breakpoints[addr] = true
			dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("breakpoint added: %08x", addr))
		}

	case "LOG":
		s := &strings.Builder{}
		logger.Write(s)
		for _, l := range strings.Split(strings.TrimRight(s.String(), "\n"), "\n") {
			dbg.term.TermPrintLine(terminal.StyleEcho, l)
		}

	case "MEMVIZ":
		if len(tokens) < 2 {
			return curated.Errorf("debugger: not enough arguments for %s", tokens[0])
		}
		filename := strings.Fields(input)[1]
		f, err := os.Create(filename)
		if err != nil {
			return curated.Errorf("debugger: %v", err)
		}
		defer f.Close()
		memviz.Map(f, dbg.gba)
		dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("hardware graph written to %s", filename))

	case "QUIT", "EXIT":
		dbg.running = false

	default:
		return curated.Errorf("debugger: unrecognised command: %s", tokens[0])
	}

	return nil
}

func (dbg *Debugger) printCPU() {
	for _, l := range strings.Split(dbg.gba.CPU.String(), "\n") {
		dbg.term.TermPrintLine(terminal.StyleCPU, l)
	}
}
