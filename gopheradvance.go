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

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/jetsetilly/gopheradvance/cartridgeloader"
	"github.com/jetsetilly/gopheradvance/debugger"
	"github.com/jetsetilly/gopheradvance/debugger/terminal"
	"github.com/jetsetilly/gopheradvance/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopheradvance/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopheradvance/gui/sdlplay"
	"github.com/jetsetilly/gopheradvance/hardware"
	"github.com/jetsetilly/gopheradvance/logger"
	"github.com/jetsetilly/gopheradvance/performance"
	"github.com/jetsetilly/gopheradvance/version"
	"github.com/jetsetilly/gopheradvance/wavwriter"
)

func init() {
	// SDL requires the main OS thread
	runtime.LockOSThread()
}

func main() {
	ver, rev := version.Version()
	logger.Logf(logger.Allow, version.ApplicationName, "%s", ver)
	logger.Logf(logger.Allow, version.ApplicationName, "%s", rev)

	args := os.Args[1:]

	// the mode is the first argument, unless the first argument looks like
	// a flag or a filename, in which case the default run mode applies
	var mode string
	if len(args) > 0 {
		mode = strings.ToUpper(args[0])
	}

	var err error

	switch mode {
	case "RUN", "PLAY":
		err = play(args[1:])
	case "DEBUG":
		err = debug(args[1:])
	case "PERFORMANCE":
		err = perform(args[1:])
	case "VERSION":
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, ver, rev)
	default:
		mode = "RUN"
		err = play(args)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", strings.ToLower(mode), err)
		os.Exit(20)
	}
}

// commandLineOptions collates the flags shared by the execution modes.
type commandLineOptions struct {
	bios     string
	skipBios bool
	log      bool
	saveFile string
}

func addCommonFlags(flgs *flag.FlagSet, opts *commandLineOptions) {
	flgs.StringVar(&opts.bios, "bios", "", "path to a 16k BIOS image")
	flgs.BoolVar(&opts.skipBios, "skipbios", true, "boot directly into the cartridge")
	flgs.BoolVar(&opts.log, "log", false, "echo the emulation log to stdout")
	flgs.StringVar(&opts.saveFile, "save", "", "path for persisted save data (default: cartridge name + .sav)")
}

// create the emulation from the parsed command line. the single remaining
// argument is the cartridge file.
func create(flgs *flag.FlagSet, opts *commandLineOptions) (*hardware.GBA, error) {
	if opts.log {
		logger.SetEcho(os.Stdout, true)
	}

	if flgs.NArg() != 1 {
		return nil, fmt.Errorf("a single cartridge file is required")
	}

	loader, err := cartridgeloader.NewLoaderFromFilename(flgs.Arg(0))
	if err != nil {
		return nil, err
	}

	gba, err := hardware.NewGBA(loader, hardware.Preferences{
		BiosFile: opts.bios,
		SkipBios: opts.skipBios,
	})
	if err != nil {
		return nil, err
	}

	if opts.saveFile == "" {
		opts.saveFile = flgs.Arg(0) + ".sav"
	}
	if err := gba.LoadSave(opts.saveFile); err != nil {
		return nil, err
	}

	return gba, nil
}

func play(args []string) error {
	var opts commandLineOptions
	var scale int
	var fpsCap bool
	var wavFile string

	flgs := flag.NewFlagSet("run", flag.ExitOnError)
	addCommonFlags(flgs, &opts)
	flgs.IntVar(&scale, "scale", 3, "window scale factor")
	flgs.BoolVar(&fpsCap, "fpscap", true, "cap the frame rate at the console's natural rate")
	flgs.StringVar(&wavFile, "wav", "", "record the mixer output to a WAV file")
	if err := flgs.Parse(args); err != nil {
		return err
	}

	gba, err := create(flgs, &opts)
	if err != nil {
		return err
	}

	var recorder sdlplay.AudioRecorder
	if wavFile != "" {
		ww, err := wavwriter.NewWavWriter(wavFile, int(gba.Sound.Frequency()))
		if err != nil {
			return err
		}
		recorder = ww
	}

	if err := sdlplay.Play(gba, scale, fpsCap, recorder); err != nil {
		return err
	}

	return gba.WriteSave(opts.saveFile)
}

func debug(args []string) error {
	var opts commandLineOptions

	flgs := flag.NewFlagSet("debug", flag.ExitOnError)
	addCommonFlags(flgs, &opts)
	if err := flgs.Parse(args); err != nil {
		return err
	}

	gba, err := create(flgs, &opts)
	if err != nil {
		return err
	}

	var term terminal.Terminal
	if colorterm.IsAvailable() {
		term = &colorterm.ColorTerminal{}
	} else {
		term = &plainterm.PlainTerminal{}
	}

	dbg := debugger.NewDebugger(gba, term)
	if err := dbg.Start(); err != nil {
		return err
	}

	return gba.WriteSave(opts.saveFile)
}

func perform(args []string) error {
	var opts commandLineOptions
	var frames int
	var statsServer bool

	flgs := flag.NewFlagSet("performance", flag.ExitOnError)
	addCommonFlags(flgs, &opts)
	flgs.IntVar(&frames, "frames", 600, "number of frames to run")
	flgs.BoolVar(&statsServer, "statsview", false, "run the live statistics server during the check")
	if err := flgs.Parse(args); err != nil {
		return err
	}

	gba, err := create(flgs, &opts)
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, gba, frames, statsServer)
}
