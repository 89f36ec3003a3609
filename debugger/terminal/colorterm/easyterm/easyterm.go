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

// Package easyterm is a wrapper around the low level terminal attribute
// handling of the pkg/term module. It allows a posix terminal to be
// flipped between canonical mode and cbreak mode, which is all the colour
// terminal needs for its line editing.
package easyterm

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// EasyTerm is the main container for posix terminals. Usually embedded in
// other struct types.
type EasyTerm struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// Initialise the terminal, remembering the attributes of canonical mode so
// they can be restored.
func (et *EasyTerm) Initialise(input *os.File, output *os.File) error {
	if input == nil || output == nil {
		return fmt.Errorf("easyterm: terminal requires both an input and an output file")
	}

	et.input = input
	et.output = output

	if err := termios.Tcgetattr(et.input.Fd(), &et.canAttr); err != nil {
		return fmt.Errorf("easyterm: %v", err)
	}

	et.cbreakAttr = et.canAttr
	termios.Cfmakecbreak(&et.cbreakAttr)

	return nil
}

// CleanUp returns the terminal to canonical mode.
func (et *EasyTerm) CleanUp() {
	et.CanonicalMode()
}

// CanonicalMode puts the terminal into normal, everyday canonical mode.
func (et *EasyTerm) CanonicalMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCIFLUSH, &et.canAttr)
}

// CBreakMode puts the terminal into cbreak mode: input is available one
// character at a time with echo disabled.
func (et *EasyTerm) CBreakMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCIFLUSH, &et.cbreakAttr)
}

// Print to the terminal's output file.
func (et *EasyTerm) Print(format string, args ...interface{}) {
	fmt.Fprintf(et.output, format, args...)
}

// ReadRune reads one character of input while in cbreak mode.
func (et *EasyTerm) ReadRune() (rune, error) {
	b := make([]byte, 1)
	if _, err := et.input.Read(b); err != nil {
		return 0, err
	}
	return rune(b[0]), nil
}

// IsTerminal returns true if the file is attached to a real terminal.
func IsTerminal(f *os.File) bool {
	var attr unix.Termios
	return termios.Tcgetattr(f.Fd(), &attr) == nil
}
