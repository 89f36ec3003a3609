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

// Package colorterm implements the Terminal interface for posix terminals
// with ANSI colour and simple line editing.
package colorterm

import (
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/gopheradvance/debugger/terminal"
	"github.com/jetsetilly/gopheradvance/debugger/terminal/colorterm/ansi"
	"github.com/jetsetilly/gopheradvance/debugger/terminal/colorterm/easyterm"
)

// ColorTerminal implements the Terminal interface for ANSI terminals.
type ColorTerminal struct {
	easyterm.EasyTerm

	// the most recently entered command, recalled with the up arrow
	lastInput string
}

// IsAvailable returns true if stdin is attached to a real terminal.
func IsAvailable() bool {
	return easyterm.IsTerminal(os.Stdin)
}

// Initialise implements the terminal.Terminal interface.
func (ct *ColorTerminal) Initialise() error {
	return ct.EasyTerm.Initialise(os.Stdin, os.Stdout)
}

// CleanUp implements the terminal.Terminal interface.
func (ct *ColorTerminal) CleanUp() {
	ct.EasyTerm.CleanUp()
}

// TermRead implements the terminal.Terminal interface. Input is gathered
// in cbreak mode, which gives us backspace handling and single-keystroke
// recall of the previous command.
func (ct *ColorTerminal) TermRead(prompt string) (string, error) {
	ct.CBreakMode()
	defer ct.CanonicalMode()

	input := strings.Builder{}

	redraw := func() {
		ct.Print("\r%s%s%s%s%s", ansi.ClearLine, ansi.PenBold, prompt, ansi.NormalMode, input.String())
	}
	redraw()

	for {
		r, err := ct.ReadRune()
		if err != nil {
			if err == io.EOF {
				ct.Print("\n")
				return input.String(), nil
			}
			return "", err
		}

		switch r {
		case '\n', '\r':
			ct.Print("\n")
			if input.Len() > 0 {
				ct.lastInput = input.String()
			}
			return input.String(), nil

		case 0x03:
			// ctrl-c
			ct.Print("\n")
			return "", io.EOF

		case 0x7f, 0x08:
			// backspace
			s := input.String()
			if len(s) > 0 {
				input.Reset()
				input.WriteString(s[:len(s)-1])
			}
			redraw()

		case 0x1b:
			// escape sequence. the only one we care about is the up
			// arrow, which recalls the previous command
			c, err := ct.ReadRune()
			if err != nil {
				return "", err
			}
			if c == '[' {
				c, err = ct.ReadRune()
				if err != nil {
					return "", err
				}
				if c == 'A' {
					input.Reset()
					input.WriteString(ct.lastInput)
				}
			}
			redraw()

		default:
			if r >= 0x20 && r < 0x7f {
				input.WriteRune(r)
				redraw()
			}
		}
	}
}

// TermPrintLine implements the terminal.Terminal interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	switch style {
	case terminal.StyleError:
		ct.Print("%s* %s%s\n", ansi.PenRed, s, ansi.NormalMode)
	case terminal.StyleHelp:
		ct.Print("%s%s%s\n", ansi.PenGrey, s, ansi.NormalMode)
	case terminal.StyleFeedback:
		ct.Print("%s%s%s\n", ansi.PenGrey, s, ansi.NormalMode)
	case terminal.StyleCPU:
		ct.Print("%s%s%s\n", ansi.PenCyan, s, ansi.NormalMode)
	case terminal.StyleEcho:
		ct.Print("%s%s%s\n", ansi.PenYellow, s, ansi.NormalMode)
	default:
		ct.Print("%s\n", s)
	}
}
