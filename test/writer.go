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

package test

import "strings"

// Writer is an implementation of the io.Writer interface. It is useful for
// capturing output that would otherwise be sent to the terminal and
// comparing it to an expected string.
type Writer struct {
	buffer strings.Builder
}

// Write implements the io.Writer interface.
func (tw *Writer) Write(p []byte) (n int, err error) {
	return tw.buffer.Write(p)
}

// Compare buffered output with the expected string.
func (tw *Writer) Compare(expected string) bool {
	return tw.buffer.String() == expected
}

// String returns the buffered output.
func (tw *Writer) String() string {
	return tw.buffer.String()
}

// Reset the buffer.
func (tw *Writer) Reset() {
	tw.buffer.Reset()
}
