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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which looks and feels like Errorf() from the fmt
// package.
//
// The pattern string used to create a curated error doubles as the error's
// identity. The Is() function checks whether an error was created with a
// specific pattern:
//
//	e := curated.Errorf("timer: bad prescaler: %d", p)
//
//	if curated.Is(e, "timer: bad prescaler: %d") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks for the pattern anywhere in the
// error chain, rather than just at the head. IsAny() says whether the error
// is curated at all. An uncurated error is one created by some other means
// and can be thought of as 'unexpected'.
//
// The Error() implementation normalises the error chain, removing duplicate
// adjacent message parts. This means errors can be wrapped freely at every
// level of a call chain without the final message stuttering.
package curated
