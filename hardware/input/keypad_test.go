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

package input_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/hardware/input"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestKeypadActiveLow(t *testing.T) {
	key := input.NewKeypad()

	test.ExpectEquality(t, key.Value(), uint16(0x03ff))

	key.Set(input.KeyA, true)
	test.ExpectEquality(t, key.Value(), uint16(0x03fe))

	key.Set(input.KeyDown, true)
	test.ExpectEquality(t, key.Value(), uint16(0x037e))

	key.Set(input.KeyA, false)
	key.Set(input.KeyDown, false)
	test.ExpectEquality(t, key.Value(), uint16(0x03ff))
}

func TestKeypadInterruptORMode(t *testing.T) {
	key := input.NewKeypad()

	keycnt := uint16(0)
	fired := 0
	key.Attach(func() uint16 { return keycnt }, func(bit int) {
		test.ExpectEquality(t, bit, 12)
		fired++
	})

	// interrupt disabled: nothing fires
	keycnt = 0x0003 // A or B
	key.Set(input.KeyA, true)
	test.ExpectEquality(t, fired, 0)
	key.Set(input.KeyA, false)

	// OR mode: any flagged key
	keycnt = (1 << 14) | 0x0003
	key.Set(input.KeyB, true)
	test.ExpectEquality(t, fired, 1)
	key.Set(input.KeyB, false)

	// an unflagged key does not fire
	key.Set(input.KeyUp, true)
	test.ExpectEquality(t, fired, 1)
}

func TestKeypadInterruptANDMode(t *testing.T) {
	key := input.NewKeypad()

	keycnt := uint16((1 << 15) | (1 << 14) | 0x0003) // A and B
	fired := 0
	key.Attach(func() uint16 { return keycnt }, func(bit int) {
		fired++
	})

	// AND mode requires every flagged key
	key.Set(input.KeyA, true)
	test.ExpectEquality(t, fired, 0)

	key.Set(input.KeyB, true)
	test.ExpectEquality(t, fired, 1)
}
