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

package arm7tdmi

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/test"
)

// the multiply early-termination rule: the top bytes of the operand being
// all zeros or all ones shortens the multiply.
func TestMultiplyCycles(t *testing.T) {
	test.ExpectEquality(t, multiplyCycles(0x00000012), uint32(1))
	test.ExpectEquality(t, multiplyCycles(0xffffff12), uint32(1))
	test.ExpectEquality(t, multiplyCycles(0x00001234), uint32(2))
	test.ExpectEquality(t, multiplyCycles(0xffff1234), uint32(2))
	test.ExpectEquality(t, multiplyCycles(0x00123456), uint32(3))
	test.ExpectEquality(t, multiplyCycles(0xff123456), uint32(3))
	test.ExpectEquality(t, multiplyCycles(0x12345678), uint32(4))
}

func TestStatusRoundTrip(t *testing.T) {
	var sr Status

	sr.Set(0xf00000d2)
	test.ExpectEquality(t, sr.Value(), uint32(0xf00000d2))
	test.ExpectEquality(t, sr.mode, uint32(modeIRQ))
	test.ExpectEquality(t, sr.irqDisable, true)
	test.ExpectEquality(t, sr.fiqDisable, true)
	test.ExpectEquality(t, sr.thumb, false)

	sr.Set(0x0000003f)
	test.ExpectEquality(t, sr.mode, uint32(modeSYS))
	test.ExpectEquality(t, sr.thumb, true)
	test.ExpectEquality(t, sr.Value(), uint32(0x0000003f))
}

func TestConditions(t *testing.T) {
	var sr Status

	sr.zero = true
	test.ExpectSuccess(t, sr.condition(0b0000))
	test.ExpectFailure(t, sr.condition(0b0001))

	// AL always runs, NV never does
	test.ExpectSuccess(t, sr.condition(0b1110))
	test.ExpectFailure(t, sr.condition(0b1111))

	// signed comparisons
	sr.zero = false
	sr.negative = true
	sr.overflow = false
	test.ExpectSuccess(t, sr.condition(0b1011)) // LT
	test.ExpectFailure(t, sr.condition(0b1010)) // GE
	sr.overflow = true
	test.ExpectSuccess(t, sr.condition(0b1010)) // GE
	test.ExpectSuccess(t, sr.condition(0b1100)) // GT
}
