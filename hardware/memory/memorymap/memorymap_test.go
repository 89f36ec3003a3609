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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestBankOf(t *testing.T) {
	test.ExpectEquality(t, memorymap.BankOf(0x00000123), memorymap.BankBIOS)
	test.ExpectEquality(t, memorymap.BankOf(0x02000000), memorymap.BankEWRAM)
	test.ExpectEquality(t, memorymap.BankOf(0x03007f00), memorymap.BankIWRAM)
	test.ExpectEquality(t, memorymap.BankOf(0x04000200), memorymap.BankIO)
	test.ExpectEquality(t, memorymap.BankOf(0x06010000), memorymap.BankVRAM)
	test.ExpectEquality(t, memorymap.BankOf(0x08000000), memorymap.BankROM0)
	test.ExpectEquality(t, memorymap.BankOf(0x0e000000), memorymap.BankSave)

	// only bits 27-24 matter
	test.ExpectEquality(t, memorymap.BankOf(0xf2000000), memorymap.BankEWRAM)
}

func TestMirrorVRAM(t *testing.T) {
	// the lower 96k is untouched
	test.ExpectEquality(t, memorymap.MirrorVRAM(0x00000), uint32(0x00000))
	test.ExpectEquality(t, memorymap.MirrorVRAM(0x17fff), uint32(0x17fff))

	// the final 32k block folds onto the block at 0x10000
	test.ExpectEquality(t, memorymap.MirrorVRAM(0x18000), uint32(0x10001))
	test.ExpectEquality(t, memorymap.MirrorVRAM(0x1ffff), uint32(0x10000+((0x1ffff-0x17fff)&0x7fff)))
}
