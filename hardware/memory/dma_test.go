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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/test"
)

func TestDMAImmediate(t *testing.T) {
	mem, _ := newBus(nil, nil)

	for i := uint32(0); i < 4; i++ {
		mem.Write32(0x02000000+i*4, 0xd0000000+i)
	}

	mem.Write32(0x040000b0, 0x02000000) // source
	mem.Write32(0x040000b4, 0x02000100) // destination
	mem.Write16(0x040000b8, 4)          // count

	// enable, 32-bit, immediate start
	mem.Write16(0x040000ba, 0x8400)

	for i := uint32(0); i < 4; i++ {
		test.ExpectEquality(t, mem.Peek32(0x02000100+i*4), uint32(0xd0000000+i))
	}

	// a one-shot transfer clears its enable bit in the visible control
	// register
	test.ExpectEquality(t, mem.Read16(0x040000ba)&0x8000, uint16(0))
}

func TestDMADecrementAndFixed(t *testing.T) {
	mem, _ := newBus(nil, nil)

	mem.Write16(0x02000000, 0x1111)
	mem.Write16(0x02000002, 0x2222)

	// decrementing source, fixed destination, 16-bit
	mem.Write32(0x040000b0, 0x02000002)
	mem.Write32(0x040000b4, 0x02000100)
	mem.Write16(0x040000b8, 2)
	mem.Write16(0x040000ba, 0x8000|(2<<5)|(1<<7))

	// both transfers landed on the same destination halfword, the second
	// overwriting the first
	test.ExpectEquality(t, mem.Peek16(0x02000100), uint16(0x1111))
	test.ExpectEquality(t, mem.Peek16(0x02000102), uint16(0x0000))
}

func TestDMAInterruptOnComplete(t *testing.T) {
	mem, _ := newBus(nil, nil)

	mem.Write32(0x040000bc, 0x02000000) // DMA1 source
	mem.Write32(0x040000c0, 0x02000100) // DMA1 destination
	mem.Write16(0x040000c4, 1)
	mem.Write16(0x040000c6, 0x8000|(1<<14))

	// IRQ bit 9 is DMA1 complete
	test.ExpectInequality(t, mem.PeekIO16(0x202)&(1<<9), uint16(0))
}

func TestDMARepeatReload(t *testing.T) {
	mem, _ := newBus(nil, nil)

	mem.Write32(0x040000b0, 0x02000000)
	mem.Write32(0x040000b4, 0x02000100)
	mem.Write16(0x040000b8, 2)

	// repeat with vblank start: nothing happens until the television
	// triggers it
	mem.Write16(0x040000ba, 0x8000|(1<<9)|(1<<12))
	test.ExpectEquality(t, mem.Peek16(0x02000100), uint16(0))

	mem.Write16(0x02000000, 0xabcd)
	mem.VBlankDMA()
	test.ExpectEquality(t, mem.Peek16(0x02000100), uint16(0xabcd))

	// the enable bit survives a repeating transfer
	test.ExpectInequality(t, mem.Read16(0x040000ba)&0x8000, uint16(0))
}

func TestDMAZeroCount(t *testing.T) {
	mem, _ := newBus(nil, nil)

	// a count of zero means 0x4000 elements
	mem.Write16(0x02000000, 0x4242)
	mem.Write32(0x040000b0, 0x02000000)
	mem.Write32(0x040000b4, 0x02010000)
	mem.Write16(0x040000b8, 0)
	mem.Write16(0x040000ba, 0x8000)

	// the transfer covered 0x4000 halfwords
	test.ExpectEquality(t, mem.Peek16(0x02010000), uint16(0x4242))
	test.ExpectEquality(t, mem.Peek16(0x02010000+0x3fff*2), uint16(0))
}
