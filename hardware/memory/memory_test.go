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

	"github.com/jetsetilly/gopheradvance/cartridgeloader"
	"github.com/jetsetilly/gopheradvance/hardware/input"
	"github.com/jetsetilly/gopheradvance/hardware/memory"
	"github.com/jetsetilly/gopheradvance/hardware/memory/cartridge"
	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
	"github.com/jetsetilly/gopheradvance/hardware/memory/store"
	"github.com/jetsetilly/gopheradvance/hardware/sound"
	"github.com/jetsetilly/gopheradvance/test"
)

// stubProcessor stands in for the CPU when testing the bus in isolation.
type stubProcessor struct {
	pc     uint32
	thumb  bool
	halted bool
}

func (s *stubProcessor) ProgramCounter() uint32 {
	return s.pc
}

func (s *stubProcessor) InThumbState() bool {
	return s.thumb
}

func (s *stubProcessor) Halt() {
	s.halted = true
}

// newBus builds a memory bus with an empty cartridge, no BIOS and a stub
// processor sat in EWRAM.
func newBus(bios []uint8, rom []uint8) (*memory.Memory, *stubProcessor) {
	ram := store.NewRAM(memorymap.StoreSize)
	cart := cartridge.NewCartridge(cartridgeloader.NewLoaderFromData("test", rom))
	snd := sound.NewSound(44100)
	keypad := input.NewKeypad()

	mem := memory.NewMemory(ram, bios, cart, keypad, snd)
	snd.Attach(mem)

	proc := &stubProcessor{pc: 0x02000000}
	mem.Plumb(proc)

	return mem, proc
}

func TestUnalignedReadRotation(t *testing.T) {
	mem, _ := newBus(nil, nil)

	mem.Write32(0x02000000, 0x11223344)

	// a 32-bit read rotates the aligned word so the addressed byte lands
	// in the low position
	test.ExpectEquality(t, mem.Read32(0x02000000), uint32(0x11223344))
	test.ExpectEquality(t, mem.Read32(0x02000001), uint32(0x44112233))
	test.ExpectEquality(t, mem.Read32(0x02000002), uint32(0x33441122))
	test.ExpectEquality(t, mem.Read32(0x02000003), uint32(0x22334411))

	// 16-bit reads mask the low bit
	mem.Write16(0x02000010, 0xbeef)
	test.ExpectEquality(t, mem.Read16(0x02000011), uint16(0xbeef))
}

func TestPaletteByteWrite(t *testing.T) {
	mem, _ := newBus(nil, nil)

	// a byte store to a 16-bit region lands on both bytes of the halfword
	mem.Write8(0x05000002, 0x7c)
	test.ExpectEquality(t, mem.Read16(0x05000002), uint16(0x7c7c))

	mem.Write8(0x05000005, 0x1f)
	test.ExpectEquality(t, mem.Read16(0x05000004), uint16(0x1f1f))

	mem.Write8(0x06000008, 0x33)
	test.ExpectEquality(t, mem.Read16(0x06000008), uint16(0x3333))
}

func TestVRAMMirror(t *testing.T) {
	mem, _ := newBus(nil, nil)

	mem.Write8(0x06010001, 0xab)
	test.ExpectEquality(t, mem.Read8(0x06018000), uint8(0xab))

	// and the region repeats through the full 16Mb window
	mem.Write16(0x06000020, 0x1234)
	test.ExpectEquality(t, mem.Read16(0x06020020), uint16(0x1234))
}

func TestInterruptFlagWriteOneToClear(t *testing.T) {
	mem, _ := newBus(nil, nil)

	mem.RequestInterrupt(0)
	mem.RequestInterrupt(3)
	mem.RequestInterrupt(8)
	test.ExpectEquality(t, mem.PeekIO16(0x202), uint16(0x0109))

	// writing a one clears the bit; writing a zero leaves it alone
	mem.Write16(0x04000202, 0x0008)
	test.ExpectEquality(t, mem.PeekIO16(0x202), uint16(0x0101))

	mem.Write16(0x04000202, 0xffff)
	test.ExpectEquality(t, mem.PeekIO16(0x202), uint16(0x0000))
}

func TestBIOSReadGuard(t *testing.T) {
	bios := make([]uint8, 16*1024)
	bios[0] = 0xaa
	bios[1] = 0xbb
	bios[2] = 0xcc
	bios[3] = 0xdd

	mem, proc := newBus(bios, nil)

	// readable while the PC is inside the BIOS region
	proc.pc = 0x00000100
	test.ExpectEquality(t, mem.Read32(0x00000000), uint32(0xddccbbaa))

	// from outside, the open bus value appears instead: the word the
	// prefetch would fetch
	proc.pc = 0x02000000
	mem.Write32(0x02000000, 0xcafed00d)
	test.ExpectEquality(t, mem.Read32(0x00000000), uint32(0xcafed00d))
}

func TestOpenBus(t *testing.T) {
	mem, proc := newBus(nil, nil)

	mem.Write32(0x02000000, 0x0badf00d)
	proc.pc = 0x02000000

	// unmapped banks return the prefetch value
	test.ExpectEquality(t, mem.Read32(0x01000000), uint32(0x0badf00d))
	test.ExpectEquality(t, mem.Read32(0x0f000000), uint32(0x0badf00d))

	// in Thumb state the 16-bit prefetch value appears in both halves
	proc.thumb = true
	test.ExpectEquality(t, mem.Read32(0x0f000000), uint32(0xf00df00d))

	// writes to unmapped banks are discarded
	mem.Write32(0x0f000000, 0x12345678)
	test.ExpectEquality(t, mem.Read32(0x0f000000), uint32(0xf00df00d))
}

func TestROMBanks(t *testing.T) {
	rom := make([]uint8, 0x8000)
	rom[0] = 0x11
	rom[0x7fff] = 0x99

	mem, proc := newBus(nil, rom)

	test.ExpectEquality(t, mem.Read8(0x08000000), uint8(0x11))
	test.ExpectEquality(t, mem.Read8(0x08007fff), uint8(0x99))

	// the ROM mirrors through its bank window and into the other banks
	test.ExpectEquality(t, mem.Read8(0x08008000), uint8(0x11))
	test.ExpectEquality(t, mem.Read8(0x0a000000), uint8(0x11))
	test.ExpectEquality(t, mem.Read8(0x0c000000), uint8(0x11))

	// writes to ROM are discarded
	mem.Write8(0x08000000, 0xff)
	test.ExpectEquality(t, mem.Read8(0x08000000), uint8(0x11))

	// a cartridge that is not a power of two is not mapped at all
	badRom := make([]uint8, 0x7000)
	mem, proc = newBus(nil, badRom)
	mem.Write32(0x02000000, 0x0badf00d)
	proc.pc = 0x02000000
	test.ExpectEquality(t, mem.Read32(0x08000000), uint32(0x0badf00d))
}

func TestHaltRegister(t *testing.T) {
	mem, proc := newBus(nil, nil)

	mem.Write8(0x04000301, 0x00)
	test.ExpectEquality(t, proc.halted, true)
}

func TestKeypadRegister(t *testing.T) {
	mem, _ := newBus(nil, nil)

	// no keys pressed: all ten bits set
	test.ExpectEquality(t, mem.Read16(0x04000130), uint16(0x03ff))
}

func TestAffineReferenceLatch(t *testing.T) {
	mem, _ := newBus(nil, nil)

	// a negative 28-bit value is sign extended into the latch
	mem.Write32(0x04000028, 0x08000000)
	x, _ := mem.AffineReference(0)
	test.ExpectEquality(t, x, int32(-134217728))

	mem.Write32(0x0400002c, 0x00000100)
	_, y := mem.AffineReference(0)
	test.ExpectEquality(t, y, int32(0x100))

	// the shadow register reflects the sign extension too
	test.ExpectEquality(t, mem.Peek32(0x04000028), uint32(0xf8000000))
}
