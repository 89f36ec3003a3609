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

package memory

import (
	"github.com/jetsetilly/gopheradvance/hardware/input"
	"github.com/jetsetilly/gopheradvance/hardware/memory/cartridge"
	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
	"github.com/jetsetilly/gopheradvance/hardware/memory/store"
	"github.com/jetsetilly/gopheradvance/hardware/sound"
)

// Processor is the view of the CPU required by the memory bus: the open bus
// value is derived from the current prefetch address and state, and the
// HALTCNT register halts the processor.
type Processor interface {
	// ProgramCounter returns the address the prefetch queue will fetch
	// from next
	ProgramCounter() uint32

	// InThumbState returns true if the CPU is executing Thumb instructions
	InThumbState() bool

	// Halt the CPU until an enabled interrupt becomes pending
	Halt()
}

// Memory is the console's memory bus.
type Memory struct {
	backing store.Backing
	bios    []uint8
	cart    *cartridge.Cartridge
	keypad  *input.Keypad
	snd     *sound.Sound
	proc    Processor

	dma [4]dmaChannel
	tmr timers

	eeprom eeprom

	// wait cycles accumulated by accesses on the execute surface. claimed
	// by the CPU scheduler once per instruction
	waitCycles uint32

	// guard against recursive open bus reads
	inUnreadable bool

	// sign-extended affine reference points, latched on writes to the
	// BG2X/BG2Y/BG3X/BG3Y registers and consumed by the renderer
	bgx [2]int32
	bgy [2]int32

	// how the open bus value is formed in Thumb state. true duplicates the
	// 16-bit prefetch value into both halves of the word; false combines it
	// with the upper half of the aligned prefetch word. real hardware is
	// more nuanced than either but the former matches common behaviour
	ThumbOpenBusDuplicate bool
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The bios slice may be empty, in which case all BIOS reads return the open
// bus value.
func NewMemory(backing store.Backing, bios []uint8, cart *cartridge.Cartridge,
	keypad *input.Keypad, snd *sound.Sound) *Memory {

	mem := &Memory{
		backing:               backing,
		bios:                  bios,
		cart:                  cart,
		keypad:                keypad,
		snd:                   snd,
		ThumbOpenBusDuplicate: true,
	}
	mem.tmr.mem = mem
	mem.eeprom.mem = mem
	mem.eeprom.readAddress = -1

	return mem
}

// Plumb the CPU into the memory bus. Must be called before the first
// access on the execute surface.
func (mem *Memory) Plumb(proc Processor) {
	mem.proc = proc
}

// ClaimWaitCycles returns the wait cycles accumulated since the last claim
// and resets the accumulator. Called by the CPU scheduler once per
// instruction.
func (mem *Memory) ClaimWaitCycles() uint32 {
	c := mem.waitCycles
	mem.waitCycles = 0
	return c
}

// helpers for multi-byte access to the backing store. little-endian.

func (mem *Memory) storeRead16(offset uint32) uint16 {
	return uint16(mem.backing.Read8(offset)) | (uint16(mem.backing.Read8(offset+1)) << 8)
}

func (mem *Memory) storeRead32(offset uint32) uint32 {
	return uint32(mem.backing.Read8(offset)) | (uint32(mem.backing.Read8(offset+1)) << 8) |
		(uint32(mem.backing.Read8(offset+2)) << 16) | (uint32(mem.backing.Read8(offset+3)) << 24)
}

func (mem *Memory) storeWrite16(offset uint32, value uint16) {
	mem.backing.Write8(offset, uint8(value))
	mem.backing.Write8(offset+1, uint8(value>>8))
}

func (mem *Memory) storeWrite32(offset uint32, value uint32) {
	mem.backing.Write8(offset, uint8(value))
	mem.backing.Write8(offset+1, uint8(value>>8))
	mem.backing.Write8(offset+2, uint8(value>>16))
	mem.backing.Write8(offset+3, uint8(value>>24))
}

// Read8 reads a byte on the execute surface.
func (mem *Memory) Read8(address uint32) uint8 {
	return mem.read8funcs(memorymap.BankOf(address), address)
}

// Read16 reads a halfword on the execute surface. The low bit of the
// address is masked.
func (mem *Memory) Read16(address uint32) uint16 {
	address &= ^uint32(1)
	return mem.read16funcs(memorymap.BankOf(address), address)
}

// Read32 reads a word on the execute surface. The low two bits of the
// address are masked and the result is rotated so that the addressed byte
// appears in the low position.
func (mem *Memory) Read32(address uint32) uint32 {
	shift := (address & 3) << 3
	address &= ^uint32(3)
	res := mem.read32funcs(memorymap.BankOf(address), address)
	if shift == 0 {
		return res
	}
	return (res >> shift) | (res << (32 - shift))
}

// Read32Aligned reads a word on the execute surface without the unaligned
// rotation. Used by instruction fetch and block transfers, where the
// address is known to be aligned.
func (mem *Memory) Read32Aligned(address uint32) uint32 {
	return mem.read32funcs(memorymap.BankOf(address), address)
}

// Write8 writes a byte on the execute surface.
func (mem *Memory) Write8(address uint32, value uint8) {
	mem.write8funcs(memorymap.BankOf(address), address, value)
}

// Write16 writes a halfword on the execute surface.
func (mem *Memory) Write16(address uint32, value uint16) {
	address &= ^uint32(1)
	mem.write16funcs(memorymap.BankOf(address), address, value)
}

// Write32 writes a word on the execute surface.
func (mem *Memory) Write32(address uint32, value uint32) {
	address &= ^uint32(3)
	mem.write32funcs(memorymap.BankOf(address), address, value)
}

// bank dispatch for each access width. the tables in the original hardware
// documentation are expressed here as switches on the bank nibble.

func (mem *Memory) read8funcs(bank memorymap.Bank, address uint32) uint8 {
	switch bank {
	case memorymap.BankBIOS:
		return mem.readBIOS8(address)
	case memorymap.BankEWRAM:
		return mem.readEWRAM8(address)
	case memorymap.BankIWRAM:
		return mem.readIWRAM8(address)
	case memorymap.BankIO:
		return mem.readIO8(address)
	case memorymap.BankPalette:
		return mem.readPalette8(address)
	case memorymap.BankVRAM:
		return mem.readVRAM8(address)
	case memorymap.BankOAM:
		return mem.readOAM8(address)
	case memorymap.BankROM0, memorymap.BankROM0u, memorymap.BankROM1,
		memorymap.BankROM1u, memorymap.BankROM2, memorymap.BankROM2u:
		if !mem.cart.Mapped(uint32(bank)) {
			return uint8(mem.readUnreadable())
		}
		mem.waitCycles += mem.cart.AccessTime(address)
		return mem.cart.Read8(address)
	case memorymap.BankSave:
		return mem.readSRAM8(address)
	}
	return uint8(mem.readUnreadable())
}

func (mem *Memory) read16funcs(bank memorymap.Bank, address uint32) uint16 {
	switch bank {
	case memorymap.BankBIOS:
		return mem.readBIOS16(address)
	case memorymap.BankEWRAM:
		return mem.readEWRAM16(address)
	case memorymap.BankIWRAM:
		return mem.readIWRAM16(address)
	case memorymap.BankIO:
		return mem.readIO16(address)
	case memorymap.BankPalette:
		return mem.readPalette16(address)
	case memorymap.BankVRAM:
		return mem.readVRAM16(address)
	case memorymap.BankOAM:
		return mem.readOAM16(address)
	case memorymap.BankROM0, memorymap.BankROM0u, memorymap.BankROM1,
		memorymap.BankROM1u, memorymap.BankROM2, memorymap.BankROM2u:
		if !mem.cart.Mapped(uint32(bank)) {
			return uint16(mem.readUnreadable())
		}
		mem.waitCycles += mem.cart.AccessTime(address)
		return mem.cart.Read16(address)
	case memorymap.BankSave:
		return uint16(mem.eeprom.readBit())
	}
	return uint16(mem.readUnreadable())
}

func (mem *Memory) read32funcs(bank memorymap.Bank, address uint32) uint32 {
	switch bank {
	case memorymap.BankBIOS:
		return mem.readBIOS32(address)
	case memorymap.BankEWRAM:
		return mem.readEWRAM32(address)
	case memorymap.BankIWRAM:
		return mem.readIWRAM32(address)
	case memorymap.BankIO:
		return mem.readIO32(address)
	case memorymap.BankPalette:
		return mem.readPalette32(address)
	case memorymap.BankVRAM:
		return mem.readVRAM32(address)
	case memorymap.BankOAM:
		return mem.readOAM32(address)
	case memorymap.BankROM0, memorymap.BankROM0u, memorymap.BankROM1,
		memorymap.BankROM1u, memorymap.BankROM2, memorymap.BankROM2u:
		if !mem.cart.Mapped(uint32(bank)) {
			return mem.readUnreadable()
		}
		// a 32-bit cartridge access is two 16-bit accesses on the bus
		mem.waitCycles += (mem.cart.AccessTime(address) * 2) + 1
		return mem.cart.Read32(address)
	case memorymap.BankSave:
		return mem.eeprom.readBit()
	}
	return mem.readUnreadable()
}

func (mem *Memory) write8funcs(bank memorymap.Bank, address uint32, value uint8) {
	switch bank {
	case memorymap.BankEWRAM:
		mem.writeEWRAM8(address, value)
	case memorymap.BankIWRAM:
		mem.writeIWRAM8(address, value)
	case memorymap.BankIO:
		mem.writeIO8(address, value)
	case memorymap.BankPalette:
		mem.writePalette8(address, value)
	case memorymap.BankVRAM:
		mem.writeVRAM8(address, value)
	case memorymap.BankOAM:
		mem.writeOAM8(address, value)
	case memorymap.BankSave:
		mem.writeSRAM8(address, value)
	}
}

func (mem *Memory) write16funcs(bank memorymap.Bank, address uint32, value uint16) {
	switch bank {
	case memorymap.BankEWRAM:
		mem.writeEWRAM16(address, value)
	case memorymap.BankIWRAM:
		mem.writeIWRAM16(address, value)
	case memorymap.BankIO:
		mem.writeIO16(address, value)
	case memorymap.BankPalette:
		mem.writePalette16(address, value)
	case memorymap.BankVRAM:
		mem.writeVRAM16(address, value)
	case memorymap.BankOAM:
		mem.writeOAM16(address, value)
	case memorymap.BankSave:
		// save devices on a 16-bit bus are EEPROMs, written bit-serially
		// by DMA3
		mem.eeprom.writeBit(uint32(value))
	}
}

func (mem *Memory) write32funcs(bank memorymap.Bank, address uint32, value uint32) {
	switch bank {
	case memorymap.BankEWRAM:
		mem.writeEWRAM32(address, value)
	case memorymap.BankIWRAM:
		mem.writeIWRAM32(address, value)
	case memorymap.BankIO:
		mem.writeIO32(address, value)
	case memorymap.BankPalette:
		mem.writePalette32(address, value)
	case memorymap.BankVRAM:
		mem.writeVRAM32(address, value)
	case memorymap.BankOAM:
		mem.writeOAM32(address, value)
	case memorymap.BankSave:
		mem.eeprom.writeBit(value)
	}
}

// readUnreadable returns the open bus value: the value that would be
// fetched by the current prefetch. recursion into the open bus (the PC
// itself pointing at an unmapped address) returns zero.
func (mem *Memory) readUnreadable() uint32 {
	if mem.inUnreadable || mem.proc == nil {
		return 0
	}

	mem.inUnreadable = true
	defer func() { mem.inUnreadable = false }()

	if !mem.proc.InThumbState() {
		return mem.Read32(mem.proc.ProgramCounter())
	}

	v := uint32(mem.Read16(mem.proc.ProgramCounter()))
	if mem.ThumbOpenBusDuplicate {
		return v | (v << 16)
	}
	return v | (mem.Read32Aligned(mem.proc.ProgramCounter()) & 0xffff0000)
}
