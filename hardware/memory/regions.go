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
	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
)

// BIOS ROM. readable only while the program counter is inside the BIOS
// region. a read from anywhere else sees the open bus.

func (mem *Memory) biosReadable() bool {
	return mem.proc != nil && mem.proc.ProgramCounter() < memorymap.BIOSBoundary && len(mem.bios) > 0
}

func (mem *Memory) readBIOS8(address uint32) uint8 {
	mem.waitCycles++
	if mem.biosReadable() {
		return mem.bios[address&memorymap.MaskBIOS]
	}
	return uint8(mem.readUnreadable())
}

func (mem *Memory) readBIOS16(address uint32) uint16 {
	mem.waitCycles++
	if mem.biosReadable() {
		a := address & memorymap.MaskBIOS
		return uint16(mem.bios[a]) | (uint16(mem.bios[a+1]) << 8)
	}
	return uint16(mem.readUnreadable())
}

func (mem *Memory) readBIOS32(address uint32) uint32 {
	mem.waitCycles++
	if mem.biosReadable() {
		a := address & memorymap.MaskBIOS
		return uint32(mem.bios[a]) | (uint32(mem.bios[a+1]) << 8) |
			(uint32(mem.bios[a+2]) << 16) | (uint32(mem.bios[a+3]) << 24)
	}
	return mem.readUnreadable()
}

// external work RAM. the slowest of the RAM regions: three wait states per
// 16-bit access, six for a full word.

func (mem *Memory) readEWRAM8(address uint32) uint8 {
	mem.waitCycles += 3
	return mem.backing.Read8(memorymap.OriginEWRAM + (address & memorymap.MaskEWRAM))
}

func (mem *Memory) readEWRAM16(address uint32) uint16 {
	mem.waitCycles += 3
	return mem.storeRead16(memorymap.OriginEWRAM + (address & memorymap.MaskEWRAM))
}

func (mem *Memory) readEWRAM32(address uint32) uint32 {
	mem.waitCycles += 6
	return mem.storeRead32(memorymap.OriginEWRAM + (address & memorymap.MaskEWRAM))
}

func (mem *Memory) writeEWRAM8(address uint32, value uint8) {
	mem.waitCycles += 3
	mem.backing.Write8(memorymap.OriginEWRAM+(address&memorymap.MaskEWRAM), value)
}

func (mem *Memory) writeEWRAM16(address uint32, value uint16) {
	mem.waitCycles += 3
	mem.storeWrite16(memorymap.OriginEWRAM+(address&memorymap.MaskEWRAM), value)
}

func (mem *Memory) writeEWRAM32(address uint32, value uint32) {
	mem.waitCycles += 6
	mem.storeWrite32(memorymap.OriginEWRAM+(address&memorymap.MaskEWRAM), value)
}

// internal work RAM. a single wait state for any width.

func (mem *Memory) readIWRAM8(address uint32) uint8 {
	mem.waitCycles++
	return mem.backing.Read8(memorymap.OriginIWRAM + (address & memorymap.MaskIWRAM))
}

func (mem *Memory) readIWRAM16(address uint32) uint16 {
	mem.waitCycles++
	return mem.storeRead16(memorymap.OriginIWRAM + (address & memorymap.MaskIWRAM))
}

func (mem *Memory) readIWRAM32(address uint32) uint32 {
	mem.waitCycles++
	return mem.storeRead32(memorymap.OriginIWRAM + (address & memorymap.MaskIWRAM))
}

func (mem *Memory) writeIWRAM8(address uint32, value uint8) {
	mem.waitCycles++
	mem.backing.Write8(memorymap.OriginIWRAM+(address&memorymap.MaskIWRAM), value)
}

func (mem *Memory) writeIWRAM16(address uint32, value uint16) {
	mem.waitCycles++
	mem.storeWrite16(memorymap.OriginIWRAM+(address&memorymap.MaskIWRAM), value)
}

func (mem *Memory) writeIWRAM32(address uint32, value uint32) {
	mem.waitCycles++
	mem.storeWrite32(memorymap.OriginIWRAM+(address&memorymap.MaskIWRAM), value)
}

// palette RAM. a 16-bit region: byte writes land on both bytes of the
// addressed halfword.

func (mem *Memory) readPalette8(address uint32) uint8 {
	mem.waitCycles++
	return mem.backing.Read8(memorymap.OriginPalette + (address & memorymap.MaskPalette))
}

func (mem *Memory) readPalette16(address uint32) uint16 {
	mem.waitCycles++
	return mem.storeRead16(memorymap.OriginPalette + (address & memorymap.MaskPalette))
}

func (mem *Memory) readPalette32(address uint32) uint32 {
	mem.waitCycles += 2
	return mem.storeRead32(memorymap.OriginPalette + (address & memorymap.MaskPalette))
}

func (mem *Memory) writePalette8(address uint32, value uint8) {
	mem.waitCycles++
	a := address & memorymap.MaskPalette & ^uint32(1)
	mem.backing.Write8(memorymap.OriginPalette+a, value)
	mem.backing.Write8(memorymap.OriginPalette+a+1, value)
}

func (mem *Memory) writePalette16(address uint32, value uint16) {
	mem.waitCycles++
	mem.storeWrite16(memorymap.OriginPalette+(address&memorymap.MaskPalette), value)
}

func (mem *Memory) writePalette32(address uint32, value uint32) {
	mem.waitCycles += 2
	mem.storeWrite32(memorymap.OriginPalette+(address&memorymap.MaskPalette), value)
}

// video RAM. the upper mirror block folds onto the block at 0x10000 and,
// like palette RAM, byte writes land on both bytes of the halfword.

func (mem *Memory) readVRAM8(address uint32) uint8 {
	mem.waitCycles++
	a := memorymap.MirrorVRAM(address & memorymap.MaskVRAM)
	return mem.backing.Read8(memorymap.OriginVRAM + a)
}

func (mem *Memory) readVRAM16(address uint32) uint16 {
	mem.waitCycles++
	a := memorymap.MirrorVRAM(address & memorymap.MaskVRAM)
	return mem.storeRead16(memorymap.OriginVRAM + a)
}

func (mem *Memory) readVRAM32(address uint32) uint32 {
	mem.waitCycles += 2
	a := memorymap.MirrorVRAM(address & memorymap.MaskVRAM)
	return mem.storeRead32(memorymap.OriginVRAM + a)
}

func (mem *Memory) writeVRAM8(address uint32, value uint8) {
	mem.waitCycles++
	a := memorymap.MirrorVRAM(address & memorymap.MaskVRAM & ^uint32(1))
	mem.backing.Write8(memorymap.OriginVRAM+a, value)
	mem.backing.Write8(memorymap.OriginVRAM+a+1, value)
}

func (mem *Memory) writeVRAM16(address uint32, value uint16) {
	mem.waitCycles++
	a := memorymap.MirrorVRAM(address & memorymap.MaskVRAM)
	mem.storeWrite16(memorymap.OriginVRAM+a, value)
}

func (mem *Memory) writeVRAM32(address uint32, value uint32) {
	mem.waitCycles += 2
	a := memorymap.MirrorVRAM(address & memorymap.MaskVRAM)
	mem.storeWrite32(memorymap.OriginVRAM+a, value)
}

// object attribute RAM.

func (mem *Memory) readOAM8(address uint32) uint8 {
	mem.waitCycles++
	return mem.backing.Read8(memorymap.OriginOAM + (address & memorymap.MaskOAM))
}

func (mem *Memory) readOAM16(address uint32) uint16 {
	mem.waitCycles++
	return mem.storeRead16(memorymap.OriginOAM + (address & memorymap.MaskOAM))
}

func (mem *Memory) readOAM32(address uint32) uint32 {
	mem.waitCycles += 2
	return mem.storeRead32(memorymap.OriginOAM + (address & memorymap.MaskOAM))
}

func (mem *Memory) writeOAM8(address uint32, value uint8) {
	mem.waitCycles++
	a := address & memorymap.MaskOAM & ^uint32(1)
	mem.backing.Write8(memorymap.OriginOAM+a, value)
	mem.backing.Write8(memorymap.OriginOAM+a+1, value)
}

func (mem *Memory) writeOAM16(address uint32, value uint16) {
	mem.waitCycles++
	mem.storeWrite16(memorymap.OriginOAM+(address&memorymap.MaskOAM), value)
}

func (mem *Memory) writeOAM32(address uint32, value uint32) {
	mem.waitCycles++
	mem.storeWrite32(memorymap.OriginOAM+(address&memorymap.MaskOAM), value)
}

// cartridge save RAM. an 8-bit bus.

func (mem *Memory) readSRAM8(address uint32) uint8 {
	return mem.backing.Read8(memorymap.OriginSRAM + (address & memorymap.MaskSRAM))
}

func (mem *Memory) writeSRAM8(address uint32, value uint8) {
	mem.backing.Write8(memorymap.OriginSRAM+(address&memorymap.MaskSRAM), value)
}
