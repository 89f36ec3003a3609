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

// the debug surface. the same dispatch as the execute surface but without
// disturbing the wait cycle accumulator. used by the renderer, debugger
// and tests.

// Peek8 reads a byte without accumulating wait cycles.
func (mem *Memory) Peek8(address uint32) uint8 {
	w := mem.waitCycles
	v := mem.read8funcs(memorymap.BankOf(address), address)
	mem.waitCycles = w
	return v
}

// Peek16 reads a halfword without accumulating wait cycles.
func (mem *Memory) Peek16(address uint32) uint16 {
	address &= ^uint32(1)
	w := mem.waitCycles
	v := mem.read16funcs(memorymap.BankOf(address), address)
	mem.waitCycles = w
	return v
}

// Peek32 reads a word without accumulating wait cycles. The unaligned
// rotation is applied as it is on the execute surface.
func (mem *Memory) Peek32(address uint32) uint32 {
	shift := (address & 3) << 3
	address &= ^uint32(3)
	w := mem.waitCycles
	v := mem.read32funcs(memorymap.BankOf(address), address)
	mem.waitCycles = w
	if shift == 0 {
		return v
	}
	return (v >> shift) | (v << (32 - shift))
}

// Poke8 writes a byte without accumulating wait cycles.
func (mem *Memory) Poke8(address uint32, value uint8) {
	w := mem.waitCycles
	mem.write8funcs(memorymap.BankOf(address), address, value)
	mem.waitCycles = w
}

// Poke16 writes a halfword without accumulating wait cycles.
func (mem *Memory) Poke16(address uint32, value uint16) {
	address &= ^uint32(1)
	w := mem.waitCycles
	mem.write16funcs(memorymap.BankOf(address), address, value)
	mem.waitCycles = w
}

// Poke32 writes a word without accumulating wait cycles.
func (mem *Memory) Poke32(address uint32, value uint32) {
	address &= ^uint32(3)
	w := mem.waitCycles
	mem.write32funcs(memorymap.BankOf(address), address, value)
	mem.waitCycles = w
}
