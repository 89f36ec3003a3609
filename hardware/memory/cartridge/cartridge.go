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

// Package cartridge maps the cartridge ROM into the memory map. The ROM
// appears in up to two 16Mb banks: the first covers the ROM up to 16Mb and
// the second covers the remainder of a larger cartridge.
package cartridge

import (
	"github.com/jetsetilly/gopheradvance/cartridgeloader"
	"github.com/jetsetilly/gopheradvance/logger"
)

// the bank split point. a cartridge larger than this is served through two
// banks.
const bankSize = 1 << 24

// Cartridge maps ROM data into the two cartridge banks of the memory map.
type Cartridge struct {
	loader cartridgeloader.Loader

	// masks for the two ROM banks. a zero mask means the bank is not mapped
	bank1Mask uint32
	bank2Mask uint32

	// the number of banks in use. zero when the cartridge could not be
	// mapped (a size that is not a power of two)
	bankCount int

	// sequential access wait states indexed by the bank nibble of the
	// address
	sTimes [0x10]uint32
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. A cartridge size that is not a power of two cannot be mapped: the
// function succeeds but every ROM access will be treated as unmapped.
func NewCartridge(loader cartridgeloader.Loader) *Cartridge {
	cart := &Cartridge{
		loader: loader,
	}

	for i := range cart.sTimes {
		cart.sTimes[i] = 2
	}

	size := loader.Size()

	// size must be a power of two for the masks to work
	if size == 0 || size&(size-1) != 0 {
		logger.Logf(logger.Allow, "cartridge", "size is not a power of two (%d). not mapping ROM banks", size)
		return cart
	}

	if size > bankSize {
		cart.bank1Mask = bankSize - 1
		cart.bank2Mask = bankSize - 1
		cart.bankCount = 2
	} else {
		cart.bank1Mask = size - 1
		cart.bankCount = 1
	}

	return cart
}

// Mapped returns true if the bank nibble refers to a mapped ROM bank. Odd
// nibbles (0x9, 0xb, 0xd) refer to the second bank which is only present
// for cartridges larger than 16Mb.
func (cart *Cartridge) Mapped(nibble uint32) bool {
	if nibble&1 == 1 {
		return cart.bankCount == 2
	}
	return cart.bankCount > 0
}

// AccessTime returns the wait states for a single 8 or 16 bit access at the
// address. A 32-bit access is two 16-bit accesses on the cartridge bus.
func (cart *Cartridge) AccessTime(address uint32) uint32 {
	return cart.sTimes[(address>>24)&0xf]
}

// resolve the address to an offset in the ROM data. the bank nibble selects
// which bank mask applies.
func (cart *Cartridge) resolve(address uint32) uint32 {
	if (address>>24)&1 == 1 {
		// second bank covers the remainder of the cartridge
		return (address & cart.bank2Mask) + cart.bank1Mask + 1
	}
	return address & cart.bank1Mask
}

// Read8 reads a byte of ROM.
func (cart *Cartridge) Read8(address uint32) uint8 {
	return cart.loader.ByteAt(cart.resolve(address))
}

// Read16 reads a halfword of ROM.
func (cart *Cartridge) Read16(address uint32) uint16 {
	o := cart.resolve(address)
	return uint16(cart.loader.ByteAt(o)) | (uint16(cart.loader.ByteAt(o+1)) << 8)
}

// Read32 reads a word of ROM.
func (cart *Cartridge) Read32(address uint32) uint32 {
	o := cart.resolve(address)
	return uint32(cart.loader.ByteAt(o)) | (uint32(cart.loader.ByteAt(o+1)) << 8) |
		(uint32(cart.loader.ByteAt(o+2)) << 16) | (uint32(cart.loader.ByteAt(o+3)) << 24)
}
