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

// Package store provides the flat byte-addressable backing store for the
// console's RAM regions. The memory bus knows where each region lives in
// the store (see the memorymap package); the store itself is deliberately
// ignorant of the memory map.
package store

// Backing is a byte-addressable store. The memory bus accesses all RAM
// regions through this interface.
type Backing interface {
	Read8(offset uint32) uint8
	Write8(offset uint32, value uint8)
}

// RAM is the standard Backing implementation, a single allocation covering
// every region.
type RAM struct {
	data []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type. The
// size argument would normally be memorymap.StoreSize.
func NewRAM(size uint32) *RAM {
	return &RAM{
		data: make([]uint8, size),
	}
}

// Read8 implements the Backing interface.
func (r *RAM) Read8(offset uint32) uint8 {
	return r.data[offset]
}

// Write8 implements the Backing interface.
func (r *RAM) Write8(offset uint32, value uint8) {
	r.data[offset] = value
}

// Region returns a copy of a range of the store. Used for persistence and
// for tests.
func (r *RAM) Region(origin uint32, size uint32) []uint8 {
	c := make([]uint8, size)
	copy(c, r.data[origin:origin+size])
	return c
}

// SetRegion copies data into the store at the given origin.
func (r *RAM) SetRegion(origin uint32, data []uint8) {
	copy(r.data[origin:], data)
}
