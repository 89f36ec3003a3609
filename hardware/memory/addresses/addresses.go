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

// Package addresses names the memory mapped IO registers. The values are
// offsets into the IO region (bank 0x4 of the memory map).
package addresses

// Display registers.
const (
	DISPCNT  = 0x00
	DISPSTAT = 0x04
	VCOUNT   = 0x06

	BG0CNT = 0x08
	BG1CNT = 0x0a
	BG2CNT = 0x0c
	BG3CNT = 0x0e

	BG0HOFS = 0x10
	BG0VOFS = 0x12
	BG1HOFS = 0x14
	BG1VOFS = 0x16
	BG2HOFS = 0x18
	BG2VOFS = 0x1a
	BG3HOFS = 0x1c
	BG3VOFS = 0x1e

	BG2PA = 0x20
	BG2PB = 0x22
	BG2PC = 0x24
	BG2PD = 0x26
	BG2X  = 0x28
	BG2Y  = 0x2c
	BG3PA = 0x30
	BG3PB = 0x32
	BG3PC = 0x34
	BG3PD = 0x36
	BG3X  = 0x38
	BG3Y  = 0x3c
)

// Sound registers.
const (
	SOUNDCNT_L = 0x80
	SOUNDCNT_H = 0x82
	SOUNDCNT_X = 0x84

	FIFO_A = 0xa0
	FIFO_B = 0xa4
)

// DMA registers. Each channel occupies 12 bytes: 32-bit source, 32-bit
// destination, 16-bit count and 16-bit control.
const (
	DMA0SAD   = 0xb0
	DMA0DAD   = 0xb4
	DMA0CNT_L = 0xb8
	DMA0CNT_H = 0xba
	DMA1SAD   = 0xbc
	DMA1DAD   = 0xc0
	DMA1CNT_L = 0xc4
	DMA1CNT_H = 0xc6
	DMA2SAD   = 0xc8
	DMA2DAD   = 0xcc
	DMA2CNT_L = 0xd0
	DMA2CNT_H = 0xd2
	DMA3SAD   = 0xd4
	DMA3DAD   = 0xd8
	DMA3CNT_L = 0xdc
	DMA3CNT_H = 0xde
)

// Timer registers. Each timer occupies 4 bytes: 16-bit reload/count and
// 16-bit control.
const (
	TM0D   = 0x100
	TM0CNT = 0x102
	TM1D   = 0x104
	TM1CNT = 0x106
	TM2D   = 0x108
	TM2CNT = 0x10a
	TM3D   = 0x10c
	TM3CNT = 0x10e
)

// Keypad registers.
const (
	KEYINPUT = 0x130
	KEYCNT   = 0x132
)

// Interrupt and system control registers.
const (
	IE      = 0x200
	IF      = 0x202
	WAITCNT = 0x204
	IME     = 0x208
	HALTCNT = 0x300
)

// Interrupt request bits, as they appear in the IE and IF registers.
const (
	IntVBlank = 0
	IntHBlank = 1
	IntVCount = 2
	IntTimer0 = 3
	IntTimer1 = 4
	IntTimer2 = 5
	IntTimer3 = 6
	IntSerial = 7
	IntDMA0   = 8
	IntDMA1   = 9
	IntDMA2   = 10
	IntDMA3   = 11
	IntKeypad = 12
	IntCart   = 13
)
