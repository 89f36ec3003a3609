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

	"github.com/jetsetilly/gopheradvance/hardware/memory"
	"github.com/jetsetilly/gopheradvance/test"
)

// eepromCommand sends a bitstream to the EEPROM the way real software
// does: a DMA3 burst of 16-bit values aimed at the save region.
func eepromCommand(mem *memory.Memory, bitstream []uint16) {
	for i, b := range bitstream {
		mem.Write16(0x02000000+uint32(i*2), b)
	}

	mem.Write32(0x040000d4, 0x02000000)             // source
	mem.Write32(0x040000d8, 0x0e000000)             // destination
	mem.Write16(0x040000dc, uint16(len(bitstream))) // count
	mem.Write16(0x040000de, 0x8000)                 // enable, 16-bit, immediate
}

// eepromReadOut clocks a pending read out of the device, one bit per bus
// read. The DMA registers are set up so the device knows the length of the
// read-out, but the reads are driven by hand so the bits can be collected.
func eepromReadOut(mem *memory.Memory, length int) []uint16 {
	mem.Write32(0x040000d4, 0x0e000000)
	mem.Write32(0x040000d8, 0x02000800)
	mem.Write16(0x040000dc, uint16(length))
	mem.Write16(0x040000de, 0x8000|(1<<12)) // vblank start: snapshot only

	bits := make([]uint16, length)
	for i := range bits {
		bits[i] = mem.Read16(0x0e000000) & 1
	}
	return bits
}

func TestEEPROMWriteAndRead(t *testing.T) {
	mem, _ := newBus(nil, nil)

	data := []uint8{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02, 0x03, 0x04}
	addr := 3

	// short form write: opcode 0b10, six address bits, 64 data bits and a
	// terminator
	stream := []uint16{1, 0}
	for i := 5; i >= 0; i-- {
		stream = append(stream, uint16((addr>>i)&1))
	}
	for _, d := range data {
		for i := 7; i >= 0; i-- {
			stream = append(stream, uint16((d>>i)&1))
		}
	}
	stream = append(stream, 0)
	eepromCommand(mem, stream)

	// short form read request: opcode 0b11, six address bits, terminator
	stream = []uint16{1, 1}
	for i := 5; i >= 0; i-- {
		stream = append(stream, uint16((addr>>i)&1))
	}
	stream = append(stream, 0)
	eepromCommand(mem, stream)

	// read out: four dummy bits then the 64 data bits, MSB first
	bits := eepromReadOut(mem, 68)
	for i := 0; i < 4; i++ {
		test.ExpectEquality(t, bits[i], uint16(0))
	}
	for i, d := range data {
		var b uint8
		for j := 0; j < 8; j++ {
			b = (b << 1) | uint8(bits[4+i*8+j])
		}
		test.ExpectEquality(t, b, d)
	}
}

func TestEEPROMIdleRead(t *testing.T) {
	mem, _ := newBus(nil, nil)

	// with no read pending the device reports ready
	test.ExpectEquality(t, mem.Read16(0x0e000000), uint16(1))
}

func TestEEPROMRequiresDMA(t *testing.T) {
	mem, _ := newBus(nil, nil)

	// writes that do not arrive by DMA3 are ignored
	mem.Write16(0x0e000000, 1)
	mem.Write16(0x0e000000, 1)
	test.ExpectEquality(t, mem.Read16(0x0e000000), uint16(1))
}
