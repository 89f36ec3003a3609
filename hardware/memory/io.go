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
	"github.com/jetsetilly/gopheradvance/hardware/memory/addresses"
	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
)

// direct access to the IO register shadow. no side effects and no wait
// cycles. offsets are relative to the start of the IO region.

func (mem *Memory) peekIO8(reg uint32) uint8 {
	return mem.backing.Read8(memorymap.OriginIO + reg)
}

func (mem *Memory) pokeIO8(reg uint32, value uint8) {
	mem.backing.Write8(memorymap.OriginIO+reg, value)
}

// PeekIO16 reads an IO register directly, without side effects. Used by
// the television, the renderer and the debugger.
func (mem *Memory) PeekIO16(reg uint32) uint16 {
	return mem.storeRead16(memorymap.OriginIO + reg)
}

// PokeIO16 writes an IO register directly, without side effects.
func (mem *Memory) PokeIO16(reg uint32, value uint16) {
	mem.storeWrite16(memorymap.OriginIO+reg, value)
}

func (mem *Memory) peekIO32(reg uint32) uint32 {
	return mem.storeRead32(memorymap.OriginIO + reg)
}

func (mem *Memory) pokeIO32(reg uint32, value uint32) {
	mem.storeWrite32(memorymap.OriginIO+reg, value)
}

// RequestInterrupt sets a bit in the IF register. There is no acknowledge
// and no automatic clearing: the guest clears the bit by writing a one to
// it.
func (mem *Memory) RequestInterrupt(bit int) {
	mem.PokeIO16(addresses.IF, mem.PeekIO16(addresses.IF)|(1<<uint(bit)))
}

// InterruptMasterEnabled returns the low bit of the IME register.
func (mem *Memory) InterruptMasterEnabled() bool {
	return mem.PeekIO16(addresses.IME)&1 == 1
}

// InterruptsPending returns true if any enabled interrupt is pending.
func (mem *Memory) InterruptsPending() bool {
	return mem.PeekIO16(addresses.IE)&mem.PeekIO16(addresses.IF) != 0
}

// SoundControl implements the sound.Control interface.
func (mem *Memory) SoundControl() (uint16, uint16) {
	return mem.PeekIO16(addresses.SOUNDCNT_H), mem.PeekIO16(addresses.SOUNDCNT_X)
}

// AffineReference returns the sign-extended affine reference point latches
// for background layer 2 (i == 0) or 3 (i == 1).
func (mem *Memory) AffineReference(i int) (int32, int32) {
	return mem.bgx[i], mem.bgy[i]
}

// Keypad returns the keypad attached to the memory bus.
func (mem *Memory) Keypad() uint16 {
	if mem.keypad == nil {
		return 0x03ff
	}
	return mem.keypad.Value()
}

// IO register reads. most registers read straight from the shadow. the
// exceptions: KEYINPUT reads the live key state; the DMA control registers
// read the cached control word, which tracks the enable bit as transfers
// complete; the timer count registers force a timer update and return the
// visible 16-bit count.

func (mem *Memory) readIO8(address uint32) uint8 {
	mem.waitCycles++
	address &= 0x00ffffff

	if address >= memorymap.SizeIO {
		return 0
	}

	switch address {
	case addresses.KEYINPUT:
		return uint8(mem.Keypad())
	case addresses.KEYINPUT + 1:
		return uint8(mem.Keypad() >> 8)

	case addresses.DMA0CNT_H, addresses.DMA1CNT_H, addresses.DMA2CNT_H, addresses.DMA3CNT_H:
		return uint8(mem.dma[dmaChannelOf(address)].control)
	case addresses.DMA0CNT_H + 1, addresses.DMA1CNT_H + 1, addresses.DMA2CNT_H + 1, addresses.DMA3CNT_H + 1:
		return uint8(mem.dma[dmaChannelOf(address-1)].control >> 8)

	case addresses.TM0D, addresses.TM1D, addresses.TM2D, addresses.TM3D:
		mem.tmr.update()
		return uint8(mem.tmr.visibleCount(timerOf(address)))
	case addresses.TM0D + 1, addresses.TM1D + 1, addresses.TM2D + 1, addresses.TM3D + 1:
		mem.tmr.update()
		return uint8(mem.tmr.visibleCount(timerOf(address-1)) >> 8)
	}

	return mem.peekIO8(address)
}

func (mem *Memory) readIO16(address uint32) uint16 {
	mem.waitCycles++
	address &= 0x00ffffff

	if address >= memorymap.SizeIO {
		return 0
	}

	switch address {
	case addresses.KEYINPUT:
		return mem.Keypad()

	case addresses.DMA0CNT_H, addresses.DMA1CNT_H, addresses.DMA2CNT_H, addresses.DMA3CNT_H:
		return uint16(mem.dma[dmaChannelOf(address)].control)

	case addresses.TM0D, addresses.TM1D, addresses.TM2D, addresses.TM3D:
		mem.tmr.update()
		return mem.tmr.visibleCount(timerOf(address))
	}

	return mem.PeekIO16(address)
}

func (mem *Memory) readIO32(address uint32) uint32 {
	mem.waitCycles++
	address &= 0x00ffffff

	if address >= memorymap.SizeIO {
		return 0
	}

	switch address {
	case addresses.KEYINPUT:
		return uint32(mem.Keypad()) | (uint32(mem.PeekIO16(address+2)) << 16)

	case addresses.DMA0CNT_L, addresses.DMA1CNT_L, addresses.DMA2CNT_L, addresses.DMA3CNT_L:
		ch := dmaChannelOf(address + 2)
		return uint32(mem.PeekIO16(address)) | (mem.dma[ch].control << 16)

	case addresses.TM0D, addresses.TM1D, addresses.TM2D, addresses.TM3D:
		mem.tmr.update()
		return uint32(mem.tmr.visibleCount(timerOf(address))) | (uint32(mem.PeekIO16(address+2)) << 16)
	}

	return mem.peekIO32(address)
}

// update one of the affine reference point registers: the 28-bit value in
// the shadow is sign extended and latched for the renderer.
func (mem *Memory) affineWrite(reg uint32, latch *int32) {
	v := mem.peekIO32(reg)
	if v&(1<<27) != 0 {
		v |= 0xf0000000
	}
	mem.pokeIO32(reg, v)
	*latch = int32(v)
}

// dispatch an affine reference point write if the address falls on one of
// the four registers. returns true if the address was claimed.
func (mem *Memory) affineDispatch(address uint32) bool {
	switch address & ^uint32(3) {
	case addresses.BG2X:
		mem.affineWrite(addresses.BG2X, &mem.bgx[0])
	case addresses.BG2Y:
		mem.affineWrite(addresses.BG2Y, &mem.bgy[0])
	case addresses.BG3X:
		mem.affineWrite(addresses.BG3X, &mem.bgx[1])
	case addresses.BG3Y:
		mem.affineWrite(addresses.BG3Y, &mem.bgy[1])
	default:
		return false
	}
	return true
}

// IO register writes. the shadow is updated and then any side effect is
// invoked.

func (mem *Memory) writeIO8(address uint32, value uint8) {
	mem.waitCycles++
	address &= 0x00ffffff

	if address >= memorymap.SizeIO {
		return
	}

	// affine reference points are sign extended on any write to their four
	// bytes
	if address >= addresses.BG2X && address < addresses.BG2Y+4 ||
		address >= addresses.BG3X && address < addresses.BG3Y+4 {
		mem.pokeIO8(address, value)
		mem.affineDispatch(address)
		return
	}

	switch address {
	case addresses.DMA0CNT_H, addresses.DMA0CNT_H + 1,
		addresses.DMA1CNT_H, addresses.DMA1CNT_H + 1,
		addresses.DMA2CNT_H, addresses.DMA2CNT_H + 1,
		addresses.DMA3CNT_H, addresses.DMA3CNT_H + 1:
		mem.pokeIO8(address, value)
		mem.writeDMAControl(dmaChannelOf(address & ^uint32(1)))

	case addresses.TM0CNT, addresses.TM0CNT + 1,
		addresses.TM1CNT, addresses.TM1CNT + 1,
		addresses.TM2CNT, addresses.TM2CNT + 1,
		addresses.TM3CNT, addresses.TM3CNT + 1:
		t := timerOf((address & ^uint32(1)) - 2)
		oldCnt := mem.PeekIO16(timerControlReg(t))
		mem.pokeIO8(address, value)
		mem.writeTimerControl(t, oldCnt)

	case addresses.FIFO_A, addresses.FIFO_A + 1, addresses.FIFO_A + 2, addresses.FIFO_A + 3:
		mem.pokeIO8(address, value)
		mem.snd.FifoA.Enqueue(value)

	case addresses.FIFO_B, addresses.FIFO_B + 1, addresses.FIFO_B + 2, addresses.FIFO_B + 3:
		mem.pokeIO8(address, value)
		mem.snd.FifoB.Enqueue(value)

	case addresses.IF, addresses.IF + 1:
		// write one to clear
		mem.pokeIO8(address, mem.peekIO8(address) & ^value)

	case addresses.HALTCNT + 1:
		mem.pokeIO8(address, value)
		mem.halt()

	default:
		mem.pokeIO8(address, value)
	}
}

func (mem *Memory) writeIO16(address uint32, value uint16) {
	mem.waitCycles++
	address &= 0x00ffffff

	if address >= memorymap.SizeIO {
		return
	}

	if address >= addresses.BG2X && address < addresses.BG2Y+4 ||
		address >= addresses.BG3X && address < addresses.BG3Y+4 {
		mem.PokeIO16(address, value)
		mem.affineDispatch(address)
		return
	}

	switch address {
	case addresses.DMA0CNT_H, addresses.DMA1CNT_H, addresses.DMA2CNT_H, addresses.DMA3CNT_H:
		mem.PokeIO16(address, value)
		mem.writeDMAControl(dmaChannelOf(address))

	case addresses.TM0CNT, addresses.TM1CNT, addresses.TM2CNT, addresses.TM3CNT:
		t := timerOf(address - 2)
		oldCnt := mem.PeekIO16(address)
		mem.PokeIO16(address, value)
		mem.writeTimerControl(t, oldCnt)

	case addresses.FIFO_A, addresses.FIFO_A + 2:
		mem.PokeIO16(address, value)
		mem.snd.FifoA.Enqueue(uint8(value))
		mem.snd.FifoA.Enqueue(uint8(value >> 8))

	case addresses.FIFO_B, addresses.FIFO_B + 2:
		mem.PokeIO16(address, value)
		mem.snd.FifoB.Enqueue(uint8(value))
		mem.snd.FifoB.Enqueue(uint8(value >> 8))

	case addresses.SOUNDCNT_H:
		mem.PokeIO16(address, value)
		if value&(1<<11) != 0 {
			mem.snd.FifoA.Reset()
		}
		if value&(1<<15) != 0 {
			mem.snd.FifoB.Reset()
		}

	case addresses.IF:
		// write one to clear
		mem.PokeIO16(address, mem.PeekIO16(address) & ^value)

	case addresses.HALTCNT:
		mem.PokeIO16(address, value)
		mem.halt()

	default:
		mem.PokeIO16(address, value)
	}
}

func (mem *Memory) writeIO32(address uint32, value uint32) {
	mem.waitCycles++
	address &= 0x00ffffff

	if address >= memorymap.SizeIO {
		return
	}

	switch address {
	case addresses.BG2X, addresses.BG2Y, addresses.BG3X, addresses.BG3Y:
		mem.pokeIO32(address, value)
		mem.affineDispatch(address)

	case addresses.DMA0CNT_L, addresses.DMA1CNT_L, addresses.DMA2CNT_L, addresses.DMA3CNT_L:
		mem.pokeIO32(address, value)
		mem.writeDMAControl(dmaChannelOf(address + 2))

	case addresses.TM0D, addresses.TM1D, addresses.TM2D, addresses.TM3D:
		// reload and control written together
		t := timerOf(address)
		oldCnt := mem.PeekIO16(timerControlReg(t))
		mem.pokeIO32(address, value)
		mem.writeTimerControl(t, oldCnt)

	case addresses.FIFO_A:
		mem.pokeIO32(address, value)
		mem.snd.FifoA.Enqueue(uint8(value))
		mem.snd.FifoA.Enqueue(uint8(value >> 8))
		mem.snd.FifoA.Enqueue(uint8(value >> 16))
		mem.snd.FifoA.Enqueue(uint8(value >> 24))

	case addresses.FIFO_B:
		mem.pokeIO32(address, value)
		mem.snd.FifoB.Enqueue(uint8(value))
		mem.snd.FifoB.Enqueue(uint8(value >> 8))
		mem.snd.FifoB.Enqueue(uint8(value >> 16))
		mem.snd.FifoB.Enqueue(uint8(value >> 24))

	case addresses.SOUNDCNT_L:
		// the upper half of the word is SOUNDCNT_H
		mem.pokeIO32(address, value)
		if (value>>16)&(1<<11) != 0 {
			mem.snd.FifoA.Reset()
		}
		if (value>>16)&(1<<15) != 0 {
			mem.snd.FifoB.Reset()
		}

	case addresses.IE:
		// IE in the lower half. IF in the upper half is write one to clear
		old := mem.PeekIO16(addresses.IF)
		mem.PokeIO16(addresses.IE, uint16(value))
		mem.PokeIO16(addresses.IF, old & ^uint16(value>>16))

	case addresses.HALTCNT:
		mem.pokeIO32(address, value)
		mem.halt()

	default:
		mem.pokeIO32(address, value)
	}
}

func (mem *Memory) halt() {
	if mem.proc != nil {
		mem.proc.Halt()
	}
}

// dmaChannelOf converts the address of a DMA control register to a channel
// number.
func dmaChannelOf(address uint32) int {
	return int((address - addresses.DMA0SAD) / 12)
}

// timerOf converts the address of a timer count register to a timer
// number.
func timerOf(address uint32) int {
	return int((address - addresses.TM0D) / 4)
}

// timerControlReg returns the address of a timer's control register.
func timerControlReg(timer int) uint32 {
	return addresses.TM0CNT + uint32(timer*4)
}
