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
)

// dmaChannel is the live state of one of the four DMA channels. The
// source, destination and count registers are snapshotted from the IO
// shadow when the channel's enable bit transitions and advance as the
// transfer proceeds.
type dmaChannel struct {
	src     uint32
	dst     uint32
	count   uint32
	control uint32
}

// fields of the DMA control word.
const (
	dmaEnable = 1 << 15
	dmaIRQ    = 1 << 14
	dmaRepeat = 1 << 9
	dmaWide   = 1 << 10
)

// start modes, bits 12-13 of the control word.
const (
	dmaStartImmediate = 0
	dmaStartVBlank    = 1
	dmaStartHBlank    = 2
	dmaStartSpecial   = 3
)

func (c *dmaChannel) startMode() uint32 {
	return (c.control >> 12) & 0x3
}

// addresses of a channel's registers in the IO region.

func dmaSourceReg(channel int) uint32 {
	return addresses.DMA0SAD + uint32(channel*12)
}

func dmaDestReg(channel int) uint32 {
	return addresses.DMA0DAD + uint32(channel*12)
}

func dmaCountReg(channel int) uint32 {
	return addresses.DMA0CNT_L + uint32(channel*12)
}

func dmaControlReg(channel int) uint32 {
	return addresses.DMA0CNT_H + uint32(channel*12)
}

// address masks for the source and destination registers. DMA0 cannot see
// the cartridge; only DMA3 can write to it.
var dmaSourceMask = [4]uint32{0x07ffffff, 0x0fffffff, 0x0fffffff, 0x0fffffff}
var dmaDestMask = [4]uint32{0x07ffffff, 0x07ffffff, 0x07ffffff, 0x0fffffff}

// writeDMAControl reacts to a write to a channel's control register. If
// the enable bit has changed the channel's live state is snapshotted from
// the IO shadow and, for an immediate start mode, the transfer performed
// at once.
func (mem *Memory) writeDMAControl(channel int) {
	c := &mem.dma[channel]

	// nothing to do unless the enable bit has changed. in particular this
	// means that rewriting the control register of a channel that has
	// completed (and cleared its cached enable bit) restarts the channel
	if (c.control^uint32(mem.PeekIO16(dmaControlReg(channel))))&dmaEnable == 0 {
		return
	}

	c.src = mem.peekIO32(dmaSourceReg(channel)) & dmaSourceMask[channel]
	c.dst = mem.peekIO32(dmaDestReg(channel)) & dmaDestMask[channel]
	c.count = uint32(mem.PeekIO16(dmaCountReg(channel)))
	c.control = uint32(mem.PeekIO16(dmaControlReg(channel)))

	switch c.startMode() {
	case dmaStartImmediate:
		mem.dmaTransfer(channel)
	case dmaStartVBlank, dmaStartHBlank:
		// transfer waits for the television
	case dmaStartSpecial:
		// transfer waits for a sound FIFO request
	}
}

// dmaTransfer performs a transfer on the channel if it is enabled. Wait
// cycles accumulate per memory access as normal: the CPU does not execute
// during the burst but is charged for it.
func (mem *Memory) dmaTransfer(channel int) {
	c := &mem.dma[channel]

	if c.control&dmaEnable == 0 {
		return
	}

	wide := c.control&dmaWide != 0

	var srcStep, dstStep uint32
	reload := false

	switch (c.control >> 5) & 0x3 {
	case 0:
		dstStep = 1
	case 1:
		dstStep = 0xffffffff
	case 2:
		dstStep = 0
	case 3:
		dstStep = 1
		reload = true
	}

	switch (c.control >> 7) & 0x3 {
	case 0:
		srcStep = 1
	case 1:
		srcStep = 0xffffffff
	case 2:
		srcStep = 0
	case 3:
		// reserved. on channel 3 it means game-pak prefetch, which this
		// core does not do
		if channel == 3 {
			return
		}
	}

	count := c.count
	if count == 0 {
		if channel == 3 {
			count = 0x10000
		} else {
			count = 0x4000
		}
	}

	if c.startMode() == dmaStartSpecial {
		// sound FIFO mode: a fixed burst of four words
		wide = true
		dstStep = 0
		count = 4
		reload = false
	}

	if wide {
		srcStep *= 4
		dstStep *= 4
		for ; count > 0; count-- {
			mem.Write32(c.dst, mem.Read32(c.src))
			c.dst += dstStep
			c.src += srcStep
		}
	} else {
		srcStep *= 2
		dstStep *= 2
		for ; count > 0; count-- {
			mem.Write16(c.dst, mem.Read16(c.src))
			c.dst += dstStep
			c.src += srcStep
		}
	}

	if c.control&dmaRepeat == 0 {
		// a one-shot transfer clears the cached enable bit. the IO shadow
		// keeps the value the guest wrote
		c.control &= ^uint32(dmaEnable)
	} else {
		if reload {
			c.dst = mem.peekIO32(dmaDestReg(channel)) & dmaDestMask[channel]
		}
		c.count = uint32(mem.PeekIO16(dmaCountReg(channel)))
	}

	if c.control&dmaIRQ != 0 {
		mem.RequestInterrupt(addresses.IntDMA0 + channel)
	}
}

// HBlankDMA triggers every enabled channel with the hblank start mode.
// Called by the television at the start of every visible scanline's
// horizontal blank.
func (mem *Memory) HBlankDMA() {
	for i := range mem.dma {
		if mem.dma[i].startMode() == dmaStartHBlank {
			mem.dmaTransfer(i)
		}
	}
}

// VBlankDMA triggers every enabled channel with the vblank start mode.
// Called by the television at the start of the vertical blank.
func (mem *Memory) VBlankDMA() {
	for i := range mem.dma {
		if mem.dma[i].startMode() == dmaStartVBlank {
			mem.dmaTransfer(i)
		}
	}
}

// FIFODMA triggers the channel if it is in sound FIFO mode. Called when a
// sound FIFO runs low.
func (mem *Memory) FIFODMA(channel int) {
	if mem.dma[channel].startMode() == dmaStartSpecial {
		mem.dmaTransfer(channel)
	}
}
