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

// Package television drives the console's display timing. Each frame is
// 228 scanlines of 1232 cycles: 960 cycles of visible picture followed by
// 272 cycles of horizontal blank. The vertical blank covers scanlines 160
// to 227.
//
// The television maintains the DISPSTAT and VCOUNT registers, raises the
// vblank/hblank/vcount interrupts, triggers the blanking DMA transfers,
// and renders visible scanlines into its framebuffer, which attached
// PixelRenderer implementations receive as rows of 15-bit colour values.
package television

import (
	"github.com/jetsetilly/gopheradvance/hardware/memory/addresses"
)

// screen dimensions and timing.
const (
	ClksVisible  = 960
	ClksHBlank   = 272
	ClksScanline = ClksVisible + ClksHBlank

	ScanlinesVisible = 160
	ScanlinesTotal   = 228

	Width  = 240
	Height = ScanlinesVisible
)

// FPS is the natural frame rate of the console.
const FPS = float32(16*1024*1024) / float32(ClksScanline*ScanlinesTotal)

// fields of the DISPSTAT register.
const (
	dispstatVBlank       = 1 << 0
	dispstatHBlank       = 1 << 1
	dispstatVCountMatch  = 1 << 2
	dispstatVBlankIRQ    = 1 << 3
	dispstatHBlankIRQ    = 1 << 4
	dispstatVCountIRQ    = 1 << 5
	dispstatVCountTarget = 8
)

// CPU is the view of the processor required by the television.
type CPU interface {
	Execute(cycles int32)
	FireInterrupt()
}

// Bus is the view of the memory bus required by the television and its
// renderer.
type Bus interface {
	PeekIO16(reg uint32) uint16
	PokeIO16(reg uint32, value uint16)
	RequestInterrupt(bit int)
	HBlankDMA()
	VBlankDMA()
	Peek8(address uint32) uint8
	Peek16(address uint32) uint16
	AffineReference(i int) (int32, int32)
}

// PixelRenderer implementations present the framebuffer to the user.
type PixelRenderer interface {
	// SetPixels supplies one visible scanline of 15-bit colour values
	SetPixels(scanline int, pixels []uint16) error

	// EndFrame is called when the frame is complete
	EndFrame(frameNum int) error
}

// Television is the display driver for the console.
type Television struct {
	cpu CPU
	bus Bus

	scr *screen

	renderers []PixelRenderer

	frameNum int

	lmtr limiter
}

// NewTelevision is the preferred method of initialisation for the
// Television type.
func NewTelevision(cpu CPU, bus Bus) *Television {
	tv := &Television{
		cpu: cpu,
		bus: bus,
		scr: newScreen(bus),
	}
	tv.lmtr.init(FPS)
	return tv
}

// AddPixelRenderer attaches a renderer to the television.
func (tv *Television) AddPixelRenderer(r PixelRenderer) {
	tv.renderers = append(tv.renderers, r)
}

// SetFPSCap throttles the frame rate to the console's natural rate. The
// cap is off by default.
func (tv *Television) SetFPSCap(enabled bool) {
	tv.lmtr.active = enabled
}

// Frame returns the number of completed frames.
func (tv *Television) Frame() int {
	return tv.frameNum
}

// RunFrame executes the emulation for one complete frame.
func (tv *Television) RunFrame() error {
	for line := 0; line < ScanlinesTotal; line++ {
		tv.newScanline(line)

		// interrupt state may have changed at the scanline boundary
		tv.cpu.FireInterrupt()

		tv.cpu.Execute(ClksVisible)

		// enter the horizontal blank
		dispstat := tv.bus.PeekIO16(addresses.DISPSTAT)
		tv.bus.PokeIO16(addresses.DISPSTAT, dispstat|dispstatHBlank)

		if line < ScanlinesVisible {
			tv.scr.renderScanline(line)
			for _, r := range tv.renderers {
				if err := r.SetPixels(line, tv.scr.pixels[line][:]); err != nil {
					return err
				}
			}
			tv.bus.HBlankDMA()
		}

		if dispstat&dispstatHBlankIRQ != 0 {
			tv.bus.RequestInterrupt(addresses.IntHBlank)
		}

		tv.cpu.Execute(ClksHBlank)

		tv.bus.PokeIO16(addresses.DISPSTAT,
			tv.bus.PeekIO16(addresses.DISPSTAT) & ^uint16(dispstatHBlank))
	}

	tv.frameNum++
	for _, r := range tv.renderers {
		if err := r.EndFrame(tv.frameNum); err != nil {
			return err
		}
	}

	tv.lmtr.wait()

	return nil
}

// newScanline updates VCOUNT and the DISPSTAT flags for the scanline about
// to run.
func (tv *Television) newScanline(line int) {
	tv.bus.PokeIO16(addresses.VCOUNT, uint16(line))

	dispstat := tv.bus.PeekIO16(addresses.DISPSTAT)

	switch line {
	case ScanlinesVisible:
		// the vertical blank begins
		dispstat |= dispstatVBlank
		tv.bus.PokeIO16(addresses.DISPSTAT, dispstat)
		if dispstat&dispstatVBlankIRQ != 0 {
			tv.bus.RequestInterrupt(addresses.IntVBlank)
		}
		tv.bus.VBlankDMA()
	case ScanlinesTotal - 1:
		// the flag clears on the final scanline
		dispstat &= ^uint16(dispstatVBlank)
		tv.bus.PokeIO16(addresses.DISPSTAT, dispstat)
	}

	// vcount match
	target := int(dispstat >> dispstatVCountTarget)
	if line == target {
		tv.bus.PokeIO16(addresses.DISPSTAT, tv.bus.PeekIO16(addresses.DISPSTAT)|dispstatVCountMatch)
		if dispstat&dispstatVCountIRQ != 0 {
			tv.bus.RequestInterrupt(addresses.IntVCount)
		}
	} else {
		tv.bus.PokeIO16(addresses.DISPSTAT,
			tv.bus.PeekIO16(addresses.DISPSTAT) & ^uint16(dispstatVCountMatch))
	}
}
