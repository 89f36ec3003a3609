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

package television

import (
	"github.com/jetsetilly/gopheradvance/hardware/memory/addresses"
)

// base addresses used by the renderer.
const (
	paletteBase = 0x05000000
	vramBase    = 0x06000000
)

// screen is the scanline renderer. It reads video memory through the debug
// surface of the bus so rendering never disturbs the wait cycle
// accounting.
//
// The renderer covers the backdrop, the character (text) backgrounds, the
// affine backgrounds and the three bitmap modes. Sprites, windowing and
// colour effects are beyond it.
type screen struct {
	bus Bus

	pixels [Height][Width]uint16
}

func newScreen(bus Bus) *screen {
	return &screen{
		bus: bus,
	}
}

// fields of the DISPCNT register.
const (
	dispcntMode     = 0x7
	dispcntPage     = 1 << 4
	dispcntBGEnable = 8 // bit position of the BG0 enable bit
)

func (scr *screen) renderScanline(line int) {
	dispcnt := scr.bus.PeekIO16(addresses.DISPCNT)
	mode := int(dispcnt & dispcntMode)

	// the backdrop is the first palette entry
	backdrop := scr.bus.Peek16(paletteBase)
	for x := 0; x < Width; x++ {
		scr.pixels[line][x] = backdrop
	}

	// background layers draw in priority order, lowest priority first so
	// that higher priorities overwrite
	for pri := 3; pri >= 0; pri-- {
		for bg := 3; bg >= 0; bg-- {
			if dispcnt&(1<<(dispcntBGEnable+uint(bg))) == 0 {
				continue
			}

			bgcnt := scr.bus.PeekIO16(addresses.BG0CNT + uint32(bg*2))
			if int(bgcnt&0x3) != pri {
				continue
			}

			switch mode {
			case 0:
				scr.renderTextBG(bg, line)
			case 1:
				if bg < 2 {
					scr.renderTextBG(bg, line)
				} else if bg == 2 {
					scr.renderAffineBG(bg, line)
				}
			case 2:
				if bg >= 2 {
					scr.renderAffineBG(bg, line)
				}
			case 3:
				if bg == 2 {
					scr.renderBitmap16(line, 0, Width, Height)
				}
			case 4:
				if bg == 2 {
					scr.renderBitmap8(line, dispcnt&dispcntPage != 0)
				}
			case 5:
				if bg == 2 {
					scr.renderBitmap16Small(line, dispcnt&dispcntPage != 0)
				}
			}
		}
	}
}

// renderTextBG draws one scanline of a character background.
func (scr *screen) renderTextBG(bg int, line int) {
	bgcnt := scr.bus.PeekIO16(addresses.BG0CNT + uint32(bg*2))

	charBase := vramBase + uint32((bgcnt>>2)&0x3)*0x4000
	screenBase := vramBase + uint32((bgcnt>>8)&0x1f)*0x800
	colours256 := bgcnt&(1<<7) != 0

	// size field: 0=256x256, 1=512x256, 2=256x512, 3=512x512
	widthTiles := 32 << (bgcnt >> 14 & 1)
	heightTiles := 32 << (bgcnt >> 15 & 1)

	hofs := uint32(scr.bus.PeekIO16(addresses.BG0HOFS+uint32(bg*4)) & 0x1ff)
	vofs := uint32(scr.bus.PeekIO16(addresses.BG0VOFS+uint32(bg*4)) & 0x1ff)

	y := (uint32(line) + vofs) & uint32(heightTiles*8-1)
	tileY := y / 8

	for x := 0; x < Width; x++ {
		bx := (uint32(x) + hofs) & uint32(widthTiles*8-1)
		tileX := bx / 8

		// the screen map is made of 32x32 tile blocks
		block := uint32(0)
		if tileX >= 32 {
			block++
		}
		if tileY >= 32 {
			block += uint32(widthTiles / 32)
		}
		entryAddr := screenBase + block*0x800 + ((tileY%32)*32+(tileX%32))*2
		entry := scr.bus.Peek16(entryAddr)

		tile := uint32(entry & 0x3ff)
		hflip := entry&(1<<10) != 0
		vflip := entry&(1<<11) != 0

		px := bx % 8
		py := y % 8
		if hflip {
			px = 7 - px
		}
		if vflip {
			py = 7 - py
		}

		var colour uint16
		if colours256 {
			idx := scr.bus.Peek8(charBase + tile*64 + py*8 + px)
			if idx == 0 {
				continue
			}
			colour = scr.bus.Peek16(paletteBase + uint32(idx)*2)
		} else {
			b := scr.bus.Peek8(charBase + tile*32 + py*4 + px/2)
			idx := (b >> ((px & 1) * 4)) & 0xf
			if idx == 0 {
				continue
			}
			pal := uint32(entry >> 12)
			colour = scr.bus.Peek16(paletteBase + (pal*16+uint32(idx))*2)
		}

		scr.pixels[line][x] = colour
	}
}

// renderAffineBG draws one scanline of a rotated/scaled background. The
// reference point is stepped with the PA-PD parameters; mid-frame changes
// to the reference registers are not modelled.
func (scr *screen) renderAffineBG(bg int, line int) {
	bgcnt := scr.bus.PeekIO16(addresses.BG0CNT + uint32(bg*2))

	charBase := vramBase + uint32((bgcnt>>2)&0x3)*0x4000
	screenBase := vramBase + uint32((bgcnt>>8)&0x1f)*0x800
	wrap := bgcnt&(1<<13) != 0

	// affine backgrounds are square: 128, 256, 512 or 1024 pixels
	size := uint32(128 << (bgcnt >> 14))

	params := addresses.BG2PA + uint32(bg-2)*0x10
	pa := int32(int16(scr.bus.PeekIO16(params)))
	pc := int32(int16(scr.bus.PeekIO16(params + 4)))
	pb := int32(int16(scr.bus.PeekIO16(params + 2)))
	pd := int32(int16(scr.bus.PeekIO16(params + 6)))

	refX, refY := scr.bus.AffineReference(bg - 2)

	for x := 0; x < Width; x++ {
		sx := (refX + int32(x)*pa + int32(line)*pb) >> 8
		sy := (refY + int32(x)*pc + int32(line)*pd) >> 8

		if wrap {
			sx &= int32(size - 1)
			sy &= int32(size - 1)
		} else if sx < 0 || sy < 0 || sx >= int32(size) || sy >= int32(size) {
			continue
		}

		tileX := uint32(sx) / 8
		tileY := uint32(sy) / 8

		// affine screen maps are a flat array of byte entries and the
		// tiles are always 256 colour
		tile := uint32(scr.bus.Peek8(screenBase + tileY*(size/8) + tileX))
		idx := scr.bus.Peek8(charBase + tile*64 + (uint32(sy)%8)*8 + (uint32(sx) % 8))
		if idx == 0 {
			continue
		}

		scr.pixels[line][x] = scr.bus.Peek16(paletteBase + uint32(idx)*2)
	}
}

// renderBitmap16 draws one scanline of the full resolution direct colour
// bitmap mode.
func (scr *screen) renderBitmap16(line int, base uint32, w int, h int) {
	if line >= h {
		return
	}
	for x := 0; x < w; x++ {
		scr.pixels[line][x] = scr.bus.Peek16(vramBase + base + uint32(line*w+x)*2)
	}
}

// renderBitmap8 draws one scanline of the paletted bitmap mode. The page
// flag selects one of the two frame buffers.
func (scr *screen) renderBitmap8(line int, page bool) {
	base := uint32(0)
	if page {
		base = 0xa000
	}
	for x := 0; x < Width; x++ {
		idx := scr.bus.Peek8(vramBase + base + uint32(line*Width+x))
		scr.pixels[line][x] = scr.bus.Peek16(paletteBase + uint32(idx)*2)
	}
}

// renderBitmap16Small draws one scanline of the reduced resolution direct
// colour bitmap mode (160x128, double buffered).
func (scr *screen) renderBitmap16Small(line int, page bool) {
	const smallWidth = 160
	const smallHeight = 128

	if line >= smallHeight {
		return
	}

	base := uint32(0)
	if page {
		base = 0xa000
	}
	for x := 0; x < smallWidth; x++ {
		scr.pixels[line][x] = scr.bus.Peek16(vramBase + base + uint32(line*smallWidth+x)*2)
	}
}
