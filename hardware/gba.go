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

package hardware

import (
	"os"

	"github.com/jetsetilly/gopheradvance/cartridgeloader"
	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/hardware/arm7tdmi"
	"github.com/jetsetilly/gopheradvance/hardware/input"
	"github.com/jetsetilly/gopheradvance/hardware/memory"
	"github.com/jetsetilly/gopheradvance/hardware/memory/addresses"
	"github.com/jetsetilly/gopheradvance/hardware/memory/cartridge"
	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
	"github.com/jetsetilly/gopheradvance/hardware/memory/store"
	"github.com/jetsetilly/gopheradvance/hardware/sound"
	"github.com/jetsetilly/gopheradvance/hardware/television"
	"github.com/jetsetilly/gopheradvance/logger"
)

// the size of a valid BIOS image.
const biosSize = 16 * 1024

// the output rate requested of the host audio device.
const audioRate = 44100

// GBA is the root of the console emulation.
type GBA struct {
	CPU    *arm7tdmi.CPU
	Mem    *memory.Memory
	TV     *television.Television
	Sound  *sound.Sound
	Keypad *input.Keypad
	RAM    *store.RAM

	skipBios bool
}

// Preferences for the creation of a GBA instance.
type Preferences struct {
	// path to a BIOS image. may be empty if SkipBios is set
	BiosFile string

	// start execution at the cartridge entry point, with the machine in
	// the state the BIOS would have left it
	SkipBios bool
}

// NewGBA is the preferred method of initialisation for the GBA type.
func NewGBA(loader cartridgeloader.Loader, prefs Preferences) (*GBA, error) {
	if err := loader.Load(); err != nil {
		return nil, curated.Errorf("gba: %v", err)
	}

	var bios []uint8

	if prefs.BiosFile != "" {
		d, err := os.ReadFile(prefs.BiosFile)
		if err != nil {
			return nil, curated.Errorf("gba: bios: %v", err)
		}
		if len(d) != biosSize {
			return nil, curated.Errorf("gba: bios: image is not 16k: %s", prefs.BiosFile)
		}
		bios = d
	} else if !prefs.SkipBios {
		return nil, curated.Errorf("gba: no bios image and skipbios not requested")
	}

	gba := &GBA{
		RAM:      store.NewRAM(memorymap.StoreSize),
		Sound:    sound.NewSound(audioRate),
		Keypad:   input.NewKeypad(),
		skipBios: prefs.SkipBios,
	}

	cart := cartridge.NewCartridge(loader)

	gba.Mem = memory.NewMemory(gba.RAM, bios, cart, gba.Keypad, gba.Sound)
	gba.CPU = arm7tdmi.NewCPU(gba.Mem, gba.Sound)
	gba.Mem.Plumb(gba.CPU)
	gba.Sound.Attach(gba.Mem)
	gba.Keypad.Attach(
		func() uint16 { return gba.Mem.PeekIO16(addresses.KEYCNT) },
		gba.Mem.RequestInterrupt,
	)
	gba.TV = television.NewTelevision(gba.CPU, gba.Mem)

	gba.Reset()

	logger.Logf(logger.Allow, "gba", "machine created: %s", loader.Name)

	return gba, nil
}

// Reset the console to its power-on state. The cartridge and the contents
// of the save regions survive.
func (gba *GBA) Reset() {
	gba.CPU.Reset(gba.skipBios)

	// the affine parameter registers reset to the identity matrix
	gba.Mem.PokeIO16(addresses.BG2PA, 0x0100)
	gba.Mem.PokeIO16(addresses.BG2PD, 0x0100)
	gba.Mem.PokeIO16(addresses.BG3PA, 0x0100)
	gba.Mem.PokeIO16(addresses.BG3PD, 0x0100)
}

// LoadSave restores the SRAM and EEPROM regions from a previous session.
func (gba *GBA) LoadSave(filename string) error {
	return gba.RAM.LoadSave(filename)
}

// WriteSave persists the SRAM and EEPROM regions.
func (gba *GBA) WriteSave(filename string) error {
	return gba.RAM.WriteSave(filename)
}
