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

package store

import (
	"os"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
	"github.com/jetsetilly/gopheradvance/logger"
)

// size of the persisted file: the SRAM region followed by the EEPROM
// region.
const saveSize = (memorymap.MaskSRAM + 1) + (memorymap.MaskEEPROM + 1)

// LoadSave restores the SRAM and EEPROM regions from a previous session. A
// missing file is not an error, the regions are simply left clear.
func (r *RAM) LoadSave(filename string) error {
	d, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return curated.Errorf("store: %v", err)
	}

	if len(d) != saveSize {
		return curated.Errorf("store: save file is the wrong size: %s", filename)
	}

	r.SetRegion(memorymap.OriginSRAM, d[:memorymap.MaskSRAM+1])
	r.SetRegion(memorymap.OriginEEPROM, d[memorymap.MaskSRAM+1:])

	logger.Logf(logger.Allow, "store", "loaded save data: %s", filename)

	return nil
}

// WriteSave persists the SRAM and EEPROM regions for games that save.
func (r *RAM) WriteSave(filename string) error {
	d := make([]uint8, 0, saveSize)
	d = append(d, r.Region(memorymap.OriginSRAM, memorymap.MaskSRAM+1)...)
	d = append(d, r.Region(memorymap.OriginEEPROM, memorymap.MaskEEPROM+1)...)

	if err := os.WriteFile(filename, d, 0644); err != nil {
		return curated.Errorf("store: %v", err)
	}

	return nil
}
