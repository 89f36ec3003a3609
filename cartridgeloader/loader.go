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

// Package cartridgeloader is responsible for getting cartridge data into
// the emulation. A Loader abstracts the source of the data: a file on disk
// or a byte slice prepared by a test.
package cartridgeloader

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/logger"
)

// Loader is how cartridge data gets into the emulation.
type Loader struct {
	// the name to use for the cartridge represented by Loader
	Name string

	// filename of the cartridge being loaded. the empty string for embedded
	// data
	Filename string

	// cartridge data. empty until Load() is called unless the loader was
	// created by NewLoaderFromData()
	Data []uint8
}

// the header fields of a cartridge image. offsets into the ROM data.
const (
	headerTitle    = 0xa0
	headerTitleLen = 12
	headerFixed    = 0xb2
)

// NewLoaderFromFilename is the preferred method of initialisation for the
// Loader type when loading data from a file.
func NewLoaderFromFilename(filename string) (Loader, error) {
	if filename == "" {
		return Loader{}, curated.Errorf("cartridgeloader: no filename")
	}

	name := filepath.Base(filename)
	name = strings.TrimSuffix(name, filepath.Ext(name))

	return Loader{
		Name:     name,
		Filename: filename,
	}, nil
}

// NewLoaderFromData is the preferred method of initialisation for the
// Loader type when the data is already in memory. Principally used by
// tests.
func NewLoaderFromData(name string, data []uint8) Loader {
	return Loader{
		Name: name,
		Data: data,
	}
}

// Load the cartridge data. For a Loader created by NewLoaderFromData() the
// function does nothing (successfully).
func (ld *Loader) Load() error {
	if ld.Data != nil {
		return nil
	}

	d, err := os.ReadFile(ld.Filename)
	if err != nil {
		return curated.Errorf("cartridgeloader: %v", err)
	}
	ld.Data = d

	if t := ld.Title(); t != "" {
		logger.Logf(logger.Allow, "cartridgeloader", "%s (%d bytes)", t, len(ld.Data))
	} else {
		logger.Logf(logger.Allow, "cartridgeloader", "%s (%d bytes)", ld.Name, len(ld.Data))
	}

	return nil
}

// Size of the cartridge data in bytes.
func (ld Loader) Size() uint32 {
	return uint32(len(ld.Data))
}

// ByteAt returns a single byte of the cartridge data. An offset beyond the
// extent of the data returns zero.
func (ld Loader) ByteAt(offset uint32) uint8 {
	if offset >= uint32(len(ld.Data)) {
		return 0
	}
	return ld.Data[offset]
}

// Title returns the game title stored in the cartridge header, or the empty
// string if the data does not look like a cartridge image.
func (ld Loader) Title() string {
	if len(ld.Data) < headerFixed+1 || ld.Data[headerFixed] != 0x96 {
		return ""
	}

	t := ld.Data[headerTitle : headerTitle+headerTitleLen]
	return strings.TrimRight(string(t), "\x00")
}
