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

package cartridgeloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopheradvance/cartridgeloader"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestLoaderFromData(t *testing.T) {
	data := []uint8{1, 2, 3, 4}
	ld := cartridgeloader.NewLoaderFromData("test", data)

	test.ExpectSuccess(t, ld.Load())
	test.ExpectEquality(t, ld.Size(), uint32(4))
	test.ExpectEquality(t, ld.ByteAt(0), uint8(1))
	test.ExpectEquality(t, ld.ByteAt(3), uint8(4))

	// out of range reads return zero
	test.ExpectEquality(t, ld.ByteAt(100), uint8(0))
}

func TestLoaderFromFilename(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "game.gba")
	test.ExpectSuccess(t, os.WriteFile(filename, []uint8{0xaa, 0xbb}, 0644))

	ld, err := cartridgeloader.NewLoaderFromFilename(filename)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ld.Name, "game")

	test.ExpectSuccess(t, ld.Load())
	test.ExpectEquality(t, ld.Size(), uint32(2))
	test.ExpectEquality(t, ld.ByteAt(1), uint8(0xbb))

	// the empty filename is rejected
	_, err = cartridgeloader.NewLoaderFromFilename("")
	test.ExpectFailure(t, err)
}

func TestTitle(t *testing.T) {
	rom := make([]uint8, 0x100)
	copy(rom[0xa0:], "DOLPHIN")
	rom[0xb2] = 0x96

	ld := cartridgeloader.NewLoaderFromData("test", rom)
	test.ExpectEquality(t, ld.Title(), "DOLPHIN")

	// without the fixed header byte there is no title
	rom[0xb2] = 0
	ld = cartridgeloader.NewLoaderFromData("test", rom)
	test.ExpectEquality(t, ld.Title(), "")
}
