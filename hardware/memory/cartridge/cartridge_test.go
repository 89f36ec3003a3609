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

package cartridge_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/cartridgeloader"
	"github.com/jetsetilly/gopheradvance/hardware/memory/cartridge"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestMapping(t *testing.T) {
	rom := make([]uint8, 0x8000)
	rom[0] = 0xaa
	rom[1] = 0xbb

	cart := cartridge.NewCartridge(cartridgeloader.NewLoaderFromData("test", rom))

	// a small cartridge maps the first bank only
	test.ExpectSuccess(t, cart.Mapped(0x8))
	test.ExpectSuccess(t, cart.Mapped(0xa))
	test.ExpectFailure(t, cart.Mapped(0x9))

	test.ExpectEquality(t, cart.Read8(0x08000000), uint8(0xaa))
	test.ExpectEquality(t, cart.Read16(0x08000000), uint16(0xbbaa))

	// the ROM mirrors through the bank mask
	test.ExpectEquality(t, cart.Read8(0x08008000), uint8(0xaa))
	test.ExpectEquality(t, cart.Read8(0x0a000000), uint8(0xaa))
}

func TestNotPowerOfTwo(t *testing.T) {
	cart := cartridge.NewCartridge(cartridgeloader.NewLoaderFromData("test", make([]uint8, 0x7000)))

	// no banks at all
	test.ExpectFailure(t, cart.Mapped(0x8))
	test.ExpectFailure(t, cart.Mapped(0x9))
}

func TestAccessTime(t *testing.T) {
	cart := cartridge.NewCartridge(cartridgeloader.NewLoaderFromData("test", make([]uint8, 0x8000)))
	test.ExpectEquality(t, cart.AccessTime(0x08000000), uint32(2))
}
