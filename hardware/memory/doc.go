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

// Package memory implements the console's memory bus: the bank dispatch on
// bits 27-24 of the address, the per-region wait state accounting, the
// memory mapped IO registers with their side effects (DMA, timers, sound
// FIFOs, interrupt flags, EEPROM), and the open bus behaviour of unmapped
// addresses.
//
// The bus has two surfaces. The Read/Write functions are the "execute"
// surface used by instruction fetch and guest load/store: they accumulate
// wait cycles which the CPU scheduler claims after every instruction with
// ClaimWaitCycles(). The Peek/Poke functions are the "debug" surface: the
// same accesses without the wait cycle accounting, used by the renderer,
// the debugger and tests.
//
// Addresses are aligned before dispatch: 16-bit accesses mask the low bit
// and 32-bit accesses mask the low two bits, with reads rotated so that the
// addressed byte appears in the low position.
package memory
