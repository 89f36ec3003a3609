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

// Package arm7tdmi implements the console's ARM7TDMI processor: the 32-bit
// ARM interpreter, the 16-bit Thumb interpreter, the banked register and
// exception machinery, and the cycle-budget scheduler that drives the
// whole core.
//
// The interpreters keep a one-entry prefetch queue each, which models the
// visible effect of the processor's pipeline. From "7.6 Data Operations" in
// the "ARM7TDMI-S Technical Reference Manual":
//
// "The program counter points to the instruction being fetched rather than
// to the instruction being executed. This is important because it means
// that the Program Counter (PC) value used in an executing instruction is
// always two instructions ahead of the address."
//
// An instruction that writes to the program counter must flush its queue,
// which refetches at the new address and advances the PC. R15 as read by
// an instruction is therefore the instruction address plus 8 in ARM state
// and plus 4 in Thumb state, with no special casing in the interpreters.
package arm7tdmi
