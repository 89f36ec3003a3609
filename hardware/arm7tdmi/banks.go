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

package arm7tdmi

// registerBanks holds the out-of-view copies of the banked registers and
// the saved status registers for each exception mode.
//
// The interpreters always work on the flat registers array of the CPU:
// a mode change swaps the banked registers in and out rather than
// indirecting every register access through the current mode.
//
// FIQ banks R8 to R14. The other exception modes bank R13 and R14 only.
type registerBanks struct {
	fiq [7]uint32
	irq [2]uint32
	svc [2]uint32
	abt [2]uint32
	und [2]uint32

	spsrFIQ uint32
	spsrIRQ uint32
	spsrSVC uint32
	spsrABT uint32
	spsrUND uint32
}

// the value returned by an SPSR read in a mode with no SPSR.
const noSPSR = 0xffffffff

// hasSPSR returns true if the current mode has a saved status register.
func (cpu *CPU) hasSPSR() bool {
	switch cpu.status.mode {
	case modeFIQ, modeIRQ, modeSVC, modeABT, modeUND:
		return true
	}
	return false
}

// spsr returns the saved status register for the current mode. In USR and
// SYS mode there is nothing saved and a sentinel value is returned.
func (cpu *CPU) spsr() uint32 {
	switch cpu.status.mode {
	case modeFIQ:
		return cpu.banks.spsrFIQ
	case modeIRQ:
		return cpu.banks.spsrIRQ
	case modeSVC:
		return cpu.banks.spsrSVC
	case modeABT:
		return cpu.banks.spsrABT
	case modeUND:
		return cpu.banks.spsrUND
	}
	return noSPSR
}

// setSPSR writes the saved status register for the current mode. Writes in
// USR and SYS mode are discarded.
func (cpu *CPU) setSPSR(value uint32) {
	switch cpu.status.mode {
	case modeFIQ:
		cpu.banks.spsrFIQ = value
	case modeIRQ:
		cpu.banks.spsrIRQ = value
	case modeSVC:
		cpu.banks.spsrSVC = value
	case modeABT:
		cpu.banks.spsrABT = value
	case modeUND:
		cpu.banks.spsrUND = value
	}
}

// swapRegs exchanges the visible registers with a bank. The bank always
// ends at R14: a two entry bank covers R13-R14 and the seven entry FIQ
// bank covers R8-R14.
func (cpu *CPU) swapRegs(bank []uint32) {
	n := len(bank)
	for i := 0; i < n; i++ {
		j := 15 - n + i
		cpu.registers[j], bank[i] = bank[i], cpu.registers[j]
	}
}

// swapBank exchanges the visible registers with the bank for the given
// mode. USR and SYS modes share the flat registers and have no bank.
func (cpu *CPU) swapBank(mode uint32) {
	switch mode & 0x1f {
	case modeFIQ:
		cpu.swapRegs(cpu.banks.fiq[:])
	case modeIRQ:
		cpu.swapRegs(cpu.banks.irq[:])
	case modeSVC:
		cpu.swapRegs(cpu.banks.svc[:])
	case modeABT:
		cpu.swapRegs(cpu.banks.abt[:])
	case modeUND:
		cpu.swapRegs(cpu.banks.und[:])
	}
}

// writeCPSR replaces the status register, swapping register banks if the
// mode field has changed. A write that does not change the mode leaves the
// visible registers alone, making mode-to-same-mode writes a no-op with
// respect to the banks.
func (cpu *CPU) writeCPSR(value uint32) {
	if value&0x1f != cpu.status.mode {
		// swap out the old bank and swap in the new
		cpu.swapBank(cpu.status.mode)
		cpu.swapBank(value)
	}

	cpu.status.Set(value)
}

// enterException switches the processor to an exception mode: the return
// address lands in the mode's banked R14, the old status register in the
// mode's SPSR, and execution restarts at the vector in ARM state.
func (cpu *CPU) enterException(mode uint32, vector uint32, disableInt bool, disableFiq bool) {
	old := cpu.status.Value()

	// in Thumb state the PC must first move past the return site so that
	// the banked R14 points at the instruction after the one that raised
	// the exception
	if cpu.status.thumb {
		cpu.registers[rPC] += 2
	}

	// clear the T bit and the mode field, then apply the new mode
	next := (old & ^uint32(0x3f)) | mode
	if disableInt {
		next |= 1 << 7
	}
	if disableFiq {
		next |= 1 << 6
	}
	cpu.writeCPSR(next)

	cpu.setSPSR(old)
	cpu.registers[rLR] = cpu.registers[rPC]
	cpu.registers[rPC] = vector

	cpu.reloadQueue()
}
