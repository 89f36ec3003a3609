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

import (
	"math/bits"

	"github.com/jetsetilly/gopheradvance/logger"
)

// data processing opcodes, bits 24-21 of the instruction.
const (
	opAND = iota
	opEOR
	opSUB
	opRSB
	opADD
	opADC
	opSBC
	opRSC
	opTST
	opTEQ
	opCMP
	opCMN
	opORR
	opMOV
	opBIC
	opMVN
)

// barrel shifter types, bits 6-5 of the shifter operand.
const (
	shiftLSL = iota
	shiftLSR
	shiftASR
	shiftROR
)

// the AL condition, which skips the condition test entirely.
const condAL = 0b1110

// stepARM executes one instruction from the ARM prefetch queue and
// refetches.
func (cpu *CPU) stepARM() {
	opcode := cpu.armQueue
	cpu.armQueue = cpu.mem.Read32Aligned(cpu.registers[rPC])
	cpu.registers[rPC] += 4

	cond := uint8(opcode >> 28)
	if cond != condAL && !cpu.status.condition(cond) {
		// a failed condition still pays for its fetch
		return
	}

	switch (opcode >> 25) & 0x7 {
	case 0b000:
		cpu.armDataProcessing(opcode)
	case 0b001:
		cpu.armDataProcessingImmediate(opcode)
	case 0b010:
		cpu.armLoadStore(opcode, opcode&0xfff)
	case 0b011:
		// the shifter operand of a register-offset load/store always has
		// a zero in bit 4, so the immediate-shift path applies
		cpu.armLoadStore(opcode, cpu.barrelShifter(opcode))
	case 0b100:
		cpu.armLoadStoreMultiple(opcode)
	case 0b101:
		cpu.armBranch(opcode)
	case 0b110:
		cpu.armCoprocessor(opcode)
	case 0b111:
		if opcode&(1<<24) != 0 {
			cpu.armSoftwareInterrupt(opcode)
		} else {
			cpu.armCoprocessor(opcode)
		}
	}
}

// carryIn returns the C flag as an integer for use in arithmetic.
func (cpu *CPU) carryIn() uint32 {
	if cpu.status.carry {
		return 1
	}
	return 0
}

// barrelShifter evaluates the register form of the shifter operand,
// leaving the shifter's carry out in cpu.shifterCarry.
//
// The corner cases follow "5.4 Data-processing operands" of the ARM
// architecture manual: a register-specified shift of zero passes the value
// through with the carry preserved; an immediate LSR or ASR of zero means
// a shift of 32; an immediate ROR of zero is RRX, a 33-bit rotate through
// the carry flag.
func (cpu *CPU) barrelShifter(shifterOperand uint32) uint32 {
	typ := (shifterOperand >> 5) & 0x3
	registerShift := shifterOperand&(1<<4) != 0

	rm := cpu.registers[shifterOperand&0xf]

	var amount uint32
	if registerShift {
		rs := (shifterOperand >> 8) & 0xf
		if rs == 15 {
			amount = (cpu.registers[rs] + 4) & 0xff
		} else {
			amount = cpu.registers[rs] & 0xff
		}

		// R15 as Rm reads four bytes further ahead when the shift amount
		// comes from a register
		if shifterOperand&0xf == 15 {
			rm += 4
		}
	} else {
		amount = (shifterOperand >> 7) & 0x1f
	}

	if registerShift {
		if amount == 0 {
			cpu.shifterCarry = cpu.status.carry
			return rm
		}

		switch typ {
		case shiftLSL:
			if amount < 32 {
				cpu.shifterCarry = (rm>>(32-amount))&1 == 1
				return rm << amount
			} else if amount == 32 {
				cpu.shifterCarry = rm&1 == 1
				return 0
			}
			cpu.shifterCarry = false
			return 0

		case shiftLSR:
			if amount < 32 {
				cpu.shifterCarry = (rm>>(amount-1))&1 == 1
				return rm >> amount
			} else if amount == 32 {
				cpu.shifterCarry = rm>>31 == 1
				return 0
			}
			cpu.shifterCarry = false
			return 0

		case shiftASR:
			if amount >= 32 {
				cpu.shifterCarry = rm&0x80000000 != 0
				if cpu.shifterCarry {
					return 0xffffffff
				}
				return 0
			}
			cpu.shifterCarry = (rm>>(amount-1))&1 == 1
			return uint32(int32(rm) >> amount)

		case shiftROR:
			if amount&0x1f == 0 {
				cpu.shifterCarry = rm>>31 == 1
				return rm
			}
			amount &= 0x1f
			cpu.shifterCarry = (rm>>(amount-1))&1 == 1
			return (rm >> amount) | (rm << (32 - amount))
		}
	}

	switch typ {
	case shiftLSL:
		if amount == 0 {
			cpu.shifterCarry = cpu.status.carry
			return rm
		}
		cpu.shifterCarry = (rm>>(32-amount))&1 == 1
		return rm << amount

	case shiftLSR:
		if amount == 0 {
			// LSR #0 encodes LSR #32
			cpu.shifterCarry = rm>>31 == 1
			return 0
		}
		cpu.shifterCarry = (rm>>(amount-1))&1 == 1
		return rm >> amount

	case shiftASR:
		if amount == 0 {
			// ASR #0 encodes ASR #32
			cpu.shifterCarry = rm&0x80000000 != 0
			if cpu.shifterCarry {
				return 0xffffffff
			}
			return 0
		}
		cpu.shifterCarry = (rm>>(amount-1))&1 == 1
		return uint32(int32(rm) >> amount)

	case shiftROR:
		if amount == 0 {
			// ROR #0 encodes RRX
			c := cpu.carryIn()
			cpu.shifterCarry = rm&1 == 1
			return (c << 31) | (rm >> 1)
		}
		cpu.shifterCarry = (rm>>(amount-1))&1 == 1
		return (rm >> amount) | (rm << (32 - amount))
	}

	return rm
}

func (cpu *CPU) armDataProcessing(opcode uint32) {
	// multiplies, swaps and the halfword transfers hide inside the data
	// processing space, disambiguated by bits 7-4
	switch (opcode >> 4) & 0xf {
	case 0x9:
		cpu.armMultiplyOrSwap(opcode)
		return
	case 0xb, 0xd, 0xf:
		cpu.armLoadStoreHalfword(opcode)
		return
	}

	cpu.armDoDataProcessing(opcode, cpu.barrelShifter(opcode))
}

func (cpu *CPU) armDataProcessingImmediate(opcode uint32) {
	immed := opcode & 0xff
	rotate := ((opcode >> 8) & 0xf) * 2

	if rotate == 0 {
		cpu.shifterCarry = cpu.status.carry
	} else {
		immed = (immed >> rotate) | (immed << (32 - rotate))
		cpu.shifterCarry = immed>>31 == 1
	}

	cpu.armDoDataProcessing(opcode, immed)
}

func (cpu *CPU) armDoDataProcessing(opcode uint32, shifterOperand uint32) {
	rnReg := (opcode >> 16) & 0xf
	rd := (opcode >> 12) & 0xf

	registerShift := opcode&(1<<4) != 0

	rn := cpu.registers[rnReg]
	if rnReg == 15 && (opcode>>25)&0x7 == 0 && registerShift {
		// R15 as Rn reads four bytes further ahead when the shifter
		// amount comes from a register
		rn += 4
	}

	op := (opcode >> 21) & 0xf
	sr := &cpu.status

	if opcode&(1<<20) != 0 {
		// flag setting forms
		var result uint32

		switch op {
		case opAND:
			result = rn & shifterOperand
			cpu.registers[rd] = result
			sr.carry = cpu.shifterCarry
		case opEOR:
			result = rn ^ shifterOperand
			cpu.registers[rd] = result
			sr.carry = cpu.shifterCarry
		case opSUB:
			result = rn - shifterOperand
			cpu.registers[rd] = result
			sr.isCarry(rn, ^shifterOperand, 1)
			sr.isOverflow(rn, ^shifterOperand, 1)
		case opRSB:
			result = shifterOperand - rn
			cpu.registers[rd] = result
			sr.isCarry(shifterOperand, ^rn, 1)
			sr.isOverflow(shifterOperand, ^rn, 1)
		case opADD:
			result = rn + shifterOperand
			cpu.registers[rd] = result
			sr.isCarry(rn, shifterOperand, 0)
			sr.isOverflow(rn, shifterOperand, 0)
		case opADC:
			c := cpu.carryIn()
			result = rn + shifterOperand + c
			cpu.registers[rd] = result
			sr.isCarry(rn, shifterOperand, c)
			sr.isOverflow(rn, shifterOperand, c)
		case opSBC:
			c := cpu.carryIn()
			result = rn - shifterOperand - (1 - c)
			cpu.registers[rd] = result
			sr.isCarry(rn, ^shifterOperand, c)
			sr.isOverflow(rn, ^shifterOperand, c)
		case opRSC:
			c := cpu.carryIn()
			result = shifterOperand - rn - (1 - c)
			cpu.registers[rd] = result
			sr.isCarry(shifterOperand, ^rn, c)
			sr.isOverflow(shifterOperand, ^rn, c)
		case opTST:
			result = rn & shifterOperand
			sr.carry = cpu.shifterCarry
		case opTEQ:
			result = rn ^ shifterOperand
			sr.carry = cpu.shifterCarry
		case opCMP:
			result = rn - shifterOperand
			sr.isCarry(rn, ^shifterOperand, 1)
			sr.isOverflow(rn, ^shifterOperand, 1)
		case opCMN:
			result = rn + shifterOperand
			sr.isCarry(rn, shifterOperand, 0)
			sr.isOverflow(rn, shifterOperand, 0)
		case opORR:
			result = rn | shifterOperand
			cpu.registers[rd] = result
			sr.carry = cpu.shifterCarry
		case opMOV:
			result = shifterOperand
			cpu.registers[rd] = result
			sr.carry = cpu.shifterCarry
		case opBIC:
			result = rn & ^shifterOperand
			cpu.registers[rd] = result
			sr.carry = cpu.shifterCarry
		case opMVN:
			result = ^shifterOperand
			cpu.registers[rd] = result
			sr.carry = cpu.shifterCarry
		}

		sr.isNegative(result)
		sr.isZero(result)

		if rd == 15 {
			// an S-bit write to the PC loads the CPSR from the SPSR. this
			// is how exception handlers return, and the mode switch can
			// also be a switch back to Thumb
			if cpu.hasSPSR() {
				cpu.writeCPSR(cpu.spsr())
			}
			cpu.reloadQueue()
		}

		return
	}

	// without the S bit the test opcodes encode the status register
	// transfer instructions and BX
	switch op {
	case opAND:
		cpu.registers[rd] = rn & shifterOperand
	case opEOR:
		cpu.registers[rd] = rn ^ shifterOperand
	case opSUB:
		cpu.registers[rd] = rn - shifterOperand
	case opRSB:
		cpu.registers[rd] = shifterOperand - rn
	case opADD:
		cpu.registers[rd] = rn + shifterOperand
	case opADC:
		cpu.registers[rd] = rn + shifterOperand + cpu.carryIn()
	case opSBC:
		cpu.registers[rd] = rn - shifterOperand - (1 - cpu.carryIn())
	case opRSC:
		cpu.registers[rd] = shifterOperand - rn - (1 - cpu.carryIn())
	case opORR:
		cpu.registers[rd] = rn | shifterOperand
	case opMOV:
		cpu.registers[rd] = shifterOperand
	case opBIC:
		cpu.registers[rd] = rn & ^shifterOperand
	case opMVN:
		cpu.registers[rd] = ^shifterOperand

	case opTST:
		// MRS rd, CPSR
		cpu.registers[rd] = cpu.status.Value()

	case opCMP:
		// MRS rd, SPSR
		if cpu.hasSPSR() {
			cpu.registers[rd] = cpu.spsr()
		}

	case opTEQ:
		// bits 7-4 only select BX in the register form. in the immediate
		// form they are part of the rotated immediate
		immediate := (opcode>>25)&0x7 == 0b001
		switch {
		case !immediate && (opcode>>4)&0xf == 0x1:
			// BX
			rm := cpu.registers[opcode&0xf]
			cpu.status.thumb = rm&1 == 1
			cpu.registers[rPC] = rm & ^uint32(1)
			cpu.reloadQueue()
		case immediate || (opcode>>4)&0xf == 0x0:
			// MSR CPSR, shifterOperand
			cpu.armMSR(opcode, shifterOperand)
		}
		return

	case opCMN:
		// MSR SPSR, shifterOperand
		if cpu.hasSPSR() {
			s := cpu.spsr()
			s = applyPSRMask(opcode, s, shifterOperand, false)
			cpu.setSPSR(s)
		}
		return
	}

	if rd == 15 {
		cpu.reloadQueue()
	}
}

// applyPSRMask applies the four byte-enable bits of an MSR instruction to
// a status register value. In user mode only the flags byte is writable.
func applyPSRMask(opcode uint32, psr uint32, operand uint32, userMode bool) uint32 {
	if opcode&(1<<16) != 0 && !userMode {
		psr = (psr & 0xffffff00) | (operand & 0x000000ff)
	}
	if opcode&(1<<17) != 0 && !userMode {
		psr = (psr & 0xffff00ff) | (operand & 0x0000ff00)
	}
	if opcode&(1<<18) != 0 && !userMode {
		psr = (psr & 0xff00ffff) | (operand & 0x00ff0000)
	}
	if opcode&(1<<19) != 0 {
		psr = (psr & 0x00ffffff) | (operand & 0xff000000)
	}
	return psr
}

func (cpu *CPU) armMSR(opcode uint32, operand uint32) {
	userMode := cpu.status.mode == modeUSR

	v := applyPSRMask(opcode, cpu.status.Value(), operand, userMode)

	wasThumb := cpu.status.thumb
	cpu.writeCPSR(v)

	// an MSR that sets the T bit is architecturally unpredictable but the
	// queue must follow the new state if it happens
	if cpu.status.thumb != wasThumb {
		cpu.reloadQueue()
	}
}

func (cpu *CPU) armBranch(opcode uint32) {
	if opcode&(1<<24) != 0 {
		// branch with link. R15 is eight bytes ahead of the branch so the
		// return address is R15 minus four
		cpu.registers[rLR] = (cpu.registers[rPC] - 4) & ^uint32(3)
	}

	offset := opcode & 0x00ffffff
	if offset>>23 == 1 {
		offset |= 0xff000000
	}

	cpu.registers[rPC] += offset << 2
	cpu.reloadQueue()
}

func (cpu *CPU) armCoprocessor(opcode uint32) {
	// the console has no coprocessors
	logger.Logf(logger.Allow, "ARM7", "coprocessor instruction %08x treated as no-op (PC: %08x)", opcode, cpu.ExecutingPC())
}

func (cpu *CPU) armSoftwareInterrupt(_ uint32) {
	// R15 is eight bytes ahead. adjusting by four leaves the banked R14
	// pointing at the instruction after the SWI
	cpu.registers[rPC] -= 4
	cpu.enterException(modeSVC, vectorSWI, true, false)
}

func (cpu *CPU) armLoadStore(opcode uint32, offset uint32) {
	rn := (opcode >> 16) & 0xf
	rd := (opcode >> 12) & 0xf

	address := cpu.registers[rn]

	preIndexed := opcode&(1<<24) != 0
	byteTransfer := opcode&(1<<22) != 0
	writeback := opcode&(1<<21) != 0
	load := opcode&(1<<20) != 0

	if opcode&(1<<23) == 0 {
		offset = -offset
	}

	if preIndexed {
		address += offset
		if writeback {
			cpu.registers[rn] = address
		}
	}

	if load {
		if byteTransfer {
			cpu.registers[rd] = uint32(cpu.mem.Read8(address))
		} else {
			cpu.registers[rd] = cpu.mem.Read32(address)
		}

		if rd == 15 {
			cpu.registers[rd] &= ^uint32(3)
			cpu.reloadQueue()
		}

		if !preIndexed && rn != rd {
			cpu.registers[rn] = address + offset
		}
	} else {
		// R15 as the store value reads one word further ahead
		value := cpu.registers[rd]
		if rd == 15 {
			value += 4
		}

		if byteTransfer {
			cpu.mem.Write8(address, uint8(value))
		} else {
			cpu.mem.Write32(address, value)
		}

		if !preIndexed {
			cpu.registers[rn] = address + offset
		}
	}
}

func (cpu *CPU) armLoadStoreHalfword(opcode uint32) {
	rn := (opcode >> 16) & 0xf
	rd := (opcode >> 12) & 0xf

	address := cpu.registers[rn]

	preIndexed := opcode&(1<<24) != 0
	byteTransfer := opcode&(1<<5) == 0
	signedTransfer := opcode&(1<<6) != 0
	writeback := opcode&(1<<21) != 0
	load := opcode&(1<<20) != 0

	var offset uint32
	if opcode&(1<<22) != 0 {
		offset = ((opcode & 0xf00) >> 4) | (opcode & 0xf)
	} else {
		offset = cpu.registers[opcode&0xf]
	}

	if opcode&(1<<23) == 0 {
		offset = -offset
	}

	if preIndexed {
		address += offset
		if writeback {
			cpu.registers[rn] = address
		}
	}

	if load {
		if byteTransfer {
			v := uint32(cpu.mem.Read8(address))
			if signedTransfer && v&0x80 != 0 {
				v |= 0xffffff00
			}
			cpu.registers[rd] = v
		} else {
			v := uint32(cpu.mem.Read16(address))
			if signedTransfer && v&0x8000 != 0 {
				v |= 0xffff0000
			}
			cpu.registers[rd] = v
		}

		if rd == 15 {
			cpu.registers[rd] &= ^uint32(3)
			cpu.reloadQueue()
		}

		if !preIndexed && rn != rd {
			cpu.registers[rn] = address + offset
		}
	} else {
		if byteTransfer {
			cpu.mem.Write8(address, uint8(cpu.registers[rd]))
		} else {
			cpu.mem.Write16(address, uint16(cpu.registers[rd]))
		}

		if !preIndexed {
			cpu.registers[rn] = address + offset
		}
	}
}

func (cpu *CPU) armLoadStoreMultiple(opcode uint32) {
	rn := (opcode >> 16) & 0xf

	curCpsr := cpu.status.Value()

	preIncrement := opcode&(1<<24) != 0
	up := opcode&(1<<23) != 0
	sbit := opcode&(1<<22) != 0
	writeback := opcode&(1<<21) != 0
	load := opcode&(1<<20) != 0

	bitsSet := uint32(bits.OnesCount16(uint16(opcode & 0xffff)))

	base := cpu.registers[rn]

	var address uint32
	if preIncrement {
		if up {
			address = base + 4
			if writeback {
				cpu.registers[rn] += bitsSet * 4
			}
		} else {
			address = base - (bitsSet * 4)
			if writeback {
				cpu.registers[rn] -= bitsSet * 4
			}
		}
	} else {
		if up {
			address = base
			if writeback {
				cpu.registers[rn] += bitsSet * 4
			}
		} else {
			address = base - (bitsSet * 4) + 4
			if writeback {
				cpu.registers[rn] -= bitsSet * 4
			}
		}
	}

	if load {
		if sbit && opcode&(1<<15) == 0 {
			// transfer against the user bank
			cpu.writeCPSR((curCpsr & ^uint32(0x1f)) | modeUSR)
		}

		for i := uint32(0); i < 15; i++ {
			if (opcode>>i)&1 != 1 {
				continue
			}
			cpu.registers[i] = cpu.mem.Read32Aligned(address & ^uint32(3))
			address += 4
		}

		if (opcode>>15)&1 == 1 {
			cpu.registers[rPC] = cpu.mem.Read32Aligned(address & ^uint32(3))

			if sbit && cpu.hasSPSR() {
				// loading the PC with the S bit also loads the CPSR from
				// the SPSR
				cpu.writeCPSR(cpu.spsr())
			}

			if cpu.status.thumb {
				cpu.registers[rPC] &= ^uint32(1)
			} else {
				cpu.registers[rPC] &= ^uint32(3)
			}
			cpu.reloadQueue()
		} else if sbit {
			// return to the correct mode
			cpu.writeCPSR(curCpsr)
		}

		return
	}

	if sbit {
		// transfer against the user bank
		cpu.writeCPSR((curCpsr & ^uint32(0x1f)) | modeUSR)
	}

	// with writeback and the base register in the transfer list the stored
	// value is ambiguous. the choice here: the original base value if the
	// base is the lowest register in the list, the written-back value
	// otherwise
	rnLowest := (opcode>>rn)&1 == 1 && opcode&((1<<rn)-1)&0xffff == 0

	for i := uint32(0); i < 15; i++ {
		if (opcode>>i)&1 == 0 {
			continue
		}
		value := cpu.registers[i]
		if i == rn && writeback && rnLowest {
			value = base
		}
		cpu.mem.Write32(address, value)
		address += 4
	}

	if (opcode>>15)&1 != 0 {
		// R15 as a store value reads one word further ahead
		cpu.mem.Write32(address, cpu.registers[rPC]+4)
	}

	if sbit {
		cpu.writeCPSR(curCpsr)
	}
}

func (cpu *CPU) armMultiplyOrSwap(opcode uint32) {
	if opcode&(1<<24) != 0 {
		// swap
		rn := (opcode >> 16) & 0xf
		rd := (opcode >> 12) & 0xf
		rm := opcode & 0xf

		if opcode&(1<<22) != 0 {
			// SWPB
			tmp := cpu.mem.Read8(cpu.registers[rn])
			cpu.mem.Write8(cpu.registers[rn], uint8(cpu.registers[rm]))
			cpu.registers[rd] = uint32(tmp)
		} else {
			// SWP
			tmp := cpu.mem.Read32(cpu.registers[rn])
			cpu.mem.Write32(cpu.registers[rn], cpu.registers[rm])
			cpu.registers[rd] = tmp
		}
		return
	}

	switch (opcode >> 21) & 0x7 {
	case 0, 1:
		// MUL and MLA
		rd := (opcode >> 16) & 0xf
		acc := cpu.registers[(opcode>>12)&0xf]
		rs := cpu.registers[(opcode>>8)&0xf]
		rm := cpu.registers[opcode&0xf]

		cpu.internalCycles += multiplyCycles(rs)

		cpu.registers[rd] = rs * rm

		if opcode&(1<<21) != 0 {
			cpu.registers[rd] += acc
			cpu.internalCycles++
		}

		if opcode&(1<<20) != 0 {
			cpu.status.isNegative(cpu.registers[rd])
			cpu.status.isZero(cpu.registers[rd])
		}

	case 4, 5, 6, 7:
		// the long multiplies
		rdhi := (opcode >> 16) & 0xf
		rdlo := (opcode >> 12) & 0xf
		rs := cpu.registers[(opcode>>8)&0xf]
		rm := cpu.registers[opcode&0xf]

		cpu.internalCycles += multiplyCycles(rs) + 1

		switch (opcode >> 21) & 0x3 {
		case 0:
			// UMULL
			result := uint64(rm) * uint64(rs)
			cpu.registers[rdhi] = uint32(result >> 32)
			cpu.registers[rdlo] = uint32(result)
		case 1:
			// UMLAL
			accum := (uint64(cpu.registers[rdhi]) << 32) | uint64(cpu.registers[rdlo])
			result := uint64(rm)*uint64(rs) + accum
			cpu.registers[rdhi] = uint32(result >> 32)
			cpu.registers[rdlo] = uint32(result)
		case 2:
			// SMULL
			result := int64(int32(rm)) * int64(int32(rs))
			cpu.registers[rdhi] = uint32(uint64(result) >> 32)
			cpu.registers[rdlo] = uint32(uint64(result))
		case 3:
			// SMLAL
			accum := (int64(int32(cpu.registers[rdhi])) << 32) | int64(cpu.registers[rdlo])
			result := int64(int32(rm))*int64(int32(rs)) + accum
			cpu.registers[rdhi] = uint32(uint64(result) >> 32)
			cpu.registers[rdlo] = uint32(uint64(result))
		}

		if opcode&(1<<20) != 0 {
			cpu.status.isNegative(cpu.registers[rdhi])
			cpu.status.zero = cpu.registers[rdhi] == 0 && cpu.registers[rdlo] == 0
		}

	default:
		logger.Logf(logger.Allow, "ARM7", "invalid multiply %08x (PC: %08x)", opcode, cpu.ExecutingPC())
	}
}

// multiplyCycles returns the internal cycles for a multiply with the given
// Rs operand. The ARM7TDMI terminates the multiply early when the top
// bytes of the operand are all zeros or all ones.
func multiplyCycles(rs uint32) uint32 {
	if rs&0xffffff00 == 0 || rs&0xffffff00 == 0xffffff00 {
		return 1
	}
	if rs&0xffff0000 == 0 || rs&0xffff0000 == 0xffff0000 {
		return 2
	}
	if rs&0xff000000 == 0 || rs&0xff000000 == 0xff000000 {
		return 3
	}
	return 4
}
