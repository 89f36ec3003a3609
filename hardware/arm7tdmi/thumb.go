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
	"github.com/jetsetilly/gopheradvance/logger"
)

// ALU operation codes for the Thumb format 4 instructions.
const (
	thumbAND = iota
	thumbEOR
	thumbLSL
	thumbLSR
	thumbASR
	thumbADC
	thumbSBC
	thumbROR
	thumbTST
	thumbNEG
	thumbCMP
	thumbCMN
	thumbORR
	thumbMUL
	thumbBIC
	thumbMVN
)

// the Thumb dispatch table, indexed by the high byte of the opcode. built
// once at package initialisation. the table unpacks the nineteen Thumb
// instruction formats of "Figure 5-1" of the ARM7TDMI data sheet.
var thumbDispatch [256]func(cpu *CPU, opcode uint16)

func init() {
	fill := func(lo int, hi int, f func(cpu *CPU, opcode uint16)) {
		for i := lo; i <= hi; i++ {
			thumbDispatch[i] = f
		}
	}

	fill(0x00, 0x07, (*CPU).thumbLslImm)
	fill(0x08, 0x0f, (*CPU).thumbLsrImm)
	fill(0x10, 0x17, (*CPU).thumbAsrImm)
	fill(0x18, 0x19, (*CPU).thumbAddRegReg)
	fill(0x1a, 0x1b, (*CPU).thumbSubRegReg)
	fill(0x1c, 0x1d, (*CPU).thumbAddRegImm)
	fill(0x1e, 0x1f, (*CPU).thumbSubRegImm)
	fill(0x20, 0x27, (*CPU).thumbMovImm)
	fill(0x28, 0x2f, (*CPU).thumbCmpImm)
	fill(0x30, 0x37, (*CPU).thumbAddImm)
	fill(0x38, 0x3f, (*CPU).thumbSubImm)
	fill(0x40, 0x43, (*CPU).thumbALU)
	fill(0x44, 0x44, (*CPU).thumbAddHi)
	fill(0x45, 0x45, (*CPU).thumbCmpHi)
	fill(0x46, 0x46, (*CPU).thumbMovHi)
	fill(0x47, 0x47, (*CPU).thumbBx)
	fill(0x48, 0x4f, (*CPU).thumbLdrPc)
	fill(0x50, 0x51, (*CPU).thumbStrReg)
	fill(0x52, 0x53, (*CPU).thumbStrhReg)
	fill(0x54, 0x55, (*CPU).thumbStrbReg)
	fill(0x56, 0x57, (*CPU).thumbLdrsbReg)
	fill(0x58, 0x59, (*CPU).thumbLdrReg)
	fill(0x5a, 0x5b, (*CPU).thumbLdrhReg)
	fill(0x5c, 0x5d, (*CPU).thumbLdrbReg)
	fill(0x5e, 0x5f, (*CPU).thumbLdrshReg)
	fill(0x60, 0x67, (*CPU).thumbStrImm)
	fill(0x68, 0x6f, (*CPU).thumbLdrImm)
	fill(0x70, 0x77, (*CPU).thumbStrbImm)
	fill(0x78, 0x7f, (*CPU).thumbLdrbImm)
	fill(0x80, 0x87, (*CPU).thumbStrhImm)
	fill(0x88, 0x8f, (*CPU).thumbLdrhImm)
	fill(0x90, 0x97, (*CPU).thumbStrSp)
	fill(0x98, 0x9f, (*CPU).thumbLdrSp)
	fill(0xa0, 0xa7, (*CPU).thumbAddPc)
	fill(0xa8, 0xaf, (*CPU).thumbAddSp)
	fill(0xb0, 0xb0, (*CPU).thumbAdjustSp)
	fill(0xb1, 0xb3, (*CPU).thumbUndefined)
	fill(0xb4, 0xb4, (*CPU).thumbPush)
	fill(0xb5, 0xb5, (*CPU).thumbPushLr)
	fill(0xb6, 0xbb, (*CPU).thumbUndefined)
	fill(0xbc, 0xbc, (*CPU).thumbPop)
	fill(0xbd, 0xbd, (*CPU).thumbPopPc)
	fill(0xbe, 0xbf, (*CPU).thumbUndefined)
	fill(0xc0, 0xc7, (*CPU).thumbStmia)
	fill(0xc8, 0xcf, (*CPU).thumbLdmia)
	fill(0xd0, 0xdd, (*CPU).thumbBCond)
	fill(0xde, 0xde, (*CPU).thumbUndefined)
	fill(0xdf, 0xdf, (*CPU).thumbSwi)
	fill(0xe0, 0xe7, (*CPU).thumbB)
	fill(0xe8, 0xef, (*CPU).thumbUndefined)
	fill(0xf0, 0xf7, (*CPU).thumbBl1)
	fill(0xf8, 0xff, (*CPU).thumbBl2)
}

// stepThumb executes one instruction from the Thumb prefetch queue and
// refetches.
func (cpu *CPU) stepThumb() {
	opcode := cpu.thumbQueue
	cpu.thumbQueue = cpu.mem.Read16(cpu.registers[rPC])
	cpu.registers[rPC] += 2

	thumbDispatch[opcode>>8](cpu, opcode)
}

// format 1 - move shifted register

func (cpu *CPU) thumbLslImm(opcode uint16) {
	// lsl rd, rm, #immed
	rd := opcode & 0x7
	rm := (opcode >> 3) & 0x7
	immed := uint32((opcode >> 6) & 0x1f)

	// if immed_5 == 0
	//	C Flag = unaffected
	//	Rd = Rm
	// else
	//	C Flag = Rm[32 - immed_5]
	//	Rd = Rm Logical_Shift_Left immed_5

	if immed == 0 {
		cpu.registers[rd] = cpu.registers[rm]
	} else {
		cpu.status.carry = (cpu.registers[rm]>>(32-immed))&1 == 1
		cpu.registers[rd] = cpu.registers[rm] << immed
	}

	cpu.status.isNegative(cpu.registers[rd])
	cpu.status.isZero(cpu.registers[rd])
}

func (cpu *CPU) thumbLsrImm(opcode uint16) {
	// lsr rd, rm, #immed
	rd := opcode & 0x7
	rm := (opcode >> 3) & 0x7
	immed := uint32((opcode >> 6) & 0x1f)

	// if immed_5 == 0
	//	C Flag = Rm[31]
	//	Rd = 0
	// else
	//	C Flag = Rm[immed_5 - 1]
	//	Rd = Rm Logical_Shift_Right immed_5

	if immed == 0 {
		cpu.status.carry = cpu.registers[rm]>>31 == 1
		cpu.registers[rd] = 0
	} else {
		cpu.status.carry = (cpu.registers[rm]>>(immed-1))&1 == 1
		cpu.registers[rd] = cpu.registers[rm] >> immed
	}

	cpu.status.isNegative(cpu.registers[rd])
	cpu.status.isZero(cpu.registers[rd])
}

func (cpu *CPU) thumbAsrImm(opcode uint16) {
	// asr rd, rm, #immed
	rd := opcode & 0x7
	rm := (opcode >> 3) & 0x7
	immed := uint32((opcode >> 6) & 0x1f)

	if immed == 0 {
		cpu.status.carry = cpu.registers[rm]>>31 == 1
		if cpu.status.carry {
			cpu.registers[rd] = 0xffffffff
		} else {
			cpu.registers[rd] = 0
		}
	} else {
		cpu.status.carry = (cpu.registers[rm]>>(immed-1))&1 == 1
		cpu.registers[rd] = uint32(int32(cpu.registers[rm]) >> immed)
	}

	cpu.status.isNegative(cpu.registers[rd])
	cpu.status.isZero(cpu.registers[rd])
}

// format 2 - add/subtract

func (cpu *CPU) thumbAddRegReg(opcode uint16) {
	// add rd, rn, rm
	rd := opcode & 0x7
	rn := cpu.registers[(opcode>>3)&0x7]
	rm := cpu.registers[(opcode>>6)&0x7]

	cpu.registers[rd] = rn + rm

	cpu.status.isCarry(rn, rm, 0)
	cpu.status.isOverflow(rn, rm, 0)
	cpu.status.isNegative(cpu.registers[rd])
	cpu.status.isZero(cpu.registers[rd])
}

func (cpu *CPU) thumbSubRegReg(opcode uint16) {
	// sub rd, rn, rm
	rd := opcode & 0x7
	rn := cpu.registers[(opcode>>3)&0x7]
	rm := cpu.registers[(opcode>>6)&0x7]

	cpu.registers[rd] = rn - rm

	cpu.status.isCarry(rn, ^rm, 1)
	cpu.status.isOverflow(rn, ^rm, 1)
	cpu.status.isNegative(cpu.registers[rd])
	cpu.status.isZero(cpu.registers[rd])
}

func (cpu *CPU) thumbAddRegImm(opcode uint16) {
	// add rd, rn, #immed
	rd := opcode & 0x7
	rn := cpu.registers[(opcode>>3)&0x7]
	immed := uint32((opcode >> 6) & 0x7)

	cpu.registers[rd] = rn + immed

	cpu.status.isCarry(rn, immed, 0)
	cpu.status.isOverflow(rn, immed, 0)
	cpu.status.isNegative(cpu.registers[rd])
	cpu.status.isZero(cpu.registers[rd])
}

func (cpu *CPU) thumbSubRegImm(opcode uint16) {
	// sub rd, rn, #immed
	rd := opcode & 0x7
	rn := cpu.registers[(opcode>>3)&0x7]
	immed := uint32((opcode >> 6) & 0x7)

	cpu.registers[rd] = rn - immed

	cpu.status.isCarry(rn, ^immed, 1)
	cpu.status.isOverflow(rn, ^immed, 1)
	cpu.status.isNegative(cpu.registers[rd])
	cpu.status.isZero(cpu.registers[rd])
}

// format 3 - move/compare/add/subtract immediate

func (cpu *CPU) thumbMovImm(opcode uint16) {
	// mov rd, #immed
	rd := (opcode >> 8) & 0x7

	cpu.registers[rd] = uint32(opcode & 0xff)

	cpu.status.negative = false
	cpu.status.isZero(cpu.registers[rd])
}

func (cpu *CPU) thumbCmpImm(opcode uint16) {
	// cmp rn, #immed
	rn := cpu.registers[(opcode>>8)&0x7]
	immed := uint32(opcode & 0xff)

	alu := rn - immed

	cpu.status.isCarry(rn, ^immed, 1)
	cpu.status.isOverflow(rn, ^immed, 1)
	cpu.status.isNegative(alu)
	cpu.status.isZero(alu)
}

func (cpu *CPU) thumbAddImm(opcode uint16) {
	// add rd, #immed
	rd := (opcode >> 8) & 0x7
	immed := uint32(opcode & 0xff)

	ord := cpu.registers[rd]
	cpu.registers[rd] += immed

	cpu.status.isCarry(ord, immed, 0)
	cpu.status.isOverflow(ord, immed, 0)
	cpu.status.isNegative(cpu.registers[rd])
	cpu.status.isZero(cpu.registers[rd])
}

func (cpu *CPU) thumbSubImm(opcode uint16) {
	// sub rd, #immed
	rd := (opcode >> 8) & 0x7
	immed := uint32(opcode & 0xff)

	ord := cpu.registers[rd]
	cpu.registers[rd] -= immed

	cpu.status.isCarry(ord, ^immed, 1)
	cpu.status.isOverflow(ord, ^immed, 1)
	cpu.status.isNegative(cpu.registers[rd])
	cpu.status.isZero(cpu.registers[rd])
}

// format 4 - ALU operations

func (cpu *CPU) thumbALU(opcode uint16) {
	rd := opcode & 0x7
	rn := cpu.registers[(opcode>>3)&0x7]

	sr := &cpu.status

	switch (opcode >> 6) & 0xf {
	case thumbAND:
		cpu.registers[rd] &= rn
		sr.isNegative(cpu.registers[rd])
		sr.isZero(cpu.registers[rd])

	case thumbEOR:
		cpu.registers[rd] ^= rn
		sr.isNegative(cpu.registers[rd])
		sr.isZero(cpu.registers[rd])

	case thumbLSL:
		shift := rn & 0xff
		if shift == 0 {
			// flags from the result only
		} else if shift < 32 {
			sr.carry = (cpu.registers[rd]>>(32-shift))&1 == 1
			cpu.registers[rd] <<= shift
		} else if shift == 32 {
			sr.carry = cpu.registers[rd]&1 == 1
			cpu.registers[rd] = 0
		} else {
			sr.carry = false
			cpu.registers[rd] = 0
		}
		sr.isNegative(cpu.registers[rd])
		sr.isZero(cpu.registers[rd])
		cpu.internalCycles++

	case thumbLSR:
		shift := rn & 0xff
		if shift == 0 {
			// flags from the result only
		} else if shift < 32 {
			sr.carry = (cpu.registers[rd]>>(shift-1))&1 == 1
			cpu.registers[rd] >>= shift
		} else if shift == 32 {
			sr.carry = cpu.registers[rd]>>31 == 1
			cpu.registers[rd] = 0
		} else {
			sr.carry = false
			cpu.registers[rd] = 0
		}
		sr.isNegative(cpu.registers[rd])
		sr.isZero(cpu.registers[rd])
		cpu.internalCycles++

	case thumbASR:
		shift := rn & 0xff
		if shift == 0 {
			// flags from the result only
		} else if shift < 32 {
			sr.carry = (cpu.registers[rd]>>(shift-1))&1 == 1
			cpu.registers[rd] = uint32(int32(cpu.registers[rd]) >> shift)
		} else {
			sr.carry = cpu.registers[rd]>>31 == 1
			if sr.carry {
				cpu.registers[rd] = 0xffffffff
			} else {
				cpu.registers[rd] = 0
			}
		}
		sr.isNegative(cpu.registers[rd])
		sr.isZero(cpu.registers[rd])
		cpu.internalCycles++

	case thumbADC:
		c := cpu.carryIn()
		orig := cpu.registers[rd]
		cpu.registers[rd] += rn + c
		sr.isCarry(orig, rn, c)
		sr.isOverflow(orig, rn, c)
		sr.isNegative(cpu.registers[rd])
		sr.isZero(cpu.registers[rd])

	case thumbSBC:
		c := cpu.carryIn()
		orig := cpu.registers[rd]
		cpu.registers[rd] = cpu.registers[rd] - rn - (1 - c)
		sr.isCarry(orig, ^rn, c)
		sr.isOverflow(orig, ^rn, c)
		sr.isNegative(cpu.registers[rd])
		sr.isZero(cpu.registers[rd])

	case thumbROR:
		shift := rn & 0xff
		if shift == 0 {
			// flags from the result only
		} else if shift&0x1f == 0 {
			sr.carry = cpu.registers[rd]>>31 == 1
		} else {
			shift &= 0x1f
			sr.carry = (cpu.registers[rd]>>(shift-1))&1 == 1
			cpu.registers[rd] = (cpu.registers[rd] >> shift) | (cpu.registers[rd] << (32 - shift))
		}
		sr.isNegative(cpu.registers[rd])
		sr.isZero(cpu.registers[rd])
		cpu.internalCycles++

	case thumbTST:
		alu := cpu.registers[rd] & rn
		sr.isNegative(alu)
		sr.isZero(alu)

	case thumbNEG:
		cpu.registers[rd] = 0 - rn
		sr.isCarry(0, ^rn, 1)
		sr.isOverflow(0, ^rn, 1)
		sr.isNegative(cpu.registers[rd])
		sr.isZero(cpu.registers[rd])

	case thumbCMP:
		alu := cpu.registers[rd] - rn
		sr.isCarry(cpu.registers[rd], ^rn, 1)
		sr.isOverflow(cpu.registers[rd], ^rn, 1)
		sr.isNegative(alu)
		sr.isZero(alu)

	case thumbCMN:
		alu := cpu.registers[rd] + rn
		sr.isCarry(cpu.registers[rd], rn, 0)
		sr.isOverflow(cpu.registers[rd], rn, 0)
		sr.isNegative(alu)
		sr.isZero(alu)

	case thumbORR:
		cpu.registers[rd] |= rn
		sr.isNegative(cpu.registers[rd])
		sr.isZero(cpu.registers[rd])

	case thumbMUL:
		cpu.internalCycles += multiplyCycles(rn)
		cpu.registers[rd] *= rn
		sr.isNegative(cpu.registers[rd])
		sr.isZero(cpu.registers[rd])

	case thumbBIC:
		cpu.registers[rd] &= ^rn
		sr.isNegative(cpu.registers[rd])
		sr.isZero(cpu.registers[rd])

	case thumbMVN:
		cpu.registers[rd] = ^rn
		sr.isNegative(cpu.registers[rd])
		sr.isZero(cpu.registers[rd])
	}
}

// format 5 - hi register operations/branch exchange

func (cpu *CPU) thumbAddHi(opcode uint16) {
	rd := ((opcode & (1 << 7)) >> 4) | (opcode & 0x7)
	rm := (opcode >> 3) & 0xf

	cpu.registers[rd] += cpu.registers[rm]

	if rd == rPC {
		cpu.registers[rd] &= ^uint32(1)
		cpu.reloadQueue()
	}
}

func (cpu *CPU) thumbCmpHi(opcode uint16) {
	rd := ((opcode & (1 << 7)) >> 4) | (opcode & 0x7)
	rm := (opcode >> 3) & 0xf

	alu := cpu.registers[rd] - cpu.registers[rm]

	cpu.status.isCarry(cpu.registers[rd], ^cpu.registers[rm], 1)
	cpu.status.isOverflow(cpu.registers[rd], ^cpu.registers[rm], 1)
	cpu.status.isNegative(alu)
	cpu.status.isZero(alu)
}

func (cpu *CPU) thumbMovHi(opcode uint16) {
	rd := ((opcode & (1 << 7)) >> 4) | (opcode & 0x7)
	rm := (opcode >> 3) & 0xf

	cpu.registers[rd] = cpu.registers[rm]

	if rd == rPC {
		cpu.registers[rd] &= ^uint32(1)
		cpu.reloadQueue()
	}
}

func (cpu *CPU) thumbBx(opcode uint16) {
	rm := cpu.registers[(opcode>>3)&0xf]

	cpu.status.thumb = rm&1 == 1
	cpu.registers[rPC] = rm & ^uint32(1)

	cpu.reloadQueue()
}

// format 6 - PC-relative load

func (cpu *CPU) thumbLdrPc(opcode uint16) {
	rd := (opcode >> 8) & 0x7

	// the PC is aligned down to a word boundary for the base
	address := (cpu.registers[rPC] & ^uint32(2)) + uint32(opcode&0xff)*4
	cpu.registers[rd] = cpu.mem.Read32(address)

	cpu.internalCycles++
}

// format 7 and 8 - register offset loads and stores

func (cpu *CPU) thumbStrReg(opcode uint16) {
	address := cpu.registers[(opcode>>3)&0x7] + cpu.registers[(opcode>>6)&0x7]
	cpu.mem.Write32(address, cpu.registers[opcode&0x7])
}

func (cpu *CPU) thumbStrhReg(opcode uint16) {
	address := cpu.registers[(opcode>>3)&0x7] + cpu.registers[(opcode>>6)&0x7]
	cpu.mem.Write16(address, uint16(cpu.registers[opcode&0x7]))
}

func (cpu *CPU) thumbStrbReg(opcode uint16) {
	address := cpu.registers[(opcode>>3)&0x7] + cpu.registers[(opcode>>6)&0x7]
	cpu.mem.Write8(address, uint8(cpu.registers[opcode&0x7]))
}

func (cpu *CPU) thumbLdrsbReg(opcode uint16) {
	address := cpu.registers[(opcode>>3)&0x7] + cpu.registers[(opcode>>6)&0x7]
	v := uint32(cpu.mem.Read8(address))
	if v&0x80 != 0 {
		v |= 0xffffff00
	}
	cpu.registers[opcode&0x7] = v
	cpu.internalCycles++
}

func (cpu *CPU) thumbLdrReg(opcode uint16) {
	address := cpu.registers[(opcode>>3)&0x7] + cpu.registers[(opcode>>6)&0x7]
	cpu.registers[opcode&0x7] = cpu.mem.Read32(address)
	cpu.internalCycles++
}

func (cpu *CPU) thumbLdrhReg(opcode uint16) {
	address := cpu.registers[(opcode>>3)&0x7] + cpu.registers[(opcode>>6)&0x7]
	cpu.registers[opcode&0x7] = uint32(cpu.mem.Read16(address))
	cpu.internalCycles++
}

func (cpu *CPU) thumbLdrbReg(opcode uint16) {
	address := cpu.registers[(opcode>>3)&0x7] + cpu.registers[(opcode>>6)&0x7]
	cpu.registers[opcode&0x7] = uint32(cpu.mem.Read8(address))
	cpu.internalCycles++
}

func (cpu *CPU) thumbLdrshReg(opcode uint16) {
	address := cpu.registers[(opcode>>3)&0x7] + cpu.registers[(opcode>>6)&0x7]
	v := uint32(cpu.mem.Read16(address))
	if v&0x8000 != 0 {
		v |= 0xffff0000
	}
	cpu.registers[opcode&0x7] = v
	cpu.internalCycles++
}

// format 9 and 10 - immediate offset loads and stores. the immediate is
// scaled by the transfer width

func (cpu *CPU) thumbStrImm(opcode uint16) {
	address := cpu.registers[(opcode>>3)&0x7] + uint32((opcode>>6)&0x1f)*4
	cpu.mem.Write32(address, cpu.registers[opcode&0x7])
}

func (cpu *CPU) thumbLdrImm(opcode uint16) {
	address := cpu.registers[(opcode>>3)&0x7] + uint32((opcode>>6)&0x1f)*4
	cpu.registers[opcode&0x7] = cpu.mem.Read32(address)
	cpu.internalCycles++
}

func (cpu *CPU) thumbStrbImm(opcode uint16) {
	address := cpu.registers[(opcode>>3)&0x7] + uint32((opcode>>6)&0x1f)
	cpu.mem.Write8(address, uint8(cpu.registers[opcode&0x7]))
}

func (cpu *CPU) thumbLdrbImm(opcode uint16) {
	address := cpu.registers[(opcode>>3)&0x7] + uint32((opcode>>6)&0x1f)
	cpu.registers[opcode&0x7] = uint32(cpu.mem.Read8(address))
	cpu.internalCycles++
}

func (cpu *CPU) thumbStrhImm(opcode uint16) {
	address := cpu.registers[(opcode>>3)&0x7] + uint32((opcode>>6)&0x1f)*2
	cpu.mem.Write16(address, uint16(cpu.registers[opcode&0x7]))
}

func (cpu *CPU) thumbLdrhImm(opcode uint16) {
	address := cpu.registers[(opcode>>3)&0x7] + uint32((opcode>>6)&0x1f)*2
	cpu.registers[opcode&0x7] = uint32(cpu.mem.Read16(address))
	cpu.internalCycles++
}

// format 11 - SP-relative loads and stores

func (cpu *CPU) thumbStrSp(opcode uint16) {
	address := cpu.registers[rSP] + uint32(opcode&0xff)*4
	cpu.mem.Write32(address, cpu.registers[(opcode>>8)&0x7])
}

func (cpu *CPU) thumbLdrSp(opcode uint16) {
	address := cpu.registers[rSP] + uint32(opcode&0xff)*4
	cpu.registers[(opcode>>8)&0x7] = cpu.mem.Read32(address)
	cpu.internalCycles++
}

// format 12 - load address

func (cpu *CPU) thumbAddPc(opcode uint16) {
	cpu.registers[(opcode>>8)&0x7] = (cpu.registers[rPC] & ^uint32(2)) + uint32(opcode&0xff)*4
}

func (cpu *CPU) thumbAddSp(opcode uint16) {
	cpu.registers[(opcode>>8)&0x7] = cpu.registers[rSP] + uint32(opcode&0xff)*4
}

// format 13 - add offset to stack pointer. bit 7 selects the sign

func (cpu *CPU) thumbAdjustSp(opcode uint16) {
	if opcode&(1<<7) != 0 {
		cpu.registers[rSP] -= uint32(opcode&0x7f) * 4
	} else {
		cpu.registers[rSP] += uint32(opcode&0x7f) * 4
	}
}

// format 14 - push/pop registers

func (cpu *CPU) thumbPush(opcode uint16) {
	for i := 7; i >= 0; i-- {
		if (opcode>>uint(i))&1 != 0 {
			cpu.registers[rSP] -= 4
			cpu.mem.Write32(cpu.registers[rSP], cpu.registers[i])
		}
	}
}

func (cpu *CPU) thumbPushLr(opcode uint16) {
	cpu.registers[rSP] -= 4
	cpu.mem.Write32(cpu.registers[rSP], cpu.registers[rLR])

	cpu.thumbPush(opcode)
}

func (cpu *CPU) thumbPop(opcode uint16) {
	for i := 0; i < 8; i++ {
		if (opcode>>uint(i))&1 != 0 {
			cpu.registers[i] = cpu.mem.Read32(cpu.registers[rSP])
			cpu.registers[rSP] += 4
		}
	}

	cpu.internalCycles++
}

func (cpu *CPU) thumbPopPc(opcode uint16) {
	for i := 0; i < 8; i++ {
		if (opcode>>uint(i))&1 != 0 {
			cpu.registers[i] = cpu.mem.Read32(cpu.registers[rSP])
			cpu.registers[rSP] += 4
		}
	}

	cpu.registers[rPC] = cpu.mem.Read32(cpu.registers[rSP]) & ^uint32(1)
	cpu.registers[rSP] += 4

	cpu.reloadQueue()

	cpu.internalCycles++
}

// format 15 - multiple load/store

func (cpu *CPU) thumbStmia(opcode uint16) {
	rn := (opcode >> 8) & 0x7

	for i := 0; i < 8; i++ {
		if (opcode>>uint(i))&1 != 0 {
			cpu.mem.Write32(cpu.registers[rn] & ^uint32(3), cpu.registers[i])
			cpu.registers[rn] += 4
		}
	}
}

func (cpu *CPU) thumbLdmia(opcode uint16) {
	rn := (opcode >> 8) & 0x7

	address := cpu.registers[rn]

	for i := 0; i < 8; i++ {
		if (opcode>>uint(i))&1 != 0 {
			cpu.registers[i] = cpu.mem.Read32Aligned(address & ^uint32(3))
			address += 4
		}
	}

	// writeback is skipped when the base register is in the transfer
	// list: the loaded value survives
	if (opcode>>rn)&1 == 0 {
		cpu.registers[rn] = address
	}
}

// format 16 - conditional branch

func (cpu *CPU) thumbBCond(opcode uint16) {
	if !cpu.status.condition(uint8((opcode >> 8) & 0xf)) {
		return
	}

	offset := uint32(opcode & 0xff)
	if offset&(1<<7) != 0 {
		offset |= 0xffffff00
	}

	cpu.registers[rPC] += offset << 1
	cpu.reloadQueue()
}

// format 17 - software interrupt. the comment field is ignored by the core

func (cpu *CPU) thumbSwi(_ uint16) {
	// the R15 adjustment combines with the Thumb-state adjustment in
	// enterException() to leave the banked R14 pointing at the next
	// instruction
	cpu.registers[rPC] -= 4
	cpu.enterException(modeSVC, vectorSWI, true, false)
}

// format 18 - unconditional branch

func (cpu *CPU) thumbB(opcode uint16) {
	offset := uint32(opcode & 0x7ff)
	if offset&(1<<10) != 0 {
		offset |= 0xfffff800
	}

	cpu.registers[rPC] += offset << 1
	cpu.reloadQueue()
}

// format 19 - long branch with link, encoded as two halfwords

func (cpu *CPU) thumbBl1(opcode uint16) {
	offset := uint32(opcode & 0x7ff)
	if offset&(1<<10) != 0 {
		offset |= 0xfffff800
	}

	cpu.registers[rLR] = cpu.registers[rPC] + (offset << 12)
}

func (cpu *CPU) thumbBl2(opcode uint16) {
	tmp := cpu.registers[rPC]
	cpu.registers[rPC] = cpu.registers[rLR] + uint32(opcode&0x7ff)<<1
	cpu.registers[rLR] = (tmp - 2) | 1

	cpu.reloadQueue()
}

func (cpu *CPU) thumbUndefined(opcode uint16) {
	// undefined instructions execute as no-ops
	logger.Logf(logger.Allow, "ARM7", "undefined thumb instruction %04x (PC: %08x)", opcode, cpu.ExecutingPC())
}
