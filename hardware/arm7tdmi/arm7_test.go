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

package arm7tdmi_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/cartridgeloader"
	"github.com/jetsetilly/gopheradvance/hardware"
	"github.com/jetsetilly/gopheradvance/hardware/memory/addresses"
	"github.com/jetsetilly/gopheradvance/test"
)

// newMachine builds a console around a cartridge containing the program,
// booting directly into the cartridge.
func newMachine(t *testing.T, program ...uint32) *hardware.GBA {
	t.Helper()

	rom := make([]uint8, 0x8000)
	for i, w := range program {
		rom[i*4] = uint8(w)
		rom[i*4+1] = uint8(w >> 8)
		rom[i*4+2] = uint8(w >> 16)
		rom[i*4+3] = uint8(w >> 24)
	}

	gba, err := hardware.NewGBA(cartridgeloader.NewLoaderFromData("test", rom),
		hardware.Preferences{SkipBios: true})
	test.ExpectSuccess(t, err)

	return gba
}

func TestReset(t *testing.T) {
	gba := newMachine(t, 0xe3a00012)

	// SYS mode, ARM state, prefetch one word past the boot address
	test.ExpectEquality(t, gba.CPU.Status().Value()&0x1f, uint32(0x1f))
	test.ExpectEquality(t, gba.CPU.InThumbState(), false)
	test.ExpectEquality(t, gba.CPU.ProgramCounter(), uint32(0x08000004))

	for i := 0; i < 15; i++ {
		test.ExpectEquality(t, gba.CPU.Register(i), uint32(0))
	}
}

func TestMovImmediate(t *testing.T) {
	// mov r0, #0x12
	gba := newMachine(t, 0xe3a00012)

	gba.CPU.Step()

	test.ExpectEquality(t, gba.CPU.Register(0), uint32(0x12))
	test.ExpectEquality(t, gba.CPU.ProgramCounter(), uint32(0x08000008))
	test.ExpectEquality(t, gba.CPU.Status().Value()>>28, uint32(0))
}

func TestThumbAddSequence(t *testing.T) {
	// switch to thumb and run: mov r0, #0x64 / add r0, r0, r1
	gba := newMachine(t,
		0xe3a01001, // mov r1, #1
		0xe28f2001, // add r2, pc, #1
		0xe12fff12, // bx r2
		0x18402064, // thumb: mov r0, #0x64 / add r0, r0, r1
	)

	gba.CPU.Step()
	gba.CPU.Step()
	gba.CPU.Step()
	test.ExpectEquality(t, gba.CPU.InThumbState(), true)

	gba.CPU.Step()
	test.ExpectEquality(t, gba.CPU.Register(0), uint32(0x64))

	gba.CPU.Step()
	test.ExpectEquality(t, gba.CPU.Register(0), uint32(0x65))
	test.ExpectEquality(t, gba.CPU.Status().Value()>>28, uint32(0))
}

func TestSubsFlags(t *testing.T) {
	// subs r0, r1, #0 three times over
	gba := newMachine(t, 0xe2510000, 0xe2510000, 0xe2510000)

	// zero operand: Z and C
	gba.CPU.SetRegister(1, 0)
	gba.CPU.Step()
	test.ExpectEquality(t, gba.CPU.Status().Value()>>28, uint32(0b0110))

	// negative operand: N and C
	gba.CPU.SetRegister(1, 0x80000000)
	gba.CPU.Step()
	test.ExpectEquality(t, gba.CPU.Status().Value()>>28, uint32(0b1010))

	// positive operand: C only
	gba.CPU.SetRegister(1, 1)
	gba.CPU.Step()
	test.ExpectEquality(t, gba.CPU.Status().Value()>>28, uint32(0b0010))
}

func TestShifterBoundaries(t *testing.T) {
	// movs r0, r1, lsl r3
	gba := newMachine(t, 0xe1b00311)
	gba.CPU.SetRegister(1, 0x80000001)
	gba.CPU.SetRegister(3, 32)
	gba.CPU.Step()
	test.ExpectEquality(t, gba.CPU.Register(0), uint32(0))
	test.ExpectEquality(t, gba.CPU.Status().Value()>>28, uint32(0b0110)) // Z and C

	// movs r0, r1, asr #32 (encoded as asr #0)
	gba = newMachine(t, 0xe1b00041)
	gba.CPU.SetRegister(1, 0x80000000)
	gba.CPU.Step()
	test.ExpectEquality(t, gba.CPU.Register(0), uint32(0xffffffff))
	test.ExpectEquality(t, gba.CPU.Status().Value()>>28, uint32(0b1010)) // N and C

	// movs r0, r1, rrx (encoded as ror #0). the carry flag is clear on
	// reset so the rotated-in bit is zero
	gba = newMachine(t, 0xe1b00061)
	gba.CPU.SetRegister(1, 0x80000003)
	gba.CPU.Step()
	test.ExpectEquality(t, gba.CPU.Register(0), uint32(0x40000001))
	test.ExpectEquality(t, gba.CPU.Status().Value()>>28, uint32(0b0010)) // C from the rotated-out bit
}

func TestModeSwitchRoundTrip(t *testing.T) {
	gba := newMachine(t,
		0xe3a0d0aa, // mov r13, #0xaa
		0xe321f012, // msr cpsr_c, #0x12 (IRQ mode)
		0xe3a0d001, // mov r13, #1
		0xe321f01f, // msr cpsr_c, #0x1f (SYS mode)
	)

	gba.CPU.Step()
	test.ExpectEquality(t, gba.CPU.Register(13), uint32(0xaa))

	// the banked IRQ stack pointer is seeded on reset
	gba.CPU.Step()
	test.ExpectEquality(t, gba.CPU.Status().Value()&0x1f, uint32(0x12))
	test.ExpectEquality(t, gba.CPU.Register(13), uint32(0x03007fa0))

	gba.CPU.Step()
	test.ExpectEquality(t, gba.CPU.Register(13), uint32(1))

	// returning to SYS mode restores the visible register
	gba.CPU.Step()
	test.ExpectEquality(t, gba.CPU.Status().Value()&0x1f, uint32(0x1f))
	test.ExpectEquality(t, gba.CPU.Register(13), uint32(0xaa))
}

func TestSoftwareInterrupt(t *testing.T) {
	gba := newMachine(t,
		0xe3a00012, // mov r0, #0x12
		0xef000000, // swi 0
	)

	gba.CPU.Step()
	gba.CPU.Step()

	// SVC mode with interrupts disabled, return address in the banked
	// R14, the banked stack pointer visible
	test.ExpectEquality(t, gba.CPU.Status().Value()&0x1f, uint32(0x13))
	test.ExpectInequality(t, gba.CPU.Status().Value()&0x80, uint32(0))
	test.ExpectEquality(t, gba.CPU.Register(14), uint32(0x08000008))
	test.ExpectEquality(t, gba.CPU.Register(13), uint32(0x03007fe0))
	test.ExpectEquality(t, gba.CPU.SPSR()&0x1f, uint32(0x1f))

	// the untouched R0 survives the mode switch
	test.ExpectEquality(t, gba.CPU.Register(0), uint32(0x12))
}

func TestInterruptDelivery(t *testing.T) {
	// b . (branch to self)
	gba := newMachine(t, 0xeafffffe)

	gba.Mem.Write16(0x04000208, 1) // IME
	gba.Mem.Write16(0x04000200, 1) // IE
	gba.Mem.RequestInterrupt(addresses.IntVBlank)

	oldCpsr := gba.CPU.Status().Value()
	oldPC := gba.CPU.ProgramCounter()

	gba.CPU.FireInterrupt()

	test.ExpectEquality(t, gba.CPU.Status().Value()&0x1f, uint32(0x12))
	test.ExpectInequality(t, gba.CPU.Status().Value()&0x80, uint32(0))
	test.ExpectEquality(t, gba.CPU.InThumbState(), false)
	test.ExpectEquality(t, gba.CPU.SPSR(), oldCpsr)
	test.ExpectEquality(t, gba.CPU.Register(14), oldPC)

	// prefetch has advanced one word past the IRQ vector
	test.ExpectEquality(t, gba.CPU.ProgramCounter(), uint32(0x1c))
}

func TestInterruptMasking(t *testing.T) {
	gba := newMachine(t, 0xeafffffe)

	// pending but not enabled
	gba.Mem.Write16(0x04000208, 1)
	gba.Mem.RequestInterrupt(addresses.IntVBlank)
	gba.CPU.FireInterrupt()
	test.ExpectEquality(t, gba.CPU.Status().Value()&0x1f, uint32(0x1f))

	// enabled but the master switch is off
	gba.Mem.Write16(0x04000200, 1)
	gba.Mem.Write16(0x04000208, 0)
	gba.CPU.FireInterrupt()
	test.ExpectEquality(t, gba.CPU.Status().Value()&0x1f, uint32(0x1f))

	// all switches on
	gba.Mem.Write16(0x04000208, 1)
	gba.CPU.FireInterrupt()
	test.ExpectEquality(t, gba.CPU.Status().Value()&0x1f, uint32(0x12))
}

func TestBxRoundTrip(t *testing.T) {
	gba := newMachine(t,
		0xe28f2001, // add r2, pc, #1
		0xe12fff12, // bx r2 (to thumb at 0x08000008)
		0x46c04718, // thumb: bx r3 / nop
		0xe1a00000, // nop (arm target)
	)

	gba.CPU.SetRegister(3, 0x0800000c)

	gba.CPU.Step()
	gba.CPU.Step()
	test.ExpectEquality(t, gba.CPU.InThumbState(), true)
	test.ExpectEquality(t, gba.CPU.ProgramCounter(), uint32(0x0800000a))

	gba.CPU.Step()
	test.ExpectEquality(t, gba.CPU.InThumbState(), false)
	test.ExpectEquality(t, gba.CPU.ProgramCounter(), uint32(0x08000010))
}

func TestHalt(t *testing.T) {
	gba := newMachine(t, 0xeafffffe)

	gba.Mem.Write8(0x04000301, 0)
	test.ExpectEquality(t, gba.CPU.Halted(), true)

	// a halted CPU consumes its budget without waking
	gba.CPU.Execute(1000)
	test.ExpectEquality(t, gba.CPU.Halted(), true)

	// an enabled pending interrupt wakes it
	gba.Mem.PokeIO16(0x200, 1)
	gba.Mem.RequestInterrupt(addresses.IntVBlank)
	gba.CPU.Execute(10)
	test.ExpectEquality(t, gba.CPU.Halted(), false)
}

func TestLoadStoreMultiple(t *testing.T) {
	gba := newMachine(t,
		0xe8ad0006, // stmia r13!, {r1, r2}
		0xe91d0018, // ldmdb r13, {r3, r4}
	)

	gba.CPU.SetRegister(13, 0x03000100)
	gba.CPU.SetRegister(1, 0x11111111)
	gba.CPU.SetRegister(2, 0x22222222)

	gba.CPU.Step()
	test.ExpectEquality(t, gba.CPU.Register(13), uint32(0x03000108))
	test.ExpectEquality(t, gba.Mem.Peek32(0x03000100), uint32(0x11111111))
	test.ExpectEquality(t, gba.Mem.Peek32(0x03000104), uint32(0x22222222))

	gba.CPU.Step()
	test.ExpectEquality(t, gba.CPU.Register(3), uint32(0x11111111))
	test.ExpectEquality(t, gba.CPU.Register(4), uint32(0x22222222))
}

func TestSwap(t *testing.T) {
	// swp r0, r1, [r2]
	gba := newMachine(t, 0xe1020091)

	gba.CPU.SetRegister(1, 0xcafe0000)
	gba.CPU.SetRegister(2, 0x03000200)
	gba.Mem.Poke32(0x03000200, 0x12345678)

	gba.CPU.Step()

	test.ExpectEquality(t, gba.CPU.Register(0), uint32(0x12345678))
	test.ExpectEquality(t, gba.Mem.Peek32(0x03000200), uint32(0xcafe0000))
}

func TestMultiplyLong(t *testing.T) {
	// umull r4, r5, r1, r2 / smull r6, r7, r1, r2
	gba := newMachine(t, 0xe0854291, 0xe0c76291)

	gba.CPU.SetRegister(1, 0xffffffff)
	gba.CPU.SetRegister(2, 2)

	gba.CPU.Step()
	test.ExpectEquality(t, gba.CPU.Register(4), uint32(0xfffffffe))
	test.ExpectEquality(t, gba.CPU.Register(5), uint32(1))

	gba.CPU.Step()
	// -1 * 2 = -2
	test.ExpectEquality(t, gba.CPU.Register(6), uint32(0xfffffffe))
	test.ExpectEquality(t, gba.CPU.Register(7), uint32(0xffffffff))
}

func TestConditionFailed(t *testing.T) {
	// moveq r0, #1 with Z clear
	gba := newMachine(t, 0x03a00001)

	gba.CPU.Step()
	test.ExpectEquality(t, gba.CPU.Register(0), uint32(0))
	test.ExpectEquality(t, gba.CPU.ProgramCounter(), uint32(0x08000008))
}
