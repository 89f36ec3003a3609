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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopheradvance/hardware/memory"
	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
	"github.com/jetsetilly/gopheradvance/hardware/sound"
)

// register names.
const (
	rSP = 13 + iota
	rLR
	rPC
	rCount
)

// reset values for the banked stack pointers. the BIOS would normally set
// these up; they are seeded here so that a skipped BIOS leaves a usable
// machine.
const (
	resetSPSVC = 0x03007fe0
	resetSPIRQ = 0x03007fa0
)

// exception vectors used by the core.
const (
	vectorReset = 0x00
	vectorSWI   = 0x08
	vectorIRQ   = 0x18
)

// CPU implements the console's ARM7TDMI processor.
type CPU struct {
	mem *memory.Memory
	snd *sound.Sound

	// the flat register view the interpreters work on. banked registers
	// are swapped in and out on mode changes
	registers [rCount]uint32
	status    Status
	banks     registerBanks

	// one-entry prefetch queues. exactly one of them is meaningful at any
	// time, selected by the T bit of the status register
	armQueue   uint32
	thumbQueue uint16

	// carry out of the barrel shifter for the most recent operand
	shifterCarry bool

	// the remaining cycle budget for the current Execute() call
	cycles int32

	// cycles consumed by the current instruction beyond its memory
	// accesses. multiplies and internal cycles land here
	internalCycles uint32

	halted bool

	// CheckBreakpoint is consulted before each instruction when set.
	// returning true abandons the remaining cycle budget and raises
	// BreakpointHit
	CheckBreakpoint func(pc uint32) bool
	BreakpointHit   bool
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// CPU must be plumbed into the memory bus before the first call to Reset()
// or Execute().
func NewCPU(mem *memory.Memory, snd *sound.Sound) *CPU {
	return &CPU{
		mem: mem,
		snd: snd,
	}
}

// Reset the processor. With skipBios the program counter starts at the
// cartridge entry point rather than the reset vector. The banked SVC and IRQ
// stack pointers are seeded with the values the BIOS would have left on
// every reset, with or without skipBios.
func (cpu *CPU) Reset(skipBios bool) {
	cpu.halted = false
	cpu.cycles = 0
	cpu.internalCycles = 0
	cpu.BreakpointHit = false

	for i := range cpu.registers {
		cpu.registers[i] = 0
	}
	cpu.banks = registerBanks{}
	cpu.banks.svc[0] = resetSPSVC
	cpu.banks.irq[0] = resetSPIRQ

	cpu.status = Status{}
	cpu.status.Set(modeSYS)
	cpu.banks.spsrSVC = cpu.status.Value()

	if skipBios {
		cpu.registers[rPC] = memorymap.BootAddress
	} else {
		cpu.registers[rPC] = vectorReset
	}

	cpu.reloadQueue()

	// the queue fill is not charged against the first instruction
	cpu.mem.ClaimWaitCycles()
}

func (cpu *CPU) String() string {
	s := strings.Builder{}
	for i, r := range cpu.registers {
		if i > 0 {
			if i%4 == 0 {
				s.WriteString("\n")
			} else {
				s.WriteString("\t\t")
			}
		}
		s.WriteString(fmt.Sprintf("R%-2d: %08x", i, r))
	}
	s.WriteString(fmt.Sprintf("\nCPSR: %s", cpu.status.String()))
	return s.String()
}

// Register returns the value of one of the sixteen visible registers.
func (cpu *CPU) Register(reg int) uint32 {
	return cpu.registers[reg]
}

// SetRegister sets the value of one of the sixteen visible registers. A
// write to R15 flushes the prefetch queue.
func (cpu *CPU) SetRegister(reg int, value uint32) {
	cpu.registers[reg] = value
	if reg == rPC {
		cpu.reloadQueue()
		cpu.mem.ClaimWaitCycles()
	}
}

// Status returns the processor's status register.
func (cpu *CPU) Status() Status {
	return cpu.status
}

// SPSR returns the saved status register for the current mode.
func (cpu *CPU) SPSR() uint32 {
	return cpu.spsr()
}

// ProgramCounter implements the memory.Processor interface. The value is
// the address the prefetch queue will fetch from next.
func (cpu *CPU) ProgramCounter() uint32 {
	return cpu.registers[rPC]
}

// ExecutingPC returns the address of the instruction about to be executed,
// which trails the prefetch address by one fetch.
func (cpu *CPU) ExecutingPC() uint32 {
	if cpu.status.thumb {
		return cpu.registers[rPC] - 2
	}
	return cpu.registers[rPC] - 4
}

// InThumbState implements the memory.Processor interface.
func (cpu *CPU) InThumbState() bool {
	return cpu.status.thumb
}

// Halt implements the memory.Processor interface. The remaining cycle
// budget is abandoned; timers and sound keep running through subsequent
// Execute() calls until an enabled interrupt becomes pending.
func (cpu *CPU) Halt() {
	cpu.halted = true
	cpu.cycles = 0
}

// Halted returns true if the CPU is waiting for an interrupt.
func (cpu *CPU) Halted() bool {
	return cpu.halted
}

// reloadQueue flushes the prefetch queue for the active instruction set,
// fetching at the current PC and advancing it. Must be called after any
// write to R15.
func (cpu *CPU) reloadQueue() {
	if cpu.status.thumb {
		cpu.thumbQueue = cpu.mem.Read16(cpu.registers[rPC])
		cpu.registers[rPC] += 2
	} else {
		cpu.armQueue = cpu.mem.Read32(cpu.registers[rPC])
		cpu.registers[rPC] += 4
	}
}

// RequestInterrupt sets a bit in the IF register. The interrupt is
// delivered by a later call to FireInterrupt().
func (cpu *CPU) RequestInterrupt(bit int) {
	cpu.mem.RequestInterrupt(bit)
}

// FireInterrupt enters the IRQ exception if an enabled interrupt is
// pending, the master enable is set, and interrupts are not disabled in
// the status register. Called by the television once per scanline and by
// anything that has just changed the interrupt registers.
func (cpu *CPU) FireInterrupt() {
	if !cpu.mem.InterruptMasterEnabled() {
		return
	}
	if !cpu.mem.InterruptsPending() {
		return
	}
	if cpu.status.irqDisable {
		return
	}

	cpu.enterException(modeIRQ, vectorIRQ, true, false)
}

// Execute adds to the processor's cycle budget and runs instructions until
// the budget is exhausted. A halted processor consumes the entire budget
// at once, ticking only the timers and the sound mixer, until an enabled
// interrupt becomes pending.
func (cpu *CPU) Execute(cycles int32) {
	cpu.cycles += cycles

	if cpu.halted {
		if cpu.mem.InterruptsPending() {
			cpu.halted = false
		} else {
			c := cpu.cycles
			cpu.cycles = 0
			if c > 0 {
				cpu.mem.StepTimers(uint32(c))
				cpu.snd.Mix(c)
			}
			return
		}
	}

	for cpu.cycles > 0 {
		if cpu.CheckBreakpoint != nil && cpu.CheckBreakpoint(cpu.ExecutingPC()) {
			cpu.BreakpointHit = true
			cpu.cycles = 0
			return
		}
		cpu.step()
	}
}

// Step executes exactly one instruction, regardless of the cycle budget.
// Used by the debugger.
func (cpu *CPU) Step() {
	if cpu.halted {
		if cpu.mem.InterruptsPending() {
			cpu.halted = false
		} else {
			cpu.mem.StepTimers(1)
			cpu.snd.Mix(1)
			return
		}
	}

	cpu.step()
}

// step dispatches one instruction through the active interpreter and then
// settles the cycle accounts: wait cycles accumulated by memory accesses
// plus any internal cycles are charged against the budget and handed to
// the timers and the sound mixer.
func (cpu *CPU) step() {
	if cpu.status.thumb {
		cpu.stepThumb()
	} else {
		cpu.stepARM()
	}

	consumed := cpu.mem.ClaimWaitCycles() + cpu.internalCycles
	cpu.internalCycles = 0

	cpu.cycles -= int32(consumed)
	cpu.mem.StepTimers(consumed)
	cpu.snd.Mix(int32(consumed))
}
