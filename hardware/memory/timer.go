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

package memory

import (
	"github.com/jetsetilly/gopheradvance/hardware/memory/addresses"
)

// timers is the state of the four hardware timers.
//
// Each internal counter is 26-bit fixed point: the upper 16 bits are the
// visible count and the lower 10 bits are the sub-cycle fraction used by
// the prescaler. A prescaler of /1 advances the counter by 1024 per cycle,
// /64 by 16, /256 by 4 and /1024 by 1.
type timers struct {
	mem *Memory

	cnt [4]uint32

	// cycles accumulated since the last update. update() consumes the
	// slack, making it idempotent between steps
	slack uint32
}

// fields of the timer control word.
const (
	timerEnable  = 1 << 7
	timerIRQ     = 1 << 6
	timerCountUp = 1 << 2
)

func timerCountReg(timer int) uint32 {
	return addresses.TM0D + uint32(timer*4)
}

// visibleCount returns the 16 bit count visible to the guest.
func (tmr *timers) visibleCount(timer int) uint16 {
	return uint16(tmr.cnt[timer] >> 10)
}

// step accumulates elapsed cycles and updates the four timers. called by
// the CPU scheduler after every instruction.
func (tmr *timers) step(cycles uint32) {
	tmr.slack += cycles
	tmr.update()
}

// update consumes the accumulated cycle slack. calling update() twice in
// succession is a no-op the second time.
func (tmr *timers) update() {
	cycles := tmr.slack
	tmr.slack = 0

	if cycles == 0 {
		return
	}

	for i := 0; i < 4; i++ {
		tmr.updateTimer(i, cycles, false)
	}
}

// updateTimer advances a single timer. when countUp is true the cycles
// argument is a pre-scaled count of overflows from the preceding timer.
func (tmr *timers) updateTimer(timer int, cycles uint32, countUp bool) {
	control := tmr.mem.PeekIO16(timerControlReg(timer))

	if control&timerEnable == 0 {
		return
	}
	if !countUp && control&timerCountUp != 0 {
		return
	}

	if !countUp {
		switch control & 0x3 {
		case 0:
			cycles <<= 10
		case 1:
			cycles <<= 4
		case 2:
			cycles <<= 2
			// prescaler /1024 needs no scaling
		}
	}

	tmr.cnt[timer] += cycles
	count := tmr.cnt[timer] >> 10

	if count > 0xffff {
		// overflow. the timer may be the sample clock for one of the
		// sound FIFOs
		soundCntX := tmr.mem.PeekIO16(addresses.SOUNDCNT_X)
		if soundCntX&(1<<7) != 0 {
			soundCntH := tmr.mem.PeekIO16(addresses.SOUNDCNT_H)
			if timer == int((soundCntH>>10)&1) {
				tmr.mem.snd.FifoA.Dequeue()
				if tmr.mem.snd.FifoA.Count() < 16 {
					tmr.mem.FIFODMA(1)
				}
			}
			if timer == int((soundCntH>>14)&1) {
				tmr.mem.snd.FifoB.Dequeue()
				if tmr.mem.snd.FifoB.Count() < 16 {
					tmr.mem.FIFODMA(2)
				}
			}
		}

		if control&timerIRQ != 0 {
			tmr.mem.RequestInterrupt(addresses.IntTimer0 + timer)
		}

		// cascade into the next timer if it is in count-up mode. the
		// number of overflows is passed on pre-scaled
		if timer < 3 {
			next := tmr.mem.PeekIO16(timerControlReg(timer + 1))
			if next&timerCountUp != 0 {
				tmr.updateTimer(timer+1, (count>>16)<<10, true)
			}
		}

		// reload the counter from the reload register
		reload := uint32(tmr.mem.PeekIO16(timerCountReg(timer)))
		tmr.cnt[timer] = reload << 10
	}
}

// writeTimerControl reacts to a write to a timer's control register. A
// disabled timer becoming enabled loads its internal counter from the
// reload register.
func (mem *Memory) writeTimerControl(timer int, oldCnt uint16) {
	newCnt := mem.PeekIO16(timerControlReg(timer))

	if newCnt&timerEnable != 0 && oldCnt&timerEnable == 0 {
		reload := uint32(mem.PeekIO16(timerCountReg(timer)))
		mem.tmr.cnt[timer] = reload << 10
	}
}

// StepTimers accumulates elapsed cycles into the timers. Called by the CPU
// scheduler after every instruction and while the CPU is halted.
func (mem *Memory) StepTimers(cycles uint32) {
	mem.tmr.step(cycles)
}
