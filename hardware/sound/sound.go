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

// Package sound implements the direct sound channels of the console: two
// 32-byte FIFOs clocked by the hardware timers, and the mixer that resamples
// the latched FIFO samples to the host output rate.
//
// The mixer works in fixed point. Cycles are scaled up by 5 bits when they
// arrive and cyclesPerSample is computed as:
//
//	cyclesPerSample = (cpuFreq << 5) / outputRate
//
// so one output sample is produced for every cyclesPerSample scaled cycles.
package sound

import "sync"

// CPUFreq is the clock frequency of the console's processor.
const CPUFreq = 16 * 1024 * 1024

// fixed point scaling used by the mixer.
const mixScale = 5

// samples are shifted up to a useful amplitude before being placed in the
// sound buffer.
const volumeShift = 6

// size of the sample ring buffer. samples are interleaved stereo pairs.
const bufferLen = 8192

// Control is the view of the sound control registers required by the
// mixer. Implemented by the memory bus.
type Control interface {
	// SoundControl returns the values of the SOUNDCNT_H and SOUNDCNT_X
	// registers
	SoundControl() (uint16, uint16)
}

// Sound is the direct sound unit: the two FIFOs and the mixer.
type Sound struct {
	FifoA FIFO
	FifoB FIFO

	ctrl Control

	rate            int32
	cyclesPerSample int32
	leftover        int32

	// interleaved stereo ring buffer. the mixer writes at bufferIn and the
	// host reads at bufferOut. crit guards all three
	crit      sync.Mutex
	buffer    [bufferLen]int16
	bufferIn  int
	bufferOut int
}

// NewSound is the preferred method of initialisation for the Sound type.
// The rate argument is the output rate of the host audio device in Hz.
func NewSound(rate int32) *Sound {
	snd := &Sound{}
	snd.SetFrequency(rate)
	return snd
}

// Attach the sound control registers. Must be called before the first call
// to Mix().
func (snd *Sound) Attach(ctrl Control) {
	snd.ctrl = ctrl
}

// Frequency returns the output rate in Hz.
func (snd *Sound) Frequency() int32 {
	return snd.rate
}

// SetFrequency sets the output rate in Hz.
func (snd *Sound) SetFrequency(rate int32) {
	snd.rate = rate
	snd.cyclesPerSample = (CPUFreq << mixScale) / rate
}

// Mix converts elapsed emulation cycles into output samples. Called by the
// CPU scheduler after every instruction.
func (snd *Sound) Mix(cycles int32) {
	if snd.ctrl == nil {
		return
	}

	soundCntH, soundCntX := snd.ctrl.SoundControl()

	cycles <<= mixScale
	cycles += snd.leftover

	if cycles > 0 {
		directA := int16(snd.FifoA.Latched())
		directB := int16(snd.FifoB.Latched())

		// volume bits. a clear bit means half volume
		if soundCntH&(1<<2) == 0 {
			directA >>= 1
		}
		if soundCntH&(1<<3) == 0 {
			directB >>= 1
		}

		snd.crit.Lock()
		for cycles > 0 {
			var l, r int16

			cycles -= snd.cyclesPerSample

			// master enable
			if soundCntX&(1<<7) != 0 {
				if soundCntH&(1<<8) != 0 {
					r += directA
				}
				if soundCntH&(1<<9) != 0 {
					l += directA
				}
				if soundCntH&(1<<12) != 0 {
					r += directB
				}
				if soundCntH&(1<<13) != 0 {
					l += directB
				}
			}

			snd.buffer[snd.bufferIn] = l << volumeShift
			snd.buffer[snd.bufferIn+1] = r << volumeShift
			snd.bufferIn = (snd.bufferIn + 2) % bufferLen
		}
		snd.crit.Unlock()
	}

	snd.leftover = cycles
}

// Samples fills the buffer with interleaved stereo samples, returning the
// number of values written. If the mixer has not produced enough samples
// the remainder of the buffer is left alone.
func (snd *Sound) Samples(buffer []int16) int {
	snd.crit.Lock()
	defer snd.crit.Unlock()

	n := 0
	for n < len(buffer) && snd.bufferOut != snd.bufferIn {
		buffer[n] = snd.buffer[snd.bufferOut]
		snd.bufferOut = (snd.bufferOut + 1) % bufferLen
		n++
	}
	return n
}
