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

package sound_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/hardware/sound"
	"github.com/jetsetilly/gopheradvance/test"
)

// sound control values for the mixer tests, supplied by each test through
// the SOUNDCNT_H and SOUNDCNT_X fields.
type testControl struct {
	cntH uint16
	cntX uint16
}

func (c testControl) SoundControl() (uint16, uint16) {
	return c.cntH, c.cntX
}

func TestFIFO(t *testing.T) {
	var f sound.FIFO

	test.ExpectEquality(t, f.Count(), 0)
	test.ExpectEquality(t, f.Latched(), uint8(0))

	// the latch takes the oldest entry on dequeue
	f.Enqueue(0x10)
	f.Enqueue(0x20)
	f.Enqueue(0x30)
	test.ExpectEquality(t, f.Count(), 3)

	f.Dequeue()
	test.ExpectEquality(t, f.Latched(), uint8(0x10))
	test.ExpectEquality(t, f.Count(), 2)

	f.Dequeue()
	test.ExpectEquality(t, f.Latched(), uint8(0x20))

	// dequeueing an empty queue leaves the latch alone
	f.Dequeue()
	f.Dequeue()
	test.ExpectEquality(t, f.Latched(), uint8(0x30))
	test.ExpectEquality(t, f.Count(), 0)
}

func TestFIFOFull(t *testing.T) {
	var f sound.FIFO

	for i := 0; i < sound.FIFOLen; i++ {
		f.Enqueue(uint8(i))
	}
	test.ExpectEquality(t, f.Count(), sound.FIFOLen)

	// a byte pushed at a full queue is dropped
	f.Enqueue(0xff)
	test.ExpectEquality(t, f.Count(), sound.FIFOLen)

	f.Dequeue()
	test.ExpectEquality(t, f.Latched(), uint8(0))

	f.Reset()
	test.ExpectEquality(t, f.Count(), 0)
	test.ExpectEquality(t, f.Latched(), uint8(0))
}

func TestMixerOutput(t *testing.T) {
	snd := sound.NewSound(44100)
	snd.Attach(testControl{
		cntH: (1 << 2) | (1 << 8) | (1 << 9),
		cntX: 1 << 7,
	})

	snd.FifoA.Enqueue(0x40)
	snd.FifoA.Dequeue()

	// a frame's worth of cycles produces getting on for a frame's worth
	// of samples
	snd.Mix(280896)

	buffer := make([]int16, 4096)
	n := snd.Samples(buffer)
	test.ExpectSuccess(t, n > 1000)
	test.ExpectEquality(t, n%2, 0)

	// channel A is routed to both speakers at full volume
	test.ExpectEquality(t, buffer[0], int16(0x40)<<6)
	test.ExpectEquality(t, buffer[1], int16(0x40)<<6)
}

func TestMixerDisabled(t *testing.T) {
	snd := sound.NewSound(44100)
	snd.Attach(testControl{})

	snd.FifoA.Enqueue(0x40)
	snd.FifoA.Dequeue()
	snd.Mix(100000)

	buffer := make([]int16, 16)
	n := snd.Samples(buffer)
	test.ExpectSuccess(t, n > 0)

	// with the master enable clear the output is silence
	for i := 0; i < n; i++ {
		test.ExpectEquality(t, buffer[i], int16(0))
	}
}
