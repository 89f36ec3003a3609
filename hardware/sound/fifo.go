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

package sound

// FIFOLen is the capacity of each direct sound FIFO.
const FIFOLen = 32

// FIFO is one of the two direct sound byte queues. The head of the queue is
// latched on dequeue and it is the latched sample that the mixer reads.
// Each FIFO owns its own backing array.
type FIFO struct {
	queue   [FIFOLen]uint8
	count   int
	latched uint8
}

// Enqueue pushes a byte onto the queue. A byte pushed at a full queue is
// dropped.
func (f *FIFO) Enqueue(sample uint8) {
	if f.count >= FIFOLen {
		return
	}
	f.queue[f.count] = sample
	f.count++
}

// Dequeue latches the head of the queue and shifts the remaining entries
// down by one. Dequeueing an empty queue leaves the latch alone.
func (f *FIFO) Dequeue() {
	if f.count == 0 {
		return
	}

	f.latched = f.queue[0]
	f.count--

	copy(f.queue[:], f.queue[1:])
	f.queue[FIFOLen-1] = 0
}

// Reset empties the queue and clears the latched sample.
func (f *FIFO) Reset() {
	for i := range f.queue {
		f.queue[i] = 0
	}
	f.count = 0
	f.latched = 0
}

// Count returns the number of bytes waiting in the queue.
func (f *FIFO) Count() int {
	return f.count
}

// Latched returns the most recently latched sample.
func (f *FIFO) Latched() uint8 {
	return f.latched
}
