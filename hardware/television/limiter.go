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

package television

import "time"

// limiter caps the frame rate at the console's natural rate. The deadline
// accumulates in absolute time so that a late frame borrows from the next
// rather than slowing the whole emulation.
type limiter struct {
	active bool

	frameDuration time.Duration
	deadline      time.Time
}

func (l *limiter) init(fps float32) {
	l.frameDuration = time.Duration(float32(time.Second) / fps)
	l.deadline = time.Now().Add(l.frameDuration)
}

func (l *limiter) wait() {
	if !l.active {
		return
	}

	now := time.Now()
	if now.Before(l.deadline) {
		time.Sleep(l.deadline.Sub(now))
	} else if now.Sub(l.deadline) > time.Second {
		// the emulation has fallen a long way behind. restart the clock
		// rather than racing to catch up
		l.deadline = now
	}

	l.deadline = l.deadline.Add(l.frameDuration)
}
