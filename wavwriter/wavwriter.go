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

// Package wavwriter records the mixer output to a WAV file. Useful for
// checking what the direct sound channels are actually producing.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/gopheradvance/curated"
)

// WavWriter records stereo 16-bit samples to disk.
type WavWriter struct {
	f   *os.File
	enc *wav.Encoder
	buf *audio.IntBuffer
}

// NewWavWriter is the preferred method of initialisation for the WavWriter
// type.
func NewWavWriter(filename string, rate int) (*WavWriter, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf("wavwriter: %v", err)
	}

	ww := &WavWriter{
		f:   f,
		enc: wav.NewEncoder(f, rate, 16, 2, 1),
		buf: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: 2,
				SampleRate:  rate,
			},
			SourceBitDepth: 16,
		},
	}

	return ww, nil
}

// Write a block of interleaved stereo samples.
func (ww *WavWriter) Write(samples []int16) error {
	if cap(ww.buf.Data) < len(samples) {
		ww.buf.Data = make([]int, len(samples))
	}
	ww.buf.Data = ww.buf.Data[:len(samples)]

	for i, s := range samples {
		ww.buf.Data[i] = int(s)
	}

	if err := ww.enc.Write(ww.buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

// End the recording, finalising the WAV header.
func (ww *WavWriter) End() error {
	if err := ww.enc.Close(); err != nil {
		ww.f.Close()
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := ww.f.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	return nil
}
