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

// Package sdlplay is the SDL2 play mode: a window showing the emulated
// screen, the mixer output queued to the host audio device, and the host
// keyboard mapped onto the console's keypad.
//
// SDL wants its calls on the main OS thread, so Play() must be called from
// the main goroutine.
package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/hardware"
	"github.com/jetsetilly/gopheradvance/hardware/input"
	"github.com/jetsetilly/gopheradvance/hardware/television"
	"github.com/jetsetilly/gopheradvance/logger"
)

// AudioRecorder is an optional tee of the audio stream. Implemented by the
// wavwriter package.
type AudioRecorder interface {
	Write(samples []int16) error
	End() error
}

// SdlPlay is the SDL2 implementation of the play mode.
type SdlPlay struct {
	gba *hardware.GBA

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	audioID  sdl.AudioDeviceID
	audioBuf []int16
	byteBuf  []byte

	recorder AudioRecorder

	// the screen as little-endian 15-bit colour values
	pixels []byte

	quit bool
}

// keyboard mapping from host keys to console keys.
var keyMap = map[sdl.Keycode]input.Key{
	sdl.K_x:         input.KeyA,
	sdl.K_z:         input.KeyB,
	sdl.K_BACKSPACE: input.KeySelect,
	sdl.K_RETURN:    input.KeyStart,
	sdl.K_RIGHT:     input.KeyRight,
	sdl.K_LEFT:      input.KeyLeft,
	sdl.K_UP:        input.KeyUp,
	sdl.K_DOWN:      input.KeyDown,
	sdl.K_s:         input.KeyR,
	sdl.K_a:         input.KeyL,
}

// Play runs the emulation in an SDL window until the user closes it. The
// recorder argument may be nil.
func Play(gba *hardware.GBA, scale int, fpsCap bool, recorder AudioRecorder) error {
	if scale < 1 {
		scale = 1
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS); err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	defer sdl.Quit()

	scr := &SdlPlay{
		gba:      gba,
		pixels:   make([]byte, television.Width*television.Height*2),
		audioBuf: make([]int16, 2048),
		byteBuf:  make([]byte, 4096),
		recorder: recorder,
	}

	var err error

	scr.window, err = sdl.CreateWindow("Gopher Advance",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(television.Width*scale), int32(television.Height*scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	defer scr.window.Destroy()

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	defer scr.renderer.Destroy()

	scr.texture, err = scr.renderer.CreateTexture(sdl.PIXELFORMAT_BGR555,
		sdl.TEXTUREACCESS_STREAMING, int32(television.Width), int32(television.Height))
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	defer scr.texture.Destroy()

	spec := sdl.AudioSpec{
		Freq:     gba.Sound.Frequency(),
		Format:   sdl.AUDIO_S16SYS,
		Channels: 2,
		Samples:  1024,
	}
	scr.audioID, err = sdl.OpenAudioDevice("", false, &spec, nil, 0)
	if err != nil {
		// carry on without sound
		logger.Logf(logger.Allow, "sdl", "no audio device: %v", err)
	} else {
		sdl.PauseAudioDevice(scr.audioID, false)
		defer sdl.CloseAudioDevice(scr.audioID)
	}

	gba.TV.AddPixelRenderer(scr)
	gba.TV.SetFPSCap(fpsCap)

	for !scr.quit {
		scr.service()
		if err := gba.TV.RunFrame(); err != nil {
			return err
		}
	}

	if scr.recorder != nil {
		if err := scr.recorder.End(); err != nil {
			return err
		}
	}

	return nil
}

// service handles the events SDL has gathered since the last frame.
func (scr *SdlPlay) service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.quit = true

		case *sdl.KeyboardEvent:
			if ev.Keysym.Sym == sdl.K_ESCAPE {
				scr.quit = true
				continue
			}
			if k, ok := keyMap[ev.Keysym.Sym]; ok {
				scr.gba.Keypad.Set(k, ev.Type == sdl.KEYDOWN)
			}
		}
	}
}

// SetPixels implements the television.PixelRenderer interface.
func (scr *SdlPlay) SetPixels(scanline int, pixels []uint16) error {
	o := scanline * television.Width * 2
	for _, p := range pixels {
		scr.pixels[o] = byte(p)
		scr.pixels[o+1] = byte(p >> 8)
		o += 2
	}
	return nil
}

// EndFrame implements the television.PixelRenderer interface.
func (scr *SdlPlay) EndFrame(_ int) error {
	if err := scr.texture.Update(nil, scr.pixels, television.Width*2); err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	scr.renderer.Present()

	return scr.queueAudio()
}

// queueAudio drains the mixer into the SDL audio queue (and the recorder
// if one is attached).
func (scr *SdlPlay) queueAudio() error {
	n := scr.gba.Sound.Samples(scr.audioBuf)
	if n == 0 {
		return nil
	}

	if scr.recorder != nil {
		if err := scr.recorder.Write(scr.audioBuf[:n]); err != nil {
			return err
		}
	}

	if scr.audioID == 0 {
		return nil
	}

	for i := 0; i < n; i++ {
		scr.byteBuf[i*2] = byte(scr.audioBuf[i])
		scr.byteBuf[i*2+1] = byte(scr.audioBuf[i] >> 8)
	}

	if err := sdl.QueueAudio(scr.audioID, scr.byteBuf[:n*2]); err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	return nil
}
