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

// Package performance runs the emulation headless as fast as it will go
// and reports the frame rate. With the statsview option a live metrics
// server is started for watching memory and GC behaviour during the run.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/statsview"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/hardware"
	"github.com/jetsetilly/gopheradvance/hardware/television"
	"github.com/jetsetilly/gopheradvance/logger"
)

// Check runs the emulation for the given number of frames and writes a
// summary to output.
func Check(output io.Writer, gba *hardware.GBA, frames int, statsServer bool) error {
	if frames < 1 {
		return curated.Errorf("performance: frame count must be at least 1: %d", frames)
	}

	if statsServer {
		mgr := statsview.New()
		go func() {
			mgr.Start()
		}()
		defer mgr.Stop()
		logger.Logf(logger.Allow, "performance", "statsview available at http://localhost:18066/debug/statsview")
	}

	// performance runs are flat out
	gba.TV.SetFPSCap(false)

	start := time.Now()

	for i := 0; i < frames; i++ {
		if err := gba.TV.RunFrame(); err != nil {
			return curated.Errorf("performance: %v", err)
		}
	}

	elapsed := time.Since(start)
	fps := float64(frames) / elapsed.Seconds()

	fmt.Fprintf(output, "%d frames in %.2fs\n", frames, elapsed.Seconds())
	fmt.Fprintf(output, "%.2f fps (%.1f%% of full speed)\n", fps, 100*fps/float64(television.FPS))

	return nil
}
