// Package gif renders a simulation run to an animated GIF, one frame per
// tick, per spec.md §6 "GIF output". Encoding itself uses the standard
// library's image/gif: no example repo in the corpus performs GIF encoding,
// so this is a deliberate stdlib choice rather than a dropped dependency
// (see DESIGN.md).
package gif

import (
	"image"
	"image/color"
	stdgif "image/gif"
	"io"

	"github.com/mooshroom4422/honours-project/grid"
	"github.com/mooshroom4422/honours-project/world"
)

// Palette indices, fixed by spec.md §6: "0=white (empty), 1=black (wall),
// 2=blue (agent), 3=red (target), 4=purple (both)".
const (
	idxEmpty = iota
	idxWall
	idxAgent
	idxTarget
	idxBoth
)

var palette = color.Palette{
	color.White,
	color.Black,
	color.RGBA{R: 0, G: 0, B: 255, A: 255},
	color.RGBA{R: 255, G: 0, B: 0, A: 255},
	color.RGBA{R: 128, G: 0, B: 128, A: 255},
}

// Recorder accumulates one image.Paletted frame per tick. Its Record method
// matches simrunner.FrameFunc and can be passed directly as Options.OnFrame.
type Recorder struct {
	width, height int
	frames        []*image.Paletted
	delays        []int
	// DelayCS is the per-frame delay in hundredths of a second (gif.GIF's
	// unit). Defaults to 10 (100ms) when zero.
	DelayCS int
}

// NewRecorder constructs a Recorder sized to m.
func NewRecorder(m *grid.Map) *Recorder {
	return &Recorder{width: m.Width, height: m.Height}
}

// Record renders one frame of the current world state. grid.Point's y axis
// already matches image row order (row 0 is the top), so no flip is needed.
func (r *Recorder) Record(m *grid.Map, agents []*world.Agent, targets []*world.Target, _ int) {
	img := image.NewPaletted(image.Rect(0, 0, r.width, r.height), palette)
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			idx := uint8(idxEmpty)
			if m.TileAt(grid.Point{X: x, Y: y}) == grid.Wall {
				idx = idxWall
			}
			img.SetColorIndex(x, y, idx)
		}
	}

	occupiedByAgent := make(map[grid.Point]bool)
	for _, a := range agents {
		if a.Active {
			occupiedByAgent[a.Pos] = true
		}
	}
	occupiedByTarget := make(map[grid.Point]bool)
	for _, t := range targets {
		if !t.Captured {
			occupiedByTarget[t.Pos] = true
		}
	}
	for p := range occupiedByAgent {
		idx := uint8(idxAgent)
		if occupiedByTarget[p] {
			idx = idxBoth
		}
		img.SetColorIndex(p.X, p.Y, idx)
	}
	for p := range occupiedByTarget {
		if occupiedByAgent[p] {
			continue
		}
		img.SetColorIndex(p.X, p.Y, idxTarget)
	}

	delay := r.DelayCS
	if delay <= 0 {
		delay = 10
	}
	r.frames = append(r.frames, img)
	r.delays = append(r.delays, delay)
}

// Save encodes all recorded frames as an infinitely looping animated GIF.
func (r *Recorder) Save(w io.Writer) error {
	g := &stdgif.GIF{
		Image:     r.frames,
		Delay:     r.delays,
		LoopCount: 0,
	}
	return stdgif.EncodeAll(w, g)
}
