// Package loop contains the simulation core: the spawner, physics
// integrator, collision resolver, and the per-frame orchestrator that
// sequences input, spawning, physics, collisions, and the render snapshot.
package loop

import (
	"math/rand"
	"time"

	"github.com/mhrabos/nebuloids/internal/input"
	"github.com/mhrabos/nebuloids/internal/shape"
)

const targetFPS = 60

// Renderer receives one entity snapshot per frame and draws it.
type Renderer interface {
	Render(f *Frame) error
}

// Options configure Run. The zero value picks sensible defaults.
type Options struct {
	FPS    int         // Target frames per second; 0 means 60
	Rng    *rand.Rand  // Randomness source; nil seeds from the clock
	Shapes shape.Store // Shape store; nil creates a fresh Arena
}

// Run drives the game loop against the given input source and renderer
// until the quit intent is seen or the renderer fails. Each game over can be
// followed by a restart, which tears down the session (releasing all shape
// handles) and starts a fresh one.
func Run(src input.Source, r Renderer, opts Options) error {
	fps := opts.FPS
	if fps <= 0 {
		fps = targetFPS
	}
	frameTime := time.Second / time.Duration(fps)

	rng := opts.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	shapes := opts.Shapes
	if shapes == nil {
		shapes = shape.NewArena(rng)
	}

	state := NewState(shapes, rng)
	defer func() { state.Close() }()

	var frame Frame
	lastTime := time.Now()

	for {
		frameStart := time.Now()
		delta := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		inp := src.Poll()
		if inp.Quit {
			return nil
		}
		if state.GameOver && inp.Restart {
			state.Close()
			state = NewState(shapes, rng)
		}

		state.Step(inp, delta)

		state.Snapshot(&frame)
		if err := r.Render(&frame); err != nil {
			return err
		}

		if elapsed := time.Since(frameStart); elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
	}
}
