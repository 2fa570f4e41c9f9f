// Package shape manages the renderable geometry attached to game entities.
//
// The simulation core never touches rendering directly: an entity owns an
// opaque Handle acquired at spawn and released exactly once at removal. The
// renderer resolves handles to outlines when drawing a frame.
package shape

import "math/rand"

// Handle identifies one entity's renderable outline. The zero value refers
// to no shape.
type Handle uint32

// None is the invalid Handle.
const None Handle = 0

// Store allocates and releases entity shapes. Implementations must tolerate
// Release of a handle that is no longer live.
type Store interface {
	// Acquire creates a new shape and returns its handle.
	Acquire() Handle
	// Release destroys the shape for h.
	Release(h Handle)
}

const (
	// outlineSegments is the number of vertices in a generated outline.
	outlineSegments = 20
	// outlineJitter is the per-vertex radius variation (fraction of the unit radius).
	outlineJitter = 0.2
)

// Arena is the in-memory Store. Each acquired handle maps to an immutable
// table of vertex distances around a unit circle; the renderer scales these
// by the owning entity's scale.
type Arena struct {
	rng      *rand.Rand
	next     Handle
	outlines map[Handle][]float64
}

// NewArena creates an empty arena drawing outline randomness from rng.
func NewArena(rng *rand.Rand) *Arena {
	return &Arena{
		rng:      rng,
		outlines: make(map[Handle][]float64),
	}
}

// Acquire generates a fresh irregular outline and returns its handle.
func (a *Arena) Acquire() Handle {
	a.next++
	h := a.next

	verts := make([]float64, outlineSegments)
	for i := range verts {
		verts[i] = 1.0 + (a.rng.Float64()-0.5)*2*outlineJitter
	}
	a.outlines[h] = verts
	return h
}

// Release removes the outline for h. Releasing an unknown or already
// released handle is a no-op.
func (a *Arena) Release(h Handle) {
	delete(a.outlines, h)
}

// Outline returns the vertex-distance table for h, or nil if h is not live.
// The returned slice must not be modified.
func (a *Arena) Outline(h Handle) []float64 {
	return a.outlines[h]
}

// Live returns the number of live shapes.
func (a *Arena) Live() int {
	return len(a.outlines)
}

var _ Store = (*Arena)(nil)
