package depixel

import "math"

// Renderer produces pixelated renditions of a Canvas's source image. It is
// the only component that mutates the surface; it has no knowledge of
// animation or scheduling.
type Renderer struct {
	canvas Canvas
}

// NewRenderer creates a Renderer drawing into canvas.
func NewRenderer(canvas Canvas) *Renderer {
	return &Renderer{canvas: canvas}
}

// SetPixelation renders the source image onto the surface at the given block
// granularity (block edge length in logical pixels).
//
// A granularity <= 1 is the identity case: the source is drawn at full
// fidelity. For granularity > 1 the render is two passes, both with
// nearest-neighbor sampling: the source is drawn down into the top-left
// ceil(w/g) x ceil(h/g) corner of the surface, then that corner is drawn
// back up to full size, producing uniform blocks about g logical pixels on
// a side. Smoothing is restored afterwards so the filter state never leaks
// into unrelated draws.
//
// Every call starts from the original source, never from the surface's
// previous contents, so calls are idempotent: rendering twice at the same
// granularity yields identical pixels. Fractional granularity is fine — it
// arises naturally from interpolation.
func (r *Renderer) SetPixelation(granularity float64) {
	c := r.canvas
	sw, sh := c.SourceSize()
	w, h := c.LogicalSize()
	full := Rect{Width: w, Height: h}
	src := Rect{Width: sw, Height: sh}

	if granularity <= 1 {
		c.DrawSource(src, full)
		return
	}

	small := Rect{
		Width:  math.Ceil(w / granularity),
		Height: math.Ceil(h / granularity),
	}

	c.SetSmoothing(false)
	c.DrawSource(src, small)
	c.DrawSurface(small, full)
	c.SetSmoothing(true)
}

// Canvas returns the canvas the renderer draws into.
func (r *Renderer) Canvas() Canvas {
	return r.canvas
}
