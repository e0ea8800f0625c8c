package depixel

// Rect is an axis-aligned rectangle in logical pixels. The coordinate system
// has its origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Canvas is the 2D raster drawing context the renderer draws into. It owns
// two images: the immutable source and the mutable surface the effect is
// rendered onto.
//
// All rectangles passed to draw calls are in logical pixels. A Canvas may
// back the surface with a larger pixel buffer for high-density displays
// (device scale factor >= 1); the scale applies to the backing store only,
// never to the coordinate space of draw calls.
//
// Implementations are not safe for concurrent use. The renderer calls them
// from scheduler ticks and direct render calls on a single goroutine.
type Canvas interface {
	// SourceSize returns the natural size of the source image.
	SourceSize() (w, h float64)

	// LogicalSize returns the drawable size of the surface in logical
	// pixels. Fixed at construction.
	LogicalSize() (w, h float64)

	// SetSmoothing toggles the sampling filter for subsequent draw calls:
	// true selects smooth (bilinear) sampling, false selects
	// nearest-neighbor. Nearest-neighbor is what turns a scale-up into
	// visible uniform blocks instead of a blur.
	SetSmoothing(smooth bool)

	// DrawSource draws the region src of the original source image into the
	// region dst of the surface. src is in source pixels, dst in logical
	// surface pixels.
	DrawSource(src, dst Rect)

	// DrawSurface draws the region src of the surface itself back onto the
	// region dst of the surface. Implementations must behave as if src were
	// snapshotted before any pixel of dst is written.
	DrawSurface(src, dst Rect)

	// Dispose releases the surface's resources. The Canvas must not be used
	// afterwards.
	Dispose()
}
