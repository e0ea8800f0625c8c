package depixel

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// SoftwareCanvas is a CPU-backed Canvas over image.RGBA buffers, using the
// golang.org/x/image/draw scalers. It needs no GPU or window and renders
// byte-for-byte deterministically, which makes it the canvas of choice for
// tests and offline rendering.
type SoftwareCanvas struct {
	source  *image.RGBA
	surface *image.RGBA
	scratch *image.RGBA

	logicalW, logicalH int
	scale              float64 // device scale factor, >= 1
	smooth             bool
}

// NewSoftwareCanvas creates a software canvas whose logical size is the
// source image's natural size. The backing store is ceil(size*scale) pixels;
// a scale below 1 is clamped to 1. Returns ErrNoSource if src is nil or has
// no area.
func NewSoftwareCanvas(src image.Image, scale float64) (*SoftwareCanvas, error) {
	if src == nil {
		return nil, ErrNoSource
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrNoSource
	}
	if scale < 1 {
		scale = 1
	}

	// Normalize the source to RGBA once so every render pass samples the
	// same premultiplied buffer.
	source := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(source, source.Bounds(), src, b.Min, draw.Src)

	bw := int(math.Ceil(float64(w) * scale))
	bh := int(math.Ceil(float64(h) * scale))

	return &SoftwareCanvas{
		source:   source,
		surface:  image.NewRGBA(image.Rect(0, 0, bw, bh)),
		logicalW: w,
		logicalH: h,
		scale:    scale,
		smooth:   true,
	}, nil
}

// SourceSize implements Canvas.
func (c *SoftwareCanvas) SourceSize() (w, h float64) {
	b := c.source.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// LogicalSize implements Canvas.
func (c *SoftwareCanvas) LogicalSize() (w, h float64) {
	return float64(c.logicalW), float64(c.logicalH)
}

// DeviceScale returns the device scale factor applied to the backing store.
func (c *SoftwareCanvas) DeviceScale() float64 {
	return c.scale
}

// SetSmoothing implements Canvas. Smoothing is on by default.
func (c *SoftwareCanvas) SetSmoothing(smooth bool) {
	c.smooth = smooth
}

// DrawSource implements Canvas.
func (c *SoftwareCanvas) DrawSource(src, dst Rect) {
	sr := pixelRect(src, 1)
	dr := c.deviceRect(dst)
	if sr.Size() == dr.Size() {
		// Equal sizes are a straight copy; no resampling needed.
		draw.Draw(c.surface, dr, c.source, sr.Min, draw.Src)
		return
	}
	c.kernel().Scale(c.surface, dr, c.source, sr, draw.Src, nil)
}

// DrawSurface implements Canvas. The source region is snapshotted into a
// scratch buffer before scaling, so overlapping src and dst are safe.
func (c *SoftwareCanvas) DrawSurface(src, dst Rect) {
	if c.scratch == nil {
		c.scratch = image.NewRGBA(c.surface.Bounds())
	}
	sr := c.deviceRect(src)
	draw.Draw(c.scratch, sr, c.surface, sr.Min, draw.Src)
	c.kernel().Scale(c.surface, c.deviceRect(dst), c.scratch, sr, draw.Src, nil)
}

// Image returns the surface's backing buffer. The renderer mutates it in
// place; treat it as read-only between renders.
func (c *SoftwareCanvas) Image() *image.RGBA {
	return c.surface
}

// Dispose implements Canvas.
func (c *SoftwareCanvas) Dispose() {
	c.source = nil
	c.surface = nil
	c.scratch = nil
}

// kernel selects the interpolator matching the current smoothing state.
func (c *SoftwareCanvas) kernel() draw.Interpolator {
	if c.smooth {
		return draw.ApproxBiLinear
	}
	return draw.NearestNeighbor
}

// deviceRect converts a logical rect to backing-store pixels.
func (c *SoftwareCanvas) deviceRect(r Rect) image.Rectangle {
	return pixelRect(r, c.scale)
}

// pixelRect converts a float rect to an image.Rectangle with edges scaled
// and rounded. Edges are rounded independently so adjacent rects stay
// adjacent.
func pixelRect(r Rect, scale float64) image.Rectangle {
	return image.Rect(
		int(math.Round(r.X*scale)),
		int(math.Round(r.Y*scale)),
		int(math.Round((r.X+r.Width)*scale)),
		int(math.Round((r.Y+r.Height)*scale)),
	)
}
