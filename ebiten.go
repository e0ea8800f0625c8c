package depixel

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenCanvas is a GPU-backed Canvas over ebiten images. The surface is a
// persistent offscreen *ebiten.Image owned by the canvas; the source image
// is owned by the caller and never written to.
//
// Ebitengine forbids drawing an image into itself, so the surface-to-surface
// pass goes through an internal scratch image.
type EbitenCanvas struct {
	source  *ebiten.Image
	surface *ebiten.Image
	scratch *ebiten.Image

	logicalW, logicalH int
	scale              float64 // device scale factor, >= 1
	filter             ebiten.Filter
}

// NewEbitenCanvas creates a canvas whose logical size is the source image's
// size. The backing store is ceil(size*scale) pixels; a scale below 1 is
// clamped to 1. Returns ErrNoSource if src is nil or has no area.
func NewEbitenCanvas(src *ebiten.Image, scale float64) (*EbitenCanvas, error) {
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

	bw := int(math.Ceil(float64(w) * scale))
	bh := int(math.Ceil(float64(h) * scale))

	return &EbitenCanvas{
		source:   src,
		surface:  ebiten.NewImage(bw, bh),
		logicalW: w,
		logicalH: h,
		scale:    scale,
		filter:   ebiten.FilterLinear,
	}, nil
}

// SourceSize implements Canvas.
func (c *EbitenCanvas) SourceSize() (w, h float64) {
	b := c.source.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// LogicalSize implements Canvas.
func (c *EbitenCanvas) LogicalSize() (w, h float64) {
	return float64(c.logicalW), float64(c.logicalH)
}

// DeviceScale returns the device scale factor applied to the backing store.
func (c *EbitenCanvas) DeviceScale() float64 {
	return c.scale
}

// SetSmoothing implements Canvas. Smoothing is on by default.
func (c *EbitenCanvas) SetSmoothing(smooth bool) {
	if smooth {
		c.filter = ebiten.FilterLinear
	} else {
		c.filter = ebiten.FilterNearest
	}
}

// DrawSource implements Canvas.
func (c *EbitenCanvas) DrawSource(src, dst Rect) {
	sr := pixelRect(src, 1)
	sub := c.source.SubImage(sr).(*ebiten.Image)
	c.drawScaled(c.surface, sub, sr, c.deviceRect(dst))
}

// DrawSurface implements Canvas. The source region is copied into the
// scratch image first, since ebiten cannot draw an image into itself.
func (c *EbitenCanvas) DrawSurface(src, dst Rect) {
	if c.scratch == nil {
		b := c.surface.Bounds()
		c.scratch = ebiten.NewImage(b.Dx(), b.Dy())
	}
	sr := c.deviceRect(src)
	sub := c.surface.SubImage(sr).(*ebiten.Image)

	// Exact copy of the region to the scratch origin.
	var op ebiten.DrawImageOptions
	op.Blend = ebiten.BlendCopy
	c.scratch.DrawImage(sub, &op)

	snap := image.Rect(0, 0, sr.Dx(), sr.Dy())
	c.drawScaled(c.surface, c.scratch.SubImage(snap).(*ebiten.Image), snap, c.deviceRect(dst))
}

// deviceRect converts a logical rect to backing-store pixels.
func (c *EbitenCanvas) deviceRect(r Rect) image.Rectangle {
	return pixelRect(r, c.scale)
}

// drawScaled draws src (whose pixel region is sr) into the region dr of dst
// using the current sampling filter.
func (c *EbitenCanvas) drawScaled(dst, src *ebiten.Image, sr, dr image.Rectangle) {
	if sr.Dx() <= 0 || sr.Dy() <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(
		float64(dr.Dx())/float64(sr.Dx()),
		float64(dr.Dy())/float64(sr.Dy()),
	)
	op.GeoM.Translate(float64(dr.Min.X), float64(dr.Min.Y))
	op.Filter = c.filter
	op.Blend = ebiten.BlendCopy
	dst.DrawImage(src, &op)
}

// Image returns the surface for presenting. Draw it to the screen scaled by
// 1/DeviceScale to map backing pixels back to logical pixels.
func (c *EbitenCanvas) Image() *ebiten.Image {
	return c.surface
}

// Snapshot reads the surface back into a straight-alpha NRGBA image, for
// saving or inspection. This forces a GPU sync; avoid it on hot paths.
func (c *EbitenCanvas) Snapshot() *image.NRGBA {
	b := c.surface.Bounds()
	w, h := b.Dx(), b.Dy()
	pixels := make([]byte, 4*w*h)
	c.surface.ReadPixels(pixels)

	// Convert premultiplied RGBA to straight-alpha NRGBA.
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, bl, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			bl = uint8(min(int(bl)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = bl
		img.Pix[i+3] = a
	}
	return img
}

// Dispose implements Canvas. The source image is caller-owned and is not
// deallocated.
func (c *EbitenCanvas) Dispose() {
	if c.surface != nil {
		c.surface.Deallocate()
		c.surface = nil
	}
	if c.scratch != nil {
		c.scratch.Deallocate()
		c.scratch = nil
	}
	c.source = nil
}
