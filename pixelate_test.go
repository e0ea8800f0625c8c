package depixel

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// gradientImage returns an image where every pixel has a unique opaque
// color, so any resampling is visible in the output.
func gradientImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 255 / max(w-1, 1)),
				G: uint8(y * 255 / max(h-1, 1)),
				B: uint8((x + y) % 256),
				A: 255,
			})
		}
	}
	return img
}

func newTestCanvas(t *testing.T, w, h int) *SoftwareCanvas {
	t.Helper()
	c, err := NewSoftwareCanvas(gradientImage(w, h), 1)
	if err != nil {
		t.Fatalf("NewSoftwareCanvas: %v", err)
	}
	return c
}

// surfacePix returns a copy of the surface's pixel bytes.
func surfacePix(c *SoftwareCanvas) []byte {
	pix := make([]byte, len(c.Image().Pix))
	copy(pix, c.Image().Pix)
	return pix
}

// rowTransitions counts color changes along the surface's middle row. For a
// gradient source every sampled column differs, so a pixelated render with n
// block columns yields n-1 transitions.
func rowTransitions(c *SoftwareCanvas) int {
	img := c.Image()
	b := img.Bounds()
	y := b.Min.Y + b.Dy()/2
	count := 0
	for x := b.Min.X + 1; x < b.Max.X; x++ {
		if img.RGBAAt(x, y) != img.RGBAAt(x-1, y) {
			count++
		}
	}
	return count
}

func TestIdentityRenderMatchesSource(t *testing.T) {
	src := gradientImage(32, 24)
	for _, g := range []float64{1, 0.5, 0, -3} {
		c, err := NewSoftwareCanvas(src, 1)
		if err != nil {
			t.Fatalf("NewSoftwareCanvas: %v", err)
		}
		NewRenderer(c).SetPixelation(g)
		if diff := cmp.Diff(src.Pix, c.Image().Pix); diff != "" {
			t.Errorf("granularity %v: surface differs from source (-want +got):\n%s", g, diff)
		}
	}
}

func TestPixelationIdempotent(t *testing.T) {
	c := newTestCanvas(t, 40, 40)
	r := NewRenderer(c)

	r.SetPixelation(7.3)
	first := surfacePix(c)
	r.SetPixelation(7.3)
	second := surfacePix(c)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second render at same granularity differs:\n%s", diff)
	}
}

func TestPixelationRendersFromOriginalSource(t *testing.T) {
	c := newTestCanvas(t, 40, 40)
	r := NewRenderer(c)

	// Render at a different granularity in between; the repeat at 8 must
	// ignore the surface's intermediate state.
	r.SetPixelation(8)
	want := surfacePix(c)
	r.SetPixelation(20)
	r.SetPixelation(8)

	if diff := cmp.Diff(want, surfacePix(c)); diff != "" {
		t.Errorf("render at 8 after intermediate render differs:\n%s", diff)
	}
}

func TestMonotonicBlockCount(t *testing.T) {
	c := newTestCanvas(t, 64, 64)
	r := NewRenderer(c)

	prev := -1
	// Decreasing granularity must never decrease the number of blocks.
	for _, g := range []float64{32, 16, 8, 4, 2} {
		r.SetPixelation(g)
		n := rowTransitions(c)
		if prev >= 0 && n < prev {
			t.Errorf("granularity %v: %d transitions, fewer than %d at the coarser level", g, n, prev)
		}
		prev = n
	}
}

func TestBlockCountUsesCeil(t *testing.T) {
	// 10 logical pixels at granularity 3 → ceil(10/3) = 4 block columns.
	c := newTestCanvas(t, 10, 10)
	NewRenderer(c).SetPixelation(3)

	if got, want := rowTransitions(c), 3; got != want {
		t.Errorf("transitions = %d, want %d (4 block columns)", got, want)
	}
}

func TestFractionalGranularity(t *testing.T) {
	// ceil(30/4.2) = 8 block columns; fractional values come straight from
	// the interpolation path and must render like any other.
	c := newTestCanvas(t, 30, 30)
	NewRenderer(c).SetPixelation(4.2)

	if got, want := rowTransitions(c), 7; got != want {
		t.Errorf("transitions = %d, want %d (8 block columns)", got, want)
	}
}

func TestSmoothingRestoredAfterRender(t *testing.T) {
	c := newTestCanvas(t, 16, 16)
	r := NewRenderer(c)

	r.SetPixelation(4)
	if !c.smooth {
		t.Error("smoothing left disabled after a pixelated render")
	}

	r.SetPixelation(1)
	if !c.smooth {
		t.Error("smoothing disabled after an identity render")
	}
}

func TestRendererCanvasAccessor(t *testing.T) {
	c := newTestCanvas(t, 8, 8)
	r := NewRenderer(c)
	if r.Canvas() != Canvas(c) {
		t.Error("Canvas() should return the canvas passed to NewRenderer")
	}
}
