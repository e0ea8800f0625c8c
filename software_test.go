package depixel

import (
	"errors"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewSoftwareCanvasNilSource(t *testing.T) {
	_, err := NewSoftwareCanvas(nil, 1)
	if !errors.Is(err, ErrNoSource) {
		t.Errorf("error = %v, want ErrNoSource", err)
	}
}

func TestNewSoftwareCanvasEmptySource(t *testing.T) {
	_, err := NewSoftwareCanvas(image.NewRGBA(image.Rect(0, 0, 0, 0)), 1)
	if !errors.Is(err, ErrNoSource) {
		t.Errorf("error = %v, want ErrNoSource", err)
	}
}

func TestSoftwareCanvasSizes(t *testing.T) {
	c, err := NewSoftwareCanvas(gradientImage(10, 8), 2)
	if err != nil {
		t.Fatalf("NewSoftwareCanvas: %v", err)
	}

	if w, h := c.LogicalSize(); w != 10 || h != 8 {
		t.Errorf("LogicalSize = (%v, %v), want (10, 8)", w, h)
	}
	if w, h := c.SourceSize(); w != 10 || h != 8 {
		t.Errorf("SourceSize = (%v, %v), want (10, 8)", w, h)
	}
	b := c.Image().Bounds()
	if b.Dx() != 20 || b.Dy() != 16 {
		t.Errorf("backing store = %dx%d, want 20x16 (logical x scale)", b.Dx(), b.Dy())
	}
	if c.DeviceScale() != 2 {
		t.Errorf("DeviceScale = %v, want 2", c.DeviceScale())
	}
}

func TestSoftwareCanvasScaleClampedToOne(t *testing.T) {
	c, err := NewSoftwareCanvas(gradientImage(10, 10), 0.25)
	if err != nil {
		t.Fatalf("NewSoftwareCanvas: %v", err)
	}
	if c.DeviceScale() != 1 {
		t.Errorf("DeviceScale = %v, want 1", c.DeviceScale())
	}
	if b := c.Image().Bounds(); b.Dx() != 10 || b.Dy() != 10 {
		t.Errorf("backing store = %dx%d, want 10x10", b.Dx(), b.Dy())
	}
}

// Sampling happens in backing pixels: at device scale 2 the downscale pass
// covers ceil(16/4)*2 = 8 backing columns, so the grid has 8 block columns.
func TestSoftwareCanvasDeviceScalePixelation(t *testing.T) {
	c, err := NewSoftwareCanvas(gradientImage(16, 16), 2)
	if err != nil {
		t.Fatalf("NewSoftwareCanvas: %v", err)
	}
	NewRenderer(c).SetPixelation(4)

	if got, want := rowTransitions(c), 7; got != want {
		t.Errorf("transitions at scale 2 = %d, want %d (8 block columns)", got, want)
	}
}

func TestDrawSurfaceOverlappingRegions(t *testing.T) {
	c, err := NewSoftwareCanvas(gradientImage(16, 16), 1)
	if err != nil {
		t.Fatalf("NewSoftwareCanvas: %v", err)
	}
	full := Rect{Width: 16, Height: 16}
	c.DrawSource(full, full)
	want := surfacePix(c)

	// Drawing the whole surface onto itself must be a no-op thanks to the
	// scratch snapshot, not a feedback loop.
	c.SetSmoothing(false)
	c.DrawSurface(full, full)
	if diff := cmp.Diff(want, surfacePix(c)); diff != "" {
		t.Errorf("self-draw of the full surface changed pixels:\n%s", diff)
	}
}

func TestSoftwareCanvasDispose(t *testing.T) {
	c, err := NewSoftwareCanvas(gradientImage(4, 4), 1)
	if err != nil {
		t.Fatalf("NewSoftwareCanvas: %v", err)
	}
	c.Dispose()
	if c.Image() != nil {
		t.Error("Image() should be nil after Dispose")
	}
}

func TestPixelRectRounding(t *testing.T) {
	got := pixelRect(Rect{X: 1, Y: 1, Width: 2.5, Height: 2.5}, 2)
	want := image.Rect(2, 2, 7, 7)
	if got != want {
		t.Errorf("pixelRect = %v, want %v", got, want)
	}
}
