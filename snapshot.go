package depixel

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// SavePNG writes img to path as a PNG. Pair it with [SoftwareCanvas.Image]
// or [EbitenCanvas.Snapshot] to capture the rendered surface, e.g. for
// visual regression baselines.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("save png %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}
