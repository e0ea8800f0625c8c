// Package depixel renders a time-based pixelation reveal on a raster image:
// the image starts as coarse uniform blocks and smoothly resolves to full
// fidelity over a configurable duration and easing curve.
//
// # Quick start
//
//	canvas, err := depixel.NewSoftwareCanvas(img, 1)
//	if err != nil {
//		log.Fatal(err)
//	}
//	effect, err := depixel.New(canvas, depixel.Options{
//		Duration: 2 * time.Second,
//		Easing:   "easeOutCubic",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	done := effect.Animate()
//
// The effect does not own a frame loop. Its [Scheduler] is pumped once per
// display frame — with the default [LoopScheduler], call [LoopScheduler.Tick]
// from your game's Update:
//
//	func (g *Game) Update() error {
//		g.sched.Tick()
//		return nil
//	}
//
// Present the surface however you like; with [NewEbitenCanvas] the surface is
// an *ebiten.Image ready to draw to the screen. See examples/reveal.
//
// # How the pixelation works
//
// For a granularity g > 1 the renderer draws the original source image
// downscaled to ceil(w/g) x ceil(h/g) with nearest-neighbor sampling, then
// draws that small region back up to full size, again nearest-neighbor. The
// result is uniform blocks about g logical pixels on a side. Every call
// starts from the original source, so repeated renders at the same
// granularity are identical. Granularity <= 1 is the identity render.
//
// # Animation
//
// [Effect.Animate] interpolates granularity from Options.InitialGranularity
// down to Options.FinalGranularity over Options.Duration, shaped by a named
// easing curve from [gween]'s ease package. [Effect.AnimateReverse] runs the
// same transition with the endpoints swapped; the stored Options are never
// mutated. Both return a channel that is closed exactly once, on natural
// completion or when the run is stopped early.
//
// All of depixel is single-threaded by design: the surface is mutated only
// from scheduler ticks and direct render calls, never from other goroutines.
//
// [gween]: https://github.com/tanema/gween
package depixel
