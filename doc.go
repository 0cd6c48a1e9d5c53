// Package shadowbox renders CSS-style inset box shadows for rounded
// rectangles by compositing two Gaussian-blurred fills through a
// subtractive layer.
//
// The package is organized like the rest of the gogpu family:
//
//   - shadowbox (this package): geometry, colors, pixmaps, viewport
//     layout, and the GPU accelerator registry.
//   - scene: an ordered draw-command recorder with compositing layers,
//     replayable onto any Backend.
//   - shadow: the shadow parameter model and the compositor that emits
//     the inset-shadow command sequence.
//   - render: a software Backend rasterizing scenes to a Pixmap, plus
//     the surface lifecycle used by host applications.
//   - gpu: an optional wgpu compute accelerator for the blurred
//     rounded-rect primitive (enable via blank import).
//
// The compositor is pure and synchronous: identical inputs always
// produce an identical command sequence, and invalid numeric extremes
// degrade by clamping rather than erroring, so it is safe inside a
// per-frame redraw path.
package shadowbox
