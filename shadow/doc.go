// Package shadow composes CSS-style inset box-shadows as scene command
// sequences.
//
// The core entry point is Draw, which records the blurred-ring
// construction for one rounded rectangle: an offset, padded, blurred
// outer fill clipped to the shape, with a blurred inner cutout erased
// out of it via destination-out compositing. Params models the CSS
// parameter set (offset, blur, spread, opacity, corner radius) with
// per-field steppers for interactive tuning, and presets load named
// snapshots from YAML.
package shadow
