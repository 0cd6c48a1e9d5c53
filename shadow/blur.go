package shadow

import "github.com/gogpu/shadowbox"

// blurCutoffRatio is the visible support of the Gaussian kernel in
// sigmas. A CSS blur-radius is an intuitive pixel scale, not a standard
// deviation; treating the radius as ≈2.5σ of visible falloff matches
// how browsers present the parameter.
const blurCutoffRatio = 2.5

// BlurSigma converts a perceptual blur radius in pixels into the
// standard deviation of the Gaussian kernel that realizes it.
//
// The mapping is pure and monotonic non-decreasing: zero maps to zero,
// and negative input clamps to zero rather than failing.
func BlurSigma(blurRadiusPx float64) float64 {
	if blurRadiusPx < 0 {
		blurRadiusPx = 0
	}
	return blurRadiusPx / blurCutoffRatio
}

// ClampSpread bounds a signed spread radius against the un-inflated
// rectangle's shorter edge m, to [-m, m/2].
//
// The positive bound keeps the spread from collapsing or inverting the
// rectangle; the negative bound keeps a large negative spread from
// inflating the blur-coverage region far beyond visual relevance and
// wasting compute. CSS leaves spread unbounded; the bound here is a
// deliberate engineering choice.
func ClampSpread(spreadPx, minEdge float64) float64 {
	if minEdge < 0 {
		minEdge = 0
	}
	return shadowbox.Clamp(spreadPx, -minEdge, 0.5*minEdge)
}
