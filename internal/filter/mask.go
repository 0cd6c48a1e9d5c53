package filter

import (
	"image"

	"golang.org/x/image/vector"

	"github.com/gogpu/shadowbox"
)

// kappa is the cubic Bézier control-point distance approximating a
// quarter circle: 4*(sqrt(2)-1)/3.
const kappa = 0.5522847498307936

// RRectMask rasterizes a rounded rectangle into a width×height
// single-channel coverage mask. The rect is in mask-local pixel
// coordinates; coverage is antialiased in [0, 1]. Empty or inverted
// rects produce an all-zero mask.
//
// Each corner arc is a single cubic Bézier approximation, accurate to
// well under a hundredth of a pixel at any on-screen radius.
func RRectMask(width, height int, rect shadowbox.Rect, radius float64) []float32 {
	mask := make([]float32, width*height)
	if width <= 0 || height <= 0 || rect.IsEmpty() {
		return mask
	}

	radius = shadowbox.ClampRadius(radius, rect)

	r := vector.NewRasterizer(width, height)
	appendRRectPath(r, rect, radius)

	alpha := image.NewAlpha(image.Rect(0, 0, width, height))
	r.Draw(alpha, alpha.Bounds(), image.Opaque, image.Point{})

	for i, a := range alpha.Pix {
		mask[i] = float32(a) / 255
	}
	return mask
}

// appendRRectPath adds a clockwise rounded-rect outline to the
// rasterizer, starting from the top edge after the top-left corner.
func appendRRectPath(r *vector.Rasterizer, rect shadowbox.Rect, radius float64) {
	x0 := float32(rect.X0)
	y0 := float32(rect.Y0)
	x1 := float32(rect.X1)
	y1 := float32(rect.Y1)
	rad := float32(radius)

	if rad <= 0 {
		r.MoveTo(x0, y0)
		r.LineTo(x1, y0)
		r.LineTo(x1, y1)
		r.LineTo(x0, y1)
		r.ClosePath()
		return
	}

	k := rad * float32(kappa)

	r.MoveTo(x0+rad, y0)
	r.LineTo(x1-rad, y0)
	r.CubeTo(x1-rad+k, y0, x1, y0+rad-k, x1, y0+rad)
	r.LineTo(x1, y1-rad)
	r.CubeTo(x1, y1-rad+k, x1-rad+k, y1, x1-rad, y1)
	r.LineTo(x0+rad, y1)
	r.CubeTo(x0+rad-k, y1, x0, y1-rad+k, x0, y1-rad)
	r.LineTo(x0, y0+rad)
	r.CubeTo(x0, y0+rad-k, x0+rad-k, y0, x0+rad, y0)
	r.ClosePath()
}

// BlurredRRectMask rasterizes a rounded rectangle and Gaussian-blurs
// the result. This is the CPU reference path for shadow mask
// generation; a registered accelerator may replace it with an analytic
// evaluation of the same function.
func BlurredRRectMask(width, height int, rect shadowbox.Rect, radius, sigma float64) []float32 {
	mask := RRectMask(width, height, rect, radius)
	BlurMask(mask, width, height, sigma)
	return mask
}
