// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/shadowbox"
	"github.com/gogpu/shadowbox/internal/filter"
	"github.com/gogpu/shadowbox/scene"
)

// Software is a CPU scene backend rendering into a premultiplied
// float32 RGBA framebuffer.
//
// Layers are full-frame float32 buffers: PushLayer opens a transparent
// buffer, drawing targets the innermost open buffer, and PopLayer
// composites it into its parent through the layer's clip coverage,
// opacity, and Porter-Duff blend mode. Working in float32 keeps the
// destination-out erase free of quantization bands; conversion to 8-bit
// happens once, at Pixmap readback.
//
// Blurred rounded-rect fills try the registered accelerator first and
// fall back to the CPU rasterize-and-blur pipeline on any error.
//
// Software is not safe for concurrent use.
type Software struct {
	width, height int

	// base is the bottom framebuffer, premultiplied RGBA.
	base []float32

	stack []*softLayer
}

type softLayer struct {
	pix   []float32
	clip  []float32
	blend scene.BlendMode
	alpha float64
}

// NewSoftware creates a software backend with a transparent
// width×height framebuffer. Dimensions are clamped to at least 1.
func NewSoftware(width, height int) *Software {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Software{
		width:  width,
		height: height,
		base:   make([]float32, width*height*4),
	}
}

// Width returns the framebuffer width in pixels.
func (r *Software) Width() int { return r.width }

// Height returns the framebuffer height in pixels.
func (r *Software) Height() int { return r.height }

// Clear fills the base framebuffer with a solid color and drops any
// open layers.
func (r *Software) Clear(c shadowbox.RGBA) {
	r.stack = r.stack[:0]
	pr, pg, pb, pa := premul(c)
	for i := 0; i < len(r.base); i += 4 {
		r.base[i+0] = pr
		r.base[i+1] = pg
		r.base[i+2] = pb
		r.base[i+3] = pa
	}
}

// target returns the buffer drawing commands currently write to.
func (r *Software) target() []float32 {
	if n := len(r.stack); n > 0 {
		return r.stack[n-1].pix
	}
	return r.base
}

// Fill rasterizes a rounded rectangle and composites it source-over.
func (r *Software) Fill(shape shadowbox.RoundedRect, c shadowbox.RGBA, _ scene.FillRule) {
	mask := filter.RRectMask(r.width, r.height, shape.Rect, shape.Radius)
	r.compositeMask(r.target(), mask, c)
}

// Stroke draws a centered outline as the coverage difference of two
// rounded rects half a stroke width apart.
func (r *Software) Stroke(shape shadowbox.RoundedRect, c shadowbox.RGBA, width float64) {
	if width <= 0 {
		return
	}
	hw := width / 2
	outerRect := shape.Rect.Inflate(hw, hw)
	innerRect := shape.Rect.Inflate(-hw, -hw)

	outer := filter.RRectMask(r.width, r.height, outerRect, shape.Radius+hw)
	if !innerRect.IsEmpty() {
		innerRadius := shape.Radius - hw
		if innerRadius < 0 {
			innerRadius = 0
		}
		inner := filter.RRectMask(r.width, r.height, innerRect, innerRadius)
		for i := range outer {
			v := outer[i] - inner[i]
			if v < 0 {
				v = 0
			}
			outer[i] = v
		}
	}
	r.compositeMask(r.target(), outer, c)
}

// PushLayer opens a transparent compositing layer.
func (r *Software) PushLayer(clip shadowbox.RoundedRect, _ scene.FillRule, blend scene.BlendMode, alpha float64) {
	r.stack = append(r.stack, &softLayer{
		pix:   make([]float32, r.width*r.height*4),
		clip:  filter.RRectMask(r.width, r.height, clip.Rect, clip.Radius),
		blend: blend,
		alpha: shadowbox.Clamp(alpha, 0, 1),
	})
}

// PopLayer composites the innermost layer into its parent. A pop with
// no open layer is ignored; Playback reports unbalanced sequences
// before they reach the backend.
func (r *Software) PopLayer() {
	n := len(r.stack)
	if n == 0 {
		return
	}
	layer := r.stack[n-1]
	r.stack = r.stack[:n-1]

	compositeLayer(r.target(), layer)
}

// DrawBlurredRoundedRectIn composites a Gaussian-blurred rounded-rect
// fill restricted to the clip shape's coverage.
func (r *Software) DrawBlurredRoundedRectIn(clip shadowbox.RoundedRect, rect shadowbox.Rect, radius float64, c shadowbox.RGBA, sigma float64) {
	mask := r.blurredMask(rect, radius, sigma)

	clipMask := filter.RRectMask(r.width, r.height, clip.Rect, clip.Radius)
	for i := range mask {
		mask[i] *= clipMask[i]
	}

	r.compositeMask(r.target(), mask, c)
}

// blurredMask obtains the blurred coverage mask, accelerator first.
func (r *Software) blurredMask(rect shadowbox.Rect, radius, sigma float64) []float32 {
	if a := shadowbox.ActiveAccelerator(); a != nil && a.CanAccelerate(shadowbox.AccelBlurredRRectMask) {
		mask, err := a.BlurredRRectMask(r.width, r.height, rect, radius, sigma)
		if err == nil && len(mask) == r.width*r.height {
			return mask
		}
		if err != nil && err != shadowbox.ErrFallbackToCPU {
			shadowbox.Logger().Warn("accelerated blur failed, using CPU",
				"accelerator", a.Name(), "err", err)
		}
	}
	return filter.BlurredRRectMask(r.width, r.height, rect, radius, sigma)
}

// compositeMask source-over composites a solid color through a coverage
// mask into dst.
func (r *Software) compositeMask(dst []float32, mask []float32, c shadowbox.RGBA) {
	pr, pg, pb, pa := premul(c)
	for i, cov := range mask {
		if cov <= 0 {
			continue
		}
		sa := pa * cov
		inv := 1 - sa
		o := i * 4
		dst[o+0] = pr*cov + dst[o+0]*inv
		dst[o+1] = pg*cov + dst[o+1]*inv
		dst[o+2] = pb*cov + dst[o+2]*inv
		dst[o+3] = sa + dst[o+3]*inv
	}
}

// compositeLayer applies a finished layer to dst with its clip,
// opacity, and blend mode. Source values are premultiplied and already
// include the layer's own alpha after scaling.
func compositeLayer(dst []float32, l *softLayer) {
	for i, cov := range l.clip {
		w := float32(l.alpha) * cov
		o := i * 4
		sr := l.pix[o+0] * w
		sg := l.pix[o+1] * w
		sb := l.pix[o+2] * w
		sa := l.pix[o+3] * w

		switch l.blend {
		case scene.BlendSourceOver:
			inv := 1 - sa
			dst[o+0] = sr + dst[o+0]*inv
			dst[o+1] = sg + dst[o+1]*inv
			dst[o+2] = sb + dst[o+2]*inv
			dst[o+3] = sa + dst[o+3]*inv

		case scene.BlendDestinationOut:
			inv := 1 - sa
			dst[o+0] *= inv
			dst[o+1] *= inv
			dst[o+2] *= inv
			dst[o+3] *= inv

		case scene.BlendSourceIn:
			da := dst[o+3]
			dst[o+0] = sr * da
			dst[o+1] = sg * da
			dst[o+2] = sb * da
			dst[o+3] = sa * da

		case scene.BlendDestinationIn:
			dst[o+0] *= sa
			dst[o+1] *= sa
			dst[o+2] *= sa
			dst[o+3] *= sa

		case scene.BlendSourceOut:
			inv := 1 - dst[o+3]
			dst[o+0] = sr * inv
			dst[o+1] = sg * inv
			dst[o+2] = sb * inv
			dst[o+3] = sa * inv

		case scene.BlendClear:
			inv := 1 - w
			dst[o+0] *= inv
			dst[o+1] *= inv
			dst[o+2] *= inv
			dst[o+3] *= inv

		case scene.BlendPlus:
			dst[o+0] = clamp1(dst[o+0] + sr)
			dst[o+1] = clamp1(dst[o+1] + sg)
			dst[o+2] = clamp1(dst[o+2] + sb)
			dst[o+3] = clamp1(dst[o+3] + sa)

		default:
			inv := 1 - sa
			dst[o+0] = sr + dst[o+0]*inv
			dst[o+1] = sg + dst[o+1]*inv
			dst[o+2] = sb + dst[o+2]*inv
			dst[o+3] = sa + dst[o+3]*inv
		}
	}
}

// Render plays a scene back into the framebuffer.
func (r *Software) Render(s *scene.Scene) error {
	if err := s.Playback(r); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// Pixmap converts the base framebuffer to a straight-alpha 8-bit
// pixmap. Open layers are not included.
func (r *Software) Pixmap() *shadowbox.Pixmap {
	pm := shadowbox.NewPixmap(r.width, r.height)
	data := pm.Data()
	for i := 0; i < r.width*r.height; i++ {
		o := i * 4
		a := r.base[o+3]
		if a <= 0 {
			data[o+0], data[o+1], data[o+2], data[o+3] = 0, 0, 0, 0
			continue
		}
		data[o+0] = toByte(r.base[o+0] / a)
		data[o+1] = toByte(r.base[o+1] / a)
		data[o+2] = toByte(r.base[o+2] / a)
		data[o+3] = toByte(a)
	}
	return pm
}

func premul(c shadowbox.RGBA) (pr, pg, pb, pa float32) {
	a := shadowbox.Clamp(c.A, 0, 1)
	return float32(shadowbox.Clamp(c.R, 0, 1) * a),
		float32(shadowbox.Clamp(c.G, 0, 1) * a),
		float32(shadowbox.Clamp(c.B, 0, 1) * a),
		float32(a)
}

func clamp1(v float32) float32 {
	if v > 1 {
		return 1
	}
	return v
}

func toByte(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v*255 + 0.5)
}

var _ scene.Backend = (*Software)(nil)
