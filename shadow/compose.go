package shadow

import (
	"github.com/gogpu/shadowbox"
	"github.com/gogpu/shadowbox/scene"
)

// cutoutMask is the color used for the destination-out inner fill.
// DestinationOut erases destination alpha proportionally to source
// alpha, so the mask must be fully opaque: cutting with the
// semi-transparent shadow color would erase at most its opacity and
// leave a translucent remnant in the center. RGB is irrelevant.
var cutoutMask = shadowbox.Black

// Draw emits the inset box-shadow command sequence for a rounded
// rectangle into the scene:
//
//	shadow = blur(outer rect) - blur(inner rect)    (destination-out)
//
// The outer rect is the base rect padded so the offset, blurred fill
// leaves no visible seam; the inner rect cuts the center out, leaving a
// blurred ring confined to the base rect's own rounded outline.
//
// The inner inset is controlled by spread alone: blur softens the
// transition band without deepening the cutout, so depth (spread) and
// softness (blur) tune independently. The inner corner radius is held
// at the base radius rather than eroded by the inset; eroding it makes
// the cutout's corners sharpen to right angles as the inset approaches
// the radius, which reads as an artifact.
//
// Draw is pure and never fails: every numeric extreme is resolved by
// clamping or an early no-op return, so it is safe inside a live
// per-frame redraw path. Inputs must be finite (see Params.Sanitize).
func Draw(s *scene.Scene, rect shadowbox.Rect, cornerRadius float64, color shadowbox.RGBA, offset shadowbox.Vec2, blurRadiusPx, spreadRadiusPx float64) {
	minEdge := rect.MinEdge()
	if minEdge <= 1 {
		return
	}

	radius := shadowbox.ClampRadius(cornerRadius, rect)

	if blurRadiusPx < 0 {
		blurRadiusPx = 0
	}
	sigma := BlurSigma(blurRadiusPx)
	spread := ClampSpread(spreadRadiusPx, minEdge)
	innerInset := spread

	baseShape := shadowbox.RoundedRect{Rect: rect, Radius: radius}

	// Pad by max(|offset|) + blur so the offset outer fill still covers
	// the full clip.
	outerPad := offset.MaxComponent() + blurRadiusPx
	outerRect := rect.Inflate(outerPad, outerPad)
	outerRadius := shadowbox.ClampRadius(radius+outerPad, outerRect)

	innerRect := rect.Inflate(-innerInset, -innerInset)
	if innerRect.Width() <= 1 || innerRect.Height() <= 1 {
		// Collapse to a centered 1x1 so the renderer never sees
		// negative dimensions.
		c := rect.Center()
		innerRect = shadowbox.NewRect(c.X-0.5, c.Y-0.5, c.X+0.5, c.Y+0.5)
	}
	innerRadius := shadowbox.ClampRadius(radius, innerRect)

	s.PushLayer(baseShape, scene.FillNonZero, scene.BlendSourceOver, 1)

	s.BlurredRoundedRectIn(baseShape, outerRect.Translate(offset), outerRadius, color, sigma)

	s.PushLayer(baseShape, scene.FillNonZero, scene.BlendDestinationOut, 1)
	s.BlurredRoundedRectIn(baseShape, innerRect.Translate(offset), innerRadius, cutoutMask, sigma)
	s.PopLayer()

	s.PopLayer()
}

// DrawSample draws one complete sample: the shape's face fill, a border
// stroke to make the edge easy to read, and the inset shadow for the
// given parameter snapshot.
func DrawSample(s *scene.Scene, placed shadowbox.PlacedShape, borderWidth float64, face, border shadowbox.RGBA, p Params) {
	shape := placed.Shape()

	s.Fill(shape, face, scene.FillNonZero)
	s.Stroke(shape, border, borderWidth)

	Draw(s, placed.Rect, placed.Radius, p.Color(), p.Offset(), p.BlurRadius, p.SpreadRadius)
}

// Sample face and border colors shared by both demo shapes, so the
// shadow feel can be compared across sizes directly.
var (
	SampleFace   = shadowbox.RGB(0.00, 0.48, 1.00)
	SampleBorder = shadowbox.RGB(0.35, 0.40, 0.48)
)

// BuildScene fills the scene with the standard demo frame for a
// viewport: a proportional centered panel and a fixed medium control
// placed near it, both carrying the same parameter snapshot.
func BuildScene(s *scene.Scene, viewportWidth, viewportHeight int, p Params) {
	panel := shadowbox.PlacePanel(viewportWidth, viewportHeight, p.CornerRadius)
	control := shadowbox.PlaceControl(viewportWidth, viewportHeight, panel.Rect, p.CornerRadius)

	DrawSample(s, panel, 1.5, SampleFace, SampleBorder, p)
	DrawSample(s, control, 1.0, SampleFace, SampleBorder, p)
}
