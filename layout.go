package shadowbox

import "math"

// PlacedShape is a rectangle positioned inside a viewport together with
// the corner radius it can actually carry.
type PlacedShape struct {
	Rect   Rect
	Radius float64
}

// Shape returns the placed rounded rectangle.
func (ps PlacedShape) Shape() RoundedRect {
	return RoundedRect{Rect: ps.Rect, Radius: ps.Radius}
}

// Default control dimensions, matching a medium button spec:
// 108px minimum width, 36px height, 8px corner radius, 1px border.
const (
	ControlWidth  = 108.0
	ControlHeight = 36.0

	controlGap    = 32.0
	controlMargin = 24.0
)

// PlacePanel computes a centered panel proportional to the viewport.
// The panel tracks the window size but is kept between 240×180 and
// 720×520, and position and size are pixel-aligned so blur symmetry is
// easy to inspect. The returned radius is the requested corner radius
// clamped to half the panel's shorter edge.
//
// The panel stays inside the viewport whenever the viewport is at least
// the 240×180 minimum. Below that, the minimum size wins and the panel
// overflows the viewport edges, centered, rather than shrinking past
// the point where the shadow band is readable.
func PlacePanel(viewportWidth, viewportHeight int, cornerRadius float64) PlacedShape {
	w := float64(viewportWidth)
	h := float64(viewportHeight)

	rectW := math.Round(Clamp(w*0.58, 240, 720))
	rectH := math.Round(Clamp(h*0.42, 180, 520))

	x0 := math.Round((w - rectW) * 0.5)
	y0 := math.Round((h - rectH) * 0.5)

	rect := NewRect(x0, y0, x0+rectW, y0+rectH)
	return PlacedShape{Rect: rect, Radius: ClampRadius(cornerRadius, rect)}
}

// PlaceControl computes a fixed-size control sample near the panel.
// The control is horizontally centered and placed above the panel with a
// gap; if it does not fit it moves below the panel, and if that does not
// fit either it is pinned to the top margin so it stays visible in small
// viewports.
func PlaceControl(viewportWidth, viewportHeight int, panel Rect, cornerRadius float64) PlacedShape {
	w := float64(viewportWidth)
	h := float64(viewportHeight)

	x0 := math.Round((w - ControlWidth) * 0.5)
	x1 := math.Round(x0 + ControlWidth)

	y0 := panel.Y0 - controlGap - ControlHeight
	if y0 < controlMargin {
		y0 = panel.Y1 + controlGap
		if y0+ControlHeight > h-controlMargin {
			y0 = controlMargin
		}
	}
	y0 = math.Round(y0)
	y1 := math.Round(y0 + ControlHeight)

	rect := NewRect(x0, y0, x1, y1)
	return PlacedShape{Rect: rect, Radius: ClampRadius(cornerRadius, rect)}
}
