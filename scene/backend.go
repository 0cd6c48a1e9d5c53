package scene

import (
	"errors"
	"fmt"

	"github.com/gogpu/shadowbox"
)

// Backend is the abstract 2D rendering surface scenes replay onto.
//
// Implementations must support at least BlendSourceOver and
// BlendDestinationOut layer compositing, and layers must nest correctly
// (last pushed, first popped). A backend that lacks a native blurred
// rounded-rect primitive emulates it with an offscreen alpha mask and a
// separable Gaussian blur, as render.Software does.
type Backend interface {
	// Fill immediately fills a rounded rectangle with a solid color.
	Fill(shape shadowbox.RoundedRect, color shadowbox.RGBA, rule FillRule)

	// Stroke draws a centered outline of a rounded rectangle.
	Stroke(shape shadowbox.RoundedRect, color shadowbox.RGBA, width float64)

	// PushLayer opens a compositing layer clipped to the given shape.
	PushLayer(clip shadowbox.RoundedRect, rule FillRule, blend BlendMode, alpha float64)

	// PopLayer closes the innermost open layer, compositing it below.
	PopLayer()

	// DrawBlurredRoundedRectIn fills a rounded rectangle blurred by a
	// Gaussian of the given standard deviation, restricted to the clip.
	DrawBlurredRoundedRectIn(clip shadowbox.RoundedRect, rect shadowbox.Rect, radius float64, color shadowbox.RGBA, sigma float64)
}

// ErrUnbalancedLayers is returned by Playback when the command sequence
// leaves layers open or pops more layers than it pushed.
var ErrUnbalancedLayers = errors.New("scene: unbalanced layer push/pop")

// Playback replays the recorded command sequence onto the backend in
// recording order. It verifies layer nesting so a malformed sequence can
// never underflow the backend's layer stack.
func (s *Scene) Playback(b Backend) error {
	depth := 0
	for i, cmd := range s.commands {
		switch c := cmd.(type) {
		case FillCommand:
			b.Fill(c.Shape, c.Color, c.Rule)
		case StrokeCommand:
			b.Stroke(c.Shape, c.Color, c.Width)
		case PushLayerCommand:
			b.PushLayer(c.Clip, c.Rule, c.Blend, c.Alpha)
			depth++
		case PopLayerCommand:
			if depth == 0 {
				return fmt.Errorf("%w: pop at command %d", ErrUnbalancedLayers, i)
			}
			b.PopLayer()
			depth--
		case BlurredRoundedRectCommand:
			b.DrawBlurredRoundedRectIn(c.Clip, c.Rect, c.Radius, c.Color, c.Sigma)
		default:
			return fmt.Errorf("scene: unknown command %T at %d", cmd, i)
		}
	}
	if depth != 0 {
		return fmt.Errorf("%w: %d layers left open", ErrUnbalancedLayers, depth)
	}
	return nil
}
