package scene

import "github.com/gogpu/shadowbox"

// Scene is an ordered recorder of draw commands.
//
// Commands are appended in call order and replayed in the same order by
// Playback. A Scene holds no rendering state of its own: two scenes fed
// identical calls record identical command sequences.
//
// Scene is not safe for concurrent use; a redraw loop resets and
// refills one scene per frame on a single goroutine.
//
// Example:
//
//	s := scene.NewScene()
//	s.Fill(shape, color, scene.FillNonZero)
//	s.PushLayer(clip, scene.FillNonZero, scene.BlendSourceOver, 1)
//	s.BlurredRoundedRectIn(clip, rect, radius, color, sigma)
//	s.PopLayer()
//	err := s.Playback(backend)
type Scene struct {
	commands   []Command
	layerDepth int
}

// NewScene creates a new empty scene.
func NewScene() *Scene {
	return &Scene{
		commands: make([]Command, 0, 16),
	}
}

// Reset clears the scene for reuse without deallocating memory.
func (s *Scene) Reset() {
	s.commands = s.commands[:0]
	s.layerDepth = 0
}

// Fill records an immediate solid fill of a rounded rectangle.
func (s *Scene) Fill(shape shadowbox.RoundedRect, color shadowbox.RGBA, rule FillRule) {
	s.commands = append(s.commands, FillCommand{Shape: shape, Color: color, Rule: rule})
}

// Stroke records a centered stroke of a rounded rectangle outline.
// Zero or negative widths record nothing.
func (s *Scene) Stroke(shape shadowbox.RoundedRect, color shadowbox.RGBA, width float64) {
	if width <= 0 {
		return
	}
	s.commands = append(s.commands, StrokeCommand{Shape: shape, Color: color, Width: width})
}

// PushLayer records the start of a compositing layer clipped to the
// given shape. All subsequent commands up to the matching PopLayer are
// confined to the clip and composited with the content below using the
// blend mode and opacity. Alpha is clamped to [0, 1].
func (s *Scene) PushLayer(clip shadowbox.RoundedRect, rule FillRule, blend BlendMode, alpha float64) {
	s.commands = append(s.commands, PushLayerCommand{
		Clip:  clip,
		Rule:  rule,
		Blend: blend,
		Alpha: shadowbox.Clamp(alpha, 0, 1),
	})
	s.layerDepth++
}

// PopLayer records the end of the innermost open layer.
// Returns false if no layer is open.
func (s *Scene) PopLayer() bool {
	if s.layerDepth == 0 {
		return false
	}
	s.commands = append(s.commands, PopLayerCommand{})
	s.layerDepth--
	return true
}

// BlurredRoundedRectIn records a Gaussian-blurred rounded-rectangle fill
// restricted to the clip shape's coverage.
func (s *Scene) BlurredRoundedRectIn(clip shadowbox.RoundedRect, rect shadowbox.Rect, radius float64, color shadowbox.RGBA, sigma float64) {
	s.commands = append(s.commands, BlurredRoundedRectCommand{
		Clip:   clip,
		Rect:   rect,
		Radius: radius,
		Color:  color,
		Sigma:  sigma,
	})
}

// Commands returns the recorded command sequence in order.
// The returned slice is owned by the scene; callers must not mutate it.
func (s *Scene) Commands() []Command {
	return s.commands
}

// Len returns the number of recorded commands.
func (s *Scene) Len() int {
	return len(s.commands)
}

// IsEmpty returns true if the scene has no commands.
func (s *Scene) IsEmpty() bool {
	return len(s.commands) == 0
}

// LayerDepth returns the number of currently open layers.
func (s *Scene) LayerDepth() int {
	return s.layerDepth
}
