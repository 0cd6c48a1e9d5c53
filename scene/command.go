package scene

import "github.com/gogpu/shadowbox"

// CommandType identifies the type of a draw command.
type CommandType uint8

const (
	// CmdFill is an immediate solid fill of a rounded rectangle.
	CmdFill CommandType = iota

	// CmdStroke is an immediate centered stroke of a rounded rectangle.
	CmdStroke

	// CmdPushLayer opens a compositing layer with a clip shape.
	CmdPushLayer

	// CmdPopLayer closes the innermost open layer.
	CmdPopLayer

	// CmdBlurredRoundedRect fills a Gaussian-blurred rounded rectangle
	// restricted to a clip shape.
	CmdBlurredRoundedRect
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdFill:               "Fill",
	CmdStroke:             "Stroke",
	CmdPushLayer:          "PushLayer",
	CmdPopLayer:           "PopLayer",
	CmdBlurredRoundedRect: "BlurredRoundedRect",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return unknownStr
}

// Command is the interface implemented by all draw commands. Commands
// represent individual operations that can be inspected and replayed to
// different backends in recording order.
type Command interface {
	// Type returns the command type.
	Type() CommandType
}

// FillCommand fills a rounded rectangle with a solid color.
type FillCommand struct {
	Shape shadowbox.RoundedRect
	Color shadowbox.RGBA
	Rule  FillRule
}

// Type returns CmdFill.
func (FillCommand) Type() CommandType { return CmdFill }

// StrokeCommand strokes the outline of a rounded rectangle.
type StrokeCommand struct {
	Shape shadowbox.RoundedRect
	Color shadowbox.RGBA
	Width float64
}

// Type returns CmdStroke.
func (StrokeCommand) Type() CommandType { return CmdStroke }

// PushLayerCommand opens a compositing layer. All subsequent commands up
// to the matching PopLayerCommand are confined to the clip shape and
// composited with the content below using the blend mode and opacity.
type PushLayerCommand struct {
	Clip  shadowbox.RoundedRect
	Rule  FillRule
	Blend BlendMode
	Alpha float64
}

// Type returns CmdPushLayer.
func (PushLayerCommand) Type() CommandType { return CmdPushLayer }

// PopLayerCommand closes the innermost open layer.
type PopLayerCommand struct{}

// Type returns CmdPopLayer.
func (PopLayerCommand) Type() CommandType { return CmdPopLayer }

// BlurredRoundedRectCommand fills a rounded rectangle blurred by a 2D
// Gaussian of the given standard deviation, restricted to the clip
// shape's coverage. This is the foundational primitive of the inset
// shadow compositor; backends lacking native support emulate it by
// rasterizing the shape to an offscreen alpha mask, applying a separable
// Gaussian blur, and compositing the result inside the clip.
type BlurredRoundedRectCommand struct {
	Clip   shadowbox.RoundedRect
	Rect   shadowbox.Rect
	Radius float64
	Color  shadowbox.RGBA
	Sigma  float64
}

// Type returns CmdBlurredRoundedRect.
func (BlurredRoundedRectCommand) Type() CommandType { return CmdBlurredRoundedRect }
