package scene

// FillRule specifies how to determine which areas are inside a shape.
type FillRule uint8

const (
	// FillNonZero uses the non-zero winding rule.
	FillNonZero FillRule = iota

	// FillEvenOdd uses the even-odd rule.
	FillEvenOdd
)

// String returns a human-readable name for the fill rule.
func (r FillRule) String() string {
	switch r {
	case FillNonZero:
		return "NonZero"
	case FillEvenOdd:
		return "EvenOdd"
	default:
		return unknownStr
	}
}

// BlendMode represents a Porter-Duff compositing operator for layers.
//
// Backends must support at least BlendSourceOver (normal alpha blending)
// and BlendDestinationOut (erase destination proportional to source
// alpha); the remaining operators are carried for completeness.
type BlendMode uint8

const (
	// BlendSourceOver composites source over destination (normal).
	BlendSourceOver BlendMode = iota

	// BlendDestinationOut keeps destination only where the source is
	// transparent, erasing coverage proportional to source alpha.
	BlendDestinationOut

	// BlendSourceIn keeps source only where destination is opaque.
	BlendSourceIn

	// BlendDestinationIn keeps destination only where source is opaque.
	BlendDestinationIn

	// BlendSourceOut keeps source only where destination is transparent.
	BlendSourceOut

	// BlendClear clears the covered region.
	BlendClear

	// BlendPlus adds source and destination.
	BlendPlus
)

const unknownStr = "Unknown"

// String returns a human-readable name for the blend mode.
func (mode BlendMode) String() string {
	switch mode {
	case BlendSourceOver:
		return "SourceOver"
	case BlendDestinationOut:
		return "DestinationOut"
	case BlendSourceIn:
		return "SourceIn"
	case BlendDestinationIn:
		return "DestinationIn"
	case BlendSourceOut:
		return "SourceOut"
	case BlendClear:
		return "Clear"
	case BlendPlus:
		return "Plus"
	default:
		return unknownStr
	}
}
