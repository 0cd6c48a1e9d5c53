package shadow

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/shadowbox"
)

// Params is a snapshot of CSS-style inset box-shadow parameters.
//
// Values are stored unclamped and clamped only at consumption, so an
// external controller can step them freely between frames. The
// compositor never mutates a snapshot; re-invoke Draw each frame on the
// current one.
type Params struct {
	// OffsetX and OffsetY shift the shadow in pixels.
	OffsetX float64 `yaml:"offset-x"`
	OffsetY float64 `yaml:"offset-y"`

	// BlurRadius is the perceptual blur radius in pixels (≥ 0).
	BlurRadius float64 `yaml:"blur-radius"`

	// SpreadRadius grows (positive) or shrinks (negative) the shadow
	// shape prior to blurring.
	SpreadRadius float64 `yaml:"spread-radius"`

	// Opacity is the shadow color alpha in [0, 1].
	Opacity float64 `yaml:"opacity"`

	// CornerRadius is the rounded-rect corner radius in pixels (≥ 0).
	CornerRadius float64 `yaml:"corner-radius"`
}

// DefaultParams returns the default shadow parameters. The 8px corner
// radius matches the medium control default, so the control sample is
// immediately useful for tuning.
func DefaultParams() Params {
	return Params{
		OffsetX:      8,
		OffsetY:      8,
		BlurRadius:   12,
		SpreadRadius: 0,
		Opacity:      0.35,
		CornerRadius: 8,
	}
}

// Sanitize replaces non-finite fields (NaN, ±Inf) with their defaults.
// The compositor assumes finite input; this is the parameter-model
// boundary where that contract is enforced.
func (p Params) Sanitize() Params {
	d := DefaultParams()
	if !isFinite(p.OffsetX) {
		p.OffsetX = d.OffsetX
	}
	if !isFinite(p.OffsetY) {
		p.OffsetY = d.OffsetY
	}
	if !isFinite(p.BlurRadius) {
		p.BlurRadius = d.BlurRadius
	}
	if !isFinite(p.SpreadRadius) {
		p.SpreadRadius = d.SpreadRadius
	}
	if !isFinite(p.Opacity) {
		p.Opacity = d.Opacity
	}
	if !isFinite(p.CornerRadius) {
		p.CornerRadius = d.CornerRadius
	}
	return p
}

// UnmarshalYAML decodes a parameter mapping on top of the defaults, so
// a document only names the fields it overrides.
func (p *Params) UnmarshalYAML(value *yaml.Node) error {
	type plain Params
	out := plain(DefaultParams())
	if err := value.Decode(&out); err != nil {
		return err
	}
	*p = Params(out)
	return nil
}

// Offset returns the shadow offset vector.
func (p Params) Offset() shadowbox.Vec2 {
	return shadowbox.Vec2{X: p.OffsetX, Y: p.OffsetY}
}

// Color returns the shadow color: black with the snapshot's opacity.
func (p Params) Color() shadowbox.RGBA {
	return shadowbox.Black.WithAlpha(shadowbox.Clamp(p.Opacity, 0, 1))
}

// CSS renders a copyable CSS declaration for the snapshot, suitable for
// side-by-side comparison with a browser.
func (p Params) CSS() string {
	return fmt.Sprintf(
		"box-shadow: inset %.1fpx %.1fpx %.1fpx %.1fpx rgba(0,0,0,%.2f); border-radius: %.1fpx;",
		p.OffsetX, p.OffsetY, p.BlurRadius, p.SpreadRadius, p.Opacity, p.CornerRadius,
	)
}

// AdjustOffset steps the offset by (dx, dy).
func (p Params) AdjustOffset(dx, dy float64) Params {
	p.OffsetX += dx
	p.OffsetY += dy
	return p
}

// AdjustBlur steps the blur radius, clamped at zero.
func (p Params) AdjustBlur(d float64) Params {
	p.BlurRadius = math.Max(p.BlurRadius+d, 0)
	return p
}

// AdjustSpread steps the spread radius. Spread is clamped against the
// shape only at consumption, so the stored value moves freely.
func (p Params) AdjustSpread(d float64) Params {
	p.SpreadRadius += d
	return p
}

// AdjustOpacity steps the opacity, clamped to [0, 1].
func (p Params) AdjustOpacity(d float64) Params {
	p.Opacity = shadowbox.Clamp(p.Opacity+d, 0, 1)
	return p
}

// AdjustCornerRadius steps the corner radius, clamped at zero.
func (p Params) AdjustCornerRadius(d float64) Params {
	p.CornerRadius = math.Max(p.CornerRadius+d, 0)
	return p
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
