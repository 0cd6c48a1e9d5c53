// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/shadowbox"
	"github.com/gogpu/shadowbox/scene"
)

// State is the lifecycle state of a rendering session.
type State int

const (
	// StateSuspended means no surface exists; frames are rejected.
	StateSuspended State = iota

	// StateActive means a surface exists and frames can be rendered.
	StateActive
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateSuspended:
		return "suspended"
	case StateActive:
		return "active"
	default:
		return "unknown"
	}
}

// ErrSuspended is returned when a frame is requested with no surface.
var ErrSuspended = errors.New("render: suspended, no surface")

// Surface is a CPU render surface: a software backend plus the
// presented frame image it resolves into.
type Surface struct {
	backend *Software
	frame   *image.NRGBA
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.backend.Width() }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.backend.Height() }

// Frame returns the last presented frame. The image is reused across
// frames; copy it to retain a snapshot.
func (s *Surface) Frame() *image.NRGBA { return s.frame }

// Lifecycle drives the suspended/active session state machine around a
// surface, mirroring how windowing hosts deliver rendering: resources
// exist only between resume and suspend, and every frame re-renders
// from a scene so parameter changes between frames simply show up.
type Lifecycle struct {
	state   State
	surface *Surface

	// Background is the clear color applied before each frame.
	Background shadowbox.RGBA
}

// DefaultBackground is the clear color new lifecycles start with. Dark
// gray keeps the shadow's edge transition visible; against white the
// band washes out.
var DefaultBackground = shadowbox.RGB(0.12, 0.12, 0.12)

// NewLifecycle creates a suspended lifecycle with the default dark
// background.
func NewLifecycle() *Lifecycle {
	return &Lifecycle{Background: DefaultBackground}
}

// State returns the current lifecycle state.
func (l *Lifecycle) State() State { return l.state }

// Surface returns the active surface, or nil while suspended.
func (l *Lifecycle) Surface() *Surface { return l.surface }

// OnResume creates the surface at the given size and activates the
// session. Resuming while active replaces the surface, which is how
// hosts deliver resizes.
func (l *Lifecycle) OnResume(width, height int) (*Surface, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("render: invalid surface size %dx%d", width, height)
	}

	l.surface = &Surface{
		backend: NewSoftware(width, height),
		frame:   image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
	l.state = StateActive
	shadowbox.Logger().Info("surface resumed", "width", width, "height", height)
	return l.surface, nil
}

// OnFrame renders the scene onto the active surface and resolves it
// into the presented frame image.
func (l *Lifecycle) OnFrame(s *scene.Scene) error {
	if l.state != StateActive || l.surface == nil {
		return ErrSuspended
	}

	backend := l.surface.backend
	backend.Clear(l.Background)
	if err := backend.Render(s); err != nil {
		return err
	}

	src := backend.Pixmap().ToImage()
	xdraw.Copy(l.surface.frame, image.Point{}, src, src.Bounds(), xdraw.Src, nil)
	return nil
}

// Suspend releases the surface and rejects frames until the next
// resume.
func (l *Lifecycle) Suspend() {
	if l.state == StateSuspended {
		return
	}
	l.surface = nil
	l.state = StateSuspended
	shadowbox.Logger().Info("surface suspended")
}
