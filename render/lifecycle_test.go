// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/shadowbox/scene"
	"github.com/gogpu/shadowbox/shadow"
)

func TestLifecycleStartsSuspended(t *testing.T) {
	lc := NewLifecycle()
	if lc.State() != StateSuspended {
		t.Errorf("initial state = %v, want suspended", lc.State())
	}
	if lc.Surface() != nil {
		t.Error("suspended lifecycle should have no surface")
	}
}

func TestLifecycleFrameWhileSuspended(t *testing.T) {
	lc := NewLifecycle()
	err := lc.OnFrame(scene.NewScene())
	if !errors.Is(err, ErrSuspended) {
		t.Errorf("OnFrame while suspended = %v, want ErrSuspended", err)
	}
}

func TestLifecycleResumeAndFrame(t *testing.T) {
	lc := NewLifecycle()
	surface, err := lc.OnResume(320, 240)
	if err != nil {
		t.Fatalf("OnResume: %v", err)
	}
	if lc.State() != StateActive {
		t.Errorf("state after resume = %v, want active", lc.State())
	}
	if surface.Width() != 320 || surface.Height() != 240 {
		t.Errorf("surface = %dx%d, want 320x240", surface.Width(), surface.Height())
	}

	s := scene.NewScene()
	shadow.BuildScene(s, 320, 240, shadow.DefaultParams())
	if err := lc.OnFrame(s); err != nil {
		t.Fatalf("OnFrame: %v", err)
	}

	frame := surface.Frame()
	if frame.Bounds() != image.Rect(0, 0, 320, 240) {
		t.Errorf("frame bounds = %v", frame.Bounds())
	}

	// The default dark background has been written into the frame.
	want := uint32(toByte(float32(DefaultBackground.R))) * 257
	r, g, b, a := frame.At(2, 2).RGBA()
	if r != want || g != want || b != want || a != 0xffff {
		t.Errorf("background pixel = r=%x g=%x b=%x a=%x, want opaque gray %x", r, g, b, a, want)
	}
}

func TestLifecycleDefaultBackgroundIsDark(t *testing.T) {
	lc := NewLifecycle()
	if lc.Background != DefaultBackground {
		t.Errorf("Background = %+v, want %+v", lc.Background, DefaultBackground)
	}
	if lc.Background.R > 0.5 {
		t.Error("default background should be dark so the shadow band reads")
	}
}

func TestLifecycleResumeRejectsBadSize(t *testing.T) {
	lc := NewLifecycle()
	if _, err := lc.OnResume(0, 100); err == nil {
		t.Error("OnResume(0, 100) should fail")
	}
	if lc.State() != StateSuspended {
		t.Error("failed resume must not activate the lifecycle")
	}
}

func TestLifecycleResumeReplacesSurfaceOnResize(t *testing.T) {
	lc := NewLifecycle()
	first, err := lc.OnResume(100, 100)
	if err != nil {
		t.Fatal(err)
	}
	second, err := lc.OnResume(200, 150)
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Error("resume should create a fresh surface")
	}
	if second.Width() != 200 || second.Height() != 150 {
		t.Errorf("resized surface = %dx%d, want 200x150", second.Width(), second.Height())
	}
}

func TestLifecycleSuspend(t *testing.T) {
	lc := NewLifecycle()
	if _, err := lc.OnResume(64, 64); err != nil {
		t.Fatal(err)
	}

	lc.Suspend()
	if lc.State() != StateSuspended {
		t.Errorf("state after suspend = %v, want suspended", lc.State())
	}
	if lc.Surface() != nil {
		t.Error("surface should be released on suspend")
	}
	if err := lc.OnFrame(scene.NewScene()); !errors.Is(err, ErrSuspended) {
		t.Errorf("OnFrame after suspend = %v, want ErrSuspended", err)
	}

	// Suspending twice is harmless.
	lc.Suspend()
}

func TestLifecycleResumeAfterSuspend(t *testing.T) {
	lc := NewLifecycle()
	if _, err := lc.OnResume(64, 64); err != nil {
		t.Fatal(err)
	}
	lc.Suspend()

	if _, err := lc.OnResume(64, 64); err != nil {
		t.Fatalf("second resume: %v", err)
	}
	if err := lc.OnFrame(scene.NewScene()); err != nil {
		t.Errorf("frame after re-resume: %v", err)
	}
}

func TestStateString(t *testing.T) {
	if StateSuspended.String() != "suspended" || StateActive.String() != "active" {
		t.Error("unexpected State string values")
	}
	if State(9).String() != "unknown" {
		t.Errorf("State(9).String() = %q", State(9).String())
	}
}
