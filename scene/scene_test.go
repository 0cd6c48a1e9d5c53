package scene

import (
	"testing"

	"github.com/gogpu/shadowbox"
)

func testShape() shadowbox.RoundedRect {
	return shadowbox.RoundRect(shadowbox.NewRect(10, 10, 110, 60), 8)
}

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s == nil {
		t.Fatal("NewScene() returned nil")
	}
	if !s.IsEmpty() {
		t.Error("new scene should be empty")
	}
	if s.LayerDepth() != 0 {
		t.Errorf("LayerDepth() = %d, want 0", s.LayerDepth())
	}
}

func TestSceneRecordsInOrder(t *testing.T) {
	s := NewScene()
	shape := testShape()

	s.Fill(shape, shadowbox.White, FillNonZero)
	s.Stroke(shape, shadowbox.Black, 2)
	s.PushLayer(shape, FillNonZero, BlendSourceOver, 1)
	s.BlurredRoundedRectIn(shape, shape.Rect, 8, shadowbox.Black, 4)
	s.PopLayer()

	want := []CommandType{CmdFill, CmdStroke, CmdPushLayer, CmdBlurredRoundedRect, CmdPopLayer}
	cmds := s.Commands()
	if len(cmds) != len(want) {
		t.Fatalf("Len() = %d, want %d", len(cmds), len(want))
	}
	for i, cmd := range cmds {
		if cmd.Type() != want[i] {
			t.Errorf("command %d = %v, want %v", i, cmd.Type(), want[i])
		}
	}
}

func TestSceneDeterministic(t *testing.T) {
	build := func() *Scene {
		s := NewScene()
		s.Fill(testShape(), shadowbox.RGB(1, 0, 0), FillNonZero)
		s.PushLayer(testShape(), FillNonZero, BlendDestinationOut, 0.5)
		s.PopLayer()
		return s
	}

	a, b := build(), build()
	if a.Len() != b.Len() {
		t.Fatalf("lengths differ: %d vs %d", a.Len(), b.Len())
	}
	for i := range a.Commands() {
		if a.Commands()[i] != b.Commands()[i] {
			t.Errorf("command %d differs: %+v vs %+v", i, a.Commands()[i], b.Commands()[i])
		}
	}
}

func TestSceneReset(t *testing.T) {
	s := NewScene()
	s.Fill(testShape(), shadowbox.White, FillNonZero)
	s.PushLayer(testShape(), FillNonZero, BlendSourceOver, 1)

	s.Reset()
	if !s.IsEmpty() {
		t.Error("scene not empty after Reset")
	}
	if s.LayerDepth() != 0 {
		t.Errorf("LayerDepth() = %d after Reset, want 0", s.LayerDepth())
	}
}

func TestStrokeSkipsNonPositiveWidth(t *testing.T) {
	s := NewScene()
	s.Stroke(testShape(), shadowbox.Black, 0)
	s.Stroke(testShape(), shadowbox.Black, -1)
	if !s.IsEmpty() {
		t.Errorf("Len() = %d, want 0 for non-positive stroke widths", s.Len())
	}
}

func TestPushLayerClampsAlpha(t *testing.T) {
	s := NewScene()
	s.PushLayer(testShape(), FillNonZero, BlendSourceOver, 3.0)
	s.PushLayer(testShape(), FillNonZero, BlendSourceOver, -1.0)

	cmds := s.Commands()
	if a := cmds[0].(PushLayerCommand).Alpha; a != 1 {
		t.Errorf("alpha = %v, want clamped to 1", a)
	}
	if a := cmds[1].(PushLayerCommand).Alpha; a != 0 {
		t.Errorf("alpha = %v, want clamped to 0", a)
	}
}

func TestPopLayerUnderflow(t *testing.T) {
	s := NewScene()
	if s.PopLayer() {
		t.Error("PopLayer on empty scene should return false")
	}
	if s.Len() != 0 {
		t.Error("underflowing PopLayer must not record a command")
	}

	s.PushLayer(testShape(), FillNonZero, BlendSourceOver, 1)
	if !s.PopLayer() {
		t.Error("PopLayer with open layer should return true")
	}
	if s.PopLayer() {
		t.Error("second PopLayer should return false")
	}
}

func TestLayerDepthTracking(t *testing.T) {
	s := NewScene()
	s.PushLayer(testShape(), FillNonZero, BlendSourceOver, 1)
	s.PushLayer(testShape(), FillNonZero, BlendDestinationOut, 1)
	if s.LayerDepth() != 2 {
		t.Errorf("LayerDepth() = %d, want 2", s.LayerDepth())
	}
	s.PopLayer()
	if s.LayerDepth() != 1 {
		t.Errorf("LayerDepth() = %d, want 1", s.LayerDepth())
	}
}

// recordingBackend captures playback calls for order verification.
type recordingBackend struct {
	calls []string
}

func (r *recordingBackend) Fill(shadowbox.RoundedRect, shadowbox.RGBA, FillRule) {
	r.calls = append(r.calls, "fill")
}
func (r *recordingBackend) Stroke(shadowbox.RoundedRect, shadowbox.RGBA, float64) {
	r.calls = append(r.calls, "stroke")
}
func (r *recordingBackend) PushLayer(shadowbox.RoundedRect, FillRule, BlendMode, float64) {
	r.calls = append(r.calls, "push")
}
func (r *recordingBackend) PopLayer() {
	r.calls = append(r.calls, "pop")
}
func (r *recordingBackend) DrawBlurredRoundedRectIn(shadowbox.RoundedRect, shadowbox.Rect, float64, shadowbox.RGBA, float64) {
	r.calls = append(r.calls, "blurred")
}

func TestPlaybackOrder(t *testing.T) {
	s := NewScene()
	shape := testShape()
	s.Fill(shape, shadowbox.White, FillNonZero)
	s.PushLayer(shape, FillNonZero, BlendSourceOver, 1)
	s.BlurredRoundedRectIn(shape, shape.Rect, 8, shadowbox.Black, 4)
	s.PopLayer()
	s.Stroke(shape, shadowbox.Black, 1)

	b := &recordingBackend{}
	if err := s.Playback(b); err != nil {
		t.Fatalf("Playback: %v", err)
	}

	want := []string{"fill", "push", "blurred", "pop", "stroke"}
	if len(b.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", b.calls, want)
	}
	for i := range want {
		if b.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, b.calls[i], want[i])
		}
	}
}

func TestPlaybackRejectsOpenLayers(t *testing.T) {
	s := NewScene()
	s.PushLayer(testShape(), FillNonZero, BlendSourceOver, 1)

	err := s.Playback(&recordingBackend{})
	if err == nil {
		t.Fatal("Playback with open layer should fail")
	}
}

func TestBlendModeString(t *testing.T) {
	tests := []struct {
		mode BlendMode
		want string
	}{
		{BlendSourceOver, "SourceOver"},
		{BlendDestinationOut, "DestinationOut"},
		{BlendClear, "Clear"},
		{BlendMode(200), unknownStr},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("BlendMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestCommandTypeString(t *testing.T) {
	if got := CmdFill.String(); got == "" || got == unknownStr {
		t.Errorf("CmdFill.String() = %q", got)
	}
	if got := CommandType(99).String(); got != unknownStr {
		t.Errorf("unknown CommandType String() = %q, want %q", got, unknownStr)
	}
}
